package tool

import (
	"fmt"
	"strings"

	"github.com/dshills/penstroke/internal/editor"
	"github.com/dshills/penstroke/internal/hittest"
)

// HitPolicy picks the winning item from a topmost-first scene hit list.
// Implementations must be deterministic and free of side effects.
type HitPolicy interface {
	Pick(hits []hittest.Result, selection editor.Selection) (hittest.Result, bool)
}

// HitPolicyFunc adapts a function to HitPolicy.
type HitPolicyFunc func(hits []hittest.Result, selection editor.Selection) (hittest.Result, bool)

// Pick calls f.
func (f HitPolicyFunc) Pick(hits []hittest.Result, selection editor.Selection) (hittest.Result, bool) {
	return f(hits, selection)
}

// PreferUnselected picks the topmost hit outside the selection, or the
// topmost hit when every hit is selected. It lets a press reach an item
// lying under a selected one.
var PreferUnselected HitPolicy = HitPolicyFunc(func(hits []hittest.Result, selection editor.Selection) (hittest.Result, bool) {
	for _, h := range hits {
		if !selection.Contains(h.ItemID) {
			return h, true
		}
	}
	return Topmost.Pick(hits, selection)
})

// Topmost picks the first hit regardless of selection.
var Topmost HitPolicy = HitPolicyFunc(func(hits []hittest.Result, _ editor.Selection) (hittest.Result, bool) {
	if len(hits) == 0 {
		return hittest.Miss, false
	}
	return hits[0], true
})

// ParseHitPolicy maps a configuration name to a policy.
func ParseHitPolicy(name string) (HitPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "prefer-unselected":
		return PreferUnselected, nil
	case "topmost":
		return Topmost, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

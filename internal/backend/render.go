package backend

import (
	"math"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/penstroke/internal/editor"
	"github.com/dshills/penstroke/internal/geom"
	"github.com/dshills/penstroke/internal/scene"
)

// Scene is what Render reads from a store.
type Scene interface {
	Item(id scene.ItemID) (scene.Item, bool)
	Path(id scene.ItemID) (scene.Path, bool)
	Walk(fn func(scene.Item) bool)
}

// View is one frame's worth of editor state.
type View struct {
	Scene     Scene
	Selection editor.Selection
	Focus     *editor.Focus

	// Band is the rubber band of an active batch selection, if any.
	Band *geom.Rect

	// Status is drawn reversed on the last row.
	Status string
}

// Styles used by Render.
var (
	StyleShape    = tcell.StyleDefault
	StyleSelected = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	StyleHandle   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	StyleBand     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleStatus   = tcell.StyleDefault.Reverse(true)
)

// Glyphs used by Render.
const (
	glyphCorner         = '+'
	glyphHorizontal     = '-'
	glyphVertical       = '|'
	glyphEllipse        = 'o'
	glyphCurve          = '.'
	glyphAnchor         = '□'
	glyphAnchorSelected = '■'
	glyphHandle         = '•'
	glyphBounds         = '#'
	glyphBand           = ':'
)

// curveSteps is the number of samples per curve when drawing paths.
const curveSteps = 24

// Render clears the screen, draws v and shows the result.
func (t *Terminal) Render(v View) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
	c := canvas{screen: t.screen}

	// Walk is topmost first; draw bottom-up so upper shapes win.
	var items []scene.Item
	v.Scene.Walk(func(it scene.Item) bool {
		items = append(items, it)
		return true
	})
	slices.Reverse(items)

	for _, it := range items {
		style := StyleShape
		if v.Selection.Contains(it.ID) {
			style = StyleSelected
		}
		switch it.Kind {
		case scene.KindRectangle:
			c.box(it.Bounds, glyphHorizontal, glyphVertical, glyphCorner, style)
		case scene.KindEllipse:
			c.ellipse(it.Bounds, style)
		case scene.KindPath:
			if p, ok := v.Scene.Path(it.ID); ok {
				c.path(p, style)
			}
		}
	}

	if v.Focus != nil && v.Focus.LayerID != "" {
		if p, ok := v.Scene.Path(v.Focus.LayerID); ok {
			c.focus(p, v.Focus)
		}
	} else {
		c.bounds(v.Scene, v.Selection)
	}

	if v.Band != nil {
		c.box(*v.Band, glyphBand, glyphBand, glyphBand, StyleBand)
	}

	c.status(v.Status)
	t.screen.Show()
}

type canvas struct {
	screen tcell.Screen
}

func (c canvas) set(p geom.Point, r rune, style tcell.Style) {
	x, y := int(math.Round(p.X)), int(math.Round(p.Y))
	w, h := c.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h-1 {
		return
	}
	c.screen.SetContent(x, y, r, nil, style)
}

func (c canvas) line(a, b geom.Point, r rune, style tcell.Style) {
	steps := int(math.Ceil(math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y))))
	if steps == 0 {
		c.set(a, r, style)
		return
	}
	for i := 0; i <= steps; i++ {
		c.set(a.Lerp(b, float64(i)/float64(steps)), r, style)
	}
}

func (c canvas) box(r geom.Rect, hz, vt, corner rune, style tcell.Style) {
	tl, br := r.Min, r.Max
	tr, bl := geom.Pt(br.X, tl.Y), geom.Pt(tl.X, br.Y)
	c.line(tl, tr, hz, style)
	c.line(bl, br, hz, style)
	c.line(tl, bl, vt, style)
	c.line(tr, br, vt, style)
	for _, p := range []geom.Point{tl, tr, bl, br} {
		c.set(p, corner, style)
	}
}

func (c canvas) ellipse(r geom.Rect, style tcell.Style) {
	rx, ry := r.Width()/2, r.Height()/2
	center := r.Center()
	steps := max(16, int(4*(rx+ry)))
	for i := range steps {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c.set(geom.Pt(center.X+rx*math.Cos(a), center.Y+ry*math.Sin(a)), glyphEllipse, style)
	}
}

func (c canvas) path(p scene.Path, style tcell.Style) {
	if p.SegmentCount() == 1 {
		c.set(p.Segments[0].Point, glyphCurve, style)
		return
	}
	for i := range p.CurveCount() {
		cv := p.Curve(i)
		prev := cv.Eval(0)
		for s := 1; s <= curveSteps; s++ {
			next := cv.Eval(float64(s) / curveSteps)
			c.line(prev, next, glyphCurve, style)
			prev = next
		}
	}
}

// focus draws the anchors of the path under edit and its visible handles.
func (c canvas) focus(p scene.Path, f *editor.Focus) {
	for i, s := range p.Segments {
		if f.VisibleHandleIns.Has(i) && !s.HandleIn.IsZero() {
			h := s.Handle(scene.HandleIn)
			c.line(s.Point, h, glyphCurve, StyleHandle)
			c.set(h, glyphHandle, StyleHandle)
		}
		if f.VisibleHandleOuts.Has(i) && !s.HandleOut.IsZero() {
			h := s.Handle(scene.HandleOut)
			c.line(s.Point, h, glyphCurve, StyleHandle)
			c.set(h, glyphHandle, StyleHandle)
		}
	}
	for i, s := range p.Segments {
		if f.SelectedSegments.Has(i) {
			c.set(s.Point, glyphAnchorSelected, StyleSelected)
		} else {
			c.set(s.Point, glyphAnchor, StyleHandle)
		}
	}
}

// bounds draws the eight handles of the selection's union bounds.
func (c canvas) bounds(s Scene, sel editor.Selection) {
	r := geom.EmptyRect
	for _, id := range sel.IDs() {
		if it, ok := s.Item(id); ok {
			r = r.Union(it.Bounds)
		}
	}
	if r.Empty() {
		return
	}
	for _, h := range r.Handles() {
		c.set(h, glyphBounds, StyleSelected)
	}
}

func (c canvas) status(text string) {
	w, h := c.screen.Size()
	if h == 0 {
		return
	}
	runes := []rune(text)
	for x := range w {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		c.screen.SetContent(x, h-1, r, nil, StyleStatus)
	}
}

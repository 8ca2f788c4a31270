package lua

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/dshills/penstroke/internal/gesture"
	"github.com/dshills/penstroke/internal/input/key"
	"github.com/dshills/penstroke/internal/input/mouse"

	lua "github.com/yuin/gopher-lua"
)

// FactoryName is the global function a gesture script must define.
const FactoryName = "gesture"

// Script is a loaded gesture script with its own Lua state.
type Script struct {
	name  string
	state *State
	api   *api
}

// LoadScript loads a gesture script from a file.
func LoadScript(path string, opts ...StateOption) (*Script, error) {
	return load(path, func(s *State) error { return s.DoFile(path) }, opts)
}

// LoadScriptString loads a gesture script from source. name is used in
// errors and logs.
func LoadScriptString(name, code string, opts ...StateOption) (*Script, error) {
	return load(name, func(s *State) error { return s.DoString(code) }, opts)
}

func load(name string, run func(*State) error, opts []StateOption) (*Script, error) {
	st := NewState(opts...)
	a := &api{}
	st.RegisterModule(ModuleName, a.funcs())

	if err := run(st); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	if st.GetGlobal(FactoryName).Type() != lua.LTFunction {
		_ = st.Close()
		return nil, fmt.Errorf("load %s: %w", name, ErrNoFactory)
	}
	return &Script{name: name, state: st, api: a}, nil
}

// Name returns the path or name the script was loaded from.
func (s *Script) Name() string { return s.name }

// Close releases the script's Lua state.
func (s *Script) Close() error { return s.state.Close() }

// Constructor returns a gesture constructor that builds gestures by calling
// the script's gesture function with the variant.
func (s *Script) Constructor() gesture.Constructor {
	return func(v gesture.Variant, env gesture.Env) (gesture.Gesture, error) {
		s.api.env = env

		results, err := s.state.Call(FactoryName, variantTable(s.state.L, v))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}

		var handlers *lua.LTable
		if len(results) > 0 {
			t, ok := results[0].(*lua.LTable)
			if !ok {
				return nil, fmt.Errorf("%s: %w (got %s)", s.name, ErrBadHandlers, results[0].Type())
			}
			handlers = t
		} else {
			handlers = s.state.L.NewTable()
		}

		return &Gesture{
			Passive:  gesture.NewPassive(v),
			script:   s,
			handlers: handlers,
		}, nil
	}
}

// Gesture is a gesture whose handlers are Lua functions.
type Gesture struct {
	*gesture.Passive

	script   *Script
	handlers *lua.LTable
}

// OnMouseDown starts drag tracking and calls on_down.
func (g *Gesture) OnMouseDown(ev mouse.Event) error {
	_ = g.Passive.OnMouseDown(ev)
	return g.call("on_down", mouseTable(g.script.state.L, ev))
}

// OnMouseDrag calls on_drag with dx and dy since the previous event.
func (g *Gesture) OnMouseDrag(ev mouse.Event) error {
	delta := g.Drag().Update(ev.Point)
	t := mouseTable(g.script.state.L, ev)
	g.script.state.L.SetField(t, "dx", lua.LNumber(delta.X))
	g.script.state.L.SetField(t, "dy", lua.LNumber(delta.Y))
	return g.call("on_drag", t)
}

// OnMouseMove calls on_move.
func (g *Gesture) OnMouseMove(ev mouse.Event) error {
	return g.call("on_move", mouseTable(g.script.state.L, ev))
}

// OnMouseUp ends drag tracking and calls on_up.
func (g *Gesture) OnMouseUp(ev mouse.Event) error {
	_ = g.Passive.OnMouseUp(ev)
	t := mouseTable(g.script.state.L, ev)
	g.script.state.L.SetField(t, "dragged", lua.LBool(g.Drag().Dragged()))
	return g.call("on_up", t)
}

// OnKeyDown calls on_key_down.
func (g *Gesture) OnKeyDown(ev key.Event) error {
	return g.call("on_key_down", keyTable(g.script.state.L, ev))
}

// OnKeyUp calls on_key_up.
func (g *Gesture) OnKeyUp(ev key.Event) error {
	return g.call("on_key_up", keyTable(g.script.state.L, ev))
}

func (g *Gesture) call(name string, ev *lua.LTable) error {
	if err := g.script.state.CallMethod(g.handlers, name, ev); err != nil {
		return fmt.Errorf("%s %s: %w", g.script.name, name, err)
	}
	return nil
}

// Plugins is a set of scripts installed into a gesture registry.
type Plugins struct {
	scripts map[gesture.Kind]*Script
}

// Install loads each script and registers it as the constructor for its
// kind, replacing any built-in. Scripts that fail to load are logged and
// skipped; the kinds they name keep their previous constructor.
func Install(reg *gesture.Registry, scripts map[gesture.Kind]string, logger *slog.Logger, opts ...StateOption) *Plugins {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	p := &Plugins{scripts: make(map[gesture.Kind]*Script)}
	for _, kind := range slices.Sorted(maps.Keys(scripts)) {
		path := scripts[kind]
		sopts := append([]StateOption{WithLogger(logger.With("plugin", path))}, opts...)
		s, err := LoadScript(path, sopts...)
		if err != nil {
			logger.Warn("plugin load failed", "kind", kind, "path", path, "error", err)
			continue
		}
		p.Add(reg, kind, s)
		logger.Info("plugin installed", "kind", kind, "path", path)
	}
	return p
}

// Add registers an already loaded script for kind. A script previously
// added for kind is closed.
func (p *Plugins) Add(reg *gesture.Registry, kind gesture.Kind, s *Script) {
	if old, ok := p.scripts[kind]; ok {
		_ = old.Close()
	}
	p.scripts[kind] = s
	reg.Register(kind, s.Constructor())
}

// Kinds returns the kinds served by scripts, in order.
func (p *Plugins) Kinds() []gesture.Kind {
	return slices.Sorted(maps.Keys(p.scripts))
}

// Close releases every script.
func (p *Plugins) Close() error {
	for kind, s := range p.scripts {
		_ = s.Close()
		delete(p.scripts, kind)
	}
	return nil
}

package lua

import (
	"fmt"

	"github.com/dshills/penstroke/internal/editor"
	"github.com/dshills/penstroke/internal/gesture"
	"github.com/dshills/penstroke/internal/geom"
	"github.com/dshills/penstroke/internal/scene"

	lua "github.com/yuin/gopher-lua"
)

// ModuleName is the global table scripts use to reach the editor.
const ModuleName = "penstroke"

// api backs the penstroke module. env is rebound before each gesture is
// constructed; a State serves one dispatcher at a time.
type api struct {
	env gesture.Env
}

func (a *api) funcs() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"selection":     a.selection,
		"set_selection": a.setSelection,
		"focus":         a.focus,
		"translate":     a.translate,
		"clone":         a.clone,
		"move_handle":   a.moveHandle,
		"add_rectangle": a.addRectangle,
		"add_ellipse":   a.addEllipse,
		"add_path":      a.addPath,
		"path":          a.path,
		"log":           a.log,
	}
}

func (a *api) selection(L *lua.LState) int {
	if a.env.State == nil {
		L.Push(L.NewTable())
		return 1
	}
	L.Push(idsTable(L, a.env.State.Selection().IDs()))
	return 1
}

func (a *api) setSelection(L *lua.LState) int {
	ids := tableIDs(L.CheckTable(1))
	if a.env.State != nil {
		a.env.State.SetSelection(editor.NewSelection(ids...))
	}
	return 0
}

func (a *api) focus(L *lua.LState) int {
	if a.env.State == nil {
		L.Push(lua.LNil)
		return 1
	}
	f := a.env.State.EditPathFocus()
	if f == nil {
		L.Push(lua.LNil)
		return 1
	}
	t := L.NewTable()
	L.SetField(t, "layer", lua.LString(f.LayerID))
	L.SetField(t, "segments", indicesTable(L, f.SelectedSegments.Sorted()))
	L.Push(t)
	return 1
}

func (a *api) translate(L *lua.LState) int {
	ids := tableIDs(L.CheckTable(1))
	delta := geom.Pt(float64(L.CheckNumber(2)), float64(L.CheckNumber(3)))
	m := a.mutator(L)
	if err := m.Translate(ids, delta); err != nil {
		L.RaiseError("translate: %s", err.Error())
	}
	return 0
}

func (a *api) clone(L *lua.LState) int {
	ids := tableIDs(L.CheckTable(1))
	m := a.mutator(L)
	clones, err := m.Clone(ids)
	if err != nil {
		L.RaiseError("clone: %s", err.Error())
	}
	L.Push(idsTable(L, clones))
	return 1
}

func (a *api) moveHandle(L *lua.LState) int {
	id := scene.ItemID(L.CheckString(1))
	segment := L.CheckInt(2)
	var side scene.HandleSide
	switch s := L.CheckString(3); s {
	case "in":
		side = scene.HandleIn
	case "out":
		side = scene.HandleOut
	default:
		L.ArgError(3, fmt.Sprintf("handle side must be \"in\" or \"out\", got %q", s))
	}
	delta := geom.Pt(float64(L.CheckNumber(4)), float64(L.CheckNumber(5)))

	m := a.mutator(L)
	if err := m.MoveHandle(id, segment, side, delta); err != nil {
		L.RaiseError("move_handle: %s", err.Error())
	}
	return 0
}

func (a *api) addRectangle(L *lua.LState) int {
	r := checkRect(L)
	b := a.builder(L)
	id, err := b.AddRectangle(b.ActiveLayer(), r)
	if err != nil {
		L.RaiseError("add_rectangle: %s", err.Error())
	}
	L.Push(lua.LString(id))
	return 1
}

func (a *api) addEllipse(L *lua.LState) int {
	r := checkRect(L)
	b := a.builder(L)
	id, err := b.AddEllipse(b.ActiveLayer(), r)
	if err != nil {
		L.RaiseError("add_ellipse: %s", err.Error())
	}
	L.Push(lua.LString(id))
	return 1
}

func (a *api) addPath(L *lua.LState) int {
	pts := L.CheckTable(1)
	closed := L.OptBool(2, false)

	p := scene.Path{Closed: closed}
	for i := 1; i <= pts.Len(); i++ {
		t, ok := pts.RawGetInt(i).(*lua.LTable)
		if !ok {
			L.ArgError(1, fmt.Sprintf("point %d is not a table", i))
		}
		p.Segments = append(p.Segments, scene.Segment{Point: tablePoint(L, t)})
	}

	b := a.builder(L)
	id, err := b.AddPath(b.ActiveLayer(), p)
	if err != nil {
		L.RaiseError("add_path: %s", err.Error())
	}
	L.Push(lua.LString(id))
	return 1
}

func (a *api) path(L *lua.LState) int {
	id := scene.ItemID(L.CheckString(1))
	if a.env.State == nil {
		L.Push(lua.LNil)
		return 1
	}
	p, ok := a.env.State.Scene().Path(id)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}

	segs := L.CreateTable(len(p.Segments), 0)
	for _, s := range p.Segments {
		segs.Append(pointTable(L, s.Point))
	}
	t := L.NewTable()
	L.SetField(t, "closed", lua.LBool(p.Closed))
	L.SetField(t, "segments", segs)
	L.Push(t)
	return 1
}

func (a *api) log(L *lua.LState) int {
	a.env.Log().Info(L.CheckString(1), "source", "lua")
	return 0
}

// mutator returns the scene mutator or raises a Lua error.
func (a *api) mutator(L *lua.LState) scene.Mutator {
	if a.env.Mutator == nil {
		L.RaiseError("%s: mutator", ErrUnsupported.Error())
	}
	return a.env.Mutator
}

// builder returns the scene as a Builder or raises a Lua error.
func (a *api) builder(L *lua.LState) scene.Builder {
	var b scene.Builder
	if a.env.State != nil {
		b, _ = a.env.State.Scene().(scene.Builder)
	}
	if b == nil {
		L.RaiseError("%s: builder", ErrUnsupported.Error())
	}
	return b
}

func checkRect(L *lua.LState) geom.Rect {
	return geom.RectFromPoints(
		geom.Pt(float64(L.CheckNumber(1)), float64(L.CheckNumber(2))),
		geom.Pt(float64(L.CheckNumber(3)), float64(L.CheckNumber(4))),
	)
}

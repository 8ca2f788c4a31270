package lua

import (
	"github.com/dshills/penstroke/internal/gesture"
	"github.com/dshills/penstroke/internal/geom"
	"github.com/dshills/penstroke/internal/hittest"
	"github.com/dshills/penstroke/internal/input/key"
	"github.com/dshills/penstroke/internal/input/mouse"
	"github.com/dshills/penstroke/internal/scene"

	lua "github.com/yuin/gopher-lua"
)

// variantTable converts a variant to {kind=, ...payload}.
func variantTable(L *lua.LState, v gesture.Variant) *lua.LTable {
	t := L.NewTable()
	L.SetField(t, "kind", lua.LString(v.Kind().String()))

	switch v := v.(type) {
	case gesture.SelectDragCloneItems:
		L.SetField(t, "item", lua.LString(v.Item))
	case gesture.DeselectItem:
		L.SetField(t, "item", lua.LString(v.Item))
	case gesture.EditPath:
		L.SetField(t, "item", lua.LString(v.Item))
	case gesture.RotateItems:
		L.SetField(t, "hit", hitTable(L, v.Hit))
	case gesture.ScaleItems:
		L.SetField(t, "hit", hitTable(L, v.Hit))
	case gesture.TransformPaths:
		L.SetField(t, "hit", hitTable(L, v.Hit))
	case gesture.SelectDragHandle:
		L.SetField(t, "segment", lua.LNumber(v.Segment))
		L.SetField(t, "side", lua.LString(v.Side.String()))
	case gesture.ToggleSegmentHandles:
		L.SetField(t, "segment", lua.LNumber(v.Segment))
	case gesture.SelectDragDrawSegments:
		L.SetField(t, "entry", lua.LString(v.Entry.String()))
		L.SetField(t, "segment", lua.LNumber(v.Segment))
		L.SetField(t, "curve", lua.LNumber(v.Curve))
		L.SetField(t, "time", lua.LNumber(v.Time))
	case gesture.MouldCurve:
		L.SetField(t, "curve", lua.LNumber(v.Curve))
		L.SetField(t, "time", lua.LNumber(v.Time))
	case gesture.BatchSelectSegments:
		L.SetField(t, "clear_on_click", lua.LBool(v.ClearEditPathOnDraglessClick))
	}
	return t
}

func hitTable(L *lua.LState, r hittest.Result) *lua.LTable {
	t := L.NewTable()
	L.SetField(t, "kind", lua.LString(r.Kind.String()))
	L.SetField(t, "item", lua.LString(r.ItemID))
	L.SetField(t, "segment", lua.LNumber(r.SegmentIndex))
	L.SetField(t, "curve", lua.LNumber(r.CurveIndex))
	L.SetField(t, "time", lua.LNumber(r.Time))
	L.SetField(t, "x", lua.LNumber(r.Point.X))
	L.SetField(t, "y", lua.LNumber(r.Point.Y))
	return t
}

// mouseTable converts a pointer event to {x=, y=, shift=, ...}.
func mouseTable(L *lua.LState, ev mouse.Event) *lua.LTable {
	t := L.NewTable()
	L.SetField(t, "x", lua.LNumber(ev.Point.X))
	L.SetField(t, "y", lua.LNumber(ev.Point.Y))
	L.SetField(t, "action", lua.LString(ev.Action.String()))
	setModifiers(L, t, ev.Modifiers)
	return t
}

// keyTable converts a key event to {key=, rune=, shift=, ...}.
func keyTable(L *lua.LState, ev key.Event) *lua.LTable {
	t := L.NewTable()
	L.SetField(t, "key", lua.LString(ev.Key.String()))
	if ev.IsRune() {
		L.SetField(t, "rune", lua.LString(string(ev.Rune)))
	}
	L.SetField(t, "escape", lua.LBool(ev.IsEscape()))
	setModifiers(L, t, ev.Modifiers)
	return t
}

func setModifiers(L *lua.LState, t *lua.LTable, m key.Modifier) {
	L.SetField(t, "shift", lua.LBool(m.HasShift()))
	L.SetField(t, "alt", lua.LBool(m.HasAlt()))
	L.SetField(t, "ctrl", lua.LBool(m.HasCtrl()))
	L.SetField(t, "meta", lua.LBool(m.HasMeta()))
	L.SetField(t, "command", lua.LBool(m.HasCommand()))
}

func idsTable(L *lua.LState, ids []scene.ItemID) *lua.LTable {
	t := L.CreateTable(len(ids), 0)
	for _, id := range ids {
		t.Append(lua.LString(id))
	}
	return t
}

func tableIDs(t *lua.LTable) []scene.ItemID {
	ids := make([]scene.ItemID, 0, t.Len())
	for i := 1; i <= t.Len(); i++ {
		if s, ok := t.RawGetInt(i).(lua.LString); ok {
			ids = append(ids, scene.ItemID(s))
		}
	}
	return ids
}

func indicesTable(L *lua.LState, indices []int) *lua.LTable {
	t := L.CreateTable(len(indices), 0)
	for _, i := range indices {
		t.Append(lua.LNumber(i))
	}
	return t
}

func pointTable(L *lua.LState, p geom.Point) *lua.LTable {
	t := L.CreateTable(0, 2)
	L.SetField(t, "x", lua.LNumber(p.X))
	L.SetField(t, "y", lua.LNumber(p.Y))
	return t
}

// tablePoint reads {x=, y=} or {x, y}.
func tablePoint(L *lua.LState, t *lua.LTable) geom.Point {
	x, y := L.GetField(t, "x"), L.GetField(t, "y")
	if x == lua.LNil {
		x, y = t.RawGetInt(1), t.RawGetInt(2)
	}
	return geom.Pt(float64(lua.LVAsNumber(x)), float64(lua.LVAsNumber(y)))
}

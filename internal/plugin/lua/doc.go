// Package lua runs gesture behaviour written in Lua.
//
// Each script is loaded into its own sandboxed State and must define a
// global function gesture(variant) that returns a table of handlers. The
// dispatcher calls gesture once per press; the returned table is the
// gesture instance, and its handlers receive (self, event):
//
//	function gesture(v)
//	    local g = {}
//	    function g:on_down(ev)  self.x, self.y = ev.x, ev.y end
//	    function g:on_up(ev)
//	        penstroke.add_rectangle(self.x, self.y, ev.x, ev.y)
//	    end
//	    return g
//	end
//
// Handlers are optional: on_down, on_drag, on_move, on_up, on_key_down and
// on_key_up. Drag events carry dx and dy since the previous event; the up
// event carries dragged.
//
// # Sandbox
//
// Only the base, table, string and math libraries are opened. dofile,
// loadfile, load, loadstring and require are removed, print goes to the
// host logger, and every call runs under an execution timeout.
//
// # The penstroke Module
//
// Scripts reach the editor through the global penstroke table:
//
//	penstroke.selection()                       -- {id, ...}
//	penstroke.set_selection({id, ...})
//	penstroke.focus()                           -- nil or {layer=, segments={...}}
//	penstroke.translate({id, ...}, dx, dy)
//	penstroke.clone({id, ...})                  -- {id, ...}
//	penstroke.move_handle(id, segment, "in"|"out", dx, dy)
//	penstroke.add_rectangle(x0, y0, x1, y1)     -- id
//	penstroke.add_ellipse(x0, y0, x1, y1)       -- id
//	penstroke.add_path({{x=, y=}, ...}, closed) -- id
//	penstroke.path(id)                          -- nil or {closed=, segments={{x=, y=}, ...}}
//	penstroke.log(msg)
//
// Segment and curve indices are zero-based, matching the Go side.
package lua

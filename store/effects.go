package store

import (
	"fmt"

	"github.com/cellgraph/cellgraph/graph"
)

type effectCell struct {
	st  *Store
	ref graph.CellRef
	fn  func() error
}

// Effect wires a side-effecting func to a set of cells. It runs once at
// creation and again every time the graph settles one of its dependencies as
// changed. The returned func disposes it. Errors and recovered panics go to
// the store's OnError hook.
func Effect(st *Store, fn func() error, deps ...Cell) (dispose func()) {
	e := &effectCell{
		st:  st,
		ref: st.allocRef(""),
		fn:  fn,
	}
	st.cells[e.ref.ID] = e
	st.g.RegisterEffect(e.ref, refsOf(deps))
	e.recompute()
	return func() {
		st.Unregister(e.ref)
	}
}

// recompute runs the effect. Effects sit at the bottom of the graph, so the
// changed flag is moot; nothing observes them.
func (e *effectCell) recompute() bool {
	defer func() {
		if r := recover(); r != nil {
			e.st.reportError(e.ref, fmt.Errorf("effect %s: %v", e.ref, r))
		}
	}()
	if err := e.fn(); err != nil {
		e.st.reportError(e.ref, err)
	}
	return false
}

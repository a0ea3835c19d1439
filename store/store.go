// Package store is a typed value store driven by the cellgraph propagation
// core. It owns cell values and compute functions; the graph owns structure
// and ordering. Writes propagate eagerly: outside a batch every derived cell
// is settled before SetValue returns.
package store

import (
	"github.com/cellgraph/cellgraph/graph"
)

// OnErrorFunc receives errors and recovered panics from user compute and
// effect functions.
type OnErrorFunc func(ref graph.CellRef, err error)

// Cell is anything with a node in the graph.
type Cell interface {
	Ref() graph.CellRef
}

// Readable is a cell whose typed value a derived cell can consume.
type Readable[T comparable] interface {
	Cell
	Value() T
}

type recomputable interface {
	recompute() (changed bool)
}

type Store struct {
	g       *graph.Graph
	cells   map[uint64]recomputable
	nextID  uint64
	onError OnErrorFunc
}

func New(onError OnErrorFunc) *Store {
	st := &Store{
		cells:   map[uint64]recomputable{},
		onError: onError,
	}
	st.g = graph.New(st.onRecompute)
	return st
}

// Graph exposes the underlying propagation graph, mostly for inspection.
func (st *Store) Graph() *graph.Graph { return st.g }

// Batch coalesces every write inside fn into one propagation pass.
func (st *Store) Batch(fn func()) { st.g.Batch(fn) }

func (st *Store) Unregister(ref graph.CellRef) {
	delete(st.cells, ref.ID)
	st.g.Unregister(ref)
}

func (st *Store) Dispose() {
	st.cells = map[uint64]recomputable{}
	st.g.Dispose()
}

func (st *Store) onRecompute(ref graph.CellRef) bool {
	cell, ok := st.cells[ref.ID]
	if !ok {
		return false
	}
	return cell.recompute()
}

func (st *Store) allocRef(name string) graph.CellRef {
	st.nextID++
	return graph.NamedRef(st.nextID, name)
}

func (st *Store) reportError(ref graph.CellRef, err error) {
	if st.onError != nil {
		st.onError(ref, err)
	}
}

func refsOf(deps []Cell) []graph.CellRef {
	refs := make([]graph.CellRef, len(deps))
	for i, dep := range deps {
		refs[i] = dep.Ref()
	}
	return refs
}

// watcher bookkeeping shared by both cell kinds. A slice keeps notification
// order stable; removal is the swap-free scan foo-style cells use.
type watcher[T any] struct {
	id int
	fn func(T)
}

type watcherList[T any] struct {
	nextID   int
	watchers []watcher[T]
}

func (w *watcherList[T]) add(fn func(T)) int {
	w.nextID++
	w.watchers = append(w.watchers, watcher[T]{id: w.nextID, fn: fn})
	return w.nextID
}

func (w *watcherList[T]) remove(id int) {
	for i, entry := range w.watchers {
		if entry.id == id {
			w.watchers = append(w.watchers[:i], w.watchers[i+1:]...)
			return
		}
	}
}

func (w *watcherList[T]) notify(v T) {
	for _, entry := range w.watchers {
		entry.fn(v)
	}
}

package store

import (
	"fmt"

	"github.com/cellgraph/cellgraph/graph"
)

// ReadonlySignal is a derived cell with an explicitly declared dependency
// list. Its compute function runs whenever the graph settles it as dirty;
// the `comparable` equality check decides whether watchers fire and whether
// downstream cells see the recompute at all.
type ReadonlySignal[T comparable] struct {
	st       *Store
	ref      graph.CellRef
	getter   func() T
	value    T
	watchers watcherList[T]
}

func Computed[T comparable](st *Store, getter func() T, deps ...Cell) *ReadonlySignal[T] {
	return NamedComputed(st, "", getter, deps...)
}

func NamedComputed[T comparable](st *Store, name string, getter func() T, deps ...Cell) *ReadonlySignal[T] {
	c := &ReadonlySignal[T]{
		st:     st,
		ref:    st.allocRef(name),
		getter: getter,
	}
	st.cells[c.ref.ID] = c
	st.g.RegisterComputed(c.ref, refsOf(deps))
	if v, ok := c.eval(); ok {
		c.value = v
	}
	return c
}

func (c *ReadonlySignal[T]) Ref() graph.CellRef { return c.ref }

// Value returns the cached value. Outside a batch the cache is always
// settled; inside one it may lag writes made earlier in the same batch.
func (c *ReadonlySignal[T]) Value() T { return c.value }

// Rewire replaces the dependency list, dropping edges to sources no longer
// named and recomputing against the new set.
func (c *ReadonlySignal[T]) Rewire(deps ...Cell) {
	c.st.g.RegisterComputed(c.ref, refsOf(deps))
	c.recompute()
}

func (c *ReadonlySignal[T]) Watch(fn func(T)) (unwatch func()) {
	id := c.watchers.add(fn)
	if n := c.st.g.GetNode(c.ref); n != nil {
		n.AddSubscriber()
	}
	return func() {
		c.watchers.remove(id)
		if n := c.st.g.GetNode(c.ref); n != nil {
			n.RemoveSubscriber()
		}
	}
}

func (c *ReadonlySignal[T]) recompute() bool {
	next, ok := c.eval()
	if !ok {
		// A failed compute keeps the previous value and does not wake
		// anything downstream.
		return false
	}
	if next == c.value {
		return false
	}
	c.value = next
	c.watchers.notify(next)
	return true
}

// eval runs the user getter, converting a panic into an OnError report so a
// misbehaving compute function cannot tear down the propagation pass.
func (c *ReadonlySignal[T]) eval() (v T, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			c.st.reportError(c.ref, fmt.Errorf("computing %s: %v", c.ref, r))
		}
	}()
	return c.getter(), true
}

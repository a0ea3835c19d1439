package store

import (
	"github.com/cellgraph/cellgraph/graph"
)

// WriteableSignal is a root cell: written from outside, never computed.
type WriteableSignal[T comparable] struct {
	st       *Store
	ref      graph.CellRef
	value    T
	watchers watcherList[T]
}

func Signal[T comparable](st *Store, initialValue T) *WriteableSignal[T] {
	return NamedSignal(st, "", initialValue)
}

func NamedSignal[T comparable](st *Store, name string, initialValue T) *WriteableSignal[T] {
	s := &WriteableSignal[T]{
		st:    st,
		ref:   st.allocRef(name),
		value: initialValue,
	}
	st.g.RegisterWritable(s.ref)
	return s
}

func (s *WriteableSignal[T]) Ref() graph.CellRef { return s.ref }

func (s *WriteableSignal[T]) Value() T { return s.value }

// SetValue writes the root cell. Equal values are dropped before they reach
// the graph, so no propagation pass runs for a no-op write.
func (s *WriteableSignal[T]) SetValue(v T) {
	if s.value == v {
		return
	}
	s.value = v
	s.st.g.MarkDirty(s.ref)
	s.watchers.notify(v)
}

// Watch registers an external watcher, called on every value change. The
// returned func detaches it.
func (s *WriteableSignal[T]) Watch(fn func(T)) (unwatch func()) {
	id := s.watchers.add(fn)
	if n := s.st.g.GetNode(s.ref); n != nil {
		n.AddSubscriber()
	}
	return func() {
		s.watchers.remove(id)
		if n := s.st.g.GetNode(s.ref); n != nil {
			n.RemoveSubscriber()
		}
	}
}

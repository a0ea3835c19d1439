package graph

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// State is the reactivity state of a node within one mutation round.
type State uint8

const (
	StateClean State = iota // cached value is current, nothing to do
	StateCheck              // might be stale, decided by looking at source epochs
	StateDirty              // a source changed, value must be recomputed
)

func (s State) String() string {
	switch s {
	case StateClean:
		return "clean"
	case StateCheck:
		return "check"
	case StateDirty:
		return "dirty"
	default:
		return "invalid"
	}
}

// Node is the structural record for one cell. It tracks edges, level and
// round bookkeeping; the cell's actual value lives with the owner.
type Node struct {
	ref             CellRef
	sources         mapset.Set[*Node]
	observers       mapset.Set[*Node]
	state           State
	epoch           uint64
	level           int
	isComputed      bool
	subscriberCount int
}

func newNode(ref CellRef, isComputed bool) *Node {
	return &Node{
		ref:        ref,
		sources:    mapset.NewThreadUnsafeSet[*Node](),
		observers:  mapset.NewThreadUnsafeSet[*Node](),
		isComputed: isComputed,
	}
}

func (n *Node) Ref() CellRef       { return n.ref }
func (n *Node) State() State       { return n.state }
func (n *Node) Epoch() uint64      { return n.epoch }
func (n *Node) Level() int         { return n.level }
func (n *Node) IsComputed() bool   { return n.isComputed }
func (n *Node) SourceCount() int   { return n.sources.Cardinality() }
func (n *Node) ObserverCount() int { return n.observers.Cardinality() }

func (n *Node) HasSource(src *Node) bool  { return n.sources.Contains(src) }
func (n *Node) HasObserver(ob *Node) bool { return n.observers.Contains(ob) }

func (n *Node) Sources() []*Node   { return n.sources.ToSlice() }
func (n *Node) Observers() []*Node { return n.observers.ToSlice() }

// SubscriberCount is bookkeeping for the owner (disposal policies and the
// like); the propagation algorithm never reads it.
func (n *Node) SubscriberCount() int { return n.subscriberCount }

func (n *Node) AddSubscriber() { n.subscriberCount++ }

func (n *Node) RemoveSubscriber() {
	if n.subscriberCount > 0 {
		n.subscriberCount--
	}
}

// addSource wires src -> n. Duplicate edges are ignored.
func (n *Node) addSource(src *Node) {
	if n.sources.Contains(src) {
		return
	}
	n.sources.Add(src)
	src.observers.Add(n)
	n.refreshLevel()
}

func (n *Node) removeSource(src *Node) {
	if !n.sources.Contains(src) {
		return
	}
	n.sources.Remove(src)
	src.observers.Remove(n)
	n.refreshLevel()
}

func (n *Node) clearSources() {
	for src := range n.sources.Iter() {
		src.observers.Remove(n)
	}
	n.sources.Clear()
	n.refreshLevel()
}

// refreshLevel recomputes the level from the current sources and pushes any
// change through downstream observers so that level(source) < level(observer)
// holds immediately after every edge mutation. It first collects the full
// downstream closure, then relaxes the closure to a fixpoint; a single-visit
// walk is not enough, since a raise converging through two observer paths can
// reach a node twice with different answers. An acyclic closure settles
// within len(closure) rounds; the cap keeps a wired cycle from spinning
// levels upward forever.
func (n *Node) refreshLevel() {
	closure := mapset.NewThreadUnsafeSet[*Node]()
	work := []*Node{n}
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]
		if closure.Contains(cur) {
			continue
		}
		closure.Add(cur)
		for ob := range cur.observers.Iter() {
			work = append(work, ob)
		}
	}

	members := closure.ToSlice()
	for range members {
		settled := true
		for _, cur := range members {
			next := 0
			for src := range cur.sources.Iter() {
				if src.level+1 > next {
					next = src.level + 1
				}
			}
			if next != cur.level {
				cur.level = next
				settled = false
			}
		}
		if settled {
			return
		}
	}
}

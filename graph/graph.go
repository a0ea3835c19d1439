package graph

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// RecomputeFunc is the graph's single outbound callback. It is invoked
// synchronously during propagation for every derived cell that must
// recompute; the owner runs the cell's compute function, updates its value
// cache and reports, by its own equality policy, whether the value actually
// changed. Only a changed cell is stamped with the current epoch, so an
// unchanged result stops the wave right there. The callback must not call
// MarkDirty on the ref it is being notified about.
type RecomputeFunc func(ref CellRef) (changed bool)

// Graph owns the node arena and implements the two-phase mark-and-propagate
// algorithm. It holds no cell values; those belong to the owner that receives
// the recompute callback.
//
// A Graph is single-threaded: callers embedding it in a concurrent host must
// serialize access externally.
type Graph struct {
	nodes       map[uint64]*Node
	epoch       uint64
	settled     uint64
	dirtyRoots  mapset.Set[*Node]
	scheduler   *UpdateScheduler
	onRecompute RecomputeFunc
	disposed    bool
}

func New(onRecompute RecomputeFunc) *Graph {
	g := &Graph{
		nodes:       map[uint64]*Node{},
		dirtyRoots:  mapset.NewThreadUnsafeSet[*Node](),
		scheduler:   NewUpdateScheduler(),
		onRecompute: onRecompute,
	}
	g.scheduler.SetOnFlush(g.propagate)
	return g
}

// Scheduler exposes the batching scheduler so owners can group writes.
func (g *Graph) Scheduler() *UpdateScheduler { return g.scheduler }

// Batch runs fn with writes coalesced into a single propagation pass.
func (g *Graph) Batch(fn func()) { g.scheduler.Batch(fn) }

// Epoch is the current global mutation-round number.
func (g *Graph) Epoch() uint64 { return g.epoch }

func (g *Graph) NodeCount() int { return len(g.nodes) }

func (g *Graph) Contains(ref CellRef) bool {
	_, ok := g.nodes[ref.ID]
	return ok
}

func (g *Graph) GetNode(ref CellRef) *Node {
	return g.nodes[ref.ID]
}

// RegisterWritable creates the node for a root cell. Re-registering the same
// ref returns the existing node untouched.
func (g *Graph) RegisterWritable(ref CellRef) *Node {
	if g.disposed {
		return nil
	}
	if n, ok := g.nodes[ref.ID]; ok {
		return n
	}
	n := newNode(ref, false)
	g.nodes[ref.ID] = n
	return n
}

// RegisterComputed creates or rewires the node for a derived cell. The source
// edge set is unconditionally rebuilt from deps, supporting dependency lists
// that change between recomputations. Deps without a registered node are
// silently dropped; registration order is the owner's business.
func (g *Graph) RegisterComputed(ref CellRef, deps []CellRef) *Node {
	if g.disposed {
		return nil
	}
	n, ok := g.nodes[ref.ID]
	if !ok {
		n = newNode(ref, true)
		g.nodes[ref.ID] = n
	}
	n.isComputed = true
	n.clearSources()
	for _, dep := range deps {
		src, ok := g.nodes[dep.ID]
		if !ok || src == n {
			continue
		}
		n.addSource(src)
	}
	n.state = StateClean
	return n
}

// RegisterEffect is RegisterComputed under another name: the graph treats
// effects and computeds identically, the owner tells them apart.
func (g *Graph) RegisterEffect(ref CellRef, deps []CellRef) *Node {
	return g.RegisterComputed(ref, deps)
}

// Unregister removes the node and severs its edges in both directions. A ref
// with no node is a no-op.
func (g *Graph) Unregister(ref CellRef) {
	n, ok := g.nodes[ref.ID]
	if !ok {
		return
	}

	// If n is a pending dirty root, its observers already sit in check and
	// would otherwise be stranded there once n is gone. Handing them to the
	// next flush as entry points lets the ordinary changed-source test settle
	// them, back to clean or onward if some other root reached them too.
	if g.dirtyRoots.Contains(n) {
		rescued := false
		for ob := range n.observers.Iter() {
			if ob.state != StateClean {
				g.dirtyRoots.Add(ob)
				rescued = true
			}
		}
		if rescued {
			defer g.scheduler.ScheduleFlush()
		}
	}

	for src := range n.sources.Iter() {
		src.observers.Remove(n)
	}
	for _, ob := range n.Observers() {
		ob.sources.Remove(n)
		ob.refreshLevel()
	}
	n.sources.Clear()
	n.observers.Clear()
	g.dirtyRoots.Remove(n)
	delete(g.nodes, ref.ID)
}

// MarkDirty is Phase 1. The owner calls it right after a root cell's
// canonical value changed: the node goes dirty at a fresh epoch, everything
// downstream goes check, and a flush is scheduled. Unregistered refs are
// no-ops so teardown races stay benign.
func (g *Graph) MarkDirty(ref CellRef) {
	n, ok := g.nodes[ref.ID]
	if !ok {
		return
	}
	g.epoch++
	n.epoch = g.epoch
	n.state = StateDirty
	g.dirtyRoots.Add(n)

	// Worklist walk over observers. Only a clean->check transition enqueues,
	// so the walk terminates even if the owner has wired a cycle.
	work := n.Observers()
	for len(work) > 0 {
		ob := work[len(work)-1]
		work = work[:len(work)-1]
		if ob.state != StateClean {
			continue
		}
		ob.state = StateCheck
		work = append(work, ob.Observers()...)
	}

	g.scheduler.ScheduleFlush()
}

// propagate is Phase 2, invoked through the scheduler's flush callback.
func (g *Graph) propagate() {
	if g.dirtyRoots.Cardinality() == 0 {
		return
	}
	roots := g.dirtyRoots.ToSlice()
	g.dirtyRoots.Clear()

	// A source "changed this round" iff it was stamped after the previous
	// pass settled. A plain equality test against the current epoch would
	// lose writes when one batch marks several roots, since every MarkDirty
	// advances the epoch.
	floor := g.settled
	g.settled = g.epoch

	affected := sortByLevel(collectAffected(roots))
	for _, n := range affected {
		switch n.state {
		case StateClean:
			continue
		case StateCheck:
			changed := false
			for _, src := range n.Sources() {
				if src.epoch > floor {
					changed = true
					break
				}
			}
			if !changed {
				// Provably unaffected: the mutation flowed around this
				// node, not through it.
				n.state = StateClean
				continue
			}
			n.state = StateDirty
		}

		// By level order every source has already been finalized for this
		// round, so the epoch test above never saw a stale answer.
		if n.isComputed {
			changed := true
			if g.onRecompute != nil {
				changed = g.onRecompute(n.ref)
			}
			if changed {
				n.epoch = g.epoch
			}
		}
		n.state = StateClean
	}
}

// WouldCreateCycle reports whether target is already reachable from source
// through observer edges; wiring source to read from target would then close
// a cycle. Advisory only: RegisterComputed accepts whatever edges it is
// given.
func (g *Graph) WouldCreateCycle(source, target CellRef) bool {
	src, ok := g.nodes[source.ID]
	if !ok {
		return false
	}
	dst, ok := g.nodes[target.ID]
	if !ok {
		return false
	}
	visited := mapset.NewThreadUnsafeSet[*Node]()
	work := []*Node{src}
	for len(work) > 0 {
		n := work[len(work)-1]
		work = work[:len(work)-1]
		if n == dst {
			return true
		}
		if visited.Contains(n) {
			continue
		}
		visited.Add(n)
		work = append(work, n.Observers()...)
	}
	return false
}

// Dispose drops every node and any pending dirty roots. The graph is not
// usable afterwards.
func (g *Graph) Dispose() {
	g.nodes = map[uint64]*Node{}
	g.dirtyRoots.Clear()
	g.disposed = true
}

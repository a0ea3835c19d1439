package store_test

import (
	"testing"

	"github.com/cellgraph/cellgraph/graph"
	"github.com/cellgraph/cellgraph/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(func(ref graph.CellRef, err error) {
		assert.FailNow(t, err.Error())
	})
}

func TestCounterDoubled(t *testing.T) {
	st := newStore(t)

	counter := store.NamedSignal(st, "counter", 0)
	callCount := 0
	doubled := store.Computed1(st, counter, func(v int) int {
		callCount++
		return v * 2
	})
	callCount = 0 // ignore the initial compute

	counter.SetValue(5)
	assert.Equal(t, 10, doubled.Value())
	assert.Equal(t, 1, callCount)
}

func TestDiamondUpdatesOnce(t *testing.T) {
	// In this scenario "D" should only update once when "A" receives
	// an update, and must never see B and C out of step.
	//     A
	//   /   \
	//  B     C
	//   \   /
	//     D
	st := newStore(t)

	a := store.Signal(st, "a")
	b := store.Computed1(st, a, func(v string) string { return v })
	c := store.Computed1(st, a, func(v string) string { return v })

	callCount := 0
	var seen []string
	d := store.Computed2(st, b, c, func(bv, cv string) string {
		callCount++
		seen = append(seen, bv+" "+cv)
		return bv + " " + cv
	})
	callCount = 0
	seen = nil

	a.SetValue("aa")
	assert.Equal(t, "aa aa", d.Value())
	assert.Equal(t, 1, callCount)
	// never a torn read with only one side updated
	assert.Equal(t, []string{"aa aa"}, seen)
}

func TestDiamondTail(t *testing.T) {
	//     A
	//   /   \
	//  B     C
	//   \   /
	//     D
	//     |
	//     E
	st := newStore(t)

	a := store.Signal(st, "a")
	b := store.Computed1(st, a, func(v string) string { return v })
	c := store.Computed1(st, a, func(v string) string { return v })
	d := store.Computed2(st, b, c, func(bv, cv string) string { return bv + " " + cv })

	eCallCount := 0
	e := store.Computed1(st, d, func(dv string) string {
		eCallCount++
		return dv
	})
	eCallCount = 0

	a.SetValue("aa")
	assert.Equal(t, "aa aa", e.Value())
	assert.Equal(t, 1, eCallCount)
}

func TestBailOutIfResultIsTheSame(t *testing.T) {
	// Bail out if value of "B" never changes
	// A->B->C
	st := newStore(t)

	a := store.Signal(st, "a")
	b := store.Computed1(st, a, func(v string) string {
		return "foo"
	})

	callCount := 0
	c := store.Computed1(st, b, func(v string) string {
		callCount++
		return v
	})
	callCount = 0

	a.SetValue("aa")
	assert.Equal(t, "foo", c.Value())
	assert.Equal(t, 0, callCount)
}

func TestUnsettledSiblingsStillUpdate(t *testing.T) {
	// "C" always returns the same value, but "D" must still update
	// because "B" changed.
	//     A
	//   /   \
	//  B     *C <- returns same value every time
	//   \   /
	//     D
	st := newStore(t)

	a := store.Signal(st, "a")
	b := store.Computed1(st, a, func(v string) string { return v })
	c := store.Computed1(st, a, func(v string) string {
		return "c"
	})
	dCallCount := 0
	d := store.Computed2(st, b, c, func(bv, cv string) string {
		dCallCount++
		return bv + " " + cv
	})
	dCallCount = 0

	a.SetValue("aa")
	assert.Equal(t, "aa c", d.Value())
	assert.Equal(t, 1, dCallCount)
}

func TestBatchCoalescesWrites(t *testing.T) {
	st := newStore(t)

	a := store.Signal(st, 1)
	callCount := 0
	dbl := store.Computed1(st, a, func(v int) int {
		callCount++
		return v * 2
	})
	callCount = 0

	st.Batch(func() {
		a.SetValue(2)
		a.SetValue(3)
		a.SetValue(4)
		// nothing settles mid-batch
		assert.Equal(t, 0, callCount)
		assert.Equal(t, 2, dbl.Value())
	})
	assert.Equal(t, 8, dbl.Value())
	assert.Equal(t, 1, callCount)
}

func TestNestedBatchesFlatten(t *testing.T) {
	st := newStore(t)

	a := store.Signal(st, 1)
	callCount := 0
	store.Computed1(st, a, func(v int) int {
		callCount++
		return v
	})
	callCount = 0

	st.Batch(func() {
		a.SetValue(2)
		st.Batch(func() {
			a.SetValue(3)
		})
		// the inner batch must not trigger an intermediate flush
		assert.Equal(t, 0, callCount)
	})
	assert.Equal(t, 1, callCount)
}

func TestBatchWithTwoRoots(t *testing.T) {
	st := newStore(t)

	x := store.Signal(st, 1)
	y := store.Signal(st, 10)
	sum := store.Computed2(st, x, y, func(xv, yv int) int { return xv + yv })

	st.Batch(func() {
		x.SetValue(2)
		y.SetValue(20)
	})
	assert.Equal(t, 22, sum.Value())
}

func TestEffectRunsAndDisposes(t *testing.T) {
	st := newStore(t)

	a := store.Signal(st, 1)
	dbl := store.Computed1(st, a, func(v int) int { return v * 2 })

	var got []int
	dispose := store.Effect(st, func() error {
		got = append(got, dbl.Value())
		return nil
	}, dbl)
	require.Equal(t, []int{2}, got)

	a.SetValue(2)
	assert.Equal(t, []int{2, 4}, got)

	dispose()
	a.SetValue(3)
	assert.Equal(t, []int{2, 4}, got)
}

func TestEffectSeesSettledDiamond(t *testing.T) {
	st := newStore(t)

	a := store.Signal(st, 1)
	b := store.Computed1(st, a, func(v int) int { return v + 1 })
	c := store.Computed1(st, a, func(v int) int { return v * 10 })

	var snapshots [][2]int
	store.Effect(st, func() error {
		snapshots = append(snapshots, [2]int{b.Value(), c.Value()})
		return nil
	}, b, c)
	snapshots = nil

	a.SetValue(2)
	// one run, both inputs already settled
	assert.Equal(t, [][2]int{{3, 20}}, snapshots)
}

func TestRewireSwapsDependencies(t *testing.T) {
	st := newStore(t)

	a := store.Signal(st, 1)
	b := store.Signal(st, 100)
	callCount := 0
	c := store.Computed(st, func() int {
		callCount++
		return a.Value() + b.Value()
	}, a)
	callCount = 0

	// only wired to a: writes to b do nothing
	b.SetValue(200)
	assert.Equal(t, 0, callCount)

	c.Rewire(b)
	callCount = 0

	a.SetValue(2)
	assert.Equal(t, 0, callCount)
	b.SetValue(300)
	assert.Equal(t, 1, callCount)

	// stale edge really is gone on the graph side
	aNode := st.Graph().GetNode(a.Ref())
	cNode := st.Graph().GetNode(c.Ref())
	require.NotNil(t, aNode)
	require.NotNil(t, cNode)
	assert.False(t, aNode.HasObserver(cNode))
	assert.False(t, cNode.HasSource(aNode))
}

func TestWatchNotifiesOnChangeOnly(t *testing.T) {
	st := newStore(t)

	a := store.Signal(st, 1)
	dbl := store.Computed1(st, a, func(v int) int { return v * 2 })

	var got []int
	unwatch := dbl.Watch(func(v int) { got = append(got, v) })
	assert.Equal(t, 1, st.Graph().GetNode(dbl.Ref()).SubscriberCount())

	a.SetValue(2)
	a.SetValue(2) // no-op write
	assert.Equal(t, []int{4}, got)

	unwatch()
	a.SetValue(3)
	assert.Equal(t, []int{4}, got)
	assert.Equal(t, 0, st.Graph().GetNode(dbl.Ref()).SubscriberCount())
}

func TestComputePanicRoutedToOnError(t *testing.T) {
	var errs []error
	st := store.New(func(ref graph.CellRef, err error) {
		errs = append(errs, err)
	})

	a := store.Signal(st, 1)
	blowUp := false
	c := store.Computed1(st, a, func(v int) int {
		if blowUp {
			panic("fail")
		}
		return v
	})

	blowUp = true
	assert.NotPanics(t, func() {
		a.SetValue(2)
	})
	require.Len(t, errs, 1)
	// previous value survives a failed compute
	assert.Equal(t, 1, c.Value())
}

func TestReentrantEffectWrite(t *testing.T) {
	st := newStore(t)

	a := store.Signal(st, 1)
	b := store.Signal(st, 0)
	dbl := store.Computed1(st, a, func(v int) int { return v * 2 })
	mirrored := store.Computed1(st, b, func(v int) int { return v })

	store.Effect(st, func() error {
		// a recompute that itself writes another root
		b.SetValue(dbl.Value())
		return nil
	}, dbl)

	a.SetValue(21)
	// the nested write is fully settled before SetValue returns
	assert.Equal(t, 42, mirrored.Value())
}

func TestUnregisterCleansStore(t *testing.T) {
	st := newStore(t)

	a := store.Signal(st, 1)
	c := store.Computed1(st, a, func(v int) int { return v })

	st.Unregister(c.Ref())
	assert.False(t, st.Graph().Contains(c.Ref()))
	assert.NotPanics(t, func() {
		a.SetValue(2)
	})
}

package store_test

import (
	"fmt"

	"github.com/cellgraph/cellgraph/graph"
	"github.com/cellgraph/cellgraph/store"
)

func Example() {
	st := store.New(func(ref graph.CellRef, err error) {
		panic(err)
	})

	celsius := store.NamedSignal(st, "celsius", 20)
	fahrenheit := store.Computed1(st, celsius, func(c int) int {
		return c*9/5 + 32
	})
	fahrenheit.Watch(func(f int) {
		fmt.Printf("now %dF\n", f)
	})

	celsius.SetValue(25)
	celsius.SetValue(30)

	// Output:
	// now 77F
	// now 86F
}

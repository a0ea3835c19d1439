package graph

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// sortByLevel orders nodes by (level, ref id) ascending. Level ordering is
// what makes a single linear pass topologically valid; the id tie-break only
// exists so runs are reproducible.
func sortByLevel(nodes []*Node) []*Node {
	slices.SortFunc(nodes, func(a, b *Node) int {
		if a.level != b.level {
			return a.level - b.level
		}
		switch {
		case a.ref.ID < b.ref.ID:
			return -1
		case a.ref.ID > b.ref.ID:
			return 1
		default:
			return 0
		}
	})
	return nodes
}

// collectAffected walks observer edges breadth-first from the given roots and
// returns every non-clean node reached. Clean nodes terminate the walk: the
// mark phase never leaves a marked node behind a clean one, so there is
// nothing to find past them.
func collectAffected(roots []*Node) []*Node {
	visited := mapset.NewThreadUnsafeSet[*Node]()
	affected := make([]*Node, 0, len(roots))
	queue := make([]*Node, len(roots))
	copy(queue, roots)

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if visited.Contains(node) {
			continue
		}
		visited.Add(node)
		if node.state == StateClean {
			continue
		}
		affected = append(affected, node)
		for ob := range node.observers.Iter() {
			queue = append(queue, ob)
		}
	}
	return affected
}

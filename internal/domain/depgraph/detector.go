// Package depgraph builds the dependency graph of a task batch and
// detects circular dependency chains in it.
//
// The graph is ephemeral: it is rebuilt from scratch for every
// detection call and never outlives it.
package depgraph

import (
	"github.com/phrazzld/task-analyzer-api/internal/domain"
)

// Cycle is an ordered sequence of task IDs that closes on itself: the
// first ID repeats as the last element, so a self-dependency appears
// as the two-element cycle [id, id].
type Cycle []int

// dfsFrame tracks one node on the explicit traversal stack along with
// the index of the next outgoing edge to follow.
type dfsFrame struct {
	node int
	next int
}

// Detect reports every circular dependency chain found in the batch.
//
// Tasks without an ID cannot participate in the graph and are skipped.
// Dependency IDs that match no task in the batch terminate their
// branch silently; a dangling reference is not a cycle. Traversal
// roots are visited in batch order so cycle reports are reproducible
// for a fixed input. When a traversal finds a cycle it records the
// closed path and stops exploring that root; overlapping cycles may
// therefore be reported from several roots and are not deduplicated.
//
// The search is depth-first with an explicit stack, so arbitrarily
// long dependency chains cannot exhaust goroutine stack space, and the
// usual visited/on-path bookkeeping guarantees termination in O(n+e)
// no matter how tangled the graph is.
func Detect(tasks []domain.Task) []Cycle {
	adjacency := make(map[int][]int, len(tasks))
	order := make([]int, 0, len(tasks))
	for _, t := range tasks {
		if !t.HasID() {
			continue
		}
		if _, seen := adjacency[t.ID]; seen {
			continue
		}
		adjacency[t.ID] = t.Dependencies
		order = append(order, t.ID)
	}

	var cycles []Cycle
	visited := make(map[int]bool, len(order))

	for _, root := range order {
		if visited[root] {
			continue
		}
		if cycle, found := searchFrom(root, adjacency, visited); found {
			cycles = append(cycles, cycle)
		}
	}

	return cycles
}

// searchFrom runs a single depth-first traversal from root and returns
// the first cycle it closes, if any. The traversal short-circuits as
// soon as a cycle is found; its on-path state is discarded with it, so
// a later root never sees stale path membership.
func searchFrom(root int, adjacency map[int][]int, visited map[int]bool) (Cycle, bool) {
	stack := []dfsFrame{{node: root}}
	path := []int{root}
	onPath := map[int]bool{root: true}
	visited[root] = true

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		edges := adjacency[top.node]

		if top.next >= len(edges) {
			// Node exhausted: leave the current path.
			onPath[top.node] = false
			path = path[:len(path)-1]
			stack = stack[:len(stack)-1]
			continue
		}

		neighbor := edges[top.next]
		top.next++

		if _, known := adjacency[neighbor]; !known {
			// Dangling reference to a task outside the batch.
			continue
		}
		if onPath[neighbor] {
			return closePath(path, neighbor), true
		}
		if visited[neighbor] {
			continue
		}

		visited[neighbor] = true
		onPath[neighbor] = true
		path = append(path, neighbor)
		stack = append(stack, dfsFrame{node: neighbor})
	}

	return nil, false
}

// closePath extracts the cycle from the current path: the suffix
// starting at the revisited node, with that node appended again to
// close the loop.
func closePath(path []int, start int) Cycle {
	from := 0
	for i, id := range path {
		if id == start {
			from = i
			break
		}
	}

	cycle := make(Cycle, 0, len(path)-from+1)
	cycle = append(cycle, path[from:]...)
	cycle = append(cycle, start)
	return cycle
}

// File: methods_nodes.go
// Role: Node insertion and membership queries.
//
// Determinism:
//   - Nodes() returns labels sorted lexicographically ascending.

package core

import "sort"

// AddNode inserts label with an empty adjacency list if it is not already
// present.
//
// Returns:
//   - true if the node was newly added, false if it already existed.
//
// Existing adjacency lists are never touched. The empty string is an
// ordinary label.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(label string) bool {
	if _, exists := g.table.Lookup(label); exists {
		return false
	}
	g.table.Store(label, []Neighbor{})

	return true
}

// Contains reports whether label is a node of the graph.
// Complexity: O(1).
func (g *Graph) Contains(label string) bool {
	_, ok := g.table.Lookup(label)

	return ok
}

// Nodes returns every node label exactly once, sorted ascending.
// An empty graph yields an empty, non-nil slice.
//
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	labels := g.table.Labels()
	out := make([]string, len(labels))
	copy(out, labels)
	sort.Strings(out)

	return out
}

// NodeCount returns the number of nodes. Complexity: O(1) for MapTable.
func (g *Graph) NodeCount() int {
	return g.table.Len()
}

// Neighbors returns a copy of label's adjacency list in insertion order.
//
// Errors:
//   - ErrNodeNotInGraph (wrapped with the label) if label is not a node.
//
// Complexity: O(deg(label)).
func (g *Graph) Neighbors(label string) ([]Neighbor, error) {
	nbrs, ok := g.table.Lookup(label)
	if !ok {
		return nil, nodeError(label)
	}
	out := make([]Neighbor, len(nbrs))
	copy(out, nbrs)

	return out, nil
}

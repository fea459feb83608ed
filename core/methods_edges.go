// File: methods_edges.go
// Role: Edge insertion and queries: AddEdge/HasEdge/Weight/Edges/EdgeCount.
//
// Determinism:
//   - Edges() visits nodes in ascending label order and, within a node,
//     follows neighbor insertion order.
//
// Invariants kept by AddEdge:
//   - both endpoints exist before any entry references them;
//   - (a,b,w) is stored iff (b,a,w) is stored, with the same weight;
//   - a list never holds two entries with the same label.

package core

import "fmt"

// AddEdge records the undirected edge {a,b} with the given weight.
//
// Implementation:
//   - Stage 1: AddNode(a), AddNode(b) (idempotent).
//   - Stage 2: Append (b,weight) to a's list unless a label b entry exists.
//   - Stage 3: Append (a,weight) to b's list unless a label a entry exists.
//
// Behavior highlights:
//   - Duplicate detection compares labels only. Re-adding an existing pair with
//     a different weight is a silent no-op: the first weight is kept.
//   - A self-loop AddEdge(a,a,w) stores exactly one (a,w) entry in a's list.
//   - Never fails.
//
// Complexity: O(deg(a) + deg(b)).
func (g *Graph) AddEdge(a, b string, weight int64) {
	g.AddNode(a)
	g.AddNode(b)

	g.link(a, b, weight)
	g.link(b, a, weight)
}

// link appends (to,weight) to from's list if from has no entry labelled to.
// from must already be a node.
func (g *Graph) link(from, to string, weight int64) {
	nbrs, _ := g.table.Lookup(from)
	if indexOf(nbrs, to) >= 0 {
		return
	}
	g.table.Store(from, append(nbrs, Neighbor{Label: to, Weight: weight}))
}

// HasEdge reports whether a's adjacency list holds an entry for b.
// Unknown labels yield false. Complexity: O(deg(a)).
func (g *Graph) HasEdge(a, b string) bool {
	nbrs, ok := g.table.Lookup(a)

	return ok && indexOf(nbrs, b) >= 0
}

// Weight returns the weight stored on a's entry for b.
//
// Errors:
//   - ErrNodeNotInGraph if a is not a node.
//   - ErrEdgeNotFound if a has no entry for b.
//
// Complexity: O(deg(a)).
func (g *Graph) Weight(a, b string) (int64, error) {
	nbrs, ok := g.table.Lookup(a)
	if !ok {
		return 0, nodeError(a)
	}
	i := indexOf(nbrs, b)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q -> %q", ErrEdgeNotFound, a, b)
	}

	return nbrs[i].Weight, nil
}

// Edges flattens every adjacency list into (from, to, weight) triples.
//
// Each undirected edge appears twice, once per direction; a self-loop
// appears once. An empty graph yields an empty, non-nil slice.
//
// Complexity: O(V log V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0)
	var (
		from string
		nb   Neighbor
	)
	for _, from = range g.Nodes() {
		nbrs, _ := g.table.Lookup(from)
		for _, nb = range nbrs {
			out = append(out, Edge{From: from, To: nb.Label, Weight: nb.Weight})
		}
	}

	return out
}

// EdgeCount returns the number of logical undirected edges: every pair
// {a,b} with a != b counts once, every self-loop counts once.
//
// Complexity: O(V + E).
func (g *Graph) EdgeCount() int {
	s := g.Stats()

	return s.EdgeCount
}

// indexOf returns the position of the entry labelled label in nbrs, or -1.
func indexOf(nbrs []Neighbor, label string) int {
	for i := range nbrs {
		if nbrs[i].Label == label {
			return i
		}
	}

	return -1
}

// nodeError wraps ErrNodeNotInGraph with the offending label.
func nodeError(label string) error {
	return fmt.Errorf("%w: %q", ErrNodeNotInGraph, label)
}

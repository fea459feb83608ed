// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics facade over Graph.
// Policy:
//   - No mutation here.
//   - Every exported function documents complexity.

package core

// AdjacencyGraph is the operation set shared by Graph and SyncGraph.
type AdjacencyGraph interface {
	AddNode(label string) bool
	AddEdge(a, b string, weight int64)
	Contains(label string) bool
	Nodes() []string
	Edges() []Edge
	Neighbors(label string) ([]Neighbor, error)
	HasEdge(a, b string) bool
	Weight(a, b string) (int64, error)
	NodeCount() int
	EdgeCount() int
	Stats() GraphStats
}

// Compile-time checks.
var (
	_ AdjacencyGraph = (*Graph)(nil)
	_ AdjacencyGraph = (*SyncGraph)(nil)
	_ Table          = (*MapTable)(nil)
)

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	// NodeCount is the number of node labels.
	NodeCount int

	// EdgeCount is the number of logical undirected edges (self-loops included once).
	EdgeCount int

	// SelfLoops is the number of nodes carrying a self-referencing entry.
	SelfLoops int

	// Entries is the total number of adjacency entries across all lists.
	// For a well-formed graph Entries == 2*(EdgeCount-SelfLoops) + SelfLoops.
	Entries int
}

// Stats produces a read-only snapshot of node and edge counts.
//
// Implementation:
//   - Stage 1: Walk every adjacency list once.
//   - Stage 2: Count self-referencing entries separately from ordinary ones.
//   - Stage 3: Halve the ordinary entry count (each is mirrored) and add loops.
//
// Returns:
//   - GraphStats: value snapshot; later mutations do not affect it.
//
// Complexity:
//   - Time O(V + E), Space O(V) for the label listing.
//
// Notes:
//   - The halving relies on the symmetry invariant maintained by AddEdge.
func (g *Graph) Stats() GraphStats {
	stats := GraphStats{NodeCount: g.table.Len()}

	var (
		label string
		nb    Neighbor
	)
	for _, label = range g.table.Labels() {
		nbrs, _ := g.table.Lookup(label)
		for _, nb = range nbrs {
			stats.Entries++
			if nb.Label == label {
				stats.SelfLoops++
			}
		}
	}
	stats.EdgeCount = (stats.Entries-stats.SelfLoops)/2 + stats.SelfLoops

	return stats
}

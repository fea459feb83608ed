// Package core defines the adjacency-table Graph, its Neighbor and Edge
// value types, the Table storage contract, and the NewGraph constructor.
//
// This file declares the types, sentinel errors, and GraphOption helpers.
//
// Errors:
//
//	ErrNodeNotInGraph - requested node label is not a key of the table.
//	ErrEdgeNotFound   - the node exists but has no entry for the neighbor.
package core

import "errors"

// Sentinel errors for core graph queries.
//
// None of AddNode, AddEdge, Contains, Nodes or Edges ever returns them;
// they are reserved for operations that require a node to already exist.
var (
	// ErrNodeNotInGraph indicates an operation referenced a label absent from the table.
	ErrNodeNotInGraph = errors.New("core: accessing a node that is not in the graph")

	// ErrEdgeNotFound indicates the node exists but has no entry for the requested neighbor.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Neighbor is a single adjacency-list entry: the label at the other end
// of an edge and the weight recorded for it.
type Neighbor struct {
	// Label is the neighbor node's label.
	Label string

	// Weight is the weight of the connecting edge.
	Weight int64
}

// Edge is one directed view of an undirected edge, as produced by Graph.Edges.
//
// A logical edge {A,B,w} is reported twice: (A,B,w) and (B,A,w).
// A self-loop {A,A,w} is reported once.
type Edge struct {
	// From is the node whose adjacency list holds the entry.
	From string

	// To is the neighbor label of that entry.
	To string

	// Weight is the edge weight.
	Weight int64
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithTable makes the Graph store its adjacency lists in t instead of a
// fresh MapTable. A nil t is ignored.
//
// The table should be empty; NewGraph does not validate pre-existing content.
func WithTable(t Table) GraphOption {
	return func(g *Graph) {
		if t != nil {
			g.table = t
		}
	}
}

// WithCapacity pre-sizes the default map table for n nodes.
// It has no effect when combined with WithTable, or when n <= 0.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) { g.capacity = n }
}

// Graph is an undirected weighted graph stored as an adjacency table.
//
// Every graph operation is written once here against the Table contract,
// so any Table implementation gets identical behavior.
//
// Graph is not safe for concurrent use; see SyncGraph.
type Graph struct {
	table    Table
	capacity int // size hint for the default table
}

// NewGraph creates an empty Graph and applies opts left to right.
// By default the graph is backed by a MapTable.
//
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	var opt GraphOption
	for _, opt = range opts {
		opt(g)
	}
	if g.table == nil {
		g.table = NewMapTable(g.capacity)
	}

	return g
}

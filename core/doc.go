// Package core provides a small in-memory undirected weighted graph stored
// as an adjacency table: a mapping from node label to an ordered list of
// (neighbor label, weight) entries.
//
// Representation:
//
//	table["a"] = [{b 5} {c 7}]
//	table["b"] = [{a 5} {c 10}]
//	table["c"] = [{b 10} {a 7}]
//
// Every edge {A,B,w} is stored twice, as (B,w) in A's list and (A,w) in B's
// list. There is no separate edge set; the table is the only source of truth.
//
// Storage contract:
//
//	Table is the capability set {Lookup, Store, Labels, Len}. Graph implements
//	all node and edge logic once on top of it, so an alternative representation
//	only supplies a Table and is passed in with WithTable. MapTable is the default.
//
// Core Methods:
//
//	NewGraph(opts ...GraphOption) *Graph     // O(1)
//	AddNode(label string) bool               // O(1), true iff newly added
//	AddEdge(a, b string, weight int64)       // O(deg a + deg b), never fails
//	Contains(label string) bool              // O(1)
//	Nodes() []string                         // O(V log V), sorted, no duplicates
//	Edges() []Edge                           // O(V log V + E), each edge twice
//
// Extra queries:
//
//	Neighbors(label string) ([]Neighbor, error) // ErrNodeNotInGraph if absent
//	HasEdge(a, b string) bool
//	Weight(a, b string) (int64, error)          // ErrNodeNotInGraph / ErrEdgeNotFound
//	NodeCount() int
//	EdgeCount() int                             // logical edges, loops once
//	Stats() GraphStats
//
// Edge policy:
//
//   - Duplicates are detected by neighbor label only. Adding {a,b} a second
//     time, with any weight, leaves the first weight in place.
//   - Self-loops are allowed: AddEdge(a, a, w) stores a single (a,w) entry.
//   - Nodes are never removed.
//
// Errors:
//
//	ErrNodeNotInGraph - label is not a node (Neighbors, Weight)
//	ErrEdgeNotFound   - node exists but has no entry for the neighbor (Weight)
//
// Reads on the five core methods never fail: unknown labels give false or
// empty results, and writes create missing endpoints.
//
// Concurrency:
//
//	Graph does no locking and must not be mutated from several goroutines.
//	SyncGraph wraps a Graph in one sync.RWMutex for shared use.
package core

// Package adjgraph is a small in-memory undirected weighted graph built on
// an adjacency table: every node label maps to the ordered list of its
// (neighbor, weight) entries, and every edge is stored once in each
// endpoint's list.
//
// What is in the module:
//
//	core/     — Graph, Table, MapTable, SyncGraph and the Neighbor/Edge types
//	examples/ — runnable programs built on core
//
// Quick ASCII example:
//
//	    a──5──b
//	     \    │
//	      7   10
//	       \  │
//	         c
//
// is built with
//
//	g := core.NewGraph()
//	g.AddEdge("a", "b", 5)
//	g.AddEdge("b", "c", 10)
//	g.AddEdge("c", "a", 7)
//
// and g.Edges() then reports all six directed triples.
//
// There are no traversal or shortest-path algorithms here, no persistence
// and no node removal.
//
//	go get github.com/katalvlaran/adjgraph
package adjgraph

// File: sync.go
// Role: Externally synchronized Graph for callers that share one instance
//       across goroutines.
//
// Concurrency:
//   - One sync.RWMutex guards the whole Graph.
//   - AddNode/AddEdge take the write lock, so the duplicate check and the
//     append of each AddEdge happen atomically together.
//   - Every query takes the read lock and returns copies.

package core

import "sync"

// SyncGraph wraps a Graph with a single reader/writer lock.
// The zero value is not usable; construct with NewSyncGraph.
type SyncGraph struct {
	mu sync.RWMutex
	g  *Graph
}

// NewSyncGraph creates an empty, lock-protected Graph configured by opts.
func NewSyncGraph(opts ...GraphOption) *SyncGraph {
	return &SyncGraph{g: NewGraph(opts...)}
}

// AddNode is the locked form of Graph.AddNode.
func (s *SyncGraph) AddNode(label string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.AddNode(label)
}

// AddEdge is the locked form of Graph.AddEdge.
func (s *SyncGraph) AddEdge(a, b string, weight int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.g.AddEdge(a, b, weight)
}

// Contains is the locked form of Graph.Contains.
func (s *SyncGraph) Contains(label string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Contains(label)
}

// Nodes is the locked form of Graph.Nodes.
func (s *SyncGraph) Nodes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Nodes()
}

// Edges is the locked form of Graph.Edges.
func (s *SyncGraph) Edges() []Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Edges()
}

// Neighbors is the locked form of Graph.Neighbors.
func (s *SyncGraph) Neighbors(label string) ([]Neighbor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Neighbors(label)
}

// HasEdge is the locked form of Graph.HasEdge.
func (s *SyncGraph) HasEdge(a, b string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.HasEdge(a, b)
}

// Weight is the locked form of Graph.Weight.
func (s *SyncGraph) Weight(a, b string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Weight(a, b)
}

// Stats is the locked form of Graph.Stats.
func (s *SyncGraph) Stats() GraphStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Stats()
}

// NodeCount is the locked form of Graph.NodeCount.
func (s *SyncGraph) NodeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.NodeCount()
}

// EdgeCount is the locked form of Graph.EdgeCount.
func (s *SyncGraph) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.EdgeCount()
}

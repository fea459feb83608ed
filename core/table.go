// File: table.go
// Role: Storage contract behind Graph and its default map-backed implementation.
//
// Determinism:
//   - Tables may return labels in any order; Graph sorts them.
//
// Concurrency:
//   - MapTable performs no locking; the owner (Graph or SyncGraph) serializes access.

package core

// Table is the storage capability set a graph representation exposes.
//
// Lookup and Labels read the table; Store mutates it. Graph builds all of
// its node and edge logic on these primitives only.
type Table interface {
	// Lookup returns the adjacency list stored under label and whether the
	// label is present. Changes to the returned slice take effect only
	// once written back with Store.
	Lookup(label string) ([]Neighbor, bool)

	// Store replaces the adjacency list for label, inserting label if absent.
	Store(label string, nbrs []Neighbor)

	// Labels returns every stored label exactly once.
	Labels() []string

	// Len returns the number of stored labels.
	Len() int
}

// MapTable is the default Table: a plain Go map from label to adjacency list.
type MapTable struct {
	adj map[string][]Neighbor
}

// NewMapTable returns an empty MapTable sized for about capacity labels.
// Non-positive capacity yields an unsized map.
func NewMapTable(capacity int) *MapTable {
	if capacity < 0 {
		capacity = 0
	}

	return &MapTable{adj: make(map[string][]Neighbor, capacity)}
}

// Lookup implements Table. Complexity: O(1).
func (t *MapTable) Lookup(label string) ([]Neighbor, bool) {
	nbrs, ok := t.adj[label]

	return nbrs, ok
}

// Store implements Table. Complexity: O(1) amortized.
func (t *MapTable) Store(label string, nbrs []Neighbor) {
	t.adj[label] = nbrs
}

// Labels implements Table. Order follows Go map iteration.
// Complexity: O(V).
func (t *MapTable) Labels() []string {
	out := make([]string, 0, len(t.adj))
	for label := range t.adj {
		out = append(out, label)
	}

	return out
}

// Len implements Table. Complexity: O(1).
func (t *MapTable) Len() int { return len(t.adj) }

// SPDX-License-Identifier: MIT
// Package core_test contains test fixtures for adjgraph/core.
//
// Purpose:
//   - Provide small deterministic fixtures shared by the core tests.
//   - Provide an alternative Table implementation so Graph logic is verified
//     independently of MapTable.

package core_test

import (
	"sort"

	"github.com/katalvlaran/adjgraph/core"
)

// Common node labels used across core tests.
const (
	LabelA = "a"
	LabelB = "b"
	LabelC = "c"
	LabelX = "x"
	LabelZ = "z"

	LabelHub = "hub"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight3  = 3
	Weight5  = 5
	Weight7  = 7
	Weight10 = 10
	Weight99 = 99
)

// Concurrency sizes.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// triangleEdges lists every directed triple produced by buildTriangle.
var triangleEdges = []core.Edge{
	{From: LabelA, To: LabelB, Weight: Weight5},
	{From: LabelB, To: LabelA, Weight: Weight5},
	{From: LabelB, To: LabelC, Weight: Weight10},
	{From: LabelC, To: LabelB, Weight: Weight10},
	{From: LabelC, To: LabelA, Weight: Weight7},
	{From: LabelA, To: LabelC, Weight: Weight7},
}

// buildTriangle adds a-b(5), b-c(10), c-a(7) to g.
func buildTriangle(g core.AdjacencyGraph) {
	g.AddEdge(LabelA, LabelB, Weight5)
	g.AddEdge(LabelB, LabelC, Weight10)
	g.AddEdge(LabelC, LabelA, Weight7)
}

// sortedEdges returns a copy of es ordered by (From, To, Weight).
func sortedEdges(es []core.Edge) []core.Edge {
	out := append([]core.Edge(nil), es...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}
		return out[i].Weight < out[j].Weight
	})

	return out
}

// countEntries returns how many entries of nbrs carry label.
func countEntries(nbrs []core.Neighbor, label string) int {
	n := 0
	for _, nb := range nbrs {
		if nb.Label == label {
			n++
		}
	}

	return n
}

// sliceTable is an insertion-ordered Table kept in parallel slices.
// It stands in for an alternative graph representation.
type sliceTable struct {
	labels []string
	lists  [][]core.Neighbor
	stores int // number of Store calls, for wiring assertions
}

func (t *sliceTable) find(label string) int {
	for i, l := range t.labels {
		if l == label {
			return i
		}
	}

	return -1
}

func (t *sliceTable) Lookup(label string) ([]core.Neighbor, bool) {
	i := t.find(label)
	if i < 0 {
		return nil, false
	}

	return t.lists[i], true
}

func (t *sliceTable) Store(label string, nbrs []core.Neighbor) {
	t.stores++
	if i := t.find(label); i >= 0 {
		t.lists[i] = nbrs
		return
	}
	t.labels = append(t.labels, label)
	t.lists = append(t.lists, nbrs)
}

// Labels deliberately returns reverse insertion order.
func (t *sliceTable) Labels() []string {
	out := make([]string, 0, len(t.labels))
	for i := len(t.labels) - 1; i >= 0; i-- {
		out = append(out, t.labels[i])
	}

	return out
}

func (t *sliceTable) Len() int { return len(t.labels) }

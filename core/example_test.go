package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/adjgraph/core"
)

// ExampleGraph builds a weighted triangle and lists its nodes and edges.
func ExampleGraph() {
	g := core.NewGraph()

	// AddEdge creates a, b and c on the fly.
	g.AddEdge("a", "b", 5)
	g.AddEdge("b", "c", 10)
	g.AddEdge("c", "a", 7)

	fmt.Println("Nodes:", g.Nodes())
	fmt.Println("Contains z?", g.Contains("z"))
	for _, e := range g.Edges() {
		fmt.Printf("%s-%s %d\n", e.From, e.To, e.Weight)
	}
	fmt.Println("Logical edges:", g.EdgeCount())

	// Output:
	// Nodes: [a b c]
	// Contains z? false
	// a-b 5
	// a-c 7
	// b-a 5
	// b-c 10
	// c-b 10
	// c-a 7
	// Logical edges: 3
}

// ExampleGraph_AddEdge shows that the first weight recorded for a pair is kept.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()
	g.AddEdge("u", "v", 1)
	g.AddEdge("v", "u", 42) // same pair: ignored

	w, _ := g.Weight("u", "v")
	fmt.Println(w, len(g.Edges()))

	// Output:
	// 1 2
}

// ExampleGraph_AddNode demonstrates the insertion flag.
func ExampleGraph_AddNode() {
	g := core.NewGraph()
	fmt.Println(g.AddNode("x"), g.AddNode("x"))

	// Output:
	// true false
}

// ExampleGraph_Neighbors shows the unknown-node error.
func ExampleGraph_Neighbors() {
	g := core.NewGraph()
	g.AddEdge("a", "b", 3)

	nbrs, _ := g.Neighbors("a")
	fmt.Println(nbrs)

	_, err := g.Neighbors("q")
	fmt.Println(errors.Is(err, core.ErrNodeNotInGraph))

	// Output:
	// [{b 3}]
	// true
}

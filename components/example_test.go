package components_test

import (
	"fmt"

	"github.com/katalvlaran/gryf/components"
	"github.com/katalvlaran/gryf/core"
)

// ExampleConnectedComponents partitions a small graph with two islands and
// an isolated node.
func ExampleConnectedComponents() {
	g := core.NewUndirectedGraph()
	for _, k := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		_ = g.AddNode(k, nil)
	}
	_, _ = g.AddEdge("", "1", "2", nil)
	_, _ = g.AddEdge("", "2", "3", nil)
	_, _ = g.AddEdge("", "3", "4", nil)
	_, _ = g.AddEdge("", "2", "4", nil)
	_, _ = g.AddEdge("", "5", "6", nil)

	comps, _ := components.ConnectedComponents(g)
	for _, comp := range comps {
		fmt.Println(comp)
	}

	// Output:
	// [1 2 4 3]
	// [5 6]
	// [7]
}

// ExampleCropToLargestConnectedComponent trims a graph down to its largest
// island in place.
func ExampleCropToLargestConnectedComponent() {
	g := core.NewUndirectedGraph()
	for _, k := range []string{"a", "b", "c", "x", "y"} {
		_ = g.AddNode(k, nil)
	}
	_, _ = g.AddEdge("", "a", "b", nil)
	_, _ = g.AddEdge("", "b", "c", nil)
	_, _ = g.AddEdge("", "x", "y", nil)

	_ = components.CropToLargestConnectedComponent(g)
	fmt.Println(g.Nodes(), g.Order(), g.Size())

	// Output:
	// [a b c] 3 2
}

// Package partition_test: runnable examples for the constructor and the
// move protocol.
package partition_test

import (
	"fmt"

	"github.com/katalvlaran/blockpart/partition"
)

// ExampleNewFromGraphWithAssignment aggregates a three-vertex graph
// (v0→v1 weight 2, v1→v2 weight 1) under the assignment {0, 0, 1}.
func ExampleNewFromGraphWithAssignment() {
	graph := []partition.VertexEdges{
		{Neighbors: []int{1}, Weights: []int64{2}},
		{Neighbors: []int{2}, Weights: []int64{1}},
		{},
	}
	p, err := partition.NewFromGraphWithAssignment(2, graph, 0.5, []int{0, 0, 1})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("blocks:", p.NumBlocks())
	fmt.Print(p.Blockmodel())
	// Output:
	// blocks: 2
	// [2, 1]
	// [0, 0]
}

// ExamplePartition_MoveVertex commits a driver-computed move of vertex 1
// from block 0 to block 1: the assignment entry, the replacement blockmodel
// rows/columns and the new degree vectors land together.
func ExamplePartition_MoveVertex() {
	graph := []partition.VertexEdges{
		{Neighbors: []int{1}, Weights: []int64{2}},
		{Neighbors: []int{2}, Weights: []int64{1}},
		{},
	}
	p, _ := partition.NewFromGraphWithAssignment(2, graph, 0.5, []int{0, 0, 1})

	updates := partition.EdgeCountUpdates{
		BlockRow:    []int64{0, 2},
		ProposalRow: []int64{0, 1},
		BlockCol:    []int64{0, 0},
		ProposalCol: []int64{2, 1},
	}
	err := p.MoveVertex(1, 0, 1, updates,
		[]int64{2, 1}, []int64{0, 3}, []int64{2, 4})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("assignment:", p.Assignment())
	fmt.Print(p.Blockmodel())
	// Output:
	// assignment: [0 1 1]
	// [0, 2]
	// [0, 1]
}

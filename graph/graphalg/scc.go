// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphalg

import (
	"slices"

	"github.com/aclements/go-treewalk/graph"
	"github.com/aclements/go-treewalk/recursive"
)

type SCCFlags int

const (
	// SCCSubNodeComponent instructs SCC to record a mapping from
	// subnode to component ID containing that subnode.
	SCCSubNodeComponent SCCFlags = 1 << iota

	// SCCEdges instructs SCC to record edges between components.
	// Otherwise, the resulting SCC graph will have a node for
	// each strongly-connected component, but no edges.
	SCCEdges
)

// SCC computes the strongly-connected components of g.
//
// The result is itself a graph with one node per component.
// Components are numbered in reverse topological order: every edge
// of the component graph goes from a higher component ID to a lower
// one.
func SCC(g graph.Graph, flags SCCFlags) *SCCGraph {
	var sccs SCCGraph

	if flags&SCCEdges != 0 {
		// Edge construction requires sub-graph ID ->
		// component ID mapping.
		flags |= SCCSubNodeComponent
	}

	// This is Kosaraju's algorithm as presented in Sedgewick,
	// Algorithms, Fourth Edition, section 4.2. The first pass
	// finds a post-order of the transpose of g. Walking g in the
	// reverse of that order then reaches the sink components of g
	// first, and each walk stays inside one component because the
	// components found earlier are already marked.
	numNodes := g.NumNodes()
	marks := NewNodeMarks()
	gt := graph.Transpose(g)
	finish := make([]int, 0, numNodes)
	for nid := 0; nid < numNodes; nid++ {
		if !marks.Test(nid) {
			finish = appendWalk(finish, gt, nid, marks, recursive.ChildrenThenParent)
		}
	}

	marks.Clear()
	sccs.subNodes = make([]int, 0, numNodes)
	for i := len(finish) - 1; i >= 0; i-- {
		nid := finish[i]
		if marks.Test(nid) {
			continue
		}
		sccs.subNodeIndexes = append(sccs.subNodeIndexes, len(sccs.subNodes))
		sccs.subNodes = appendWalk(sccs.subNodes, g, nid, marks, recursive.ParentThenChildren)
	}
	sccs.subNodeIndexes = append(sccs.subNodeIndexes, len(sccs.subNodes))

	if flags&SCCSubNodeComponent != 0 {
		sccs.subNodeComponent = make([]int, numNodes)
		for cid := 0; cid < sccs.NumNodes(); cid++ {
			for _, nid := range sccs.SubNodes(cid) {
				sccs.subNodeComponent[nid] = cid
			}
		}
	}

	if flags&SCCEdges != 0 {
		sccs.out = []int{}
		for cid := 0; cid < sccs.NumNodes(); cid++ {
			outStart := len(sccs.out)
			sccs.outIndexes = append(sccs.outIndexes, outStart)
			for _, nid := range sccs.SubNodes(cid) {
				for _, oid := range g.Out(nid) {
					if ocid := sccs.subNodeComponent[oid]; ocid != cid {
						sccs.out = append(sccs.out, ocid)
					}
				}
			}
			// Dedup component IDs.
			slices.Sort(sccs.out[outStart:])
			sccs.out = append(sccs.out[:outStart], slices.Compact(sccs.out[outStart:])...)
		}
		sccs.outIndexes = append(sccs.outIndexes, len(sccs.out))
	}

	return &sccs
}

// SCCGraph is the graph of strongly-connected components of a
// graph. Each node is a component.
type SCCGraph struct {
	subNodes       []int // Concatenated list of sub-graph nodes in each component
	subNodeIndexes []int // Component ID -> subNodes base index

	subNodeComponent []int // Sub-node ID -> component ID

	out        []int // Concatenated list of out-edges of each component
	outIndexes []int // Component ID -> out base index
}

// SubNodes returns the IDs of the nodes of the underlying graph in
// component cid, in the order the component was walked.
func (g *SCCGraph) SubNodes(cid int) []int {
	return g.subNodes[g.subNodeIndexes[cid]:g.subNodeIndexes[cid+1]]
}

// SubNodeComponent returns the component containing node subID of
// the underlying graph.
func (g *SCCGraph) SubNodeComponent(subID int) (componentID int) {
	if g.subNodeComponent == nil {
		panic("SCCGraph constructed without SCCSubNodeComponent flag")
	}
	return g.subNodeComponent[subID]
}

func (g *SCCGraph) NumNodes() int {
	return len(g.subNodeIndexes) - 1
}

func (g *SCCGraph) Out(cid int) []int {
	if g.out == nil {
		return nil
	}
	return g.out[g.outIndexes[cid]:g.outIndexes[cid+1]]
}

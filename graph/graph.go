// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph defines a minimal directed graph whose nodes are
// numbered densely from 0.
package graph // import "github.com/aclements/go-treewalk/graph"

// Graph represents a directed graph. The nodes of a Graph are
// numbered 0 through NumNodes()-1.
type Graph interface {
	// NumNodes returns the number of nodes in this graph.
	NumNodes() int

	// Out returns the nodes to which node i points. The caller
	// must not modify the returned slice.
	Out(i int) []int
}

// IntGraph is a Graph stored as adjacency lists indexed by node.
type IntGraph [][]int

func (g IntGraph) NumNodes() int {
	return len(g)
}

func (g IntGraph) Out(i int) []int {
	return g[i]
}

// Edges returns an IntGraph with n nodes and the given edges, each a
// pair of node IDs. Edges out of a node keep their order.
func Edges(n int, edges ...[2]int) IntGraph {
	g := make(IntGraph, n)
	for i := range g {
		g[i] = []int{}
	}
	for _, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			panic("edge endpoint out of range")
		}
		g[e[0]] = append(g[e[0]], e[1])
	}
	return g
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphalg

import (
	"github.com/aclements/go-treewalk/graph"
	"github.com/aclements/go-treewalk/recursive"
	"github.com/aclements/go-treewalk/seq"
)

// Recursive returns the depth-first spanning tree of g rooted at root
// as a recursive.Enumerable.
//
// The tree is discovered lazily as it is enumerated: a successor
// becomes a child of the first node that reaches it, exactly as in a
// recursive depth-first search, so each node reachable from root
// appears once no matter how many paths lead to it. Nodes are marked
// in visited as they are discovered; visited may be nil.
//
// Every node is a container. The Enumerable may be enumerated once;
// to walk the graph again, clear visited or pass a fresh set. Roots
// returns a root cursor that does this on Reset.
func Recursive(g graph.Graph, root int, visited *NodeMarks) recursive.Enumerable[int] {
	if root < 0 || root >= g.NumNodes() {
		panic("root not in graph")
	}
	if visited == nil {
		visited = NewNodeMarks()
	}
	visited.Mark(root)
	return graphNode{g, root, visited}
}

type graphNode struct {
	g       graph.Graph
	n       int
	visited *NodeMarks
}

func (gn graphNode) Value() int {
	return gn.n
}

func (gn graphNode) Children() seq.Cursor[recursive.Enumerable[int]] {
	succs := seq.Filter[int](seq.Slice(gn.g.Out(gn.n)), gn.visited.Admit)
	return seq.Map(succs, func(succ int) recursive.Enumerable[int] {
		return graphNode{gn.g, succ, gn.visited}
	})
}

func (gn graphNode) Containers() seq.Cursor[recursive.Enumerable[int]] {
	return gn.Children()
}

func (gn graphNode) Items() seq.Cursor[int] {
	return seq.Empty[int]()
}

// RootCursor yields the depth-first spanning trees of a graph from a
// list of roots, all sharing one visited set. Roots reached from an
// earlier root are skipped.
type RootCursor struct {
	g       graph.Graph
	roots   []int
	visited *NodeMarks
	i       int
	cur     recursive.Enumerable[int]
}

// Roots returns a cursor over the spanning trees of g rooted at each
// of roots in turn, for use with recursive.New. visited may be nil.
//
// Reset clears visited, so a reset enumeration repeats the first one.
func Roots(g graph.Graph, visited *NodeMarks, roots ...int) *RootCursor {
	if visited == nil {
		visited = NewNodeMarks()
	}
	return &RootCursor{g: g, roots: roots, visited: visited, i: -1}
}

func (c *RootCursor) MoveNext() bool {
	for c.i+1 < len(c.roots) {
		c.i++
		root := c.roots[c.i]
		if root >= 0 && c.visited.Test(root) {
			continue
		}
		c.cur = Recursive(c.g, root, c.visited)
		return true
	}
	c.cur = nil
	return false
}

func (c *RootCursor) Current() recursive.Enumerable[int] {
	if c.cur == nil {
		panic("cursor not positioned on a root")
	}
	return c.cur
}

func (c *RootCursor) Reset() error {
	c.visited.Clear()
	c.i, c.cur = -1, nil
	return nil
}

func (c *RootCursor) ResetSupported() bool { return true }

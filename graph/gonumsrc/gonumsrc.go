// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gonumsrc walks gonum graphs with the recursive enumerator.
package gonumsrc // import "github.com/aclements/go-treewalk/graph/gonumsrc"

import (
	"sort"

	"gonum.org/v1/gonum/graph"

	"github.com/aclements/go-treewalk/recursive"
	"github.com/aclements/go-treewalk/seq"
)

// Walker describes how to turn a gonum directed graph into a tree.
type Walker struct {
	// G is the graph to walk.
	G graph.Directed

	// Sorted visits the successors of each node in increasing ID
	// order. Otherwise they are visited in whatever order G.From
	// produces, which for many gonum graphs is unspecified.
	Sorted bool

	// Leaves, if set, separates successors with no outgoing edges
	// into items instead of containers.
	Leaves bool
}

// Recursive returns the depth-first spanning tree of w.G rooted at
// root. Each node reachable from root appears once: a node becomes
// the child of the first node to reach it during enumeration, so
// cycles are harmless.
//
// The returned Enumerable keeps its own visited set and may be
// enumerated once. Use Roots for an enumeration that can be reset.
func (w Walker) Recursive(root graph.Node) recursive.Enumerable[graph.Node] {
	return w.recursive(root, map[int64]bool{})
}

func (w Walker) recursive(root graph.Node, visited map[int64]bool) node {
	visited[root.ID()] = true
	return node{w: w, n: root, visited: visited}
}

// RootCursor yields the spanning trees of a Walker's graph from a
// list of roots, all sharing one visited set.
type RootCursor struct {
	w       Walker
	roots   []graph.Node
	visited map[int64]bool
	i       int
	cur     recursive.Enumerable[graph.Node]
}

// Roots returns a cursor over the spanning trees rooted at each of
// roots in turn, for use with recursive.New. A root already reached
// from an earlier root is skipped. Reset forgets every visited node,
// so a reset enumeration repeats the first one.
func (w Walker) Roots(roots ...graph.Node) *RootCursor {
	return &RootCursor{w: w, roots: roots, visited: map[int64]bool{}, i: -1}
}

func (c *RootCursor) MoveNext() bool {
	for c.i+1 < len(c.roots) {
		c.i++
		root := c.roots[c.i]
		if c.visited[root.ID()] {
			continue
		}
		c.cur = c.w.recursive(root, c.visited)
		return true
	}
	c.cur = nil
	return false
}

func (c *RootCursor) Current() recursive.Enumerable[graph.Node] {
	if c.cur == nil {
		panic("cursor not positioned on a root")
	}
	return c.cur
}

func (c *RootCursor) Reset() error {
	clear(c.visited)
	c.i, c.cur = -1, nil
	return nil
}

func (c *RootCursor) ResetSupported() bool { return true }

type node struct {
	w       Walker
	n       graph.Node
	visited map[int64]bool
}

func (n node) Value() graph.Node {
	return n.n
}

func (n node) successors() seq.Cursor[graph.Node] {
	from := n.w.G.From(n.n.ID())
	if !n.w.Sorted {
		return Nodes(from)
	}
	ns := graph.NodesOf(from)
	sort.Slice(ns, func(i, j int) bool { return ns[i].ID() < ns[j].ID() })
	return seq.Slice(ns)
}

// admit marks x visited and reports whether it was new.
func (n node) admit(x graph.Node) bool {
	if n.visited[x.ID()] {
		return false
	}
	n.visited[x.ID()] = true
	return true
}

func (n node) isLeaf(x graph.Node) bool {
	return IsLeaf(n.w.G, x.ID())
}

// IsLeaf reports whether node id of g has no successors. It does not
// rely on the iterator's Len, which may be negative when unknown.
func IsLeaf(g graph.Directed, id int64) bool {
	return !g.From(id).Next()
}

func (n node) wrap(c seq.Cursor[graph.Node]) seq.Cursor[recursive.Enumerable[graph.Node]] {
	return seq.Map(c, func(x graph.Node) recursive.Enumerable[graph.Node] {
		return node{w: n.w, n: x, visited: n.visited}
	})
}

func (n node) Children() seq.Cursor[recursive.Enumerable[graph.Node]] {
	return n.wrap(seq.Filter(n.successors(), n.admit))
}

func (n node) Containers() seq.Cursor[recursive.Enumerable[graph.Node]] {
	if !n.w.Leaves {
		return n.Children()
	}
	return n.wrap(seq.Filter(n.successors(), func(x graph.Node) bool {
		return !n.isLeaf(x) && n.admit(x)
	}))
}

func (n node) Items() seq.Cursor[graph.Node] {
	if !n.w.Leaves {
		return seq.Empty[graph.Node]()
	}
	return seq.Filter(n.successors(), func(x graph.Node) bool {
		return n.isLeaf(x) && n.admit(x)
	})
}

// NodesCursor adapts a gonum node iterator to a seq.Cursor. Reset
// rewinds the underlying iterator.
type NodesCursor struct {
	it graph.Nodes
}

// Nodes returns a cursor over it.
func Nodes(it graph.Nodes) *NodesCursor {
	return &NodesCursor{it}
}

func (c *NodesCursor) MoveNext() bool {
	return c.it.Next()
}

func (c *NodesCursor) Current() graph.Node {
	return c.it.Node()
}

func (c *NodesCursor) Reset() error {
	c.it.Reset()
	return nil
}

func (c *NodesCursor) ResetSupported() bool { return true }

// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphalg

import (
	"github.com/aclements/go-treewalk/graph"
	"github.com/aclements/go-treewalk/recursive"
)

// PreOrder returns the nodes of g visited in pre-order.
func PreOrder(g graph.Graph, root int) []int {
	return collect(g, root, recursive.ParentThenChildren)
}

// PostOrder returns the nodes of g visited in post-order.
func PostOrder(g graph.Graph, root int) []int {
	return collect(g, root, recursive.ChildrenThenParent)
}

func collect(g graph.Graph, root int, order recursive.Order) []int {
	e, err := recursive.New(Roots(g, nil, root), order, recursive.Uniform)
	if err != nil {
		// The order is one of ours.
		panic(err)
	}
	defer e.Close()
	out := []int{}
	for e.MoveNext() {
		out = append(out, e.Current())
	}
	return out
}

// appendWalk appends the nodes reachable from root that are not yet
// in marks to dst, in the given order, and marks them.
func appendWalk(dst []int, g graph.Graph, root int, marks *NodeMarks, order recursive.Order) []int {
	e, err := recursive.Walk(Recursive(g, root, marks), order, recursive.Uniform)
	if err != nil {
		// The order is one of ours.
		panic(err)
	}
	defer e.Close()
	for e.MoveNext() {
		dst = append(dst, e.Current())
	}
	return dst
}

// Reverse reverses xs in place and returns the slice. This is useful
// in conjunction with PreOrder and PostOrder to compute reverse
// post-order and reverse pre-order.
func Reverse(xs []int) []int {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
	return xs
}

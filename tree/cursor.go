// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/aclements/go-treewalk/recursive"
	"github.com/aclements/go-treewalk/seq"
)

// ChildCursor walks the direct children of a node in one direction.
type ChildCursor[T any] struct {
	parent  *Node[T]
	cur     *Node[T]
	started bool
	reverse bool
}

// Children returns a cursor over n's children from first to last.
func (n *Node[T]) Children() *ChildCursor[T] {
	return &ChildCursor[T]{parent: n}
}

// ReverseChildren returns a cursor over n's children from last to
// first.
func (n *Node[T]) ReverseChildren() *ChildCursor[T] {
	return &ChildCursor[T]{parent: n, reverse: true}
}

func (c *ChildCursor[T]) MoveNext() bool {
	switch {
	case !c.started:
		c.started = true
		if c.reverse {
			c.cur = c.parent.last
		} else {
			c.cur = c.parent.first
		}
	case c.cur == nil:
		return false
	case c.reverse:
		c.cur = c.cur.prev
	default:
		c.cur = c.cur.next
	}
	return c.cur != nil
}

func (c *ChildCursor[T]) Current() *Node[T] {
	return c.cur
}

func (c *ChildCursor[T]) Reset() error {
	c.cur, c.started = nil, false
	return nil
}

func (c *ChildCursor[T]) ResetSupported() bool { return true }

// Recursive returns an Enumerable view of the subtree rooted at n.
//
// Children yields every child of n. Containers yields only children
// that have children of their own and Items yields the values of the
// remaining leaf children, so a ContainersThenItems walk descends
// into subtrees before listing a node's leaves.
func Recursive[T any](n *Node[T]) recursive.Enumerable[T] {
	return enumerable[T]{n}
}

type enumerable[T any] struct {
	n *Node[T]
}

func (e enumerable[T]) Value() T {
	return e.n.value
}

func (e enumerable[T]) Children() seq.Cursor[recursive.Enumerable[T]] {
	return seq.Map[*Node[T]](e.n.Children(), Recursive[T])
}

func (e enumerable[T]) Containers() seq.Cursor[recursive.Enumerable[T]] {
	inner := seq.Filter[*Node[T]](e.n.Children(), func(c *Node[T]) bool { return c.count > 0 })
	return seq.Map(inner, Recursive[T])
}

func (e enumerable[T]) Items() seq.Cursor[T] {
	leaves := seq.Filter[*Node[T]](e.n.Children(), func(c *Node[T]) bool { return c.count == 0 })
	return seq.Map(leaves, (*Node[T]).Value)
}

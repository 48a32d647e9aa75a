// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree implements an ordered tree whose nodes keep their
// children in a doubly-linked list.
//
// Each node belongs to at most one parent. Attaching a node that
// already has a parent fails, as does operating on a node through a
// parent it does not belong to. Removing a node detaches it together
// with its subtree; nothing is deleted recursively.
package tree // import "github.com/aclements/go-treewalk/tree"

import (
	"errors"
	"iter"
)

var (
	ErrHasParent = errors.New("node already has a parent")
	ErrNotChild  = errors.New("node is not a child of this node")
	ErrCycle     = errors.New("node is this node or one of its ancestors")
	ErrEmpty     = errors.New("node has no children")
)

// Node is a tree node holding a value of type T and an ordered list
// of children.
type Node[T any] struct {
	value T

	parent     *Node[T]
	prev, next *Node[T] // Siblings
	first      *Node[T] // First child
	last       *Node[T] // Last child
	count      int      // Number of children
}

// New returns a detached node holding v.
func New[T any](v T) *Node[T] {
	return &Node[T]{value: v}
}

// Value returns the value held by n.
func (n *Node[T]) Value() T { return n.value }

// SetValue replaces the value held by n.
func (n *Node[T]) SetValue(v T) { n.value = v }

// Parent returns n's parent, or nil if n is detached.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// IsRoot reports whether n has no parent.
func (n *Node[T]) IsRoot() bool { return n.parent == nil }

// First returns n's first child, or nil.
func (n *Node[T]) First() *Node[T] { return n.first }

// Last returns n's last child, or nil.
func (n *Node[T]) Last() *Node[T] { return n.last }

// Next returns the sibling after n, or nil.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the sibling before n, or nil.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// Len returns the number of direct children of n.
func (n *Node[T]) Len() int { return n.count }

// Depth returns the number of ancestors of n.
func (n *Node[T]) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// AddFirst creates a child holding v at the front of n's children.
func (n *Node[T]) AddFirst(v T) *Node[T] {
	c := New(v)
	n.insert(c, nil, n.first)
	return c
}

// AddLast creates a child holding v at the back of n's children.
func (n *Node[T]) AddLast(v T) *Node[T] {
	c := New(v)
	n.insert(c, n.last, nil)
	return c
}

// AddBefore creates a child holding v immediately before mark.
func (n *Node[T]) AddBefore(mark *Node[T], v T) (*Node[T], error) {
	if mark == nil || mark.parent != n {
		return nil, ErrNotChild
	}
	c := New(v)
	n.insert(c, mark.prev, mark)
	return c, nil
}

// AddAfter creates a child holding v immediately after mark.
func (n *Node[T]) AddAfter(mark *Node[T], v T) (*Node[T], error) {
	if mark == nil || mark.parent != n {
		return nil, ErrNotChild
	}
	c := New(v)
	n.insert(c, mark, mark.next)
	return c, nil
}

// AddFirstNode attaches the detached node c at the front of n's
// children.
func (n *Node[T]) AddFirstNode(c *Node[T]) error {
	if err := n.canAttach(c); err != nil {
		return err
	}
	n.insert(c, nil, n.first)
	return nil
}

// AddLastNode attaches the detached node c at the back of n's
// children.
func (n *Node[T]) AddLastNode(c *Node[T]) error {
	if err := n.canAttach(c); err != nil {
		return err
	}
	n.insert(c, n.last, nil)
	return nil
}

// AddBeforeNode attaches the detached node c immediately before mark.
func (n *Node[T]) AddBeforeNode(mark, c *Node[T]) error {
	if mark == nil || mark.parent != n {
		return ErrNotChild
	}
	if err := n.canAttach(c); err != nil {
		return err
	}
	n.insert(c, mark.prev, mark)
	return nil
}

// AddAfterNode attaches the detached node c immediately after mark.
func (n *Node[T]) AddAfterNode(mark, c *Node[T]) error {
	if mark == nil || mark.parent != n {
		return ErrNotChild
	}
	if err := n.canAttach(c); err != nil {
		return err
	}
	n.insert(c, mark, mark.next)
	return nil
}

// canAttach checks that c may become a child of n. A detached node
// can still be an ancestor of n if n hangs below it.
func (n *Node[T]) canAttach(c *Node[T]) error {
	if c.parent != nil {
		return ErrHasParent
	}
	for p := n; p != nil; p = p.parent {
		if p == c {
			return ErrCycle
		}
	}
	return nil
}

// insert links c between prev and next, either of which may be nil.
func (n *Node[T]) insert(c, prev, next *Node[T]) {
	c.parent = n
	c.prev, c.next = prev, next
	if prev == nil {
		n.first = c
	} else {
		prev.next = c
	}
	if next == nil {
		n.last = c
	} else {
		next.prev = c
	}
	n.count++
}

// unlink removes c from n's list without touching c.parent.
func (n *Node[T]) unlink(c *Node[T]) {
	if c.prev == nil {
		n.first = c.next
	} else {
		c.prev.next = c.next
	}
	if c.next == nil {
		n.last = c.prev
	} else {
		c.next.prev = c.prev
	}
	c.prev, c.next = nil, nil
	n.count--
}

// Remove detaches the child c from n.
func (n *Node[T]) Remove(c *Node[T]) error {
	if c == nil || c.parent != n {
		return ErrNotChild
	}
	n.unlink(c)
	c.parent = nil
	return nil
}

// RemoveFirst detaches and returns n's first child.
func (n *Node[T]) RemoveFirst() (*Node[T], error) {
	c := n.first
	if c == nil {
		return nil, ErrEmpty
	}
	return c, n.Remove(c)
}

// RemoveLast detaches and returns n's last child.
func (n *Node[T]) RemoveLast() (*Node[T], error) {
	c := n.last
	if c == nil {
		return nil, ErrEmpty
	}
	return c, n.Remove(c)
}

// Clear detaches every child of n.
func (n *Node[T]) Clear() {
	for c := n.first; c != nil; {
		next := c.next
		c.parent, c.prev, c.next = nil, nil, nil
		c = next
	}
	n.first, n.last, n.count = nil, nil, 0
}

// Swap exchanges the positions of children x and y.
func (n *Node[T]) Swap(x, y *Node[T]) error {
	if x == nil || y == nil || x.parent != n || y.parent != n {
		return ErrNotChild
	}
	if x == y {
		return nil
	}
	if y.next == x {
		x, y = y, x
	}
	if x.next == y {
		// Adjacent: x y -> y x.
		prev, next := x.prev, y.next
		n.unlink(x)
		n.unlink(y)
		n.insert(y, prev, next)
		n.insert(x, y, next)
		return nil
	}
	xPrev, xNext := x.prev, x.next
	yPrev, yNext := y.prev, y.next
	n.unlink(x)
	n.unlink(y)
	n.insert(y, xPrev, xNext)
	n.insert(x, yPrev, yNext)
	return nil
}

// MoveBefore moves child c so it immediately precedes child mark.
func (n *Node[T]) MoveBefore(mark, c *Node[T]) error {
	if mark == nil || c == nil || mark.parent != n || c.parent != n {
		return ErrNotChild
	}
	if c == mark || c.next == mark {
		return nil
	}
	n.unlink(c)
	n.insert(c, mark.prev, mark)
	return nil
}

// MoveAfter moves child c so it immediately follows child mark.
func (n *Node[T]) MoveAfter(mark, c *Node[T]) error {
	if mark == nil || c == nil || mark.parent != n || c.parent != n {
		return ErrNotChild
	}
	if c == mark || c.prev == mark {
		return nil
	}
	n.unlink(c)
	n.insert(c, mark, mark.next)
	return nil
}

// MoveFirst moves child c to the front of n's children.
func (n *Node[T]) MoveFirst(c *Node[T]) error {
	if c == nil || c.parent != n {
		return ErrNotChild
	}
	return n.MoveBefore(n.first, c)
}

// MoveLast moves child c to the back of n's children.
func (n *Node[T]) MoveLast(c *Node[T]) error {
	if c == nil || c.parent != n {
		return ErrNotChild
	}
	return n.MoveAfter(n.last, c)
}

// FindFunc returns the first child whose value satisfies match, or
// nil. Only direct children are searched.
func (n *Node[T]) FindFunc(match func(T) bool) *Node[T] {
	for c := n.first; c != nil; c = c.next {
		if match(c.value) {
			return c
		}
	}
	return nil
}

// FindLastFunc returns the last child whose value satisfies match, or
// nil if none does. Only direct children are searched. It returns
// ErrEmpty if n has no children, since there is no last child to
// start from.
func (n *Node[T]) FindLastFunc(match func(T) bool) (*Node[T], error) {
	if n.count == 0 {
		return nil, ErrEmpty
	}
	for c := n.last; c != nil; c = c.prev {
		if match(c.value) {
			return c, nil
		}
	}
	return nil, nil
}

// Find returns the first direct child of n holding v, or nil.
func Find[T comparable](n *Node[T], v T) *Node[T] {
	return n.FindFunc(func(x T) bool { return x == v })
}

// FindLast returns the last direct child of n holding v, or nil. Like
// FindLastFunc it fails with ErrEmpty if n has no children.
func FindLast[T comparable](n *Node[T], v T) (*Node[T], error) {
	return n.FindLastFunc(func(x T) bool { return x == v })
}

// All returns an iterator over n's children from first to last.
func (n *Node[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for c := n.first; c != nil; c = c.next {
			if !yield(c) {
				return
			}
		}
	}
}

// Backward returns an iterator over n's children from last to first.
func (n *Node[T]) Backward() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for c := n.last; c != nil; c = c.prev {
			if !yield(c) {
				return
			}
		}
	}
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stack provides a LIFO container. The recursive enumerator
// keeps its per-level traversal frames on one of these instead of on
// the goroutine stack, so traversal depth is bounded only by the heap
// and a traversal can be suspended between calls.
package stack // import "github.com/aclements/go-treewalk/stack"

import "errors"

// ErrEmpty is returned when popping or peeking an empty stack.
var ErrEmpty = errors.New("stack is empty")

// Stack is a LIFO stack of T. The zero value is an empty stack ready
// to use.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack with room for capacity items before it
// needs to grow.
func New[T any](capacity int) *Stack[T] {
	return &Stack[T]{make([]T, 0, capacity)}
}

// Push pushes x on to the top of the stack.
func (s *Stack[T]) Push(x T) {
	s.items = append(s.items, x)
}

// Pop removes and returns the top of the stack.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmpty
	}
	top := len(s.items) - 1
	x := s.items[top]
	// Drop the reference so popped frames can be collected.
	s.items[top] = zero
	s.items = s.items[:top]
	return x, nil
}

// Peek returns the top of the stack without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.items[len(s.items)-1], nil
}

// HasItems reports whether the stack is non-empty.
func (s *Stack[T]) HasItems() bool {
	return len(s.items) > 0
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Each calls f on every item from the top of the stack to the bottom.
func (s *Stack[T]) Each(f func(T)) {
	for i := len(s.items) - 1; i >= 0; i-- {
		f(s.items[i])
	}
}

// Clear removes every item, keeping the allocated capacity.
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package recursive flattens tree-shaped data into a single
// depth-first sequence.
//
// A tree is described to the traversal engine by an Enumerable, which
// exposes a node's value and three projections of what lies beneath
// it: every child (Children), the children that should be descended
// into (Containers) and the leaf values attached directly to the node
// (Items). The same Enumerator therefore walks directory trees,
// document outlines and graphs without each of them reimplementing the
// traversal.
package recursive // import "github.com/aclements/go-treewalk/recursive"

import "github.com/aclements/go-treewalk/seq"

// An Enumerable is a node of a tree that the Enumerator can descend
// into.
type Enumerable[T any] interface {
	// Value returns the value emitted for this node.
	Value() T

	// Children returns every child of this node. It is used when
	// the traversal does not distinguish containers from items.
	Children() seq.Cursor[Enumerable[T]]

	// Containers returns the children of this node that have
	// children of their own.
	Containers() seq.Cursor[Enumerable[T]]

	// Items returns the leaf values attached directly to this
	// node.
	Items() seq.Cursor[T]
}

// Converters split a value's children into containers and items.
type Converters[T any] struct {
	Containers func(T) seq.Cursor[T]
	Items      func(T) seq.Cursor[T]
}

// IsZero reports whether neither converter is set.
func (c Converters[T]) IsZero() bool {
	return c.Containers == nil && c.Items == nil
}

// Value is an Enumerable built from a plain value and functions that
// project its children. Every child produced by a converter is wrapped
// in a Value carrying the same converters, so the functions describe
// the whole tree.
//
// When Converters is zero, Containers falls back to Converter and
// Items is empty, which makes every child a container.
type Value[T any] struct {
	V          T
	Converter  func(T) seq.Cursor[T]
	Converters Converters[T]
}

// Wrap returns a Value for v whose children are produced by
// converter.
func Wrap[T any](v T, converter func(T) seq.Cursor[T]) Value[T] {
	return Value[T]{V: v, Converter: converter}
}

// WrapSplit returns a Value for v that also knows how to separate
// containers from items.
func WrapSplit[T any](v T, converter func(T) seq.Cursor[T], converters Converters[T]) Value[T] {
	return Value[T]{V: v, Converter: converter, Converters: converters}
}

func (r Value[T]) Value() T {
	return r.V
}

func (r Value[T]) Children() seq.Cursor[Enumerable[T]] {
	return r.wrap(r.Converter)
}

func (r Value[T]) Containers() seq.Cursor[Enumerable[T]] {
	if r.Converters.Containers == nil {
		return r.wrap(r.Converter)
	}
	return r.wrap(r.Converters.Containers)
}

func (r Value[T]) Items() seq.Cursor[T] {
	if r.Converters.Items == nil {
		return seq.Empty[T]()
	}
	return r.Converters.Items(r.V)
}

func (r Value[T]) wrap(conv func(T) seq.Cursor[T]) seq.Cursor[Enumerable[T]] {
	if conv == nil {
		return seq.Empty[Enumerable[T]]()
	}
	return seq.Map(conv(r.V), func(v T) Enumerable[T] {
		return Value[T]{V: v, Converter: r.Converter, Converters: r.Converters}
	})
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seq

import "iter"

// SliceCursor iterates over a slice, forwards or backwards.
type SliceCursor[T any] struct {
	xs      []T
	pos     int
	reverse bool
}

// Slice returns a cursor over xs from first to last.
func Slice[T any](xs []T) *SliceCursor[T] {
	return &SliceCursor[T]{xs: xs, pos: -1}
}

// Reverse returns a cursor over xs from last to first.
func Reverse[T any](xs []T) *SliceCursor[T] {
	return &SliceCursor[T]{xs: xs, pos: len(xs), reverse: true}
}

// Single returns a cursor yielding exactly x.
func Single[T any](x T) *SliceCursor[T] {
	return Slice([]T{x})
}

// Empty returns a cursor that yields nothing.
func Empty[T any]() *SliceCursor[T] {
	return Slice[T](nil)
}

func (c *SliceCursor[T]) MoveNext() bool {
	if c.reverse {
		if c.pos <= 0 {
			c.pos = -1
			return false
		}
		c.pos--
		return true
	}
	if c.pos >= len(c.xs)-1 {
		c.pos = len(c.xs)
		return false
	}
	c.pos++
	return true
}

func (c *SliceCursor[T]) Current() T {
	if c.pos < 0 || c.pos >= len(c.xs) {
		panic("seq: Current called without a successful MoveNext")
	}
	return c.xs[c.pos]
}

func (c *SliceCursor[T]) Reset() error {
	if c.reverse {
		c.pos = len(c.xs)
	} else {
		c.pos = -1
	}
	return nil
}

func (c *SliceCursor[T]) ResetSupported() bool { return true }

// FuncCursor pulls values from a function.
type FuncCursor[T any] struct {
	next  func() (T, bool)
	reset func() error
	cur   T
}

// Func returns a cursor that calls next for each value until next
// reports false. If reset is nil the cursor cannot be reset.
func Func[T any](next func() (T, bool), reset func() error) *FuncCursor[T] {
	return &FuncCursor[T]{next: next, reset: reset}
}

func (c *FuncCursor[T]) MoveNext() bool {
	v, ok := c.next()
	if !ok {
		var zero T
		c.cur = zero
		return false
	}
	c.cur = v
	return true
}

func (c *FuncCursor[T]) Current() T { return c.cur }

func (c *FuncCursor[T]) Reset() error {
	if c.reset == nil {
		return ErrResetUnsupported
	}
	var zero T
	c.cur = zero
	return c.reset()
}

func (c *FuncCursor[T]) ResetSupported() bool { return c.reset != nil }

// mapCursor applies f to every value of an underlying cursor.
type mapCursor[T, U any] struct {
	c Cursor[T]
	f func(T) U
}

// Map returns a cursor over f applied to every value of c. Reset,
// Close and Err are forwarded to c.
func Map[T, U any](c Cursor[T], f func(T) U) Cursor[U] {
	return &mapCursor[T, U]{c, f}
}

func (m *mapCursor[T, U]) MoveNext() bool { return m.c.MoveNext() }
func (m *mapCursor[T, U]) Current() U     { return m.f(m.c.Current()) }
func (m *mapCursor[T, U]) Reset() error   { return Reset(m.c) }
func (m *mapCursor[T, U]) Close() error   { return Close(m.c) }
func (m *mapCursor[T, U]) Err() error     { return Err(m.c) }

// filterCursor skips values of an underlying cursor.
type filterCursor[T any] struct {
	c    Cursor[T]
	keep func(T) bool
}

// Filter returns a cursor over the values of c for which keep
// returns true. Reset, Close and Err are forwarded to c.
func Filter[T any](c Cursor[T], keep func(T) bool) Cursor[T] {
	return &filterCursor[T]{c, keep}
}

func (f *filterCursor[T]) MoveNext() bool {
	for f.c.MoveNext() {
		if f.keep(f.c.Current()) {
			return true
		}
	}
	return false
}

func (f *filterCursor[T]) Current() T   { return f.c.Current() }
func (f *filterCursor[T]) Reset() error { return Reset(f.c) }
func (f *filterCursor[T]) Close() error { return Close(f.c) }
func (f *filterCursor[T]) Err() error   { return Err(f.c) }

// seqCursor adapts a push iterator into a cursor using iter.Pull.
type seqCursor[T any] struct {
	s    iter.Seq[T]
	next func() (T, bool)
	stop func()
	cur  T
}

// FromSeq returns a cursor over s. The cursor holds the resources of
// a pulled iterator and should be closed when abandoned early. Reset
// restarts s from the beginning.
func FromSeq[T any](s iter.Seq[T]) Cursor[T] {
	return &seqCursor[T]{s: s}
}

func (c *seqCursor[T]) MoveNext() bool {
	if c.next == nil {
		c.next, c.stop = iter.Pull(c.s)
	}
	v, ok := c.next()
	c.cur = v
	return ok
}

func (c *seqCursor[T]) Current() T { return c.cur }

func (c *seqCursor[T]) Reset() error {
	c.Close()
	var zero T
	c.cur = zero
	return nil
}

func (c *seqCursor[T]) ResetSupported() bool { return true }

func (c *seqCursor[T]) Close() error {
	if c.stop != nil {
		c.stop()
		c.next, c.stop = nil, nil
	}
	return nil
}

// Values returns a push iterator over the remaining values of c.
// Breaking out of the loop leaves c positioned at the last value
// yielded.
func Values[T any](c Cursor[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c.MoveNext() {
			if !yield(c.Current()) {
				return
			}
		}
	}
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seq defines the pull-style cursor that the traversal
// packages consume and produce, plus small adapters for building
// cursors over slices, functions and iter.Seq values.
package seq // import "github.com/aclements/go-treewalk/seq"

import (
	"errors"
	"io"
)

// ErrResetUnsupported is returned by Reset when the cursor cannot
// rewind.
var ErrResetUnsupported = errors.New("cursor does not support reset")

// A Cursor is a pull-style iterator over values of type T.
//
// MoveNext advances to the next value and reports whether there is
// one. Current returns the value MoveNext advanced to; it is only
// meaningful after MoveNext has returned true.
//
// A Cursor may additionally implement Resetter, ResetReporter,
// io.Closer and interface{ Err() error }. The helpers in this package
// probe for those capabilities.
type Cursor[T any] interface {
	MoveNext() bool
	Current() T
}

// A Resetter is a cursor that can be rewound to before its first
// value.
type Resetter interface {
	Reset() error
}

// A ResetReporter is a cursor that knows whether Reset will succeed.
type ResetReporter interface {
	ResetSupported() bool
}

// Support is a three-valued answer to a capability question.
type Support int

const (
	SupportUnknown Support = iota
	Supported
	Unsupported
)

func (s Support) String() string {
	switch s {
	case Supported:
		return "supported"
	case Unsupported:
		return "unsupported"
	}
	return "unknown"
}

// Reset rewinds c if it implements Resetter and returns
// ErrResetUnsupported otherwise.
func Reset[T any](c Cursor[T]) error {
	if r, ok := c.(Resetter); ok {
		return r.Reset()
	}
	return ErrResetUnsupported
}

// ResetSupport reports whether c can be reset. Cursors that neither
// implement ResetReporter nor Resetter are Unsupported; cursors that
// implement Resetter without reporting are SupportUnknown.
func ResetSupport[T any](c Cursor[T]) Support {
	if r, ok := c.(ResetReporter); ok {
		if r.ResetSupported() {
			return Supported
		}
		return Unsupported
	}
	if _, ok := c.(Resetter); ok {
		return SupportUnknown
	}
	return Unsupported
}

// Close closes c if it implements io.Closer.
func Close[T any](c Cursor[T]) error {
	if cl, ok := c.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

// Err returns the deferred error of c, if it reports one.
func Err[T any](c Cursor[T]) error {
	if e, ok := c.(interface{ Err() error }); ok {
		return e.Err()
	}
	return nil
}

// Collect drains c into a slice and returns it along with c's
// deferred error, if any.
func Collect[T any](c Cursor[T]) ([]T, error) {
	var out []T
	for c.MoveNext() {
		out = append(out, c.Current())
	}
	return out, Err(c)
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recursive

import (
	"errors"
	"fmt"
	"iter"

	"github.com/aclements/go-treewalk/seq"
	"github.com/aclements/go-treewalk/stack"
)

// ErrDisposed is reported by an Enumerator that has been closed.
var ErrDisposed = errors.New("enumerator is closed")

var errNilAdmit = errors.New("nil duplicate predicate")

// A Frame is the traversal state of one node that the Enumerator has
// descended into. Frames are only created and inspected by the
// Enumerator; the type is exported so that callers can supply a stack
// to reuse with WithStack.
type Frame[T any] struct {
	node Enumerable[T]

	// children is the cursor over the node's containers, or over
	// all of its children in Uniform mode.
	children seq.Cursor[Enumerable[T]]

	// items is opened lazily when the frame reaches its items.
	items seq.Cursor[T]
}

func (f *Frame[T]) close() error {
	var errs []error
	if f.children != nil {
		errs = append(errs, seq.Close(f.children))
	}
	if f.items != nil {
		errs = append(errs, seq.Close(f.items))
	}
	f.children, f.items = nil, nil
	return errors.Join(errs...)
}

type state uint8

const (
	stateNotStarted state = iota
	// stateNextRoot advances the root sequence because the stack
	// is empty.
	stateNextRoot
	// stateDescending advances the top frame's container cursor.
	stateDescending
	// stateItems advances the top frame's item cursor.
	stateItems
	// statePopping pops the exhausted top frame.
	statePopping
	stateExhausted
)

// An Enumerator walks a sequence of trees depth-first and yields a
// single flat sequence of values.
//
// Traversal uses an explicit stack of frames, one per level being
// descended into, and does work only inside MoveNext. Modifying a
// tree while it is being enumerated has undefined results.
//
// An Enumerator must be closed when no longer needed; Close releases
// every cursor still open on the stack.
type Enumerator[T any] struct {
	root  seq.Cursor[Enumerable[T]]
	order Order
	mode  Mode
	admit func(T) bool
	stack *stack.Stack[*Frame[T]]

	state    state
	cur      T
	entering bool
	depth    int
	err      error
	closed   bool
}

// An Option configures an Enumerator.
type Option[T any] func(*Enumerator[T])

// WithStack makes the Enumerator keep its frames on s instead of
// allocating a stack. Anything already on s is discarded.
func WithStack[T any](s *stack.Stack[*Frame[T]]) Option[T] {
	return func(e *Enumerator[T]) {
		e.stack = s
	}
}

// New returns an Enumerator over the trees produced by root.
//
// After the children of a node have been enumerated, the node itself
// is emitted if order includes ChildrenThenParent. New never
// suppresses that emission, so with Both every node appears twice.
func New[T any](root seq.Cursor[Enumerable[T]], order Order, mode Mode, opts ...Option[T]) (*Enumerator[T], error) {
	return newEnumerator(root, order, mode, always[T], opts)
}

// NewDelegate is like New, but consults admit before emitting a node
// after its children. If admit returns false the emission is skipped.
// admit may keep state; see Visited.
func NewDelegate[T any](root seq.Cursor[Enumerable[T]], order Order, mode Mode, admit func(T) bool, opts ...Option[T]) (*Enumerator[T], error) {
	if admit == nil {
		return nil, errNilAdmit
	}
	return newEnumerator(root, order, mode, admit, opts)
}

// Walk returns an Enumerator over the single tree rooted at r.
func Walk[T any](r Enumerable[T], order Order, mode Mode, opts ...Option[T]) (*Enumerator[T], error) {
	return New(seq.Cursor[Enumerable[T]](seq.Single(r)), order, mode, opts...)
}

// Visited returns a stateful predicate for NewDelegate that admits
// each key the first time it is seen and rejects it afterwards.
func Visited[T any, K comparable](key func(T) K) func(T) bool {
	seen := make(map[K]struct{})
	return func(v T) bool {
		k := key(v)
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		return true
	}
}

func always[T any](T) bool { return true }

func newEnumerator[T any](root seq.Cursor[Enumerable[T]], order Order, mode Mode, admit func(T) bool, opts []Option[T]) (*Enumerator[T], error) {
	if !order.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, uint8(order))
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, uint8(mode))
	}
	e := &Enumerator[T]{root: root, order: order, mode: mode, admit: admit}
	for _, opt := range opts {
		opt(e)
	}
	if e.stack == nil {
		e.stack = stack.New[*Frame[T]](8)
	} else {
		e.stack.Clear()
	}
	return e, nil
}

// MoveNext advances to the next value and reports whether there is
// one. It returns false at the end of the sequence, after a source
// cursor fails (see Err), and once the Enumerator is closed.
func (e *Enumerator[T]) MoveNext() bool {
	if e.closed {
		e.err = ErrDisposed
		return false
	}
	for {
		switch e.state {
		case stateNotStarted, stateNextRoot:
			if !e.root.MoveNext() {
				return e.finish(seq.Err(e.root))
			}
			if e.push(e.root.Current()) {
				return true
			}

		case stateDescending:
			f := e.top()
			if f.children.MoveNext() {
				if e.push(f.children.Current()) {
					return true
				}
				continue
			}
			if err := seq.Err(f.children); err != nil {
				return e.finish(err)
			}
			if e.mode == ContainersThenItems {
				e.enterItems(f)
			} else {
				e.state = statePopping
			}

		case stateItems:
			f := e.top()
			if f.items.MoveNext() {
				e.emit(f.items.Current(), true, e.stack.Len())
				return true
			}
			if err := seq.Err(f.items); err != nil {
				return e.finish(err)
			}
			if e.mode == ItemsThenContainers {
				e.state = stateDescending
			} else {
				e.state = statePopping
			}

		case statePopping:
			f, err := e.stack.Pop()
			if err != nil {
				panic("popping with no frame on the stack")
			}
			if err := f.close(); err != nil {
				return e.finish(err)
			}
			depth := e.stack.Len()
			if e.stack.HasItems() {
				// Frames are only pushed while their parent
				// is descending, so that is where it resumes.
				e.state = stateDescending
			} else {
				e.state = stateNextRoot
			}
			if e.order&ChildrenThenParent != 0 {
				if v := f.node.Value(); e.admit(v) {
					e.emit(v, false, depth)
					return true
				}
			}

		case stateExhausted:
			return false

		default:
			panic(fmt.Sprintf("bad enumerator state %d", e.state))
		}
	}
}

// push starts a frame for r and reports whether r was emitted.
func (e *Enumerator[T]) push(r Enumerable[T]) bool {
	f := &Frame[T]{node: r}
	if e.mode == Uniform {
		f.children = r.Children()
	} else {
		f.children = r.Containers()
	}
	e.stack.Push(f)
	if e.mode == ItemsThenContainers {
		e.enterItems(f)
	} else {
		e.state = stateDescending
	}
	if e.order&ParentThenChildren != 0 {
		e.emit(r.Value(), true, e.stack.Len()-1)
		return true
	}
	return false
}

func (e *Enumerator[T]) enterItems(f *Frame[T]) {
	if f.items == nil {
		f.items = f.node.Items()
	}
	e.state = stateItems
}

func (e *Enumerator[T]) top() *Frame[T] {
	f, err := e.stack.Peek()
	if err != nil {
		panic("enumerator state refers to an empty stack")
	}
	return f
}

func (e *Enumerator[T]) emit(v T, entering bool, depth int) {
	e.cur, e.entering, e.depth = v, entering, depth
}

func (e *Enumerator[T]) finish(err error) bool {
	var zero T
	e.cur, e.entering, e.depth = zero, false, 0
	e.err = err
	e.state = stateExhausted
	return false
}

// Current returns the value that the last successful MoveNext
// advanced to. It panics with ErrDisposed if e is closed.
func (e *Enumerator[T]) Current() T {
	e.mustBeOpen()
	return e.cur
}

// Entering reports whether the current value was emitted on the way
// down, before its children. It is false for the emission that
// follows a node's children and true for items.
func (e *Enumerator[T]) Entering() bool {
	e.mustBeOpen()
	return e.entering
}

// Depth returns the depth of the current value. Roots are at depth
// 0 and the items of a node are one deeper than the node.
func (e *Enumerator[T]) Depth() int {
	e.mustBeOpen()
	return e.depth
}

// Err returns the error that ended the traversal, if any. It is nil
// at a normal end of sequence and ErrDisposed once e is closed.
func (e *Enumerator[T]) Err() error {
	return e.err
}

// Reset rewinds e to before the first value. It discards the stack
// and resets the root cursor, which must implement seq.Resetter.
func (e *Enumerator[T]) Reset() error {
	if e.closed {
		return ErrDisposed
	}
	if err := seq.Reset(e.root); err != nil {
		return err
	}
	err := e.clearStack()
	var zero T
	e.cur, e.entering, e.depth = zero, false, 0
	e.err = nil
	e.state = stateNotStarted
	return err
}

// ResetSupport reports whether Reset can succeed, which depends on
// the root cursor.
func (e *Enumerator[T]) ResetSupport() seq.Support {
	if e.closed {
		return seq.Unsupported
	}
	return seq.ResetSupport(e.root)
}

// Close releases every open cursor, including the root cursor. Closing
// an already closed Enumerator does nothing.
func (e *Enumerator[T]) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	e.err = ErrDisposed
	err := e.clearStack()
	if cerr := seq.Close(e.root); cerr != nil {
		err = errors.Join(err, cerr)
	}
	var zero T
	e.cur = zero
	e.state = stateExhausted
	return err
}

// All returns a push iterator over the remaining values of e.
func (e *Enumerator[T]) All() iter.Seq[T] {
	return seq.Values[T](e)
}

func (e *Enumerator[T]) clearStack() error {
	var errs []error
	e.stack.Each(func(f *Frame[T]) {
		if err := f.close(); err != nil {
			errs = append(errs, err)
		}
	})
	e.stack.Clear()
	return errors.Join(errs...)
}

func (e *Enumerator[T]) mustBeOpen() {
	if e.closed {
		panic(ErrDisposed)
	}
}

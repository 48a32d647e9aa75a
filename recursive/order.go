// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recursive

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidOrder = errors.New("invalid enumeration order")
	ErrInvalidMode  = errors.New("invalid enumeration mode")
)

// Order selects when a node is emitted relative to its children. It
// is a set of flags; at least one must be set.
type Order uint8

const (
	// ParentThenChildren emits a node before descending into it
	// (pre-order).
	ParentThenChildren Order = 1 << iota

	// ChildrenThenParent emits a node once all of its children
	// have been emitted (post-order).
	ChildrenThenParent

	// Both emits every node twice, like an Euler tour.
	Both = ParentThenChildren | ChildrenThenParent
)

// Valid reports whether o is a non-empty combination of known flags.
func (o Order) Valid() bool {
	return o != 0 && o&^Both == 0
}

func (o Order) String() string {
	switch o {
	case ParentThenChildren:
		return "ParentThenChildren"
	case ChildrenThenParent:
		return "ChildrenThenParent"
	case Both:
		return "Both"
	}
	return fmt.Sprintf("Order(%d)", uint8(o))
}

// ParseOrder parses the short or long name of an order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pre", "preorder", "parent-then-children", "parentthenchildren":
		return ParentThenChildren, nil
	case "post", "postorder", "children-then-parent", "childrenthenparent":
		return ChildrenThenParent, nil
	case "both", "euler":
		return Both, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOrder, s)
}

// Mode selects whether containers and items of a node are kept apart.
type Mode uint8

const (
	// Uniform treats every child alike and descends into each of
	// them using Enumerable.Children.
	Uniform Mode = iota

	// ContainersThenItems descends into a node's containers before
	// emitting its items.
	ContainersThenItems

	// ItemsThenContainers emits a node's items before descending
	// into its containers.
	ItemsThenContainers
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m <= ItemsThenContainers
}

func (m Mode) String() string {
	switch m {
	case Uniform:
		return "Uniform"
	case ContainersThenItems:
		return "ContainersThenItems"
	case ItemsThenContainers:
		return "ItemsThenContainers"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode parses the short or long name of a mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "uniform":
		return Uniform, nil
	case "containers-first", "containers-then-items", "containersthenitems":
		return ContainersThenItems, nil
	case "items-first", "items-then-containers", "itemsthencontainers":
		return ItemsThenContainers, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

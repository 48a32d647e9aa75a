// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphalg

import "math/bits"

// NodeMarks is a structure for marking nodes in a graph.
type NodeMarks struct {
	marks []uint32
}

// Test returns whether node i is marked.
func (m NodeMarks) Test(i int) bool {
	if i < 0 || i/32 >= len(m.marks) {
		return false
	}
	return m.marks[i/32]&(1<<uint(i%32)) != 0
}

// Mark marks node i.
func (m *NodeMarks) Mark(i int) {
	if i < 0 {
		panic("negative node ID")
	}
	if i/32 >= len(m.marks) {
		m.grow(i)
	}
	m.marks[i/32] |= 1 << uint(i%32)
}

// Admit marks node i and reports whether it was previously unmarked.
// It has the shape of a duplicate predicate for
// recursive.NewDelegate.
func (m *NodeMarks) Admit(i int) bool {
	if m.Test(i) {
		return false
	}
	m.Mark(i)
	return true
}

// Unmark clears the mark on node i.
func (m *NodeMarks) Unmark(i int) {
	if i < 0 || i/32 >= len(m.marks) {
		return
	}
	m.marks[i/32] &^= 1 << uint(i%32)
}

// Next returns the lowest marked node greater than i, or -1 if there
// is none. Next(-1) returns the lowest marked node.
func (m NodeMarks) Next(i int) int {
	i++
	if i < 0 {
		i = 0
	}
	for w := i / 32; w < len(m.marks); w++ {
		word := m.marks[w]
		if w == i/32 {
			word &^= 1<<uint(i%32) - 1
		}
		if word != 0 {
			return w*32 + bits.TrailingZeros32(word)
		}
	}
	return -1
}

// Clear unmarks every node.
func (m *NodeMarks) Clear() {
	clear(m.marks)
}

func (m *NodeMarks) grow(i int) {
	n := i/32 + 1
	// Round n up to a power of two.
	k := 1
	for k < n {
		k <<= 1
	}
	marks := make([]uint32, k)
	copy(marks, m.marks)
	m.marks = marks
}

// NewNodeMarks returns a node mark set with no marks set.
func NewNodeMarks() *NodeMarks {
	// This is small enough to get inlined, allowing the initial
	// marks slice to get stack-allocated.
	return &NodeMarks{make([]uint32, 1024/32)}
}

// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphalg

import (
	"reflect"
	"testing"
)

func TestNodeMarksNext(t *testing.T) {
	tests := [][]int{
		{0},
		{1},
		{0, 4},
		{},        // No marks
		{0, 100},  // Big gap
		{31, 32},  // Word boundary
		{5, 5000}, // Beyond the initial size
	}

	for _, test := range tests {
		m := NewNodeMarks()
		for _, id := range test {
			m.Mark(id)
		}
		got := []int{}
		for i := m.Next(-1); i >= 0; i = m.Next(i) {
			got = append(got, i)
		}
		if !reflect.DeepEqual(test, got) {
			t.Errorf("want %v, got %v", test, got)
		}
	}
}

func TestNodeMarksAdmit(t *testing.T) {
	var m NodeMarks
	for _, test := range []struct {
		node int
		want bool
	}{
		{3, true},
		{3, false},
		{70, true},
		{3, false},
		{70, false},
	} {
		if got := m.Admit(test.node); got != test.want {
			t.Errorf("Admit(%d): want %v, got %v", test.node, test.want, got)
		}
	}
	m.Unmark(3)
	if !m.Admit(3) {
		t.Errorf("Admit after Unmark: want true")
	}
	m.Clear()
	if m.Test(70) || m.Next(-1) != -1 {
		t.Errorf("Clear left marks behind")
	}
}

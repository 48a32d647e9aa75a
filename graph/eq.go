// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import "slices"

// Equal reports whether g1 and g2 have the same nodes and the same
// out-edges from each node. The order of out-edges is not
// significant, but their multiplicity is.
func Equal(g1, g2 Graph) bool {
	n := g1.NumNodes()
	if n != g2.NumNodes() {
		return false
	}
	var temp []int
	for i := 0; i < n; i++ {
		e1, e2 := g1.Out(i), g2.Out(i)
		if len(e1) != len(e2) {
			return false
		}
		if slices.Equal(e1, e2) {
			continue
		}
		// Compare sorted copies; Out must not be modified.
		temp = append(append(temp[:0], e1...), e2...)
		s1, s2 := temp[:len(e1)], temp[len(e1):]
		slices.Sort(s1)
		slices.Sort(s2)
		if !slices.Equal(s1, s2) {
			return false
		}
	}
	return true
}

// Transpose returns g with every edge reversed. Within each node,
// reversed edges are listed in order of their source node.
func Transpose(g Graph) IntGraph {
	n := g.NumNodes()
	t := make(IntGraph, n)
	for i := range t {
		t[i] = []int{}
	}
	for from := 0; from < n; from++ {
		for _, to := range g.Out(from) {
			t[to] = append(t[to], from)
		}
	}
	return t
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/aclements/go-treewalk/graph/graphout"
	"github.com/aclements/go-treewalk/recursive"
)

// treeRow is one line of tree output under construction. pterm.TreeNode
// holds its children by value, so rows are linked by pointer while
// the walk is in progress and converted once it is done.
type treeRow struct {
	text     string
	children []*treeRow
}

func (r *treeRow) node() pterm.TreeNode {
	n := pterm.TreeNode{Text: r.text}
	for _, c := range r.children {
		n.Children = append(n.Children, c.node())
	}
	return n
}

// renderTree draws the emissions of e made on the way down as a
// box-drawing tree. e must include ParentThenChildren.
func renderTree[T any](w io.Writer, e *recursive.Enumerator[T], maxDepth int, colorize bool, v view[T]) error {
	if !colorize && pterm.PrintColor {
		pterm.DisableColor()
		defer pterm.EnableColor()
	}

	root := &treeRow{}
	// parents[i] is the row last entered at depth i.
	parents := []*treeRow{root}
	for e.MoveNext() {
		if !e.Entering() {
			continue
		}
		depth := e.Depth()
		if maxDepth > 0 && depth > maxDepth {
			continue
		}
		if depth >= len(parents) {
			return fmt.Errorf("walking %s: %w", v.name, graphout.ErrSkippedLevel)
		}
		val := e.Current()
		row := &treeRow{text: v.label(val)}
		if colorize && v.isContainer(val) {
			row.text = pterm.Bold.Sprint(row.text)
		}
		parent := parents[depth]
		parent.children = append(parent.children, row)
		parents = append(parents[:depth+1], row)
	}
	if err := e.Err(); err != nil {
		return fmt.Errorf("walking %s: %w", v.name, err)
	}

	s, err := pterm.DefaultTree.WithRoot(root.node()).Srender()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graphout renders traversals in Graphviz Dot form.
package graphout // import "github.com/aclements/go-treewalk/graph/graphout"

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aclements/go-treewalk/recursive"
)

// ErrSkippedLevel is returned by Fprint when a descent emission has
// no parent emission before it, as happens when items are listed by
// an enumeration without ParentThenChildren.
var ErrSkippedLevel = errors.New("enumeration skipped a level")

// Dot contains options for generating a Graphviz Dot graph from the
// tree described by an enumeration.
type Dot[T any] struct {
	// Name is the name given to the graph. Usually this can be
	// left blank.
	Name string

	// Label returns the string to use as a label for the given
	// value. If nil, values are formatted with %v.
	Label func(v T) string

	// NodeAttrs, if non-nil, returns a set of attributes for a
	// node. If this includes a "label" attribute, it overrides
	// the label returned by Label.
	NodeAttrs func(v T) []DotAttr
}

// DotAttr is an attribute for a Dot node or edge.
type DotAttr struct {
	Name string
	// Val is the value of this attribute. It may be a string
	// (which will be escaped), bool, int, uint, float64 or
	// DotLiteral.
	Val interface{}
}

// DotLiteral is a string literal that should be passed to dot
// unescaped.
type DotLiteral string

// Sprint returns the Dot form of the enumeration e as a string.
func (d Dot[T]) Sprint(e *recursive.Enumerator[T]) (string, error) {
	var buf strings.Builder
	err := d.Fprint(&buf, e)
	return buf.String(), err
}

// Fprint consumes e and writes the tree it describes to w in Dot form.
//
// Nodes are created for emissions made on the way down, and each is
// connected to the nearest shallower emission before it. e should
// therefore be a ParentThenChildren or Both enumeration; completion
// emissions are ignored. An item with no emitted parent fails with
// ErrSkippedLevel. Every emission becomes a distinct Dot node,
// so values that occur several times in the tree produce several
// nodes.
func (d Dot[T]) Fprint(w io.Writer, e *recursive.Enumerator[T]) error {
	label := d.Label
	if label == nil {
		label = func(v T) string { return fmt.Sprint(v) }
	}

	_, err := fmt.Fprintf(w, "digraph %s {\n", DotString(d.Name))
	if err != nil {
		return err
	}

	// parents[i] is the Dot node ID of the last node entered at
	// depth i.
	var parents []int
	id := 0
	for e.MoveNext() {
		if !e.Entering() {
			continue
		}
		v, depth := e.Current(), e.Depth()

		var attrList []DotAttr
		var haveLabel bool
		if d.NodeAttrs != nil {
			attrList = d.NodeAttrs(v)
			for _, attr := range attrList {
				if attr.Name == "label" {
					haveLabel = true
					break
				}
			}
		}
		if !haveLabel {
			attrList = attrList[:len(attrList):len(attrList)]
			attrList = append(attrList, DotAttr{"label", label(v)})
		}
		if depth > len(parents) {
			return fmt.Errorf("%w: value at depth %d after depth %d", ErrSkippedLevel, depth, len(parents)-1)
		}
		_, err = fmt.Fprintf(w, "n%d%s;\n", id, formatAttrs(attrList))
		if err != nil {
			return err
		}

		parents = parents[:depth]
		if depth > 0 {
			_, err = fmt.Fprintf(w, "n%d -> n%d;\n", parents[depth-1], id)
			if err != nil {
				return err
			}
		}
		parents = append(parents, id)
		id++
	}
	if err := e.Err(); err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "}\n")
	return err
}

// DotString returns s as a quoted dot string.
//
// Users of the Dot type don't need to call this, since it will
// automatically quote strings. However, this is useful for building
// custom dot output.
func DotString(s string) string {
	buf := []byte{'"'}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\\', '"', '{', '}', '<', '>', '|':
			buf = append(buf, '\\', s[i])
		default:
			buf = append(buf, s[i])
		}
	}
	buf = append(buf, '"')
	return string(buf)
}

// formatAttrs formats attrs as a dot attribute set, including the
// surrounding brackets. If attrs is empty, it returns an empty
// string.
func formatAttrs(attrs []DotAttr) string {
	if len(attrs) == 0 {
		return ""
	}
	var buf strings.Builder
	buf.WriteString(" [")
	for i, attr := range attrs {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString(attr.Name)
		buf.WriteString("=")
		switch val := attr.Val.(type) {
		case string:
			buf.WriteString(DotString(val))
		case bool, int, uint, float64:
			fmt.Fprintf(&buf, "%v", val)
		case DotLiteral:
			buf.WriteString(string(val))
		default:
			panic(fmt.Sprintf("dot attribute %s had unknown type %T", attr.Name, attr.Val))
		}
	}
	buf.WriteString("]")
	return buf.String()
}

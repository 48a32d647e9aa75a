// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mdoutline turns a Markdown document into an outline that the
// recursive enumerator can walk.
//
// Headings open sections, which nest under the nearest preceding
// heading of a lower level. Sections are containers. Every other
// top-level block (paragraphs, lists, code blocks, quotes and so on)
// is an item of the section it appears in.
package mdoutline // import "github.com/aclements/go-treewalk/source/mdoutline"

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/aclements/go-treewalk/recursive"
	"github.com/aclements/go-treewalk/seq"
)

// Element is a heading or a block of a Markdown document.
type Element struct {
	// Kind is the goldmark node kind, such as "Heading",
	// "Paragraph" or "FencedCodeBlock". The root of an outline
	// has kind "Document".
	Kind string

	// Level is the heading level, or 0 for the document and for
	// blocks.
	Level int

	// Text is the first line of text of the element.
	Text string
}

// Section is a heading together with everything up to the next
// heading of the same or a lower level.
type Section struct {
	Element

	// entries holds blocks and subsections in document order.
	entries []entry
}

type entry struct {
	block   Element
	section *Section // nil for blocks
}

// Sections returns the direct subsections of s.
func (s *Section) Sections() []*Section {
	var out []*Section
	for _, e := range s.entries {
		if e.section != nil {
			out = append(out, e.section)
		}
	}
	return out
}

// Blocks returns the non-heading blocks directly within s.
func (s *Section) Blocks() []Element {
	var out []Element
	for _, e := range s.entries {
		if e.section == nil {
			out = append(out, e.block)
		}
	}
	return out
}

// Parse parses the Markdown in src and returns its outline. title
// becomes the text of the root section.
func Parse(src []byte, title string) *Section {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	root := &Section{Element: Element{Kind: ast.KindDocument.String(), Text: title}}
	// open[i] is the innermost section whose level is <= i; open
	// always starts with root.
	open := []*Section{root}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			for len(open) > 1 && open[len(open)-1].Level >= h.Level {
				open = open[:len(open)-1]
			}
			sec := &Section{Element: Element{Kind: n.Kind().String(), Level: h.Level, Text: firstLine(n, src)}}
			parent := open[len(open)-1]
			parent.entries = append(parent.entries, entry{section: sec})
			open = append(open, sec)
			continue
		}
		cur := open[len(open)-1]
		cur.entries = append(cur.entries, entry{block: Element{Kind: n.Kind().String(), Text: firstLine(n, src)}})
	}
	return root
}

// firstLine returns the first line of text in n.
func firstLine(n ast.Node, src []byte) string {
	if c := n.FirstChild(); c != nil && c.Type() == ast.TypeInline {
		var buf bytes.Buffer
		inlineText(&buf, n, src)
		line, _, _ := strings.Cut(buf.String(), "\n")
		return strings.TrimSpace(line)
	}
	if c := n.FirstChild(); c != nil {
		return firstLine(c, src)
	}
	if lines := n.Lines(); lines != nil && lines.Len() > 0 {
		seg := lines.At(0)
		return strings.TrimSpace(string(seg.Value(src)))
	}
	return ""
}

func inlineText(buf *bytes.Buffer, n ast.Node, src []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			buf.Write(c.Segment.Value(src))
			if c.SoftLineBreak() || c.HardLineBreak() {
				buf.WriteByte('\n')
			}
		case *ast.String:
			buf.Write(c.Value)
		default:
			inlineText(buf, c, src)
		}
	}
}

// Recursive returns s as a recursive.Enumerable. Children yields
// blocks and subsections in document order, Containers yields the
// subsections and Items yields the blocks.
func (s *Section) Recursive() recursive.Enumerable[Element] {
	return s
}

func (s *Section) Value() Element {
	return s.Element
}

func (s *Section) Children() seq.Cursor[recursive.Enumerable[Element]] {
	return seq.Map(seq.Slice(s.entries), func(e entry) recursive.Enumerable[Element] {
		if e.section != nil {
			return e.section
		}
		return leaf(e.block)
	})
}

func (s *Section) Containers() seq.Cursor[recursive.Enumerable[Element]] {
	return seq.Map(seq.Slice(s.Sections()), func(sec *Section) recursive.Enumerable[Element] {
		return sec
	})
}

func (s *Section) Items() seq.Cursor[Element] {
	return seq.Slice(s.Blocks())
}

// leaf is a block seen as a node without children.
type leaf Element

func (l leaf) Value() Element { return Element(l) }

func (l leaf) Children() seq.Cursor[recursive.Enumerable[Element]] {
	return seq.Empty[recursive.Enumerable[Element]]()
}

func (l leaf) Containers() seq.Cursor[recursive.Enumerable[Element]] {
	return seq.Empty[recursive.Enumerable[Element]]()
}

func (l leaf) Items() seq.Cursor[Element] {
	return seq.Empty[Element]()
}

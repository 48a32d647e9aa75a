// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fstree describes a directory hierarchy to the recursive
// enumerator. Directories are containers and everything else is an
// item.
package fstree // import "github.com/aclements/go-treewalk/source/fstree"

import (
	"io/fs"
	"path"
	"strings"

	"github.com/aclements/go-treewalk/recursive"
	"github.com/aclements/go-treewalk/seq"
)

// Entry is a file or directory found during a walk.
type Entry struct {
	// Path is the slash-separated path of the entry within the
	// file system, as accepted by fs.ReadDir.
	Path string

	// Name is the final element of Path.
	Name string

	// IsDir reports whether the entry is a directory.
	IsDir bool
}

// Tree walks a directory of a file system.
type Tree struct {
	FS fs.FS

	// Hidden includes entries whose names begin with a dot.
	Hidden bool
}

// Root returns the Enumerable for the directory dir of t.FS. The
// directory is not read until the enumerator descends into it; read
// errors surface from the enumerator's Err method.
func (t Tree) Root(dir string) recursive.Enumerable[Entry] {
	return node{t, Entry{Path: dir, Name: path.Base(dir), IsDir: true}}
}

type node struct {
	t Tree
	e Entry
}

func (n node) Value() Entry {
	return n.e
}

func (n node) Children() seq.Cursor[recursive.Enumerable[Entry]] {
	return n.containers(func(Entry) bool { return true })
}

func (n node) Containers() seq.Cursor[recursive.Enumerable[Entry]] {
	return n.containers(func(e Entry) bool { return e.IsDir })
}

func (n node) containers(keep func(Entry) bool) seq.Cursor[recursive.Enumerable[Entry]] {
	return seq.Map(seq.Filter[Entry](n.read(), keep), func(e Entry) recursive.Enumerable[Entry] {
		return node{n.t, e}
	})
}

func (n node) Items() seq.Cursor[Entry] {
	return seq.Filter[Entry](n.read(), func(e Entry) bool { return !e.IsDir })
}

func (n node) read() *dirCursor {
	if !n.e.IsDir {
		return &dirCursor{}
	}
	return &dirCursor{t: n.t, dir: n.e.Path}
}

// dirCursor lists a directory in the order fs.ReadDir returns, which
// is sorted by file name. The directory is read on the first call to
// MoveNext.
type dirCursor struct {
	t       Tree
	dir     string
	entries []fs.DirEntry
	pos     int
	read    bool
	err     error
}

func (c *dirCursor) MoveNext() bool {
	if c.dir == "" {
		return false
	}
	if !c.read {
		c.read = true
		c.entries, c.err = fs.ReadDir(c.t.FS, c.dir)
		c.pos = -1
		if c.err != nil {
			return false
		}
	}
	for c.pos+1 < len(c.entries) {
		c.pos++
		if c.t.Hidden || !strings.HasPrefix(c.entries[c.pos].Name(), ".") {
			return true
		}
	}
	c.pos = len(c.entries)
	return false
}

func (c *dirCursor) Current() Entry {
	d := c.entries[c.pos]
	return Entry{Path: path.Join(c.dir, d.Name()), Name: d.Name(), IsDir: d.IsDir()}
}

func (c *dirCursor) Err() error {
	return c.err
}

func (c *dirCursor) Reset() error {
	c.read, c.entries, c.err = false, nil, nil
	return nil
}

func (c *dirCursor) ResetSupported() bool { return true }

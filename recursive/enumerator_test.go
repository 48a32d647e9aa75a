// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recursive_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-treewalk/recursive"
	"github.com/aclements/go-treewalk/seq"
	"github.com/aclements/go-treewalk/stack"
)

// root -> {A, B}, A -> {A1}
var small = map[string][]string{
	"root": {"A", "B"},
	"A":    {"A1"},
}

func children(g map[string][]string) func(string) seq.Cursor[string] {
	return func(v string) seq.Cursor[string] { return seq.Slice(g[v]) }
}

type emission struct {
	V        string
	Entering bool
	Depth    int
}

func drain(t *testing.T, e *recursive.Enumerator[string]) []emission {
	t.Helper()
	var out []emission
	for e.MoveNext() {
		out = append(out, emission{e.Current(), e.Entering(), e.Depth()})
	}
	require.NoError(t, e.Err())
	return out
}

func values(es []emission) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.V
	}
	return out
}

func walk(t *testing.T, r recursive.Enumerable[string], order recursive.Order, mode recursive.Mode) []emission {
	t.Helper()
	e, err := recursive.Walk(r, order, mode)
	require.NoError(t, err)
	defer e.Close()
	return drain(t, e)
}

func TestOrderUniform(t *testing.T) {
	root := recursive.Wrap("root", children(small))
	tests := []struct {
		order recursive.Order
		want  []emission
	}{
		{recursive.ParentThenChildren, []emission{
			{"root", true, 0}, {"A", true, 1}, {"A1", true, 2}, {"B", true, 1},
		}},
		{recursive.ChildrenThenParent, []emission{
			{"A1", false, 2}, {"A", false, 1}, {"B", false, 1}, {"root", false, 0},
		}},
		{recursive.Both, []emission{
			{"root", true, 0},
			{"A", true, 1},
			{"A1", true, 2}, {"A1", false, 2},
			{"A", false, 1},
			{"B", true, 1}, {"B", false, 1},
			{"root", false, 0},
		}},
	}
	for _, test := range tests {
		t.Run(test.order.String(), func(t *testing.T) {
			assert.Equal(t, test.want, walk(t, root, test.order, recursive.Uniform))
		})
	}
}

func TestBothEmitsEveryNodeTwice(t *testing.T) {
	root := recursive.Wrap("root", children(small))
	counts := map[string]int{}
	for _, e := range walk(t, root, recursive.Both, recursive.Uniform) {
		counts[e.V]++
	}
	assert.Equal(t, map[string]int{"root": 2, "A": 2, "A1": 2, "B": 2}, counts)
}

// X has container C1 and items I1, I2. C1 has item c.
func splitTree() recursive.Value[string] {
	containers := map[string][]string{"X": {"C1"}}
	items := map[string][]string{"X": {"I1", "I2"}, "C1": {"c"}}
	return recursive.WrapSplit("X", nil, recursive.Converters[string]{
		Containers: children(containers),
		Items:      children(items),
	})
}

func TestContainersAndItems(t *testing.T) {
	tests := []struct {
		name  string
		order recursive.Order
		mode  recursive.Mode
		want  []string
	}{
		{"containers-first/pre", recursive.ParentThenChildren, recursive.ContainersThenItems,
			[]string{"X", "C1", "c", "I1", "I2"}},
		{"items-first/pre", recursive.ParentThenChildren, recursive.ItemsThenContainers,
			[]string{"X", "I1", "I2", "C1", "c"}},
		{"containers-first/post", recursive.ChildrenThenParent, recursive.ContainersThenItems,
			[]string{"c", "C1", "I1", "I2", "X"}},
		{"items-first/post", recursive.ChildrenThenParent, recursive.ItemsThenContainers,
			[]string{"I1", "I2", "c", "C1", "X"}},
		{"items-first/both", recursive.Both, recursive.ItemsThenContainers,
			[]string{"X", "I1", "I2", "C1", "c", "C1", "X"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, values(walk(t, splitTree(), test.order, test.mode)))
		})
	}
}

func TestItemDepth(t *testing.T) {
	got := walk(t, splitTree(), recursive.ParentThenChildren, recursive.ContainersThenItems)
	want := []emission{
		{"X", true, 0}, {"C1", true, 1}, {"c", true, 2}, {"I1", true, 1}, {"I2", true, 1},
	}
	assert.Equal(t, want, got)
}

func TestEmptyRoot(t *testing.T) {
	e, err := recursive.New[string](seq.Empty[recursive.Enumerable[string]](), recursive.Both, recursive.Uniform)
	require.NoError(t, err)
	defer e.Close()
	assert.False(t, e.MoveNext())
	assert.NoError(t, e.Err())
	assert.False(t, e.MoveNext(), "exhausted enumerator must stay exhausted")
}

func TestMultipleRoots(t *testing.T) {
	g := map[string][]string{"r1": {"a"}, "r2": {"b"}}
	conv := children(g)
	roots := seq.Slice([]recursive.Enumerable[string]{
		recursive.Wrap("r1", conv),
		recursive.Wrap("r2", conv),
	})
	e, err := recursive.New[string](roots, recursive.ParentThenChildren, recursive.Uniform)
	require.NoError(t, err)
	defer e.Close()
	assert.Equal(t, []string{"r1", "a", "r2", "b"}, slices.Collect(e.All()))
}

func TestInvalidConfiguration(t *testing.T) {
	root := seq.Empty[recursive.Enumerable[int]]()
	for _, o := range []recursive.Order{0, 4, recursive.Both | 8} {
		_, err := recursive.New[int](root, o, recursive.Uniform)
		assert.ErrorIs(t, err, recursive.ErrInvalidOrder, "order %d", o)
	}
	_, err := recursive.New[int](root, recursive.Both, recursive.Mode(3))
	assert.ErrorIs(t, err, recursive.ErrInvalidMode)

	_, err = recursive.NewDelegate[int](root, recursive.Both, recursive.Uniform, nil)
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	root := recursive.Wrap("root", children(small))
	e, err := recursive.Walk[string](root, recursive.Both, recursive.Uniform)
	require.NoError(t, err)
	defer e.Close()
	assert.Equal(t, seq.Supported, e.ResetSupport())

	first := drain(t, e)
	require.NoError(t, e.Reset())
	assert.Equal(t, first, drain(t, e))

	// Reset in the middle of a traversal.
	require.NoError(t, e.Reset())
	require.True(t, e.MoveNext())
	require.True(t, e.MoveNext())
	require.NoError(t, e.Reset())
	assert.Equal(t, first, drain(t, e))
}

func TestResetUnsupported(t *testing.T) {
	done := false
	root := seq.Func(func() (recursive.Enumerable[string], bool) {
		if done {
			return nil, false
		}
		done = true
		return recursive.Wrap("root", children(small)), true
	}, nil)
	e, err := recursive.New[string](root, recursive.ParentThenChildren, recursive.Uniform)
	require.NoError(t, err)
	defer e.Close()
	assert.Equal(t, seq.Unsupported, e.ResetSupport())
	assert.ErrorIs(t, e.Reset(), seq.ErrResetUnsupported)
}

// tracked counts cursors opened and closed over a tree.
type tracked struct {
	*seq.SliceCursor[string]
	open *int
}

func (c tracked) Close() error {
	*c.open--
	return nil
}

func TestClose(t *testing.T) {
	open := 0
	conv := func(v string) seq.Cursor[string] {
		open++
		return tracked{seq.Slice(small[v]), &open}
	}
	e, err := recursive.Walk[string](recursive.Wrap("root", conv), recursive.ParentThenChildren, recursive.Uniform)
	require.NoError(t, err)

	// Stop part way down: root, A, A1 frames are live.
	for i := 0; i < 3; i++ {
		require.True(t, e.MoveNext())
	}
	assert.Equal(t, 3, open)

	require.NoError(t, e.Close())
	assert.Equal(t, 0, open, "Close must release every child cursor")

	assert.ErrorIs(t, e.Err(), recursive.ErrDisposed)
	assert.False(t, e.MoveNext())
	assert.ErrorIs(t, e.Err(), recursive.ErrDisposed)
	assert.PanicsWithError(t, recursive.ErrDisposed.Error(), func() { e.Current() })
	assert.PanicsWithError(t, recursive.ErrDisposed.Error(), func() { e.Depth() })
	assert.ErrorIs(t, e.Reset(), recursive.ErrDisposed)
	assert.NoError(t, e.Close(), "second Close must be a no-op")
	assert.Equal(t, 0, open)
}

func TestCursorsClosedDuringTraversal(t *testing.T) {
	open := 0
	conv := func(v string) seq.Cursor[string] {
		open++
		return tracked{seq.Slice(small[v]), &open}
	}
	e, err := recursive.Walk[string](recursive.Wrap("root", conv), recursive.ChildrenThenParent, recursive.Uniform)
	require.NoError(t, err)
	defer e.Close()
	drain(t, e)
	assert.Equal(t, 0, open)
}

// DAG: root -> {A, B}, A -> {S}, B -> {S}.
var dag = map[string][]string{
	"root": {"A", "B"},
	"A":    {"S"},
	"B":    {"S"},
}

func TestDelegate(t *testing.T) {
	root := recursive.Wrap("root", children(dag))
	tests := []struct {
		order recursive.Order
		want  []string
	}{
		{recursive.ChildrenThenParent, []string{"S", "A", "B", "root"}},
		{recursive.Both, []string{"root", "A", "S", "S", "A", "B", "S", "B", "root"}},
	}
	for _, test := range tests {
		t.Run(test.order.String(), func(t *testing.T) {
			admit := recursive.Visited(func(s string) string { return s })
			e, err := recursive.NewDelegate[string](seq.Single[recursive.Enumerable[string]](root), test.order, recursive.Uniform, admit)
			require.NoError(t, err)
			defer e.Close()
			assert.Equal(t, test.want, values(drain(t, e)))
		})
	}

	// The plain enumerator never suppresses anything.
	got := values(walk(t, root, recursive.ChildrenThenParent, recursive.Uniform))
	assert.Equal(t, []string{"S", "A", "S", "B", "root"}, got)
}

type failingItems struct {
	*seq.SliceCursor[string]
	err error
}

func (f failingItems) Err() error { return f.err }

func TestSourceError(t *testing.T) {
	boom := errors.New("read failed")
	root := recursive.WrapSplit("X", nil, recursive.Converters[string]{
		Items: func(string) seq.Cursor[string] {
			return failingItems{seq.Slice([]string{"I1"}), boom}
		},
	})
	e, err := recursive.Walk[string](root, recursive.ParentThenChildren, recursive.ContainersThenItems)
	require.NoError(t, err)
	defer e.Close()

	var got []string
	for e.MoveNext() {
		got = append(got, e.Current())
	}
	assert.Equal(t, []string{"X", "I1"}, got)
	assert.ErrorIs(t, e.Err(), boom)
	assert.False(t, e.MoveNext())
}

func TestWithStack(t *testing.T) {
	s := stack.New[*recursive.Frame[string]](4)
	s.Push(&recursive.Frame[string]{})
	root := recursive.Wrap("root", children(small))

	for i := 0; i < 2; i++ {
		e, err := recursive.Walk(recursive.Enumerable[string](root), recursive.ParentThenChildren, recursive.Uniform, recursive.WithStack(s))
		require.NoError(t, err)
		assert.Equal(t, []string{"root", "A", "A1", "B"}, values(drain(t, e)))
		assert.False(t, s.HasItems())
		require.NoError(t, e.Close())
	}
}

func TestDeepTree(t *testing.T) {
	// A chain deep enough that a recursive walk would be costly.
	const depth = 100000
	conv := func(n int) seq.Cursor[int] {
		if n == depth {
			return seq.Empty[int]()
		}
		return seq.Single(n + 1)
	}
	e, err := recursive.Walk[int](recursive.Wrap(0, conv), recursive.ChildrenThenParent, recursive.Uniform)
	require.NoError(t, err)
	defer e.Close()
	n, want := 0, depth
	for e.MoveNext() {
		if e.Current() != want {
			t.Fatalf("want %d, got %d", want, e.Current())
		}
		want--
		n++
	}
	assert.Equal(t, depth+1, n)
}

func TestParse(t *testing.T) {
	o, err := recursive.ParseOrder("post")
	require.NoError(t, err)
	assert.Equal(t, recursive.ChildrenThenParent, o)
	_, err = recursive.ParseOrder("sideways")
	assert.ErrorIs(t, err, recursive.ErrInvalidOrder)

	m, err := recursive.ParseMode("items-first")
	require.NoError(t, err)
	assert.Equal(t, recursive.ItemsThenContainers, m)
	_, err = recursive.ParseMode("diagonal")
	assert.ErrorIs(t, err, recursive.ErrInvalidMode)
}

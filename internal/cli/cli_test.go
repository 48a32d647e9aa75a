// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes treewalk with args and config and env paths that do
// not exist, so only defaults and flags apply.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	tmp := t.TempDir()
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(tmp, "missing.yaml"),
		"--env-file", filepath.Join(tmp, "missing.env"),
	}, args...))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}

func sampleDir(t *testing.T) string {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a", "x.txt"), "x")
	writeFile(t, filepath.Join(dir, "b.txt"), "b")
	writeFile(t, filepath.Join(dir, ".hidden"), "h")
	return dir
}

func TestFS(t *testing.T) {
	dir := sampleDir(t)
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"pre", nil, lines(dir, "  a", "    x.txt", "  b.txt")},
		{"post", []string{"--order", "post"}, lines("    x.txt", "  a", "  b.txt", dir)},
		{"items first", []string{"--mode", "items-first"}, lines(dir, "  b.txt", "  a", "    x.txt")},
		{"both", []string{"--order", "both"}, lines(dir, "  a", "    x.txt", "  /a", "  b.txt", "/"+dir)},
		{"hidden", []string{"--hidden"}, lines(dir, "  .hidden", "  a", "    x.txt", "  b.txt")},
		{"max depth", []string{"--max-depth", "1"}, lines(dir, "  a", "  b.txt")},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			args := append([]string{"fs", dir}, test.args...)
			out, _, err := run(t, args...)
			require.NoError(t, err)
			assert.Equal(t, test.want, out)
		})
	}
}

func TestFSErrors(t *testing.T) {
	dir := sampleDir(t)

	_, _, err := run(t, "fs", filepath.Join(dir, "nope"))
	assert.Error(t, err)

	_, _, err = run(t, "fs", filepath.Join(dir, "b.txt"))
	assert.ErrorContains(t, err, "not a directory")

	_, _, err = run(t, "fs", dir, "--order", "sideways")
	assert.Error(t, err)

	_, _, err = run(t, "fs")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := sampleDir(t)
	cfgPath := filepath.Join(t.TempDir(), "treewalk.yaml")
	writeFile(t, cfgPath, "order: post\nmax_depth: 1\n")

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "--env-file", "", "fs", dir})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, lines("  a", "  b.txt", dir), out.String())

	// Flags win over the file.
	cmd = NewRootCommand()
	out.Reset()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "--env-file", "", "--order", "pre", "fs", dir})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, lines(dir, "  a", "  b.txt"), out.String())
}

func TestMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	writeFile(t, path, "# Title\n\npara\n\n## Sub\n\ntext\n")

	out, _, err := run(t, "md", path)
	require.NoError(t, err)
	assert.Equal(t, lines(
		"doc.md",
		"  # Title",
		"    [Paragraph] para",
		"    ## Sub",
		"      [Paragraph] text",
	), out)

	out, _, err = run(t, "md", path, "--mode", "containers-first")
	require.NoError(t, err)
	assert.Equal(t, lines(
		"doc.md",
		"  # Title",
		"    ## Sub",
		"      [Paragraph] text",
		"    [Paragraph] para",
	), out)

	_, _, err = run(t, "md", filepath.Join(t.TempDir(), "missing.md"))
	assert.ErrorContains(t, err, "failed to read markdown")
}

func TestGraph(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.txt")
	writeFile(t, path, "# cycle through the root\n0 1\n1 2\n2 0\n\n0 3\n7\n")

	out, _, err := run(t, "graph", path)
	require.NoError(t, err)
	assert.Equal(t, lines("0", "  1", "    2", "  3"), out)

	out, _, err = run(t, "graph", path, "--order", "both")
	require.NoError(t, err)
	assert.Equal(t, lines("0", "  1", "    2", "    /2", "  /1", "  3", "  /3", "/0"), out)

	out, _, err = run(t, "graph", path, "--root", "2")
	require.NoError(t, err)
	assert.Equal(t, lines("2", "  0", "    1", "    3"), out)

	out, _, err = run(t, "graph", path, "--root", "7")
	require.NoError(t, err)
	assert.Equal(t, lines("7"), out)

	_, _, err = run(t, "graph", path, "--root", "42")
	assert.ErrorContains(t, err, "not in the graph")
}

func TestGraphDot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.txt")
	writeFile(t, path, "0 1\n0 2\n")

	out, stderr, err := run(t, "graph", path, "--format", "dot", "--order", "post")
	require.NoError(t, err)
	assert.Contains(t, stderr, "pre-order")
	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, "n0 -> n1;")
	assert.Contains(t, out, "n0 -> n2;")
}

func TestReadEdgeList(t *testing.T) {
	g, err := readEdgeList(strings.NewReader("1 2\n2 3\n4\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Nodes().Len())
	assert.True(t, g.HasEdgeFromTo(1, 2))
	assert.False(t, g.HasEdgeFromTo(2, 1))

	for _, bad := range []string{"1 2 3\n", "a b\n", "5 5\n"} {
		_, err := readEdgeList(strings.NewReader(bad))
		assert.Error(t, err, "%q", bad)
	}
}

func TestEnvFile(t *testing.T) {
	dir := sampleDir(t)
	envPath := filepath.Join(t.TempDir(), ".env")
	writeFile(t, envPath, "TREEWALK_MODE=items-first\nTREEWALK_MAX_DEPTH=1\n")

	out, _, err := run(t, "--env-file", envPath, "fs", dir)
	require.NoError(t, err)
	assert.Equal(t, lines(dir, "  b.txt", "  a"), out)

	// Flags win over the environment.
	out, _, err = run(t, "--env-file", envPath, "--mode", "none", "fs", dir)
	require.NoError(t, err)
	assert.Equal(t, lines(dir, "  a", "  b.txt"), out)

	writeFile(t, envPath, "TREEWALK_MAX_DEPTH=deep\n")
	_, _, err = run(t, "--env-file", envPath, "fs", dir)
	assert.ErrorContains(t, err, "TREEWALK_MAX_DEPTH")
}

func TestTreeFormat(t *testing.T) {
	dir := sampleDir(t)
	colorBefore := pterm.PrintColor
	out, stderr, err := run(t, "fs", dir, "--format", "tree", "--order", "post")
	require.NoError(t, err)
	assert.Contains(t, stderr, "pre-order")
	assert.Equal(t, colorBefore, pterm.PrintColor, "tree output must not change pterm's color setting")

	// Labels appear once each, in pre-order.
	rest := out
	for _, label := range []string{filepath.Base(dir), "a", "x.txt", "b.txt"} {
		i := strings.Index(rest, label)
		require.GreaterOrEqual(t, i, 0, "%q missing or out of order in\n%s", label, out)
		rest = rest[i+len(label):]
	}
	assert.Equal(t, 4, len(strings.Split(strings.TrimRight(out, "\n"), "\n")), out)

	out, _, err = run(t, "fs", dir, "--format", "tree", "--max-depth", "1")
	require.NoError(t, err)
	assert.NotContains(t, out, "x.txt")
}

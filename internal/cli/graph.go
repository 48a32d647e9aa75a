// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/aclements/go-treewalk/graph/gonumsrc"
)

func newGraphCommand(opts *options) *cobra.Command {
	var root int64
	var leaves bool
	cmd := &cobra.Command{
		Use:   "graph FILE",
		Short: "Walk the depth-first spanning tree of a directed graph",
		Long: `Walk a directed graph read from an edge list.

Each line of FILE holds "FROM TO" node IDs, or a single ID for a node
without edges. Blank lines and lines starting with # are ignored.
Every node reachable from the root is printed once, so cycles are
safe.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			g, err := readEdgeList(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			start := g.Node(root)
			if start == nil {
				return fmt.Errorf("root node %d is not in the graph", root)
			}
			log.Debugf("%s: %d nodes", args[0], g.Nodes().Len())

			w := gonumsrc.Walker{G: g, Sorted: true, Leaves: leaves}
			return render[graph.Node](cmd, cfg, log, w.Roots(start), view[graph.Node]{
				name:        args[0],
				label:       func(n graph.Node) string { return strconv.FormatInt(n.ID(), 10) },
				isContainer: func(n graph.Node) bool { return !gonumsrc.IsLeaf(g, n.ID()) },
			})
		},
	}
	cmd.Flags().Int64Var(&root, "root", 0, "ID of the node to start from")
	cmd.Flags().BoolVar(&leaves, "leaves", false, "treat nodes without successors as items")
	return cmd
}

// readEdgeList parses an edge list into a directed graph.
func readEdgeList(r io.Reader) (*simple.DirectedGraph, error) {
	g := simple.NewDirectedGraph()
	node := func(id int64) graph.Node {
		if n := g.Node(id); n != nil {
			return n
		}
		n := simple.Node(id)
		g.AddNode(n)
		return n
	}

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) > 2 {
			return nil, fmt.Errorf("line %d: want at most two node IDs, got %d fields", line, len(fields))
		}
		var ids []int64
		for _, f := range fields {
			id, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			ids = append(ids, id)
		}
		from := node(ids[0])
		if len(ids) == 1 {
			continue
		}
		if ids[0] == ids[1] {
			return nil, fmt.Errorf("line %d: self loops are not supported", line)
		}
		g.SetEdge(g.NewEdge(from, node(ids[1])))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// treewalk prints directory trees, Markdown outlines and graphs
// depth-first in a chosen order.
package main

import (
	"fmt"
	"os"

	"github.com/aclements/go-treewalk/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

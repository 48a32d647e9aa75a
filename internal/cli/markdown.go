// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aclements/go-treewalk/seq"
	"github.com/aclements/go-treewalk/source/mdoutline"
)

func newMarkdownCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "md FILE",
		Short: "Walk the heading outline of a Markdown file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read markdown: %w", err)
			}
			name := filepath.Base(args[0])
			outline := mdoutline.Parse(src, name)
			log.Debugf("%s: %d top-level sections", name, len(outline.Sections()))

			return render[mdoutline.Element](cmd, cfg, log, seq.Single(outline.Recursive()), view[mdoutline.Element]{
				name:        name,
				label:       markdownLabel,
				isContainer: isSection,
			})
		},
	}
}

func isSection(e mdoutline.Element) bool {
	return e.Level > 0 || e.Kind == "Document"
}

func markdownLabel(e mdoutline.Element) string {
	switch {
	case e.Level > 0:
		return strings.Repeat("#", e.Level) + " " + e.Text
	case e.Kind == "Document":
		return e.Text
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Text)
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aclements/go-treewalk/graph/graphout"
	"github.com/aclements/go-treewalk/internal/config"
	"github.com/aclements/go-treewalk/internal/logger"
	"github.com/aclements/go-treewalk/recursive"
	"github.com/aclements/go-treewalk/seq"
)

// view describes how to print the values of one kind of tree.
type view[T any] struct {
	name        string
	label       func(T) string
	isContainer func(T) bool
}

// render walks the trees produced by roots according to cfg and writes
// them to cmd's output.
func render[T any](cmd *cobra.Command, cfg *config.Config, log *logger.ConsoleLogger, roots seq.Cursor[recursive.Enumerable[T]], v view[T]) error {
	order, mode, err := cfg.Traversal()
	if err != nil {
		return err
	}
	if cfg.Format != config.FormatText && order&recursive.ParentThenChildren == 0 {
		log.Warnf("%s output needs pre-order emissions; using order %s", cfg.Format, recursive.ParentThenChildren)
		order = recursive.ParentThenChildren
	}

	e, err := recursive.New(roots, order, mode)
	if err != nil {
		return err
	}
	defer e.Close()

	out := cmd.OutOrStdout()
	colorize := logger.IsTerminal(out)
	switch cfg.Format {
	case config.FormatDot:
		if cfg.MaxDepth > 0 {
			log.Debugf("max-depth is ignored for dot output")
		}
		d := graphout.Dot[T]{Name: v.name, Label: v.label}
		if err := d.Fprint(out, e); err != nil {
			return fmt.Errorf("walking %s: %w", v.name, err)
		}
		return nil
	case config.FormatTree:
		return renderTree(out, e, cfg.MaxDepth, colorize, v)
	}

	containerColor := color.New(color.FgBlue, color.Bold)
	if colorize {
		containerColor.EnableColor()
	} else {
		containerColor.DisableColor()
	}

	emitted, skipped := 0, 0
	for e.MoveNext() {
		depth := e.Depth()
		if cfg.MaxDepth > 0 && depth > cfg.MaxDepth {
			skipped++
			continue
		}
		val := e.Current()
		text := v.label(val)
		if v.isContainer(val) {
			text = containerColor.Sprint(text)
		}
		prefix := strings.Repeat("  ", depth)
		if order == recursive.Both && !e.Entering() {
			prefix += "/"
		}
		if _, err := fmt.Fprintf(out, "%s%s\n", prefix, text); err != nil {
			return err
		}
		emitted++
	}
	if err := e.Err(); err != nil {
		return fmt.Errorf("walking %s: %w", v.name, err)
	}
	log.Infof("%s: printed %d values, skipped %d below max depth", v.name, emitted, skipped)
	return nil
}

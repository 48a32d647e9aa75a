// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the treewalk command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/aclements/go-treewalk/internal/config"
	"github.com/aclements/go-treewalk/internal/logger"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// options holds the persistent flags shared by every subcommand.
type options struct {
	configPath string
	envFile    string
	order      string
	mode       string
	format     string
	logLevel   string
	hidden     bool
	maxDepth   int
}

// NewRootCommand creates and returns the root cobra command for treewalk
func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "treewalk",
		Short: "Print trees depth-first in a chosen order",
		Long: `treewalk flattens a tree into a depth-first listing.

The order flag selects whether a node is printed before its children
(pre), after them (post) or both. The mode flag optionally separates
containers, such as directories or sections, from items, such as files
or paragraphs, and lists one group before the other.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaults := config.DefaultConfig()
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", ".treewalk.yaml", "configuration file")
	flags.StringVar(&opts.envFile, "env-file", ".env", "file of TREEWALK_ variables applied over the configuration file")
	flags.StringVar(&opts.order, "order", defaults.Order, "emission order: pre, post or both")
	flags.StringVar(&opts.mode, "mode", defaults.Mode, "container/item separation: none, containers-first or items-first")
	flags.StringVar(&opts.format, "format", defaults.Format, "output format: text, dot or tree")
	flags.StringVar(&opts.logLevel, "log-level", defaults.LogLevel, "log level: trace, debug, info, warn or error")
	flags.BoolVar(&opts.hidden, "hidden", defaults.Hidden, "include dot files (fs only)")
	flags.IntVar(&opts.maxDepth, "max-depth", defaults.MaxDepth, "omit values deeper than this from text output (0 means unlimited)")

	cmd.AddCommand(newFSCommand(opts))
	cmd.AddCommand(newMarkdownCommand(opts))
	cmd.AddCommand(newGraphCommand(opts))

	return cmd
}

// resolve loads the configuration file, then applies TREEWALK_
// environment variables and finally any flags set on the command line.
func (o *options) resolve(cmd *cobra.Command) (*config.Config, *logger.ConsoleLogger, error) {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	env, err := config.LoadEnv(o.envFile)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.ApplyEnv(env); err != nil {
		return nil, nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("order") {
		cfg.Order = o.order
	}
	if flags.Changed("mode") {
		cfg.Mode = o.mode
	}
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("hidden") {
		cfg.Hidden = o.hidden
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = o.maxDepth
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	log.Debugf("config %s: order=%s mode=%s format=%s max-depth=%d",
		o.configPath, cfg.Order, cfg.Mode, cfg.Format, cfg.MaxDepth)
	return cfg, log, nil
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads treewalk settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/aclements/go-treewalk/internal/logger"
	"github.com/aclements/go-treewalk/recursive"
)

// Formats understood by the treewalk command.
const (
	FormatText = "text"
	FormatDot  = "dot"
	FormatTree = "tree"
)

var formats = []string{FormatText, FormatDot, FormatTree}

// Config represents treewalk configuration options
type Config struct {
	// Order is the emission order: pre, post or both.
	Order string `yaml:"order"`

	// Mode separates containers from items: none,
	// containers-first or items-first.
	Mode string `yaml:"mode"`

	// Format is the output format: text, dot or tree.
	Format string `yaml:"format"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Hidden includes dot files when walking directories.
	Hidden bool `yaml:"hidden"`

	// MaxDepth omits emissions deeper than this from the output.
	// Zero means unlimited.
	MaxDepth int `yaml:"max_depth"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Order:    "pre",
		Mode:     "none",
		Format:   FormatText,
		LogLevel: "warn",
	}
}

// LoadConfig loads configuration from the file at path.
// If the file doesn't exist, it returns the default configuration.
// If the file exists but is malformed or invalid, it returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if _, err := recursive.ParseOrder(c.Order); err != nil {
		return err
	}
	if _, err := recursive.ParseMode(c.Mode); err != nil {
		return err
	}
	if !lo.Contains(formats, c.Format) {
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

// Traversal returns the parsed order and mode. c must be valid.
func (c *Config) Traversal() (recursive.Order, recursive.Mode, error) {
	order, err := recursive.ParseOrder(c.Order)
	if err != nil {
		return 0, 0, err
	}
	mode, err := recursive.ParseMode(c.Mode)
	if err != nil {
		return 0, 0, err
	}
	return order, mode, nil
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv(map[string]string{
		"TREEWALK_ORDER":     "post",
		"TREEWALK_FORMAT":    "tree",
		"TREEWALK_HIDDEN":    "true",
		"TREEWALK_MAX_DEPTH": "3",
		"TREEWALK_UNKNOWN":   "ignored",
	}))
	assert.Equal(t, "post", cfg.Order)
	assert.Equal(t, FormatTree, cfg.Format)
	assert.True(t, cfg.Hidden)
	assert.Equal(t, 3, cfg.MaxDepth)
	assert.Equal(t, "none", cfg.Mode)
	require.NoError(t, cfg.Validate())

	assert.Error(t, DefaultConfig().ApplyEnv(map[string]string{"TREEWALK_HIDDEN": "maybe"}))
	assert.Error(t, DefaultConfig().ApplyEnv(map[string]string{"TREEWALK_MAX_DEPTH": "deep"}))
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, ".env")
	second := filepath.Join(dir, ".env.local")
	require.NoError(t, os.WriteFile(first, []byte("TREEWALK_ORDER=post\nTREEWALK_MODE=items-first\nOTHER=1\n"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("TREEWALK_MODE=containers-first\n"), 0644))
	t.Setenv("TREEWALK_LOG_LEVEL", "debug")

	env, err := LoadEnv(first, filepath.Join(dir, "missing.env"), second)
	require.NoError(t, err)
	assert.Equal(t, "post", env["TREEWALK_ORDER"])
	assert.Equal(t, "containers-first", env["TREEWALK_MODE"])
	assert.Equal(t, "debug", env["TREEWALK_LOG_LEVEL"])
	assert.NotContains(t, env, "OTHER")

	// The process environment wins over files.
	t.Setenv("TREEWALK_ORDER", "both")
	env, err = LoadEnv(first)
	require.NoError(t, err)
	assert.Equal(t, "both", env["TREEWALK_ORDER"])
}

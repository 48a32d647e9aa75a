// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

// EnvPrefix prefixes every environment variable treewalk reads.
const EnvPrefix = "TREEWALK_"

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// LoadEnv collects TREEWALK_ variables from the given env files and
// the process environment. Files that don't exist are skipped. Later
// files override earlier ones and the process environment overrides
// them all.
func LoadEnv(paths ...string) (map[string]string, error) {
	found := lo.Filter(paths, func(path string, _ int) bool {
		return fileExists(path)
	})

	env := map[string]string{}
	if len(found) > 0 {
		fileEnv, err := godotenv.Read(found...)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file: %w", err)
		}
		env = lo.PickBy(fileEnv, func(key, _ string) bool {
			return strings.HasPrefix(key, EnvPrefix)
		})
	}
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(key, EnvPrefix) {
			env[key] = value
		}
	}
	return env, nil
}

// ApplyEnv overrides the fields of c with the matching TREEWALK_
// variables in env. It does not validate the result.
func (c *Config) ApplyEnv(env map[string]string) error {
	for key, value := range env {
		switch strings.TrimPrefix(key, EnvPrefix) {
		case "ORDER":
			c.Order = value
		case "MODE":
			c.Mode = value
		case "FORMAT":
			c.Format = value
		case "LOG_LEVEL":
			c.LogLevel = value
		case "HIDDEN":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			c.Hidden = b
		case "MAX_DEPTH":
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			c.MaxDepth = n
		}
	}
	return nil
}

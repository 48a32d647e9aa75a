// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aclements/go-treewalk/seq"
	"github.com/aclements/go-treewalk/source/fstree"
)

func newFSCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fs DIR",
		Short: "Walk a directory; directories are containers, files are items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			dir := args[0]
			info, err := os.Stat(dir)
			if err != nil {
				return err
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", dir)
			}
			log.Debugf("walking directory %s", dir)

			tr := fstree.Tree{FS: os.DirFS(dir), Hidden: cfg.Hidden}
			return render[fstree.Entry](cmd, cfg, log, seq.Single(tr.Root(".")), view[fstree.Entry]{
				name: dir,
				label: func(e fstree.Entry) string {
					if e.Path == "." {
						return dir
					}
					return e.Name
				},
				isContainer: func(e fstree.Entry) bool { return e.IsDir },
			})
		},
	}
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/aclements/standings/internal/render"
)

func newDescribeCmd(a *app) *cobra.Command {
	f := &analysisFlags{}
	cmd := &cobra.Command{
		Use:   "describe <file>",
		Short: "Descriptive statistics and normality only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args[0], f, []render.Section{render.SectionDescription, render.SectionNormality})
		},
	}
	f.addInput(cmd.Flags())
	f.addDescribe(cmd.Flags())
	return cmd
}

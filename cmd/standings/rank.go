// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/aclements/standings/internal/render"
)

func newRankCmd(a *app) *cobra.Command {
	f := &analysisFlags{}
	cmd := &cobra.Command{
		Use:   "rank <file> (--score <x> | --entry <name>)",
		Short: "Percentile rank and next milestone of a score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args[0], f, []render.Section{render.SectionRank, render.SectionGoal})
		},
	}
	f.addInput(cmd.Flags())
	f.addScore(cmd.Flags())
	cmd.MarkFlagsMutuallyExclusive("score", "entry")
	cmd.MarkFlagsOneRequired("score", "entry")
	return cmd
}

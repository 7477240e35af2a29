// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Standings reads a leaderboard population and reports its
// distribution, the percentile rank of a score within it, and the
// score needed to reach the next target percentile.
//
// Usage:
//
//	standings analyze board.json --entry Death913
//	standings describe ratings.txt
//	standings rank ratings.csv --score 1500 --tie-policy strict
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aclements/standings/internal/config"
	"github.com/aclements/standings/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the state shared by all subcommands.
type app struct {
	stdout, stderr io.Writer

	configPath string
	logLevel   string
	noColor    bool

	cfg *config.Config
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "standings",
		Short: "Describe a leaderboard and find where a score stands in it",
		Long: `Standings analyzes a population of leaderboard scores.

Commands:
  analyze   Full report: statistics, normality, rank and goal
  describe  Descriptive statistics and normality only
  rank      Percentile rank and next milestone of a score`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: ./standings.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newAnalyzeCmd(a))
	root.AddCommand(newDescribeCmd(a))
	root.AddCommand(newRankCmd(a))
	root.AddCommand(a.versionCmd())
	return root
}

// setup loads the configuration, applies the global flags, and
// installs the logger.
func (a *app) setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.noColor {
		cfg.Output.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Output.NoColor {
		color.NoColor = true
	}

	a.cfg = cfg
	logging.SetGlobal(logging.New(a.stderr, cfg.Logging.Level, cfg.Logging.Format))
	logging.Debug("configuration loaded", "config", a.configPath, "output", cfg.Output.Format)
	return nil
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(a.stdout, "standings %s\n", version)
		},
	}
}

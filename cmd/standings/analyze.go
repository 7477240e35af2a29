// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aclements/standings/internal/config"
	"github.com/aclements/standings/internal/logging"
	"github.com/aclements/standings/internal/population"
	"github.com/aclements/standings/internal/render"
	"github.com/aclements/standings/stats"
)

// errNoData is reported when a file holds no usable values.
var errNoData = errors.New("no valid numeric data")

// analysisFlags are the command-line overrides of the configuration.
// Only flags that were set on the command line override config values.
type analysisFlags struct {
	score   float64
	entry   string
	compare string

	percentiles []float64
	targets     []float64
	tiePolicy   string
	decimals    int

	format     string
	nameField  string
	valueField string
	sheet      string

	output string
}

func (f *analysisFlags) addInput(fs *pflag.FlagSet) {
	fs.StringVar(&f.format, "format", "", "input format: json, txt, csv or xlsx (default: from the file extension)")
	fs.StringVar(&f.nameField, "name-field", "", "entry name field or column (default \"Username\")")
	fs.StringVar(&f.valueField, "value-field", "", "value field or column (default \"Rating\")")
	fs.StringVar(&f.sheet, "sheet", "", "XLSX sheet to read (default: the first sheet)")
	fs.StringVar(&f.output, "output", "", "output format: table or json")
	fs.IntVar(&f.decimals, "decimals", 0, "decimal places in table output (default 4)")
}

func (f *analysisFlags) addDescribe(fs *pflag.FlagSet) {
	fs.Float64SliceVar(&f.percentiles, "percentiles", nil, "percentiles to report (default 1,5,25,50,75,95,99)")
}

func (f *analysisFlags) addScore(fs *pflag.FlagSet) {
	fs.Float64Var(&f.score, "score", 0, "score to rank within the population")
	fs.StringVar(&f.entry, "entry", "", "rank the score of the named entry")
	fs.Float64SliceVar(&f.targets, "targets", nil, "goal target percentiles (default 80,90,95,99)")
	fs.StringVar(&f.tiePolicy, "tie-policy", "", "tie policy for the rank: strict, weak or mean (default mean)")
}

// apply returns a copy of cfg with the flags that were set on cmd
// applied.
func (f *analysisFlags) apply(cmd *cobra.Command, cfg *config.Config) (*config.Config, error) {
	c := *cfg
	set := cmd.Flags().Changed
	if set("percentiles") {
		c.Analysis.Percentiles = f.percentiles
	}
	if set("targets") {
		c.Analysis.Targets = f.targets
	}
	if set("tie-policy") {
		c.Analysis.TiePolicy = f.tiePolicy
	}
	if set("decimals") {
		c.Analysis.Decimals = f.decimals
	}
	if set("format") {
		c.Input.Format = f.format
	}
	if set("name-field") {
		c.Input.NameField = f.nameField
	}
	if set("value-field") {
		c.Input.ValueField = f.valueField
	}
	if set("sheet") {
		c.Input.Sheet = f.sheet
	}
	if set("output") {
		c.Output.Format = f.output
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func newAnalyzeCmd(a *app) *cobra.Command {
	f := &analysisFlags{}
	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Full report: statistics, normality, rank and goal",
		Long: `Analyze reads a population from a JSON leaderboard, a text file of
numbers, a CSV or an XLSX file ("-" reads standard input) and reports
its descriptive statistics and a normality test. With --score or
--entry it also reports the percentile rank of the score and the score
needed to reach the next target percentile.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args[0], f, nil)
		},
	}
	f.addInput(cmd.Flags())
	f.addDescribe(cmd.Flags())
	f.addScore(cmd.Flags())
	cmd.Flags().StringVar(&f.compare, "compare", "", "compare the --entry value with another named entry")
	cmd.MarkFlagsMutuallyExclusive("score", "entry")
	return cmd
}

// run loads the population at path, analyzes it, and renders the
// given sections of the report.
func (a *app) run(cmd *cobra.Command, path string, f *analysisFlags, sections []render.Section) error {
	cfg, err := f.apply(cmd, a.cfg)
	if err != nil {
		return err
	}
	opts, err := cfg.AnalysisOptions()
	if err != nil {
		return err
	}
	if f.compare != "" && f.entry == "" {
		return errors.New("--compare requires --entry")
	}
	if f.compare != "" && cfg.Output.Format != "table" {
		return errors.New("--compare is only supported with table output")
	}

	pop, err := population.Load(path, population.Options{
		Format:     population.Format(cfg.Input.Format),
		NameField:  cfg.Input.NameField,
		ValueField: cfg.Input.ValueField,
		Sheet:      cfg.Input.Sheet,
	})
	if err != nil {
		return err
	}
	log := logging.Global().With("file", path)
	log.Debug("population loaded", "entries", len(pop.Values), "missing", pop.Missing())

	flags := cmd.Flags()
	switch {
	case flags.Changed("score"):
		score := f.score
		opts.Score = &score
	case f.entry != "":
		score, err := pop.Lookup(f.entry)
		if err != nil {
			return err
		}
		log.Info("resolved entry", "entry", f.entry, "score", score)
		opts.Score = &score
	}

	r, err := stats.Analyze(pop.Values, opts)
	if errors.Is(err, stats.ErrEmptyPopulation) {
		return fmt.Errorf("%s: %w", path, errNoData)
	} else if err != nil {
		return err
	}
	if r.Dropped > 0 {
		log.Warn("ignored entries without a numeric value", "dropped", r.Dropped)
	}
	for _, err := range r.Omitted {
		log.Debug("partial report", "reason", err)
	}

	if cfg.Output.Format == "json" {
		return render.JSON(a.stdout, r)
	}
	err = render.Table(a.stdout, r, render.TableOptions{NoColor: cfg.Output.NoColor, Sections: sections})
	if err != nil || f.compare == "" {
		return err
	}

	other, err := pop.Lookup(f.compare)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout)
	return render.CompareTable(a.stdout, render.Comparison{
		Name:   f.entry,
		Other:  f.compare,
		Value:  *opts.Score,
		OtherV: other,
	}, cfg.Analysis.Decimals, cfg.Output.NoColor)
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the standings command configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/aclements/standings/stats"
)

// Config is the complete command configuration.
type Config struct {
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Input    InputConfig    `mapstructure:"input"`
	Output   OutputConfig   `mapstructure:"output"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// AnalysisConfig holds the analysis parameters.
type AnalysisConfig struct {
	Percentiles []float64 `mapstructure:"percentiles"`
	Targets     []float64 `mapstructure:"targets"`
	TiePolicy   string    `mapstructure:"tie_policy"`
	Decimals    int       `mapstructure:"decimals"`
}

// InputConfig describes how population files are read.
type InputConfig struct {
	// Format forces an input format ("json", "txt", "csv",
	// "xlsx"). Empty means detect from the file extension.
	Format string `mapstructure:"format"`

	// NameField and ValueField name the entry and value columns
	// (or JSON object keys).
	NameField  string `mapstructure:"name_field"`
	ValueField string `mapstructure:"value_field"`

	// Sheet is the XLSX sheet to read. Empty means the first one.
	Sheet string `mapstructure:"sheet"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

const maxDecimals = 12

var (
	validOutputFormats = []string{"table", "json"}
	validInputFormats  = []string{"", "json", "txt", "csv", "xlsx"}
	validLogLevels     = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}
	validLogFormats    = []string{"console", "pretty", "json"}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	opts := stats.DefaultOptions()
	return &Config{
		Analysis: AnalysisConfig{
			Percentiles: opts.Percentiles,
			Targets:     opts.Targets,
			TiePolicy:   opts.TiePolicy.String(),
			Decimals:    opts.Decimals,
		},
		Input: InputConfig{
			NameField:  "Username",
			ValueField: "Rating",
		},
		Output: OutputConfig{
			Format: "table",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := c.AnalysisOptions(); err != nil {
		return err
	}
	if c.Analysis.Decimals < 0 || c.Analysis.Decimals > maxDecimals {
		return fmt.Errorf("analysis.decimals must be between 0 and %d, got %d", maxDecimals, c.Analysis.Decimals)
	}
	if !contains(validInputFormats, c.Input.Format) {
		return fmt.Errorf("invalid input.format %q (want one of json, txt, csv, xlsx)", c.Input.Format)
	}
	if c.Input.ValueField == "" {
		return fmt.Errorf("input.value_field must not be empty")
	}
	if !contains(validOutputFormats, c.Output.Format) {
		return fmt.Errorf("invalid output.format %q (want table or json)", c.Output.Format)
	}
	if !contains(validLogLevels, strings.ToLower(c.Logging.Level)) {
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	if !contains(validLogFormats, c.Logging.Format) {
		return fmt.Errorf("invalid logging.format %q", c.Logging.Format)
	}
	return nil
}

// AnalysisOptions converts the analysis section to stats.Options.
// The score is left unset.
func (c *Config) AnalysisOptions() (stats.Options, error) {
	policy, err := stats.ParseTiePolicy(c.Analysis.TiePolicy)
	if err != nil {
		return stats.Options{}, fmt.Errorf("analysis.tie_policy: %w", err)
	}
	opts := stats.Options{
		Percentiles: c.Analysis.Percentiles,
		TiePolicy:   policy,
		Targets:     c.Analysis.Targets,
		Decimals:    c.Analysis.Decimals,
	}
	// Targets are only checked when a score is present, so
	// validate with a placeholder one.
	probe, zero := opts, 0.0
	probe.Score = &zero
	if err := probe.Validate(); err != nil {
		return stats.Options{}, fmt.Errorf("analysis: %w", err)
	}
	return opts, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

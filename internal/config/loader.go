// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override
// configuration keys, for example STANDINGS_ANALYSIS_TIE_POLICY.
const EnvPrefix = "STANDINGS"

// Load loads the configuration from configPath, or from standings.yaml
// in the current directory or $HOME/.config/standings if configPath
// is empty. A missing default config file is not an error.
//
// Environment variables prefixed with EnvPrefix override file values.
// A .env file in the current directory, if present, is loaded into
// the environment first.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("standings")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "standings"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return Parse(v)
}

// New returns a viper instance with the configuration defaults and
// environment overrides installed but no config file.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()

	v.SetDefault("analysis.percentiles", def.Analysis.Percentiles)
	v.SetDefault("analysis.targets", def.Analysis.Targets)
	v.SetDefault("analysis.tie_policy", def.Analysis.TiePolicy)
	v.SetDefault("analysis.decimals", def.Analysis.Decimals)

	v.SetDefault("input.format", def.Input.Format)
	v.SetDefault("input.name_field", def.Input.NameField)
	v.SetDefault("input.value_field", def.Input.ValueField)
	v.SetDefault("input.sheet", def.Input.Sheet)

	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("output.no_color", def.Output.NoColor)

	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
}

// Parse unmarshals and validates the configuration held by v.
func Parse(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

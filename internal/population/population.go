// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package population reads populations of scores from leaderboard
// files.
//
// Supported formats are JSON leaderboards, newline-separated text,
// CSV, and XLSX. Values that are missing or not numeric are recorded
// as NaN, which stats.Prepare drops.
package population

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	// ErrEntryNotFound is returned by Lookup when no entry has the
	// requested name.
	ErrEntryNotFound = errors.New("population: entry not found")

	// ErrAmbiguousEntry is returned by Lookup when several entries
	// have the requested name.
	ErrAmbiguousEntry = errors.New("population: entry name is ambiguous")

	// ErrUnknownFormat is returned for an unsupported input format.
	ErrUnknownFormat = errors.New("population: unknown input format")
)

// Format is an input file format.
type Format string

const (
	JSON Format = "json"
	Text Format = "txt"
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

// Options configures how a population is read.
type Options struct {
	// Format overrides format detection from the file extension.
	Format Format

	// NameField and ValueField are the keys (JSON) or header
	// names (CSV, XLSX) of the entry name and value. NameField may
	// be empty, in which case entries are unnamed.
	NameField  string
	ValueField string

	// Sheet is the XLSX sheet to read. Empty means the first
	// sheet.
	Sheet string
}

// Population is a set of named values read from a file.
type Population struct {
	// Values holds one value per entry, NaN where the value was
	// missing or not numeric.
	Values []float64

	// Names holds the entry names, parallel to Values. It is nil
	// if the source has no names.
	Names []string
}

// Lookup returns the value of the entry named name.
func (p *Population) Lookup(name string) (float64, error) {
	found := -1
	for i, n := range p.Names {
		if n != name {
			continue
		}
		if found >= 0 {
			return 0, fmt.Errorf("%w: %q", ErrAmbiguousEntry, name)
		}
		found = i
	}
	if found < 0 {
		return 0, fmt.Errorf("%w: %q", ErrEntryNotFound, name)
	}
	if v := p.Values[found]; !math.IsNaN(v) {
		return v, nil
	}
	return 0, fmt.Errorf("entry %q has no numeric value", name)
}

// Missing returns the number of entries without a numeric value.
func (p *Population) Missing() int {
	n := 0
	for _, v := range p.Values {
		if math.IsNaN(v) {
			n++
		}
	}
	return n
}

// Load reads a population from the file at path. A path of "-" reads
// from standard input, as text unless opts.Format says otherwise.
func Load(path string, opts Options) (*Population, error) {
	format := opts.Format
	if format == "" {
		format = DetectFormat(path)
	}

	if path == "-" {
		return Read(os.Stdin, format, opts)
	}
	if format == XLSX {
		// excelize needs random access.
		return loadXLSX(path, opts)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open population file: %w", err)
	}
	defer f.Close()

	p, err := Read(f, format, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Read reads a population in the given format from r.
func Read(r io.Reader, format Format, opts Options) (*Population, error) {
	switch format {
	case JSON:
		return readJSON(r, opts)
	case Text:
		return readText(r)
	case CSV:
		return readCSV(r, opts)
	case XLSX:
		return readXLSX(r, opts)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// DetectFormat guesses the format of path from its extension,
// defaulting to Text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON
	case ".csv":
		return CSV
	case ".xlsx", ".xlsm":
		return XLSX
	}
	return Text
}

// parseValue converts a cell to a value. Empty and non-numeric cells
// are NaN.
func parseValue(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package population

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

func readCSV(r io.Reader, opts Options) (*Population, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	return fromRows(rows, opts)
}

func readXLSX(r io.Reader, opts Options) (*Population, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX: %w", err)
	}
	defer f.Close()
	return xlsxRows(f, opts)
}

func loadXLSX(path string, opts Options) (*Population, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	p, err := xlsxRows(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func xlsxRows(f *excelize.File, opts Options) (*Population, error) {
	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return fromRows(rows, opts)
}

// fromRows builds a population from a header row followed by data
// rows. Columns are located by header name, case-insensitively.
func fromRows(rows [][]string, opts Options) (*Population, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no header row")
	}
	header := rows[0]
	valueCol := column(header, opts.ValueField)
	if valueCol < 0 {
		return nil, fmt.Errorf("no %q column in header %v", opts.ValueField, header)
	}
	nameCol := -1
	if opts.NameField != "" {
		nameCol = column(header, opts.NameField)
	}

	p := &Population{Values: make([]float64, 0, len(rows)-1)}
	if nameCol >= 0 {
		p.Names = make([]string, 0, len(rows)-1)
	}
	for _, row := range rows[1:] {
		p.Values = append(p.Values, parseValue(cell(row, valueCol)))
		if nameCol >= 0 {
			p.Names = append(p.Names, strings.TrimSpace(cell(row, nameCol)))
		}
	}
	return p, nil
}

func column(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// cell returns row[i], or "" for cells past the end of a short row.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

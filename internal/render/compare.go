// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Comparison is the difference between two named entries.
type Comparison struct {
	Name, Other   string
	Value, OtherV float64
}

// Diff returns Value - OtherV.
func (c Comparison) Diff() float64 {
	return c.Value - c.OtherV
}

// CompareTable writes c to w as a small table.
func CompareTable(w io.Writer, c Comparison, decimals int, noColor bool) error {
	p := &printer{
		decimals: decimals,
		good:     color.New(color.FgGreen),
		bad:      color.New(color.FgRed),
	}
	if noColor {
		p.good.DisableColor()
		p.bad.DisableColor()
	}

	t := newTable("Comparison")
	t.AppendRow(table.Row{c.Name, p.num(c.Value)})
	t.AppendRow(table.Row{c.Other, p.num(c.OtherV)})
	diff := p.num(c.Diff())
	switch d := c.Diff(); {
	case d > 0:
		diff = p.good.Sprint("+" + diff)
	case d < 0:
		diff = p.bad.Sprint(diff)
	}
	t.AppendFooter(table.Row{"Difference", diff})
	_, err := io.WriteString(w, t.Render()+"\n")
	return err
}

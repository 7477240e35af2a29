// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render formats stats.Report values for people and programs.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/aclements/standings/stats"
)

// TableOptions controls Table output.
type TableOptions struct {
	// NoColor disables colored verdicts and milestones.
	NoColor bool

	// Sections limits the output to the named sections. Nil means
	// all sections.
	Sections []Section
}

// Section is a part of the table output.
type Section string

const (
	SectionDescription Section = "description"
	SectionNormality   Section = "normality"
	SectionRank        Section = "rank"
	SectionGoal        Section = "goal"
)

// Table writes r to w as a set of aligned text tables.
func Table(w io.Writer, r *stats.Report, opts TableOptions) error {
	if r == nil {
		return errors.New("render: nil report")
	}
	p := &printer{
		decimals: r.Decimals,
		good:     color.New(color.FgGreen),
		bad:      color.New(color.FgRed),
		note:     color.New(color.FgYellow),
	}
	if opts.NoColor {
		for _, c := range []*color.Color{p.good, p.bad, p.note} {
			c.DisableColor()
		}
	}

	var parts []string
	want := func(s Section) bool {
		if opts.Sections == nil {
			return true
		}
		for _, o := range opts.Sections {
			if o == s {
				return true
			}
		}
		return false
	}
	if want(SectionDescription) {
		parts = append(parts, p.description(r))
	}
	if want(SectionNormality) {
		parts = append(parts, p.normality(r))
	}
	if r.Rank != nil && want(SectionRank) {
		parts = append(parts, p.rank(r.Rank))
	}
	if r.Goal != nil && want(SectionGoal) {
		parts = append(parts, p.goal(r.Goal))
	}
	_, err := io.WriteString(w, strings.Join(parts, "\n\n")+"\n")
	return err
}

type printer struct {
	decimals        int
	good, bad, note *color.Color
}

func (p *printer) num(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	// CommafWithDigits truncates, so round first.
	scale := math.Pow(10, float64(p.decimals))
	return humanize.CommafWithDigits(math.Round(x*scale)/scale, p.decimals)
}

// fixed formats x with exactly p.decimals digits, for statistics
// where trailing zeros carry meaning.
func (p *printer) fixed(x float64) string {
	return strconv.FormatFloat(x, 'f', p.decimals, 64)
}

func newTable(title string) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	t.Style().Options.SeparateRows = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = false
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignLeft},
	})
	return t
}

func (p *printer) description(r *stats.Report) string {
	d := r.Description
	t := newTable("Descriptive Statistics")
	t.AppendRow(table.Row{"Count", humanize.Comma(int64(d.Count))})
	if r.Dropped > 0 {
		t.AppendRow(table.Row{"Dropped (non-finite)", humanize.Comma(int64(r.Dropped))})
	}
	t.AppendRow(table.Row{"Sum", p.num(d.Sum)})
	t.AppendRow(table.Row{"Mean", p.num(d.Mean)})
	if d.Spread != nil {
		t.AppendRow(table.Row{"Standard Error", p.fixed(d.Spread.StdErr)})
	}
	t.AppendRow(table.Row{"Median", p.num(d.Median)})
	t.AppendRow(table.Row{"Mode", fmt.Sprintf("%s (×%d)", p.num(d.Mode), d.ModeCount)})
	if d.Spread != nil {
		t.AppendRow(table.Row{"Standard Deviation", p.fixed(d.Spread.StdDev)})
		t.AppendRow(table.Row{"Sample Variance", p.fixed(d.Spread.Variance)})
	}
	if d.Shape != nil {
		t.AppendRow(table.Row{"Skewness", p.fixed(d.Shape.Skewness)})
		t.AppendRow(table.Row{"Kurtosis (excess)", p.fixed(d.Shape.ExcessKurtosis)})
	}
	t.AppendRow(table.Row{"Minimum", p.num(d.Min)})
	t.AppendRow(table.Row{"Maximum", p.num(d.Max)})
	t.AppendRow(table.Row{"Range", p.num(d.Range)})
	for _, pv := range d.Percentiles {
		t.AppendRow(table.Row{fmt.Sprintf("Percentile %s%%", pct(pv.P)), p.num(pv.Value)})
	}
	for _, err := range r.Omitted {
		t.AppendFooter(table.Row{"Omitted", p.note.Sprint(omission(err))})
	}
	return t.Render()
}

func (p *printer) normality(r *stats.Report) string {
	t := newTable("Kolmogorov-Smirnov Normality Test")
	res := r.Normality
	if res == nil {
		t.AppendRow(table.Row{"Outcome", p.note.Sprint("not computed")})
		return t.Render()
	}
	t.AppendRow(table.Row{"Significance level", strconv.FormatFloat(res.Alpha, 'f', -1, 64)})
	t.AppendRow(table.Row{"D-Statistic", p.fixed(res.Statistic)})
	t.AppendRow(table.Row{"Critical Value", p.fixed(res.CriticalValue)})
	t.AppendRow(table.Row{"P-Value (asymptotic)", p.fixed(res.P)})
	outcome := p.good.Sprint("Fail to Reject (treat as normal)")
	if res.Verdict == stats.NotNormal {
		outcome = p.bad.Sprint("Reject (not normal)")
	}
	t.AppendRow(table.Row{"Outcome", outcome})
	return t.Render()
}

func (p *printer) rank(res *stats.PercentileRankResult) string {
	t := newTable("Percentile Rank")
	t.AppendRow(table.Row{"Population size (n)", humanize.Comma(int64(res.N))})
	t.AppendRow(table.Row{"Score", p.num(res.Score)})
	t.AppendRow(table.Row{"Below / at or below", fmt.Sprintf("%s / %s", humanize.Comma(int64(res.Below)), humanize.Comma(int64(res.AtOrBelow)))})
	t.AppendRow(table.Row{"Percentile", fmt.Sprintf("%s (tie policy %s)", p.fixed(res.Rank), res.Policy)})
	return t.Render()
}

func (p *printer) goal(g *stats.GoalReport) string {
	t := newTable("Target Percentiles (score needed)")
	for _, pv := range g.Thresholds {
		t.AppendRow(table.Row{fmt.Sprintf("%s%%", pct(pv.P)), p.num(pv.Value)})
	}
	m := g.Milestone
	var line string
	switch m.State {
	case stats.MilestoneNext:
		line = fmt.Sprintf("To reach %s%%, aim for ~%s (need +%s)", pct(m.Target), p.num(m.Threshold), p.num(m.Gap))
		line = p.note.Sprint(line)
	case stats.MilestoneAchieved:
		line = p.good.Sprintf("Already at/above the %s%% mark", pct(m.Target))
	case stats.MilestoneAtOrAboveHighestTarget:
		line = p.good.Sprintf("Already at/above the highest target (%s%%)", pct(m.Target))
	}
	t.AppendFooter(table.Row{"Next milestone", line})
	return t.Render()
}

// pct formats a percentile without trailing zeros.
func pct(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func omission(err error) string {
	switch {
	case errors.Is(err, stats.ErrInsufficientSample):
		return "spread, shape and normality need at least two values"
	case errors.Is(err, stats.ErrDegenerateSample):
		return "shape and normality need values that are not all equal"
	}
	return err.Error()
}

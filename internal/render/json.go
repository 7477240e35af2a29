// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"encoding/json"
	"errors"
	"io"
	"math"

	"github.com/aclements/standings/stats"
)

// jsonReport is the stable JSON form of stats.Report.
type jsonReport struct {
	Count       int             `json:"count"`
	Dropped     int             `json:"dropped"`
	Description jsonDescription `json:"description"`
	Normality   *jsonNormality  `json:"normality,omitempty"`
	Rank        *jsonRank       `json:"rank,omitempty"`
	Goal        *jsonGoal       `json:"goal,omitempty"`
	Omitted     []string        `json:"omitted,omitempty"`
}

type jsonDescription struct {
	Sum            *float64         `json:"sum"`
	Mean           *float64         `json:"mean"`
	Median         *float64         `json:"median"`
	Mode           *float64         `json:"mode"`
	ModeCount      int              `json:"mode_count"`
	Min            *float64         `json:"min"`
	Max            *float64         `json:"max"`
	Range          *float64         `json:"range"`
	StdErr         *float64         `json:"std_err,omitempty"`
	StdDev         *float64         `json:"std_dev,omitempty"`
	Variance       *float64         `json:"variance,omitempty"`
	Skewness       *float64         `json:"skewness,omitempty"`
	ExcessKurtosis *float64         `json:"excess_kurtosis,omitempty"`
	Percentiles    []jsonPercentile `json:"percentiles"`
}

type jsonPercentile struct {
	P     float64  `json:"p"`
	Value *float64 `json:"value"`
}

type jsonNormality struct {
	Statistic     *float64 `json:"statistic"`
	Alpha         float64  `json:"alpha"`
	CriticalValue *float64 `json:"critical_value"`
	P             *float64 `json:"p_value"`
	Verdict       string   `json:"verdict"`
}

type jsonRank struct {
	Score     float64 `json:"score"`
	Below     int     `json:"below"`
	AtOrBelow int     `json:"at_or_below"`
	Rank      float64 `json:"percentile_rank"`
	Policy    string  `json:"tie_policy"`
}

type jsonGoal struct {
	Rank       float64          `json:"percentile_rank"`
	Thresholds []jsonPercentile `json:"thresholds"`
	Milestone  jsonMilestone    `json:"milestone"`
}

type jsonMilestone struct {
	State     string   `json:"state"`
	Target    float64  `json:"target"`
	Threshold *float64 `json:"threshold"`
	Gap       *float64 `json:"gap"`
}

// JSON writes r to w as an indented JSON document. Non-finite values
// are written as null.
func JSON(w io.Writer, r *stats.Report) error {
	if r == nil {
		return errors.New("render: nil report")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(r))
}

func toJSON(r *stats.Report) jsonReport {
	d := r.Description
	out := jsonReport{
		Count:   d.Count,
		Dropped: r.Dropped,
		Description: jsonDescription{
			Sum:         finite(d.Sum),
			Mean:        finite(d.Mean),
			Median:      finite(d.Median),
			Mode:        finite(d.Mode),
			ModeCount:   d.ModeCount,
			Min:         finite(d.Min),
			Max:         finite(d.Max),
			Range:       finite(d.Range),
			Percentiles: percentiles(d.Percentiles),
		},
	}
	if sp := d.Spread; sp != nil {
		out.Description.StdErr = finite(sp.StdErr)
		out.Description.StdDev = finite(sp.StdDev)
		out.Description.Variance = finite(sp.Variance)
	}
	if sh := d.Shape; sh != nil {
		out.Description.Skewness = finite(sh.Skewness)
		out.Description.ExcessKurtosis = finite(sh.ExcessKurtosis)
	}
	if n := r.Normality; n != nil {
		out.Normality = &jsonNormality{
			Statistic:     finite(n.Statistic),
			Alpha:         n.Alpha,
			CriticalValue: finite(n.CriticalValue),
			P:             finite(n.P),
			Verdict:       n.Verdict.String(),
		}
	}
	if rk := r.Rank; rk != nil {
		out.Rank = &jsonRank{
			Score:     rk.Score,
			Below:     rk.Below,
			AtOrBelow: rk.AtOrBelow,
			Rank:      rk.Rank,
			Policy:    rk.Policy.String(),
		}
	}
	if g := r.Goal; g != nil {
		out.Goal = &jsonGoal{
			Rank:       g.Rank,
			Thresholds: percentiles(g.Thresholds),
			Milestone: jsonMilestone{
				State:     g.Milestone.State.String(),
				Target:    g.Milestone.Target,
				Threshold: finite(g.Milestone.Threshold),
				Gap:       finite(g.Milestone.Gap),
			},
		}
	}
	for _, err := range r.Omitted {
		out.Omitted = append(out.Omitted, err.Error())
	}
	return out
}

func percentiles(pvs []stats.PercentileValue) []jsonPercentile {
	out := make([]jsonPercentile, len(pvs))
	for i, pv := range pvs {
		out[i] = jsonPercentile{P: pv.P, Value: finite(pv.Value)}
	}
	return out
}

// finite returns a pointer to x, or nil if x is NaN or infinite.
func finite(x float64) *float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	return &x
}

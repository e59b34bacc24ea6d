package lca

import (
	"fmt"
	"strings"
)

// BreakdownTitle is the chart title of a stage breakdown.
const BreakdownTitle = "Emission Breakdown per Stage"

// Contribution is a stage's share of the total emissions.
type Contribution struct {
	Stage     string  `json:"stage"`
	Emissions float64 `json:"emissions"`
	SharePct  float64 `json:"share_pct"`
}

// Analysis interprets a Result.
type Analysis struct {
	Result        Result         `json:"result"`
	Contributions []Contribution `json:"contributions"`
	Findings      []string       `json:"findings"`
	Opportunities []string       `json:"opportunities"`
}

// Breakdown is pie chart data: the stages without the total.
type Breakdown struct {
	Title  string         `json:"title"`
	Slices []Contribution `json:"slices"`
}

var opportunities = []string{
	"Improve conversion efficiency to reduce chemical usage.",
	"Switch to renewable energy for heating and drying.",
	"Optimize distribution logistics or increase vehicle load capacity.",
}

// StageName shortens a metric label, e.g. "Stage 3 - Distribution (kg CO2)"
// becomes "Distribution".
func StageName(label string) string {
	if _, rest, ok := strings.Cut(label, " - "); ok {
		label = rest
	}
	name, _, _ := strings.Cut(label, " (")
	return name
}

func share(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// BreakdownOf returns the per-stage slices of r.
func BreakdownOf(r Result) Breakdown {
	metrics := r.Metrics()
	stages := metrics[:len(metrics)-1]

	slices := make([]Contribution, 0, len(stages))
	for _, m := range stages {
		slices = append(slices, Contribution{
			Stage:     StageName(m.Label),
			Emissions: m.Value,
			SharePct:  share(m.Value, r.Total),
		})
	}
	return Breakdown{Title: BreakdownTitle, Slices: slices}
}

// Analyze computes stage contributions and the narrative findings.
// A zero total yields zero shares.
func Analyze(r Result) Analysis {
	b := BreakdownOf(r)
	s1, s2, s3, s5 := b.Slices[0].SharePct, b.Slices[1].SharePct, b.Slices[2].SharePct, b.Slices[3].SharePct

	findings := []string{
		fmt.Sprintf("Stage 1 contributes %.1f%% of total emissions, dominated by chemical production and WCO transport.", s1),
		fmt.Sprintf("Stage 2 contributes %.1f%% of total emissions, driven by energy use in reaction and drying.", s2),
		fmt.Sprintf("Stage 3 contributes %.1f%% of total emissions, reflecting distribution distances.", s3),
		fmt.Sprintf("End-of-Life contributes %.1f%% from glycerol disposal and wastewater treatment.", s5),
	}

	opps := make([]string, len(opportunities))
	copy(opps, opportunities)

	return Analysis{
		Result:        r,
		Contributions: b.Slices,
		Findings:      findings,
		Opportunities: opps,
	}
}

package cli

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"lcaapi/internal/lca"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f9ca24")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	totalStyle  = cellStyle.Bold(true)
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))
)

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// renderMetrics draws the five report rows; the total row is bold.
func renderMetrics(r lca.Result) string {
	metrics := r.Metrics()
	rows := make([][]string, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, []string{m.Label, formatValue(m.Value)})
	}
	last := len(rows)

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Metric", "Value (kg CO2)").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch row {
			case table.HeaderRow:
				return headerStyle
			case last - 1:
				return totalStyle
			default:
				return cellStyle
			}
		}).
		Render()
}

func renderAnalysis(a lca.Analysis) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Interpretation & Analysis"))
	b.WriteString("\n")
	for _, f := range a.Findings {
		b.WriteString("- " + f + "\n")
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Opportunities for Impact Reduction:"))
	b.WriteString("\n")
	for _, o := range a.Opportunities {
		b.WriteString("- " + o + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ecoledger/ecoledger/internal/engine"
)

// Summary rendering constants.
const (
	summaryBoxWidth = 60
)

// Styles for summary output.
//
//nolint:gochecknoglobals // lipgloss styles are conventionally package-level
var (
	summaryTitleStyle = lipgloss.NewStyle().Bold(true)
	summaryBoxStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1).
				Width(summaryBoxWidth)
	summaryDimStyle = lipgloss.NewStyle().Faint(true)
)

// renderSummary renders an aggregate as a boxed report. When styled is
// false (output is not a terminal) the same content is emitted without
// lipgloss decoration.
func renderSummary(agg engine.Aggregate, styled bool) string {
	var b strings.Builder

	writeTitle := func(s string) {
		if styled {
			s = summaryTitleStyle.Render(s)
		}
		b.WriteString(s + "\n")
	}

	writeTitle(fmt.Sprintf("Total emissions: %s kg CO2e", formatCO2e(agg.TotalCO2e)))

	if len(agg.Distribution) > 0 {
		b.WriteString("\nBy category:\n")
		for _, ct := range agg.Distribution {
			share := 0.0
			if agg.TotalCO2e > 0 {
				share = ct.CO2e / agg.TotalCO2e * 100
			}
			fmt.Fprintf(&b, "  %-16s %12s kg  %s\n", ct.Category, formatCO2e(ct.CO2e), formatPercent(share))
		}
	}

	if len(agg.Hotspots) > 0 {
		b.WriteString("\nTop hotspots:\n")
		for i, h := range agg.Hotspots {
			fmt.Fprintf(&b, "  %d. %s  (%s kg)\n", i+1, h.Description, formatCO2e(h.CO2e))
		}
	}

	if len(agg.Trend) > 0 {
		b.WriteString("\nMonthly trend:\n")
		for _, tp := range agg.Trend {
			line := fmt.Sprintf("  %s  %s kg", tp.Month, formatCO2e(tp.CO2e))
			if styled {
				line = summaryDimStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}

	content := strings.TrimRight(b.String(), "\n")
	if !styled {
		return content + "\n"
	}
	return summaryBoxStyle.Render(content) + "\n"
}

package cli

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// formatNumber formats an integer with thousand separators.
func formatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// formatCO2e formats a kg CO2e value with two decimals and thousand
// separators, e.g. 1234.567 renders as "1,234.57".
func formatCO2e(v float64) string {
	if v < 0 {
		return "-" + formatCO2e(-v)
	}

	const precision = 2
	multiplier := math.Pow(10, precision)
	rounded := math.Round(v*multiplier) / multiplier

	formatted := strconv.FormatFloat(rounded, 'f', precision, 64)
	for i, c := range formatted {
		if c == '.' {
			intPart, err := strconv.ParseInt(formatted[:i], 10, 64)
			if err == nil {
				return formatNumber(intPart) + formatted[i:]
			}
			break
		}
	}
	return formatted
}

// formatPercent renders a share with one decimal, e.g. "76.9%".
func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

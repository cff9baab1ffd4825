package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Computation is the full output of one emission calculation: the CO2e
// value, the confidence tier, and the provenance needed to audit it.
type Computation struct {
	CO2e       float64
	Factor     float64
	Source     string
	Formula    string
	Confidence Confidence

	// UnitApplied is the rate unit the factor was expressed in, which may
	// differ from the unit the caller recorded on the raw activity.
	UnitApplied string
}

// Calculator converts (category, quantity) pairs into CO2e values using an
// injected factor registry. It is stateless and safe for concurrent use.
type Calculator struct {
	registry *Registry
}

// NewCalculator returns a Calculator backed by the given registry.
func NewCalculator(registry *Registry) *Calculator {
	return &Calculator{registry: registry}
}

// Compute calculates CO2e for a quantity of activity in the given
// category. It never fails for finite non-negative quantities:
// unrecognized categories silently use the default category's factor.
//
// The formula string records the exact arithmetic applied, e.g.
// "CO2e = 500 kg/km * 0.21 kg CO2e/km".
func (c *Calculator) Compute(category Category, quantity float64) Computation {
	factor := c.registry.Lookup(category)

	co2e := quantity * factor.Rate
	formula := fmt.Sprintf("CO2e = %s %s * %s kg CO2e/%s",
		formatAmount(quantity), factor.Unit, formatAmount(factor.Rate), rateDenominator(factor.Unit))

	return Computation{
		CO2e:        co2e,
		Factor:      factor.Rate,
		Source:      factor.Source,
		Formula:     formula,
		Confidence:  confidenceFor(category),
		UnitApplied: factor.Unit,
	}
}

// confidenceFor is the fixed confidence table. It is a design decision
// keyed by category, not derived from the factor: Energy estimates are
// High, Transport and Cloud Services are Medium, everything else
// (including the default Procurement path) is Low.
func confidenceFor(category Category) Confidence {
	switch category {
	case CategoryEnergy:
		return ConfidenceHigh
	case CategoryTransport, CategoryCloud:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// rateDenominator extracts the denominator of a rate unit: the substring
// after its "/" separator ("kg/kWh" -> "kWh"). Units without a separator
// are returned whole.
func rateDenominator(unit string) string {
	if i := strings.LastIndex(unit, "/"); i >= 0 {
		return unit[i+1:]
	}
	return unit
}

// formatAmount renders a number the shortest way that round-trips, so
// formulas read "500" and "0.21" rather than "500.000000".
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

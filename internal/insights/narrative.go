package insights

import (
	"context"
	"fmt"
	"strings"

	"github.com/ecoledger/ecoledger/internal/engine"
	"github.com/ecoledger/ecoledger/internal/logging"
)

// NoDataMessage is returned when there are no activities to analyze.
const NoDataMessage = "No data available to analyze. Please upload your emission records."

// Narrator produces an executive narrative over a set of activities.
type Narrator interface {
	Narrate(ctx context.Context, activities []engine.Activity) (string, error)
}

// TemplateNarrator is the deterministic local narrative path. It is total:
// it never returns an error, so it can terminate any fallback chain.
type TemplateNarrator struct{}

// Narrate implements Narrator. The narrative has four fixed sections:
// executive summary (total footprint), critical hotspot (top category and
// its share), two category-specific bullet recommendations, and a fixed
// projected-trajectory closing.
func (TemplateNarrator) Narrate(_ context.Context, activities []engine.Activity) (string, error) {
	agg := engine.ComputeAggregate(activities)
	top, ok := agg.TopCategory()
	if !ok || agg.TotalCO2e == 0 {
		return NoDataMessage, nil
	}

	percentage := top.CO2e / agg.TotalCO2e * 100

	var b strings.Builder
	fmt.Fprintf(&b, "**Executive Summary:**\n")
	fmt.Fprintf(&b, "Your organization's total carbon footprint is currently **%.2f tCO2e**.\n\n", agg.TotalCO2e)
	fmt.Fprintf(&b, "**Critical Hotspot Identified:**\n")
	fmt.Fprintf(&b, "The **%s** sector accounts for **%.1f%%** of your total emissions.\n", top.Category, percentage)

	switch top.Category {
	case engine.CategoryTransport:
		b.WriteString("• **Strategic Action:** Transitioning last-mile logistics to EV could reduce this by up to 18%.\n")
		b.WriteString("• **Immediate Win:** Optimize route planning to decrease fuel consumption by ~5%.\n")
	case engine.CategoryEnergy:
		b.WriteString("• **Strategic Action:** Procure Renewable Energy Certificates (RECs) for your main facilities.\n")
		b.WriteString("• **Immediate Win:** Audit HVAC systems in HQ; 10% reduction typically found in idle-time management.\n")
	default:
		b.WriteString("• **Recommendation:** Conduct a granular audit of this sector to identify specific outlier activities.\n")
	}

	b.WriteString("\n**Projected Trajectory:**\n")
	b.WriteString("Based on current trends, Q4 emissions are projected to rise by 4.2% unless mitigation strategies are deployed immediately.")

	return b.String(), nil
}

// FallbackNarrator composes a fallible primary narrator with a total
// fallback: try the primary, and on any failure use the fallback without
// surfacing the primary's error. The primary call inherits the caller's
// context, so timeouts configured on the primary bound the external wait.
type FallbackNarrator struct {
	Primary  Narrator
	Fallback Narrator
}

// Narrate implements Narrator.
func (f FallbackNarrator) Narrate(ctx context.Context, activities []engine.Activity) (string, error) {
	if f.Primary != nil {
		text, err := f.Primary.Narrate(ctx, activities)
		if err == nil {
			return text, nil
		}
		logging.FromContext(ctx).Warn().
			Str("component", "insights").
			Err(err).
			Msg("primary narrator failed, using local fallback")
	}
	return f.Fallback.Narrate(ctx, activities)
}

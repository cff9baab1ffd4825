// Package insights derives recommendations and narrative summaries from
// computed emission activities.
//
// The rule-based recommendation path is always available. The narrative
// path is a two-stage strategy: an optional external narrator tried first,
// with a deterministic local template as the mandatory fallback. External
// failures never reach callers.
package insights

import (
	"fmt"

	"github.com/ecoledger/ecoledger/internal/engine"
)

// Recommendation is one actionable suggestion derived from the data.
type Recommendation struct {
	Category   string `json:"category"`
	Title      string `json:"title"`
	Suggestion string `json:"suggestion"`
	Impact     string `json:"impact"`
}

// Recommend produces rule-based recommendations: one high-impact entry
// naming the category with the highest aggregate CO2e, plus one fixed
// data-accuracy entry. Empty input yields an empty slice.
func Recommend(activities []engine.Activity) []Recommendation {
	agg := engine.ComputeAggregate(activities)
	top, ok := agg.TopCategory()
	if !ok {
		return []Recommendation{}
	}

	return []Recommendation{
		{
			Category: string(top.Category),
			Title:    fmt.Sprintf("Optimize %s Footprint", top.Category),
			Suggestion: fmt.Sprintf(
				"Your %s emissions are the highest hotspot. Consider switching to renewable sources or optimizing usage.",
				top.Category),
			Impact: "High",
		},
		{
			Category:   "General",
			Title:      "Data Accuracy Improvement",
			Suggestion: "Increase the frequency of meter readings to improve Confidence Scores from Medium to High.",
			Impact:     "Medium",
		},
	}
}

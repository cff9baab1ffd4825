// Package engine implements the EcoLedger classification and emission
// calculation pipeline.
//
// A raw activity record flows through the Classifier to a Category, through
// the Calculator (backed by a factor Registry) to a CO2e value with full
// provenance, and finally into the Aggregator, which derives summaries,
// hotspots, and monthly trends over all computed activities. The scenario
// simulator re-enters the Calculator with substituted inputs to answer
// what-if questions.
package engine

import "time"

// Category is an emission category label. The set is closed but extensible:
// unrecognized labels resolve to CategoryProcurement rather than failing.
type Category string

// Known emission categories.
const (
	CategoryTransport   Category = "Transport"
	CategoryEnergy      Category = "Energy"
	CategoryProcurement Category = "Procurement"
	CategoryCloud       Category = "Cloud Services"
)

// DefaultCategory is the category assigned when classification finds no
// signal and the factor used when a category has no registered factor.
const DefaultCategory = CategoryProcurement

// ParseCategory maps an arbitrary label to a known Category.
// Unknown labels map to DefaultCategory; it never fails.
func ParseCategory(label string) Category {
	switch Category(label) {
	case CategoryTransport, CategoryEnergy, CategoryProcurement, CategoryCloud:
		return Category(label)
	default:
		return DefaultCategory
	}
}

// Confidence is a coarse qualitative tier for how reliable a category's
// emission estimate is.
type Confidence string

// Confidence tiers.
const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// RawRecord is one unprocessed activity row as handed over by an ingestion
// adapter. It exists only for the duration of one ingestion step.
type RawRecord struct {
	Description string
	Quantity    float64
	Unit        string
	Date        time.Time
}

// Activity is a computed activity record. Activities are produced only by
// the calculator during ingestion and are immutable afterwards.
type Activity struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Quantity    float64    `json:"quantity"`
	Unit        string     `json:"unit"`
	Date        time.Time  `json:"date"`
	Category    Category   `json:"category"`
	CO2e        float64    `json:"co2e"`
	Confidence  Confidence `json:"confidence"`
}

// Provenance is the audit trail created together with an Activity: the
// factor and source that produced its CO2e value and the exact formula
// applied. Never mutated after creation.
type Provenance struct {
	Factor      float64 `json:"emission_factor"`
	Source      string  `json:"factor_source"`
	Formula     string  `json:"formula"`
	Notes       string  `json:"calculation_notes"`
	UnitApplied string  `json:"unit_applied"`
}

// CategoryTotal is one entry of an aggregate's per-category distribution.
type CategoryTotal struct {
	Category Category `json:"name"`
	CO2e     float64  `json:"value"`
}

// Hotspot is a single high-contribution activity in an aggregate.
type Hotspot struct {
	Description string  `json:"description"`
	CO2e        float64 `json:"co2e"`
}

// TrendPoint is one monthly bucket of an aggregate's trend series.
// Month is a "YYYY-MM" key.
type TrendPoint struct {
	Month string  `json:"date"`
	CO2e  float64 `json:"co2e"`
}

// Aggregate is the full derived summary over a set of activities. It is
// recomputed on demand and never persisted.
type Aggregate struct {
	TotalCO2e    float64         `json:"total_co2e"`
	Distribution []CategoryTotal `json:"category_distribution"`
	Hotspots     []Hotspot       `json:"hotspots"`
	Trend        []TrendPoint    `json:"trend_data"`
}

// ScenarioResult is the outcome of re-simulating one activity under
// modified inputs. Transient; computed on request and never stored.
type ScenarioResult struct {
	OriginalCO2e     float64 `json:"original_co2e"`
	SimulatedCO2e    float64 `json:"simulated_co2e"`
	Difference       float64 `json:"difference"`
	ReductionPercent float64 `json:"reduction_percentage"`
}

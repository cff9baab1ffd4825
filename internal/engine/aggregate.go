package engine

import "sort"

// maxHotspots caps the hotspot ranking at the top contributors.
const maxHotspots = 5

// Aggregate derives the full summary over a set of activities: total CO2e,
// per-category distribution, top hotspots, and the monthly trend series.
//
// It is pure and total: empty input yields a zero total and empty series,
// never an error. Distribution entries follow first-seen category order.
// Hotspots are the top five activities by CO2e descending; the sort is
// stable, so equal values keep their original ingestion order. Trend
// buckets are keyed "YYYY-MM" and emitted in ascending month order.
func ComputeAggregate(activities []Activity) Aggregate {
	agg := Aggregate{
		Distribution: []CategoryTotal{},
		Hotspots:     []Hotspot{},
		Trend:        []TrendPoint{},
	}

	byCategory := make(map[Category]int)
	byMonth := make(map[string]float64)

	for _, a := range activities {
		agg.TotalCO2e += a.CO2e

		if i, ok := byCategory[a.Category]; ok {
			agg.Distribution[i].CO2e += a.CO2e
		} else {
			byCategory[a.Category] = len(agg.Distribution)
			agg.Distribution = append(agg.Distribution, CategoryTotal{Category: a.Category, CO2e: a.CO2e})
		}

		byMonth[a.Date.Format("2006-01")] += a.CO2e
	}

	ranked := make([]Activity, len(activities))
	copy(ranked, activities)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CO2e > ranked[j].CO2e
	})
	for i, a := range ranked {
		if i == maxHotspots {
			break
		}
		agg.Hotspots = append(agg.Hotspots, Hotspot{Description: a.Description, CO2e: a.CO2e})
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)
	for _, m := range months {
		agg.Trend = append(agg.Trend, TrendPoint{Month: m, CO2e: byMonth[m]})
	}

	return agg
}

// TopCategory returns the distribution entry with the highest CO2e, and
// false when the aggregate is empty. Ties resolve to the earliest-seen
// category.
func (a Aggregate) TopCategory() (CategoryTotal, bool) {
	if len(a.Distribution) == 0 {
		return CategoryTotal{}, false
	}
	top := a.Distribution[0]
	for _, ct := range a.Distribution[1:] {
		if ct.CO2e > top.CO2e {
			top = ct
		}
	}
	return top, true
}

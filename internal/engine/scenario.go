package engine

// ScenarioInput carries optional overrides for a what-if simulation.
// Nil fields default to the activity's stored quantity and category, so an
// empty input is a no-op scenario reproducing the original CO2e exactly.
type ScenarioInput struct {
	Quantity *float64
	Category *Category
}

// Simulate re-runs the emission calculation for an existing activity under
// substituted inputs and reports the delta. Classification is not
// re-invoked: a category override is taken at face value. Negative
// reduction percentages (an emissions increase) are preserved, not
// clamped; a zero original CO2e forces the percentage to 0 instead of
// dividing by zero.
func (c *Calculator) Simulate(activity Activity, input ScenarioInput) ScenarioResult {
	quantity := activity.Quantity
	if input.Quantity != nil {
		quantity = *input.Quantity
	}

	category := activity.Category
	if input.Category != nil {
		category = *input.Category
	}

	simulated := c.Compute(category, quantity)

	diff := activity.CO2e - simulated.CO2e
	reduction := 0.0
	if activity.CO2e > 0 {
		reduction = diff / activity.CO2e * 100
	}

	return ScenarioResult{
		OriginalCO2e:     activity.CO2e,
		SimulatedCO2e:    simulated.CO2e,
		Difference:       diff,
		ReductionPercent: reduction,
	}
}

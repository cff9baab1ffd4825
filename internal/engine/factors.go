package engine

// Factor is an emission conversion factor: kg CO2e per one unit of
// activity, with the citation it came from. Immutable once registered.
type Factor struct {
	// Rate is the kg CO2e emitted per unit of activity. Always > 0.
	Rate float64 `yaml:"rate"`

	// Unit is the rate unit, e.g. "kg/km" or "kg/kWh".
	Unit string `yaml:"unit"`

	// Source cites the methodology or dataset the rate comes from.
	Source string `yaml:"source"`
}

// Registry maps categories to emission factors. It is built once at
// startup and injected into the Calculator; it is never mutated after
// construction, so it is safe for concurrent readers.
type Registry struct {
	factors map[Category]Factor
}

// DefaultRegistry returns the built-in factor table.
func DefaultRegistry() *Registry {
	return NewRegistry(map[Category]Factor{
		CategoryTransport:   {Rate: 0.21, Unit: "kg/km", Source: "DEFRA (2023) - Passenger vehicles"},
		CategoryEnergy:      {Rate: 0.35, Unit: "kg/kWh", Source: "EPA (2023) - Grid average"},
		CategoryProcurement: {Rate: 0.50, Unit: "kg/$", Source: "EEIO Model - General goods"},
		CategoryCloud:       {Rate: 0.08, Unit: "kg/GB", Source: "Cloud Carbon Footprint Methodology"},
	})
}

// NewRegistry builds a Registry from the given factor table. The table is
// copied; later mutation of the argument does not affect the registry.
func NewRegistry(factors map[Category]Factor) *Registry {
	copied := make(map[Category]Factor, len(factors))
	for c, f := range factors {
		copied[c] = f
	}
	return &Registry{factors: copied}
}

// Lookup resolves the factor for a category. Unregistered categories fall
// back to the default category's factor, so Lookup is total as long as the
// registry carries a factor for DefaultCategory (DefaultRegistry does).
func (r *Registry) Lookup(category Category) Factor {
	if f, ok := r.factors[category]; ok {
		return f
	}
	return r.factors[DefaultCategory]
}

// Categories returns the registered categories. Order is unspecified.
func (r *Registry) Categories() []Category {
	out := make([]Category, 0, len(r.factors))
	for c := range r.factors {
		out = append(out, c)
	}
	return out
}

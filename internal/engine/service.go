package engine

import (
	"context"
	"math"

	"github.com/ecoledger/ecoledger/internal/logging"
)

// Store is the persistence collaborator the engine writes computed
// activities to and reads them back from. Activities and their provenance
// are stored together, atomically, and are immutable afterwards.
type Store interface {
	// Add persists an activity with its provenance, assigns its
	// identifier, and returns the stored activity.
	Add(activity Activity, provenance Provenance) Activity

	// Get returns an activity and its provenance by identifier,
	// or ErrNotFound.
	Get(id string) (Activity, Provenance, error)

	// List returns all activities ordered by date descending.
	List() []Activity

	// All returns all activities in ingestion order.
	All() []Activity
}

// Service wires the classifier, calculator, and store into the engine's
// ingestion, query, and scenario boundaries.
type Service struct {
	classifier Classifier
	calc       *Calculator
	store      Store
}

// NewService builds a Service from its collaborators.
func NewService(classifier Classifier, calc *Calculator, store Store) *Service {
	return &Service{classifier: classifier, calc: calc, store: store}
}

// IngestResult reports the outcome of one batch ingestion: the activities
// created plus an accurate count of rows skipped along the way.
type IngestResult struct {
	Created []Activity
	Skipped int
}

// Ingest classifies and computes every raw record and persists the
// results. Records are processed independently: a defective record
// (non-finite or negative quantity) is skipped with a warning and the
// batch continues. The fold never fails.
func (s *Service) Ingest(ctx context.Context, records []RawRecord) IngestResult {
	log := logging.FromContext(ctx)

	result := IngestResult{}
	for _, rec := range records {
		if math.IsNaN(rec.Quantity) || math.IsInf(rec.Quantity, 0) || rec.Quantity < 0 {
			log.Warn().
				Str("component", "engine").
				Str("operation", "ingest").
				Str("description", rec.Description).
				Float64("quantity", rec.Quantity).
				Msg("skipping record with unusable quantity")
			result.Skipped++
			continue
		}

		activity, provenance := s.computeActivity(rec)
		stored := s.store.Add(activity, provenance)

		log.Debug().
			Str("component", "engine").
			Str("operation", "ingest").
			Str("activity_id", stored.ID).
			Str("category", string(stored.Category)).
			Float64("co2e", stored.CO2e).
			Msg("activity computed")

		result.Created = append(result.Created, stored)
	}
	return result
}

// computeActivity is the single creation path for activities: classify,
// compute, and assemble the record and its provenance together.
func (s *Service) computeActivity(rec RawRecord) (Activity, Provenance) {
	category := s.classifier.Classify(rec.Description)
	comp := s.calc.Compute(category, rec.Quantity)

	activity := Activity{
		Description: rec.Description,
		Quantity:    rec.Quantity,
		Unit:        rec.Unit,
		Date:        rec.Date,
		Category:    category,
		CO2e:        comp.CO2e,
		Confidence:  comp.Confidence,
	}
	provenance := Provenance{
		Factor:      comp.Factor,
		Source:      comp.Source,
		Formula:     comp.Formula,
		Notes:       "Calculated for " + formatAmount(rec.Quantity) + " " + rec.Unit,
		UnitApplied: comp.UnitApplied,
	}
	return activity, provenance
}

// Explain returns a computed activity together with its provenance.
func (s *Service) Explain(_ context.Context, id string) (Activity, Provenance, error) {
	return s.store.Get(id)
}

// Simulate re-runs the emission calculation for the referenced activity
// under the given overrides. It returns ErrNotFound when the activity does
// not exist.
func (s *Service) Simulate(_ context.Context, id string, input ScenarioInput) (ScenarioResult, error) {
	activity, _, err := s.store.Get(id)
	if err != nil {
		return ScenarioResult{}, err
	}
	return s.calc.Simulate(activity, input), nil
}

// Summary recomputes the aggregate over all stored activities.
func (s *Service) Summary(_ context.Context) Aggregate {
	return ComputeAggregate(s.store.All())
}

// Activities returns the full activity listing, newest first.
func (s *Service) Activities(_ context.Context) []Activity {
	return s.store.List()
}

// AllActivities returns activities in ingestion order, for callers that
// aggregate or generate insights.
func (s *Service) AllActivities(_ context.Context) []Activity {
	return s.store.All()
}

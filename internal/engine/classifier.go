package engine

import (
	"context"
	"strings"

	"github.com/ecoledger/ecoledger/internal/logging"
)

// Classifier maps a free-text activity description to a Category.
// Implementations never fail: when no signal matches they return
// DefaultCategory.
type Classifier interface {
	Classify(description string) Category
}

// NewClassifier selects a classifier implementation by probing model
// availability. When modelPath names a loadable model artifact the returned
// classifier is model-backed (with the heuristic as its runtime fallback);
// otherwise the deterministic keyword heuristic is returned. A load failure
// is logged and treated as "model unavailable", never as a fatal error.
func NewClassifier(ctx context.Context, modelPath string) Classifier {
	log := logging.FromContext(ctx)

	if modelPath == "" {
		return HeuristicClassifier{}
	}

	model, err := LoadModel(modelPath)
	if err != nil {
		log.Warn().
			Str("component", "classifier").
			Str("model_path", modelPath).
			Err(err).
			Msg("could not load classification model, using heuristic fallback")
		return HeuristicClassifier{}
	}

	log.Info().
		Str("component", "classifier").
		Str("model_path", modelPath).
		Msg("classification model loaded")
	return &ModelClassifier{model: model, fallback: HeuristicClassifier{}}
}

// Keyword sets for the heuristic classifier, tested in fixed priority
// order. A description matching both transport and energy keywords must
// classify as Transport.
var (
	transportKeywords = []string{"drive", "truck", "flight", "shipping", "km", "mile"}
	energyKeywords    = []string{"electricity", "power", "grid", "heating", "gas", "kwh"}
	cloudKeywords     = []string{"aws", "azure", "google cloud", "hosting", "server", "data center"}
)

// HeuristicClassifier is the deterministic keyword fallback. It lower-cases
// the description and tests substring membership against small keyword
// sets: Transport first, then Energy, then Cloud Services, defaulting to
// Procurement.
type HeuristicClassifier struct{}

// Classify implements Classifier.
func (HeuristicClassifier) Classify(description string) Category {
	desc := strings.ToLower(description)

	if containsAny(desc, transportKeywords) {
		return CategoryTransport
	}
	if containsAny(desc, energyKeywords) {
		return CategoryEnergy
	}
	if containsAny(desc, cloudKeywords) {
		return CategoryCloud
	}
	return DefaultCategory
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// ModelClassifier wraps a trained Model and falls through to the keyword
// heuristic when prediction fails at runtime. Callers cannot observe which
// path produced the label.
type ModelClassifier struct {
	model    *Model
	fallback HeuristicClassifier
}

// Classify implements Classifier.
func (c *ModelClassifier) Classify(description string) Category {
	label, err := c.model.Predict(description)
	if err != nil {
		return c.fallback.Classify(description)
	}
	return ParseCategory(label)
}

package engine

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Model is a trained multinomial text-classification model: per-class log
// priors plus per-class token log-weights over a shared vocabulary. It is
// loaded once at process start and read-only afterwards, so concurrent
// Predict calls need no locking.
type Model struct {
	Version int                   `yaml:"version"`
	Classes map[string]ModelClass `yaml:"classes"`
}

// ModelClass holds the trained weights for one category label.
type ModelClass struct {
	Prior   float64            `yaml:"prior"`
	Weights map[string]float64 `yaml:"weights"`

	// Smoothing is the log-weight applied to tokens outside the class
	// vocabulary.
	Smoothing float64 `yaml:"smoothing"`
}

// Prediction sentinel errors.
const (
	errModelEmpty    = constError("model has no classes")
	errModelNoTokens = constError("description has no scorable tokens")
)

// LoadModel reads a model artifact from disk.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model: %w", err)
	}

	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing model: %w", err)
	}
	if len(m.Classes) == 0 {
		return nil, errModelEmpty
	}
	return &m, nil
}

// Predict scores the description against every class and returns the label
// with the highest posterior. It returns an error when scoring is not
// possible (no classes, no tokens); callers treat that as "fall back to
// the heuristic", not as a failure.
func (m *Model) Predict(description string) (string, error) {
	if len(m.Classes) == 0 {
		return "", errModelEmpty
	}

	tokens := tokenize(description)
	if len(tokens) == 0 {
		return "", errModelNoTokens
	}

	best := ""
	bestScore := math.Inf(-1)
	for label, class := range m.Classes {
		score := class.Prior
		for _, tok := range tokens {
			if w, ok := class.Weights[tok]; ok {
				score += w
			} else {
				score += class.Smoothing
			}
		}
		if score > bestScore || (score == bestScore && (best == "" || label < best)) {
			best = label
			bestScore = score
		}
	}
	return best, nil
}

// tokenize lower-cases and splits on non-alphanumeric runes.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		isDigit := r >= '0' && r <= '9'
		isLower := r >= 'a' && r <= 'z'
		return !isDigit && !isLower
	})
}

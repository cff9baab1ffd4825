package insights

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoledger/ecoledger/internal/engine"
)

func TestTemplateNarratorNoData(t *testing.T) {
	text, err := TemplateNarrator{}.Narrate(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, NoDataMessage, text)

	// Zero-emission activities are equivalent to no data.
	text, err = TemplateNarrator{}.Narrate(context.Background(), []engine.Activity{
		{Category: engine.CategoryEnergy, CO2e: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, NoDataMessage, text)
}

func TestTemplateNarratorEnergyHotspot(t *testing.T) {
	activities := []engine.Activity{
		{Category: engine.CategoryTransport, CO2e: 105},
		{Category: engine.CategoryEnergy, CO2e: 350},
	}

	text, err := TemplateNarrator{}.Narrate(context.Background(), activities)
	require.NoError(t, err)

	assert.Contains(t, text, "**Executive Summary:**")
	assert.Contains(t, text, "455.00 tCO2e")
	assert.Contains(t, text, "**Critical Hotspot Identified:**")
	assert.Contains(t, text, "**Energy** sector")
	assert.Contains(t, text, "76.9%")
	assert.Contains(t, text, "Renewable Energy Certificates")
	assert.Contains(t, text, "HVAC")
	assert.Contains(t, text, "**Projected Trajectory:**")
}

func TestTemplateNarratorCategoryBullets(t *testing.T) {
	tests := []struct {
		name     string
		category engine.Category
		want     []string
	}{
		{
			name:     "transport bullets",
			category: engine.CategoryTransport,
			want:     []string{"EV", "route planning"},
		},
		{
			name:     "energy bullets",
			category: engine.CategoryEnergy,
			want:     []string{"Renewable Energy Certificates", "HVAC"},
		},
		{
			name:     "cloud falls back to generic audit",
			category: engine.CategoryCloud,
			want:     []string{"granular audit"},
		},
		{
			name:     "procurement falls back to generic audit",
			category: engine.CategoryProcurement,
			want:     []string{"granular audit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := TemplateNarrator{}.Narrate(context.Background(), []engine.Activity{
				{Category: tt.category, CO2e: 100},
			})
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, text, want)
			}
		})
	}
}

// stubNarrator is a scripted Narrator for combinator tests.
type stubNarrator struct {
	text string
	err  error
}

func (s stubNarrator) Narrate(context.Context, []engine.Activity) (string, error) {
	return s.text, s.err
}

func TestFallbackNarrator(t *testing.T) {
	ctx := context.Background()
	activities := []engine.Activity{{Category: engine.CategoryEnergy, CO2e: 10}}

	t.Run("primary success wins", func(t *testing.T) {
		chain := FallbackNarrator{
			Primary:  stubNarrator{text: "external narrative"},
			Fallback: TemplateNarrator{},
		}
		text, err := chain.Narrate(ctx, activities)
		require.NoError(t, err)
		assert.Equal(t, "external narrative", text)
	})

	t.Run("primary failure is absorbed", func(t *testing.T) {
		chain := FallbackNarrator{
			Primary:  stubNarrator{err: errors.New("service exploded")},
			Fallback: TemplateNarrator{},
		}
		text, err := chain.Narrate(ctx, activities)
		require.NoError(t, err)
		assert.Contains(t, text, "**Executive Summary:**")
		assert.NotContains(t, text, "exploded")
	})

	t.Run("nil primary goes straight to fallback", func(t *testing.T) {
		chain := FallbackNarrator{Fallback: TemplateNarrator{}}
		text, err := chain.Narrate(ctx, activities)
		require.NoError(t, err)
		assert.Contains(t, text, "**Executive Summary:**")
	})
}

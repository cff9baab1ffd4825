package insights

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoledger/ecoledger/internal/engine"
)

func TestExternalNarrator(t *testing.T) {
	activities := []engine.Activity{
		{Category: engine.CategoryEnergy, CO2e: 350},
		{Category: engine.CategoryTransport, CO2e: 105},
	}

	t.Run("success", func(t *testing.T) {
		var gotAuth string
		var gotPrompt string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			var req struct {
				Prompt string `json:"prompt"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			gotPrompt = req.Prompt
			json.NewEncoder(w).Encode(map[string]string{"content": "generated summary"})
		}))
		defer srv.Close()

		n := ExternalNarrator{Endpoint: srv.URL, APIKey: "secret"}
		text, err := n.Narrate(context.Background(), activities)
		require.NoError(t, err)
		assert.Equal(t, "generated summary", text)
		assert.Equal(t, "Bearer secret", gotAuth)
		assert.Contains(t, gotPrompt, "Total CO2: 455.00 tCO2e")
		assert.Contains(t, gotPrompt, "- Energy: 350.00 tCO2e")
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		n := ExternalNarrator{Endpoint: srv.URL, APIKey: "secret"}
		_, err := n.Narrate(context.Background(), activities)
		assert.Error(t, err)
	})

	t.Run("empty content is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"content": ""})
		}))
		defer srv.Close()

		n := ExternalNarrator{Endpoint: srv.URL, APIKey: "secret"}
		_, err := n.Narrate(context.Background(), activities)
		assert.Error(t, err)
	})

	t.Run("slow service times out", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		n := ExternalNarrator{Endpoint: srv.URL, APIKey: "secret", Timeout: 50 * time.Millisecond}
		start := time.Now()
		_, err := n.Narrate(context.Background(), activities)
		assert.Error(t, err)
		assert.Less(t, time.Since(start), 5*time.Second)
	})

	t.Run("timeout still falls back cleanly in a chain", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		chain := FallbackNarrator{
			Primary:  ExternalNarrator{Endpoint: srv.URL, APIKey: "secret", Timeout: 50 * time.Millisecond},
			Fallback: TemplateNarrator{},
		}
		text, err := chain.Narrate(context.Background(), activities)
		require.NoError(t, err)
		assert.Contains(t, text, "**Critical Hotspot Identified:**")
	})
}

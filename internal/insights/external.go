package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ecoledger/ecoledger/internal/engine"
)

// DefaultExternalTimeout bounds the external narrative call when no
// timeout is configured.
const DefaultExternalTimeout = 10 * time.Second

// ExternalNarrator calls a generative-text service over HTTP with the
// aggregate context as a prompt. It is the optional primary stage of a
// FallbackNarrator chain and is expected to fail: callers must always
// compose it with a local fallback.
type ExternalNarrator struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration

	// Client defaults to http.DefaultClient.
	Client *http.Client
}

type narrativeRequest struct {
	Prompt string `json:"prompt"`
}

type narrativeResponse struct {
	Content string `json:"content"`
}

// Narrate implements Narrator. The call is bounded by the configured
// timeout; any transport error, non-2xx status, or empty response is
// returned as an error for the fallback chain to absorb.
func (e ExternalNarrator) Narrate(ctx context.Context, activities []engine.Activity) (string, error) {
	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultExternalTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := json.Marshal(narrativeRequest{Prompt: buildPrompt(engine.ComputeAggregate(activities))})
	if err != nil {
		return "", fmt.Errorf("encoding narrative request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building narrative request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.APIKey)

	client := e.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling narrative service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("narrative service returned status %d", resp.StatusCode)
	}

	var parsed narrativeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding narrative response: %w", err)
	}
	if parsed.Content == "" {
		return "", errors.New("narrative service returned empty content")
	}
	return parsed.Content, nil
}

// buildPrompt renders the aggregate context the external service analyzes.
func buildPrompt(agg engine.Aggregate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total CO2: %.2f tCO2e.\n", agg.TotalCO2e)
	b.WriteString("Breakdown:\n")
	for _, ct := range agg.Distribution {
		fmt.Fprintf(&b, "- %s: %.2f tCO2e\n", ct.Category, ct.CO2e)
	}
	b.WriteString("\nYou are the Chief Sustainability Officer for an enterprise. ")
	b.WriteString("Write a concise executive summary: state the critical hotspot, ")
	b.WriteString("one high-impact strategic action, one immediate quick-win, and ")
	b.WriteString("the projected trend if no action is taken.")
	return b.String()
}

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ecoledger/ecoledger/internal/engine"
)

// snapshot is the on-disk shape of a store: a flat JSON document, no
// schema machinery. Durable storage proper is an external collaborator;
// this keeps CLI invocations coherent between runs.
type snapshot struct {
	Activities []engine.Activity            `json:"activities"`
	Provenance map[string]engine.Provenance `json:"provenance"`
}

// LoadFile reads a store snapshot from path. A missing file yields an
// empty store.
func LoadFile(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewMemory(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading store: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing store: %w", err)
	}

	m := NewMemory()
	m.activities = snap.Activities
	if snap.Provenance != nil {
		m.provenance = snap.Provenance
	}
	return m, nil
}

// SaveFile writes the store snapshot to path, creating parent directories
// as needed.
func SaveFile(path string, m *Memory) error {
	m.mu.RLock()
	snap := snapshot{Activities: m.activities, Provenance: m.provenance}
	data, err := json.MarshalIndent(snap, "", "  ")
	m.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating store directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing store: %w", err)
	}
	return nil
}

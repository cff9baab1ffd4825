// Package store provides the in-memory activity store backing the engine.
//
// Durable persistence is handled by external collaborators; this store is
// the shipped implementation of the engine's Store contract and the
// substrate for tests and the CLI.
package store

import (
	"sort"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/ecoledger/ecoledger/internal/engine"
)

// Memory is a mutex-guarded in-memory activity store. Identifiers are
// ULIDs assigned at Add time; within one process they are monotonic, so
// identifier order matches ingestion order.
type Memory struct {
	mu         sync.RWMutex
	activities []engine.Activity
	provenance map[string]engine.Provenance
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{provenance: make(map[string]engine.Provenance)}
}

// Add implements engine.Store. The activity and its provenance are stored
// together under one lock acquisition.
func (m *Memory) Add(activity engine.Activity, provenance engine.Provenance) engine.Activity {
	m.mu.Lock()
	defer m.mu.Unlock()

	activity.ID = ulid.Make().String()
	m.activities = append(m.activities, activity)
	m.provenance[activity.ID] = provenance
	return activity
}

// Get implements engine.Store.
func (m *Memory) Get(id string) (engine.Activity, engine.Provenance, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, a := range m.activities {
		if a.ID == id {
			return a, m.provenance[id], nil
		}
	}
	return engine.Activity{}, engine.Provenance{}, engine.ErrNotFound
}

// List implements engine.Store: all activities ordered by date descending.
// The sort is stable, so same-day activities keep ingestion order.
func (m *Memory) List() []engine.Activity {
	out := m.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// All implements engine.Store: activities in ingestion order.
func (m *Memory) All() []engine.Activity {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]engine.Activity, len(m.activities))
	copy(out, m.activities)
	return out
}

// Len returns the number of stored activities.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.activities)
}

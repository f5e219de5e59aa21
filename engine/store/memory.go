// Package store provides in-memory implementations of the engine's store
// interfaces, for tests and development.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/callsheet/crewpay/engine"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

// Memory implements engine.EntryStore, engine.RateCardStore and
// engine.CrewStore behind a single RWMutex.
type Memory struct {
	mu        sync.RWMutex
	entries   map[entryKey]engine.TimesheetEntry
	rateCards map[string]engine.RateCard
	crew      map[string]engine.CrewMember
}

type entryKey struct {
	CrewID string
	Date   string // ISO day, Date.String()
}

func NewMemory() *Memory {
	return &Memory{
		entries:   make(map[entryKey]engine.TimesheetEntry),
		rateCards: make(map[string]engine.RateCard),
		crew:      make(map[string]engine.CrewMember),
	}
}

// =============================================================================
// ENTRY STORE
// =============================================================================

func (m *Memory) Get(_ context.Context, crewID string, date engine.Date) (engine.TimesheetEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[entryKey{CrewID: crewID, Date: date.String()}]
	if !ok {
		return engine.TimesheetEntry{}, engine.ErrEntryNotFound
	}
	return entry, nil
}

// Put upserts. Last writer wins per (crew, date) key.
func (m *Memory) Put(_ context.Context, crewID string, entry engine.TimesheetEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[entryKey{CrewID: crewID, Date: entry.Date.String()}] = entry
	return nil
}

func (m *Memory) Delete(_ context.Context, crewID string, date engine.Date) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, entryKey{CrewID: crewID, Date: date.String()})
	return nil
}

func (m *Memory) Range(_ context.Context, crewID string, from, to engine.Date) ([]engine.TimesheetEntry, error) {
	if to.Before(from) {
		return nil, engine.ErrInvalidRange
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []engine.TimesheetEntry
	for k, entry := range m.entries {
		if k.CrewID != crewID {
			continue
		}
		if from.BeforeOrEqual(entry.Date) && entry.Date.BeforeOrEqual(to) {
			result = append(result, entry)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

// =============================================================================
// RATE CARD STORE
// =============================================================================

func (m *Memory) GetRateCard(_ context.Context, crewID string) (engine.RateCard, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rc, ok := m.rateCards[crewID]
	if !ok {
		return engine.RateCard{}, engine.ErrCrewNotFound
	}
	return rc, nil
}

func (m *Memory) SaveRateCard(_ context.Context, crewID string, rc engine.RateCard) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rateCards[crewID] = rc
	return nil
}

// =============================================================================
// CREW STORE
// =============================================================================

func (m *Memory) GetCrewMember(_ context.Context, id string) (engine.CrewMember, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	member, ok := m.crew[id]
	if !ok {
		return engine.CrewMember{}, engine.ErrCrewNotFound
	}
	return member, nil
}

func (m *Memory) ListCrewMembers(_ context.Context) ([]engine.CrewMember, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]engine.CrewMember, 0, len(m.crew))
	for _, member := range m.crew {
		result = append(result, member)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (m *Memory) SaveCrewMember(_ context.Context, member engine.CrewMember) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.crew[member.ID] = member
	return nil
}

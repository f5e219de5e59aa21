/*
store.go - Persistence interfaces for entries, rate cards and crew

PURPOSE:
  Defines the boundary between the calculation engine and whatever owns
  the data. The engine only ever reads entries and a rate card; it never
  manages their lifecycle, and calculations themselves are derived state
  that is recomputed on every read and never persisted.

KEYING:
  Timesheet entries are keyed by (crew member, calendar date): one entry
  per crew member per day. Writes are last-writer-wins per key, so
  concurrent edits to different dates never conflict.

IMPLEMENTATIONS:
  - engine/store/memory.go: In-memory, for tests and dev
  - store/sqlite/sqlite.go: Production SQLite
*/
package engine

import (
	"context"
	"time"
)

// =============================================================================
// CREW MEMBER
// =============================================================================

// CrewMember is the owner of a rate card and a run of timesheet entries.
type CrewMember struct {
	ID         string
	Name       string
	Role       string // e.g. "Focus Puller", "Gaffer"
	Production string
	CreatedAt  time.Time
}

// =============================================================================
// STORE INTERFACES
// =============================================================================

// EntryStore is the keyed store of timesheet entries. Get returns
// ErrEntryNotFound when no entry exists for the date; Put upserts
// (last-writer-wins).
type EntryStore interface {
	Get(ctx context.Context, crewID string, date Date) (TimesheetEntry, error)
	Put(ctx context.Context, crewID string, entry TimesheetEntry) error
	Delete(ctx context.Context, crewID string, date Date) error

	// Range returns the entries that exist in [from, to], ordered by date.
	// Days with no entry are simply absent from the result.
	Range(ctx context.Context, crewID string, from, to Date) ([]TimesheetEntry, error)
}

// RateCardStore holds one rate card per crew member, mutated only via
// explicit update.
type RateCardStore interface {
	GetRateCard(ctx context.Context, crewID string) (RateCard, error)
	SaveRateCard(ctx context.Context, crewID string, rc RateCard) error
}

// CrewStore manages crew-member records.
type CrewStore interface {
	GetCrewMember(ctx context.Context, id string) (CrewMember, error)
	ListCrewMembers(ctx context.Context) ([]CrewMember, error)
	SaveCrewMember(ctx context.Context, m CrewMember) error
}

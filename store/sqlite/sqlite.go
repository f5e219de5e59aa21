/*
Package sqlite provides a SQLite-backed implementation of the storage
interfaces.

PURPOSE:
  Implements engine.EntryStore, engine.RateCardStore and engine.CrewStore
  using SQLite. In production the same patterns apply to PostgreSQL -
  only minor SQL dialect differences.

KEY TABLES:
  crew_members:      Crew-member records
  rate_cards:        One pay configuration per crew member
  timesheet_entries: Raw call-time records, keyed (crew_id, date)

WRITE SEMANTICS:
  Entries and rate cards are upserted last-writer-wins per key. The
  unique (crew_id, date) key means concurrent edits to different dates
  never conflict, and calculations are derived state recomputed on read,
  so nothing computed is ever persisted.

PRECISION:
  Money and hour figures are stored as TEXT holding decimal strings,
  never REAL - round-tripping through float64 is exactly the drift the
  engine's decimal arithmetic exists to avoid.

WAL MODE:
  Opened with WAL (Write-Ahead Logging): readers don't block, single
  writer, better crash recovery.

USAGE:
  store, err := sqlite.New("./data/crewpay.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - engine/store.go: Interface definitions
  - engine/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/callsheet/crewpay/engine"
)

// Store implements all storage interfaces using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Crew members
	CREATE TABLE IF NOT EXISTS crew_members (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT,
		production TEXT,
		created_at TEXT NOT NULL
	);

	-- Rate cards (one per crew member, write-rare)
	CREATE TABLE IF NOT EXISTS rate_cards (
		crew_id TEXT PRIMARY KEY,
		daily_rate TEXT NOT NULL,
		base_day_hours TEXT NOT NULL,
		ot_multiplier TEXT NOT NULL,
		pre_call_multiplier TEXT NOT NULL,
		late_night_multiplier TEXT NOT NULL,
		sixth_day_multiplier TEXT NOT NULL,
		seventh_day_multiplier TEXT NOT NULL,
		kit_rental TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	-- Timesheet entries, one per crew member per calendar date
	CREATE TABLE IF NOT EXISTS timesheet_entries (
		crew_id TEXT NOT NULL,
		date TEXT NOT NULL,
		pre_call TEXT,
		unit_call TEXT,
		wrap_out TEXT,
		call_sheet_lunch TEXT,
		day_type TEXT NOT NULL DEFAULT 'SWD',
		is_sixth_day BOOLEAN NOT NULL DEFAULT FALSE,
		is_seventh_day BOOLEAN NOT NULL DEFAULT FALSE,
		production_day TEXT,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (crew_id, date)
	);

	-- Range queries are the hot path (week/month summaries)
	CREATE INDEX IF NOT EXISTS idx_entries_crew_date
		ON timesheet_entries(crew_id, date);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Reset wipes all data. Development and demo use only.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range []string{"timesheet_entries", "rate_cards", "crew_members"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// CREW STORE (engine.CrewStore interface)
// =============================================================================

func (s *Store) SaveCrewMember(ctx context.Context, m engine.CrewMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := m.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO crew_members (id, name, role, production, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			role = excluded.role,
			production = excluded.production
	`, m.ID, m.Name, m.Role, m.Production, createdAt.Format(time.RFC3339))
	return err
}

func (s *Store) GetCrewMember(ctx context.Context, id string) (engine.CrewMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var m engine.CrewMember
	var createdAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, role, production, created_at
		FROM crew_members WHERE id = ?
	`, id).Scan(&m.ID, &m.Name, &m.Role, &m.Production, &createdAt)
	if err == sql.ErrNoRows {
		return engine.CrewMember{}, engine.ErrCrewNotFound
	}
	if err != nil {
		return engine.CrewMember{}, err
	}
	m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return m, nil
}

func (s *Store) ListCrewMembers(ctx context.Context) ([]engine.CrewMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, role, production, created_at
		FROM crew_members ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []engine.CrewMember
	for rows.Next() {
		var m engine.CrewMember
		var createdAt string
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Production, &createdAt); err != nil {
			return nil, err
		}
		m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		result = append(result, m)
	}
	return result, rows.Err()
}

// =============================================================================
// RATE CARD STORE (engine.RateCardStore interface)
// =============================================================================

func (s *Store) SaveRateCard(ctx context.Context, crewID string, rc engine.RateCard) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO rate_cards
		(crew_id, daily_rate, base_day_hours, ot_multiplier, pre_call_multiplier,
		 late_night_multiplier, sixth_day_multiplier, seventh_day_multiplier,
		 kit_rental, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(crew_id) DO UPDATE SET
			daily_rate = excluded.daily_rate,
			base_day_hours = excluded.base_day_hours,
			ot_multiplier = excluded.ot_multiplier,
			pre_call_multiplier = excluded.pre_call_multiplier,
			late_night_multiplier = excluded.late_night_multiplier,
			sixth_day_multiplier = excluded.sixth_day_multiplier,
			seventh_day_multiplier = excluded.seventh_day_multiplier,
			kit_rental = excluded.kit_rental,
			updated_at = excluded.updated_at
	`,
		crewID,
		rc.DailyRate.String(),
		rc.BaseDayHours.String(),
		rc.OTMultiplier.String(),
		rc.PreCallMultiplier.String(),
		rc.LateNightMultiplier.String(),
		rc.SixthDayMultiplier.String(),
		rc.SeventhDayMultiplier.String(),
		rc.KitRental.String(),
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Store) GetRateCard(ctx context.Context, crewID string) (engine.RateCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var dailyRate, baseDayHours, otMult, preCallMult, lateMult, sixthMult, seventhMult, kit string
	err := s.db.QueryRowContext(ctx, `
		SELECT daily_rate, base_day_hours, ot_multiplier, pre_call_multiplier,
		       late_night_multiplier, sixth_day_multiplier, seventh_day_multiplier,
		       kit_rental
		FROM rate_cards WHERE crew_id = ?
	`, crewID).Scan(&dailyRate, &baseDayHours, &otMult, &preCallMult, &lateMult, &sixthMult, &seventhMult, &kit)
	if err == sql.ErrNoRows {
		return engine.RateCard{}, engine.ErrCrewNotFound
	}
	if err != nil {
		return engine.RateCard{}, err
	}

	return engine.RateCard{
		DailyRate:            mustDecimal(dailyRate),
		BaseDayHours:         mustDecimal(baseDayHours),
		OTMultiplier:         mustDecimal(otMult),
		PreCallMultiplier:    mustDecimal(preCallMult),
		LateNightMultiplier:  mustDecimal(lateMult),
		SixthDayMultiplier:   mustDecimal(sixthMult),
		SeventhDayMultiplier: mustDecimal(seventhMult),
		KitRental:            mustDecimal(kit),
	}, nil
}

// =============================================================================
// ENTRY STORE (engine.EntryStore interface)
// =============================================================================

func (s *Store) Put(ctx context.Context, crewID string, entry engine.TimesheetEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO timesheet_entries
		(crew_id, date, pre_call, unit_call, wrap_out, call_sheet_lunch,
		 day_type, is_sixth_day, is_seventh_day, production_day, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(crew_id, date) DO UPDATE SET
			pre_call = excluded.pre_call,
			unit_call = excluded.unit_call,
			wrap_out = excluded.wrap_out,
			call_sheet_lunch = excluded.call_sheet_lunch,
			day_type = excluded.day_type,
			is_sixth_day = excluded.is_sixth_day,
			is_seventh_day = excluded.is_seventh_day,
			production_day = excluded.production_day,
			updated_at = excluded.updated_at
	`,
		crewID,
		entry.Date.String(),
		nullString(entry.PreCall),
		nullString(entry.UnitCall),
		nullString(entry.WrapOut),
		nullString(entry.CallSheetLunch),
		string(entry.DayType.Normalize()),
		entry.IsSixthDay,
		entry.IsSeventhDay,
		nullString(entry.ProductionDay),
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Store) Get(ctx context.Context, crewID string, date engine.Date) (engine.TimesheetEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT date, pre_call, unit_call, wrap_out, call_sheet_lunch,
		       day_type, is_sixth_day, is_seventh_day, production_day
		FROM timesheet_entries WHERE crew_id = ? AND date = ?
	`, crewID, date.String())

	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return engine.TimesheetEntry{}, engine.ErrEntryNotFound
	}
	return entry, err
}

func (s *Store) Delete(ctx context.Context, crewID string, date engine.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		DELETE FROM timesheet_entries WHERE crew_id = ? AND date = ?
	`, crewID, date.String())
	return err
}

func (s *Store) Range(ctx context.Context, crewID string, from, to engine.Date) ([]engine.TimesheetEntry, error) {
	if to.Before(from) {
		return nil, engine.ErrInvalidRange
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT date, pre_call, unit_call, wrap_out, call_sheet_lunch,
		       day_type, is_sixth_day, is_seventh_day, production_day
		FROM timesheet_entries
		WHERE crew_id = ? AND date >= ? AND date <= ?
		ORDER BY date
	`, crewID, from.String(), to.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []engine.TimesheetEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

// =============================================================================
// SCAN HELPERS
// =============================================================================

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (engine.TimesheetEntry, error) {
	var dateStr, dayType string
	var preCall, unitCall, wrapOut, lunch, productionDay sql.NullString
	var entry engine.TimesheetEntry

	err := row.Scan(&dateStr, &preCall, &unitCall, &wrapOut, &lunch,
		&dayType, &entry.IsSixthDay, &entry.IsSeventhDay, &productionDay)
	if err != nil {
		return engine.TimesheetEntry{}, err
	}

	date, err := engine.ParseDate(dateStr)
	if err != nil {
		return engine.TimesheetEntry{}, fmt.Errorf("corrupt entry date %q: %w", dateStr, err)
	}

	entry.Date = date
	entry.DayType = engine.DayType(dayType)
	entry.PreCall = strPtr(preCall)
	entry.UnitCall = strPtr(unitCall)
	entry.WrapOut = strPtr(wrapOut)
	entry.CallSheetLunch = strPtr(lunch)
	entry.ProductionDay = strPtr(productionDay)
	return entry, nil
}

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func strPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callsheet/crewpay/engine"
	"github.com/callsheet/crewpay/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func ptr(s string) *string { return &s }

// =============================================================================
// CREW MEMBERS
// =============================================================================

func TestCrewMember_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	member := engine.CrewMember{
		ID:         "crew-1",
		Name:       "Alex Reid",
		Role:       "Focus Puller",
		Production: "Test Production",
		CreatedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.SaveCrewMember(ctx, member))

	got, err := store.GetCrewMember(ctx, "crew-1")
	require.NoError(t, err)
	assert.Equal(t, member, got)

	list, err := store.ListCrewMembers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCrewMember_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetCrewMember(context.Background(), "ghost")
	assert.ErrorIs(t, err, engine.ErrCrewNotFound)
}

// =============================================================================
// RATE CARDS
// =============================================================================

func TestRateCard_RoundTripPreservesPrecision(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rc := engine.RateCard{
		DailyRate:            decimal.RequireFromString("312.50"),
		BaseDayHours:         decimal.NewFromInt(11),
		OTMultiplier:         decimal.RequireFromString("1.5"),
		PreCallMultiplier:    decimal.NewFromInt(1),
		LateNightMultiplier:  decimal.NewFromInt(2),
		SixthDayMultiplier:   decimal.RequireFromString("1.75"),
		SeventhDayMultiplier: decimal.NewFromInt(2),
		KitRental:            decimal.RequireFromString("17.33"),
	}
	require.NoError(t, store.SaveRateCard(ctx, "crew-1", rc))

	got, err := store.GetRateCard(ctx, "crew-1")
	require.NoError(t, err)

	// Stored as decimal strings, so values survive exactly
	assert.True(t, rc.DailyRate.Equal(got.DailyRate), "dailyRate")
	assert.True(t, rc.SixthDayMultiplier.Equal(got.SixthDayMultiplier), "sixthDayMultiplier")
	assert.True(t, rc.KitRental.Equal(got.KitRental), "kitRental")
}

func TestRateCard_UpsertLastWriterWins(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := engine.DefaultRateCard()
	require.NoError(t, store.SaveRateCard(ctx, "crew-1", first))

	second := first
	second.DailyRate = decimal.NewFromInt(450)
	require.NoError(t, store.SaveRateCard(ctx, "crew-1", second))

	got, err := store.GetRateCard(ctx, "crew-1")
	require.NoError(t, err)
	assert.True(t, got.DailyRate.Equal(decimal.NewFromInt(450)))
}

// =============================================================================
// TIMESHEET ENTRIES
// =============================================================================

func entryFor(day int) engine.TimesheetEntry {
	return engine.TimesheetEntry{
		Date:           engine.NewDate(2025, time.June, day),
		PreCall:        ptr("06:00"),
		UnitCall:       ptr("07:00"),
		WrapOut:        ptr("19:00"),
		CallSheetLunch: ptr("13:00"),
		DayType:        engine.DayStandard,
		ProductionDay:  ptr("Day 12"),
	}
}

func TestEntry_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	entry := entryFor(2)
	entry.IsSixthDay = true
	require.NoError(t, store.Put(ctx, "crew-1", entry))

	got, err := store.Get(ctx, "crew-1", entry.Date)
	require.NoError(t, err)
	assert.Equal(t, entry, got)
}

func TestEntry_NilOptionalsSurviveRoundTrip(t *testing.T) {
	// nil means "never filled in" - it must come back nil, not ""
	store := newTestStore(t)
	ctx := context.Background()

	entry := engine.TimesheetEntry{
		Date:     engine.NewDate(2025, time.June, 3),
		UnitCall: ptr("07:00"),
		DayType:  engine.DayShortContinuous,
	}
	require.NoError(t, store.Put(ctx, "crew-1", entry))

	got, err := store.Get(ctx, "crew-1", entry.Date)
	require.NoError(t, err)
	assert.Nil(t, got.PreCall)
	assert.Nil(t, got.WrapOut)
	assert.Nil(t, got.CallSheetLunch)
	assert.Nil(t, got.ProductionDay)
	assert.False(t, got.IsComplete())
}

func TestEntry_UpsertSameDate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	entry := entryFor(2)
	require.NoError(t, store.Put(ctx, "crew-1", entry))

	entry.WrapOut = ptr("23:45")
	require.NoError(t, store.Put(ctx, "crew-1", entry))

	got, err := store.Get(ctx, "crew-1", entry.Date)
	require.NoError(t, err)
	assert.Equal(t, "23:45", *got.WrapOut)

	// Still exactly one row for the date
	entries, err := store.Range(ctx, "crew-1", entry.Date, entry.Date)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestEntry_RangeIsOrderedAndScopedToCrew(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "crew-1", entryFor(5)))
	require.NoError(t, store.Put(ctx, "crew-1", entryFor(2)))
	require.NoError(t, store.Put(ctx, "crew-1", entryFor(9)))
	require.NoError(t, store.Put(ctx, "crew-2", entryFor(3)))

	entries, err := store.Range(ctx, "crew-1",
		engine.NewDate(2025, time.June, 1), engine.NewDate(2025, time.June, 7))
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "2025-06-02", entries[0].Date.String())
	assert.Equal(t, "2025-06-05", entries[1].Date.String())
}

func TestEntry_RangeRejectsInvertedBounds(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Range(context.Background(), "crew-1",
		engine.NewDate(2025, time.June, 9), engine.NewDate(2025, time.June, 2))
	assert.ErrorIs(t, err, engine.ErrInvalidRange)
}

func TestEntry_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	entry := entryFor(2)
	require.NoError(t, store.Put(ctx, "crew-1", entry))
	require.NoError(t, store.Delete(ctx, "crew-1", entry.Date))

	_, err := store.Get(ctx, "crew-1", entry.Date)
	assert.ErrorIs(t, err, engine.ErrEntryNotFound)
}

// =============================================================================
// RESET
// =============================================================================

func TestReset_WipesEverything(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveCrewMember(ctx, engine.CrewMember{ID: "crew-1", Name: "A"}))
	require.NoError(t, store.SaveRateCard(ctx, "crew-1", engine.DefaultRateCard()))
	require.NoError(t, store.Put(ctx, "crew-1", entryFor(2)))

	require.NoError(t, store.Reset(ctx))

	list, err := store.ListCrewMembers(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = store.GetRateCard(ctx, "crew-1")
	assert.ErrorIs(t, err, engine.ErrCrewNotFound)
}

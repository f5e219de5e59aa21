package engine_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/callsheet/crewpay/engine"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func assertDecimal(t *testing.T, want decimal.Decimal, got decimal.Decimal, label string) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s: expected %s, got %s", label, want, got)
	}
}

// =============================================================================
// PARSING
// =============================================================================

func TestParseClock_ValidTimes(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"00:00", 0},
		{"07:00", 7},
		{"07:30", 7.5},
		{"09:15", 9.25},
		{"23:45", 23.75},
		{" 18:00 ", 18}, // whitespace tolerated
	}

	for _, c := range cases {
		got := engine.ParseClock(c.in)
		if !got.Valid() {
			t.Errorf("ParseClock(%q): expected valid", c.in)
			continue
		}
		assertDecimal(t, d(c.want), got.Hours(), c.in)
	}
}

func TestParseClock_MalformedInput_IsInvalidNotError(t *testing.T) {
	// Malformed and empty inputs produce the invalid sentinel; downstream
	// arithmetic must degrade to zero, never crash.
	for _, in := range []string{"", "7", "25:00", "12:60", "ab:cd", "12:3x", "12-30", "12:30:00", "-1:00"} {
		if engine.ParseClock(in).Valid() {
			t.Errorf("ParseClock(%q): expected invalid", in)
		}
	}
}

// =============================================================================
// DIFFERENCES
// =============================================================================

func TestHoursBetween_SameDay(t *testing.T) {
	got := engine.HoursBetween(engine.ParseClock("07:00"), engine.ParseClock("19:00"))
	assertDecimal(t, d(12), got, "07:00 to 19:00")
}

func TestHoursBetween_OvernightWrap(t *testing.T) {
	// GIVEN: A shift starting 22:00 and wrapping 02:00
	// THEN: The difference wraps across midnight to 4 hours
	got := engine.HoursBetween(engine.ParseClock("22:00"), engine.ParseClock("02:00"))
	assertDecimal(t, d(4), got, "22:00 to 02:00")
}

func TestHoursBetween_InvalidInput_IsZero(t *testing.T) {
	got := engine.HoursBetween(engine.ParseClock("nope"), engine.ParseClock("19:00"))
	assertDecimal(t, d(0), got, "invalid start")

	got = engine.HoursBetween(engine.ParseClock("07:00"), engine.ClockTime{})
	assertDecimal(t, d(0), got, "invalid end")
}

func TestHoursBetween_ZeroSpan(t *testing.T) {
	got := engine.HoursBetween(engine.ParseClock("07:00"), engine.ParseClock("07:00"))
	assertDecimal(t, d(0), got, "zero span")
}

// =============================================================================
// LATE-NIGHT ADJUSTMENT
// =============================================================================

func TestAdjustedWrap_DisambiguatesAfterMidnight(t *testing.T) {
	// A wrap before 06:00 is read as after midnight: 00:30 -> 24.5.
	assertDecimal(t, d(24.5), engine.ParseClock("00:30").AdjustedWrap(), "00:30")
	// 23:30 stays on the same nominal day.
	assertDecimal(t, d(23.5), engine.ParseClock("23:30").AdjustedWrap(), "23:30")
	// 06:00 itself is a (very early) same-day wrap.
	assertDecimal(t, d(6), engine.ParseClock("06:00").AdjustedWrap(), "06:00")
}

func TestLateNightHours(t *testing.T) {
	cases := []struct {
		wrap string
		want float64
	}{
		{"23:45", 0.75},
		{"23:00", 0},
		{"18:00", 0},
		{"01:30", 2.5}, // 25.5 - 23
		{"05:59", 6.983333333333333},
	}
	for _, c := range cases {
		got := engine.ParseClock(c.wrap).LateNightHours()
		if got.Sub(d(c.want)).Abs().GreaterThan(d(0.0001)) {
			t.Errorf("LateNightHours(%s): expected %v, got %s", c.wrap, c.want, got)
		}
	}
}

func TestLateNightHours_InvalidWrap_IsZero(t *testing.T) {
	assertDecimal(t, d(0), engine.ClockTime{}.LateNightHours(), "invalid wrap")
}

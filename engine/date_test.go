package engine_test

import (
	"testing"
	"time"

	"github.com/callsheet/crewpay/engine"
)

func TestParseDate_RoundTrip(t *testing.T) {
	date, err := engine.ParseDate("2025-06-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if date.String() != "2025-06-02" {
		t.Errorf("expected 2025-06-02, got %s", date)
	}
	if date.Weekday() != time.Monday {
		t.Errorf("2025-06-02 is a Monday, got %s", date.Weekday())
	}
}

func TestParseDate_Malformed(t *testing.T) {
	for _, in := range []string{"", "02/06/2025", "2025-13-01", "yesterday"} {
		if _, err := engine.ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q): expected error", in)
		}
	}
}

func TestStartOfWeek_SnapsToMonday(t *testing.T) {
	monday := engine.NewDate(2025, time.June, 2)

	for i := 0; i < 7; i++ {
		day := monday.AddDays(i)
		if !day.StartOfWeek().Equal(monday) {
			t.Errorf("%s (%s): expected week start %s, got %s",
				day, day.Weekday(), monday, day.StartOfWeek())
		}
	}
	// The following Monday starts a new week
	if monday.AddDays(7).StartOfWeek().Equal(monday) {
		t.Error("next Monday belongs to the next week")
	}
}

func TestEndOfMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.June, 30},
		{2025, time.July, 31},
		{2024, time.February, 29}, // leap year
		{2025, time.February, 28},
	}
	for _, c := range cases {
		got := engine.NewDate(c.year, c.month, 15).EndOfMonth()
		if got.Day() != c.want {
			t.Errorf("%d-%d: expected %d days, got %d", c.year, c.month, c.want, got.Day())
		}
		if engine.DaysInMonth(c.year, c.month) != c.want {
			t.Errorf("DaysInMonth(%d, %d): expected %d", c.year, c.month, c.want)
		}
	}
}

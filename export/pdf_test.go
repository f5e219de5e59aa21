package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/callsheet/crewpay/engine"
	"github.com/callsheet/crewpay/engine/store"
)

func ptr(s string) *string { return &s }

func weekFixture(t *testing.T) (engine.CrewMember, engine.PeriodSummary) {
	t.Helper()

	entries := store.NewMemory()
	ctx := context.Background()
	monday := engine.NewDate(2025, time.June, 2)

	days := []engine.TimesheetEntry{
		{Date: monday, UnitCall: ptr("07:00"), WrapOut: ptr("18:00"), DayType: engine.DayStandard},
		{Date: monday.AddDays(1), PreCall: ptr("06:00"), UnitCall: ptr("07:00"), WrapOut: ptr("19:00"), DayType: engine.DayStandard},
		// Wednesday has a call but no wrap yet
		{Date: monday.AddDays(2), UnitCall: ptr("07:00"), DayType: engine.DayStandard},
	}
	for _, e := range days {
		if err := entries.Put(ctx, "crew-1", e); err != nil {
			t.Fatalf("Failed to seed entry: %v", err)
		}
	}

	summary, err := engine.SummarizeWeek(ctx, entries, engine.DefaultRateCard(), "crew-1", monday)
	if err != nil {
		t.Fatalf("Failed to summarize week: %v", err)
	}

	member := engine.CrewMember{
		ID:         "crew-1",
		Name:       "Alex Reid",
		Role:       "Focus Puller",
		Production: "Night Shoot",
	}
	return member, summary
}

func TestWeeklyTimesheetPDF(t *testing.T) {
	// GIVEN: A week summary with worked days and one incomplete day
	// WHEN: Rendering the PDF
	// THEN: The output is a well-formed, non-trivial PDF document

	member, summary := weekFixture(t)

	var buf bytes.Buffer
	if err := WeeklyTimesheetPDF(&buf, member, summary); err != nil {
		t.Fatalf("Failed to render PDF: %v", err)
	}

	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("Expected output to start with the %PDF magic")
	}
	if !bytes.Contains(buf.Bytes(), []byte("%%EOF")) {
		t.Error("Expected output to end with a PDF trailer")
	}
	if buf.Len() < 1000 {
		t.Errorf("Expected a full page of content, got %d bytes", buf.Len())
	}
}

func TestWeeklyTimesheetPDF_EmptyWeek(t *testing.T) {
	// A week with no entries still renders: seven blank rows, zero totals.
	member := engine.CrewMember{ID: "crew-1", Name: "Alex Reid"}
	summary := engine.PeriodSummary{
		Start: engine.NewDate(2025, time.June, 2),
		End:   engine.NewDate(2025, time.June, 8),
	}

	var buf bytes.Buffer
	if err := WeeklyTimesheetPDF(&buf, member, summary); err != nil {
		t.Fatalf("Failed to render empty-week PDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("Expected output to start with the %PDF magic")
	}
}

/*
aggregate.go - Week and month summaries

PURPOSE:
  Folds a run of per-day calculations into period totals. A week spans
  the 7 days from a Monday anchor; a month spans every calendar day of
  the month. Each existing entry is run through Calculate and every
  output field is summed independently.

COUNTING RULES:
  - "days logged"  - entries present in the store, complete or not
  - "days worked"  - entries with both unit call and wrap set
  - An incomplete entry contributes zero to every numeric field (the
    calculator's early exit), including kit rental: a day with no shift
    does not earn the kit add-on.

ROUNDING:
  Totals are sums of the already-rounded per-day figures, matching what
  a user adds up from the daily breakdowns.
*/
package engine

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SUMMARY TYPES
// =============================================================================

// DaySummary pairs one entry with its calculation inside a period.
type DaySummary struct {
	Date        Date
	Entry       TimesheetEntry
	Calculation Calculation
}

// PeriodSummary is the aggregate over a week or month. Derived state:
// computed on read, never persisted.
type PeriodSummary struct {
	Start Date
	End   Date

	DaysLogged int
	DaysWorked int

	PreCallHours   decimal.Decimal
	WorkingHours   decimal.Decimal
	BaseHours      decimal.Decimal
	OTHours        decimal.Decimal
	LateNightHours decimal.Decimal
	TotalHours     decimal.Decimal

	PreCallEarnings   decimal.Decimal
	DailyEarnings     decimal.Decimal
	OTEarnings        decimal.Decimal
	LateNightEarnings decimal.Decimal
	SixthDayBonus     decimal.Decimal
	SeventhDayBonus   decimal.Decimal
	KitRental         decimal.Decimal
	TotalEarnings     decimal.Decimal

	Days []DaySummary
}

// =============================================================================
// AGGREGATION
// =============================================================================

// SummarizeWeek aggregates the 7 days from the Monday of anchor's week.
// Any date may be passed as the anchor; it is snapped back to its Monday.
func SummarizeWeek(ctx context.Context, store EntryStore, rc RateCard, crewID string, anchor Date) (PeriodSummary, error) {
	start := anchor.StartOfWeek()
	return summarizeRange(ctx, store, rc, crewID, start, start.AddDays(6))
}

// SummarizeMonth aggregates every calendar day of the given month.
func SummarizeMonth(ctx context.Context, store EntryStore, rc RateCard, crewID string, year int, month time.Month) (PeriodSummary, error) {
	start := NewDate(year, month, 1)
	return summarizeRange(ctx, store, rc, crewID, start, start.EndOfMonth())
}

func summarizeRange(ctx context.Context, store EntryStore, rc RateCard, crewID string, from, to Date) (PeriodSummary, error) {
	entries, err := store.Range(ctx, crewID, from, to)
	if err != nil {
		return PeriodSummary{}, err
	}

	s := PeriodSummary{
		Start: from,
		End:   to,

		PreCallHours:   decimal.Zero,
		WorkingHours:   decimal.Zero,
		BaseHours:      decimal.Zero,
		OTHours:        decimal.Zero,
		LateNightHours: decimal.Zero,
		TotalHours:     decimal.Zero,

		PreCallEarnings:   decimal.Zero,
		DailyEarnings:     decimal.Zero,
		OTEarnings:        decimal.Zero,
		LateNightEarnings: decimal.Zero,
		SixthDayBonus:     decimal.Zero,
		SeventhDayBonus:   decimal.Zero,
		KitRental:         decimal.Zero,
		TotalEarnings:     decimal.Zero,
	}

	for _, entry := range entries {
		calc := Calculate(rc, entry)

		s.DaysLogged++
		if entry.IsComplete() {
			s.DaysWorked++
		}

		s.PreCallHours = s.PreCallHours.Add(calc.PreCallHours)
		s.WorkingHours = s.WorkingHours.Add(calc.WorkingHours)
		s.BaseHours = s.BaseHours.Add(calc.BaseHours)
		s.OTHours = s.OTHours.Add(calc.OTHours)
		s.LateNightHours = s.LateNightHours.Add(calc.LateNightHours)
		s.TotalHours = s.TotalHours.Add(calc.TotalHours)

		s.PreCallEarnings = s.PreCallEarnings.Add(calc.PreCallEarnings)
		s.DailyEarnings = s.DailyEarnings.Add(calc.DailyEarnings)
		s.OTEarnings = s.OTEarnings.Add(calc.OTEarnings)
		s.LateNightEarnings = s.LateNightEarnings.Add(calc.LateNightEarnings)
		s.SixthDayBonus = s.SixthDayBonus.Add(calc.SixthDayBonus)
		s.SeventhDayBonus = s.SeventhDayBonus.Add(calc.SeventhDayBonus)
		s.KitRental = s.KitRental.Add(calc.KitRental)
		s.TotalEarnings = s.TotalEarnings.Add(calc.TotalEarnings)

		s.Days = append(s.Days, DaySummary{
			Date:        entry.Date,
			Entry:       entry,
			Calculation: calc,
		})
	}

	return s, nil
}

/*
Package engine computes a film/TV crew member's daily working hours and
pay from raw call-time records, under UK day-rate rules (Standard,
Short-Continuous and Continuous Working Days).

PURPOSE:
  This package is the calculation core: given a rate card and one day's
  raw call times, it produces a full breakdown of hour categories
  (pre-call, base, overtime, late-night) and the earnings each category
  pays, plus week and month aggregation over a keyed entry store.

KEY CONCEPTS IN THIS FILE (types.go):
  - RateCard: Per-crew-member pay configuration (day rate, multipliers)
  - TimesheetEntry: One calendar day's raw call/wrap times
  - Calculation: The derived hour/earnings breakdown - never stored,
    recomputed on every read

DESIGN PRINCIPLES:
  1. Purity: Calculate is a plain function of RateCard x TimesheetEntry
  2. Precision: decimal.Decimal for all money and hour arithmetic
  3. No failure path: missing or malformed input degrades to zero
     contributions; an incomplete day is a state, not an error
  4. Explicit optionals: absent times are nil pointers, never ""

SEE ALSO:
  - clock.go: "HH:MM" parsing and overnight-wrap arithmetic
  - daytype.go: Lunch deduction and overtime threshold tables
  - calc.go: The calculator itself
  - aggregate.go: Week/month summaries
*/
package engine

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// RATE CARD - Pay configuration, one per crew member per production
// =============================================================================

// RateCard holds the agreed day rate and premium multipliers. It is
// read-many/write-rare shared configuration; the engine never mutates it.
type RateCard struct {
	DailyRate            decimal.Decimal
	BaseDayHours         decimal.Decimal
	OTMultiplier         decimal.Decimal
	PreCallMultiplier    decimal.Decimal
	LateNightMultiplier  decimal.Decimal
	SixthDayMultiplier   decimal.Decimal
	SeventhDayMultiplier decimal.Decimal
	KitRental            decimal.Decimal
}

// DefaultRateCard returns a typical UK camera-department starting card:
// 10-hour reference day, time-and-a-half overtime, double-time late
// nights and seventh days.
func DefaultRateCard() RateCard {
	return RateCard{
		DailyRate:            decimal.NewFromInt(300),
		BaseDayHours:         decimal.NewFromInt(10),
		OTMultiplier:         decimal.NewFromFloat(1.5),
		PreCallMultiplier:    decimal.NewFromInt(1),
		LateNightMultiplier:  decimal.NewFromInt(2),
		SixthDayMultiplier:   decimal.NewFromFloat(1.5),
		SeventhDayMultiplier: decimal.NewFromInt(2),
		KitRental:            decimal.Zero,
	}
}

// Validate checks the rate-card invariants: all multipliers >= 1 and a
// positive reference day length.
func (rc RateCard) Validate() error {
	if !rc.BaseDayHours.IsPositive() {
		return &RateCardError{Field: "baseDayHours", Reason: "must be > 0"}
	}
	for _, m := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"otMultiplier", rc.OTMultiplier},
		{"preCallMultiplier", rc.PreCallMultiplier},
		{"lateNightMultiplier", rc.LateNightMultiplier},
		{"sixthDayMultiplier", rc.SixthDayMultiplier},
		{"seventhDayMultiplier", rc.SeventhDayMultiplier},
	} {
		if m.value.LessThan(one) {
			return &RateCardError{Field: m.name, Reason: "must be >= 1.0"}
		}
	}
	if rc.DailyRate.IsNegative() {
		return &RateCardError{Field: "dailyRate", Reason: "must not be negative"}
	}
	if rc.KitRental.IsNegative() {
		return &RateCardError{Field: "kitRental", Reason: "must not be negative"}
	}
	return nil
}

// HourlyRate is the day rate spread over the reference day length.
func (rc RateCard) HourlyRate() decimal.Decimal {
	if !rc.BaseDayHours.IsPositive() {
		return decimal.Zero
	}
	return rc.DailyRate.Div(rc.BaseDayHours)
}

// =============================================================================
// TIMESHEET ENTRY - One calendar day's raw call times
// =============================================================================

// TimesheetEntry is one day's raw record as supplied by manual entry or
// call-sheet auto-fill. Times are pre-normalized "HH:MM" strings; nil
// means the field was never filled in, which is distinct from a present
// but malformed value.
type TimesheetEntry struct {
	Date           Date
	PreCall        *string // earlier departmental call, before unit call
	UnitCall       *string
	WrapOut        *string // entry is incomplete without it
	CallSheetLunch *string // scheduled lunch, for broken-lunch detection
	DayType        DayType
	IsSixthDay     bool
	IsSeventhDay   bool
	ProductionDay  *string // link back to a shoot day, e.g. "Day 14"
}

// IsComplete reports whether the entry has both a unit call and a wrap.
// Incomplete entries calculate to all-zero, by contract.
func (e TimesheetEntry) IsComplete() bool {
	return e.UnitCall != nil && e.WrapOut != nil
}

// =============================================================================
// CALCULATION - Derived breakdown, recomputed on demand
// =============================================================================

// Calculation is the full hour and earnings breakdown for one entry.
// Every numeric field is rounded to 2 decimal places independently at
// the point of return; TotalEarnings is the exact sum of the rounded
// earnings components.
type Calculation struct {
	HourlyRate decimal.Decimal

	PreCallHours    decimal.Decimal
	RawWorkingHours decimal.Decimal
	LunchDeduction  decimal.Decimal
	WorkingHours    decimal.Decimal
	OTThreshold     decimal.Decimal
	BaseHours       decimal.Decimal
	OTHours         decimal.Decimal
	LateNightHours  decimal.Decimal
	TotalHours      decimal.Decimal

	PreCallEarnings   decimal.Decimal
	DailyEarnings     decimal.Decimal
	OTEarnings        decimal.Decimal
	LateNightEarnings decimal.Decimal
	SixthDayBonus     decimal.Decimal
	SeventhDayBonus   decimal.Decimal
	KitRental         decimal.Decimal
	TotalEarnings     decimal.Decimal

	// BrokenLunch is advisory metadata: the scheduled lunch fell less
	// than six hours after unit call. It changes no monetary figure
	// here; payroll applies the contractual penalty out of band.
	BrokenLunch bool
}

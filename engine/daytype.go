/*
daytype.go - UK film-industry day-type rules

PURPOSE:
  Pure lookup tables for the three UK crew day types. A day type decides
  two figures consumed later by the calculator: how much unpaid lunch is
  deducted from the raw worked span, and where overtime starts relative
  to the rate card's reference day length.

THE TABLE:
  Day type                 Lunch deduction   OT threshold
  SWD  (Standard)          1.0h unpaid       baseDayHours
  SCWD (Short-Continuous)  0.5h unpaid       baseDayHours - 0.5
  CWD  (Continuous)        none (paid)       baseDayHours - 1.0

  A Standard day pays a full unpaid lunch hour and measures overtime
  against the full reference day. A Continuous day folds the lunch
  arrangement into the shift, shortening the deduction and the OT start
  by the same amount, so the paid span before OT stays consistent.

DEFAULTING:
  Unrecognized tags fall back to SWD. Call sheets arrive with free-text
  day descriptions; the ingestion layer normalizes them, but anything
  that slips through must still produce a defined result.
*/
package engine

import "github.com/shopspring/decimal"

// =============================================================================
// DAY TYPE
// =============================================================================

// DayType tags one shoot day with its lunch/overtime arrangement.
type DayType string

const (
	// DayStandard is a Standard Working Day: one unpaid lunch hour.
	DayStandard DayType = "SWD"
	// DayShortContinuous is a Short-Continuous Working Day: half-hour unpaid lunch.
	DayShortContinuous DayType = "SCWD"
	// DayContinuous is a Continuous Working Day: working lunch, fully paid.
	DayContinuous DayType = "CWD"
)

var (
	half = decimal.NewFromFloat(0.5)
	one  = decimal.NewFromInt(1)
)

// Normalize maps unknown tags to DayStandard.
func (d DayType) Normalize() DayType {
	switch d {
	case DayStandard, DayShortContinuous, DayContinuous:
		return d
	default:
		return DayStandard
	}
}

// LunchDeduction returns the unpaid lunch hours subtracted from the raw
// worked span.
func (d DayType) LunchDeduction() decimal.Decimal {
	switch d.Normalize() {
	case DayShortContinuous:
		return half
	case DayContinuous:
		return decimal.Zero
	default:
		return one
	}
}

// OTThreshold returns the working-hours mark past which overtime starts,
// for the given reference day length.
func (d DayType) OTThreshold(baseDayHours decimal.Decimal) decimal.Decimal {
	switch d.Normalize() {
	case DayShortContinuous:
		return baseDayHours.Sub(half)
	case DayContinuous:
		return baseDayHours.Sub(one)
	default:
		return baseDayHours
	}
}

// HasFixedLunch reports whether the day type carries a fixed lunch break
// that can be "broken" by an early call-sheet lunch. Continuous days have
// a working lunch, so there is nothing to break.
func (d DayType) HasFixedLunch() bool {
	return d.Normalize() != DayContinuous
}

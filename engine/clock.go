/*
clock.go - Wall-clock time parsing and arithmetic

PURPOSE:
  Converts "HH:MM" call-sheet times into fractional hours and computes
  forward differences between them. Shoot days routinely wrap past
  midnight ("called 07:00, wrapped 01:30"), so a negative difference is
  always interpreted as an overnight wrap, never as an error.

KEY CONCEPTS:
  - ClockTime: A parsed wall-clock time as fractional hours (7:30 -> 7.5)
  - Invalid sentinel: Malformed input parses to an invalid ClockTime;
    downstream arithmetic degrades to zero instead of failing. A
    half-filled timesheet must never crash the screen rendering it.
  - Past-midnight adjustment: A wrap time before 06:00 is read as "after
    midnight" and shifted by +24h so it can be compared against the
    23:00 late-night threshold without a real date.

DESIGN PRINCIPLES:
  1. Precision: decimal.Decimal throughout - minutes/60 must not drift
  2. No errors: every input has a defined zero/default outcome
  3. Purity: no clocks, no locale, no I/O

SEE ALSO:
  - daytype.go: Day-type lunch and overtime tables
  - calc.go: The calculator consuming these figures
*/
package engine

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CLOCK TIME - "HH:MM" as fractional hours
// =============================================================================

// ClockTime is a wall-clock time expressed as fractional hours since
// midnight. The zero value is the invalid sentinel.
type ClockTime struct {
	hours decimal.Decimal
	valid bool
}

var (
	sixty       = decimal.NewFromInt(60)
	twentyFour  = decimal.NewFromInt(24)
	lateCutoff  = decimal.NewFromInt(23)
	morningSpan = decimal.NewFromInt(6)
)

// ParseClock parses a 24-hour "HH:MM" string. Malformed or empty input
// returns the invalid sentinel, never an error.
func ParseClock(s string) ClockTime {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return ClockTime{}
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return ClockTime{}
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return ClockTime{}
	}
	hours := decimal.NewFromInt(int64(h)).Add(decimal.NewFromInt(int64(m)).Div(sixty))
	return ClockTime{hours: hours, valid: true}
}

// ParseClockPtr parses an optional time field. nil is absent, which is
// distinct from a present-but-malformed string (both end up invalid, but
// callers that care about presence check the pointer first).
func ParseClockPtr(s *string) ClockTime {
	if s == nil {
		return ClockTime{}
	}
	return ParseClock(*s)
}

// Valid reports whether the time parsed successfully.
func (c ClockTime) Valid() bool { return c.valid }

// Hours returns the fractional hours since midnight, zero if invalid.
func (c ClockTime) Hours() decimal.Decimal {
	if !c.valid {
		return decimal.Zero
	}
	return c.hours
}

// =============================================================================
// CLOCK ARITHMETIC
// =============================================================================

// HoursBetween returns end - start in hours, always in [0, 24). A negative
// difference means the span crossed midnight, so 24 is added. If either
// input is invalid the result is zero.
func HoursBetween(start, end ClockTime) decimal.Decimal {
	if !start.valid || !end.valid {
		return decimal.Zero
	}
	diff := end.hours.Sub(start.hours)
	if diff.IsNegative() {
		diff = diff.Add(twentyFour)
	}
	return diff
}

// AdjustedWrap returns the wrap time on a 0-30h scale: a wrap before
// 06:00 is read as "after midnight" and shifted by +24. This is what
// disambiguates a 23:30 wrap from an 00:30-next-day wrap without a date.
func (c ClockTime) AdjustedWrap() decimal.Decimal {
	if !c.valid {
		return decimal.Zero
	}
	if c.hours.LessThan(morningSpan) {
		return c.hours.Add(twentyFour)
	}
	return c.hours
}

// LateNightHours returns the hours this wrap time lands past 23:00,
// using the past-midnight adjustment. Zero for invalid input or a wrap
// at or before 23:00.
func (c ClockTime) LateNightHours() decimal.Decimal {
	if !c.valid {
		return decimal.Zero
	}
	late := c.AdjustedWrap().Sub(lateCutoff)
	if late.IsNegative() {
		return decimal.Zero
	}
	return late
}

package engine

import (
	"time"
)

// =============================================================================
// DATE - Day-granularity calendar key
// =============================================================================

// Date is a day-granularity calendar date in UTC. It is the repository
// key for timesheet entries: one entry per crew member per Date.
type Date struct {
	t time.Time
}

// NewDate constructs a Date from calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO "2006-01-02" date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return Date{t: t}, nil
}

// Comparison
func (d Date) Before(other Date) bool        { return d.t.Before(other.t) }
func (d Date) After(other Date) bool         { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool         { return d.t.Equal(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.t.After(other.t) }
func (d Date) IsZero() bool                  { return d.t.IsZero() }

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// Properties
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

func (d Date) String() string { return d.t.Format("2006-01-02") }

// StartOfWeek returns the Monday of the week containing d. Sunday counts
// as the trailing day of the preceding Monday-anchored week.
func (d Date) StartOfWeek() Date {
	wd := int(d.t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return d.AddDays(-(wd - 1))
}

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date {
	return NewDate(d.Year(), d.Month(), 1)
}

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date {
	return Date{t: time.Date(d.Year(), d.Month()+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)}
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return NewDate(year, month, 1).EndOfMonth().Day()
}

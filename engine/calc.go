/*
calc.go - The daily pay calculator

PURPOSE:
  The core of the engine: Calculate turns a RateCard and one day's raw
  TimesheetEntry into a full Calculation. Pure, deterministic, no I/O,
  no clock reads - the same inputs always produce bit-identical output.

CALCULATION ORDER (each step consumes the previous one's result):
   1. hourlyRate     = dailyRate / baseDayHours
   2. preCallHours   = diff(preCall, unitCall), paid at preCallMultiplier
   3. workingHours   = diff(unitCall, wrapOut) - lunch deduction
   4. brokenLunch    = lunch scheduled < 6h after unit call (SWD/SCWD)
   5. lateNightHours = hours the wrap lands past 23:00
   6. otThreshold    = day type's threshold for baseDayHours
   7. baseHours      = min(workingHours, otThreshold)
   8. otHours        = max(0, workingHours - otThreshold - lateNightHours)
   9. totalHours     = preCallHours + workingHours
  10. per-category earnings at their multipliers
  11. 6th/7th-day bonus on the pre-bonus earnings (7th wins, never both)
  12. totalEarnings  = sum of all components + kit rental

  Late-night hours are carved OUT of the overtime pool (step 8) so an
  hour past 23:00 is never paid at both the OT and late-night premiums.

ROUNDING:
  Every output field is rounded to 2 decimal places independently at the
  point of return. TotalEarnings is summed from the already-rounded
  components, so it always equals what the rendered breakdown adds up to.

FAILURE SEMANTICS:
  None. A missing wrap returns an all-zero Calculation (the entry is
  simply incomplete), malformed times contribute zero hours, and an
  unrecognized day type behaves as SWD. A partially-filled timesheet
  being recalculated live as the user types must never error.

SEE ALSO:
  - clock.go, daytype.go: The figures consumed here
  - aggregate.go: Week/month folds over this function
*/
package engine

import "github.com/shopspring/decimal"

// Calculate computes the full hour and earnings breakdown for one day.
func Calculate(rc RateCard, entry TimesheetEntry) Calculation {
	// Incomplete entry: not an error, just nothing to pay yet. Kit
	// rental is only earned on a day with an actual shift, so it zeroes
	// out here too.
	if !entry.IsComplete() {
		return Calculation{}
	}

	hourlyRate := rc.HourlyRate()
	dayType := entry.DayType.Normalize()

	unitCall := ParseClockPtr(entry.UnitCall)
	wrapOut := ParseClockPtr(entry.WrapOut)

	// Pre-call: departmental call ahead of the unit call.
	preCallHours := decimal.Zero
	if entry.PreCall != nil {
		preCallHours = HoursBetween(ParseClockPtr(entry.PreCall), unitCall)
	}
	preCallEarnings := preCallHours.Mul(hourlyRate).Mul(rc.PreCallMultiplier)

	// Worked span, minus the day type's unpaid lunch.
	rawWorkingHours := HoursBetween(unitCall, wrapOut)
	lunchDeduction := dayType.LunchDeduction()
	workingHours := rawWorkingHours.Sub(lunchDeduction)
	if workingHours.IsNegative() {
		workingHours = decimal.Zero
	}

	// Broken lunch: scheduled lunch less than six hours after unit call.
	// Advisory only - payroll applies the penalty out of band. Continuous
	// days have a working lunch, so there is nothing to break.
	brokenLunch := false
	if dayType.HasFixedLunch() && entry.CallSheetLunch != nil {
		lunch := ParseClockPtr(entry.CallSheetLunch)
		if unitCall.Valid() && lunch.Valid() &&
			HoursBetween(unitCall, lunch).LessThan(decimal.NewFromInt(6)) {
			brokenLunch = true
		}
	}

	lateNightHours := wrapOut.LateNightHours()

	otThreshold := dayType.OTThreshold(rc.BaseDayHours)

	baseHours := decimal.Min(workingHours, otThreshold)

	// Late-night hours come out of the OT pool: never double-premium.
	otHours := workingHours.Sub(otThreshold).Sub(lateNightHours)
	if otHours.IsNegative() {
		otHours = decimal.Zero
	}

	totalHours := preCallHours.Add(workingHours)

	dailyEarnings := baseHours.Mul(hourlyRate)
	otEarnings := otHours.Mul(hourlyRate).Mul(rc.OTMultiplier)
	lateNightEarnings := lateNightHours.Mul(hourlyRate).Mul(rc.LateNightMultiplier)

	// Premium-day bonus on everything earned so far. Seventh-day status
	// takes precedence; the calculator never applies both.
	baseEarnings := preCallEarnings.Add(dailyEarnings).Add(otEarnings).Add(lateNightEarnings)
	sixthDayBonus := decimal.Zero
	seventhDayBonus := decimal.Zero
	switch {
	case entry.IsSeventhDay:
		seventhDayBonus = baseEarnings.Mul(rc.SeventhDayMultiplier.Sub(one))
	case entry.IsSixthDay:
		sixthDayBonus = baseEarnings.Mul(rc.SixthDayMultiplier.Sub(one))
	}

	calc := Calculation{
		HourlyRate: round2(hourlyRate),

		PreCallHours:    round2(preCallHours),
		RawWorkingHours: round2(rawWorkingHours),
		LunchDeduction:  round2(lunchDeduction),
		WorkingHours:    round2(workingHours),
		OTThreshold:     round2(otThreshold),
		BaseHours:       round2(baseHours),
		OTHours:         round2(otHours),
		LateNightHours:  round2(lateNightHours),
		TotalHours:      round2(totalHours),

		PreCallEarnings:   round2(preCallEarnings),
		DailyEarnings:     round2(dailyEarnings),
		OTEarnings:        round2(otEarnings),
		LateNightEarnings: round2(lateNightEarnings),
		SixthDayBonus:     round2(sixthDayBonus),
		SeventhDayBonus:   round2(seventhDayBonus),
		KitRental:         round2(rc.KitRental),

		BrokenLunch: brokenLunch,
	}

	// Total from the rounded components, so the invariant
	// "totalEarnings = sum of its listed components" holds exactly on
	// the figures a reader sees.
	calc.TotalEarnings = calc.PreCallEarnings.
		Add(calc.DailyEarnings).
		Add(calc.OTEarnings).
		Add(calc.LateNightEarnings).
		Add(calc.SixthDayBonus).
		Add(calc.SeventhDayBonus).
		Add(calc.KitRental)

	return calc
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

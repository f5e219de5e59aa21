/*
Package export renders timesheet documents for payroll hand-off.

PURPOSE:
  Crews still hand production payroll a weekly timesheet. This package
  renders the engine's week summary as a PDF: one row per day with call,
  wrap, hour buckets and earnings, then the week totals and kit-rental
  line. It is a pure consumer of the engine's summaries and holds no
  calculation logic of its own.
*/
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/callsheet/crewpay/engine"
)

// WeeklyTimesheetPDF renders the week summary as an A4 landscape PDF and
// writes it to w.
func WeeklyTimesheetPDF(w io.Writer, member engine.CrewMember, summary engine.PeriodSummary) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Weekly Timesheet")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Crew: %s (%s)", member.Name, member.Role))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Production: %s", member.Production))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Week: %s to %s", summary.Start, summary.End))
	pdf.Ln(10)

	// Table header
	cols := []struct {
		title string
		width float64
	}{
		{"Date", 28},
		{"Day", 16},
		{"Type", 16},
		{"Pre-call", 20},
		{"Call", 16},
		{"Wrap", 16},
		{"Hours", 18},
		{"OT", 16},
		{"Late", 16},
		{"Earnings", 26},
		{"Notes", 40},
	}

	pdf.SetFont("Helvetica", "B", 9)
	for _, c := range cols {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	// One row per calendar day of the week; days with no entry stay blank
	pdf.SetFont("Helvetica", "", 9)
	byDate := make(map[string]engine.DaySummary, len(summary.Days))
	for _, d := range summary.Days {
		byDate[d.Date.String()] = d
	}

	for i := 0; i < 7; i++ {
		date := summary.Start.AddDays(i)
		day, ok := byDate[date.String()]

		row := []string{
			date.String(),
			date.Weekday().String()[:3],
			"", "", "", "", "", "", "", "", "",
		}
		if ok {
			calc := day.Calculation
			row[2] = string(day.Entry.DayType.Normalize())
			row[3] = orDash(day.Entry.PreCall)
			row[4] = orDash(day.Entry.UnitCall)
			row[5] = orDash(day.Entry.WrapOut)
			row[6] = money(calc.TotalHours)
			row[7] = money(calc.OTHours)
			row[8] = money(calc.LateNightHours)
			row[9] = "£" + money(calc.TotalEarnings)
			row[10] = notes(day)
		}

		for j, c := range cols {
			pdf.CellFormat(c.width, 7, row[j], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	// Totals
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 7, fmt.Sprintf("Days worked: %d of %d logged", summary.DaysWorked, summary.DaysLogged))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Total hours: %s   (OT %s, late-night %s)",
		money(summary.TotalHours), money(summary.OTHours), money(summary.LateNightHours)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Kit rental: £%s", money(summary.KitRental)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Total earnings: £%s", money(summary.TotalEarnings)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s - broken-lunch penalties are applied by payroll separately.",
		time.Now().UTC().Format("2006-01-02")))

	return pdf.Output(w)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func notes(day engine.DaySummary) string {
	switch {
	case day.Calculation.BrokenLunch && day.Entry.IsSeventhDay:
		return "broken lunch, 7th day"
	case day.Calculation.BrokenLunch:
		return "broken lunch"
	case day.Entry.IsSeventhDay:
		return "7th day"
	case day.Entry.IsSixthDay:
		return "6th day"
	case !day.Entry.IsComplete():
		return "incomplete"
	default:
		return ""
	}
}

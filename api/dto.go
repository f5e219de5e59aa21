/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's decimal-typed domain model from the external contract:
  numbers cross the wire as plain JSON numbers (float64), field names
  follow the timesheet contract used by payroll-export tooling
  (dailyRate, preCallHours, brokenLunch, ...).

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

OPTIONALITY:
  Optional call times are *string throughout: JSON null or an omitted key
  means "never filled in", which the engine treats differently from a
  present-but-malformed value.

SEE ALSO:
  - handlers.go: Uses these types
  - engine/types.go: The domain model these mirror
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/callsheet/crewpay/engine"
)

// =============================================================================
// CREW
// =============================================================================

// CrewMemberDTO represents a crew member in API responses.
type CrewMemberDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Production string `json:"production"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// CreateCrewMemberRequest is the request to register a crew member.
// A default rate card is seeded alongside.
type CreateCrewMemberRequest struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Production string `json:"production"`
}

// =============================================================================
// RATE CARD
// =============================================================================

// RateCardDTO carries the pay configuration. All multipliers >= 1.
type RateCardDTO struct {
	DailyRate            float64 `json:"dailyRate"`
	BaseDayHours         float64 `json:"baseDayHours"`
	OTMultiplier         float64 `json:"otMultiplier"`
	PreCallMultiplier    float64 `json:"preCallMultiplier"`
	LateNightMultiplier  float64 `json:"lateNightMultiplier"`
	SixthDayMultiplier   float64 `json:"sixthDayMultiplier"`
	SeventhDayMultiplier float64 `json:"seventhDayMultiplier"`
	KitRental            float64 `json:"kitRental"`
}

func toRateCardDTO(rc engine.RateCard) RateCardDTO {
	return RateCardDTO{
		DailyRate:            rc.DailyRate.InexactFloat64(),
		BaseDayHours:         rc.BaseDayHours.InexactFloat64(),
		OTMultiplier:         rc.OTMultiplier.InexactFloat64(),
		PreCallMultiplier:    rc.PreCallMultiplier.InexactFloat64(),
		LateNightMultiplier:  rc.LateNightMultiplier.InexactFloat64(),
		SixthDayMultiplier:   rc.SixthDayMultiplier.InexactFloat64(),
		SeventhDayMultiplier: rc.SeventhDayMultiplier.InexactFloat64(),
		KitRental:            rc.KitRental.InexactFloat64(),
	}
}

func (dto RateCardDTO) toDomain() engine.RateCard {
	return engine.RateCard{
		DailyRate:            decimal.NewFromFloat(dto.DailyRate),
		BaseDayHours:         decimal.NewFromFloat(dto.BaseDayHours),
		OTMultiplier:         decimal.NewFromFloat(dto.OTMultiplier),
		PreCallMultiplier:    decimal.NewFromFloat(dto.PreCallMultiplier),
		LateNightMultiplier:  decimal.NewFromFloat(dto.LateNightMultiplier),
		SixthDayMultiplier:   decimal.NewFromFloat(dto.SixthDayMultiplier),
		SeventhDayMultiplier: decimal.NewFromFloat(dto.SeventhDayMultiplier),
		KitRental:            decimal.NewFromFloat(dto.KitRental),
	}
}

// =============================================================================
// TIMESHEET ENTRY
// =============================================================================

// EntryDTO represents one day's raw call times.
type EntryDTO struct {
	Date           string  `json:"date"`
	PreCall        *string `json:"preCall,omitempty"`
	UnitCall       *string `json:"unitCall,omitempty"`
	WrapOut        *string `json:"wrapOut,omitempty"`
	CallSheetLunch *string `json:"callSheetLunch,omitempty"`
	DayType        string  `json:"dayType"`
	IsSixthDay     bool    `json:"isSixthDay"`
	IsSeventhDay   bool    `json:"isSeventhDay"`
	ProductionDay  *string `json:"productionDay,omitempty"`
}

func toEntryDTO(e engine.TimesheetEntry) EntryDTO {
	return EntryDTO{
		Date:           e.Date.String(),
		PreCall:        e.PreCall,
		UnitCall:       e.UnitCall,
		WrapOut:        e.WrapOut,
		CallSheetLunch: e.CallSheetLunch,
		DayType:        string(e.DayType.Normalize()),
		IsSixthDay:     e.IsSixthDay,
		IsSeventhDay:   e.IsSeventhDay,
		ProductionDay:  e.ProductionDay,
	}
}

func (dto EntryDTO) toDomain(date engine.Date) engine.TimesheetEntry {
	return engine.TimesheetEntry{
		Date:           date,
		PreCall:        dto.PreCall,
		UnitCall:       dto.UnitCall,
		WrapOut:        dto.WrapOut,
		CallSheetLunch: dto.CallSheetLunch,
		DayType:        engine.DayType(dto.DayType),
		IsSixthDay:     dto.IsSixthDay,
		IsSeventhDay:   dto.IsSeventhDay,
		ProductionDay:  dto.ProductionDay,
	}
}

// =============================================================================
// CALCULATION
// =============================================================================

// CalculationDTO is the full per-day breakdown.
type CalculationDTO struct {
	HourlyRate float64 `json:"hourlyRate"`

	PreCallHours    float64 `json:"preCallHours"`
	RawWorkingHours float64 `json:"rawWorkingHours"`
	LunchDeduction  float64 `json:"lunchDeduction"`
	WorkingHours    float64 `json:"workingHours"`
	OTThreshold     float64 `json:"otThreshold"`
	BaseHours       float64 `json:"baseHours"`
	OTHours         float64 `json:"otHours"`
	LateNightHours  float64 `json:"lateNightHours"`
	TotalHours      float64 `json:"totalHours"`

	PreCallEarnings   float64 `json:"preCallEarnings"`
	DailyEarnings     float64 `json:"dailyEarnings"`
	OTEarnings        float64 `json:"otEarnings"`
	LateNightEarnings float64 `json:"lateNightEarnings"`
	SixthDayBonus     float64 `json:"sixthDayBonus"`
	SeventhDayBonus   float64 `json:"seventhDayBonus"`
	KitRental         float64 `json:"kitRental"`
	TotalEarnings     float64 `json:"totalEarnings"`

	BrokenLunch bool `json:"brokenLunch"`
}

func toCalculationDTO(c engine.Calculation) CalculationDTO {
	return CalculationDTO{
		HourlyRate: c.HourlyRate.InexactFloat64(),

		PreCallHours:    c.PreCallHours.InexactFloat64(),
		RawWorkingHours: c.RawWorkingHours.InexactFloat64(),
		LunchDeduction:  c.LunchDeduction.InexactFloat64(),
		WorkingHours:    c.WorkingHours.InexactFloat64(),
		OTThreshold:     c.OTThreshold.InexactFloat64(),
		BaseHours:       c.BaseHours.InexactFloat64(),
		OTHours:         c.OTHours.InexactFloat64(),
		LateNightHours:  c.LateNightHours.InexactFloat64(),
		TotalHours:      c.TotalHours.InexactFloat64(),

		PreCallEarnings:   c.PreCallEarnings.InexactFloat64(),
		DailyEarnings:     c.DailyEarnings.InexactFloat64(),
		OTEarnings:        c.OTEarnings.InexactFloat64(),
		LateNightEarnings: c.LateNightEarnings.InexactFloat64(),
		SixthDayBonus:     c.SixthDayBonus.InexactFloat64(),
		SeventhDayBonus:   c.SeventhDayBonus.InexactFloat64(),
		KitRental:         c.KitRental.InexactFloat64(),
		TotalEarnings:     c.TotalEarnings.InexactFloat64(),

		BrokenLunch: c.BrokenLunch,
	}
}

// =============================================================================
// SUMMARIES
// =============================================================================

// DaySummaryDTO pairs an entry with its calculation inside a period.
type DaySummaryDTO struct {
	Date        string         `json:"date"`
	Entry       EntryDTO       `json:"entry"`
	Calculation CalculationDTO `json:"calculation"`
}

// SummaryDTO is the week/month aggregate.
type SummaryDTO struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	DaysLogged int    `json:"daysLogged"`
	DaysWorked int    `json:"daysWorked"`

	PreCallHours   float64 `json:"preCallHours"`
	WorkingHours   float64 `json:"workingHours"`
	BaseHours      float64 `json:"baseHours"`
	OTHours        float64 `json:"otHours"`
	LateNightHours float64 `json:"lateNightHours"`
	TotalHours     float64 `json:"totalHours"`

	PreCallEarnings   float64 `json:"preCallEarnings"`
	DailyEarnings     float64 `json:"dailyEarnings"`
	OTEarnings        float64 `json:"otEarnings"`
	LateNightEarnings float64 `json:"lateNightEarnings"`
	SixthDayBonus     float64 `json:"sixthDayBonus"`
	SeventhDayBonus   float64 `json:"seventhDayBonus"`
	KitRental         float64 `json:"kitRental"`
	TotalEarnings     float64 `json:"totalEarnings"`

	Days []DaySummaryDTO `json:"days"`
}

func toSummaryDTO(s engine.PeriodSummary) SummaryDTO {
	dto := SummaryDTO{
		Start:      s.Start.String(),
		End:        s.End.String(),
		DaysLogged: s.DaysLogged,
		DaysWorked: s.DaysWorked,

		PreCallHours:   s.PreCallHours.InexactFloat64(),
		WorkingHours:   s.WorkingHours.InexactFloat64(),
		BaseHours:      s.BaseHours.InexactFloat64(),
		OTHours:        s.OTHours.InexactFloat64(),
		LateNightHours: s.LateNightHours.InexactFloat64(),
		TotalHours:     s.TotalHours.InexactFloat64(),

		PreCallEarnings:   s.PreCallEarnings.InexactFloat64(),
		DailyEarnings:     s.DailyEarnings.InexactFloat64(),
		OTEarnings:        s.OTEarnings.InexactFloat64(),
		LateNightEarnings: s.LateNightEarnings.InexactFloat64(),
		SixthDayBonus:     s.SixthDayBonus.InexactFloat64(),
		SeventhDayBonus:   s.SeventhDayBonus.InexactFloat64(),
		KitRental:         s.KitRental.InexactFloat64(),
		TotalEarnings:     s.TotalEarnings.InexactFloat64(),

		Days: make([]DaySummaryDTO, 0, len(s.Days)),
	}
	for _, d := range s.Days {
		dto.Days = append(dto.Days, DaySummaryDTO{
			Date:        d.Date.String(),
			Entry:       toEntryDTO(d.Entry),
			Calculation: toCalculationDTO(d.Calculation),
		})
	}
	return dto
}

// =============================================================================
// SCENARIOS / ERRORS
// =============================================================================

// ScenarioDTO describes a loadable demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LoadScenarioRequest selects a scenario to load.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenarioId"`
}

// LoadScenarioResponse reports the crew member the scenario created.
type LoadScenarioResponse struct {
	ScenarioID string `json:"scenarioId"`
	CrewID     string `json:"crewId"`
	WeekAnchor string `json:"weekAnchor"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

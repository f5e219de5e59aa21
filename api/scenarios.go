/*
scenarios.go - Demo scenario loaders for testing and demonstrations

PURPOSE:

	Pre-built scenarios that populate the database with a realistic week
	of call times. Each scenario creates one crew member with a rate card
	and a run of timesheet entries demonstrating a specific rule.

AVAILABLE SCENARIOS:

	standard-week:      Five SWD days, one with pre-call and overtime
	overnight-premiums: Night shoots wrapping past midnight, 6th/7th days
	broken-lunch:       Early call-sheet lunches tripping the advisory flag

HOW SCENARIOS WORK:
 1. Reset database (clear all data)
 2. Create a crew member + rate card
 3. Put a week of timesheet entries anchored on a fixed Monday

USAGE VIA API:

	POST /api/scenarios/load
	{"scenarioId": "overnight-premiums"}

NOTE:

	Scenarios reset the database. Only use in development/demo
	environments.

SEE ALSO:
  - handlers.go: writeJSON/writeError helpers
  - server.go: Scenario routes
*/
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/callsheet/crewpay/engine"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

// All scenario weeks anchor on this Monday so demo URLs are stable.
var scenarioAnchor = engine.NewDate(2025, time.June, 2)

var scenarios = []ScenarioDTO{
	{
		ID:          "standard-week",
		Name:        "Standard Week",
		Description: "Five standard working days, one with a pre-call and an hour of overtime",
	},
	{
		ID:          "overnight-premiums",
		Name:        "Overnight Premiums",
		Description: "Night shoots wrapping past midnight, plus 6th and 7th day bonuses",
	},
	{
		ID:          "broken-lunch",
		Name:        "Broken Lunch",
		Description: "Continuous days and early call-sheet lunches tripping the advisory flag",
	},
}

// =============================================================================
// HANDLERS
// =============================================================================

// ListScenarios returns the demo scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// LoadScenario resets the database and loads the selected scenario.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ctx := r.Context()
	if err := h.Store.Reset(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset database", err)
		return
	}

	var crewID string
	var err error
	switch req.ScenarioID {
	case "standard-week":
		crewID, err = h.loadStandardWeek(ctx)
	case "overnight-premiums":
		crewID, err = h.loadOvernightPremiums(ctx)
	case "broken-lunch":
		crewID, err = h.loadBrokenLunch(ctx)
	default:
		writeError(w, http.StatusBadRequest, "Unknown scenario", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load scenario", err)
		return
	}

	h.currentScenario = req.ScenarioID
	writeJSON(w, http.StatusOK, LoadScenarioResponse{
		ScenarioID: req.ScenarioID,
		CrewID:     crewID,
		WeekAnchor: scenarioAnchor.String(),
	})
}

// ResetDatabase wipes all data.
func (h *Handler) ResetDatabase(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset database", err)
		return
	}
	h.currentScenario = ""
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// LOADERS
// =============================================================================

func (h *Handler) seedCrew(ctx context.Context, name, role string, rc engine.RateCard) (string, error) {
	member := engine.CrewMember{
		ID:         uuid.NewString(),
		Name:       name,
		Role:       role,
		Production: "Demo Production",
		CreatedAt:  time.Now().UTC(),
	}
	if err := h.Store.SaveCrewMember(ctx, member); err != nil {
		return "", err
	}
	if err := h.Store.SaveRateCard(ctx, member.ID, rc); err != nil {
		return "", err
	}
	return member.ID, nil
}

func (h *Handler) loadStandardWeek(ctx context.Context) (string, error) {
	rc := engine.DefaultRateCard()
	rc.KitRental = decimal.NewFromInt(20)

	crewID, err := h.seedCrew(ctx, "Alex Reid", "Focus Puller", rc)
	if err != nil {
		return "", err
	}

	days := []engine.TimesheetEntry{
		// Monday: plain 10h day, exactly on the OT threshold after lunch
		entry(scenarioAnchor, nil, "07:00", "18:00", engine.DayStandard),
		// Tuesday: pre-call for camera prep, wraps an hour over
		entry(scenarioAnchor.AddDays(1), ptr("06:00"), "07:00", "19:00", engine.DayStandard),
		entry(scenarioAnchor.AddDays(2), nil, "07:00", "18:00", engine.DayStandard),
		entry(scenarioAnchor.AddDays(3), nil, "08:00", "19:00", engine.DayStandard),
		entry(scenarioAnchor.AddDays(4), nil, "07:00", "18:30", engine.DayStandard),
	}
	return crewID, h.putAll(ctx, crewID, days)
}

func (h *Handler) loadOvernightPremiums(ctx context.Context) (string, error) {
	rc := engine.DefaultRateCard()

	crewID, err := h.seedCrew(ctx, "Sam Okafor", "Gaffer", rc)
	if err != nil {
		return "", err
	}

	sixth := entry(scenarioAnchor.AddDays(5), nil, "10:00", "21:00", engine.DayStandard)
	sixth.IsSixthDay = true
	seventh := entry(scenarioAnchor.AddDays(6), nil, "10:00", "20:00", engine.DayStandard)
	seventh.IsSeventhDay = true

	days := []engine.TimesheetEntry{
		// Night shoots: wrap times before 06:00 read as after midnight
		entry(scenarioAnchor, nil, "14:00", "01:30", engine.DayStandard),
		entry(scenarioAnchor.AddDays(1), nil, "15:00", "02:00", engine.DayStandard),
		entry(scenarioAnchor.AddDays(2), nil, "07:00", "23:45", engine.DayStandard),
		sixth,
		seventh,
	}
	return crewID, h.putAll(ctx, crewID, days)
}

func (h *Handler) loadBrokenLunch(ctx context.Context) (string, error) {
	crewID, err := h.seedCrew(ctx, "Priya Nair", "Script Supervisor", engine.DefaultRateCard())
	if err != nil {
		return "", err
	}

	early := entry(scenarioAnchor, nil, "07:00", "18:00", engine.DayStandard)
	early.CallSheetLunch = ptr("12:00") // five hours after call: broken

	fine := entry(scenarioAnchor.AddDays(1), nil, "07:00", "18:00", engine.DayStandard)
	fine.CallSheetLunch = ptr("13:00")

	continuous := entry(scenarioAnchor.AddDays(2), nil, "07:00", "17:30", engine.DayContinuous)
	continuous.CallSheetLunch = ptr("11:00") // working lunch, nothing to break

	short := entry(scenarioAnchor.AddDays(3), nil, "08:00", "18:00", engine.DayShortContinuous)
	short.CallSheetLunch = ptr("12:30")

	return crewID, h.putAll(ctx, crewID, []engine.TimesheetEntry{early, fine, continuous, short})
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) putAll(ctx context.Context, crewID string, entries []engine.TimesheetEntry) error {
	for _, e := range entries {
		if err := h.Store.Put(ctx, crewID, e); err != nil {
			return err
		}
	}
	return nil
}

func entry(date engine.Date, preCall *string, unitCall, wrapOut string, dt engine.DayType) engine.TimesheetEntry {
	return engine.TimesheetEntry{
		Date:     date,
		PreCall:  preCall,
		UnitCall: ptr(unitCall),
		WrapOut:  ptr(wrapOut),
		DayType:  dt,
	}
}

func ptr(s string) *string { return &s }

/*
handlers.go - HTTP API handlers for the crew timesheet engine

PURPOSE:
  Exposes the day-rate calculation engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the engine.

ENDPOINTS:
  Crew:
    GET    /api/crew                        List crew members
    POST   /api/crew                        Register crew member
    GET    /api/crew/{id}                   Crew member details

  Rate card:
    GET    /api/crew/{id}/ratecard          Current rate card
    PUT    /api/crew/{id}/ratecard          Replace rate card

  Entries:
    GET    /api/crew/{id}/entries           Entries in ?from&to range
    GET    /api/crew/{id}/entries/{date}    One entry
    PUT    /api/crew/{id}/entries/{date}    Upsert entry (last-writer-wins)
    DELETE /api/crew/{id}/entries/{date}    Remove entry
    GET    /api/crew/{id}/entries/{date}/calculation  Day breakdown

  Summaries:
    GET /api/crew/{id}/summary/week?anchor=YYYY-MM-DD
    GET /api/crew/{id}/summary/month?year=&month=
    GET /api/crew/{id}/export/week.pdf?anchor=YYYY-MM-DD

  Scenarios:
    GET  /api/scenarios                     List demo scenarios
    POST /api/scenarios/load                Load a demo scenario
    POST /api/scenarios/reset               Wipe the database

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, malformed dates, bad rate cards
  - 404: Unknown crew member / entry
  - 500: Storage errors

  Note that an INCOMPLETE entry is never an error: its calculation is
  simply all-zero. The engine has no fatal path by design.

SECURITY NOTE:
  No authentication. Deploy behind your production's internal network.

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenario loaders
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/callsheet/crewpay/engine"
	"github.com/callsheet/crewpay/export"
	"github.com/callsheet/crewpay/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store

	// Track currently loaded scenario
	currentScenario string
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{Store: store}
}

// =============================================================================
// CREW HANDLERS
// =============================================================================

// ListCrew returns all registered crew members.
func (h *Handler) ListCrew(w http.ResponseWriter, r *http.Request) {
	members, err := h.Store.ListCrewMembers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list crew", err)
		return
	}

	dtos := make([]CrewMemberDTO, len(members))
	for i, m := range members {
		dtos[i] = toCrewMemberDTO(m)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateCrew registers a crew member and seeds a default rate card.
func (h *Handler) CreateCrew(w http.ResponseWriter, r *http.Request) {
	var req CreateCrewMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", nil)
		return
	}

	ctx := r.Context()
	member := engine.CrewMember{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Role:       req.Role,
		Production: req.Production,
		CreatedAt:  time.Now().UTC(),
	}

	if err := h.Store.SaveCrewMember(ctx, member); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create crew member", err)
		return
	}
	if err := h.Store.SaveRateCard(ctx, member.ID, engine.DefaultRateCard()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to seed rate card", err)
		return
	}

	writeJSON(w, http.StatusCreated, toCrewMemberDTO(member))
}

// GetCrew returns a single crew member.
func (h *Handler) GetCrew(w http.ResponseWriter, r *http.Request) {
	member, err := h.Store.GetCrewMember(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, engine.ErrCrewNotFound) {
		writeError(w, http.StatusNotFound, "Crew member not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get crew member", err)
		return
	}
	writeJSON(w, http.StatusOK, toCrewMemberDTO(member))
}

// =============================================================================
// RATE CARD HANDLERS
// =============================================================================

// GetRateCard returns a crew member's rate card.
func (h *Handler) GetRateCard(w http.ResponseWriter, r *http.Request) {
	rc, err := h.Store.GetRateCard(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, engine.ErrCrewNotFound) {
		writeError(w, http.StatusNotFound, "Rate card not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get rate card", err)
		return
	}
	writeJSON(w, http.StatusOK, toRateCardDTO(rc))
}

// UpdateRateCard replaces a crew member's rate card.
func (h *Handler) UpdateRateCard(w http.ResponseWriter, r *http.Request) {
	var dto RateCardDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	rc := dto.toDomain()
	if err := rc.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid rate card", err)
		return
	}

	crewID := chi.URLParam(r, "id")
	if _, err := h.Store.GetCrewMember(r.Context(), crewID); err != nil {
		writeError(w, http.StatusNotFound, "Crew member not found", nil)
		return
	}
	if err := h.Store.SaveRateCard(r.Context(), crewID, rc); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save rate card", err)
		return
	}
	writeJSON(w, http.StatusOK, toRateCardDTO(rc))
}

// =============================================================================
// ENTRY HANDLERS
// =============================================================================

// ListEntries returns the entries in a date range. Defaults to the
// current calendar month when ?from/?to are omitted.
func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	crewID := chi.URLParam(r, "id")

	now := time.Now().UTC()
	from := engine.NewDate(now.Year(), now.Month(), 1)
	to := from.EndOfMonth()

	if q := r.URL.Query().Get("from"); q != "" {
		d, err := engine.ParseDate(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid from date (use YYYY-MM-DD)", err)
			return
		}
		from = d
	}
	if q := r.URL.Query().Get("to"); q != "" {
		d, err := engine.ParseDate(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid to date (use YYYY-MM-DD)", err)
			return
		}
		to = d
	}

	entries, err := h.Store.Range(r.Context(), crewID, from, to)
	if errors.Is(err, engine.ErrInvalidRange) {
		writeError(w, http.StatusBadRequest, "Invalid range", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list entries", err)
		return
	}

	dtos := make([]EntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = toEntryDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetEntry returns one day's entry.
func (h *Handler) GetEntry(w http.ResponseWriter, r *http.Request) {
	crewID, date, ok := h.entryKey(w, r)
	if !ok {
		return
	}

	entry, err := h.Store.Get(r.Context(), crewID, date)
	if errors.Is(err, engine.ErrEntryNotFound) {
		writeError(w, http.StatusNotFound, "No entry for date", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get entry", err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryDTO(entry))
}

// PutEntry upserts one day's entry. Last writer wins per date key.
func (h *Handler) PutEntry(w http.ResponseWriter, r *http.Request) {
	crewID, date, ok := h.entryKey(w, r)
	if !ok {
		return
	}

	var dto EntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if _, err := h.Store.GetCrewMember(r.Context(), crewID); err != nil {
		writeError(w, http.StatusNotFound, "Crew member not found", nil)
		return
	}

	entry := dto.toDomain(date)
	if err := h.Store.Put(r.Context(), crewID, entry); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save entry", err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryDTO(entry))
}

// DeleteEntry removes one day's entry.
func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	crewID, date, ok := h.entryKey(w, r)
	if !ok {
		return
	}
	if err := h.Store.Delete(r.Context(), crewID, date); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete entry", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetCalculation returns the pay breakdown for one day. An incomplete
// entry calculates to all-zero - that is a state, not an error.
func (h *Handler) GetCalculation(w http.ResponseWriter, r *http.Request) {
	crewID, date, ok := h.entryKey(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	rc, err := h.Store.GetRateCard(ctx, crewID)
	if errors.Is(err, engine.ErrCrewNotFound) {
		writeError(w, http.StatusNotFound, "Rate card not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get rate card", err)
		return
	}

	entry, err := h.Store.Get(ctx, crewID, date)
	if errors.Is(err, engine.ErrEntryNotFound) {
		writeError(w, http.StatusNotFound, "No entry for date", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get entry", err)
		return
	}

	writeJSON(w, http.StatusOK, toCalculationDTO(engine.Calculate(rc, entry)))
}

// =============================================================================
// SUMMARY HANDLERS
// =============================================================================

// GetWeekSummary aggregates the Monday-anchored week containing ?anchor.
func (h *Handler) GetWeekSummary(w http.ResponseWriter, r *http.Request) {
	crewID := chi.URLParam(r, "id")

	anchor, err := engine.ParseDate(r.URL.Query().Get("anchor"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid anchor date (use YYYY-MM-DD)", err)
		return
	}

	rc, err := h.Store.GetRateCard(r.Context(), crewID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Rate card not found", nil)
		return
	}

	summary, err := engine.SummarizeWeek(r.Context(), h.Store, rc, crewID, anchor)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to summarize week", err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryDTO(summary))
}

// GetMonthSummary aggregates a calendar month given ?year and ?month.
func (h *Handler) GetMonthSummary(w http.ResponseWriter, r *http.Request) {
	crewID := chi.URLParam(r, "id")

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}
	monthNum, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		writeError(w, http.StatusBadRequest, "Invalid month (1-12)", err)
		return
	}

	rc, err := h.Store.GetRateCard(r.Context(), crewID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Rate card not found", nil)
		return
	}

	summary, err := engine.SummarizeMonth(r.Context(), h.Store, rc, crewID, year, time.Month(monthNum))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to summarize month", err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryDTO(summary))
}

// ExportWeekPDF streams the weekly timesheet as a PDF, the format crews
// hand to production payroll.
func (h *Handler) ExportWeekPDF(w http.ResponseWriter, r *http.Request) {
	crewID := chi.URLParam(r, "id")

	anchor, err := engine.ParseDate(r.URL.Query().Get("anchor"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid anchor date (use YYYY-MM-DD)", err)
		return
	}

	ctx := r.Context()
	member, err := h.Store.GetCrewMember(ctx, crewID)
	if errors.Is(err, engine.ErrCrewNotFound) {
		writeError(w, http.StatusNotFound, "Crew member not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get crew member", err)
		return
	}

	rc, err := h.Store.GetRateCard(ctx, crewID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Rate card not found", nil)
		return
	}

	summary, err := engine.SummarizeWeek(ctx, h.Store, rc, crewID, anchor)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to summarize week", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="timesheet-%s.pdf"`, summary.Start))
	if err := export.WeeklyTimesheetPDF(w, member, summary); err != nil {
		// Headers are gone; best we can do is log via the middleware chain.
		writeError(w, http.StatusInternalServerError, "Failed to render PDF", err)
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) entryKey(w http.ResponseWriter, r *http.Request) (string, engine.Date, bool) {
	crewID := chi.URLParam(r, "id")
	date, err := engine.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", err)
		return "", engine.Date{}, false
	}
	return crewID, date, true
}

func toCrewMemberDTO(m engine.CrewMember) CrewMemberDTO {
	dto := CrewMemberDTO{
		ID:         m.ID,
		Name:       m.Name,
		Role:       m.Role,
		Production: m.Production,
	}
	if !m.CreatedAt.IsZero() {
		dto.CreatedAt = m.CreatedAt.Format(time.RFC3339)
	}
	return dto
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

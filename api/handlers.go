/*
handlers.go - HTTP API handlers for the attainment dashboard

PURPOSE:
  Exposes the attainment engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Records:
    GET    /api/records               List the revenue series
                                      ?frame=&start=&end=&location=
    PUT    /api/records/{date}        Create or replace one day's entry
    DELETE /api/records/{date}        Remove one day's entry

  Targets:
    GET    /api/targets               Current target configuration
    PUT    /api/targets               Replace the target configuration

  Dashboard:
    GET    /api/dashboard/summary     Full dashboard payload
                                      ?frame=&start=&end=&location=

  Health:
    GET    /api/health                Liveness probe

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input
  3. Call domain logic (service, factory)
  4. Serialize response
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Unknown routes
  - 500: Internal errors
  The engine's sentinel errors classify 400 vs 500; see attain/errors.go.

SECURITY NOTE:
  Currently NO authentication or authorization. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/lumen/attainment-engine/attain"
	"github.com/lumen/attainment-engine/factory"
	"github.com/lumen/attainment-engine/report"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Service *report.DashboardService
	Factory *factory.TargetFactory
	Logger  *logrus.Logger
}

// NewHandler creates a new handler around the dashboard service.
func NewHandler(svc *report.DashboardService, logger *logrus.Logger) *Handler {
	return &Handler{
		Service: svc,
		Factory: factory.NewTargetFactory(),
		Logger:  logger,
	}
}

// =============================================================================
// RECORD HANDLERS
// =============================================================================

// ListRecords returns the revenue series sorted ascending. Without a
// frame parameter the whole series is returned; with one, the same
// frame semantics as the dashboard summary apply.
// GET /api/records?frame=&start=&end=&location=
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	var (
		records []attain.RevenueRecord
		err     error
	)
	if r.URL.Query().Get("frame") == "" {
		records, err = h.Service.ListRecords(r.Context())
	} else {
		var q report.SummaryQuery
		q, err = summaryQueryFromURL(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid frame selection", err)
			return
		}
		records, err = h.Service.FilteredRecords(r.Context(), q)
	}
	if err != nil {
		h.writeServiceError(w, "Failed to list records", err)
		return
	}

	dtos := make([]RecordDTO, len(records))
	for i, rec := range records {
		dtos[i] = toRecordDTO(rec)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// UpsertRecord creates or replaces the entry for one date.
// PUT /api/records/{date}
func (h *Handler) UpsertRecord(w http.ResponseWriter, r *http.Request) {
	d, err := attain.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}

	var req UpsertRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	rec := attain.RevenueRecord{
		Date:      d,
		LocationA: decimal.NewFromFloat(req.LocationA),
		LocationB: decimal.NewFromFloat(req.LocationB),
	}
	if err := h.Service.UpsertRecord(r.Context(), rec); err != nil {
		h.writeServiceError(w, "Failed to save record", err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordDTO(rec))
}

// DeleteRecord removes the entry for one date. Deleting a date with no
// entry succeeds.
// DELETE /api/records/{date}
func (h *Handler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	d, err := attain.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}

	if err := h.Service.DeleteRecord(r.Context(), d); err != nil {
		h.writeServiceError(w, "Failed to delete record", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// TARGET HANDLERS
// =============================================================================

// GetTargets returns the current target configuration. A store that has
// never been written returns an all-zero configuration.
// GET /api/targets
func (h *Handler) GetTargets(w http.ResponseWriter, r *http.Request) {
	config, err := h.Service.TargetConfig(r.Context())
	if err != nil {
		h.writeServiceError(w, "Failed to load targets", err)
		return
	}
	writeJSON(w, http.StatusOK, h.Factory.ToJSON(config))
}

// PutTargets validates and replaces the target configuration.
// PUT /api/targets
func (h *Handler) PutTargets(w http.ResponseWriter, r *http.Request) {
	var payload factory.TargetConfigJSON
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	config, err := h.Factory.FromJSON(payload)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid target configuration", err)
		return
	}

	if err := h.Service.SaveTargetConfig(r.Context(), config); err != nil {
		h.writeServiceError(w, "Failed to save targets", err)
		return
	}
	writeJSON(w, http.StatusOK, h.Factory.ToJSON(config))
}

// =============================================================================
// DASHBOARD HANDLERS
// =============================================================================

// GetSummary computes the full dashboard payload for the requested frame.
// GET /api/dashboard/summary?frame=this_week&location=both
// Custom frames add &start=YYYY-MM-DD&end=YYYY-MM-DD.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	q, err := summaryQueryFromURL(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid frame selection", err)
		return
	}

	summary, err := h.Service.Summary(r.Context(), q)
	if err != nil {
		h.writeServiceError(w, "Failed to compute summary", err)
		return
	}

	writeJSON(w, http.StatusOK, toSummaryDTO(summary))
}

func toSummaryDTO(s *report.Summary) SummaryDTO {
	dto := SummaryDTO{
		AsOf:        s.AsOf.String(),
		Frame:       string(s.Frame),
		Records:     make([]RecordDTO, len(s.Records)),
		Daily:       make([]DailyAttainmentDTO, len(s.Daily)),
		Weekly:      make([]PeriodMetricsDTO, len(s.Weekly)),
		MonthToDate: toLocationSummaryDTO(s.MonthToDate),
	}
	for i, rec := range s.Records {
		dto.Records[i] = toRecordDTO(rec)
	}
	for i, d := range s.Daily {
		dto.Daily[i] = toDailyDTO(d)
	}
	for i, p := range s.Weekly {
		dto.Weekly[i] = toPeriodDTO(p)
	}
	if s.Span != nil {
		span := toPeriodDTO(*s.Span)
		dto.Span = &span
	}
	return dto
}

// =============================================================================
// HEALTH
// =============================================================================

// Health is a liveness probe.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

// summaryQueryFromURL parses frame, location and custom bounds from the
// query string.
func summaryQueryFromURL(r *http.Request) (report.SummaryQuery, error) {
	query := r.URL.Query()

	frame, err := attain.ParseTimeFrame(query.Get("frame"))
	if err != nil {
		return report.SummaryQuery{}, fmt.Errorf("%w: %q", err, query.Get("frame"))
	}

	location, err := parseLocation(query.Get("location"))
	if err != nil {
		return report.SummaryQuery{}, err
	}

	q := report.SummaryQuery{Frame: frame, Location: location}
	if frame == attain.FrameCustom {
		start, end, err := parseCustomRange(query.Get("start"), query.Get("end"))
		if err != nil {
			return report.SummaryQuery{}, err
		}
		q.CustomStart, q.CustomEnd = start, end
	}
	return q, nil
}

func parseLocation(s string) (attain.LocationFilter, error) {
	switch s {
	case "", "both":
		return attain.LocationBoth, nil
	case "location_a":
		return attain.LocationAOnly, nil
	case "location_b":
		return attain.LocationBOnly, nil
	default:
		return attain.LocationBoth, fmt.Errorf("unknown location %q", s)
	}
}

func parseCustomRange(startStr, endStr string) (*attain.Date, *attain.Date, error) {
	if startStr == "" || endStr == "" {
		return nil, nil, fmt.Errorf("%w: start and end are required", attain.ErrInvalidRange)
	}
	start, err := attain.ParseDate(startStr)
	if err != nil {
		return nil, nil, err
	}
	end, err := attain.ParseDate(endStr)
	if err != nil {
		return nil, nil, err
	}
	return &start, &end, nil
}

// writeServiceError maps engine validation errors to 400 and everything
// else to 500, logging the latter.
func (h *Handler) writeServiceError(w http.ResponseWriter, message string, err error) {
	if attain.IsClientError(err) {
		writeError(w, http.StatusBadRequest, message, err)
		return
	}
	if h.Logger != nil {
		h.Logger.WithError(err).Error(message)
	}
	writeError(w, http.StatusInternalServerError, message, err)
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

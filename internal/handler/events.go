package handler

import (
	"net/http"
	"time"

	"github.com/eventmatch-ai/event-advisor/internal/middleware"
	"github.com/eventmatch-ai/event-advisor/internal/model"
	"github.com/eventmatch-ai/event-advisor/internal/service"
	"github.com/eventmatch-ai/event-advisor/pkg/logger"
)

// EventHandler handles event listing endpoints.
type EventHandler struct {
	service *service.EventService
	logger  *logger.Logger
}

// NewEventHandler creates a new event handler.
func NewEventHandler(svc *service.EventService, log *logger.Logger) *EventHandler {
	return &EventHandler{
		service: svc,
		logger:  log,
	}
}

// List handles GET /api/v1/events
//
// Query parameters: startDate and endDate (RFC 3339) bound the listing;
// location is a case-insensitive substring match.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter model.EventFilter

	if s := r.URL.Query().Get("startDate"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid start date format, use ISO 8601 (e.g. 2025-05-21T00:00:00Z)")
			return
		}
		filter.StartAfter = &t
	}

	if s := r.URL.Query().Get("endDate"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid end date format, use ISO 8601 (e.g. 2025-05-23T00:00:00Z)")
			return
		}
		filter.EndBefore = &t
	}

	location := r.URL.Query().Get("location")
	if err := middleware.ValidateLocation(location); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	filter.Location = location

	resp, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.WithRequest(middleware.GetCorrelationID(r.Context())).Error("failed to list events")
		writeErrorDetails(w, http.StatusInternalServerError, "failed to fetch events", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

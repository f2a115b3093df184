// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eventmatch-ai/event-advisor/internal/middleware"
	"github.com/eventmatch-ai/event-advisor/internal/model"
	"github.com/eventmatch-ai/event-advisor/internal/service"
	"github.com/eventmatch-ai/event-advisor/pkg/logger"
)

// AnalysisHandler handles the event analysis endpoint.
type AnalysisHandler struct {
	service *service.AnalysisService
	logger  *logger.Logger
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(svc *service.AnalysisService, log *logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		service: svc,
		logger:  log,
	}
}

// Analyze handles POST /api/v1/analysis
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req model.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Reject incomplete requests before any model call is made.
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := middleware.ValidateAnalysisInput(req.EventName, req.StartupDescription); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Analyze(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.WithRequest(middleware.GetCorrelationID(r.Context())).Error("analysis request failed")
		writeErrorDetails(w, http.StatusBadGateway, "failed to generate analysis", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

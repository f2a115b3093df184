package handler

import (
	"context"
	"net/http"
)

// ConnChecker reports whether the messaging connection is alive.
// *nats.Client satisfies it.
type ConnChecker interface {
	IsConnected() bool
}

// StorePinger reports whether the event store is reachable.
// *store.PostgresStore satisfies it.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	nats  ConnChecker
	store StorePinger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(nats ConnChecker, store StorePinger) *HealthHandler {
	return &HealthHandler{
		nats:  nats,
		store: store,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// Ready handles GET /ready
//
// Readiness requires both backends: a live NATS connection and a reachable
// event store.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.nats == nil || !h.nats.IsConnected() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"reason": "NATS not connected",
		})
		return
	}

	if h.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"reason": "event store not configured",
		})
		return
	}
	if err := h.store.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"reason": "event store unreachable",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

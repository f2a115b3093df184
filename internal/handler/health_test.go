package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	connected bool
}

func (f fakeConn) IsConnected() bool { return f.connected }

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(ctx context.Context) error { return f.err }

func readyStatus(t *testing.T, h *HealthHandler) (int, map[string]string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()
	h.Ready(rec, req)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealth(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(fakeConn{connected: true}, fakePinger{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestReady(t *testing.T) {
	t.Parallel()

	code, body := readyStatus(t, NewHealthHandler(fakeConn{connected: true}, fakePinger{}))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ready", body["status"])
}

func TestReady_NATSDown(t *testing.T) {
	t.Parallel()

	code, body := readyStatus(t, NewHealthHandler(fakeConn{}, fakePinger{}))
	require.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "NATS not connected", body["reason"])
}

func TestReady_StoreUnreachable(t *testing.T) {
	t.Parallel()

	pinger := fakePinger{err: errors.New("connection refused")}
	code, body := readyStatus(t, NewHealthHandler(fakeConn{connected: true}, pinger))
	require.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "event store unreachable", body["reason"])
}

package httpstatus

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/nick-rotator-bot/internal/domain"
)

type stubSource struct {
	last    domain.Outcome
	next    time.Time
	hasNext bool
	running bool
}

func (s stubSource) LastOutcome() domain.Outcome   { return s.last }
func (s stubSource) NextChange() (time.Time, bool) { return s.next, s.hasNext }
func (s stubSource) CountdownRunning() bool        { return s.running }

func do(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	srv := New("127.0.0.1:0", stubSource{}, nil)
	rec := do(t, srv.Handler(), http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestStatusBeforeFirstRotation(t *testing.T) {
	srv := New("127.0.0.1:0", stubSource{}, nil)
	rec := do(t, srv.Handler(), http.MethodGet, "/status")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"next_change":null,"countdown_running":false,"last_rotation":null}`, rec.Body.String())
}

func TestStatusWithRotation(t *testing.T) {
	at := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	src := stubSource{
		last: domain.Outcome{
			ID:        "rot-1",
			Nickname:  "Alice",
			Status:    domain.StatusRejected,
			Err:       errors.New("Missing Permissions"),
			StartedAt: at,
		},
		next:    at.Add(time.Hour),
		hasNext: true,
		running: true,
	}
	srv := New("127.0.0.1:0", src, nil)
	rec := do(t, srv.Handler(), http.MethodGet, "/status")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got struct {
		NextChange       time.Time `json:"next_change"`
		CountdownRunning bool      `json:"countdown_running"`
		LastRotation     struct {
			ID       string    `json:"id"`
			Nickname string    `json:"nickname"`
			Status   string    `json:"status"`
			Error    string    `json:"error"`
			At       time.Time `json:"at"`
		} `json:"last_rotation"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.NextChange.Equal(at.Add(time.Hour)))
	assert.True(t, got.CountdownRunning)
	assert.Equal(t, "rot-1", got.LastRotation.ID)
	assert.Equal(t, "Alice", got.LastRotation.Nickname)
	assert.Equal(t, "rejected", got.LastRotation.Status)
	assert.Equal(t, "Missing Permissions", got.LastRotation.Error)
	assert.True(t, got.LastRotation.At.Equal(at))
}

func TestMetricsRoute(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("nickrotator_rotations_total 0\n"))
	})
	srv := New("127.0.0.1:0", stubSource{}, metrics)

	rec := do(t, srv.Handler(), http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "nickrotator_rotations_total")

	noMetrics := New("127.0.0.1:0", stubSource{}, nil)
	assert.Equal(t, http.StatusNotFound, do(t, noMetrics.Handler(), http.MethodGet, "/metrics").Code)
}

func TestNonGetIsRejected(t *testing.T) {
	srv := New("127.0.0.1:0", stubSource{}, http.NotFoundHandler())
	for _, path := range []string{"/healthz", "/status", "/metrics"} {
		rec := do(t, srv.Handler(), http.MethodPost, path)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, path)
	}
}

func TestShutdownWithoutStart(t *testing.T) {
	srv := New("127.0.0.1:0", stubSource{}, nil)
	assert.NoError(t, srv.Shutdown(context.Background()))
}

func TestShutdownBeforeStartStopsServing(t *testing.T) {
	srv := New("127.0.0.1:0", stubSource{}, nil)
	require.NoError(t, srv.Shutdown(context.Background()))

	done := make(chan error, 1)
	go func() { done <- srv.Start() }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Start kept serving after Shutdown")
	}
}

func TestStartThenShutdown(t *testing.T) {
	srv := New("127.0.0.1:0", stubSource{}, nil)

	done := make(chan error, 1)
	go func() { done <- srv.Start() }()

	// Shutdown concurrente con Start, sin sincronización extra
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, srv.Shutdown(context.Background()))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after Shutdown")
	}
}

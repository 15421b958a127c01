package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/guest-order-service/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingHandler struct{}

func (pingHandler) Init(r chi.Router) {
	r.Post("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func newTestApp(t *testing.T) *application {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Config{Http: config.Http{Host: "127.0.0.1", Port: "0"}}

	a := New(logger, cfg, prometheus.NewRegistry())
	a.SetHTTPHandlers(pingHandler{})
	return a
}

func TestApplication_Routes(t *testing.T) {
	a := newTestApp(t)

	testCases := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/swagger/doc.json", wantStatus: http.StatusOK},
		{method: http.MethodPost, path: "/ping", wantStatus: http.StatusNoContent},
		{method: http.MethodGet, path: "/missing", wantStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			a.router.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestApplication_MetricsExposeHTTPCounters(t *testing.T) {
	a := newTestApp(t)

	a.router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `guest_order_service_http_requests_total{method="GET",route="/healthz",status="200"} 1`)
}

func TestApplication_StartStop(t *testing.T) {
	a := newTestApp(t)

	require.NoError(t, a.Start(context.Background()))
	require.NoError(t, a.Stop())
}

func TestApplication_StartFailsOnBadAddr(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Config{Http: config.Http{Host: "127.0.0.1", Port: "-1"}}

	a := New(logger, cfg, prometheus.NewRegistry())
	assert.Error(t, a.Start(context.Background()))
}

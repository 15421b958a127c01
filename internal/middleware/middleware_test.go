package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()

	r := chi.NewRouter()
	r.Use(Metrics(reg))
	r.Post("/guest-order", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for range 3 {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/guest-order", nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope/123", nil))

	expected := `
# HELP guest_order_service_http_requests_total Total number of HTTP requests processed.
# TYPE guest_order_service_http_requests_total counter
guest_order_service_http_requests_total{method="GET",route="unmatched",status="404"} 1
guest_order_service_http_requests_total{method="POST",route="/guest-order",status="404"} 3
`
	err := testutil.GatherAndCompare(reg, bytes.NewBufferString(expected), "guest_order_service_http_requests_total")
	assert.NoError(t, err)
}

func TestLogger_DoesNotLogBody(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	h := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	secret := "deadbeef"
	req := httptest.NewRequest(http.MethodPost, "/guest-order", bytes.NewBufferString(`{"accessToken":"`+secret+`"}`))
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "status=500")
	assert.Contains(t, out, "path=/guest-order")
	assert.NotContains(t, out, secret)
}

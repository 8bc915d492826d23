package api

import (
	"net/http"
	"strings"

	"github.com/okian/podium/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReadinessFunc reports whether the dataset is loaded and queryable.
type ReadinessFunc func() bool

// HealthHandler handles health check requests.
type HealthHandler struct {
	ready   ReadinessFunc
	metrics http.Handler
}

// NewHealthHandler creates a new health handler. A nil ready is treated as
// always ready.
func NewHealthHandler(ready ReadinessFunc) *HealthHandler {
	if ready == nil {
		ready = func() bool { return true }
	}
	return &HealthHandler{
		ready:   ready,
		metrics: promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}),
	}
}

type healthResponse struct {
	Status string `json:"status"`
}

// HandleHealth handles GET /healthz requests.
// With "Accept: application/json" it answers the readiness state, otherwise
// it exposes the Prometheus metrics.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if !strings.Contains(r.Header.Get("Accept"), "application/json") {
		h.metrics.ServeHTTP(w, r)
		return
	}
	if !h.ready() {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "loading"})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	CountryDependencies
	BreakdownDependencies
	TrendDependencies
	SeasonDependencies
	TallyDependencies
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	countryHandler   *CountryHandler
	breakdownHandler *BreakdownHandler
	trendHandler     *TrendHandler
	seasonHandler    *SeasonHandler
	tallyHandler     *TallyHandler
	dashboardHandler *dashboardHandler
	limiter          *RateLimiter
	log              logger.Logger
}

// ServerOption configures optional Server behaviour.
type ServerOption func(*Server)

// WithRateLimit limits each client to rps requests per second on the query
// endpoints. rps <= 0 leaves limiting off.
func WithRateLimit(rps float64, burst int) ServerOption {
	return func(s *Server) {
		if rps > 0 {
			s.limiter = NewRateLimiter(rps, burst)
		}
	}
}

// StatsReadiness is a StatsProvider that also reports readiness to /healthz.
type StatsReadiness interface {
	StatsProvider
	Ready() bool
}

// NewServer creates a new API server with all handlers. maxLimit caps the
// limit accepted by /tally.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLimit int, opts ...ServerOption) *Server {
	var ready ReadinessFunc
	if sr, ok := statsProvider.(StatsReadiness); ok {
		ready = sr.Ready
	}
	s := &Server{
		healthHandler:    NewHealthHandler(ready),
		statsHandler:     NewStatsHandler(statsProvider),
		countryHandler:   NewCountryHandler(deps),
		breakdownHandler: NewBreakdownHandler(deps),
		trendHandler:     NewTrendHandler(deps),
		seasonHandler:    NewSeasonHandler(deps),
		tallyHandler:     NewTallyHandler(deps, maxLimit),
		dashboardHandler: newdashboardHandler(),
		log:              logger.Named("api"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	wrap := func(h http.HandlerFunc, endpoint string) http.HandlerFunc {
		return RequestIDMiddleware(MetricsMiddleware(RateLimitMiddleware(h, s.limiter), endpoint), s.log)
	}

	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", wrap(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/country/", wrap(s.countryHandler.HandleGetCountry, "country"))
	mux.HandleFunc("/breakdown", wrap(s.breakdownHandler.HandleGetBreakdown, "breakdown"))
	mux.HandleFunc("/trend", wrap(s.trendHandler.HandleGetTrend, "trend"))
	mux.HandleFunc("/years", wrap(s.seasonHandler.HandleGetYears, "years"))
	mux.HandleFunc("/regions", wrap(s.seasonHandler.HandleGetRegions, "regions"))
	mux.HandleFunc("/tally", wrap(s.tallyHandler.HandleGetTally, "tally"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeQueryError translates query outcomes to HTTP statuses.
func writeQueryError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, types.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, types.ErrNoData):
		writeError(w, http.StatusNotFound, "no_data", err)
	case errors.Is(err, types.ErrUnknownSeason):
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
	case errors.Is(err, types.ErrNotStarted):
		writeError(w, http.StatusServiceUnavailable, "unavailable", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}

// seasonParam returns the season query parameter; empty selects the
// service default.
func seasonParam(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("season"))
}

// intParam parses a required integer query parameter.
func intParam(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, errors.New("missing " + name)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid " + name + "; must be an integer")
	}
	return n, nil
}

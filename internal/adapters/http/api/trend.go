package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/podium/internal/domain/types"
)

// TrendDependencies defines the interface for trend series.
type TrendDependencies interface {
	Trend(ctx context.Context, season, region string) (types.Trend, error)
}

// TrendHandler handles trend requests.
type TrendHandler struct {
	deps TrendDependencies
}

// NewTrendHandler creates a new trend handler.
func NewTrendHandler(deps TrendDependencies) *TrendHandler {
	return &TrendHandler{deps: deps}
}

// HandleGetTrend handles GET /trend?region=R&season=S requests. An unknown
// region answers 200 with an empty series.
func (h *TrendHandler) HandleGetTrend(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_trend"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	region := strings.TrimSpace(r.URL.Query().Get("region"))
	if region == "" {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("missing region")))
		return
	}
	trend, err := h.deps.Trend(r.Context(), seasonParam(r), region)
	if err != nil {
		writeQueryError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, trend)
}

package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/podium/internal/domain/types"
)

// BreakdownDependencies defines the interface for year/region breakdowns.
type BreakdownDependencies interface {
	Breakdown(ctx context.Context, season string, year int, region string) (types.YearBreakdown, error)
}

// BreakdownHandler handles breakdown requests.
type BreakdownHandler struct {
	deps BreakdownDependencies
}

// NewBreakdownHandler creates a new breakdown handler.
func NewBreakdownHandler(deps BreakdownDependencies) *BreakdownHandler {
	return &BreakdownHandler{deps: deps}
}

// HandleGetBreakdown handles GET /breakdown?year=Y&region=R&season=S requests.
func (h *BreakdownHandler) HandleGetBreakdown(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_breakdown"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	year, err := intParam(r, "year")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	region := strings.TrimSpace(r.URL.Query().Get("region"))
	if region == "" {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("missing region")))
		return
	}
	breakdown, err := h.deps.Breakdown(r.Context(), seasonParam(r), year, region)
	if err != nil {
		writeQueryError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, breakdown)
}

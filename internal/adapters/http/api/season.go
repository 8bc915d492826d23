package api

import (
	"context"
	"net/http"

	"github.com/okian/podium/internal/domain/types"
)

// SeasonDependencies exposes the selectors of a season.
type SeasonDependencies interface {
	YearRange(ctx context.Context, season string) (types.YearRange, error)
	Regions(ctx context.Context, season string) ([]string, error)
}

// SeasonHandler serves the year and region selectors.
type SeasonHandler struct {
	deps SeasonDependencies
}

// NewSeasonHandler creates a new season handler.
func NewSeasonHandler(deps SeasonDependencies) *SeasonHandler {
	return &SeasonHandler{deps: deps}
}

// HandleGetYears handles GET /years?season=S requests.
func (h *SeasonHandler) HandleGetYears(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_years"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	years, err := h.deps.YearRange(r.Context(), seasonParam(r))
	if err != nil {
		writeQueryError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, years)
}

type regionsResponse struct {
	Season  string   `json:"season"`
	Regions []string `json:"regions"`
}

// HandleGetRegions handles GET /regions?season=S requests.
func (h *SeasonHandler) HandleGetRegions(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_regions"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	season := seasonParam(r)
	regions, err := h.deps.Regions(r.Context(), season)
	if err != nil {
		writeQueryError(w, op, err)
		return
	}
	if season == "" {
		season = "Summer"
	}
	writeJSON(w, http.StatusOK, regionsResponse{Season: season, Regions: regions})
}

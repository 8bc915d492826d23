package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/podium/internal/domain/types"
)

// CountryDependencies defines the interface for country lookups.
type CountryDependencies interface {
	LookupCountry(ctx context.Context, season, code string) (types.CountryMedals, error)
}

// CountryHandler handles country lookup requests.
type CountryHandler struct {
	deps CountryDependencies
}

// NewCountryHandler creates a new country handler.
func NewCountryHandler(deps CountryDependencies) *CountryHandler {
	return &CountryHandler{deps: deps}
}

// HandleGetCountry handles GET /country/{noc}?season=S requests.
func (h *CountryHandler) HandleGetCountry(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_country"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	code := strings.TrimSpace(strings.TrimPrefix(r.URL.Path, "/country/"))
	if code == "" || strings.Contains(code, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("missing NOC code")))
		return
	}
	medals, err := h.deps.LookupCountry(r.Context(), seasonParam(r), code)
	if err != nil {
		writeQueryError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, medals)
}

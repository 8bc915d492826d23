package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/okian/podium/internal/domain/types"
)

// TallyDependencies defines the interface for the ranked medal table.
type TallyDependencies interface {
	MedalTable(ctx context.Context, season string, limit int) (types.MedalTable, error)
}

// TallyHandler handles medal table requests.
type TallyHandler struct {
	deps     TallyDependencies
	maxLimit int
}

// NewTallyHandler creates a new tally handler.
func NewTallyHandler(deps TallyDependencies, maxLimit int) *TallyHandler {
	return &TallyHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// HandleGetTally handles GET /tally?limit=N&season=S requests. limit
// defaults to maxLimit.
func (h *TallyHandler) HandleGetTally(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_tally"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	n := h.maxLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		n, err = strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
	}
	if h.maxLimit > 0 && n > h.maxLimit {
		writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
		return
	}
	table, err := h.deps.MedalTable(r.Context(), seasonParam(r), n)
	if err != nil {
		writeQueryError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

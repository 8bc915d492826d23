package api

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/dashboard.html
var staticFS embed.FS

// dashboardHandler serves the embedded medal dashboard page.
type dashboardHandler struct {
	files fs.FS
}

func newdashboardHandler() *dashboardHandler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		sub = staticFS
	}
	return &dashboardHandler{files: sub}
}

// HandleDashboard handles GET /dashboard requests. The page drives the JSON
// endpoints from the browser.
func (h *dashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	http.ServeFileFS(w, r, h.files, "dashboard.html")
}

// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/flamesblue/omsk-gallery/internal/adapters/dbprobe"
)

// ProbeDependencies defines the interface for the database diagnostic.
type ProbeDependencies interface {
	ProbeDatabase(ctx context.Context) dbprobe.Report
}

// DBTestHandler handles database diagnostic requests.
type DBTestHandler struct {
	deps ProbeDependencies
}

// NewDBTestHandler creates a new database diagnostic handler.
func NewDBTestHandler(deps ProbeDependencies) *DBTestHandler {
	return &DBTestHandler{deps: deps}
}

// HandleDBTest handles GET /test requests. The probe embeds every
// failure in the report itself, so this always answers 200.
func (h *DBTestHandler) HandleDBTest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.ProbeDatabase(r.Context()))
}

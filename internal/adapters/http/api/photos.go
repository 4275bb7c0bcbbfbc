// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/flamesblue/omsk-gallery/internal/domain/model"
)

// PhotosDependencies defines the interface for the photos endpoint.
type PhotosDependencies interface {
	Photos(ctx context.Context) []model.Image
}

// photosResponse wraps the aggregated images.
type photosResponse struct {
	Items []model.Image `json:"items"`
}

// PhotosHandler handles curated photo listing requests.
type PhotosHandler struct {
	deps PhotosDependencies
}

// NewPhotosHandler creates a new photos handler.
func NewPhotosHandler(deps PhotosDependencies) *PhotosHandler {
	return &PhotosHandler{deps: deps}
}

// HandleGetPhotos handles GET /api/omsk/photos requests. The aggregation
// is best-effort: failed queries shrink the result instead of failing
// the request, so this handler never reports an error.
func (h *PhotosHandler) HandleGetPhotos(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	items := h.deps.Photos(r.Context())
	if items == nil {
		items = []model.Image{}
	}
	writeJSON(w, http.StatusOK, photosResponse{Items: items})
}

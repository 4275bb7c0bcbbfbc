// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/flamesblue/omsk-gallery/internal/adapters/dbprobe"
	"github.com/flamesblue/omsk-gallery/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Photos runs the curated image aggregation.
	Photos(ctx context.Context) []model.Image

	// ProbeDatabase reports optional database connectivity.
	ProbeDatabase(ctx context.Context) dbprobe.Report

	// GetStats exposes service statistics.
	GetStats() map[string]interface{}
}

// Server wires HTTP routes for the gallery API.
type Server struct {
	rootHandler    *GreetingHandler
	helloHandler   *GreetingHandler
	photosHandler  *PhotosHandler
	simInfoHandler *SimInfoHandler
	dbTestHandler  *DBTestHandler
	statsHandler   *StatsHandler
	healthHandler  *HealthHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		rootHandler:    NewGreetingHandler("Hello from the Omsk Gallery backend!", true),
		helloHandler:   NewGreetingHandler("Hello from the backend API!", false),
		photosHandler:  NewPhotosHandler(deps),
		simInfoHandler: NewSimInfoHandler(),
		dbTestHandler:  NewDBTestHandler(deps),
		statsHandler:   NewStatsHandler(deps),
		healthHandler:  NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to mux. Every route goes through the
// request-id, CORS and metrics middleware.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/", chain(s.rootHandler.HandleGreeting, "root"))
	mux.HandleFunc("/api/hello", chain(s.helloHandler.HandleGreeting, "hello"))
	mux.HandleFunc("/api/omsk/photos", chain(s.photosHandler.HandleGetPhotos, "photos"))
	mux.HandleFunc("/api/sim-info", chain(s.simInfoHandler.HandleGetSimInfo, "sim_info"))
	mux.HandleFunc("/test", chain(s.dbTestHandler.HandleDBTest, "db_test"))
	mux.HandleFunc("/stats", chain(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/healthz", chain(s.healthHandler.HandleHealth, "healthz"))
}

// chain applies the standard middleware stack to a handler.
func chain(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return RequestIDMiddleware(CORSMiddleware(MetricsMiddleware(next, endpoint)))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

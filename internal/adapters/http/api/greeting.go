// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// greetingResponse is the payload for the greeting endpoints.
type greetingResponse struct {
	Message string `json:"message"`
}

// GreetingHandler serves a fixed greeting message.
type GreetingHandler struct {
	message  string
	rootOnly bool
}

// NewGreetingHandler creates a greeting handler. When rootOnly is set the
// handler answers only the exact "/" path; the catch-all mux pattern
// would otherwise swallow every unregistered path.
func NewGreetingHandler(message string, rootOnly bool) *GreetingHandler {
	return &GreetingHandler{message: message, rootOnly: rootOnly}
}

// HandleGreeting handles GET requests for the greeting endpoints.
func (h *GreetingHandler) HandleGreeting(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	if h.rootOnly && r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, greetingResponse{Message: h.message})
}

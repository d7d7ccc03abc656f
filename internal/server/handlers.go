package server

import (
	"fmt"
	"net/http"
)

// Greeting is the fixed response body for the root route
const Greeting = "Hello from Typescript express server"

// handleRoot handles the root route. Only GET and HEAD on exactly "/" are
// served; anything else gets the default 404, matching the behavior of an
// application with a single registered route.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, Greeting)
}

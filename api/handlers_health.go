package api

import (
	"net/http"
	"time"
)

// handleHealth responds with 200 OK while the process serves requests.
// Upstream reachability is not probed, /metrics carries request outcomes.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":   "ok",
		"upstream": "birdeye",
	}
	if !s.startedAt.IsZero() {
		status["uptime_seconds"] = int64(time.Since(s.startedAt).Seconds())
	}

	s.sendJSONResponse(w, status)
}

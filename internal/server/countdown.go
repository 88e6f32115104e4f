package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"astro-booking/internal/sky"
)

// CountdownHandler streams the time left until ?target=<RFC3339> as
// server-sent events, one per tick. The stream ends once the target passes
// or the client goes away.
func (s *Server) CountdownHandler(w http.ResponseWriter, r *http.Request) {
	target, err := time.Parse(time.RFC3339, r.URL.Query().Get("target"))
	if err != nil {
		badRequest(w, "Invalid target", err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}
	// Streams outlive the server's write timeout.
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
		log.Printf("Countdown stream keeps the server write deadline: %v", err)
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	for left := range sky.Countdown(r.Context(), target, s.countdownInterval, s.now) {
		fmt.Fprintf(w, "data: %s\n\n", left)
		flusher.Flush()
	}
}

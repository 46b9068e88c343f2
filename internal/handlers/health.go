package handlers

import "net/http"

// Health is the liveness probe. The tracing middleware leaves it untraced so
// it stays cheap enough to poll aggressively.
func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

package handlers

import (
	"encoding/json"
	"net/http"

	"pluto-gallery/internal/logging"
)

// writeJSON encodes v as JSON and writes it to the response writer.
// Encoding errors are logged; the status line has already been sent.
func writeJSON(w http.ResponseWriter, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode JSON response: %v", err)
	}
}

// NotFoundJSON answers unknown API routes with a JSON error body.
func NotFoundJSON(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, "not found: "+r.URL.Path, http.StatusNotFound)
}

func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	writeJSON(w, map[string]string{"error": message})
}

// Package http provides shared response helpers for the API handlers.
package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
)

// WriteJSON encodes v as the JSON response body
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// Error sends a JSON error response
func Error(w http.ResponseWriter, message string, statusCode int) {
	log.Printf("Error: %s (status %d)", message, statusCode)
	WriteJSON(w, statusCode, map[string]string{"error": message})
}

// DecodeJSON decodes the request body into v, limiting the body size to
// keep a hostile payload from exhausting memory.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20)).Decode(v)
}

// YearLabels maps series indexes to 1-based display labels ("Year 1",
// "Year 2", ...). Indexes stay 0-based everywhere inside the engine.
func YearLabels(years int) []string {
	labels := make([]string, years)
	for i := range labels {
		labels[i] = "Year " + strconv.Itoa(i+1)
	}
	return labels
}

// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP handler groups behind the JSON
// API and the public site. Each group wraps its stores and is wired to
// routes by the router package.
package handlers

import (
	"encoding/json"
	"net/http"
)

// writeJSON serializes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response in the API's {error} shape.
func writeError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}

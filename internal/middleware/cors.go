// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"strings"
)

// CORS allows the admin SPA to call the API from a different origin.
// Requests from localhost get the configured dev origin (the Vite dev
// server); anything else is reflected back, since the public site and
// admin portal may be served from arbitrary hosts in front of the API.
// Credentials are always allowed because auth rides on the session
// cookie. Preflight requests terminate here with an empty 200.
func CORS(devOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			h := w.Header()
			if origin != "" {
				if isLocalRequest(r) {
					h.Set("Access-Control-Allow-Origin", devOrigin)
				} else {
					h.Set("Access-Control-Allow-Origin", origin)
				}
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Content-Type")
				h.Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// isLocalRequest reports whether the request came from the same machine.
func isLocalRequest(r *http.Request) bool {
	host := r.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}
	host = strings.Trim(host, "[]")
	return host == "127.0.0.1" || host == "::1" || host == "localhost"
}

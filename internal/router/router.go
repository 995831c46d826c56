// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// CMS server. Public pages and the JSON API share one chi router; the
// admin SPA talks to /api, everything else renders the public site.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"parishcms/internal/handlers"
	"parishcms/internal/middleware"
	"parishcms/internal/session"
)

// New creates and returns the configured chi router with all middleware
// and route groups wired up. loginLimiter throttles credential guessing
// on the login endpoint.
func New(
	sessionStore *session.Store,
	devOrigin string,
	loginLimiter *middleware.RateLimiter,
	pages *handlers.Pages,
	public *handlers.Public,
	settings *handlers.Settings,
	media *handlers.Media,
	events *handlers.Events,
	sermons *handlers.Sermons,
	bulletins *handlers.Bulletins,
	reset *handlers.Reset,
	auth *handlers.Auth,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.CORS(devOrigin))
	r.Use(middleware.LoadSession(sessionStore))

	r.MethodNotAllowed(methodNotAllowedHandler)

	// Health check — no auth.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Auth endpoints issue the session cookie the gate looks for.
		r.Route("/auth", func(r chi.Router) {
			r.With(loginLimiter.Middleware).Post("/login", auth.Login)
			r.Post("/logout", auth.Logout)
			r.Get("/me", auth.Me)
			r.Post("/totp/setup", auth.TOTPSetup)
			r.Post("/totp/verify", auth.TOTPVerify)
		})

		// Page Store API. Reads are open; the SPA editor's writes go
		// through the auth gate.
		r.Route("/pages", func(r chi.Router) {
			r.Get("/", pages.List)
			r.Get("/{slugOrId}", pages.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Post("/", pages.Create)
				r.Get("/{id}/editor", pages.Editor)
				r.Put("/{id}", pages.Update)
				r.Delete("/{id}", pages.Delete)
			})
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/{section}", settings.Get)
			r.With(middleware.RequireAuth).Put("/{section}", settings.Put)
		})

		// Media library — admin only.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/media", media.List)
			r.Delete("/media", media.Delete)
			r.Post("/upload", media.Upload)
			r.With(middleware.RequireAdmin).Post("/reset-website", reset.Website)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", events.List)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Post("/", events.Create)
				r.Put("/{id}", events.Update)
				r.Delete("/{id}", events.Delete)
			})
		})

		r.Route("/sermons", func(r chi.Router) {
			r.Get("/", sermons.List)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Post("/", sermons.Create)
				r.Put("/{id}", sermons.Update)
				r.Delete("/{id}", sermons.Delete)
			})
		})

		r.Route("/bulletins", func(r chi.Router) {
			r.Get("/", bulletins.List)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Post("/", bulletins.Create)
				r.Put("/{id}", bulletins.Update)
				r.Delete("/{id}", bulletins.Delete)
			})
		})
	})

	// Public site, rendered from stored blocks.
	r.Get("/", public.Homepage)
	r.Get("/{slug}", public.Page)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// methodNotAllowedHandler keeps 405s in the API's JSON error shape.
func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	w.Write([]byte(`{"error":"Method not allowed"}`))
}

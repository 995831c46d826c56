// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"parishcms/internal/cache"
	"parishcms/internal/models"
	"parishcms/internal/store"
)

// Settings groups the per-section settings handlers. Sections form a
// closed set; anything else is a 404.
type Settings struct {
	settings  *store.SettingStore
	pageCache *cache.PageCache
}

// NewSettings creates a new Settings handler group.
func NewSettings(settings *store.SettingStore, pageCache *cache.PageCache) *Settings {
	return &Settings{settings: settings, pageCache: pageCache}
}

// Get returns one settings section as its raw JSON document.
func (h *Settings) Get(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	if !models.SettingSections[section] {
		writeError(w, "Unknown settings section.", http.StatusNotFound)
		return
	}

	setting, err := h.settings.GetSection(section)
	if err != nil {
		slog.Error("get settings failed", "error", err, "section", section)
		writeError(w, "Failed to load settings.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(setting.Data)
}

// Put replaces one settings section with the request body, which must
// be a JSON object. Site settings feed the public layout, so the page
// cache is cleared.
func (h *Settings) Put(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	if !models.SettingSections[section] {
		writeError(w, "Unknown settings section.", http.StatusNotFound)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeError(w, "Failed to read body.", http.StatusBadRequest)
		return
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		writeError(w, "Settings must be a JSON object.", http.StatusBadRequest)
		return
	}

	if err := h.settings.SetSection(section, body); err != nil {
		slog.Error("set settings failed", "error", err, "section", section)
		writeError(w, "Failed to save settings.", http.StatusInternalServerError)
		return
	}

	h.pageCache.InvalidateAll(r.Context())

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Settings saved.",
	})
}

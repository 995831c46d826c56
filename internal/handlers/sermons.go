// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"parishcms/internal/markdown"
	"parishcms/internal/models"
	"parishcms/internal/sanitize"
	"parishcms/internal/store"
)

// Sermons groups the sermon archive CRUD handlers.
type Sermons struct {
	sermons *store.SermonStore
}

// NewSermons creates a new Sermons handler group.
func NewSermons(sermons *store.SermonStore) *Sermons {
	return &Sermons{sermons: sermons}
}

// sermonView is a sermon plus its notes rendered from Markdown to
// sanitized HTML.
type sermonView struct {
	models.Sermon
	NotesHTML string `json:"notes_html"`
}

func newSermonView(m models.Sermon) sermonView {
	v := sermonView{Sermon: m}
	rendered, err := markdown.ToHTML(m.Notes)
	if err != nil {
		slog.Warn("sermon markdown render failed", "error", err, "id", m.ID)
		return v
	}
	v.NotesHTML = sanitize.HTML(rendered)
	return v
}

// List returns sermons, most recently preached first. limit caps the
// result when given.
func (h *Sermons) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	sermons, err := h.sermons.List(limit)
	if err != nil {
		slog.Error("list sermons failed", "error", err)
		writeError(w, "Failed to load sermons.", http.StatusInternalServerError)
		return
	}

	views := []sermonView{}
	for _, m := range sermons {
		views = append(views, newSermonView(m))
	}
	writeJSON(w, http.StatusOK, map[string]any{"sermons": views})
}

// sermonRequest is the create/update body for sermons.
type sermonRequest struct {
	Title      string    `json:"title"`
	Speaker    string    `json:"speaker"`
	Scripture  string    `json:"scripture"`
	Notes      string    `json:"notes"`
	VideoURL   string    `json:"video_url"`
	AudioURL   string    `json:"audio_url"`
	PreachedOn time.Time `json:"preached_on"`
}

// Create inserts a new sermon.
func (h *Sermons) Create(w http.ResponseWriter, r *http.Request) {
	var req sermonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body.", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		writeError(w, "Title is required.", http.StatusBadRequest)
		return
	}
	if req.PreachedOn.IsZero() {
		writeError(w, "Preached-on date is required.", http.StatusBadRequest)
		return
	}

	created, err := h.sermons.Create(&models.Sermon{
		Title:      req.Title,
		Speaker:    req.Speaker,
		Scripture:  req.Scripture,
		Notes:      req.Notes,
		VideoURL:   req.VideoURL,
		AudioURL:   req.AudioURL,
		PreachedOn: req.PreachedOn,
	})
	if err != nil {
		slog.Error("create sermon failed", "error", err)
		writeError(w, "Failed to create sermon.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"id":      created.ID,
	})
}

// Update replaces a sermon's fields.
func (h *Sermons) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, "Invalid sermon ID.", http.StatusBadRequest)
		return
	}

	sermon, err := h.sermons.FindByID(id)
	if err != nil {
		slog.Error("find sermon failed", "error", err, "id", id)
		writeError(w, "Failed to load sermon.", http.StatusInternalServerError)
		return
	}
	if sermon == nil {
		writeError(w, "Sermon not found.", http.StatusNotFound)
		return
	}

	var req sermonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body.", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		writeError(w, "Title is required.", http.StatusBadRequest)
		return
	}

	sermon.Title = req.Title
	sermon.Speaker = req.Speaker
	sermon.Scripture = req.Scripture
	sermon.Notes = req.Notes
	sermon.VideoURL = req.VideoURL
	sermon.AudioURL = req.AudioURL
	if !req.PreachedOn.IsZero() {
		sermon.PreachedOn = req.PreachedOn
	}

	if err := h.sermons.Update(sermon); err != nil {
		slog.Error("update sermon failed", "error", err, "id", id)
		writeError(w, "Failed to update sermon.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Sermon updated.",
	})
}

// Delete removes a sermon by ID.
func (h *Sermons) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, "Invalid sermon ID.", http.StatusBadRequest)
		return
	}

	if err := h.sermons.Delete(id); err != nil {
		slog.Error("delete sermon failed", "error", err, "id", id)
		writeError(w, "Failed to delete sermon.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Sermon deleted.",
	})
}

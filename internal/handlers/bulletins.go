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

	"parishcms/internal/models"
	"parishcms/internal/store"
)

// Bulletins groups the weekly bulletin CRUD handlers. The PDF itself
// goes through the media upload endpoint; bulletins only track the
// resulting URL.
type Bulletins struct {
	bulletins *store.BulletinStore
}

// NewBulletins creates a new Bulletins handler group.
func NewBulletins(bulletins *store.BulletinStore) *Bulletins {
	return &Bulletins{bulletins: bulletins}
}

// List returns all bulletins, most recent service date first.
func (h *Bulletins) List(w http.ResponseWriter, r *http.Request) {
	bulletins, err := h.bulletins.List()
	if err != nil {
		slog.Error("list bulletins failed", "error", err)
		writeError(w, "Failed to load bulletins.", http.StatusInternalServerError)
		return
	}
	if bulletins == nil {
		bulletins = []models.Bulletin{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"bulletins": bulletins})
}

// bulletinRequest is the create/update body for bulletins.
type bulletinRequest struct {
	Title       string    `json:"title"`
	ServiceDate time.Time `json:"service_date"`
	FileURL     string    `json:"file_url"`
}

// Create inserts a new bulletin.
func (h *Bulletins) Create(w http.ResponseWriter, r *http.Request) {
	var req bulletinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body.", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		writeError(w, "Title is required.", http.StatusBadRequest)
		return
	}
	if req.ServiceDate.IsZero() {
		writeError(w, "Service date is required.", http.StatusBadRequest)
		return
	}

	created, err := h.bulletins.Create(&models.Bulletin{
		Title:       req.Title,
		ServiceDate: req.ServiceDate,
		FileURL:     req.FileURL,
	})
	if err != nil {
		slog.Error("create bulletin failed", "error", err)
		writeError(w, "Failed to create bulletin.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"id":      created.ID,
	})
}

// Update replaces a bulletin's fields.
func (h *Bulletins) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, "Invalid bulletin ID.", http.StatusBadRequest)
		return
	}

	bulletin, err := h.bulletins.FindByID(id)
	if err != nil {
		slog.Error("find bulletin failed", "error", err, "id", id)
		writeError(w, "Failed to load bulletin.", http.StatusInternalServerError)
		return
	}
	if bulletin == nil {
		writeError(w, "Bulletin not found.", http.StatusNotFound)
		return
	}

	var req bulletinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body.", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		writeError(w, "Title is required.", http.StatusBadRequest)
		return
	}

	bulletin.Title = req.Title
	bulletin.FileURL = req.FileURL
	if !req.ServiceDate.IsZero() {
		bulletin.ServiceDate = req.ServiceDate
	}

	if err := h.bulletins.Update(bulletin); err != nil {
		slog.Error("update bulletin failed", "error", err, "id", id)
		writeError(w, "Failed to update bulletin.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Bulletin updated.",
	})
}

// Delete removes a bulletin by ID.
func (h *Bulletins) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, "Invalid bulletin ID.", http.StatusBadRequest)
		return
	}

	if err := h.bulletins.Delete(id); err != nil {
		slog.Error("delete bulletin failed", "error", err, "id", id)
		writeError(w, "Failed to delete bulletin.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Bulletin deleted.",
	})
}

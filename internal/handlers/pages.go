// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"parishcms/internal/blocks"
	"parishcms/internal/cache"
	"parishcms/internal/models"
	"parishcms/internal/slug"
	"parishcms/internal/store"
)

// Pages groups the page CRUD handlers used by the admin editor.
type Pages struct {
	pages     *store.PageStore
	pageCache *cache.PageCache
}

// NewPages creates a new Pages handler group.
func NewPages(pages *store.PageStore, pageCache *cache.PageCache) *Pages {
	return &Pages{pages: pages, pageCache: pageCache}
}

// List returns every page, ordered by nav position then title.
func (h *Pages) List(w http.ResponseWriter, r *http.Request) {
	pages, err := h.pages.List()
	if err != nil {
		slog.Error("list pages failed", "error", err)
		writeError(w, "Failed to load pages.", http.StatusInternalServerError)
		return
	}
	if pages == nil {
		pages = []models.Page{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"pages": pages})
}

// Get returns a single page by slug or numeric ID.
func (h *Pages) Get(w http.ResponseWriter, r *http.Request) {
	param := chi.URLParam(r, "slugOrId")

	var (
		page *models.Page
		err  error
	)
	if id, convErr := strconv.ParseInt(param, 10, 64); convErr == nil {
		page, err = h.pages.FindByID(id)
	} else {
		page, err = h.pages.FindBySlug(param)
	}
	if err != nil {
		slog.Error("find page failed", "error", err, "param", param)
		writeError(w, "Failed to load page.", http.StatusInternalServerError)
		return
	}
	if page == nil {
		writeError(w, "Page not found.", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// createPageRequest is the POST /api/pages body. Pointer fields
// distinguish absent from zero so create defaults apply correctly.
type createPageRequest struct {
	Title           string  `json:"title"`
	Slug            string  `json:"slug"`
	Content         string  `json:"content"`
	MetaDescription string  `json:"meta_description"`
	IsPublished     *bool   `json:"is_published"`
	ShowInNav       *bool   `json:"show_in_nav"`
	NavOrder        *int    `json:"nav_order"`
	ShowPageHeader  *bool   `json:"show_page_header"`
}

// Create inserts a new page. The slug is generated from the title when
// absent; a taken slug or missing title is a validation error.
func (h *Pages) Create(w http.ResponseWriter, r *http.Request) {
	var req createPageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body.", http.StatusBadRequest)
		return
	}

	if req.Title == "" {
		writeError(w, "Title is required.", http.StatusBadRequest)
		return
	}

	pageSlug := req.Slug
	if pageSlug == "" {
		pageSlug = slug.Generate(req.Title)
	}

	taken, err := h.pages.SlugExists(pageSlug)
	if err != nil {
		slog.Error("slug check failed", "error", err)
		writeError(w, "Failed to create page.", http.StatusInternalServerError)
		return
	}
	if taken {
		writeError(w, "A page with this slug already exists.", http.StatusBadRequest)
		return
	}

	page := &models.Page{
		Slug:            pageSlug,
		Title:           req.Title,
		Content:         req.Content,
		MetaDescription: req.MetaDescription,
		IsPublished:     true,
		ShowInNav:       false,
		NavOrder:        models.DefaultNavOrder,
		ShowPageHeader:  true,
	}
	if page.Content == "" {
		page.Content = "[]"
	}
	if req.IsPublished != nil {
		page.IsPublished = *req.IsPublished
	}
	if req.ShowInNav != nil {
		page.ShowInNav = *req.ShowInNav
	}
	if req.NavOrder != nil {
		page.NavOrder = *req.NavOrder
	}
	if req.ShowPageHeader != nil {
		page.ShowPageHeader = *req.ShowPageHeader
	}

	created, err := h.pages.Create(page)
	if err != nil {
		slog.Error("create page failed", "error", err, "slug", pageSlug)
		writeError(w, "Failed to create page.", http.StatusInternalServerError)
		return
	}

	h.pageCache.InvalidateAll(r.Context())

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"id":      created.ID,
		"slug":    created.Slug,
	})
}

// Editor returns the page's blocks rendered as inline-editable canvas
// fragments, one per block in order, for the visual editor. Legacy
// raw-HTML content comes back as a single fragment.
func (h *Pages) Editor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, "Invalid page ID.", http.StatusBadRequest)
		return
	}

	page, err := h.pages.FindByID(id)
	if err != nil {
		slog.Error("find page failed", "error", err, "id", id)
		writeError(w, "Failed to load page.", http.StatusInternalServerError)
		return
	}
	if page == nil {
		writeError(w, "Page not found.", http.StatusNotFound)
		return
	}

	fragments := []string{}
	switch content := blocks.ParseContent(page.Content).(type) {
	case blocks.BlockList:
		for i, b := range content {
			fragments = append(fragments, blocks.RenderEditor(b, i))
		}
	case blocks.RawHTML:
		fragments = append(fragments, string(content))
	}

	writeJSON(w, http.StatusOK, map[string]any{"fragments": fragments})
}

// updatePageRequest is the PUT /api/pages/{id} body. Every field is a
// pointer: only fields present in the request are applied, and unknown
// fields are simply dropped by the decoder.
type updatePageRequest struct {
	Title           *string `json:"title"`
	Slug            *string `json:"slug"`
	Content         *string `json:"content"`
	MetaDescription *string `json:"meta_description"`
	IsPublished     *bool   `json:"is_published"`
	ShowInNav       *bool   `json:"show_in_nav"`
	NavOrder        *int    `json:"nav_order"`
	ShowPageHeader  *bool   `json:"show_page_header"`
}

// Update applies a partial update to a page. updated_at is refreshed
// even when the body changes nothing.
func (h *Pages) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, "Invalid page ID.", http.StatusBadRequest)
		return
	}

	page, err := h.pages.FindByID(id)
	if err != nil {
		slog.Error("find page failed", "error", err, "id", id)
		writeError(w, "Failed to load page.", http.StatusInternalServerError)
		return
	}
	if page == nil {
		writeError(w, "Page not found.", http.StatusNotFound)
		return
	}

	var req updatePageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body.", http.StatusBadRequest)
		return
	}

	if req.Title != nil {
		page.Title = *req.Title
	}
	if req.Slug != nil && *req.Slug != page.Slug {
		taken, err := h.pages.SlugExists(*req.Slug)
		if err != nil {
			slog.Error("slug check failed", "error", err)
			writeError(w, "Failed to update page.", http.StatusInternalServerError)
			return
		}
		if taken {
			writeError(w, "A page with this slug already exists.", http.StatusBadRequest)
			return
		}
		page.Slug = *req.Slug
	}
	if req.Content != nil {
		page.Content = *req.Content
	}
	if req.MetaDescription != nil {
		page.MetaDescription = *req.MetaDescription
	}
	if req.IsPublished != nil {
		page.IsPublished = *req.IsPublished
	}
	if req.ShowInNav != nil {
		page.ShowInNav = *req.ShowInNav
	}
	if req.NavOrder != nil {
		page.NavOrder = *req.NavOrder
	}
	if req.ShowPageHeader != nil {
		page.ShowPageHeader = *req.ShowPageHeader
	}

	if err := h.pages.Update(page); err != nil {
		slog.Error("update page failed", "error", err, "id", id)
		writeError(w, "Failed to update page.", http.StatusInternalServerError)
		return
	}

	// Nav links render into every cached page.
	h.pageCache.InvalidateAll(r.Context())

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Page updated.",
	})
}

// Delete removes a page by ID.
func (h *Pages) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, "Invalid page ID.", http.StatusBadRequest)
		return
	}

	if err := h.pages.Delete(id); err != nil {
		slog.Error("delete page failed", "error", err, "id", id)
		writeError(w, "Failed to delete page.", http.StatusInternalServerError)
		return
	}

	h.pageCache.InvalidateAll(r.Context())

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Page deleted.",
	})
}

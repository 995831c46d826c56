// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"parishcms/internal/cache"
	"parishcms/internal/database"
	"parishcms/internal/store"
)

// Reset handles the website reset operation: the page table is wiped
// and reseeded with the default template. Media files in object storage
// are deliberately untouched.
type Reset struct {
	pages     *store.PageStore
	pageCache *cache.PageCache
}

// NewReset creates a new Reset handler group.
func NewReset(pages *store.PageStore, pageCache *cache.PageCache) *Reset {
	return &Reset{pages: pages, pageCache: pageCache}
}

// Website swaps all pages for the default template in one transaction.
func (h *Reset) Website(w http.ResponseWriter, r *http.Request) {
	if err := h.pages.ReplaceAll(database.DefaultPages()); err != nil {
		slog.Error("website reset failed", "error", err)
		writeError(w, "Failed to reset website.", http.StatusInternalServerError)
		return
	}

	h.pageCache.InvalidateAll(r.Context())

	slog.Info("website reset to default template")
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Website reset to the default template.",
	})
}

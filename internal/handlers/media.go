// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"parishcms/internal/storage"
)

// thumbPrefix is where generated thumbnails live in the bucket. They
// are internal artifacts and stay out of the media library listing.
const thumbPrefix = "thumbs/"

// Media groups the media library handlers. The bucket listing is the
// source of truth; there is no media table in the database.
type Media struct {
	storage *storage.Client
}

// NewMedia creates a new Media handler group. storageClient may be nil
// when S3 is not configured.
func NewMedia(storageClient *storage.Client) *Media {
	return &Media{storage: storageClient}
}

// mediaFile is the listing shape the admin media library consumes.
type mediaFile struct {
	FileKey   string `json:"fileKey"`
	FileName  string `json:"fileName"`
	PublicURL string `json:"publicUrl"`
	Size      int64  `json:"size"`
	Uploaded  string `json:"uploaded"`
}

// List returns every file in the media bucket except thumbnails.
func (h *Media) List(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		writeError(w, "Object storage is not configured.", http.StatusServiceUnavailable)
		return
	}

	objects, err := h.storage.List(r.Context())
	if err != nil {
		slog.Error("media list failed", "error", err)
		writeError(w, "Failed to list media.", http.StatusInternalServerError)
		return
	}

	files := []mediaFile{}
	for _, obj := range objects {
		if strings.HasPrefix(obj.Key, thumbPrefix) {
			continue
		}
		files = append(files, mediaFile{
			FileKey:   obj.Key,
			FileName:  path.Base(obj.Key),
			PublicURL: h.storage.FileURL(obj.Key),
			Size:      obj.Size,
			Uploaded:  obj.LastModified.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"files": files})
}

// Delete removes a file (and its thumbnail, if any) from the bucket.
func (h *Media) Delete(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		writeError(w, "Object storage is not configured.", http.StatusServiceUnavailable)
		return
	}

	var req struct {
		FileKey string `json:"fileKey"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FileKey == "" {
		writeError(w, "fileKey is required.", http.StatusBadRequest)
		return
	}
	if strings.Contains(req.FileKey, "..") {
		writeError(w, "Invalid fileKey.", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if err := h.storage.Delete(ctx, req.FileKey); err != nil {
		slog.Error("media delete failed", "error", err, "key", req.FileKey)
		writeError(w, "Failed to delete file.", http.StatusInternalServerError)
		return
	}

	// Best-effort cleanup of the matching thumbnail.
	if err := h.storage.Delete(ctx, thumbPrefix+path.Base(req.FileKey)); err != nil {
		slog.Debug("thumbnail delete skipped", "error", err, "key", req.FileKey)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "File deleted.",
	})
}

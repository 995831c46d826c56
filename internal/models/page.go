// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import "time"

// Page represents a site page managed through the visual block editor.
// Content holds either a JSON-encoded block array (current format) or a
// legacy raw HTML string; the blocks package resolves which at load time.
type Page struct {
	ID              int64     `json:"id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	MetaDescription string    `json:"meta_description"`
	IsPublished     bool      `json:"is_published"`
	ShowInNav       bool      `json:"show_in_nav"`
	NavOrder        int       `json:"nav_order"`
	ShowPageHeader  bool      `json:"show_page_header"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DefaultNavOrder places new pages after everything that has been
// ordered deliberately.
const DefaultNavOrder = 999

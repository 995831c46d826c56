// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"
)

// Setting holds one settings document, keyed by section. The admin UI
// edits each section as a fixed-shape JSON record (site, homepage,
// visit-page, about-page).
type Setting struct {
	Section   string          `json:"section"`
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SettingSections is the closed set of editable settings sections.
var SettingSections = map[string]bool{
	"site":       true,
	"homepage":   true,
	"visit-page": true,
	"about-page": true,
}

// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Sermon represents a recorded sermon in the media archive. Notes hold
// Markdown source for the sermon outline or transcript excerpt.
type Sermon struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Speaker    string    `json:"speaker"`
	Scripture  string    `json:"scripture"`
	Notes      string    `json:"notes"`
	VideoURL   string    `json:"video_url"`
	AudioURL   string    `json:"audio_url"`
	PreachedOn time.Time `json:"preached_on"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Bulletin represents a weekly service bulletin. FileURL points at the
// uploaded PDF in object storage.
type Bulletin struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	ServiceDate time.Time `json:"service_date"`
	FileURL     string    `json:"file_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Event represents a congregation event shown on the public calendar.
// Description is Markdown source; handlers render it to sanitized HTML
// before serving it to the public site.
type Event struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Location       string     `json:"location"`
	StartsAt       time.Time  `json:"starts_at"`
	EndsAt         *time.Time `json:"ends_at,omitempty"`
	IsRecurring    bool       `json:"is_recurring"`
	RecurrenceNote string     `json:"recurrence_note"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

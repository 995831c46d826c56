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

// upcomingEventsLimit caps the public upcoming-events listing.
const upcomingEventsLimit = 50

// Events groups the event CRUD handlers.
type Events struct {
	events *store.EventStore
}

// NewEvents creates a new Events handler group.
func NewEvents(events *store.EventStore) *Events {
	return &Events{events: events}
}

// eventView is an event plus its description rendered from Markdown to
// sanitized HTML, ready for the public site.
type eventView struct {
	models.Event
	DescriptionHTML string `json:"description_html"`
}

func newEventView(e models.Event) eventView {
	v := eventView{Event: e}
	rendered, err := markdown.ToHTML(e.Description)
	if err != nil {
		slog.Warn("event markdown render failed", "error", err, "id", e.ID)
		return v
	}
	v.DescriptionHTML = sanitize.HTML(rendered)
	return v
}

// List returns upcoming events (plus recurring ones), soonest first.
// Pass all=1 to include past events for the admin listing.
func (h *Events) List(w http.ResponseWriter, r *http.Request) {
	var (
		events []models.Event
		err    error
	)
	if r.URL.Query().Get("all") == "1" {
		events, err = h.events.List()
	} else {
		events, err = h.events.ListUpcoming(time.Now(), upcomingEventsLimit)
	}
	if err != nil {
		slog.Error("list events failed", "error", err)
		writeError(w, "Failed to load events.", http.StatusInternalServerError)
		return
	}

	views := []eventView{}
	for _, e := range events {
		views = append(views, newEventView(e))
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": views})
}

// eventRequest is the create/update body for events.
type eventRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Location       string     `json:"location"`
	StartsAt       time.Time  `json:"starts_at"`
	EndsAt         *time.Time `json:"ends_at"`
	IsRecurring    bool       `json:"is_recurring"`
	RecurrenceNote string     `json:"recurrence_note"`
}

// Create inserts a new event.
func (h *Events) Create(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body.", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		writeError(w, "Title is required.", http.StatusBadRequest)
		return
	}
	if req.StartsAt.IsZero() {
		writeError(w, "Start time is required.", http.StatusBadRequest)
		return
	}

	created, err := h.events.Create(&models.Event{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		IsRecurring:    req.IsRecurring,
		RecurrenceNote: req.RecurrenceNote,
	})
	if err != nil {
		slog.Error("create event failed", "error", err)
		writeError(w, "Failed to create event.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"id":      created.ID,
	})
}

// Update replaces an event's fields.
func (h *Events) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, "Invalid event ID.", http.StatusBadRequest)
		return
	}

	event, err := h.events.FindByID(id)
	if err != nil {
		slog.Error("find event failed", "error", err, "id", id)
		writeError(w, "Failed to load event.", http.StatusInternalServerError)
		return
	}
	if event == nil {
		writeError(w, "Event not found.", http.StatusNotFound)
		return
	}

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body.", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		writeError(w, "Title is required.", http.StatusBadRequest)
		return
	}

	event.Title = req.Title
	event.Description = req.Description
	event.Location = req.Location
	event.StartsAt = req.StartsAt
	event.EndsAt = req.EndsAt
	event.IsRecurring = req.IsRecurring
	event.RecurrenceNote = req.RecurrenceNote

	if err := h.events.Update(event); err != nil {
		slog.Error("update event failed", "error", err, "id", id)
		writeError(w, "Failed to update event.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Event updated.",
	})
}

// Delete removes an event by ID.
func (h *Events) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, "Invalid event ID.", http.StatusBadRequest)
		return
	}

	if err := h.events.Delete(id); err != nil {
		slog.Error("delete event failed", "error", err, "id", id)
		writeError(w, "Failed to delete event.", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Event deleted.",
	})
}

// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"parishcms/internal/models"
)

// EventStore handles all event-related database operations.
type EventStore struct {
	db *sql.DB
}

// NewEventStore creates a new EventStore with the given database connection.
func NewEventStore(db *sql.DB) *EventStore {
	return &EventStore{db: db}
}

const eventColumns = `id, title, description, location, starts_at, ends_at,
	       is_recurring, recurrence_note, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (*models.Event, error) {
	e := &models.Event{}
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.StartsAt, &e.EndsAt,
		&e.IsRecurring, &e.RecurrenceNote, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// List returns all events ordered by start time, soonest first.
func (s *EventStore) List() ([]models.Event, error) {
	rows, err := s.db.Query(`
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY starts_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

// ListUpcoming returns events starting at or after the given time,
// soonest first, capped at limit. Used by the public events listing.
func (s *EventStore) ListUpcoming(from time.Time, limit int) ([]models.Event, error) {
	rows, err := s.db.Query(`
		SELECT `+eventColumns+`
		FROM events
		WHERE starts_at >= $1 OR is_recurring = TRUE
		ORDER BY starts_at
		LIMIT $2
	`, from, limit)
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

// FindByID retrieves an event by its ID. Returns nil if not found.
func (s *EventStore) FindByID(id int64) (*models.Event, error) {
	e, err := scanEvent(s.db.QueryRow(`
		SELECT `+eventColumns+`
		FROM events WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find event by id: %w", err)
	}
	return e, nil
}

// Create inserts a new event and returns it with the generated ID.
func (s *EventStore) Create(e *models.Event) (*models.Event, error) {
	created, err := scanEvent(s.db.QueryRow(`
		INSERT INTO events (title, description, location, starts_at, ends_at,
		                    is_recurring, recurrence_note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+eventColumns+`
	`, e.Title, e.Description, e.Location, e.StartsAt, e.EndsAt,
		e.IsRecurring, e.RecurrenceNote,
	))
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return created, nil
}

// Update modifies an existing event.
func (s *EventStore) Update(e *models.Event) error {
	_, err := s.db.Exec(`
		UPDATE events SET
			title = $1, description = $2, location = $3, starts_at = $4,
			ends_at = $5, is_recurring = $6, recurrence_note = $7, updated_at = NOW()
		WHERE id = $8
	`, e.Title, e.Description, e.Location, e.StartsAt,
		e.EndsAt, e.IsRecurring, e.RecurrenceNote, e.ID,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// Delete removes an event by ID.
func (s *EventStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

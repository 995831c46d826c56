// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"parishcms/internal/models"
)

// SermonStore handles all sermon-related database operations.
type SermonStore struct {
	db *sql.DB
}

// NewSermonStore creates a new SermonStore with the given database connection.
func NewSermonStore(db *sql.DB) *SermonStore {
	return &SermonStore{db: db}
}

const sermonColumns = `id, title, speaker, scripture, notes, video_url, audio_url,
	       preached_on, created_at, updated_at`

func scanSermon(row interface{ Scan(...any) error }) (*models.Sermon, error) {
	m := &models.Sermon{}
	err := row.Scan(
		&m.ID, &m.Title, &m.Speaker, &m.Scripture, &m.Notes, &m.VideoURL,
		&m.AudioURL, &m.PreachedOn, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// List returns all sermons, most recently preached first, capped at
// limit when limit is positive.
func (s *SermonStore) List(limit int) ([]models.Sermon, error) {
	query := `
		SELECT ` + sermonColumns + `
		FROM sermons
		ORDER BY preached_on DESC, id DESC
	`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.db.Query(query+` LIMIT $1`, limit)
	} else {
		rows, err = s.db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("list sermons: %w", err)
	}
	defer rows.Close()

	var sermons []models.Sermon
	for rows.Next() {
		m, err := scanSermon(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sermon: %w", err)
		}
		sermons = append(sermons, *m)
	}
	return sermons, rows.Err()
}

// FindByID retrieves a sermon by its ID. Returns nil if not found.
func (s *SermonStore) FindByID(id int64) (*models.Sermon, error) {
	m, err := scanSermon(s.db.QueryRow(`
		SELECT `+sermonColumns+`
		FROM sermons WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find sermon by id: %w", err)
	}
	return m, nil
}

// Create inserts a new sermon and returns it with the generated ID.
func (s *SermonStore) Create(m *models.Sermon) (*models.Sermon, error) {
	created, err := scanSermon(s.db.QueryRow(`
		INSERT INTO sermons (title, speaker, scripture, notes, video_url, audio_url, preached_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+sermonColumns+`
	`, m.Title, m.Speaker, m.Scripture, m.Notes, m.VideoURL, m.AudioURL, m.PreachedOn,
	))
	if err != nil {
		return nil, fmt.Errorf("create sermon: %w", err)
	}
	return created, nil
}

// Update modifies an existing sermon.
func (s *SermonStore) Update(m *models.Sermon) error {
	_, err := s.db.Exec(`
		UPDATE sermons SET
			title = $1, speaker = $2, scripture = $3, notes = $4,
			video_url = $5, audio_url = $6, preached_on = $7, updated_at = NOW()
		WHERE id = $8
	`, m.Title, m.Speaker, m.Scripture, m.Notes,
		m.VideoURL, m.AudioURL, m.PreachedOn, m.ID,
	)
	if err != nil {
		return fmt.Errorf("update sermon: %w", err)
	}
	return nil
}

// Delete removes a sermon by ID.
func (s *SermonStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM sermons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sermon: %w", err)
	}
	return nil
}

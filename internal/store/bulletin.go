// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"parishcms/internal/models"
)

// BulletinStore handles all bulletin-related database operations.
type BulletinStore struct {
	db *sql.DB
}

// NewBulletinStore creates a new BulletinStore with the given database connection.
func NewBulletinStore(db *sql.DB) *BulletinStore {
	return &BulletinStore{db: db}
}

const bulletinColumns = `id, title, service_date, file_url, created_at, updated_at`

func scanBulletin(row interface{ Scan(...any) error }) (*models.Bulletin, error) {
	b := &models.Bulletin{}
	err := row.Scan(&b.ID, &b.Title, &b.ServiceDate, &b.FileURL, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// List returns all bulletins, most recent service date first.
func (s *BulletinStore) List() ([]models.Bulletin, error) {
	rows, err := s.db.Query(`
		SELECT ` + bulletinColumns + `
		FROM bulletins
		ORDER BY service_date DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list bulletins: %w", err)
	}
	defer rows.Close()

	var bulletins []models.Bulletin
	for rows.Next() {
		b, err := scanBulletin(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bulletin: %w", err)
		}
		bulletins = append(bulletins, *b)
	}
	return bulletins, rows.Err()
}

// FindByID retrieves a bulletin by its ID. Returns nil if not found.
func (s *BulletinStore) FindByID(id int64) (*models.Bulletin, error) {
	b, err := scanBulletin(s.db.QueryRow(`
		SELECT `+bulletinColumns+`
		FROM bulletins WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find bulletin by id: %w", err)
	}
	return b, nil
}

// Create inserts a new bulletin and returns it with the generated ID.
func (s *BulletinStore) Create(b *models.Bulletin) (*models.Bulletin, error) {
	created, err := scanBulletin(s.db.QueryRow(`
		INSERT INTO bulletins (title, service_date, file_url)
		VALUES ($1, $2, $3)
		RETURNING `+bulletinColumns+`
	`, b.Title, b.ServiceDate, b.FileURL))
	if err != nil {
		return nil, fmt.Errorf("create bulletin: %w", err)
	}
	return created, nil
}

// Update modifies an existing bulletin.
func (s *BulletinStore) Update(b *models.Bulletin) error {
	_, err := s.db.Exec(`
		UPDATE bulletins SET
			title = $1, service_date = $2, file_url = $3, updated_at = NOW()
		WHERE id = $4
	`, b.Title, b.ServiceDate, b.FileURL, b.ID)
	if err != nil {
		return fmt.Errorf("update bulletin: %w", err)
	}
	return nil
}

// Delete removes a bulletin by ID.
func (s *BulletinStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM bulletins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bulletin: %w", err)
	}
	return nil
}

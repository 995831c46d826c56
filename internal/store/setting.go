// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"parishcms/internal/models"
)

// SettingStore handles the per-section settings documents.
type SettingStore struct {
	db *sql.DB
}

// NewSettingStore creates a new SettingStore with the given database connection.
func NewSettingStore(db *sql.DB) *SettingStore {
	return &SettingStore{db: db}
}

// GetSection retrieves one settings section. A section that has never
// been saved returns an empty JSON object rather than nil, so callers
// always get a valid document.
func (s *SettingStore) GetSection(section string) (*models.Setting, error) {
	setting := &models.Setting{}
	err := s.db.QueryRow(`
		SELECT section, data, updated_at FROM settings WHERE section = $1
	`, section).Scan(&setting.Section, &setting.Data, &setting.UpdatedAt)
	if err == sql.ErrNoRows {
		return &models.Setting{Section: section, Data: json.RawMessage(`{}`)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get settings %q: %w", section, err)
	}
	return setting, nil
}

// SetSection upserts a settings section with the given JSON document.
func (s *SettingStore) SetSection(section string, data json.RawMessage) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (section, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (section) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`, section, data)
	if err != nil {
		return fmt.Errorf("set settings %q: %w", section, err)
	}
	return nil
}

// All returns every stored settings section keyed by name.
func (s *SettingStore) All() (map[string]json.RawMessage, error) {
	rows, err := s.db.Query(`SELECT section, data FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	sections := make(map[string]json.RawMessage)
	for rows.Next() {
		var section string
		var data json.RawMessage
		if err := rows.Scan(&section, &data); err != nil {
			return nil, fmt.Errorf("scan settings: %w", err)
		}
		sections[section] = data
	}
	return sections, rows.Err()
}

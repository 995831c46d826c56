// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

// Package store contains the database access layer: one thin store type
// per table, each wrapping *sql.DB with plain SQL.
package store

import (
	"database/sql"
	"fmt"

	"parishcms/internal/models"
)

// PageStore handles all page-related database operations.
type PageStore struct {
	db *sql.DB
}

// NewPageStore creates a new PageStore with the given database connection.
func NewPageStore(db *sql.DB) *PageStore {
	return &PageStore{db: db}
}

const pageColumns = `id, slug, title, content, meta_description, is_published,
	       show_in_nav, nav_order, show_page_header, created_at, updated_at`

func scanPage(row interface{ Scan(...any) error }) (*models.Page, error) {
	p := &models.Page{}
	err := row.Scan(
		&p.ID, &p.Slug, &p.Title, &p.Content, &p.MetaDescription, &p.IsPublished,
		&p.ShowInNav, &p.NavOrder, &p.ShowPageHeader, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all pages ordered by nav position, then title.
func (s *PageStore) List() ([]models.Page, error) {
	rows, err := s.db.Query(`
		SELECT ` + pageColumns + `
		FROM pages
		ORDER BY nav_order, title
	`)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()

	var pages []models.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		pages = append(pages, *p)
	}
	return pages, rows.Err()
}

// ListNav returns published pages flagged for navigation, in nav order.
// Used to build the public site's navigation links.
func (s *PageStore) ListNav() ([]models.Page, error) {
	rows, err := s.db.Query(`
		SELECT ` + pageColumns + `
		FROM pages
		WHERE is_published = TRUE AND show_in_nav = TRUE
		ORDER BY nav_order, title
	`)
	if err != nil {
		return nil, fmt.Errorf("list nav pages: %w", err)
	}
	defer rows.Close()

	var pages []models.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		pages = append(pages, *p)
	}
	return pages, rows.Err()
}

// FindByID retrieves a page by its ID. Returns nil if not found.
func (s *PageStore) FindByID(id int64) (*models.Page, error) {
	p, err := scanPage(s.db.QueryRow(`
		SELECT `+pageColumns+`
		FROM pages WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page by id: %w", err)
	}
	return p, nil
}

// FindBySlug retrieves a page by its slug regardless of publish state.
// Used by the editor, which edits drafts too. Returns nil if not found.
func (s *PageStore) FindBySlug(slug string) (*models.Page, error) {
	p, err := scanPage(s.db.QueryRow(`
		SELECT `+pageColumns+`
		FROM pages WHERE slug = $1
	`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page by slug: %w", err)
	}
	return p, nil
}

// FindPublishedBySlug retrieves a published page by its slug. Used for
// public rendering; unpublished pages are invisible here. Returns nil if
// not found.
func (s *PageStore) FindPublishedBySlug(slug string) (*models.Page, error) {
	p, err := scanPage(s.db.QueryRow(`
		SELECT `+pageColumns+`
		FROM pages WHERE slug = $1 AND is_published = TRUE
	`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find published page: %w", err)
	}
	return p, nil
}

// SlugExists reports whether any page already uses the given slug.
func (s *PageStore) SlugExists(slug string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM pages WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("slug exists: %w", err)
	}
	return exists, nil
}

// Create inserts a new page and returns it with the generated ID and
// timestamps.
func (s *PageStore) Create(p *models.Page) (*models.Page, error) {
	created, err := scanPage(s.db.QueryRow(`
		INSERT INTO pages (slug, title, content, meta_description, is_published,
		                   show_in_nav, nav_order, show_page_header)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+pageColumns+`
	`, p.Slug, p.Title, p.Content, p.MetaDescription, p.IsPublished,
		p.ShowInNav, p.NavOrder, p.ShowPageHeader,
	))
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	return created, nil
}

// Update replaces all mutable fields of an existing page and refreshes
// updated_at. The caller resolves partial updates before calling this.
func (s *PageStore) Update(p *models.Page) error {
	_, err := s.db.Exec(`
		UPDATE pages SET
			slug = $1, title = $2, content = $3, meta_description = $4,
			is_published = $5, show_in_nav = $6, nav_order = $7,
			show_page_header = $8, updated_at = NOW()
		WHERE id = $9
	`, p.Slug, p.Title, p.Content, p.MetaDescription,
		p.IsPublished, p.ShowInNav, p.NavOrder,
		p.ShowPageHeader, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update page: %w", err)
	}
	return nil
}

// Delete removes a page by ID.
func (s *PageStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM pages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	return nil
}

// ReplaceAll atomically swaps the entire page set for the given pages.
// Used by the website reset operation to restore the default template.
func (s *PageStore) ReplaceAll(pages []models.Page) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("replace pages begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM pages`); err != nil {
		return fmt.Errorf("replace pages clear: %w", err)
	}

	for _, p := range pages {
		_, err := tx.Exec(`
			INSERT INTO pages (slug, title, content, meta_description, is_published,
			                   show_in_nav, nav_order, show_page_header)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, p.Slug, p.Title, p.Content, p.MetaDescription, p.IsPublished,
			p.ShowInNav, p.NavOrder, p.ShowPageHeader,
		)
		if err != nil {
			return fmt.Errorf("replace pages insert %q: %w", p.Slug, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace pages commit: %w", err)
	}
	return nil
}

// Count returns the total number of pages.
func (s *PageStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM pages`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count pages: %w", err)
	}
	return count, nil
}

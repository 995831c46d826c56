// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"parishcms/internal/blocks"
	"parishcms/internal/models"
)

// Seed populates the database with initial development data: a default
// admin user and the default site pages. It is a no-op when data exists.
func Seed(db *sql.DB) error {
	if err := seedAdminUser(db); err != nil {
		return err
	}
	return seedDefaultPages(db)
}

func seedAdminUser(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	// 2FA is not enabled — the admin sets it up on first login.
	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, role, totp_enabled)
		VALUES ($1, $2, $3, $4, $5)
	`, "admin@parishcms.local", string(hash), "Admin", "admin", false)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@parishcms.local",
		"password", "admin",
	)
	return nil
}

func seedDefaultPages(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM pages").Scan(&count); err != nil {
		return fmt.Errorf("seed check pages: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, p := range DefaultPages() {
		_, err := db.Exec(`
			INSERT INTO pages (slug, title, content, meta_description, is_published, show_in_nav, nav_order, show_page_header)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, p.Slug, p.Title, p.Content, p.MetaDescription, p.IsPublished, p.ShowInNav, p.NavOrder, p.ShowPageHeader)
		if err != nil {
			return fmt.Errorf("seed insert page %q: %w", p.Slug, err)
		}
	}

	slog.Info("database seeded with default pages")
	return nil
}

// DefaultPages returns the fixed default page template used by the
// initial seed and by the reset-website operation. Content is a block
// array in the current editor format.
func DefaultPages() []models.Page {
	return []models.Page{
		{
			Slug:  "home",
			Title: "Home",
			Content: mustEncode(blocks.BlockList{
				{Type: "hero", Data: map[string]any{
					"title":           "Welcome to Our Church",
					"subtitle":        "Join us for worship every Sunday at 10:00 AM",
					"backgroundColor": "#0054a6",
					"backgroundImage": "",
					"buttonText":      "Plan Your Visit",
					"buttonUrl":       "/visit",
				}},
				{Type: "text", Data: map[string]any{
					"content": "<p>We are a welcoming community of faith in the heart of the city. Wherever you are on your journey, there is a place for you here.</p>",
				}},
				{Type: "spacer", Data: map[string]any{"height": "40px"}},
			}),
			MetaDescription: "A welcoming church community. Join us for worship every Sunday.",
			IsPublished:     true,
			ShowInNav:       true,
			NavOrder:        1,
			ShowPageHeader:  false,
		},
		{
			Slug:  "about",
			Title: "About Us",
			Content: mustEncode(blocks.BlockList{
				{Type: "heading", Data: map[string]any{"text": "Who We Are", "level": "h2", "alignment": "left"}},
				{Type: "text", Data: map[string]any{
					"content": "<p>Our congregation has served this neighborhood for generations. We gather to worship, learn, and serve together.</p>",
				}},
			}),
			IsPublished:    true,
			ShowInNav:      true,
			NavOrder:       2,
			ShowPageHeader: true,
		},
		{
			Slug:  "visit",
			Title: "Visit",
			Content: mustEncode(blocks.BlockList{
				{Type: "heading", Data: map[string]any{"text": "Plan Your Visit", "level": "h2", "alignment": "left"}},
				{Type: "text", Data: map[string]any{
					"content": "<p>Sunday services begin at 10:00 AM. Children's programs run during the service, and coffee is served afterwards.</p>",
				}},
				{Type: "divider", Data: map[string]any{"thickness": "1", "color": "#dee2e6"}},
			}),
			IsPublished:    true,
			ShowInNav:      true,
			NavOrder:       3,
			ShowPageHeader: true,
		},
		{
			Slug:  "events",
			Title: "Events",
			Content: mustEncode(blocks.BlockList{
				{Type: "events-list", Data: map[string]any{"title": "Upcoming Events", "count": 5, "showPast": false}},
			}),
			IsPublished:    true,
			ShowInNav:      true,
			NavOrder:       4,
			ShowPageHeader: true,
		},
		{
			Slug:  "sermons",
			Title: "Sermons",
			Content: mustEncode(blocks.BlockList{
				{Type: "sermon-list", Data: map[string]any{"title": "Recent Sermons", "count": 5}},
			}),
			IsPublished:    true,
			ShowInNav:      true,
			NavOrder:       5,
			ShowPageHeader: true,
		},
	}
}

// mustEncode serializes a block list for seed content. The seed blocks
// are static and known-serializable.
func mustEncode(list blocks.BlockList) string {
	out, err := blocks.EncodeBlocks(list)
	if err != nil {
		panic(err)
	}
	return out
}

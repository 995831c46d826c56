// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"parishcms/internal/blocks"
	"parishcms/internal/cache"
	"parishcms/internal/models"
)

// blockContent encodes a block list for storing in a test page.
func blockContent(t *testing.T, list blocks.BlockList) string {
	t.Helper()
	encoded, err := blocks.EncodeBlocks(list)
	if err != nil {
		t.Fatalf("encode blocks: %v", err)
	}
	return encoded
}

func TestPublicPage_Published_RendersBlocks(t *testing.T) {
	env := newTestEnv(t)

	testSlug := "test-public-" + uuid.New().String()[:8]
	t.Cleanup(func() { cleanPages(t, env.DB, testSlug) })

	content := blockContent(t, blocks.BlockList{
		{Type: "heading", Data: map[string]any{"text": "Welcome Friends", "level": "h2"}},
		{Type: "text", Data: map[string]any{"text": "Join us on Sunday."}},
	})
	if _, err := env.PageStore.Create(&models.Page{
		Slug:           testSlug,
		Title:          "Public Test Page",
		Content:        content,
		IsPublished:    true,
		NavOrder:       models.DefaultNavOrder,
		ShowPageHeader: true,
	}); err != nil {
		t.Fatalf("create page: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/"+testSlug, nil)
	req = withChiURLParam(req, "slug", testSlug)
	rec := httptest.NewRecorder()
	env.Public.Page(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Page: got status %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("Page: Content-Type = %q, want text/html", ct)
	}

	body := rec.Body.String()
	if !strings.HasPrefix(body, "<!DOCTYPE html>") {
		t.Error("Page: response should be a full HTML document")
	}
	if !strings.Contains(body, "Welcome Friends") {
		t.Error("Page: heading block text missing from output")
	}
	if !strings.Contains(body, "Join us on Sunday.") {
		t.Error("Page: text block missing from output")
	}
	if !strings.Contains(body, "<title>Public Test Page | ") {
		t.Errorf("Page: title tag missing, got: %s", body[:min(len(body), 300)])
	}
	if !strings.Contains(body, `<header class="page-header"><h1>Public Test Page</h1></header>`) {
		t.Error("Page: page header missing despite show_page_header")
	}
}

func TestPublicPage_HiddenBlockNotRendered(t *testing.T) {
	env := newTestEnv(t)

	testSlug := "test-hidden-" + uuid.New().String()[:8]
	t.Cleanup(func() { cleanPages(t, env.DB, testSlug) })

	content := blockContent(t, blocks.BlockList{
		{Type: "text", Data: map[string]any{"text": "Visible paragraph."}},
		{Type: "text", Data: map[string]any{"text": "Hidden paragraph."}, Hidden: true},
	})
	if _, err := env.PageStore.Create(&models.Page{
		Slug: testSlug, Title: "Hidden Block Page", Content: content,
		IsPublished: true, NavOrder: models.DefaultNavOrder,
	}); err != nil {
		t.Fatalf("create page: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/"+testSlug, nil)
	req = withChiURLParam(req, "slug", testSlug)
	rec := httptest.NewRecorder()
	env.Public.Page(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "Visible paragraph.") {
		t.Error("visible block should render")
	}
	if strings.Contains(body, "Hidden paragraph.") {
		t.Error("hidden block should not render")
	}
}

func TestPublicPage_Draft_Returns404(t *testing.T) {
	env := newTestEnv(t)

	testSlug := "test-draft-" + uuid.New().String()[:8]
	t.Cleanup(func() { cleanPages(t, env.DB, testSlug) })

	createTestPage(t, env, "Draft Page", testSlug, false)

	req := httptest.NewRequest(http.MethodGet, "/"+testSlug, nil)
	req = withChiURLParam(req, "slug", testSlug)
	rec := httptest.NewRecorder()
	env.Public.Page(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Page draft: got status %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestPublicPage_Unknown_Returns404(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/no-such-page", nil)
	req = withChiURLParam(req, "slug", "no-such-page")
	rec := httptest.NewRecorder()
	env.Public.Page(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Page unknown: got status %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestPublicPage_StoresRenderInCache(t *testing.T) {
	env := newTestEnv(t)

	testSlug := "test-cached-" + uuid.New().String()[:8]
	t.Cleanup(func() { cleanPages(t, env.DB, testSlug) })

	createTestPage(t, env, "Cacheable Page", testSlug, true)

	req := httptest.NewRequest(http.MethodGet, "/"+testSlug, nil)
	req = withChiURLParam(req, "slug", testSlug)
	rec := httptest.NewRecorder()
	env.Public.Page(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Page: got status %d, want %d", rec.Code, http.StatusOK)
	}

	cached, ok := env.PageCache.Get(context.Background(), cache.SlugKey(testSlug))
	if !ok {
		t.Fatal("render should be stored in the page cache")
	}
	if string(cached) != rec.Body.String() {
		t.Error("cached bytes should match the served response")
	}

	// A second request is served from cache and matches byte for byte.
	rec2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/"+testSlug, nil)
	req2 = withChiURLParam(req2, "slug", testSlug)
	env.Public.Page(rec2, req2)

	if rec2.Body.String() != rec.Body.String() {
		t.Error("cached response should match the first render")
	}
}

func TestPublicPage_EscapesTitleMarkup(t *testing.T) {
	env := newTestEnv(t)

	testSlug := "test-escape-" + uuid.New().String()[:8]
	t.Cleanup(func() { cleanPages(t, env.DB, testSlug) })

	if _, err := env.PageStore.Create(&models.Page{
		Slug:           testSlug,
		Title:          `<script>alert("x")</script>`,
		Content:        "[]",
		IsPublished:    true,
		NavOrder:       models.DefaultNavOrder,
		ShowPageHeader: true,
	}); err != nil {
		t.Fatalf("create page: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/"+testSlug, nil)
	req = withChiURLParam(req, "slug", testSlug)
	rec := httptest.NewRecorder()
	env.Public.Page(rec, req)

	body := rec.Body.String()
	if strings.Contains(body, `<script>alert`) {
		t.Error("title markup must be escaped in the rendered page")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Error("escaped title should appear in the rendered page")
	}
}

func TestHomepage_ServesHomeSlug(t *testing.T) {
	env := newTestEnv(t)

	// Reuse a seeded home page when one exists; otherwise create one.
	home, err := env.PageStore.FindPublishedBySlug("home")
	if err != nil {
		t.Fatalf("find home: %v", err)
	}
	if home == nil {
		createTestPage(t, env, "Welcome Home", "home", true)
		t.Cleanup(func() { cleanPages(t, env.DB, "home") })
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	env.Public.Homepage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Homepage: got status %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("Homepage: Content-Type = %q, want text/html", ct)
	}
}

func TestPublicPage_NavListsFlaggedPages(t *testing.T) {
	env := newTestEnv(t)

	navSlug := "test-nav-" + uuid.New().String()[:8]
	plainSlug := "test-plain-" + uuid.New().String()[:8]
	t.Cleanup(func() { cleanPages(t, env.DB, navSlug, plainSlug) })

	if _, err := env.PageStore.Create(&models.Page{
		Slug: navSlug, Title: "Nav Page", Content: "[]",
		IsPublished: true, ShowInNav: true, NavOrder: 1,
	}); err != nil {
		t.Fatalf("create nav page: %v", err)
	}
	createTestPage(t, env, "Plain Page", plainSlug, true)

	req := httptest.NewRequest(http.MethodGet, "/"+plainSlug, nil)
	req = withChiURLParam(req, "slug", plainSlug)
	rec := httptest.NewRecorder()
	env.Public.Page(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `href="/`+navSlug+`"`) {
		t.Error("nav should link the page flagged show_in_nav")
	}
	if strings.Contains(body, `href="/`+plainSlug+`"`) {
		t.Error("nav should not link pages outside the nav")
	}
}

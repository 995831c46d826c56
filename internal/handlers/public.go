// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"html"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"parishcms/internal/blocks"
	"parishcms/internal/cache"
	"parishcms/internal/models"
	"parishcms/internal/sanitize"
	"parishcms/internal/store"
)

// Public groups handlers for the public-facing site. It checks the
// Valkey page cache before rendering block content, and stores rendered
// results on miss.
type Public struct {
	pages     *store.PageStore
	settings  *store.SettingStore
	pageCache *cache.PageCache
}

// NewPublic creates a new Public handler group.
func NewPublic(pages *store.PageStore, settings *store.SettingStore, pageCache *cache.PageCache) *Public {
	return &Public{pages: pages, settings: settings, pageCache: pageCache}
}

// Homepage serves the page stored under the fixed "home" slug.
func (p *Public) Homepage(w http.ResponseWriter, r *http.Request) {
	p.serveSlug(w, r, cache.HomepageKey())
}

// Page serves a public page by its slug. Unpublished pages are
// indistinguishable from missing ones.
func (p *Public) Page(w http.ResponseWriter, r *http.Request) {
	p.serveSlug(w, r, chi.URLParam(r, "slug"))
}

func (p *Public) serveSlug(w http.ResponseWriter, r *http.Request, slugParam string) {
	ctx := r.Context()

	if cached, ok := p.pageCache.Get(ctx, cache.SlugKey(slugParam)); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}

	page, err := p.pages.FindPublishedBySlug(slugParam)
	if err != nil {
		slog.Error("find published page failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if page == nil {
		http.NotFound(w, r)
		return
	}

	rendered := p.renderFullPage(page)

	p.pageCache.Set(ctx, cache.SlugKey(slugParam), rendered)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(rendered)
}

// renderFullPage wraps the page's rendered block content in the site
// layout: head with title/meta, nav built from navigable pages, and an
// optional page header. The body passes through the sanitizer because
// legacy raw-HTML content and block HTML fields are user-supplied.
func (p *Public) renderFullPage(page *models.Page) []byte {
	body := blocks.RenderContent(blocks.ParseContent(page.Content))
	body = sanitize.HTML(body)

	siteName := p.siteName()

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("<title>" + html.EscapeString(page.Title) + " | " + html.EscapeString(siteName) + "</title>\n")
	if page.MetaDescription != "" {
		b.WriteString("<meta name=\"description\" content=\"" + html.EscapeString(page.MetaDescription) + "\">\n")
	}
	b.WriteString("<link rel=\"stylesheet\" href=\"/static/site.css\">\n</head>\n<body>\n")

	b.WriteString(p.renderNav(siteName))

	if page.ShowPageHeader {
		b.WriteString(`<header class="page-header"><h1>` + html.EscapeString(page.Title) + `</h1></header>` + "\n")
	}

	b.WriteString(`<main>` + "\n" + body + "\n</main>\n")
	b.WriteString("</body>\n</html>\n")

	return []byte(b.String())
}

// renderNav builds the site navigation from pages flagged show_in_nav.
func (p *Public) renderNav(siteName string) string {
	navPages, err := p.pages.ListNav()
	if err != nil {
		slog.Warn("list nav pages failed", "error", err)
	}

	var b strings.Builder
	b.WriteString(`<nav class="site-nav"><a class="site-name" href="/">` + html.EscapeString(siteName) + `</a><ul>`)
	for _, np := range navPages {
		href := "/" + np.Slug
		if np.Slug == cache.HomepageKey() {
			href = "/"
		}
		b.WriteString(`<li><a href="` + html.EscapeString(href) + `">` + html.EscapeString(np.Title) + `</a></li>`)
	}
	b.WriteString("</ul></nav>\n")
	return b.String()
}

// siteName reads the church name from the site settings section,
// falling back to a generic name when unset.
func (p *Public) siteName() string {
	setting, err := p.settings.GetSection("site")
	if err != nil {
		slog.Warn("load site settings failed", "error", err)
		return "Our Church"
	}

	var site struct {
		ChurchName string `json:"churchName"`
	}
	if err := json.Unmarshal(setting.Data, &site); err != nil || site.ChurchName == "" {
		return "Our Church"
	}
	return site.ChurchName
}

// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

// Package sanitize builds the bluemonday policy applied to public page
// HTML. The block renderer escapes plain-text fields itself but passes
// rich-HTML fields through verbatim, so the concatenated document must
// be sanitized once before it is served or cached.
package sanitize

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// youtubeEmbedSrc restricts iframe sources to YouTube embed URLs, which
// is the only iframe the block renderer emits.
var youtubeEmbedSrc = regexp.MustCompile(`^https://(?:www\.)?(?:youtube\.com/embed/|youtube-nocookie\.com/embed/)`)

// policy is the shared sanitizer. bluemonday policies are safe for
// concurrent use once built.
var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()

	// The renderer leans on inline styles for layout (spacing, hero
	// backgrounds, column widths) and on classes for theming.
	p.AllowAttrs("style").Globally()
	p.AllowAttrs("class").Globally()

	// YouTube embeds from video blocks.
	p.AllowElements("iframe")
	p.AllowAttrs("src").Matching(youtubeEmbedSrc).OnElements("iframe")
	p.AllowAttrs("title", "allow", "allowfullscreen", "frameborder", "loading", "referrerpolicy").OnElements("iframe")

	return p
}

// HTML sanitizes a rendered page document for public serving.
func HTML(doc string) string {
	return policy.Sanitize(doc)
}

// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings.
package slug

import (
	"regexp"
	"strings"
)

// separatorRuns matches runs of anything that isn't a lowercase letter or
// digit. Each run becomes a single hyphen, so punctuation separates words
// even without surrounding whitespace.
var separatorRuns = regexp.MustCompile(`[^a-z0-9]+`)

// Generate creates a URL-friendly slug from the given string.
// Example: "About Us!  2026" → "about-us-2026"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = separatorRuns.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

package blocks

import "time"

// DefaultData returns the canonical initial data mapping for a freshly
// added block of the given type. It is total over the known type set and
// side-effect free: every call builds fresh, structurally equal maps.
// Unknown types yield an empty mapping, never an error, so the renderer
// degrades gracefully on tags introduced by newer editors.
func DefaultData(blockType string) map[string]any {
	switch blockType {
	case "hero":
		return map[string]any{
			"title":           "Welcome to Our Church",
			"subtitle":        "A place to belong",
			"backgroundColor": "#0054a6",
			"backgroundImage": "",
		}
	case "text":
		return map[string]any{
			"content": "<p>Enter your text here...</p>",
		}
	case "html":
		return map[string]any{
			"content": "<p>Custom HTML block</p>",
		}
	case "image":
		return map[string]any{
			"src": "",
			"alt": "Image",
		}
	case "image-text":
		return map[string]any{
			"title":     "Side by Side",
			"content":   "<p>Text alongside an image.</p>",
			"src":       "",
			"alt":       "",
			"imageSide": "left",
		}
	case "heading":
		return map[string]any{
			"text":      "Section Heading",
			"level":     "h2",
			"alignment": "left",
		}
	case "card-grid":
		return map[string]any{
			"title":   "Our Ministries",
			"columns": 3,
			"cards":   []any{},
		}
	case "cta":
		return map[string]any{
			"heading":         "Join Us This Sunday",
			"buttonText":      "Plan Your Visit",
			"buttonUrl":       "#",
			"backgroundColor": "#0054a6",
		}
	case "two-column":
		return map[string]any{
			"left":  "<p>Left column</p>",
			"right": "<p>Right column</p>",
		}
	case "three-column":
		return map[string]any{
			"columns": []any{},
		}
	case "section":
		return map[string]any{
			"title":           "",
			"content":         "",
			"backgroundColor": "",
		}
	case "divider":
		return map[string]any{
			"thickness": "1",
			"color":     "#dee2e6",
		}
	case "spacer":
		return map[string]any{
			"height": "40px",
		}
	case "gallery":
		return map[string]any{
			"title":  "Photo Gallery",
			"images": []any{},
		}
	case "video":
		return map[string]any{
			"url":       "",
			"youtubeId": "",
		}
	case "youtube":
		return map[string]any{
			"youtubeId": "",
			"title":     "",
		}
	case "button":
		return map[string]any{
			"text":  "Learn More",
			"url":   "#",
			"style": "primary",
			"size":  "md",
		}
	case "tabs":
		return map[string]any{
			"tabs": []any{},
		}
	case "accordion":
		return map[string]any{
			"items": []any{},
		}
	case "testimonial":
		return map[string]any{
			"quote":  "Share a story from your congregation.",
			"author": "",
			"role":   "",
		}
	case "contact-form":
		return map[string]any{
			"title":      "Contact Us",
			"recipient":  "",
			"submitText": "Send Message",
		}
	case "map":
		return map[string]any{
			"address":  "",
			"embedUrl": "",
			"zoom":     15,
		}
	case "bulletin":
		return map[string]any{
			"title": "Weekly Bulletin",
			"count": 4,
		}
	case "language-switcher":
		return map[string]any{
			"languages": []any{"en", "es"},
		}
	case "events-list":
		return map[string]any{
			"title":    "Upcoming Events",
			"count":    5,
			"showPast": false,
		}
	case "event-calendar":
		return map[string]any{
			"title": "Event Calendar",
		}
	case "news-list":
		return map[string]any{
			"title": "Latest News",
			"count": 3,
		}
	case "blog-posts":
		return map[string]any{
			"title": "From the Blog",
			"count": 3,
		}
	case "sermon-list":
		return map[string]any{
			"title": "Recent Sermons",
			"count": 5,
		}
	case "staff-grid":
		return map[string]any{
			"title":   "Our Staff",
			"members": []any{},
		}
	case "countdown":
		return map[string]any{
			"targetDate":  time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
			"title":       "Countdown",
			"showDays":    true,
			"showHours":   true,
			"showMinutes": true,
			"showSeconds": true,
		}
	case "social-feed":
		return map[string]any{
			"platform": "facebook",
			"url":      "",
		}
	case "breadcrumb":
		return map[string]any{
			"separator": "/",
		}
	case "menu":
		return map[string]any{
			"items": []any{},
		}
	case "link":
		return map[string]any{
			"text": "Link",
			"url":  "#",
		}
	case "columns":
		// Legacy renderer-only tag; kept so old documents round-trip.
		return map[string]any{
			"columns": []any{},
		}
	default:
		return map[string]any{}
	}
}

// KnownTypes lists every block type the editor's component library
// offers, in palette order.
var KnownTypes = []string{
	"hero", "text", "html", "image", "image-text", "heading", "card-grid",
	"cta", "two-column", "three-column", "section", "divider", "spacer",
	"gallery", "video", "youtube", "button", "tabs", "accordion",
	"testimonial", "contact-form", "map", "bulletin", "language-switcher",
	"events-list", "event-calendar", "news-list", "blog-posts",
	"sermon-list", "staff-grid", "countdown", "social-feed", "breadcrumb",
	"menu", "link",
}

// New creates a fresh block of the given type with its canonical defaults.
func New(blockType string) Block {
	return Block{Type: blockType, Data: DefaultData(blockType)}
}

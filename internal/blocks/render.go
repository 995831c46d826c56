// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

package blocks

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

// RenderPublic deterministically transforms a block sequence into HTML
// for the public site. Plain-text fields (titles, subtitles, alt text,
// button labels, captions) are entity-escaped; fields intended as rich
// HTML pass through verbatim. The caller must run the concatenated
// result through the sanitizer before serving — this function escapes
// per-field, it does not sanitize documents.
//
// Each block renders independently: a malformed or unknown block yields
// the empty string and never disturbs its siblings. Hidden blocks are
// excluded from public output entirely.
func RenderPublic(list BlockList) string {
	var out strings.Builder
	for _, b := range list {
		out.WriteString(renderBlock(b))
	}
	return out.String()
}

func renderBlock(b Block) string {
	if b.Hidden || b.Type == "" {
		return ""
	}
	data := b.Data
	if data == nil {
		data = map[string]any{}
	}

	inner := renderBlockBody(b.Type, data)
	if inner == "" {
		return inner
	}
	if style := boxStyle(data); style != "" {
		return `<div style="` + style + `">` + inner + `</div>`
	}
	return inner
}

func renderBlockBody(blockType string, data map[string]any) string {
	switch blockType {
	case "hero":
		return renderHero(data)
	case "heading":
		return renderHeading(data)
	case "text", "html":
		// Rich-HTML blocks: trusted content, inserted verbatim. The
		// legacy field name is "html"; the block editor writes "content".
		if v := str(data, "html", ""); v != "" {
			return v
		}
		return str(data, "content", "")
	case "image":
		return renderImage(data)
	case "video", "youtube":
		return renderVideo(data)
	case "button":
		return renderButton(data)
	case "columns":
		return renderColumns(data)
	case "spacer":
		height := leadingInt(str(data, "height", ""), 40)
		return fmt.Sprintf(`<div class="spacer-block" style="height:%dpx"></div>`, height)
	case "divider":
		thickness := leadingInt(str(data, "thickness", ""), 1)
		color := html.EscapeString(str(data, "color", "#dee2e6"))
		return fmt.Sprintf(`<hr class="divider-block" style="border:none;border-top:%dpx solid %s;margin:1rem 0">`, thickness, color)
	default:
		// Unknown or editor-only type: silent skip.
		return ""
	}
}

func renderHero(data map[string]any) string {
	var style strings.Builder
	style.WriteString("background-color:" + html.EscapeString(str(data, "backgroundColor", "#0054a6")))
	if img := str(data, "backgroundImage", ""); img != "" {
		style.WriteString(";background-image:url('" + html.EscapeString(img) + "');background-size:cover;background-position:center")
	}

	var out strings.Builder
	out.WriteString(`<div class="hero-block" style="` + style.String() + `">`)
	out.WriteString("<h1>" + html.EscapeString(str(data, "title", "")) + "</h1>")
	if subtitle := str(data, "subtitle", ""); subtitle != "" {
		out.WriteString("<p>" + html.EscapeString(subtitle) + "</p>")
	}
	if buttonText := str(data, "buttonText", ""); buttonText != "" {
		url := html.EscapeString(str(data, "buttonUrl", "#"))
		out.WriteString(`<a class="btn btn-light" href="` + url + `">` + html.EscapeString(buttonText) + `</a>`)
	}
	out.WriteString("</div>")
	return out.String()
}

func renderHeading(data map[string]any) string {
	level := headingLevel(data["level"])
	align := html.EscapeString(str(data, "align", "left"))
	text := html.EscapeString(str(data, "text", ""))
	return fmt.Sprintf(`<h%d style="text-align:%s">%s</h%d>`, level, align, text, level)
}

func renderImage(data map[string]any) string {
	src := html.EscapeString(str(data, "src", ""))
	alt := html.EscapeString(str(data, "alt", ""))
	out := `<img class="image-block" src="` + src + `" alt="` + alt + `">`
	if caption := str(data, "caption", ""); caption != "" {
		out += `<p class="image-caption">` + html.EscapeString(caption) + `</p>`
	}
	return out
}

func renderVideo(data map[string]any) string {
	id := html.EscapeString(str(data, "youtubeId", ""))
	return `<div class="video-block" style="position:relative;padding-bottom:56.25%;height:0">` +
		`<iframe src="https://www.youtube.com/embed/` + id + `"` +
		` style="position:absolute;top:0;left:0;width:100%;height:100%"` +
		` frameborder="0" allowfullscreen></iframe></div>`
}

func renderButton(data map[string]any) string {
	style := html.EscapeString(str(data, "style", "primary"))
	size := html.EscapeString(str(data, "size", "md"))
	url := html.EscapeString(str(data, "url", "#"))
	text := html.EscapeString(str(data, "text", ""))
	return fmt.Sprintf(`<a class="btn btn-%s btn-%s" href="%s">%s</a>`, style, size, url, text)
}

func renderColumns(data map[string]any) string {
	cols, _ := data["columns"].([]any)
	divisor := len(cols)
	if divisor == 0 {
		divisor = 2
	}
	width := fmt.Sprintf("%.4f%%", 100.0/float64(divisor))

	var out strings.Builder
	out.WriteString(`<div class="columns-block" style="display:flex;gap:1rem">`)
	for _, col := range cols {
		m, _ := col.(map[string]any)
		out.WriteString(`<div class="column" style="width:` + width + `">`)
		out.WriteString(str(m, "html", ""))
		out.WriteString("</div>")
	}
	out.WriteString("</div>")
	return out.String()
}

// str returns data[key] as a non-empty string, or fallback.
func str(data map[string]any, key, fallback string) string {
	if data == nil {
		return fallback
	}
	if v, ok := data[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// leadingInt parses the leading integer of a CSS-ish length like "40px".
// Non-numeric input falls back — a spacer must never end up with a NaN
// or empty height style.
func leadingInt(s string, fallback int) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return fallback
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return fallback
	}
	return n
}

// headingLevel normalizes the stored level field, which may be a JSON
// number or a tag string like "h2". Out-of-range values fall back to 2.
func headingLevel(v any) int {
	level := 0
	switch t := v.(type) {
	case float64:
		level = int(t)
	case int:
		level = t
	case string:
		level = leadingInt(strings.TrimPrefix(strings.ToLower(t), "h"), 0)
	}
	if level < 1 || level > 6 {
		return 2
	}
	return level
}

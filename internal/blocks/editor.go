// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

package blocks

import (
	"fmt"
	"html"
	"strings"
)

// editableFields maps a block type to the data fields the canvas exposes
// as inline-editable regions, in render order. Fields listed in
// richFields carry trusted HTML and are rendered verbatim inside their
// region; everything else is escaped plain text.
var editableFields = map[string][]string{
	"hero":        {"title", "subtitle"},
	"heading":     {"text"},
	"text":        {"content"},
	"html":        {"content"},
	"image-text":  {"title", "content"},
	"cta":         {"heading", "buttonText"},
	"button":      {"text"},
	"testimonial": {"quote", "author"},
}

var richFields = map[string]bool{
	"content": true,
}

// EditableFields returns the inline-editable field names for a block
// type, or nil for types edited only through the inspector panel.
func EditableFields(blockType string) []string {
	return editableFields[blockType]
}

// RenderEditor renders one block as an inline-editable canvas fragment.
// The wrapper carries the block index and type as data attributes so the
// canvas can route edits; spacing and border sub-records become inline
// wrapper styles (presentational only — they never touch field values).
// Hidden blocks render at reduced opacity but stay fully interactive.
func RenderEditor(b Block, index int) string {
	data := b.Data
	if data == nil {
		data = map[string]any{}
	}

	style := boxStyle(data)
	if b.Hidden {
		if style != "" {
			style += ";"
		}
		style += "opacity:0.4"
	}

	var out strings.Builder
	out.WriteString(fmt.Sprintf(`<div class="canvas-block" data-block-index="%d" data-block-type="%s"`,
		index, html.EscapeString(b.Type)))
	if style != "" {
		out.WriteString(` style="` + style + `"`)
	}
	out.WriteString(">")

	fields := editableFields[b.Type]
	if len(fields) == 0 {
		// No inline regions: show the public preview inside the wrapper.
		out.WriteString(renderBlockBody(b.Type, data))
	} else {
		for _, field := range fields {
			out.WriteString(editRegion(b.Type, field, data))
		}
	}

	out.WriteString("</div>")
	return out.String()
}

// editRegion emits one contenteditable region tagged with the field it
// maps to. On blur the canvas reads the region back into exactly that
// field via ApplyEdit.
func editRegion(blockType, field string, data map[string]any) string {
	value := str(data, field, "")
	if !richFields[field] {
		value = html.EscapeString(value)
	}

	tag := regionTag(blockType, field)
	return fmt.Sprintf(`<%s contenteditable="true" data-field="%s">%s</%s>`, tag, field, value, tag)
}

// regionTag picks a semantic element for an editable region so the
// canvas preview resembles the public render.
func regionTag(blockType, field string) string {
	switch {
	case blockType == "hero" && field == "title":
		return "h1"
	case blockType == "hero" && field == "subtitle":
		return "p"
	case blockType == "heading":
		return "h2"
	case blockType == "cta" && field == "heading":
		return "h2"
	case blockType == "testimonial" && field == "quote":
		return "blockquote"
	case blockType == "testimonial" && field == "author":
		return "cite"
	case blockType == "image-text" && field == "title":
		return "h3"
	case field == "buttonText" || blockType == "button":
		return "span"
	default:
		return "div"
	}
}

// ApplyEdit writes an edited region's value back into exactly one field
// of one block, leaving every other field and block untouched. This is
// the single update callback of the canvas; it is also invoked to
// re-sync a region after a formatting command runs on its selection.
func ApplyEdit(list BlockList, index int, field, value string) error {
	if index < 0 || index >= len(list) {
		return fmt.Errorf("apply edit: block index %d out of range (len %d)", index, len(list))
	}
	if field == "" {
		return fmt.Errorf("apply edit: empty field name")
	}
	if list[index].Data == nil {
		list[index].Data = map[string]any{}
	}
	list[index].Data[field] = value
	return nil
}

// boxStyle builds the inline wrapper style from a block's spacing and
// border sub-records. Absent or empty fields contribute nothing.
func boxStyle(data map[string]any) string {
	var parts []string

	if sp, ok := data["spacing"].(map[string]any); ok {
		for _, f := range spacingFields {
			if v := str(sp, f.key, ""); v != "" {
				parts = append(parts, f.css+":"+html.EscapeString(v))
			}
		}
	}

	if bd, ok := data["border"].(map[string]any); ok {
		borderStyle := str(bd, "style", "")
		if borderStyle != "" && borderStyle != "none" {
			width := str(bd, "width", "1px")
			color := str(bd, "color", "#000000")
			parts = append(parts, "border:"+html.EscapeString(width)+" "+html.EscapeString(borderStyle)+" "+html.EscapeString(color))
		}
		if radius := str(bd, "radius", ""); radius != "" {
			parts = append(parts, "border-radius:"+html.EscapeString(radius))
		}
	}

	return strings.Join(parts, ";")
}

var spacingFields = []struct {
	key string
	css string
}{
	{"marginTop", "margin-top"},
	{"marginRight", "margin-right"},
	{"marginBottom", "margin-bottom"},
	{"marginLeft", "margin-left"},
	{"paddingTop", "padding-top"},
	{"paddingRight", "padding-right"},
	{"paddingBottom", "padding-bottom"},
	{"paddingLeft", "padding-left"},
}

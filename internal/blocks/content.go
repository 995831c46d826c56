// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

// Package blocks implements the block-based page model: the schema of
// typed content blocks, the public renderer that turns a block sequence
// into HTML, and the editor renderer that produces inline-editable
// canvas fragments wired back to the in-memory block array.
package blocks

import (
	"encoding/json"
	"strings"
)

// Block is a typed, self-contained unit of page content. Data's shape is
// determined entirely by Type; DefaultData produces the canonical initial
// mapping for each known type. Hidden blocks stay editable in the canvas
// but are excluded from the public render.
type Block struct {
	Type   string         `json:"type"`
	Data   map[string]any `json:"data"`
	Hidden bool           `json:"hidden,omitempty"`
}

// Content is the resolved form of a page's content column: either a
// parsed block sequence or a legacy raw-HTML string. Resolution happens
// once at load time via ParseContent, never ad hoc at render time.
type Content interface {
	isContent()
}

// BlockList is the block-array variant of Content.
type BlockList []Block

// RawHTML is the legacy variant of Content: a trusted HTML string stored
// before the block editor existed.
type RawHTML string

func (BlockList) isContent() {}
func (RawHTML) isContent()   {}

// ParseContent resolves a stored content string into its Content variant.
// A string that parses as a JSON block array becomes a BlockList; anything
// else (including malformed JSON) is treated as legacy raw HTML.
func ParseContent(raw string) Content {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return BlockList(nil)
	}
	if strings.HasPrefix(trimmed, "[") {
		var list []Block
		if err := json.Unmarshal([]byte(trimmed), &list); err == nil {
			return BlockList(list)
		}
	}
	return RawHTML(raw)
}

// EncodeBlocks serializes a block sequence back into the stored string
// form. The empty sequence encodes as "[]" so a saved-then-loaded page
// stays in the block representation.
func EncodeBlocks(list BlockList) (string, error) {
	if list == nil {
		list = BlockList{}
	}
	out, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// RenderContent renders either Content variant to public HTML. Raw HTML
// passes through unchanged; block lists go through RenderPublic. The
// caller is responsible for sanitizing the result before serving it.
func RenderContent(c Content) string {
	switch v := c.(type) {
	case BlockList:
		return RenderPublic(v)
	case RawHTML:
		return string(v)
	default:
		return ""
	}
}

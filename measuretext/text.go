// Package measuretext implements layout.Measurer for plain strings,
// letting the layout engine size and wrap text the same way it sizes any
// other leaf content. Display width is measured with go-runewidth (so
// wide CJK glyphs and zero-width combining marks count correctly) and
// line breaking walks grapheme clusters with uniseg, so a multi-rune
// emoji or combining sequence is never split across two lines.
package measuretext

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/flexcore/flexcore/layout"
)

// Text is a layout.Measurer over a fixed string. It is immutable once
// constructed; a style or content change should build a new Text rather
// than mutate one already installed on a node (installing replaces the
// node's measure function and clears its cache).
type Text struct {
	content string
}

// New wraps content for use as a node's measure function.
func New(content string) *Text {
	return &Text{content: content}
}

// Measure implements layout.Measurer (spec.md's sole leaf-content
// extension point). Known dimensions win outright on their axis; failing
// that, the available width on the main (wrapping) axis determines how
// the content reflows, and the available height has no effect on
// wrapping — there is no vertical reflow in this subset.
func (t *Text) Measure(known layout.Size[*float64], available layout.Size[layout.AvailableSpace]) layout.Size[float64] {
	if known.Width != nil && known.Height != nil {
		return layout.Size[float64]{Width: *known.Width, Height: *known.Height}
	}

	lines := t.wrapFor(known.Width, available.Width)

	width := 0.0
	for _, line := range lines {
		if w := float64(runewidth.StringWidth(line)); w > width {
			width = w
		}
	}
	height := float64(len(lines))

	if known.Width != nil {
		width = *known.Width
	}
	if known.Height != nil {
		height = *known.Height
	}
	return layout.Size[float64]{Width: width, Height: height}
}

// wrapFor picks the wrapping width implied by (knownWidth, available) and
// delegates to wrapToWidth / wrapToWords.
func (t *Text) wrapFor(knownWidth *float64, available layout.AvailableSpace) []string {
	switch {
	case knownWidth != nil:
		return wrapToWidth(t.content, int(*knownWidth))
	case available.IsDefinite():
		return wrapToWidth(t.content, int(available.Value))
	case available.Kind == layout.SpaceMinContent:
		// The narrowest a paragraph can get without splitting a word is
		// one word (or one unbreakable grapheme run) per line.
		return wrapToWords(t.content)
	default: // MaxContent: the widest the content naturally wants to be.
		return splitParagraphs(t.content)
	}
}

func splitParagraphs(s string) []string {
	norm := strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n")
	return strings.Split(norm, "\n")
}

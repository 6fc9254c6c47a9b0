package measuretext

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// wrapToWidth greedily word-wraps every paragraph of s to maxWidth
// display cells. A word wider than maxWidth on its own is broken at
// grapheme-cluster boundaries since there is no better place to break it.
func wrapToWidth(s string, maxWidth int) []string {
	if maxWidth <= 0 {
		return wrapToWords(s)
	}
	var out []string
	for _, para := range splitParagraphs(s) {
		out = append(out, wrapParagraph(para, maxWidth)...)
	}
	return out
}

func wrapParagraph(para string, maxWidth int) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var cur strings.Builder
	curWidth := 0

	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curWidth = 0
	}

	for _, w := range words {
		wWidth := runewidth.StringWidth(w)

		switch {
		case curWidth == 0 && wWidth > maxWidth:
			lines = append(lines, breakGraphemes(w, maxWidth)...)
		case curWidth == 0:
			cur.WriteString(w)
			curWidth = wWidth
		case curWidth+1+wWidth <= maxWidth:
			cur.WriteByte(' ')
			cur.WriteString(w)
			curWidth += 1 + wWidth
		case wWidth > maxWidth:
			flush()
			lines = append(lines, breakGraphemes(w, maxWidth)...)
		default:
			flush()
			cur.WriteString(w)
			curWidth = wWidth
		}
	}
	if cur.Len() > 0 || len(lines) == 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// wrapToWords puts one whitespace-delimited word per line — the
// narrowest a paragraph can reflow to without splitting a word.
func wrapToWords(s string) []string {
	var out []string
	for _, para := range splitParagraphs(s) {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		out = append(out, words...)
	}
	return out
}

// breakGraphemes splits a single unbreakable token into pieces no wider
// than maxWidth, cutting only between grapheme clusters so a combining
// sequence or wide rune is never split in two.
func breakGraphemes(s string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{s}
	}

	var pieces []string
	var cur strings.Builder
	curWidth := 0

	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if curWidth > 0 && curWidth+w > maxWidth {
			pieces = append(pieces, cur.String())
			cur.Reset()
			curWidth = 0
		}
		cur.WriteString(cluster)
		curWidth += w
	}
	if cur.Len() > 0 {
		pieces = append(pieces, cur.String())
	}
	if len(pieces) == 0 {
		pieces = []string{""}
	}
	return pieces
}

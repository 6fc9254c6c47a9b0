package measuretext

import (
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/flexcore/flexcore/layout"
)

func ptr(v float64) *float64 { return &v }

func TestMeasure_BothKnown(t *testing.T) {
	txt := New("hello world")
	got := txt.Measure(
		layout.Size[*float64]{Width: ptr(3), Height: ptr(9)},
		layout.Size[layout.AvailableSpace]{},
	)
	if got.Width != 3 || got.Height != 9 {
		t.Errorf("Measure with both known = %+v, want {3 9}", got)
	}
}

func TestMeasure_MaxContent(t *testing.T) {
	txt := New("hello world\nsecond line here")
	got := txt.Measure(
		layout.Size[*float64]{},
		layout.Size[layout.AvailableSpace]{Width: layout.MaxContent(), Height: layout.MaxContent()},
	)
	if got.Height != 2 {
		t.Errorf("Measure max-content Height = %v, want 2 (one per paragraph)", got.Height)
	}
	if got.Width != 16 { // "second line here" is the widest line
		t.Errorf("Measure max-content Width = %v, want 16", got.Width)
	}
}

func TestMeasure_MinContent(t *testing.T) {
	txt := New("a much longer sentence")
	got := txt.Measure(
		layout.Size[*float64]{},
		layout.Size[layout.AvailableSpace]{Width: layout.MinContent(), Height: layout.MaxContent()},
	)
	if got.Width != 8 { // "sentence" is the widest single word
		t.Errorf("Measure min-content Width = %v, want 8", got.Width)
	}
	if got.Height != 4 {
		t.Errorf("Measure min-content Height = %v, want 4 (one word per line)", got.Height)
	}
}

func TestMeasure_DefiniteWidthWraps(t *testing.T) {
	txt := New("one two three four")
	got := txt.Measure(
		layout.Size[*float64]{},
		layout.Size[layout.AvailableSpace]{Width: layout.Definite(9), Height: layout.MaxContent()},
	)
	if got.Width > 9 {
		t.Errorf("Measure wrapped Width = %v, want <= 9", got.Width)
	}
	if got.Height < 2 {
		t.Errorf("Measure wrapped Height = %v, want multiple lines", got.Height)
	}
}

func TestBreakGraphemes_PreservesContentWithinWidth(t *testing.T) {
	// A repeated combining-accent cluster: splitting mid-cluster would
	// corrupt it, so every piece must stay within maxWidth and the
	// pieces must reassemble to the original string.
	cluster := "é"
	word := cluster + cluster + cluster + cluster
	pieces := breakGraphemes(word, 2)

	var rebuilt string
	for _, p := range pieces {
		if runewidth.StringWidth(p) > 2 {
			t.Errorf("piece %q exceeds maxWidth 2", p)
		}
		rebuilt += p
	}
	if rebuilt != word {
		t.Errorf("pieces concatenated = %q, want original %q", rebuilt, word)
	}
}

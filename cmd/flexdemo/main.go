// Command flexdemo is a small bubbletea program that exercises the
// arena/layout/measuretext packages end to end: it builds a fixed flex
// tree, recomputes it against the terminal size on every resize, and
// renders the result with lipgloss.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/flexcore/flexcore/arena"
	"github.com/flexcore/flexcore/layout"
	"github.com/flexcore/flexcore/measuretext"
)

// nodeKind distinguishes how a leaf renders; container nodes (anything
// with children) are never drawn themselves, only joined from their
// children's rendered blocks.
type nodeKind uint8

const (
	kindContainer nodeKind = iota
	kindBox
	kindText
)

type nodeMeta struct {
	kind  nodeKind
	label string
	color lipgloss.Color
}

// tree bundles the arena with the render metadata keyed by node, since
// layout.Style carries nothing about color or label.
type tree struct {
	arena *arena.Arena
	meta  map[layout.NodeID]nodeMeta
	root  layout.NodeID
}

// buildDemoTree lays out a header/sidebar/content/footer dashboard plus
// one absolutely positioned badge, a child of the main column anchored by
// point insets to that column's top-right corner, over the header.
func buildDemoTree() *tree {
	a := arena.New()
	meta := map[layout.NodeID]nodeMeta{}

	box := func(label string, color lipgloss.Color, style layout.Style) layout.NodeID {
		id := a.NewLeaf(style)
		meta[id] = nodeMeta{kind: kindBox, label: label, color: color}
		return id
	}

	navStyle := layout.DefaultStyle()
	navStyle.Size = layout.Size[layout.Value]{Width: layout.Auto(), Height: layout.Points(3)}
	navStyle.Margin.Bottom = layout.Points(1)

	nav1 := box("Dashboard", lipgloss.Color("33"), navStyle)
	nav2 := box("Projects", lipgloss.Color("33"), navStyle)
	nav3 := box("Settings", lipgloss.Color("33"), navStyle)

	sidebarStyle := layout.DefaultStyle()
	sidebarStyle.FlexDirection = layout.Column
	sidebarStyle.Size = layout.Size[layout.Value]{Width: layout.Points(20), Height: layout.Auto()}
	sidebarStyle.FlexShrink = 0
	sidebarStyle.Padding = layout.RectAll[layout.LengthPercentage](layout.LengthPoints(1))
	sidebar := a.NewWithChildren(sidebarStyle, []layout.NodeID{nav1, nav2, nav3})
	meta[sidebar] = nodeMeta{kind: kindContainer}

	headerStyle := layout.DefaultStyle()
	headerStyle.Size = layout.Size[layout.Value]{Width: layout.Auto(), Height: layout.Points(3)}
	headerStyle.Position = layout.PositionRelative
	header := box("flexdemo", lipgloss.Color("205"), headerStyle)

	badgeStyle := layout.DefaultStyle()
	badgeStyle.Position = layout.PositionAbsolute
	badgeStyle.Size = layout.Size[layout.Value]{Width: layout.Points(6), Height: layout.Points(1)}
	badgeStyle.Inset = layout.Rect[layout.Value]{
		Top:    layout.Points(1),
		Right:  layout.Points(1),
		Left:   layout.Auto(),
		Bottom: layout.Auto(),
	}
	badge := box("NEW", lipgloss.Color("220"), badgeStyle)

	bodyText := "This paragraph is sized by measuretext.Text, which wraps " +
		"against whatever width the flex algorithm hands it on every " +
		"resize — shrink the terminal to watch it rewrap."
	textStyle := layout.DefaultStyle()
	textStyle.FlexGrow = 1
	textNode := a.NewLeafWithMeasure(textStyle, measuretext.New(bodyText))
	meta[textNode] = nodeMeta{kind: kindText, label: bodyText, color: lipgloss.Color("252")}

	footerStyle := layout.DefaultStyle()
	footerStyle.Size = layout.Size[layout.Value]{Width: layout.Auto(), Height: layout.Points(3)}
	footer := box("press q to quit", lipgloss.Color("240"), footerStyle)

	mainStyle := layout.DefaultStyle()
	mainStyle.FlexDirection = layout.Column
	mainStyle.FlexGrow = 1
	mainStyle.Gap = layout.Size[layout.LengthPercentage]{Height: layout.LengthPoints(1)}
	mainStyle.Padding = layout.RectAll[layout.LengthPercentage](layout.LengthPoints(1))
	mainArea := a.NewWithChildren(mainStyle, []layout.NodeID{header, badge, textNode, footer})
	meta[mainArea] = nodeMeta{kind: kindContainer}

	rootStyle := layout.DefaultStyle()
	rootStyle.Gap = layout.Size[layout.LengthPercentage]{Width: layout.LengthPoints(1)}
	root := a.NewWithChildren(rootStyle, []layout.NodeID{sidebar, mainArea})
	meta[root] = nodeMeta{kind: kindContainer}

	return &tree{arena: a, meta: meta, root: root}
}

type model struct {
	tree   *tree
	width  int
	height int
	ready  bool
}

func newModel() model {
	return model{tree: buildDemoTree()}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		layout.ComputeLayout(m.tree.arena, m.tree.root, layout.Size[layout.AvailableSpace]{
			Width:  layout.Definite(float64(m.width)),
			Height: layout.Definite(float64(m.height)),
		})
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	if !m.ready {
		return "waiting for terminal size...\n"
	}
	return renderNode(m.tree, m.tree.root)
}

// renderNode renders node and, for a container, composites every child at
// its own computed Location relative to the container's border-box
// origin — flow and absolutely positioned children alike, since by the
// time ComputeLayout has run both already carry their final position.
func renderNode(t *tree, id layout.NodeID) string {
	lo := must(t.arena.Layout(id))
	w, h := int(lo.Size.Width), int(lo.Size.Height)
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	meta := t.meta[id]
	childCount := t.arena.ChildCount(id)

	if childCount == 0 {
		return renderLeaf(meta, w, h)
	}

	// Every child's Location is already the position the flex algorithm
	// solved for, measured from this container's border-box origin with
	// padding and border included, so children are composited at that
	// exact offset rather than rejoined blindly — blind adjacency would
	// silently drop padding, gaps and any multi-line wrap the engine
	// already accounted for.
	base := padBlock("", w, h)
	for i := 0; i < childCount; i++ {
		child := t.arena.Child(id, i)
		childLayout := must(t.arena.Layout(child))
		rendered := renderNode(t, child)
		x := int(childLayout.Location.X)
		y := int(childLayout.Location.Y)
		base = overlayAt(base, rendered, x, y)
	}
	return base
}

// contentOrigin returns a container's content-box origin, in cells,
// relative to its own border box: the resolved left/top padding plus
// border. Percentage padding/border resolve against the inline (width)
// basis, mirroring computeLeaf's resolveEdgesOrZero.
func contentOrigin(style layout.Style, width float64) (x, y int) {
	px := style.Padding.Left.ResolveOrZero(&width) + style.Border.Left.ResolveOrZero(&width)
	py := style.Padding.Top.ResolveOrZero(&width) + style.Border.Top.ResolveOrZero(&width)
	return int(px), int(py)
}

func renderLeaf(meta nodeMeta, w, h int) string {
	switch meta.kind {
	case kindText:
		return lipgloss.NewStyle().Width(w).Height(h).Foreground(meta.color).Render(meta.label)
	default: // kindBox
		style := lipgloss.NewStyle().
			Width(w - 2).
			Height(h - 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(meta.color).
			Foreground(meta.color).
			Align(lipgloss.Center, lipgloss.Center)
		if w < 2 || h < 2 {
			style = lipgloss.NewStyle().Width(w).Height(h).Foreground(meta.color)
		}
		return padBlock(style.Render(meta.label), w, h)
	}
}

// padBlock forces block to exactly w columns by h rows, truncating or
// space-padding each line, so every composited block is pinned to its
// own Layout.Size regardless of what its renderer actually produced.
func padBlock(block string, w, h int) string {
	lines := splitLines(block)
	for len(lines) < h {
		lines = append(lines, "")
	}
	lines = lines[:h]
	for i, line := range lines {
		lines[i] = padLine(line, w)
	}
	out := ""
	for i, line := range lines {
		if i > 0 {
			out += "\n"
		}
		out += line
	}
	return out
}

func padLine(line string, w int) string {
	lw := runewidth.StringWidth(line)
	if lw >= w {
		return runewidth.Truncate(line, w, "")
	}
	return line + spaces(w-lw)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}

// overlayAt stamps overlay's lines onto base starting at column x, row y,
// rune-width aware. Styling in the overlaid block survives (it is spliced
// in whole), but any base content it covers is discarded — there is no
// z-index subtlety to preserve since this subset has no stacking contexts
// beyond absolute-over-flow.
func overlayAt(base, overlay string, x, y int) string {
	baseLines := splitLines(base)
	overlayLines := splitLines(overlay)

	for i, ol := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		baseLines[row] = spliceAt(baseLines[row], ol, x)
	}

	out := ""
	for i, line := range baseLines {
		if i > 0 {
			out += "\n"
		}
		out += line
	}
	return out
}

func spliceAt(base, insert string, x int) string {
	if x < 0 {
		x = 0
	}
	baseWidth := runewidth.StringWidth(base)
	prefix := base
	if x < baseWidth {
		prefix = runewidth.Truncate(base, x, "")
	}
	prefix += spaces(x - runewidth.StringWidth(prefix))

	insertWidth := runewidth.StringWidth(insert)
	tailStart := x + insertWidth
	suffix := ""
	if tailStart < baseWidth {
		suffix = truncateFrom(base, tailStart)
	}
	return prefix + insert + suffix
}

// truncateFrom drops the first n display columns of s.
func truncateFrom(s string, n int) string {
	if n <= 0 {
		return s
	}
	width := 0
	for i, r := range s {
		if width >= n {
			return s[i:]
		}
		width += runewidth.RuneWidth(r)
	}
	return ""
}

func must(l layout.Layout, err error) layout.Layout {
	if err != nil {
		panic(err)
	}
	return l
}

func main() {
	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "flexdemo:", err)
		os.Exit(1)
	}
}

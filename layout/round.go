package layout

import "math"

// roundLayout walks the tree depth-first, snapping each node's Layout to
// whole pixels while maintaining cumulative (x, y) offsets from the root
// (spec.md §4.7). This guarantees that a sibling's rounded right edge
// meets the next sibling's rounded left edge exactly, even though each
// sibling's unrounded position and size may round independently.
func roundLayout(tree Tree, node NodeID, cumulativeX, cumulativeY float64) {
	l := tree.LayoutMut(node)

	unroundedX := cumulativeX + l.Location.X
	unroundedY := cumulativeY + l.Location.Y

	roundedX := roundHalfEven(unroundedX)
	roundedY := roundHalfEven(unroundedY)

	newWidth := roundHalfEven(unroundedX+l.Size.Width) - roundedX
	newHeight := roundHalfEven(unroundedY+l.Size.Height) - roundedY

	l.Location = Point[float64]{X: roundHalfEven(l.Location.X), Y: roundHalfEven(l.Location.Y)}
	l.Size = Size[float64]{Width: newWidth, Height: newHeight}

	n := tree.ChildCount(node)
	for i := 0; i < n; i++ {
		roundLayout(tree, tree.Child(node, i), unroundedX, unroundedY)
	}
}

// roundHalfEven rounds to the nearest integer, ties to even. Plain
// round-half-away-from-zero is also acceptable per spec.md §4.7; this is
// the stricter of the two and costs nothing extra.
func roundHalfEven(v float64) float64 {
	return math.RoundToEven(v)
}

package layout

import "testing"

func layoutOf(tree *fakeTree, id NodeID) Layout {
	return *tree.LayoutMut(id)
}

// Scenario 1: row with three 20x20 items, gap 10, container 80x20.
func TestFlex_RowGapPositions(t *testing.T) {
	tree := &fakeTree{}
	childStyle := fixedStyle(20, 20)
	a := tree.add(childStyle)
	b := tree.add(childStyle)
	c := tree.add(childStyle)

	root := fixedStyle(80, 20)
	root.Gap = Size[LengthPercentage]{Width: LengthPoints(10)}
	rootID := tree.add(root, a, b, c)

	ComputeLayout(tree, rootID, Size[AvailableSpace]{Width: Definite(80), Height: Definite(20)})

	want := []Point[float64]{{X: 0, Y: 0}, {X: 30, Y: 0}, {X: 60, Y: 0}}
	for i, id := range []NodeID{a, b, c} {
		got := layoutOf(tree, id).Location
		if got != want[i] {
			t.Errorf("item %d location = %+v, want %+v", i, got, want[i])
		}
	}
	rootSize := layoutOf(tree, rootID).Size
	if rootSize != (Size[float64]{Width: 80, Height: 20}) {
		t.Errorf("container size = %+v, want 80x20", rootSize)
	}
}

// Scenario 2: single flex child with flex-basis 50, parent has no width.
func TestFlex_SingleChildFlexBasisNoParentWidth(t *testing.T) {
	tree := &fakeTree{}
	childStyle := DefaultStyle()
	childStyle.FlexBasis = Points(50)
	child := tree.add(childStyle)

	root := DefaultStyle()
	rootID := tree.add(root, child)

	ComputeLayout(tree, rootID, Size[AvailableSpace]{Width: MaxContent(), Height: MaxContent()})

	childLayout := layoutOf(tree, child)
	if childLayout.Size != (Size[float64]{Width: 50, Height: 0}) {
		t.Errorf("child size = %+v, want 50x0", childLayout.Size)
	}
	if childLayout.Location != (Point[float64]{}) {
		t.Errorf("child location = %+v, want origin", childLayout.Location)
	}
	rootSize := layoutOf(tree, rootID).Size
	if rootSize != (Size[float64]{Width: 50, Height: 0}) {
		t.Errorf("parent size = %+v, want 50x0", rootSize)
	}
}

// Scenario 3: wrap row, container width 100, children widths [30,30,30,30],
// heights [10,20,30,30], align-items FlexEnd (AlignEnd).
func TestFlex_WrapRowAlignEnd(t *testing.T) {
	tree := &fakeTree{}
	heights := []float64{10, 20, 30, 30}
	ids := make([]NodeID, 4)
	for i, h := range heights {
		ids[i] = tree.add(fixedStyle(30, h))
	}

	root := DefaultStyle()
	root.Size = Size[Value]{Width: Points(100), Height: Auto()}
	root.FlexWrap = Wrap
	root.AlignItems = AlignEnd
	rootID := tree.add(root, ids...)

	ComputeLayout(tree, rootID, Size[AvailableSpace]{Width: Definite(100), Height: MaxContent()})

	wantLoc := []Point[float64]{{X: 0, Y: 20}, {X: 30, Y: 10}, {X: 60, Y: 0}, {X: 0, Y: 30}}
	for i, id := range ids {
		got := layoutOf(tree, id).Location
		if got != wantLoc[i] {
			t.Errorf("item %d location = %+v, want %+v", i, got, wantLoc[i])
		}
	}
	rootSize := layoutOf(tree, rootID).Size
	if rootSize != (Size[float64]{Width: 100, Height: 60}) {
		t.Errorf("container size = %+v, want 100x60", rootSize)
	}
}

// Scenario 4: two 100x100 children, flex-grow 0 / flex-shrink 1, width 500
// each, in a 500x500 row — both shrink equally to 250.
func TestFlex_ShrinkEquallyToFit(t *testing.T) {
	tree := &fakeTree{}
	childStyle := DefaultStyle()
	childStyle.Size = Size[Value]{Width: Points(500), Height: Points(100)}
	childStyle.FlexGrow = 0
	childStyle.FlexShrink = 1
	a := tree.add(childStyle)
	b := tree.add(childStyle)

	root := fixedStyle(500, 500)
	rootID := tree.add(root, a, b)

	ComputeLayout(tree, rootID, Size[AvailableSpace]{Width: Definite(500), Height: Definite(500)})

	aLayout, bLayout := layoutOf(tree, a), layoutOf(tree, b)
	if aLayout.Size != (Size[float64]{Width: 250, Height: 100}) {
		t.Errorf("item a size = %+v, want 250x100", aLayout.Size)
	}
	if aLayout.Location != (Point[float64]{}) {
		t.Errorf("item a location = %+v, want origin", aLayout.Location)
	}
	if bLayout.Size != (Size[float64]{Width: 250, Height: 100}) {
		t.Errorf("item b size = %+v, want 250x100", bLayout.Size)
	}
	if bLayout.Location != (Point[float64]{X: 250}) {
		t.Errorf("item b location = %+v, want (250,0)", bLayout.Location)
	}
}

// Scenario 5: absolute child with inset {left: 5%, top: 5%}, aspect-ratio 3,
// width 50%, in a 400x300 parent.
func TestFlex_AbsoluteChildAspectRatio(t *testing.T) {
	tree := &fakeTree{}
	childStyle := DefaultStyle()
	childStyle.Position = PositionAbsolute
	childStyle.Size = Size[Value]{Width: Percent(0.5), Height: Auto()}
	ratio := 3.0
	childStyle.AspectRatio = &ratio
	childStyle.Inset = Rect[Value]{Left: Percent(0.05), Top: Percent(0.05), Right: Auto(), Bottom: Auto()}
	child := tree.add(childStyle)

	root := fixedStyle(400, 300)
	rootID := tree.add(root, child)

	ComputeLayout(tree, rootID, Size[AvailableSpace]{Width: Definite(400), Height: Definite(300)})

	childLayout := layoutOf(tree, child)
	if childLayout.Size != (Size[float64]{Width: 200, Height: 67}) {
		t.Errorf("absolute child size = %+v, want 200x67", childLayout.Size)
	}
	if childLayout.Location != (Point[float64]{X: 20, Y: 15}) {
		t.Errorf("absolute child location = %+v, want (20,15)", childLayout.Location)
	}
}

// Invariant: align-items Stretch with a known container width fills every
// auto-height item to the container's inner height.
func TestFlex_ContainmentUnderStretch(t *testing.T) {
	tree := &fakeTree{}
	style := DefaultStyle()
	style.Size = Size[Value]{Width: Points(40), Height: Auto()}
	a := tree.add(style)
	b := tree.add(style)

	root := fixedStyle(100, 50)
	root.Padding = RectAll[LengthPercentage](LengthPoints(5))
	rootID := tree.add(root, a, b)

	ComputeLayout(tree, rootID, Size[AvailableSpace]{Width: Definite(100), Height: Definite(50)})

	for _, id := range []NodeID{a, b} {
		got := layoutOf(tree, id).Size.Height
		if got != 40 { // 50 - 2*5 padding
			t.Errorf("stretched height = %v, want 40 (container inner height)", got)
		}
	}
}

// Invariant: order fields are a 0..n-1 permutation reflecting insertion
// order, even when a sibling is display:none.
func TestFlex_OrderPreservationWithDisplayNone(t *testing.T) {
	tree := &fakeTree{}
	visible := fixedStyle(10, 10)
	hidden := fixedStyle(10, 10)
	hidden.Display = DisplayNone

	a := tree.add(visible)
	h := tree.add(hidden)
	b := tree.add(visible)

	root := fixedStyle(100, 20)
	rootID := tree.add(root, a, h, b)

	ComputeLayout(tree, rootID, Size[AvailableSpace]{Width: Definite(100), Height: Definite(20)})

	if got := layoutOf(tree, a).Order; got != 0 {
		t.Errorf("a.Order = %d, want 0", got)
	}
	if got := layoutOf(tree, h).Order; got != 1 {
		t.Errorf("h.Order = %d, want 1", got)
	}
	if got := layoutOf(tree, b).Order; got != 2 {
		t.Errorf("b.Order = %d, want 2", got)
	}
}

// Invariant: min/max clamping holds even when a definite flex-basis would
// otherwise overshoot.
func TestFlex_MinMaxClamping(t *testing.T) {
	tree := &fakeTree{}
	style := DefaultStyle()
	style.Size = Size[Value]{Width: Points(10), Height: Points(10)}
	style.MaxSize = Size[Value]{Width: Points(50)}
	style.FlexGrow = 1
	child := tree.add(style)

	root := fixedStyle(200, 10)
	rootID := tree.add(root, child)

	ComputeLayout(tree, rootID, Size[AvailableSpace]{Width: Definite(200), Height: Definite(10)})

	got := layoutOf(tree, child).Size.Width
	if got != 50 {
		t.Errorf("grown width = %v, want clamped to max 50", got)
	}
}

package layout

import "testing"

func TestRoundHalfEven(t *testing.T) {
	cases := map[float64]float64{
		2.5: 2,
		3.5: 4,
		0.5: 0,
		1.5: 2,
		-1.5: -2,
	}
	for in, want := range cases {
		if got := roundHalfEven(in); got != want {
			t.Errorf("roundHalfEven(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestRoundLayoutSnapsAndAccumulates(t *testing.T) {
	tree := &fakeTree{}
	child := tree.add(DefaultStyle())
	root := tree.add(DefaultStyle(), child)

	*tree.LayoutMut(root) = Layout{Size: Size[float64]{Width: 10.4, Height: 10.4}}
	*tree.LayoutMut(child) = Layout{
		Location: Point[float64]{X: 5.3, Y: 0.2},
		Size:     Size[float64]{Width: 4.6, Height: 9.8},
	}

	roundLayout(tree, root, 0, 0)

	rootLayout := *tree.LayoutMut(root)
	if rootLayout.Size.Width != 10 {
		t.Errorf("root width = %v, want 10", rootLayout.Size.Width)
	}

	childLayout := *tree.LayoutMut(child)
	if childLayout.Location.X != 5 {
		t.Errorf("child X = %v, want 5", childLayout.Location.X)
	}
	// unrounded child right edge = 5.3 + 4.6 = 9.9, rounds to 10; rounded
	// width must make rounded left + rounded width land there, i.e. 5.
	if childLayout.Size.Width != 5 {
		t.Errorf("child width = %v, want 5 (edge-to-edge rounding)", childLayout.Size.Width)
	}
}

func TestRoundLayoutPreservesSiblingAdjacency(t *testing.T) {
	tree := &fakeTree{}
	a := tree.add(DefaultStyle())
	b := tree.add(DefaultStyle())
	root := tree.add(DefaultStyle(), a, b)

	*tree.LayoutMut(root) = Layout{Size: Size[float64]{Width: 20, Height: 10}}
	*tree.LayoutMut(a) = Layout{Location: Point[float64]{X: 0}, Size: Size[float64]{Width: 6.7, Height: 10}}
	*tree.LayoutMut(b) = Layout{Location: Point[float64]{X: 6.7}, Size: Size[float64]{Width: 6.7, Height: 10}}

	roundLayout(tree, root, 0, 0)

	aLayout := *tree.LayoutMut(a)
	bLayout := *tree.LayoutMut(b)
	aRight := aLayout.Location.X + aLayout.Size.Width
	if aRight != bLayout.Location.X {
		t.Errorf("rounded a's right edge (%v) should equal b's left edge (%v)", aRight, bLayout.Location.X)
	}
}

package layout

// computeLeaf sizes a childless node from its style and, optionally, a
// measure function (spec.md §4.5). Measurement is the sole extension
// point through which external content — text, images — influences
// layout.
func computeLeaf(tree Tree, node NodeID, style Style, knownDimensions Size[*float64], availableSpace Size[AvailableSpace], sizingMode SizingMode) Size[float64] {
	var nodeSize, nodeMinSize, nodeMaxSize Size[*float64]

	switch sizingMode {
	case ContentSize:
		// Pretend the node has no size styles; inherent styles must not
		// shadow content sizing when a parent is asking "how big do your
		// contents want to be?"
		nodeSize = knownDimensions
		nodeMinSize = Size[*float64]{}
		nodeMaxSize = Size[*float64]{}
	default: // InherentSize
		basis := asOptions(availableSpace)
		styleSize := sizeMaybeResolve(style.Size, basis)
		nodeSize = sizeOr(styleSize, knownDimensions)
		nodeMinSize = sizeMaybeResolve(style.MinSize, basis)
		nodeMaxSize = sizeMaybeResolve(style.MaxSize, basis)
		nodeSize = applyAspectRatio(nodeSize, style.AspectRatio)
	}

	if nodeSize.Width != nil && nodeSize.Height != nil {
		return clampSize(Size[float64]{Width: *nodeSize.Width, Height: *nodeSize.Height}, nodeMinSize, nodeMaxSize)
	}

	if measurer, ok := tree.Measure(node); ok {
		measureAvailable := Size[AvailableSpace]{
			Width:  availableSpace.Width.MaybeSet(nodeSize.Width),
			Height: availableSpace.Height.MaybeSet(nodeSize.Height),
		}
		measured := measurer.Measure(knownDimensions, measureAvailable)
		result := Size[float64]{
			Width:  unwrapOr(nodeSize.Width, measured.Width),
			Height: unwrapOr(nodeSize.Height, measured.Height),
		}
		return clampSize(result, nodeMinSize, nodeMaxSize)
	}

	// Both horizontal and vertical percentage padding/border resolve
	// against the container's inline size (width) — not a bug, this is
	// how CSS specifies it.
	padding := resolveEdgesOrZero(style.Padding, availableSpace.Width.ToOption())
	border := resolveEdgesOrZero(style.Border, availableSpace.Width.ToOption())

	result := Size[float64]{
		Width:  unwrapOr(nodeSize.Width, 0) + SumHorizontal(padding) + SumHorizontal(border),
		Height: unwrapOr(nodeSize.Height, 0) + SumVertical(padding) + SumVertical(border),
	}
	return clampSize(result, nodeMinSize, nodeMaxSize)
}

// applyAspectRatio fills in a missing axis from the other when ratio
// (width/height) is set and exactly one axis is already known.
func applyAspectRatio(sz Size[*float64], ratio *float64) Size[*float64] {
	if ratio == nil || *ratio == 0 {
		return sz
	}
	switch {
	case sz.Width != nil && sz.Height == nil:
		h := *sz.Width / *ratio
		sz.Height = &h
	case sz.Height != nil && sz.Width == nil:
		w := *sz.Height * *ratio
		sz.Width = &w
	}
	return sz
}

// clampSize clamps a concrete size into [min, max], treating unknown
// bounds as no constraint, and floors each axis at zero (spec.md §3
// invariant 2).
func clampSize(s Size[float64], min, max Size[*float64]) Size[float64] {
	w := maxf0(clampWithOptions(s.Width, min.Width, max.Width))
	h := maxf0(clampWithOptions(s.Height, min.Height, max.Height))
	return Size[float64]{Width: w, Height: h}
}

func clampWithOptions(v float64, min, max *float64) float64 {
	if min != nil && v < *min {
		v = *min
	}
	if max != nil && *max >= unwrapOr(min, *max) && v > *max {
		v = *max
	}
	return v
}

func maxf0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func resolveEdgesOrZero(r Rect[LengthPercentage], basis *float64) Rect[float64] {
	return Rect[float64]{
		Top:    r.Top.ResolveOrZero(basis),
		Right:  r.Right.ResolveOrZero(basis),
		Bottom: r.Bottom.ResolveOrZero(basis),
		Left:   r.Left.ResolveOrZero(basis),
	}
}

package layout

// distributeMainAxisFreeSpace implements step 12: position every item
// along the main axis within its line, honoring auto margins first and
// justify-content only when no auto margin soaked up the free space.
func distributeMainAxisFreeSpace(line *flexLine, style Style, c *algoConstants) {
	mainAxis := c.dir.MainAxis()
	items := line.items
	n := len(items)
	if n == 0 {
		return
	}

	used := 0.0
	autoMargins := 0
	for _, it := range items {
		used += it.targetMainSize + it.paddingBorderSum(mainAxis)
		startAuto, endAuto := it.mainMarginIsAuto(c.dir)
		if startAuto {
			autoMargins++
		} else {
			used += it.marginMainStart(c.dir)
		}
		if endAuto {
			autoMargins++
		} else {
			used += it.marginMainEnd(c.dir)
		}
	}
	gapMain := SizeMain(c.gap, c.dir)
	if n > 1 {
		used += gapMain * float64(n-1)
	}

	containerMain := SizeMain(c.innerContainerSize, c.dir)
	freeSpace := maxf0(containerMain - used)

	autoShare := 0.0
	if autoMargins > 0 {
		autoShare = freeSpace / float64(autoMargins)
		freeSpace = 0
	}

	leading, between := 0.0, 0.0
	if autoMargins == 0 {
		switch style.Justify {
		case AlignContentCenter:
			leading = freeSpace / 2
		case AlignContentEnd:
			leading = freeSpace
		case AlignContentSpaceBetween:
			if n > 1 {
				between = freeSpace / float64(n-1)
			}
		case AlignContentSpaceAround:
			between = freeSpace / float64(n)
			leading = between / 2
		case AlignContentSpaceEvenly:
			between = freeSpace / float64(n+1)
			leading = between
		}
	}

	pos := leading
	for i, it := range items {
		startAuto, endAuto := it.mainMarginIsAuto(c.dir)
		if startAuto {
			pos += autoShare
		} else {
			pos += it.marginMainStart(c.dir)
		}
		it.offsetMain = pos
		pos += it.paddingBorderSum(mainAxis) + it.targetMainSize
		if endAuto {
			pos += autoShare
		} else {
			pos += it.marginMainEnd(c.dir)
		}
		if i < n-1 {
			pos += gapMain + between
		}
	}

	if c.dir.IsReverse() {
		for _, it := range items {
			borderBoxMain := it.paddingBorderSum(mainAxis) + it.targetMainSize
			it.offsetMain = containerMain - it.offsetMain - borderBoxMain
		}
	}
}

// resolveCrossAxisAlignment implements step 13: position each item within
// its line's cross size, honoring auto cross margins (which center the
// item when both are auto) ahead of align-self.
func resolveCrossAxisAlignment(line *flexLine, c *algoConstants) {
	crossAxis := c.dir.CrossAxis()
	for _, it := range line.items {
		startAuto, endAuto := it.crossMarginIsAuto(c.dir)
		outerNoMargin := it.usedCrossSize + it.paddingBorderSum(crossAxis)

		if startAuto || endAuto {
			free := maxf0(line.crossSize - outerNoMargin - it.marginSum(crossAxis))
			switch {
			case startAuto && endAuto:
				it.offsetCross = free / 2
			case startAuto:
				it.offsetCross = free
			default:
				it.offsetCross = 0
			}
			if !startAuto {
				it.offsetCross += it.marginCrossStart(c.dir)
			}
			continue
		}

		free := maxf0(line.crossSize - outerNoMargin - it.marginSum(crossAxis))
		lead := 0.0
		switch it.alignSelf {
		case AlignCenter:
			lead = free / 2
		case AlignEnd:
			lead = free
		case AlignBaseline:
			lead = line.maxBaseline - it.baseline
		}
		it.offsetCross = lead + it.marginCrossStart(c.dir)
	}
}

// determineContainerCrossSize implements step 15: a definite style cross
// size wins outright; otherwise the container shrinks to the lines it holds.
func determineContainerCrossSize(lines []flexLine, c *algoConstants, knownDimensions Size[*float64]) float64 {
	crossAxis := c.dir.CrossAxis()
	if cv := c.nodeSize.Get(crossAxis); cv != nil {
		return maxf0(*cv - CrossAxisSum(c.paddingBorder, c.dir))
	}

	total := 0.0
	for _, ln := range lines {
		total += ln.crossSize
	}
	if n := len(lines); n > 1 {
		total += float64(n-1) * SizeCross(c.gap, c.dir)
	}
	return total
}

// alignFlexLinesPerAlignContent implements step 16: position each line
// within the container's cross-axis content box.
func alignFlexLinesPerAlignContent(lines []flexLine, style Style, c *algoConstants) {
	crossAxis := c.dir.CrossAxis()
	n := len(lines)
	if n == 0 {
		return
	}

	total := 0.0
	for _, ln := range lines {
		total += ln.crossSize
	}
	gapCross := SizeCross(c.gap, c.dir)
	if n > 1 {
		total += gapCross * float64(n-1)
	}

	containerCross := c.innerContainerSize.Get(crossAxis)
	free := maxf0(containerCross - total)

	leading, between := 0.0, 0.0
	switch style.AlignContent {
	case AlignContentCenter:
		leading = free / 2
	case AlignContentEnd:
		leading = free
	case AlignContentSpaceBetween:
		if n > 1 {
			between = free / float64(n-1)
		}
	case AlignContentSpaceAround:
		between = free / float64(n)
		leading = between / 2
	case AlignContentSpaceEvenly:
		between = free / float64(n+1)
		leading = between
	}

	pos := leading
	for i := range lines {
		lines[i].offsetCross = pos
		pos += lines[i].crossSize
		if i < n-1 {
			pos += gapCross + between
		}
	}

	if c.isWrapReverse {
		for i := range lines {
			lines[i].offsetCross = containerCross - lines[i].offsetCross - lines[i].crossSize
		}
	}
}

// finalLayoutPass writes the Layout of every in-flow child: its border-box
// size (content size plus its own padding/border) and its position,
// derived from the main/cross offsets steps 12-16 computed, then
// recursively lays out the child's own subtree under those exact
// dimensions.
func finalLayoutPass(tree Tree, node NodeID, lines []flexLine, c *algoConstants) {
	mainAxis := c.dir.MainAxis()
	crossAxis := c.dir.CrossAxis()
	mainStartPad := c.paddingBorder.MainStart(c.dir)
	crossStartPad := c.paddingBorder.CrossStart(c.dir)

	for li := range lines {
		line := &lines[li]
		for _, it := range line.items {
			mainPos := mainStartPad + it.offsetMain
			crossPos := crossStartPad + line.offsetCross + it.offsetCross

			borderMain := it.targetMainSize + it.paddingBorderSum(mainAxis)
			borderCross := it.usedCrossSize + it.paddingBorderSum(crossAxis)

			var x, y, w, h float64
			if mainAxis == AxisHorizontal {
				x, y, w, h = mainPos, crossPos, borderMain, borderCross
			} else {
				x, y, w, h = crossPos, mainPos, borderCross, borderMain
			}

			known := Size[*float64]{Width: some(w), Height: some(h)}
			avail := Size[AvailableSpace]{Width: Definite(w), Height: Definite(h)}
			computeNodeLayout(tree, it.node, known, avail, PerformLayout, InherentSize)

			*tree.LayoutMut(it.node) = Layout{
				Size:     Size[float64]{Width: w, Height: h},
				Location: Point[float64]{X: x, Y: y},
				Order:    uint32(it.order),
			}
		}
	}
}

// performAbsoluteLayout positions PositionAbsolute children against the
// container's border box, resolving each inset pair independently: a
// definite start and end inset determines size directly when the item has
// no explicit size of its own. A child with neither inset defined on an
// axis falls back to justify-content (main axis) or align-self/align-items
// (cross axis) applied to that axis's free space.
func performAbsoluteLayout(tree Tree, node NodeID, childIDs []NodeID, c *algoConstants) {
	parentStyle := tree.Style(node)
	containerW, containerH := c.containerSize.Width, c.containerSize.Height
	basis := Size[*float64]{Width: some(containerW), Height: some(containerH)}

	for i, id := range childIDs {
		style := tree.Style(id)
		if style.Position != PositionAbsolute || style.Display == DisplayNone {
			continue
		}

		inset := Rect[*float64]{
			Top:    style.Inset.Top.Resolve(basis.Height),
			Right:  style.Inset.Right.Resolve(basis.Width),
			Bottom: style.Inset.Bottom.Resolve(basis.Height),
			Left:   style.Inset.Left.Resolve(basis.Width),
		}
		margin := Rect[*float64]{
			Top:    style.Margin.Top.Resolve(basis.Height),
			Right:  style.Margin.Right.Resolve(basis.Width),
			Bottom: style.Margin.Bottom.Resolve(basis.Height),
			Left:   style.Margin.Left.Resolve(basis.Width),
		}

		start := maybeAdd(inset.Left, margin.Left)
		end := maybeAdd(inset.Right, margin.Right)
		top := maybeAdd(inset.Top, margin.Top)
		bottom := maybeAdd(inset.Bottom, margin.Bottom)

		startMain, endMain, startCross, endCross := start, end, top, bottom
		if c.dir.MainAxis() != AxisHorizontal {
			startMain, endMain, startCross, endCross = top, bottom, start, end
		}

		styleSize := sizeMaybeResolve(style.Size, basis)
		minSize := sizeMaybeResolve(style.MinSize, basis)
		maxSize := sizeMaybeResolve(style.MaxSize, basis)
		known := sizeMaybeClamp(applyAspectRatio(styleSize, style.AspectRatio), minSize, maxSize)

		if known.Width == nil && inset.Left != nil && inset.Right != nil {
			known.Width = some(containerW - *inset.Left - *inset.Right)
		}
		if known.Height == nil && inset.Top != nil && inset.Bottom != nil {
			known.Height = some(containerH - *inset.Top - *inset.Bottom)
		}

		avail := Size[AvailableSpace]{Width: Definite(containerW), Height: Definite(containerH)}
		size := computeNodeLayout(tree, id, known, avail, PerformLayout, ContentSize)

		innerMin := sizeMaybeResolve(style.MinSize, c.nodeInnerSize)
		innerMax := sizeMaybeResolve(style.MaxSize, c.nodeInnerSize)
		clampedMain := clampWithOptions(SizeMain(size, c.dir), innerMin.Get(c.dir.MainAxis()), innerMax.Get(c.dir.MainAxis()))
		clampedCross := clampWithOptions(SizeCross(size, c.dir), innerMin.Get(c.dir.CrossAxis()), innerMax.Get(c.dir.CrossAxis()))

		freeMainSpace := SizeMain(c.containerSize, c.dir) - clampedMain
		freeCrossSpace := SizeCross(c.containerSize, c.dir) - clampedCross

		offsetMain := resolveAbsoluteMainOffset(startMain, endMain, c.border.MainStart(c.dir), c.border.MainEnd(c.dir),
			freeMainSpace, parentStyle.Justify, c.paddingBorder.MainStart(c.dir), c.paddingBorder.MainEnd(c.dir))
		offsetCross := resolveAbsoluteCrossOffset(startCross, endCross, c.border.CrossStart(c.dir), c.border.CrossEnd(c.dir),
			freeCrossSpace, ItemAlign(parentStyle, style), c.isWrapReverse, c.paddingBorder.CrossStart(c.dir), c.paddingBorder.CrossEnd(c.dir))

		var x, y float64
		if c.dir.MainAxis() == AxisHorizontal {
			x, y = offsetMain, offsetCross
		} else {
			x, y = offsetCross, offsetMain
		}

		*tree.LayoutMut(id) = Layout{Size: size, Location: Point[float64]{X: x, Y: y}, Order: uint32(i)}
	}
}

// resolveAbsoluteMainOffset implements spec.md §4.6's absolute main-axis
// offset: a start inset anchors to the start border edge, else an end
// inset anchors to the end border edge, else the free main space is
// distributed per justify-content (Stretch behaves as Start, matching the
// in-flow main axis rule).
func resolveAbsoluteMainOffset(start, end *float64, borderStart, borderEnd, freeSpace float64, justify JustifyContent, paddingBorderStart, paddingBorderEnd float64) float64 {
	switch {
	case start != nil:
		return unwrapOr(start, 0) + borderStart
	case end != nil:
		return freeSpace - unwrapOr(end, 0) - borderEnd
	default:
		switch justify {
		case AlignContentEnd:
			return freeSpace - paddingBorderEnd
		case AlignContentCenter, AlignContentSpaceAround, AlignContentSpaceEvenly:
			return freeSpace / 2
		default: // Start, SpaceBetween, Stretch
			return paddingBorderStart
		}
	}
}

// resolveAbsoluteCrossOffset is resolveAbsoluteMainOffset's cross-axis
// counterpart: the fallback alignment is align-self (defaulting to the
// container's align-items), and Start/End swap meaning under wrap-reverse
// exactly as the in-flow cross axis does.
func resolveAbsoluteCrossOffset(start, end *float64, borderStart, borderEnd, freeSpace float64, alignSelf Align, isWrapReverse bool, paddingBorderStart, paddingBorderEnd float64) float64 {
	switch {
	case start != nil:
		return unwrapOr(start, 0) + borderStart
	case end != nil:
		return freeSpace - unwrapOr(end, 0) - borderEnd
	default:
		switch alignSelf {
		case AlignEnd:
			if isWrapReverse {
				return paddingBorderStart
			}
			return freeSpace - paddingBorderEnd
		case AlignCenter, AlignBaseline:
			return freeSpace / 2
		default: // Start, Stretch
			if isWrapReverse {
				return freeSpace - paddingBorderEnd
			}
			return paddingBorderStart
		}
	}
}

// resetHiddenChildren clears the Layout and Cache of every DisplayNone
// child (and its descendants), so a subtree that was visible before a
// restyle never leaks stale geometry after being hidden.
func resetHiddenChildren(tree Tree, childIDs []NodeID) {
	for i, id := range childIDs {
		style := tree.Style(id)
		if style.Display != DisplayNone {
			continue
		}
		*tree.LayoutMut(id) = Layout{Order: uint32(i)}
		tree.CacheMut(id).Clear()
		resetDescendantsToZero(tree, id)
	}
}

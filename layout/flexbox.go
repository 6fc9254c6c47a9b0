package layout

// algoConstants bundles the per-invocation values the 16-step algorithm
// computes once and reuses (spec.md §4.6 "Constants").
type algoConstants struct {
	dir            FlexDirection
	isRow          bool
	isColumn       bool
	isWrapReverse  bool
	isWrap         bool

	margin  Rect[*float64]
	border  Rect[float64]
	padding Rect[float64]
	paddingBorder Rect[float64]

	gap Size[float64] // resolved against the container's own inner size when known

	alignItems Align

	nodeSize      Size[*float64] // resolved style size (InherentSize)
	nodeMinSize   Size[*float64]
	nodeMaxSize   Size[*float64]
	nodeInnerSize Size[*float64] // known minus padding/border

	containerSize      Size[float64]
	innerContainerSize Size[float64]
}

// flexCompute is the flexbox engine entry point (spec.md §4.6). It
// implements the two-pass min/max entry and then delegates to
// computePreliminary for the real 16-step algorithm.
func flexCompute(tree Tree, node NodeID, knownDimensions Size[*float64], availableSpace Size[AvailableSpace], runMode RunMode) Size[float64] {
	style := tree.Style(node)
	basis := asOptions(availableSpace)

	styleSize := sizeMaybeResolve(style.Size, basis)
	minSize := sizeMaybeResolve(style.MinSize, basis)
	maxSize := sizeMaybeResolve(style.MaxSize, basis)

	hasMinMax := minSize.Width != nil || minSize.Height != nil || maxSize.Width != nil || maxSize.Height != nil

	clampedStyleSize := sizeMaybeClamp(styleSize, minSize, maxSize)
	firstKnown := sizeOr(knownDimensions, clampedStyleSize)

	if !hasMinMax {
		return computePreliminary(tree, node, firstKnown, availableSpace, runMode)
	}

	firstPass := computePreliminary(tree, node, firstKnown, availableSpace, ComputeSize)
	clampedFirstPass := sizeMaybeClamp(
		Size[*float64]{Width: some(firstPass.Width), Height: some(firstPass.Height)},
		minSize, maxSize,
	)
	secondKnown := sizeOr(knownDimensions, clampedFirstPass)
	return computePreliminary(tree, node, secondKnown, availableSpace, runMode)
}

// computePreliminary runs the 16-step algorithm once, given the known
// dimensions already resolved by flexCompute's entry logic.
func computePreliminary(tree Tree, node NodeID, knownDimensions Size[*float64], availableSpace Size[AvailableSpace], runMode RunMode) Size[float64] {
	style := tree.Style(node)
	c := computeConstants(style, knownDimensions, availableSpace)

	childIDs := Children(tree, node)

	// Step 1: generate anonymous flex items (non-absolute, non-display:none children).
	items := generateFlexItems(tree, childIDs, style, &c)

	// Step 2: determine available space for items.
	itemAvailableSpace := determineItemAvailableSpace(availableSpace, &c)

	// Step 3: flex base size.
	for _, it := range items {
		determineFlexBaseSize(tree, it, style.FlexDirection, c.nodeInnerSize, itemAvailableSpace)
	}

	// Step 4: collect flex lines.
	lines := collectFlexLines(items, style.FlexWrap, OptMain(c.nodeInnerSize, c.dir), SizeMain(c.gap, c.dir))

	// Step 5: re-resolve gap against the longest line if container main size unknown.
	resolveGapIfNeeded(&c, style, lines)

	// Step 6: resolve flexible lengths per line.
	for li := range lines {
		resolveFlexibleLengths(&lines[li], c.dir.MainAxis(), OptMain(c.nodeInnerSize, c.dir), SizeMain(c.gap, c.dir))
	}

	// The container's main-axis size is settled now (it fed step 6's free
	// space calculation already); fix it so later steps that justify and
	// place items along the main axis have it available.
	mainInner := OptMain(c.nodeInnerSize, c.dir)
	if mainInner == nil {
		mainInner = some(longestLineMain(lines, SizeMain(c.gap, c.dir)))
	}
	c.innerContainerSize = c.innerContainerSize.Set(c.dir.MainAxis(), *mainInner)
	c.containerSize = c.containerSize.Set(c.dir.MainAxis(), *mainInner+MainAxisSum(c.paddingBorder, c.dir))

	// Step 7: hypothetical cross size.
	for li := range lines {
		for _, it := range lines[li].items {
			determineHypotheticalCrossSize(tree, it, &c, itemAvailableSpace)
		}
	}

	// Step 8: baselines for baseline-aligned items.
	for li := range lines {
		calculateBaselines(tree, &lines[li], &c)
	}

	// Step 9: line cross sizes.
	calculateCrossSizes(&lines, &c, knownDimensions)

	// Step 10: stretch align-content.
	handleAlignContentStretch(&lines, style, &c)

	// Step 11: used cross size per item.
	for li := range lines {
		determineUsedCrossSize(&lines[li], &c)
	}

	// Step 12: distribute main-axis free space.
	for li := range lines {
		distributeMainAxisFreeSpace(&lines[li], style, &c)
	}

	// Step 13: resolve cross-axis auto margins / alignment.
	for li := range lines {
		resolveCrossAxisAlignment(&lines[li], &c)
	}

	// Step 15: container cross size.
	containerCross := determineContainerCrossSize(lines, &c, knownDimensions)
	c.innerContainerSize = c.innerContainerSize.Set(c.dir.CrossAxis(), containerCross)
	c.containerSize = c.containerSize.Set(c.dir.CrossAxis(), containerCross+CrossAxisSum(c.paddingBorder, c.dir))

	// Step 16: align lines per align-content.
	alignFlexLinesPerAlignContent(lines, style, &c)

	if runMode == ComputeSize {
		return c.containerSize
	}

	finalLayoutPass(tree, node, lines, &c)
	performAbsoluteLayout(tree, node, childIDs, &c)
	resetHiddenChildren(tree, childIDs)

	return c.containerSize
}

func longestLineMain(lines []flexLine, gapMain float64) float64 {
	longest := 0.0
	for _, ln := range lines {
		total := 0.0
		for _, it := range ln.items {
			total += it.hypotheticalOuterMain
		}
		if n := len(ln.items); n > 1 {
			total += float64(n-1) * gapMain
		}
		if total > longest {
			longest = total
		}
	}
	return longest
}

func computeConstants(style Style, knownDimensions Size[*float64], availableSpace Size[AvailableSpace]) algoConstants {
	dir := style.FlexDirection
	basis := asOptions(availableSpace)

	margin := Rect[*float64]{
		Top:    style.Margin.Top.Resolve(basis.Height),
		Right:  style.Margin.Right.Resolve(basis.Width),
		Bottom: style.Margin.Bottom.Resolve(basis.Height),
		Left:   style.Margin.Left.Resolve(basis.Width),
	}
	padding := resolveEdgesOrZero(style.Padding, basis.Width)
	border := resolveEdgesOrZero(style.Border, basis.Width)
	paddingBorder := AddRect(padding, border)

	nodeSize := sizeOr(knownDimensions, sizeMaybeResolve(style.Size, basis))
	nodeMinSize := sizeMaybeResolve(style.MinSize, basis)
	nodeMaxSize := sizeMaybeResolve(style.MaxSize, basis)

	nodeInnerSize := Size[*float64]{
		Width:  maybeSub(nodeSize.Width, some(SumHorizontal(paddingBorder))),
		Height: maybeSub(nodeSize.Height, some(SumVertical(paddingBorder))),
	}

	gap := Size[float64]{
		Width:  style.Gap.Width.ResolveOrZero(nodeInnerSize.Width),
		Height: style.Gap.Height.ResolveOrZero(nodeInnerSize.Height),
	}

	return algoConstants{
		dir:           dir,
		isRow:         dir.IsRow(),
		isColumn:      dir.IsColumn(),
		isWrapReverse: style.FlexWrap == WrapReverse,
		isWrap:        style.FlexWrap != NoWrap,
		margin:        margin,
		border:        border,
		padding:       padding,
		paddingBorder: paddingBorder,
		gap:           gap,
		alignItems:    style.ResolvedAlignItems(),
		nodeSize:      nodeSize,
		nodeMinSize:   nodeMinSize,
		nodeMaxSize:   nodeMaxSize,
		nodeInnerSize: nodeInnerSize,
	}
}

func generateFlexItems(tree Tree, childIDs []NodeID, parentStyle Style, c *algoConstants) []*flexItem {
	items := make([]*flexItem, 0, len(childIDs))
	for i, id := range childIDs {
		style := tree.Style(id)
		if style.Position == PositionAbsolute || style.Display == DisplayNone {
			continue
		}

		parentBasis := Size[*float64]{
			Width:  c.nodeInnerSize.Width,
			Height: c.nodeInnerSize.Height,
		}

		it := &flexItem{
			node:  id,
			style: style,
			order: i,
			size:  sizeMaybeResolve(style.Size, parentBasis),
			min:   sizeMaybeResolve(style.MinSize, parentBasis),
			max:   sizeMaybeResolve(style.MaxSize, parentBasis),
			inset: Rect[*float64]{
				Top:    style.Inset.Top.Resolve(parentBasis.Height),
				Right:  style.Inset.Right.Resolve(parentBasis.Width),
				Bottom: style.Inset.Bottom.Resolve(parentBasis.Height),
				Left:   style.Inset.Left.Resolve(parentBasis.Width),
			},
			margin: Rect[*float64]{
				Top:    style.Margin.Top.Resolve(parentBasis.Height),
				Right:  style.Margin.Right.Resolve(parentBasis.Width),
				Bottom: style.Margin.Bottom.Resolve(parentBasis.Height),
				Left:   style.Margin.Left.Resolve(parentBasis.Width),
			},
			padding:   resolveEdgesOrZero(style.Padding, parentBasis.Width),
			border:    resolveEdgesOrZero(style.Border, parentBasis.Width),
			alignSelf: ItemAlign(parentStyle, style),
		}
		items = append(items, it)
	}
	return items
}

// determineItemAvailableSpace implements step 2: subtract the container's
// own margin (auto counting as 0) and padding+border from the outer
// available space, replacing with Definite when a known dimension exists.
func determineItemAvailableSpace(availableSpace Size[AvailableSpace], c *algoConstants) Size[AvailableSpace] {
	marginH := unwrapOr(c.margin.Left, 0) + unwrapOr(c.margin.Right, 0)
	marginV := unwrapOr(c.margin.Top, 0) + unwrapOr(c.margin.Bottom, 0)
	width := availableSpace.Width.MaybeSub(some(marginH + SumHorizontal(c.paddingBorder))).MaybeSet(c.nodeInnerSize.Width)
	height := availableSpace.Height.MaybeSub(some(marginV + SumVertical(c.paddingBorder))).MaybeSet(c.nodeInnerSize.Height)
	return Size[AvailableSpace]{Width: width, Height: height}
}

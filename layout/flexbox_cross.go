package layout

// determineHypotheticalCrossSize implements step 7: size each item along
// the cross axis given its now-fixed main size, ignoring line stretching
// (that happens once the line's cross size is known, in step 11).
func determineHypotheticalCrossSize(tree Tree, it *flexItem, c *algoConstants, itemAvailableSpace Size[AvailableSpace]) {
	mainAxis := c.dir.MainAxis()
	crossAxis := c.dir.CrossAxis()

	// The cross axis is seeded from the item's own resolved (border-box)
	// cross size, clamped to its (also border-box) min/max — not left
	// unknown — so an explicit height (in a row) still applies even though
	// this call runs under ContentSize; only a truly unset cross size
	// falls through to stretch or content measurement. known/target here
	// are border-box, matching the main-axis seed below, so the clamp
	// bounds must stay border-box too (it.min/it.max, not innerMin/innerMax).
	childCross := maybeClamp(it.size.Get(crossAxis), it.min.Get(crossAxis), it.max.Get(crossAxis))

	known := Size[*float64]{}
	known = known.Set(mainAxis, some(it.targetMainSize+it.paddingBorderSum(mainAxis)))
	known = known.Set(crossAxis, childCross)

	sz := computeNodeLayout(tree, it.node, known, itemAvailableSpace, ComputeSize, ContentSize)
	crossContent := maxf0(sz.Get(crossAxis) - it.paddingBorderSum(crossAxis))

	it.hypotheticalInnerCrossSize = maxf0(clampWithOptions(crossContent, it.innerMin(crossAxis), it.innerMax(crossAxis)))
}

// hypotheticalOuterCross returns an item's content-box cross size plus its
// padding, border and margin on the cross axis.
func hypotheticalOuterCross(it *flexItem, crossAxis AbsoluteAxis) float64 {
	return it.hypotheticalInnerCrossSize + it.paddingBorderSum(crossAxis) + it.marginSum(crossAxis)
}

// calculateBaselines implements step 8. Without access to real text-ascent
// metrics, the synthesized baseline of an item is its border-box bottom
// edge — the fallback CSS itself specifies when a box has no baseline of
// its own — so baseline-aligned items behave like end-aligned items with
// zero descent.
func calculateBaselines(tree Tree, line *flexLine, c *algoConstants) {
	crossAxis := c.dir.CrossAxis()
	maxBaseline := 0.0
	for _, it := range line.items {
		if it.alignSelf != AlignBaseline {
			continue
		}
		it.baseline = it.hypotheticalInnerCrossSize + it.paddingBorderSum(crossAxis)
		if it.baseline > maxBaseline {
			maxBaseline = it.baseline
		}
	}
	line.maxBaseline = maxBaseline
}

// calculateCrossSizes implements step 9: each line's cross size is the
// largest hypothetical outer cross size among its items, except that a
// single-line container with a definite cross size uses that size
// directly (so align-items: stretch has the full box to work with even
// when every item is smaller).
func calculateCrossSizes(lines *[]flexLine, c *algoConstants, knownDimensions Size[*float64]) {
	crossAxis := c.dir.CrossAxis()
	ls := *lines

	if len(ls) == 1 {
		if cv := c.nodeSize.Get(crossAxis); cv != nil {
			ls[0].crossSize = maxf0(*cv - CrossAxisSum(c.paddingBorder, c.dir))
			return
		}
	}

	for i := range ls {
		max := 0.0
		for _, it := range ls[i].items {
			outer := hypotheticalOuterCross(it, crossAxis)
			if outer > max {
				max = outer
			}
		}
		ls[i].crossSize = max
	}
}

// handleAlignContentStretch implements step 10: when align-content is
// Stretch and the container's cross size is definite, grow each line
// evenly to consume any leftover cross-axis space.
func handleAlignContentStretch(lines *[]flexLine, style Style, c *algoConstants) {
	if style.AlignContent != AlignContentStretch {
		return
	}
	crossAxis := c.dir.CrossAxis()
	avail := c.nodeInnerSize.Get(crossAxis)
	if avail == nil {
		return
	}

	ls := *lines
	if len(ls) == 0 {
		return
	}

	total := 0.0
	for _, ln := range ls {
		total += ln.crossSize
	}
	total += SizeCross(c.gap, c.dir) * float64(len(ls)-1)

	extra := *avail - total
	if extra <= 0 {
		return
	}
	per := extra / float64(len(ls))
	for i := range ls {
		ls[i].crossSize += per
	}
}

// determineUsedCrossSize implements step 11: a Stretch item with no
// explicit cross size and no auto cross margins fills its line; every
// other item keeps its hypothetical cross size.
func determineUsedCrossSize(line *flexLine, c *algoConstants) {
	crossAxis := c.dir.CrossAxis()
	for _, it := range line.items {
		startAuto, endAuto := it.crossMarginIsAuto(c.dir)
		ownCrossSet := it.size.Get(crossAxis) != nil

		if it.alignSelf == AlignStretch && !startAuto && !endAuto && !ownCrossSet {
			used := line.crossSize - it.marginSum(crossAxis) - it.paddingBorderSum(crossAxis)
			it.usedCrossSize = maxf0(clampWithOptions(used, it.innerMin(crossAxis), it.innerMax(crossAxis)))
		} else {
			it.usedCrossSize = it.hypotheticalInnerCrossSize
		}
	}
}

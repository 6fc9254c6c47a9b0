package layout

// determineFlexBaseSize implements step 3 of the flexbox algorithm:
// resolving each item's flex-basis, its inner flex basis (basis minus
// main-axis padding/border), and its resolved minimum main size.
func determineFlexBaseSize(tree Tree, it *flexItem, dir FlexDirection, nodeInnerSize Size[*float64], itemAvailableSpace Size[AvailableSpace]) {
	mainAxis := dir.MainAxis()
	crossAxis := dir.CrossAxis()

	mainBasis := itemAvailableSpace.Get(mainAxis).ToOption()

	var flexBasis float64
	switch {
	case it.style.FlexBasis.Resolve(mainBasis) != nil:
		flexBasis = *it.style.FlexBasis.Resolve(mainBasis)

	case it.style.AspectRatio != nil && it.style.FlexBasis.IsAuto() && crossKnown(it, itemAvailableSpace, crossAxis) != nil:
		ratio := *it.style.AspectRatio
		cross := *crossKnown(it, itemAvailableSpace, crossAxis)
		if mainAxis == AxisHorizontal {
			flexBasis = cross * ratio
		} else {
			flexBasis = cross / ratio
		}

	default:
		// Seed known from the item's own resolved size (not empty): an
		// explicit main-axis width/height still determines the flex base
		// size even though flex-basis itself is auto — only a fully
		// unspecified main axis falls through to a real content measurement.
		known := it.size
		if it.alignSelf == AlignStretch && known.Get(crossAxis) == nil {
			if cv := nodeInnerSize.Get(crossAxis); cv != nil {
				known = known.Set(crossAxis, cv)
			}
		}
		sz := computeNodeLayout(tree, it.node, known, itemAvailableSpace, ComputeSize, ContentSize)
		flexBasis = sz.Get(mainAxis)
	}

	it.flexBasis = flexBasis
	pbMain := it.paddingBorderSum(mainAxis)
	it.innerFlexBasis = flexBasis - pbMain

	// resolveMinimumMainSize works in border-box terms (it queries child
	// layout, which always returns border-box sizes); convert down to the
	// content-box terms the grow/shrink distribution uses.
	resolvedMinOuter := it.resolveMinimumMainSize(tree, mainAxis, itemAvailableSpace)
	it.resolvedMinimumMain = maxf0(resolvedMinOuter - pbMain)

	it.hypotheticalInnerMain = maxf0(clampWithOptions(it.innerFlexBasis, some(it.resolvedMinimumMain), it.innerMax(mainAxis)))
	it.hypotheticalOuterMain = it.hypotheticalInnerMain + pbMain + it.marginSum(mainAxis)
}

// crossKnown returns the item's best-known cross size: its own resolved
// style size if set, else the cross component of the available space.
func crossKnown(it *flexItem, itemAvailableSpace Size[AvailableSpace], crossAxis AbsoluteAxis) *float64 {
	if v := it.size.Get(crossAxis); v != nil {
		return v
	}
	return itemAvailableSpace.Get(crossAxis).ToOption()
}

// resolveMinimumMainSize computes the "resolved minimum size":
// min_size if set, else min(min_content_size, size.maybe_min(max_size)).
func (it *flexItem) resolveMinimumMainSize(tree Tree, mainAxis AbsoluteAxis, itemAvailableSpace Size[AvailableSpace]) float64 {
	if mn := it.min.Get(mainAxis); mn != nil {
		return *mn
	}

	minAvail := itemAvailableSpace
	minAvail = minAvail.Set(mainAxis, MinContent())
	minContentSize := computeNodeLayout(tree, it.node, Size[*float64]{}, minAvail, ComputeSize, ContentSize)
	minContentMain := minContentSize.Get(mainAxis)

	specified := maybeMin(it.size.Get(mainAxis), it.max.Get(mainAxis))
	if specified != nil {
		return min(minContentMain, *specified)
	}
	return minContentMain
}

// collectFlexLines implements step 4: split items into flex lines,
// wrapping greedily against mainAvailable when flex-wrap is not NoWrap.
// The first item of a line never starts a new one.
func collectFlexLines(items []*flexItem, wrap FlexWrap, mainAvailable *float64, gapMain float64) []flexLine {
	if wrap == NoWrap || len(items) == 0 {
		return []flexLine{{items: items}}
	}

	var lines []flexLine
	var current []*flexItem
	runningMain := 0.0

	for _, it := range items {
		addition := it.hypotheticalOuterMain
		if len(current) > 0 {
			addition += gapMain
		}
		if mainAvailable != nil && len(current) > 0 && runningMain+addition > *mainAvailable {
			lines = append(lines, flexLine{items: current})
			current = []*flexItem{it}
			runningMain = it.hypotheticalOuterMain
			continue
		}
		current = append(current, it)
		runningMain += addition
	}
	if len(current) > 0 {
		lines = append(lines, flexLine{items: current})
	}
	return lines
}

// resolveGapIfNeeded implements step 5: when the container's main inner
// size is unknown, the gap must be re-resolved against the longest line's
// main content size (a percentage gap has nothing else to resolve
// against). c.gap is overwritten; step 6 only uses the gap when the main
// inner size is known, which is exactly when this function does nothing,
// so free-space accounting always sees the originally resolved gap.
func resolveGapIfNeeded(c *algoConstants, style Style, lines []flexLine) {
	if OptMain(c.nodeInnerSize, c.dir) != nil {
		return
	}
	longest := some(longestLineMain(lines, SizeMain(c.gap, c.dir)))
	newGapMain := style.Gap.Get(c.dir.MainAxis()).ResolveOrZero(longest)
	c.gap = SetMain(c.gap, c.dir, newGapMain)
}

// resolveFlexibleLengths implements step 6: the grow/shrink resolution
// loop that turns each item's hypothetical main size into a target size.
func resolveFlexibleLengths(line *flexLine, mainAxis AbsoluteAxis, nodeInnerMain *float64, gapMain float64) {
	items := line.items
	if len(items) == 0 {
		return
	}

	usedFlexFactor := 0.0
	for _, it := range items {
		usedFlexFactor += it.hypotheticalOuterMain
	}
	gaps := gapMain * float64(len(items)-1)
	usedFlexFactor += gaps

	if nodeInnerMain == nil {
		for _, it := range items {
			it.targetMainSize = it.hypotheticalInnerMain
			it.outerTargetMain = it.hypotheticalOuterMain
			it.frozen = true
		}
		return
	}

	growing := usedFlexFactor < *nodeInnerMain
	initialFreeSpace := *nodeInnerMain - usedFlexFactor

	for _, it := range items {
		inflexible := it.style.FlexGrow == 0 && it.style.FlexShrink == 0
		switch {
		case inflexible:
			it.frozen = true
		case growing && it.flexBasis > it.hypotheticalInnerMain:
			it.frozen = true
		case !growing && it.flexBasis < it.hypotheticalInnerMain:
			it.frozen = true
		}
		if it.frozen {
			it.targetMainSize = it.hypotheticalInnerMain
			it.outerTargetMain = it.hypotheticalOuterMain
		}
	}

	for {
		allFrozen := true
		for _, it := range items {
			if !it.frozen {
				allFrozen = false
				break
			}
		}
		if allFrozen {
			break
		}

		frozenOuterSum, unfrozenBaseSum := 0.0, 0.0
		sumGrow, sumShrink, sumScaled := 0.0, 0.0, 0.0
		for _, it := range items {
			if it.frozen {
				frozenOuterSum += it.outerTargetMain
				continue
			}
			unfrozenBaseSum += it.hypotheticalOuterMain
			sumGrow += it.style.FlexGrow
			sumShrink += it.style.FlexShrink
			sumScaled += it.innerFlexBasis * it.style.FlexShrink
		}

		remainingFreeSpace := *nodeInnerMain - (frozenOuterSum + unfrozenBaseSum) - gaps
		sumUnfrozenFactor := sumGrow
		if !growing {
			sumUnfrozenFactor = sumShrink
		}
		if sumUnfrozenFactor < 1 && sumUnfrozenFactor > 0 {
			capped := initialFreeSpace * sumUnfrozenFactor
			if growing && remainingFreeSpace > capped {
				remainingFreeSpace = capped
			} else if !growing && remainingFreeSpace < capped {
				remainingFreeSpace = capped
			}
		}

		rawTarget := make([]float64, len(items))
		for i, it := range items {
			if it.frozen {
				rawTarget[i] = it.targetMainSize
				continue
			}
			switch {
			case growing && sumGrow > 0:
				rawTarget[i] = it.innerFlexBasis + remainingFreeSpace*(it.style.FlexGrow/sumGrow)
			case !growing && sumShrink > 0:
				scaled := it.innerFlexBasis * it.style.FlexShrink
				share := 0.0
				if sumScaled > 0 {
					share = scaled / sumScaled
				}
				rawTarget[i] = it.innerFlexBasis + remainingFreeSpace*share
			default:
				rawTarget[i] = it.innerFlexBasis
			}
		}

		totalViolation := 0.0
		violation := make([]float64, len(items))
		for i, it := range items {
			if it.frozen {
				continue
			}
			clamped := clampWithOptions(rawTarget[i], some(it.resolvedMinimumMain), it.innerMax(mainAxis))
			clamped = maxf0(clamped)
			violation[i] = clamped - rawTarget[i]
			totalViolation += violation[i]
			rawTarget[i] = clamped
		}

		for i, it := range items {
			if it.frozen {
				continue
			}
			switch {
			case totalViolation > 0 && violation[i] > 0:
				it.frozen = true
			case totalViolation < 0 && violation[i] < 0:
				it.frozen = true
			case totalViolation == 0:
				it.frozen = true
			}
			if it.frozen {
				it.targetMainSize = rawTarget[i]
				it.outerTargetMain = rawTarget[i] + it.paddingBorderSum(mainAxis) + it.marginSum(mainAxis)
			}
		}
		_ = frozenOuterSum
	}
}

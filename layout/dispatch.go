package layout

// ComputeLayout is the public entry point (spec.md §6). It writes layouts
// in place across the whole subtree reachable from root. A caller asking
// "how big would you be naturally?" passes
// Size[AvailableSpace]{Width: MaxContent(), Height: MaxContent()}.
func ComputeLayout(tree Tree, root NodeID, availableSpace Size[AvailableSpace]) {
	size := computeNodeLayout(tree, root, Size[*float64]{}, availableSpace, PerformLayout, InherentSize)

	*tree.LayoutMut(root) = Layout{Size: size, Location: Point[float64]{}, Order: 0}

	roundLayout(tree, root, 0, 0)
}

// computeNodeLayout is the recursive driver (spec.md §4.4): it consults
// the cache, dispatches to the leaf sizer or the flexbox engine by
// style.Display, stores the result, and returns the size. The flexbox
// engine re-enters this function for every child size query.
func computeNodeLayout(tree Tree, node NodeID, knownDimensions Size[*float64], availableSpace Size[AvailableSpace], runMode RunMode, sizingMode SizingMode) Size[float64] {
	childCount := tree.ChildCount(node)

	// Leaf layout is size-only, so its cache entries are always written
	// and read as PerformLayout — a ComputeSize caller and a PerformLayout
	// caller for a leaf ask the same question.
	cacheRunMode := runMode
	if childCount == 0 {
		cacheRunMode = PerformLayout
	}

	cache := tree.CacheMut(node)
	if cached, ok := cache.Get(knownDimensions, availableSpace, cacheRunMode, sizingMode); ok {
		return cached
	}

	style := tree.Style(node)

	var computed Size[float64]
	switch {
	case style.Display == DisplayNone:
		computed = Size[float64]{}
		if runMode == PerformLayout {
			resetDescendantsToZero(tree, node)
		}
	case childCount == 0:
		computed = computeLeaf(tree, node, style, knownDimensions, availableSpace, sizingMode)
	default: // DisplayFlex with children
		computed = flexCompute(tree, node, knownDimensions, availableSpace, runMode)
	}

	cache.Store(knownDimensions, availableSpace, cacheRunMode, computed)
	return computed
}

// resetDescendantsToZero zeroes the Layout of every descendant of node and
// clears their caches, preserving sibling order. Used when a node's
// display:none subtree is (re)computed under PerformLayout, so a
// subsequently unhidden subtree never inherits stale geometry.
func resetDescendantsToZero(tree Tree, node NodeID) {
	n := tree.ChildCount(node)
	for i := 0; i < n; i++ {
		child := tree.Child(node, i)
		*tree.LayoutMut(child) = Layout{Order: uint32(i)}
		tree.CacheMut(child).Clear()
		resetDescendantsToZero(tree, child)
	}
}

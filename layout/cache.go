package layout

// cacheSize is the fixed number of memo slots per node (spec.md §4.2).
const cacheSize = 9

// cacheEntry is one memoized (inputs -> output) pair.
type cacheEntry struct {
	occupied       bool
	knownWidth     bool
	knownHeight    bool
	known          Size[*float64]
	availableSpace Size[AvailableSpace]
	runMode        RunMode
	output         Size[float64]
}

// Cache is the small per-node memo that makes re-entrant intrinsic-size
// queries tractable (spec.md §4.2, §9). Its lifetime equals its node's; it
// is never invalidated by the layout core itself, only cleared by
// external style changes or by the dispatcher's display:none reset.
type Cache struct {
	entries [cacheSize]cacheEntry
	ring    int // round-robin cursor for the shared intrinsic-query slots
}

// Clear empties every slot.
func (c *Cache) Clear() {
	*c = Cache{}
}

// slotIndex picks a deterministic slot for a (knownWidth, knownHeight)
// combination, matching spec.md's "2 * known_width_set + known_height_set"
// scheme. Queries with at least one known dimension land in slots 1-3 by
// that formula (slot 0 is never used); queries with neither dimension
// known rotate through the ring of slots 4-8 (e.g. measuring at several
// AvailableSpace values during the same call).
func slotIndex(knownWidth, knownHeight bool, ring int) int {
	base := 0
	if knownWidth {
		base += 2
	}
	if knownHeight {
		base += 1
	}
	if base != 0 {
		return base
	}
	// "Neither known" queries are the common case for intrinsic sizing
	// and recur many times with different AvailableSpace; rotate them
	// through the remaining slots instead of evicting slot 0 every time.
	return 4 + (ring % (cacheSize - 4))
}

// runModeCompatible reports whether a cached entry computed under
// cachedMode can answer a query made under queryMode. A PerformLayout
// entry answers a ComputeSize query (a size is a size); the reverse is
// not true, since a ComputeSize entry never wrote child Layouts.
func runModeCompatible(cachedMode, queryMode RunMode) bool {
	if cachedMode == queryMode {
		return true
	}
	return cachedMode == PerformLayout && queryMode == ComputeSize
}

// knownMatches reports whether a query's known dimension matches the
// cached one exactly, or matches the cached entry's own output on that
// axis (the "what size would you be if you were exactly the size you
// said?" rule).
func knownMatches(query, cachedKnown *float64, cachedOutput float64) bool {
	if query == nil {
		return cachedKnown == nil
	}
	if cachedKnown != nil && *query == *cachedKnown {
		return true
	}
	return *query == cachedOutput
}

// availableMatches reports whether a query's available-space component
// satisfies a cached entry's, given the cache's sizing mode.
func availableMatches(query AvailableSpace, cachedAvailable AvailableSpace, cachedOutput float64, sizingMode SizingMode) bool {
	if query == cachedAvailable {
		return true
	}
	if sizingMode == ContentSize && query.Kind == SpaceDefinite && query.Value >= cachedOutput {
		// Content-based sizing is monotonic in slack: more room than the
		// cached output already provided can't change the answer.
		return true
	}
	return false
}

// Get looks up a cached result for (known, available, runMode, sizingMode).
// It returns (size, true) on a hit.
func (c *Cache) Get(known Size[*float64], available Size[AvailableSpace], runMode RunMode, sizingMode SizingMode) (Size[float64], bool) {
	for i := range c.entries {
		e := &c.entries[i]
		if !e.occupied {
			continue
		}
		if !runModeCompatible(e.runMode, runMode) {
			continue
		}
		if !knownMatches(known.Width, e.known.Width, e.output.Width) {
			continue
		}
		if !knownMatches(known.Height, e.known.Height, e.output.Height) {
			continue
		}
		if !availableMatches(available.Width, e.availableSpace.Width, e.output.Width, sizingMode) {
			continue
		}
		if !availableMatches(available.Height, e.availableSpace.Height, e.output.Height, sizingMode) {
			continue
		}
		return e.output, true
	}
	return Size[float64]{}, false
}

// Store writes a result under the key's deterministic slot.
func (c *Cache) Store(known Size[*float64], available Size[AvailableSpace], runMode RunMode, output Size[float64]) {
	knownWidth := known.Width != nil
	knownHeight := known.Height != nil

	idx := slotIndex(knownWidth, knownHeight, c.ring)
	if !knownWidth && !knownHeight {
		c.ring++
	}

	c.entries[idx] = cacheEntry{
		occupied:       true,
		knownWidth:     knownWidth,
		knownHeight:    knownHeight,
		known:          known,
		availableSpace: available,
		runMode:        runMode,
		output:         output,
	}
}

package layout

import "testing"

func TestCacheStoreAndGetExactMatch(t *testing.T) {
	var c Cache
	known := Size[*float64]{Width: some(10)}
	available := Size[AvailableSpace]{Width: Definite(10), Height: MaxContent()}
	c.Store(known, available, PerformLayout, Size[float64]{Width: 10, Height: 4})

	got, ok := c.Get(known, available, PerformLayout, InherentSize)
	if !ok {
		t.Fatal("expected cache hit on exact match")
	}
	if got.Width != 10 || got.Height != 4 {
		t.Errorf("Get = %+v, want {10 4}", got)
	}
}

func TestCacheMissOnDifferentAvailableSpace(t *testing.T) {
	var c Cache
	c.Store(Size[*float64]{}, Size[AvailableSpace]{Width: Definite(10)}, PerformLayout, Size[float64]{Width: 10})

	if _, ok := c.Get(Size[*float64]{}, Size[AvailableSpace]{Width: Definite(20)}, PerformLayout, InherentSize); ok {
		t.Error("expected miss: available space differs and query is not content-size-monotonic")
	}
}

func TestCachePerformLayoutAnswersComputeSizeQuery(t *testing.T) {
	var c Cache
	known := Size[*float64]{Width: some(5), Height: some(5)}
	c.Store(known, Size[AvailableSpace]{}, PerformLayout, Size[float64]{Width: 5, Height: 5})

	if _, ok := c.Get(known, Size[AvailableSpace]{}, ComputeSize, InherentSize); !ok {
		t.Error("a PerformLayout entry should satisfy a ComputeSize query")
	}
}

func TestCacheComputeSizeDoesNotAnswerPerformLayoutQuery(t *testing.T) {
	var c Cache
	known := Size[*float64]{Width: some(5), Height: some(5)}
	c.Store(known, Size[AvailableSpace]{}, ComputeSize, Size[float64]{Width: 5, Height: 5})

	if _, ok := c.Get(known, Size[AvailableSpace]{}, PerformLayout, InherentSize); ok {
		t.Error("a ComputeSize entry must not satisfy a PerformLayout query")
	}
}

func TestCacheContentSizeMonotonicHit(t *testing.T) {
	var c Cache
	c.Store(Size[*float64]{}, Size[AvailableSpace]{Width: Definite(10)}, PerformLayout, Size[float64]{Width: 8})

	got, ok := c.Get(Size[*float64]{}, Size[AvailableSpace]{Width: Definite(20)}, PerformLayout, ContentSize)
	if !ok {
		t.Fatal("more available space than the cached output already used should hit under ContentSize")
	}
	if got.Width != 8 {
		t.Errorf("Get = %+v, want width 8", got)
	}
}

func TestCacheKnownMatchesCachedOutput(t *testing.T) {
	var c Cache
	c.Store(Size[*float64]{}, Size[AvailableSpace]{}, PerformLayout, Size[float64]{Width: 7, Height: 3})

	w := 7.0
	known := Size[*float64]{Width: &w}
	if _, ok := c.Get(known, Size[AvailableSpace]{}, PerformLayout, InherentSize); !ok {
		t.Error("a known width equal to the cached output should hit")
	}
}

func TestCacheClear(t *testing.T) {
	var c Cache
	c.Store(Size[*float64]{}, Size[AvailableSpace]{}, PerformLayout, Size[float64]{Width: 1, Height: 1})
	c.Clear()

	if _, ok := c.Get(Size[*float64]{}, Size[AvailableSpace]{}, PerformLayout, InherentSize); ok {
		t.Error("Clear should evict all entries")
	}
}

func TestCacheRingRotatesIntrinsicSlots(t *testing.T) {
	var c Cache
	// Store several distinct "neither known" entries; each should land in
	// its own ring slot rather than evicting the previous one.
	spaces := []AvailableSpace{Definite(1), Definite(2), Definite(3), Definite(4), Definite(5)}
	for i, sp := range spaces {
		c.Store(Size[*float64]{}, Size[AvailableSpace]{Width: sp}, PerformLayout, Size[float64]{Width: float64(i)})
	}
	for _, sp := range spaces {
		if _, ok := c.Get(Size[*float64]{}, Size[AvailableSpace]{Width: sp}, PerformLayout, InherentSize); !ok {
			t.Errorf("expected ring to retain entry for %+v", sp)
		}
	}
}

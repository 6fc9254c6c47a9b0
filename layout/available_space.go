package layout

// SpaceKind tags which of the three AvailableSpace variants is active.
type SpaceKind uint8

const (
	SpaceDefinite SpaceKind = iota
	SpaceMinContent
	SpaceMaxContent
)

// AvailableSpace is the three-valued constraint lattice spec.md §4.1/§9
// requires: a definite length, or one of two intrinsic-sizing signals
// (MinContent / MaxContent) that must survive arithmetic which is not
// "definite-reducing". It is deliberately not an Option<f32> — only
// MaybeMin collapses the intrinsic variants to a definite value.
type AvailableSpace struct {
	Kind  SpaceKind
	Value float64 // meaningful only when Kind == SpaceDefinite
}

// Definite builds a definite available space of v.
func Definite(v float64) AvailableSpace { return AvailableSpace{Kind: SpaceDefinite, Value: v} }

// MinContent builds the min-content available space signal.
func MinContent() AvailableSpace { return AvailableSpace{Kind: SpaceMinContent} }

// MaxContent builds the max-content available space signal.
func MaxContent() AvailableSpace { return AvailableSpace{Kind: SpaceMaxContent} }

// IsDefinite reports whether a carries a concrete length.
func (a AvailableSpace) IsDefinite() bool { return a.Kind == SpaceDefinite }

// ToOption returns a's value as an option: Some(v) when definite, else None.
func (a AvailableSpace) ToOption() *float64 {
	if a.Kind == SpaceDefinite {
		return some(a.Value)
	}
	return nil
}

// MaybeSub subtracts v from a Definite available space; MinContent and
// MaxContent pass through unchanged regardless of v.
func (a AvailableSpace) MaybeSub(v *float64) AvailableSpace {
	if a.Kind != SpaceDefinite || v == nil {
		return a
	}
	return Definite(a.Value - *v)
}

// MaybeMax raises a Definite available space's floor; MinContent and
// MaxContent pass through unchanged. A nil v is "no constraint" (identity).
func (a AvailableSpace) MaybeMax(v *float64) AvailableSpace {
	if a.Kind != SpaceDefinite || v == nil {
		return a
	}
	if *v > a.Value {
		return Definite(*v)
	}
	return a
}

// MaybeMin is the one operation that collapses MinContent/MaxContent: "if
// you must fit within v, you are now bounded by v" regardless of which
// intrinsic signal you were. A nil v leaves a unchanged.
func (a AvailableSpace) MaybeMin(v *float64) AvailableSpace {
	if v == nil {
		return a
	}
	if a.Kind == SpaceDefinite {
		if *v < a.Value {
			return Definite(*v)
		}
		return a
	}
	return Definite(*v)
}

// MaybeSet returns Definite(*v) when v is known, else a unchanged. Used to
// pin available space to an already-known dimension before measuring.
func (a AvailableSpace) MaybeSet(v *float64) AvailableSpace {
	if v != nil {
		return Definite(*v)
	}
	return a
}

// AvailableSpaceSize bundles an AvailableSpace per axis — the type the
// public entry point and the dispatcher pass around.
type AvailableSpaceSize = Size[AvailableSpace]

// asOptions converts each component to its Option form.
func asOptions(sz Size[AvailableSpace]) Size[*float64] {
	return Size[*float64]{Width: sz.Width.ToOption(), Height: sz.Height.ToOption()}
}

package layout

import "errors"

// The layout solver itself has no runtime failure modes (spec.md §7): every
// numeric operation on a well-formed style produces a finite result, and
// missing percentage bases propagate as None through the option math
// rather than failing. These two sentinels exist only for the tree
// boundary, where an external Tree implementation may need to report that
// it was asked about a node it doesn't recognize, or that a style failed
// validation before it ever reached the solver.
var (
	// ErrInvalidNodeID is returned by a Tree implementation when asked
	// about a NodeID it does not recognize. The layout core never
	// manufactures node IDs, so this can only originate from the caller.
	ErrInvalidNodeID = errors.New("layout: invalid node id")

	// ErrStyleInvariant is returned when a style value violates a
	// construction-time invariant (e.g. NaN in a dimension). Detected by
	// the Tree implementation at construction, never inside the solver.
	ErrStyleInvariant = errors.New("layout: style invariant violated")
)

package layout

// Display controls which layout algorithm, if any, a node uses.
type Display uint8

const (
	DisplayFlex Display = iota
	DisplayNone
)

// Position controls whether a node participates in flex flow or is
// positioned directly against its containing block.
type Position uint8

const (
	PositionRelative Position = iota
	PositionAbsolute
)

// FlexDirection is the main axis along which flex items are laid out.
type FlexDirection uint8

const (
	Row FlexDirection = iota
	Column
	RowReverse
	ColumnReverse
)

// MainAxis returns the absolute axis this direction lays items out along.
func (d FlexDirection) MainAxis() AbsoluteAxis {
	if d == Row || d == RowReverse {
		return AxisHorizontal
	}
	return AxisVertical
}

// CrossAxis returns the absolute axis perpendicular to MainAxis.
func (d FlexDirection) CrossAxis() AbsoluteAxis {
	if d.MainAxis() == AxisHorizontal {
		return AxisVertical
	}
	return AxisHorizontal
}

// IsRow reports whether the main axis is horizontal.
func (d FlexDirection) IsRow() bool { return d.MainAxis() == AxisHorizontal }

// IsColumn reports whether the main axis is vertical.
func (d FlexDirection) IsColumn() bool { return d.MainAxis() == AxisVertical }

// IsReverse reports whether items are enumerated back-to-front.
func (d FlexDirection) IsReverse() bool { return d == RowReverse || d == ColumnReverse }

// FlexWrap controls whether, and in which direction, flex lines wrap.
type FlexWrap uint8

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

// Align is the enumeration for align-items / align-self. align-content
// and justify-content use AlignContent instead.
type Align uint8

const (
	AlignStart Align = iota
	AlignEnd
	AlignCenter
	AlignBaseline
	AlignStretch
)

// AlignContent additionally supports the space-distribution modes that
// align-items/align-self do not.
type AlignContent uint8

const (
	AlignContentStart AlignContent = iota
	AlignContentEnd
	AlignContentCenter
	AlignContentStretch
	AlignContentSpaceBetween
	AlignContentSpaceAround
	AlignContentSpaceEvenly
)

// JustifyContent distributes free space along the main axis. It shares
// the same vocabulary as AlignContent; Stretch behaves as Start.
type JustifyContent = AlignContent

// Unit tags how a Value's Amount should be interpreted.
type Unit uint8

const (
	UnitAuto Unit = iota
	UnitPoints
	UnitPercent
)

// Value is a dimension that is either automatic, an absolute length, or a
// percentage of some basis resolved later. It backs both the spec's
// Dimension (width/height/min/max, flex-basis) and LengthPercentageAuto
// (margin, inset) value languages — both share the same {Auto, Points,
// Percent} shape.
type Value struct {
	Unit   Unit
	Amount float64
}

// Auto is a Value that should be computed from content or flex.
func Auto() Value { return Value{Unit: UnitAuto} }

// Points is a Value representing an absolute length.
func Points(p float64) Value { return Value{Unit: UnitPoints, Amount: p} }

// Percent is a Value representing a fraction (0.5 == 50%) of a basis
// resolved against the containing size.
func Percent(f float64) Value { return Value{Unit: UnitPercent, Amount: f} }

// IsAuto reports whether v is the automatic value.
func (v Value) IsAuto() bool { return v.Unit == UnitAuto }

// Resolve computes v against basis. Auto resolves to None (nil); Points
// resolves to itself; Percent resolves to basis*amount when basis is
// known, else None.
func (v Value) Resolve(basis *float64) *float64 {
	switch v.Unit {
	case UnitPoints:
		amt := v.Amount
		return &amt
	case UnitPercent:
		if basis == nil {
			return nil
		}
		r := *basis * v.Amount
		return &r
	default: // UnitAuto
		return nil
	}
}

// LengthPercentage is a dimension with no Auto variant: used for padding,
// border and gap, which are always either a fixed length or a percentage.
type LengthPercentage struct {
	IsPercent bool
	Amount    float64
}

// LengthPoints builds an absolute-length LengthPercentage.
func LengthPoints(p float64) LengthPercentage { return LengthPercentage{Amount: p} }

// LengthPercent builds a percentage LengthPercentage (fraction, 0.5 = 50%).
func LengthPercent(f float64) LengthPercentage { return LengthPercentage{IsPercent: true, Amount: f} }

// Resolve computes l against basis, returning None when l is a percentage
// and basis is unknown.
func (l LengthPercentage) Resolve(basis *float64) *float64 {
	if !l.IsPercent {
		amt := l.Amount
		return &amt
	}
	if basis == nil {
		return nil
	}
	r := *basis * l.Amount
	return &r
}

// ResolveOrZero is Resolve but collapses an unknown basis to zero — the
// behavior CSS specifies for zeroable contexts like padding/border/gap.
func (l LengthPercentage) ResolveOrZero(basis *float64) float64 {
	if r := l.Resolve(basis); r != nil {
		return *r
	}
	return 0
}

// Style is the full set of layout-affecting properties for one node.
type Style struct {
	Display  Display
	Position Position

	FlexDirection FlexDirection
	FlexWrap      FlexWrap

	AlignItems   Align  // DefaultStyle sets AlignStretch; the zero value is AlignStart
	AlignSelf    *Align // nil = inherit from parent's AlignItems
	AlignContent AlignContent
	Justify      JustifyContent

	Size    Size[Value]
	MinSize Size[Value]
	MaxSize Size[Value]

	Margin Rect[Value]
	Inset  Rect[Value]

	Padding Rect[LengthPercentage]
	Border  Rect[LengthPercentage]

	Gap Size[LengthPercentage]

	FlexGrow   float64
	FlexShrink float64
	FlexBasis  Value

	// AspectRatio, if non-nil, fixes width/height to this ratio
	// (width / height) whenever only one axis is otherwise determined.
	AspectRatio *float64
}

// DefaultStyle returns a Style with the defaults spec.md §3 lists.
func DefaultStyle() Style {
	return Style{
		Display:       DisplayFlex,
		Position:      PositionRelative,
		FlexDirection: Row,
		FlexWrap:      NoWrap,
		AlignItems:    AlignStretch,
		AlignContent:  AlignContentStretch,
		Justify:       AlignContentStart,
		Size:          Size[Value]{Width: Auto(), Height: Auto()},
		MinSize:       Size[Value]{Width: Auto(), Height: Auto()},
		MaxSize:       Size[Value]{Width: Auto(), Height: Auto()},
		Margin:        RectAll[Value](Points(0)),
		Inset:         RectAll[Value](Auto()),
		FlexGrow:      0,
		FlexShrink:    1,
		FlexBasis:     Auto(),
	}
}

// ResolvedAlignItems returns style.AlignItems as set. The Stretch default
// comes from DefaultStyle; a zero-valued Style yields AlignStart.
func (s Style) ResolvedAlignItems() Align {
	return s.AlignItems
}

// ItemAlign resolves a child's effective align-self: the child's own
// AlignSelf override if set, else the parent's AlignItems.
func ItemAlign(parent Style, child Style) Align {
	if child.AlignSelf != nil {
		return *child.AlignSelf
	}
	return parent.ResolvedAlignItems()
}

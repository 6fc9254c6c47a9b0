package layout

// flexItem holds the per-child scratch state threaded through the 16-step
// algorithm. It is never stored on the node; it is allocated fresh for
// each flexCompute invocation and released when that call returns
// (spec.md §5 "resource acquisition").
type flexItem struct {
	node  NodeID
	style Style
	order int // original sibling index, used for Layout.Order

	size Size[*float64]
	min  Size[*float64]
	max  Size[*float64]

	inset  Rect[*float64]
	margin Rect[*float64] // nil component == auto margin
	padding Rect[float64]
	border  Rect[float64]

	alignSelf Align

	flexBasis      float64
	innerFlexBasis float64
	resolvedMinimumMain float64

	hypotheticalInnerMain float64
	hypotheticalOuterMain float64

	hypotheticalInnerCrossSize float64

	targetMainSize  float64
	outerTargetMain float64
	frozen          bool
	violation       float64

	usedCrossSize float64

	baseline float64

	offsetMain  float64
	offsetCross float64

	finalSize Size[float64]
}

// paddingBorderSum returns padding+border on the given absolute axis.
func (it *flexItem) paddingBorderSum(axis AbsoluteAxis) float64 {
	if axis == AxisHorizontal {
		return it.padding.Left + it.padding.Right + it.border.Left + it.border.Right
	}
	return it.padding.Top + it.padding.Bottom + it.border.Top + it.border.Bottom
}

// marginSum returns the sum of both margins on axis, treating auto as 0.
func (it *flexItem) marginSum(axis AbsoluteAxis) float64 {
	if axis == AxisHorizontal {
		return unwrapOr(it.margin.Left, 0) + unwrapOr(it.margin.Right, 0)
	}
	return unwrapOr(it.margin.Top, 0) + unwrapOr(it.margin.Bottom, 0)
}

func (it *flexItem) marginMainStart(dir FlexDirection) float64 {
	return unwrapOr(it.margin.MainStart(dir), 0)
}
func (it *flexItem) marginMainEnd(dir FlexDirection) float64 {
	return unwrapOr(it.margin.MainEnd(dir), 0)
}
func (it *flexItem) marginCrossStart(dir FlexDirection) float64 {
	return unwrapOr(it.margin.CrossStart(dir), 0)
}
func (it *flexItem) marginCrossEnd(dir FlexDirection) float64 {
	return unwrapOr(it.margin.CrossEnd(dir), 0)
}

func (it *flexItem) crossMarginIsAuto(dir FlexDirection) (startAuto, endAuto bool) {
	return it.margin.CrossStart(dir) == nil, it.margin.CrossEnd(dir) == nil
}

func (it *flexItem) mainMarginIsAuto(dir FlexDirection) (startAuto, endAuto bool) {
	return it.margin.MainStart(dir) == nil, it.margin.MainEnd(dir) == nil
}

// innerMin/innerMax convert the item's resolved (border-box) min/max style
// size on axis to the content-box bound that the flex distribution math
// (which works in content-box terms) needs.
func (it *flexItem) innerMin(axis AbsoluteAxis) *float64 {
	v := it.min.Get(axis)
	if v == nil {
		return nil
	}
	r := maxf0(*v - it.paddingBorderSum(axis))
	return &r
}

func (it *flexItem) innerMax(axis AbsoluteAxis) *float64 {
	v := it.max.Get(axis)
	if v == nil {
		return nil
	}
	r := maxf0(*v - it.paddingBorderSum(axis))
	return &r
}

// flexLine is a single row (or column) of items produced by collectFlexLines.
type flexLine struct {
	items     []*flexItem
	crossSize float64
	offsetCross float64
	maxBaseline float64
}

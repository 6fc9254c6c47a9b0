package layout

// AbsoluteAxis names one of the two physical axes of the screen,
// independent of flex direction.
type AbsoluteAxis uint8

const (
	AxisHorizontal AbsoluteAxis = iota
	AxisVertical
)

// Size is a generic width/height pair. It is used for concrete sizes
// (float64), style dimensions (Dimension), and gaps (LengthPercentage).
type Size[T any] struct {
	Width  T
	Height T
}

// Get returns the component of s on the given absolute axis.
func (s Size[T]) Get(axis AbsoluteAxis) T {
	if axis == AxisHorizontal {
		return s.Width
	}
	return s.Height
}

// Set returns a copy of s with the component on the given axis replaced.
func (s Size[T]) Set(axis AbsoluteAxis, v T) Size[T] {
	if axis == AxisHorizontal {
		s.Width = v
	} else {
		s.Height = v
	}
	return s
}

// Point is a generic x/y coordinate pair.
type Point[T any] struct {
	X T
	Y T
}

// Line is a generic start/end pair along a single axis.
type Line[T any] struct {
	Start T
	End   T
}

// Rect is a generic four-sided box (top/right/bottom/left), used for
// margin, padding, border and inset — anything expressed per edge.
type Rect[T any] struct {
	Top    T
	Right  T
	Bottom T
	Left   T
}

// RectAll builds a Rect with the same value on all four edges.
func RectAll[T any](v T) Rect[T] {
	return Rect[T]{Top: v, Right: v, Bottom: v, Left: v}
}

// MainStart returns the edge at the start of the main axis for dir.
func (r Rect[T]) MainStart(dir FlexDirection) T {
	switch dir {
	case Row:
		return r.Left
	case RowReverse:
		return r.Right
	case Column:
		return r.Top
	default: // ColumnReverse
		return r.Bottom
	}
}

// MainEnd returns the edge at the end of the main axis for dir.
func (r Rect[T]) MainEnd(dir FlexDirection) T {
	switch dir {
	case Row:
		return r.Right
	case RowReverse:
		return r.Left
	case Column:
		return r.Bottom
	default: // ColumnReverse
		return r.Top
	}
}

// CrossStart returns the edge at the start of the cross axis for dir.
func (r Rect[T]) CrossStart(dir FlexDirection) T {
	if dir.MainAxis() == AxisHorizontal {
		return r.Top
	}
	return r.Left
}

// CrossEnd returns the edge at the end of the cross axis for dir.
func (r Rect[T]) CrossEnd(dir FlexDirection) T {
	if dir.MainAxis() == AxisHorizontal {
		return r.Bottom
	}
	return r.Right
}

// SumHorizontal returns Left + Right.
func SumHorizontal(r Rect[float64]) float64 { return r.Left + r.Right }

// SumVertical returns Top + Bottom.
func SumVertical(r Rect[float64]) float64 { return r.Top + r.Bottom }

// MainAxisSum returns the sum of the two main-axis edges for dir.
func MainAxisSum(r Rect[float64], dir FlexDirection) float64 {
	if dir.MainAxis() == AxisHorizontal {
		return r.Left + r.Right
	}
	return r.Top + r.Bottom
}

// CrossAxisSum returns the sum of the two cross-axis edges for dir.
func CrossAxisSum(r Rect[float64], dir FlexDirection) float64 {
	if dir.MainAxis() == AxisHorizontal {
		return r.Top + r.Bottom
	}
	return r.Left + r.Right
}

// AddRect returns the sum of two rects, edge by edge.
func AddRect(a, b Rect[float64]) Rect[float64] {
	return Rect[float64]{
		Top:    a.Top + b.Top,
		Right:  a.Right + b.Right,
		Bottom: a.Bottom + b.Bottom,
		Left:   a.Left + b.Left,
	}
}

// SizeMain returns the main-axis component of s for dir.
func SizeMain(s Size[float64], dir FlexDirection) float64 {
	return s.Get(dir.MainAxis())
}

// SizeCross returns the cross-axis component of s for dir.
func SizeCross(s Size[float64], dir FlexDirection) float64 {
	return s.Get(dir.CrossAxis())
}

// SetMain returns a copy of s with its main-axis component replaced.
func SetMain(s Size[float64], dir FlexDirection, v float64) Size[float64] {
	return s.Set(dir.MainAxis(), v)
}

// SetCross returns a copy of s with its cross-axis component replaced.
func SetCross(s Size[float64], dir FlexDirection, v float64) Size[float64] {
	return s.Set(dir.CrossAxis(), v)
}

// OptMain returns the main-axis component of an optional size for dir.
func OptMain(s Size[*float64], dir FlexDirection) *float64 {
	return s.Get(dir.MainAxis())
}

// OptCross returns the cross-axis component of an optional size for dir.
func OptCross(s Size[*float64], dir FlexDirection) *float64 {
	return s.Get(dir.CrossAxis())
}


package strut

// EdgeInsets describes spacing on the four sides of a box.
// It is a value type: construct it with the Insets* helpers and treat it as
// immutable. Negative sides are normalized to zero at construction.
type EdgeInsets struct {
	Top    float32
	Right  float32
	Bottom float32
	Left   float32
}

// InsetsZero returns insets with all sides zero.
func InsetsZero() EdgeInsets {
	return EdgeInsets{}
}

// InsetsAll returns insets with the same value on all four sides.
func InsetsAll(v float32) EdgeInsets {
	v = nonNegative(v)
	return EdgeInsets{Top: v, Right: v, Bottom: v, Left: v}
}

// InsetsSymmetric returns insets with the given horizontal value on
// left/right and vertical value on top/bottom.
func InsetsSymmetric(horizontal, vertical float32) EdgeInsets {
	h := nonNegative(horizontal)
	v := nonNegative(vertical)
	return EdgeInsets{Top: v, Right: h, Bottom: v, Left: h}
}

// Insets returns insets with individually specified sides.
func Insets(top, right, bottom, left float32) EdgeInsets {
	return EdgeInsets{
		Top:    nonNegative(top),
		Right:  nonNegative(right),
		Bottom: nonNegative(bottom),
		Left:   nonNegative(left),
	}
}

// Horizontal returns the sum of the left and right insets.
func (e EdgeInsets) Horizontal() float32 {
	return e.Left + e.Right
}

// Vertical returns the sum of the top and bottom insets.
func (e EdgeInsets) Vertical() float32 {
	return e.Top + e.Bottom
}

// normalized returns a copy with negative or NaN sides clamped to zero.
// Insets built through the constructors are already normal; this guards
// struct-literal values.
func (e EdgeInsets) normalized() EdgeInsets {
	return EdgeInsets{
		Top:    nonNegative(e.Top),
		Right:  nonNegative(e.Right),
		Bottom: nonNegative(e.Bottom),
		Left:   nonNegative(e.Left),
	}
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  float32
	Height float32
}

// Rect is a rectangle in the parent's coordinate space.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// SizeOf returns the width/height of the rectangle as a Size.
func (r Rect) SizeOf() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// nonNegative clamps negative and NaN values to zero.
func nonNegative(v float32) float32 {
	if v != v || v < 0 {
		return 0
	}
	return v
}

// sanitizeSize clamps both dimensions of a size to non-negative finite values.
func sanitizeSize(s Size) Size {
	return Size{Width: nonNegative(s.Width), Height: nonNegative(s.Height)}
}

package strut

// SizeMode specifies how a dimension (width or height) should be calculated.
type SizeMode int

const (
	// SizeAuto sizes to fit content. Zero value, so an unstyled box is
	// content-sized.
	SizeAuto SizeMode = iota

	// SizeFixed uses an explicit pixel value.
	SizeFixed

	// SizeFill claims all of the space the parent offers along that axis.
	// Sharing leftover space among several fill siblings is the flex
	// container's job, not the box model's.
	SizeFill
)

// Dimension is a sizing intent for one axis: a fixed pixel value, auto
// (content-sized), or fill (expand into available space).
type Dimension struct {
	Mode  SizeMode
	Value float32 // pixel value, meaningful only when Mode is SizeFixed
}

// Fixed returns a dimension with an exact pixel content size.
func Fixed(px float32) Dimension {
	return Dimension{Mode: SizeFixed, Value: nonNegative(px)}
}

// Auto returns a dimension sized to its measured content.
func Auto() Dimension {
	return Dimension{Mode: SizeAuto}
}

// Fill returns a dimension that expands to the available space.
func Fill() Dimension {
	return Dimension{Mode: SizeFill}
}

// IsFill reports whether the dimension expands into available space.
func (d Dimension) IsFill() bool {
	return d.Mode == SizeFill
}

// BoxModel is a component's declared sizing intent: width/height modes,
// optional min/max bounds on the content dimensions, and padding, margin,
// and border insets. A zero BoxModel is auto-sized with no spacing.
//
// Min/max are pointers so that "unset" is distinguishable from zero.
type BoxModel struct {
	Width  Dimension
	Height Dimension

	MinWidth  *float32
	MaxWidth  *float32
	MinHeight *float32
	MaxHeight *float32

	Padding EdgeInsets
	Margin  EdgeInsets
	Border  EdgeInsets
}

// normalized returns a copy with defensive clamps applied: negative insets
// and bounds go to zero, and a max below its min is raised to the min. A
// malformed box must degrade to a well-formed one rather than corrupt the
// tree (configuration errors are normalized, never surfaced).
func (b BoxModel) normalized() BoxModel {
	b.Padding = b.Padding.normalized()
	b.Margin = b.Margin.normalized()
	b.Border = b.Border.normalized()
	b.MinWidth = normalBound(b.MinWidth)
	b.MinHeight = normalBound(b.MinHeight)
	b.MaxWidth = normalBound(b.MaxWidth)
	b.MaxHeight = normalBound(b.MaxHeight)
	if b.MinWidth != nil && b.MaxWidth != nil && *b.MaxWidth < *b.MinWidth {
		b.MaxWidth = b.MinWidth
	}
	if b.MinHeight != nil && b.MaxHeight != nil && *b.MaxHeight < *b.MinHeight {
		b.MaxHeight = b.MinHeight
	}
	return b
}

// clampWidth applies the box's min/max width bounds to a content width.
func (b BoxModel) clampWidth(v float32) float32 {
	return clampBounds(v, b.MinWidth, b.MaxWidth)
}

// clampHeight applies the box's min/max height bounds to a content height.
func (b BoxModel) clampHeight(v float32) float32 {
	return clampBounds(v, b.MinHeight, b.MaxHeight)
}

// horizontalInsets returns the total non-content width (padding plus border).
// Margin is outside the box and accounted for by the parent container.
func (b BoxModel) horizontalInsets() float32 {
	return b.Padding.Horizontal() + b.Border.Horizontal()
}

// verticalInsets returns the total non-content height (padding plus border).
func (b BoxModel) verticalInsets() float32 {
	return b.Padding.Vertical() + b.Border.Vertical()
}

func clampBounds(v float32, min, max *float32) float32 {
	if min != nil && v < *min {
		v = *min
	}
	if max != nil && v > *max {
		v = *max
	}
	return nonNegative(v)
}

func normalBound(p *float32) *float32 {
	if p == nil {
		return nil
	}
	v := nonNegative(*p)
	return &v
}

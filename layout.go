package strut

// ComputedLayout is the final pixel geometry of a component after a layout
// pass. X/Y are in the parent's coordinate space (the same space the slot
// handed to Layout was expressed in). The content rectangle excludes padding
// and border, so Width = ContentWidth + padding + border on each axis.
//
// ComputedLayout is an immutable value: a layout pass produces a fresh one
// and the owning component replaces its stored value wholesale. Before the
// first pass all fields are zero.
type ComputedLayout struct {
	X      float32
	Y      float32
	Width  float32
	Height float32

	ContentX      float32
	ContentY      float32
	ContentWidth  float32
	ContentHeight float32
}

// OffsetBy returns a copy translated by (dx, dy). Both the outer box and the
// content rectangle move together.
func (c ComputedLayout) OffsetBy(dx, dy float32) ComputedLayout {
	c.X += dx
	c.Y += dy
	c.ContentX += dx
	c.ContentY += dy
	return c
}

// Bounds returns the outer rectangle of the layout.
func (c ComputedLayout) Bounds() Rect {
	return Rect{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
}

// Contains reports whether the point (x, y) lies inside the outer box.
func (c ComputedLayout) Contains(x, y float32) bool {
	return x >= c.X && x < c.X+c.Width && y >= c.Y && y < c.Y+c.Height
}

// MeasureBox resolves a box model against its natural content size and
// returns the outer measured size (content plus padding and border, margin
// excluded). Fixed dimensions use their declared value, auto dimensions use
// the content size, and fill dimensions contribute zero because they are
// resolved only once available space is known, in LayoutBox. Fixed and auto
// content dimensions are clamped to the box's min/max bounds.
func MeasureBox(box BoxModel, content Size) Size {
	box = box.normalized()
	content = sanitizeSize(content)

	var w, h float32
	switch box.Width.Mode {
	case SizeFixed:
		w = box.clampWidth(box.Width.Value)
	case SizeAuto:
		w = box.clampWidth(content.Width)
	case SizeFill:
		// Deferred to layout; contributes nothing to measurement.
	}
	switch box.Height.Mode {
	case SizeFixed:
		h = box.clampHeight(box.Height.Value)
	case SizeAuto:
		h = box.clampHeight(content.Height)
	case SizeFill:
	}

	return Size{
		Width:  w + box.horizontalInsets(),
		Height: h + box.verticalInsets(),
	}
}

// LayoutBox resolves a measured box against available space and returns the
// concrete geometry, positioned at the origin. The caller (normally a
// container) translates the result into place with OffsetBy.
//
// measured is the outer size previously produced by MeasureBox (or by a
// composite component's own Measure). available is the full space the parent
// hands down; a fill dimension claims all of it. Min/max bounds are
// re-applied after fill resolution.
//
// Degenerate inputs (negative or NaN sizes) are clamped to zero so a
// malformed ancestor yields a well-defined zero-area box instead of
// corrupting descendants. The clamp is logged at debug level; it is a
// defensive fallback, not a correctness guarantee.
//
// LayoutBox is a pure function: identical inputs yield identical results.
func LayoutBox(box BoxModel, measured Size, available Size) ComputedLayout {
	box = box.normalized()
	measured = sanitizeSize(measured)
	if clean := sanitizeSize(available); clean != available {
		logger.Debug().
			Float32("width", available.Width).
			Float32("height", available.Height).
			Msg("layout: degenerate available space clamped to zero")
		available = clean
	}

	outerW := resolveOuter(box.Width, measured.Width, available.Width,
		box.horizontalInsets(), box.MinWidth, box.MaxWidth)
	outerH := resolveOuter(box.Height, measured.Height, available.Height,
		box.verticalInsets(), box.MinHeight, box.MaxHeight)

	contentW := nonNegative(outerW - box.horizontalInsets())
	contentH := nonNegative(outerH - box.verticalInsets())

	return ComputedLayout{
		Width:         outerW,
		Height:        outerH,
		ContentX:      box.Border.Left + box.Padding.Left,
		ContentY:      box.Border.Top + box.Padding.Top,
		ContentWidth:  contentW,
		ContentHeight: contentH,
	}
}

// resolveOuter turns one dimension into a final outer extent. Fill claims
// the full available space; fixed and auto keep their measured extent. The
// content portion is clamped to the min/max bounds in both cases.
func resolveOuter(d Dimension, measured, available, insets float32, min, max *float32) float32 {
	var content float32
	if d.Mode == SizeFill {
		content = nonNegative(available - insets)
	} else {
		content = nonNegative(measured - insets)
	}
	content = clampBounds(content, min, max)
	return content + insets
}

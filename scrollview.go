package strut

// ScrollView clips a single child to its own content box and pans it with a
// clamped scroll offset. It implements Scrollable, so focusing a descendant
// through a FocusContext scrolls it into view.
//
// Actual clipping is the renderer's job; the view only offsets the child's
// geometry and keeps the offset inside [0, content-viewport].
type ScrollView struct {
	Base

	child Component

	scrollX, scrollY float32
	contentSize      Size

	lastSlot Rect
	hasSlot  bool
}

// NewScrollView wraps the given child in a scroll view.
func NewScrollView(child Component) *ScrollView {
	s := &ScrollView{Base: NewBase(), child: child}
	if child != nil {
		child.setParent(s)
	}
	return s
}

// Child returns the wrapped component.
func (s *ScrollView) Child() Component { return s.child }

// ScrollOffset returns the current pan offset.
func (s *ScrollView) ScrollOffset() (x, y float32) {
	return s.scrollX, s.scrollY
}

// ContentSize returns the child extent recorded by the last layout pass.
func (s *ScrollView) ContentSize() Size { return s.contentSize }

// Styled replaces the view's box model, chainable.
func (s *ScrollView) Styled(box BoxModel) *ScrollView {
	s.SetBox(box)
	return s
}

// Measure reports the view's own box; the child's extent never grows the
// viewport (that is what scrolling is for).
func (s *ScrollView) Measure(available Size) Size {
	return MeasureBox(s.Box(), Size{})
}

// Layout resolves the viewport, then lays the child out at its natural
// extent (never smaller than the viewport) shifted by the scroll offset.
func (s *ScrollView) Layout(slot Rect) {
	s.lastSlot = slot
	s.hasSlot = true

	s.finishLayout(slot, s.Measure(slot.SizeOf()))
	if s.child == nil || !s.child.Visible() {
		s.contentSize = Size{}
		return
	}

	cl := s.layout
	viewport := Size{Width: cl.ContentWidth, Height: cl.ContentHeight}

	natural := s.child.Measure(viewport)
	s.contentSize = Size{
		Width:  maxf(natural.Width, viewport.Width),
		Height: maxf(natural.Height, viewport.Height),
	}
	s.clampScroll()

	s.child.Layout(Rect{
		X:      cl.ContentX - s.scrollX,
		Y:      cl.ContentY - s.scrollY,
		Width:  s.contentSize.Width,
		Height: s.contentSize.Height,
	})
}

// Render forwards to the child.
func (s *ScrollView) Render() {
	if s.child != nil && s.child.Visible() {
		s.child.Render()
	}
}

// Destroy tears down the child first.
func (s *ScrollView) Destroy() {
	if s.child != nil {
		s.child.Destroy()
	}
	s.child = nil
	s.Base.Destroy()
}

// ScrollBy pans by the given delta, clamped to the scrollable range, and
// repositions the child if anything moved.
func (s *ScrollView) ScrollBy(dx, dy float32) {
	s.ScrollTo(s.scrollX+dx, s.scrollY+dy)
}

// ScrollTo pans to an absolute offset, clamped to the scrollable range.
func (s *ScrollView) ScrollTo(x, y float32) {
	oldX, oldY := s.scrollX, s.scrollY
	s.scrollX, s.scrollY = x, y
	s.clampScroll()
	if (s.scrollX != oldX || s.scrollY != oldY) && s.hasSlot {
		s.Layout(s.lastSlot)
	}
}

// ScrollIntoView pans the smallest distance that brings the target's bounds
// inside the viewport. Best effort: a target with stale layout scrolls to
// its last known position.
func (s *ScrollView) ScrollIntoView(target Component) {
	if target == nil || !s.hasSlot {
		return
	}
	cl := s.layout
	bounds := target.ComputedLayout().Bounds()

	dx, dy := float32(0), float32(0)
	if bounds.X < cl.ContentX {
		dx = bounds.X - cl.ContentX
	} else if right := bounds.X + bounds.Width; right > cl.ContentX+cl.ContentWidth {
		dx = right - (cl.ContentX + cl.ContentWidth)
	}
	if bounds.Y < cl.ContentY {
		dy = bounds.Y - cl.ContentY
	} else if bottom := bounds.Y + bounds.Height; bottom > cl.ContentY+cl.ContentHeight {
		dy = bottom - (cl.ContentY + cl.ContentHeight)
	}
	if dx != 0 || dy != 0 {
		logger.Debug().Float32("dx", dx).Float32("dy", dy).Msg("scroll: bringing focused component into view")
		s.ScrollBy(dx, dy)
	}
}

// clampScroll keeps the offset inside [0, content-viewport] on both axes.
func (s *ScrollView) clampScroll() {
	cl := s.layout
	maxX := nonNegative(s.contentSize.Width - cl.ContentWidth)
	maxY := nonNegative(s.contentSize.Height - cl.ContentHeight)
	s.scrollX = clampf(s.scrollX, 0, maxX)
	s.scrollY = clampf(s.scrollY, 0, maxY)
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package strut

// FlexDirection determines the main axis for flex layout.
type FlexDirection int

const (
	FlexRow    FlexDirection = iota // main axis is horizontal
	FlexColumn                      // main axis is vertical
)

// JustifyContent controls distribution of children along the main axis.
type JustifyContent int

const (
	JustifyStart   JustifyContent = iota // pack at the head
	JustifyEnd                           // pack at the tail
	JustifyCenter                        // center the natural-size block
	JustifyBetween                       // first at head, last at tail, even gaps between
	JustifyAround                        // even gaps around every child, half-size at the edges
)

// AlignItems controls alignment of children on the cross axis.
type AlignItems int

const (
	// AlignStretch hands each child the container's full cross extent as
	// its slot. A child occupies it through its own cross dimension (a
	// fill dimension stretches, subject to the child's min/max bounds);
	// box models are never mutated from here.
	AlignStretch AlignItems = iota
	AlignStart
	AlignEnd
	AlignCenter
)

// spaceAroundEdgeShare fixes the JustifyAround convention: the leading and
// trailing gaps are this fraction of the gap between children. 0.5 matches
// CSS space-around.
const spaceAroundEdgeShare = 0.5

// FlexContainer lays out an ordered list of child components along one axis
// with a gap and a justification rule, and aligns them on the cross axis.
//
// Distribution is a single pass with no iterative constraint solving:
// children are measured independently, leftover main-axis space is split
// equally among fill-sized children (there is no per-child growth factor),
// and overflow is permitted when children do not fit (no shrink pass).
// Positions are computed in sub-pixel float arithmetic; rounding, if wanted,
// belongs at the render boundary so it cannot compound across nesting.
type FlexContainer struct {
	Base

	direction FlexDirection
	justify   JustifyContent
	align     AlignItems
	gap       float32

	children []Component

	inLayout     bool
	lastOverflow float32
}

// NewFlexContainer returns an empty container with the given main axis,
// start justification, and stretch cross alignment.
func NewFlexContainer(direction FlexDirection) *FlexContainer {
	return &FlexContainer{Base: NewBase(), direction: direction}
}

// HStack returns a row container holding the given children.
func HStack(children ...Component) *FlexContainer {
	c := NewFlexContainer(FlexRow)
	for _, child := range children {
		c.AddChild(child)
	}
	return c
}

// VStack returns a column container holding the given children.
func VStack(children ...Component) *FlexContainer {
	c := NewFlexContainer(FlexColumn)
	for _, child := range children {
		c.AddChild(child)
	}
	return c
}

// Gap sets the space between adjacent children along the main axis.
func (c *FlexContainer) Gap(gap float32) *FlexContainer {
	c.gap = nonNegative(gap)
	c.MarkLayoutDirty()
	return c
}

// Justify sets the main-axis distribution rule.
func (c *FlexContainer) Justify(j JustifyContent) *FlexContainer {
	c.justify = j
	c.MarkLayoutDirty()
	return c
}

// Align sets the cross-axis alignment rule.
func (c *FlexContainer) Align(a AlignItems) *FlexContainer {
	c.align = a
	c.MarkLayoutDirty()
	return c
}

// Styled replaces the container's box model, chainable.
func (c *FlexContainer) Styled(box BoxModel) *FlexContainer {
	c.SetBox(box)
	return c
}

// AddChild appends a child, links its parent, and attaches its visual node.
func (c *FlexContainer) AddChild(child Component) {
	child.setParent(c)
	c.children = append(c.children, child)
	if c.Node() != nil && child.Node() != nil {
		c.Node().AttachChild(child.Node())
	}
	c.MarkLayoutDirty()
}

// RemoveChild unlinks a child. The child itself is not destroyed.
func (c *FlexContainer) RemoveChild(child Component) {
	for i, cur := range c.children {
		if cur == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			child.setParent(nil)
			if c.Node() != nil && child.Node() != nil {
				c.Node().RemoveChild(child.Node())
			}
			c.MarkLayoutDirty()
			return
		}
	}
}

// Children returns the ordered child list. The slice is shared; treat it as
// read-only.
func (c *FlexContainer) Children() []Component { return c.children }

// Overflow returns how far the children of the last layout pass extended
// beyond the container's content box on the main axis. Zero when they fit.
func (c *FlexContainer) Overflow() float32 { return c.lastOverflow }

// childSpec caches one visible child's measurement for a pass.
type childSpec struct {
	c        Component
	measured Size
	margin   EdgeInsets
	fillMain bool
}

// measureChildren measures every visible child against the given content
// space and returns the specs plus the natural main-axis run (non-fill
// children, margins of all children, gaps) and the natural cross extent.
func (c *FlexContainer) measureChildren(content Size) (specs []childSpec, naturalMain, naturalCross float32) {
	for _, child := range c.children {
		if !child.Visible() {
			continue
		}
		box := child.Box()
		spec := childSpec{
			c:        child,
			measured: child.Measure(content),
			margin:   box.Margin.normalized(),
		}
		if c.direction == FlexRow {
			spec.fillMain = box.Width.IsFill()
		} else {
			spec.fillMain = box.Height.IsFill()
		}
		specs = append(specs, spec)

		mainMargin := c.mainOf(Size{Width: spec.margin.Horizontal(), Height: spec.margin.Vertical()})
		crossMargin := c.crossOf(Size{Width: spec.margin.Horizontal(), Height: spec.margin.Vertical()})
		if !spec.fillMain {
			naturalMain += c.mainOf(spec.measured)
		}
		naturalMain += mainMargin
		if cross := c.crossOf(spec.measured) + crossMargin; cross > naturalCross {
			naturalCross = cross
		}
	}
	if n := len(specs); n > 1 {
		naturalMain += c.gap * float32(n-1)
	}
	return specs, naturalMain, naturalCross
}

// Measure reports the container's outer size: the children's natural run on
// the main axis and their maximum on the cross axis, wrapped in the
// container's own box model. With no children the container collapses to
// its padding and border.
func (c *FlexContainer) Measure(available Size) Size {
	box := c.Box().normalized()
	inner := Size{
		Width:  nonNegative(sanitizeSize(available).Width - box.horizontalInsets()),
		Height: nonNegative(sanitizeSize(available).Height - box.verticalInsets()),
	}
	_, naturalMain, naturalCross := c.measureChildren(inner)
	var content Size
	if c.direction == FlexRow {
		content = Size{Width: naturalMain, Height: naturalCross}
	} else {
		content = Size{Width: naturalCross, Height: naturalMain}
	}
	return MeasureBox(box, content)
}

// Layout resolves the container's own geometry inside the slot, then
// distributes the content box among the children:
//
//  1. measure every visible child independently;
//  2. sum non-fill main sizes, margins, and gaps into the natural run;
//  3. split leftover space equally among fill children (zero when the
//     container itself has no room — a fill child in a zero-space container
//     is a zero-size child, not an error);
//  4. place children along the main axis per the justify rule;
//  5. align each child on the cross axis;
//  6. recurse via each child's own Layout.
func (c *FlexContainer) Layout(slot Rect) {
	if !check(!c.inLayout, "flex: layout re-entered; mutation during a layout pass is unsupported") {
		return
	}
	c.inLayout = true
	defer func() { c.inLayout = false }()

	box := c.Box().normalized()
	inner := Size{
		Width:  nonNegative(slot.Width - box.horizontalInsets()),
		Height: nonNegative(slot.Height - box.verticalInsets()),
	}
	specs, naturalMain, naturalCross := c.measureChildren(inner)

	var content Size
	if c.direction == FlexRow {
		content = Size{Width: naturalMain, Height: naturalCross}
	} else {
		content = Size{Width: naturalCross, Height: naturalMain}
	}
	c.finishLayout(slot, MeasureBox(box, content))

	cl := c.layout
	contentMain := c.mainOf(Size{Width: cl.ContentWidth, Height: cl.ContentHeight})
	contentCross := c.crossOf(Size{Width: cl.ContentWidth, Height: cl.ContentHeight})

	// Equal-share distribution of leftover space among fill children.
	fillCount := 0
	for _, s := range specs {
		if s.fillMain {
			fillCount++
		}
	}
	leftover := contentMain - naturalMain
	fillShare := float32(0)
	if fillCount > 0 && leftover > 0 {
		fillShare = leftover / float32(fillCount)
	}

	totalMain := naturalMain + fillShare*float32(fillCount)
	c.lastOverflow = nonNegative(totalMain - contentMain)
	if c.lastOverflow > 0 {
		logger.Debug().
			Float32("overflow", c.lastOverflow).
			Int("children", len(specs)).
			Msg("flex: children overflow the content box")
	}

	lead, spacing := c.mainSpacing(contentMain-totalMain, len(specs))

	pos := lead
	for i, s := range specs {
		mainMarginLead, mainMarginTrail := c.mainMargins(s.margin)
		mainExtent := c.mainOf(s.measured)
		if s.fillMain {
			mainExtent = fillShare
		}

		pos += mainMarginLead
		crossPos, crossExtent := c.alignCross(s, contentCross)

		child := Rect{
			X:      cl.ContentX,
			Y:      cl.ContentY,
			Width:  mainExtent,
			Height: crossExtent,
		}
		if c.direction == FlexRow {
			child.X += pos
			child.Y += crossPos
		} else {
			child.X += crossPos
			child.Y += pos
			child.Width, child.Height = crossExtent, mainExtent
		}
		s.c.Layout(child)

		pos += mainExtent + mainMarginTrail
		if i < len(specs)-1 {
			pos += spacing
		}
	}
}

// Render forwards to the children; the container itself has nothing to
// paint beyond the geometry finishLayout already pushed.
func (c *FlexContainer) Render() {
	for _, child := range c.children {
		if child.Visible() {
			child.Render()
		}
	}
}

// Destroy tears down the subtree, children first.
func (c *FlexContainer) Destroy() {
	for _, child := range c.children {
		child.Destroy()
	}
	c.children = nil
	c.Base.Destroy()
}

// mainSpacing converts free main-axis space into a leading offset and the
// spacing inserted between adjacent children (which always includes the
// configured gap). Negative free space packs at the head: overflow runs off
// the tail.
func (c *FlexContainer) mainSpacing(free float32, n int) (lead, spacing float32) {
	spacing = c.gap
	if free <= 0 || n == 0 {
		return 0, spacing
	}
	switch c.justify {
	case JustifyEnd:
		lead = free
	case JustifyCenter:
		lead = free / 2
	case JustifyBetween:
		if n > 1 {
			spacing += free / float32(n-1)
		}
	case JustifyAround:
		unit := free / float32(n)
		lead = unit * spaceAroundEdgeShare
		spacing += unit
	}
	return lead, spacing
}

// alignCross returns a child's cross-axis offset and slot extent within the
// container's content box.
func (c *FlexContainer) alignCross(s childSpec, contentCross float32) (offset, extent float32) {
	leadMargin, trailMargin := c.crossMargins(s.margin)
	natural := c.crossOf(s.measured)

	switch c.align {
	case AlignStretch:
		return leadMargin, nonNegative(contentCross - leadMargin - trailMargin)
	case AlignEnd:
		return contentCross - natural - trailMargin, natural
	case AlignCenter:
		return (contentCross-natural-leadMargin-trailMargin)/2 + leadMargin, natural
	default: // AlignStart
		return leadMargin, natural
	}
}

func (c *FlexContainer) mainOf(s Size) float32 {
	if c.direction == FlexRow {
		return s.Width
	}
	return s.Height
}

func (c *FlexContainer) crossOf(s Size) float32 {
	if c.direction == FlexRow {
		return s.Height
	}
	return s.Width
}

func (c *FlexContainer) mainMargins(m EdgeInsets) (lead, trail float32) {
	if c.direction == FlexRow {
		return m.Left, m.Right
	}
	return m.Top, m.Bottom
}

func (c *FlexContainer) crossMargins(m EdgeInsets) (lead, trail float32) {
	if c.direction == FlexRow {
		return m.Top, m.Bottom
	}
	return m.Left, m.Right
}

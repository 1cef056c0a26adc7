package strut

// Button is a focusable push control. Enter, Space, or a pointer release
// inside its bounds activates it.
type Button struct {
	Base

	label    string
	fontSize float32
	measurer TextMeasurer
	minSize  Size

	onClick func()
}

// NewButton returns a button with the given label, focusable at tab index 0.
func NewButton(label string, m TextMeasurer) *Button {
	b := &Button{
		Base:     NewBase(),
		label:    label,
		fontSize: currentTheme.FontSize,
		measurer: m,
		minSize: Size{
			Width:  currentTheme.Controls.ButtonMinWidth,
			Height: currentTheme.Controls.ButtonMinHeight,
		},
	}
	b.SetTabIndex(0)
	return b
}

// Label returns the button text.
func (b *Button) Label() string { return b.label }

// SetLabel replaces the button text.
func (b *Button) SetLabel(label string) {
	if b.label == label {
		return
	}
	b.label = label
	b.MarkLayoutDirty()
}

// OnClick sets the activation handler, chainable.
func (b *Button) OnClick(fn func()) *Button {
	b.onClick = fn
	return b
}

// Styled replaces the button's box model, chainable.
func (b *Button) Styled(box BoxModel) *Button {
	b.SetBox(box)
	return b
}

// Activate fires the click handler if the button is enabled.
func (b *Button) Activate() {
	if b.Enabled() && b.onClick != nil {
		b.onClick()
	}
}

// HandleKeyDown activates on Enter or Space.
func (b *Button) HandleKeyDown(e KeyEvent) bool {
	if e.Key == KeyEnter || e.Key == KeySpace {
		b.Activate()
		return true
	}
	return false
}

// HandlePointer activates on a release inside the button's bounds.
func (b *Button) HandlePointer(e PointerEvent) bool {
	if e.Phase == PointerUp && b.ComputedLayout().Contains(e.X, e.Y) {
		b.Activate()
		return true
	}
	return false
}

// Measure reports the label's natural size, floored at the theme's minimum
// button size.
func (b *Button) Measure(available Size) Size {
	content := Size{Height: currentTheme.LineBox()}
	if b.measurer != nil && b.label != "" {
		w, h := b.measurer.MeasureText(b.label, b.fontSize, 0)
		content = Size{Width: nonNegative(w), Height: nonNegative(h)}
	}
	out := MeasureBox(b.Box(), content)
	if out.Width < b.minSize.Width {
		out.Width = b.minSize.Width
	}
	if out.Height < b.minSize.Height {
		out.Height = b.minSize.Height
	}
	return out
}

// Layout resolves the button inside its slot.
func (b *Button) Layout(slot Rect) {
	b.finishLayout(slot, b.Measure(slot.SizeOf()))
}

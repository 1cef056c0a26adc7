package strut

// Checkbox is a focusable boolean control: a box glyph plus a text label.
// Its committed value lives in a FormState so it can be either controlled
// or uncontrolled.
type Checkbox struct {
	Base

	label    string
	fontSize float32
	measurer TextMeasurer
	state    *FormState[bool]
}

// NewCheckbox returns an unchecked, uncontrolled checkbox.
func NewCheckbox(label string, m TextMeasurer) *Checkbox {
	c := &Checkbox{
		Base:     NewBase(),
		label:    label,
		fontSize: currentTheme.FontSize,
		measurer: m,
		state:    NewUncontrolledState(false, nil),
	}
	c.SetTabIndex(0)
	return c
}

// UseState replaces the value holder, e.g. with a controlled state built by
// the owner. Chainable.
func (c *Checkbox) UseState(s *FormState[bool]) *Checkbox {
	if s != nil {
		c.state = s
	}
	return c
}

// OnChange rebinds the checkbox to an uncontrolled state firing fn on every
// toggle, preserving the current value. Chainable.
func (c *Checkbox) OnChange(fn func(checked bool)) *Checkbox {
	c.state = NewUncontrolledState(c.state.Value(), fn)
	return c
}

// State exposes the underlying value holder.
func (c *Checkbox) State() *FormState[bool] { return c.state }

// Checked returns the committed value.
func (c *Checkbox) Checked() bool { return c.state.Value() }

// Toggle attempts a user toggle through the form state. In controlled mode
// the value only changes when the owner pushes it back down.
func (c *Checkbox) Toggle() {
	if !c.Enabled() {
		return
	}
	c.state.SetValue(!c.state.Value())
}

// HandleKeyDown toggles on Space or Enter.
func (c *Checkbox) HandleKeyDown(e KeyEvent) bool {
	if e.Key == KeySpace || e.Key == KeyEnter {
		c.Toggle()
		return true
	}
	return false
}

// HandlePointer toggles on a release inside the bounds.
func (c *Checkbox) HandlePointer(e PointerEvent) bool {
	if e.Phase == PointerUp && c.ComputedLayout().Contains(e.X, e.Y) {
		c.Toggle()
		return true
	}
	return false
}

// Measure reports box glyph + gap + label width, and the taller of the glyph
// and the text line.
func (c *Checkbox) Measure(available Size) Size {
	ctl := currentTheme.Controls
	textW := float32(0)
	textH := currentTheme.LineBox()
	if c.measurer != nil && c.label != "" {
		w, h := c.measurer.MeasureText(c.label, c.fontSize, 0)
		textW, textH = nonNegative(w), nonNegative(h)
	}
	h := ctl.CheckboxSize
	if textH > h {
		h = textH
	}
	content := Size{Width: ctl.CheckboxSize + ctl.CheckboxGap + textW, Height: h}
	return MeasureBox(c.Box(), content)
}

// Layout resolves the checkbox inside its slot.
func (c *Checkbox) Layout(slot Rect) {
	c.finishLayout(slot, c.Measure(slot.SizeOf()))
}

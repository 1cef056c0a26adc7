package strut

import "strings"

// TextArea is a focusable multi-line text input sharing the TextBuffer state
// machine with TextField; Enter inserts a newline and the vertical arrows
// move the cursor across lines.
type TextArea struct {
	Base

	buffer   *TextBuffer
	state    *FormState[string]
	fontSize float32
	measurer TextMeasurer
}

// NewTextArea returns an empty uncontrolled area.
func NewTextArea(m TextMeasurer) *TextArea {
	a := &TextArea{
		Base:     NewBase(),
		buffer:   NewTextBuffer(),
		state:    NewUncontrolledState("", nil),
		fontSize: currentTheme.FontSize,
		measurer: m,
	}
	a.buffer.SetMultiline(true)
	a.SetTabIndex(0)
	a.buffer.OnChange(a.commit)
	return a
}

// Buffer exposes the live editing state machine.
func (a *TextArea) Buffer() *TextBuffer { return a.buffer }

// State exposes the committed value holder.
func (a *TextArea) State() *FormState[string] { return a.state }

// Value returns the committed value.
func (a *TextArea) Value() string { return a.state.Value() }

// SyncValue overwrites buffer and committed value without notification.
func (a *TextArea) SyncValue(text string) {
	a.state.UpdateValue(text)
	a.buffer.SetText(text)
}

// UseState replaces the value holder, chainable.
func (a *TextArea) UseState(s *FormState[string]) *TextArea {
	if s != nil {
		a.state = s
		a.buffer.SetText(s.Value())
	}
	return a
}

// OnChange rebinds to an uncontrolled state firing fn, preserving the
// current value. Chainable.
func (a *TextArea) OnChange(fn func(text string)) *TextArea {
	a.state = NewUncontrolledState(a.state.Value(), fn)
	return a
}

// Styled replaces the area's box model, chainable.
func (a *TextArea) Styled(box BoxModel) *TextArea {
	a.SetBox(box)
	return a
}

// HandleKeyDown forwards to the buffer's state machine.
func (a *TextArea) HandleKeyDown(e KeyEvent) bool {
	if !a.Enabled() {
		return false
	}
	handled := a.buffer.HandleKeyDown(e)
	if handled {
		// Line count may have changed; an auto-height area must remeasure.
		a.MarkLayoutDirty()
	}
	return handled
}

func (a *TextArea) commit(text string) {
	a.state.SetValue(text)
}

// Measure reports enough height for the buffer's current lines, floored at
// the theme's default area height.
func (a *TextArea) Measure(available Size) Size {
	ctl := currentTheme.Controls
	lines := strings.Count(a.buffer.Text(), "\n") + 1
	h := float32(lines) * currentTheme.LineBox()
	if h < ctl.AreaHeight {
		h = ctl.AreaHeight
	}
	return MeasureBox(a.Box(), Size{Width: ctl.FieldMinWidth, Height: h})
}

// Layout resolves the area inside its slot.
func (a *TextArea) Layout(slot Rect) {
	a.finishLayout(slot, a.Measure(slot.SizeOf()))
}

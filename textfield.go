package strut

// TextField is a focusable single-line text input. The live edit state
// (buffer and cursor) lives in a TextBuffer; the committed value lives in a
// FormState so the field can be controlled or uncontrolled. Every accepted
// edit flows buffer → state exactly once.
type TextField struct {
	Base

	buffer   *TextBuffer
	state    *FormState[string]
	fontSize float32
	measurer TextMeasurer

	onSubmit func(text string)
}

// NewTextField returns an empty uncontrolled field.
func NewTextField(m TextMeasurer) *TextField {
	f := &TextField{
		Base:     NewBase(),
		buffer:   NewTextBuffer(),
		state:    NewUncontrolledState("", nil),
		fontSize: currentTheme.FontSize,
		measurer: m,
	}
	f.SetTabIndex(0)
	f.buffer.OnChange(f.commit)
	return f
}

// NewControlledTextField returns a field whose value is owned externally.
// User edits still update the visible buffer but never commit; push accepted
// values back down with SyncValue.
func NewControlledTextField(value string, onChange func(text string), m TextMeasurer) *TextField {
	f := NewTextField(m)
	f.state = NewControlledState(value, onChange)
	f.buffer.SetText(value)
	return f
}

// Buffer exposes the live editing state machine.
func (f *TextField) Buffer() *TextBuffer { return f.buffer }

// State exposes the committed value holder.
func (f *TextField) State() *FormState[string] { return f.state }

// Value returns the committed value.
func (f *TextField) Value() string { return f.state.Value() }

// SetValue programmatically replaces buffer and committed value through the
// user-edit path (ignored in controlled mode).
func (f *TextField) SetValue(text string) {
	f.buffer.SetText(text)
	f.commit(f.buffer.Text())
}

// SyncValue is the owner's path for pushing a new value down: it overwrites
// both the committed value and the visible buffer with no change
// notification.
func (f *TextField) SyncValue(text string) {
	f.state.UpdateValue(text)
	f.buffer.SetText(text)
}

// Placeholder sets the hint text, chainable.
func (f *TextField) Placeholder(text string) *TextField {
	f.buffer.SetPlaceholder(text)
	return f
}

// MaxLength caps the content length in runes, chainable.
func (f *TextField) MaxLength(max int) *TextField {
	f.buffer.SetMaxLength(max)
	return f
}

// CharFilter installs a per-rune validator, chainable.
func (f *TextField) CharFilter(fn func(r rune) bool) *TextField {
	f.buffer.SetCharFilter(fn)
	return f
}

// OnChange rebinds the committed value to an uncontrolled state firing fn,
// preserving the current value. Chainable.
func (f *TextField) OnChange(fn func(text string)) *TextField {
	f.state = NewUncontrolledState(f.state.Value(), fn)
	return f
}

// OnSubmit sets the handler fired when Enter is pressed, chainable.
func (f *TextField) OnSubmit(fn func(text string)) *TextField {
	f.onSubmit = fn
	return f
}

// Styled replaces the field's box model, chainable.
func (f *TextField) Styled(box BoxModel) *TextField {
	f.SetBox(box)
	return f
}

// HandleKeyDown forwards to the buffer's state machine. Enter is not an
// editing key in single-line mode; it fires the submit handler instead.
func (f *TextField) HandleKeyDown(e KeyEvent) bool {
	if !f.Enabled() {
		return false
	}
	if f.buffer.HandleKeyDown(e) {
		return true
	}
	if e.Key == KeyEnter {
		if f.onSubmit != nil {
			f.onSubmit(f.buffer.Text())
		}
		return true
	}
	return false
}

// commit pushes one accepted edit into the form state.
func (f *TextField) commit(text string) {
	f.state.SetValue(text)
}

// Measure reports the theme's field height and minimum width; the text
// itself never grows a single-line field.
func (f *TextField) Measure(available Size) Size {
	ctl := currentTheme.Controls
	return MeasureBox(f.Box(), Size{Width: ctl.FieldMinWidth, Height: ctl.FieldHeight})
}

// Layout resolves the field inside its slot.
func (f *TextField) Layout(slot Rect) {
	f.finishLayout(slot, f.Measure(slot.SizeOf()))
}

package strut

// Label is a non-interactive text component. Auto-sized labels take their
// natural size from the text measurement collaborator, wrapping against the
// width the parent offers.
type Label struct {
	Base

	text     string
	fontSize float32
	measurer TextMeasurer
}

// NewLabel returns a label showing the given text, measured through m.
func NewLabel(text string, m TextMeasurer) *Label {
	return &Label{
		Base:     NewBase(),
		text:     text,
		fontSize: currentTheme.FontSize,
		measurer: m,
	}
}

// Text returns the displayed text.
func (l *Label) Text() string { return l.text }

// SetText replaces the displayed text and marks layout dirty: the measured
// size may have changed.
func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.MarkLayoutDirty()
}

// FontSize sets the font size, chainable.
func (l *Label) FontSize(size float32) *Label {
	l.fontSize = nonNegative(size)
	l.MarkLayoutDirty()
	return l
}

// Styled replaces the label's box model, chainable.
func (l *Label) Styled(box BoxModel) *Label {
	l.SetBox(box)
	return l
}

// Measure reports the text's natural size wrapped to the offered width.
func (l *Label) Measure(available Size) Size {
	return MeasureBox(l.Box(), l.contentSize(available))
}

// Layout resolves the label inside its slot.
func (l *Label) Layout(slot Rect) {
	l.finishLayout(slot, l.Measure(slot.SizeOf()))
}

func (l *Label) contentSize(available Size) Size {
	if l.measurer == nil || l.text == "" {
		return Size{Height: currentTheme.LineBox()}
	}
	box := l.Box().normalized()
	wrap := sanitizeSize(available).Width - box.horizontalInsets()
	w, h := l.measurer.MeasureText(l.text, l.fontSize, wrap)
	return Size{Width: nonNegative(w), Height: nonNegative(h)}
}

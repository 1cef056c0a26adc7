package strut

// SelectOption is one entry in a SelectBox.
type SelectOption struct {
	Label    string
	Value    any
	Disabled bool
}

// SelectBox is a focusable single-choice control. The committed value is the
// selected option index, held in a FormState; -1 means no selection.
type SelectBox struct {
	Base

	options  []SelectOption
	fontSize float32
	measurer TextMeasurer
	state    *FormState[int]
	open     bool
}

// NewSelectBox returns a closed select with no selection.
func NewSelectBox(options []SelectOption, m TextMeasurer) *SelectBox {
	s := &SelectBox{
		Base:     NewBase(),
		options:  options,
		fontSize: currentTheme.FontSize,
		measurer: m,
		state:    NewUncontrolledState(-1, nil),
	}
	s.SetTabIndex(0)
	return s
}

// UseState replaces the value holder. Chainable.
func (s *SelectBox) UseState(st *FormState[int]) *SelectBox {
	if st != nil {
		s.state = st
	}
	return s
}

// OnChange rebinds to an uncontrolled state firing fn on selection changes,
// preserving the current index. Chainable.
func (s *SelectBox) OnChange(fn func(index int)) *SelectBox {
	s.state = NewUncontrolledState(s.state.Value(), fn)
	return s
}

// State exposes the underlying value holder.
func (s *SelectBox) State() *FormState[int] { return s.state }

// SelectedIndex returns the committed option index, -1 for none.
func (s *SelectBox) SelectedIndex() int { return s.state.Value() }

// SelectedOption returns the committed option, or a zero option when there
// is no selection.
func (s *SelectBox) SelectedOption() SelectOption {
	i := s.state.Value()
	if i < 0 || i >= len(s.options) {
		return SelectOption{}
	}
	return s.options[i]
}

// Open reports whether the option list is showing.
func (s *SelectBox) Open() bool { return s.open }

// Select attempts a user selection of the option at index, skipping nothing:
// out-of-range or disabled indices are ignored.
func (s *SelectBox) Select(index int) {
	if index < 0 || index >= len(s.options) || s.options[index].Disabled {
		return
	}
	s.state.SetValue(index)
}

// HandleKeyDown drives the control: Enter/Space toggles the list open,
// ArrowUp/Down move the selection across enabled options, Home/End jump to
// the first/last enabled option, Escape closes the list.
func (s *SelectBox) HandleKeyDown(e KeyEvent) bool {
	switch e.Key {
	case KeyEnter, KeySpace:
		s.open = !s.open
		return true
	case KeyArrowDown:
		s.step(1)
		return true
	case KeyArrowUp:
		s.step(-1)
		return true
	case KeyHome:
		s.Select(s.nextEnabled(-1, 1))
		return true
	case KeyEnd:
		s.Select(s.nextEnabled(len(s.options), -1))
		return true
	case KeyEscape:
		if s.open {
			s.open = false
			return true
		}
	}
	return false
}

// step moves the selection by one enabled option in the given direction.
func (s *SelectBox) step(dir int) {
	s.Select(s.nextEnabled(s.state.Value(), dir))
}

// nextEnabled returns the first enabled index strictly beyond from in the
// given direction, or -1 when there is none.
func (s *SelectBox) nextEnabled(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(s.options); i += dir {
		if !s.options[i].Disabled {
			return i
		}
	}
	return -1
}

// Measure reports the widest option label plus the dropdown arrow, floored
// at the theme's minimum select width.
func (s *SelectBox) Measure(available Size) Size {
	ctl := currentTheme.Controls
	maxLabel := float32(0)
	if s.measurer != nil {
		for _, opt := range s.options {
			w, _ := s.measurer.MeasureText(opt.Label, s.fontSize, 0)
			if w > maxLabel {
				maxLabel = nonNegative(w)
			}
		}
	}
	w := maxLabel + ctl.SelectArrow
	if w < ctl.SelectMinWidth {
		w = ctl.SelectMinWidth
	}
	return MeasureBox(s.Box(), Size{Width: w, Height: ctl.SelectHeight})
}

// Layout resolves the select inside its slot.
func (s *SelectBox) Layout(slot Rect) {
	s.finishLayout(slot, s.Measure(slot.SizeOf()))
}

package strut

// FormState is the single source of truth for a form widget's value
// (checkbox checked state, select index, text content).
//
// A state is either controlled or uncontrolled, fixed at construction and
// never switched. Controlled: an external owner holds the value; user edits
// do not commit and fire no change notification, and the owner pushes new
// values down with UpdateValue. Uncontrolled: the widget owns the value;
// SetValue commits immediately and notifies.
type FormState[T any] struct {
	value      T
	controlled bool
	onChange   func(value T)
}

// NewControlledState returns a state whose value is owned externally.
// onChange may be nil; it is kept for symmetry but a controlled state never
// fires it from SetValue.
func NewControlledState[T any](value T, onChange func(value T)) *FormState[T] {
	return &FormState[T]{value: value, controlled: true, onChange: onChange}
}

// NewUncontrolledState returns a self-owned state seeded with a default
// value. onChange, if non-nil, fires on every committed edit.
func NewUncontrolledState[T any](defaultValue T, onChange func(value T)) *FormState[T] {
	return &FormState[T]{value: defaultValue, onChange: onChange}
}

// Value returns the current committed value.
func (s *FormState[T]) Value() T {
	return s.value
}

// Controlled reports which mode the state was constructed in.
func (s *FormState[T]) Controlled() bool {
	return s.controlled
}

// SetValue is the user-edit path. Uncontrolled states commit the value, fire
// onChange, and return true. Controlled states ignore the edit and return
// false; the external owner decides whether the value changes.
func (s *FormState[T]) SetValue(v T) bool {
	if s.controlled {
		return false
	}
	s.value = v
	if s.onChange != nil {
		s.onChange(v)
	}
	return true
}

// UpdateValue is the external-sync path: the owner re-rendered with a new
// value. It overwrites the committed value and fires no notification in
// either mode — it is not a user edit.
func (s *FormState[T]) UpdateValue(v T) {
	s.value = v
}

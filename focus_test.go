package strut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFocusTabOrder(t *testing.T) {
	ctx := NewFocusContext()
	late := newFocusBox(2)
	first := newFocusBox(0)
	second := newFocusBox(1)

	// Registration order does not matter; tab index does.
	ctx.Register(late)
	ctx.Register(first)
	ctx.Register(second)

	ctx.FocusNext()
	assert.Same(t, Focusable(first), ctx.Focused())
	ctx.FocusNext()
	assert.Same(t, Focusable(second), ctx.Focused())
	ctx.FocusNext()
	assert.Same(t, Focusable(late), ctx.Focused())

	// Traversal is cyclic.
	ctx.FocusNext()
	assert.Same(t, Focusable(first), ctx.Focused())
	ctx.FocusPrevious()
	assert.Same(t, Focusable(late), ctx.Focused())
}

func TestFocusTiesKeepRegistrationOrder(t *testing.T) {
	ctx := NewFocusContext()
	a := newFocusBox(0)
	b := newFocusBox(0)
	ctx.Register(a)
	ctx.Register(b)

	ctx.FocusNext()
	assert.Same(t, Focusable(a), ctx.Focused())
	ctx.FocusNext()
	assert.Same(t, Focusable(b), ctx.Focused())
}

func TestFocusPreviousFromNoneEntersAtEnd(t *testing.T) {
	ctx := NewFocusContext()
	a := newFocusBox(0)
	b := newFocusBox(1)
	ctx.Register(a)
	ctx.Register(b)

	ctx.FocusPrevious()
	assert.Same(t, Focusable(b), ctx.Focused())
}

func TestFocusSkipsUnfocusableAtTraversalTime(t *testing.T) {
	ctx := NewFocusContext()
	a := newFocusBox(0)
	disabled := newFocusBox(1)
	hidden := newFocusBox(2)
	c := newFocusBox(3)
	ctx.Register(a)
	ctx.Register(disabled)
	ctx.Register(hidden)
	ctx.Register(c)

	// The filter applies when moving, not when registering.
	disabled.SetEnabled(false)
	hidden.SetVisible(false)

	ctx.FocusNext()
	ctx.FocusNext()
	assert.Same(t, Focusable(c), ctx.Focused())

	// Re-enabling brings a component back without re-registering.
	disabled.SetEnabled(true)
	ctx.FocusNext()
	ctx.FocusNext()
	assert.Same(t, Focusable(disabled), ctx.Focused())
}

func TestFocusBlurRunsBeforeFocus(t *testing.T) {
	ctx := NewFocusContext()
	a := newFocusBox(0)
	b := newFocusBox(1)
	ctx.Register(a)
	ctx.Register(b)

	var events []string
	a.OnBlur(func() { events = append(events, "blur a") })
	b.OnFocus(func() { events = append(events, "focus b") })

	ctx.RequestFocus(a)
	require.True(t, a.IsFocused())

	ctx.RequestFocus(b)
	assert.Equal(t, []string{"blur a", "focus b"}, events)
	assert.False(t, a.IsFocused())
	assert.True(t, b.IsFocused())
}

func TestFocusRequestBestEffort(t *testing.T) {
	ctx := NewFocusContext()
	a := newFocusBox(0)
	ctx.Register(a)
	ctx.RequestFocus(a)

	// Unregistered and unfocusable targets leave focus where it was.
	stranger := newFocusBox(0)
	ctx.RequestFocus(stranger)
	assert.Same(t, Focusable(a), ctx.Focused())

	a.SetEnabled(false)
	ctx.RequestFocus(a)
	assert.Same(t, Focusable(a), ctx.Focused())

	ctx.RequestFocus(nil)
	assert.Same(t, Focusable(a), ctx.Focused())
}

func TestFocusUnregisterClearsFocus(t *testing.T) {
	ctx := NewFocusContext()
	a := newFocusBox(0)
	b := newFocusBox(1)
	ctx.Register(a)
	ctx.Register(b)
	ctx.RequestFocus(a)

	// No auto-advance on removal.
	ctx.Unregister(a)
	assert.Nil(t, ctx.Focused())
	assert.False(t, a.IsFocused())

	ctx.FocusNext()
	assert.Same(t, Focusable(b), ctx.Focused())
}

func TestFocusClearAndDestroy(t *testing.T) {
	ctx := NewFocusContext()
	a := newFocusBox(0)
	ctx.Register(a)
	ctx.RequestFocus(a)

	ctx.ClearFocus()
	assert.Nil(t, ctx.Focused())
	assert.False(t, a.IsFocused())

	ctx.RequestFocus(a)
	ctx.Destroy()
	assert.Nil(t, ctx.Focused())

	ctx.FocusNext()
	assert.Nil(t, ctx.Focused())
}

func TestFocusDuplicateRegistrationIgnored(t *testing.T) {
	ctx := NewFocusContext()
	a := newFocusBox(0)
	ctx.Register(a)
	ctx.Register(a)

	ctx.FocusNext()
	ctx.FocusNext()
	assert.Same(t, Focusable(a), ctx.Focused())
}

func TestFocusIgnoresNonFocusableAtRegistration(t *testing.T) {
	ctx := NewFocusContext()
	plain := newFocusBox(-1)
	ctx.Register(plain)

	ctx.FocusNext()
	assert.Nil(t, ctx.Focused())
}

// scrollRecorder stands in for a scroll container in the ancestor chain.
type scrollRecorder struct {
	Base
	target Component
}

func (s *scrollRecorder) ScrollIntoView(target Component) { s.target = target }

func TestFocusScrollsAncestorIntoView(t *testing.T) {
	scroller := &scrollRecorder{Base: NewBase()}
	mid := newTestBox(BoxModel{})
	mid.setParent(scroller)
	field := newFocusBox(0)
	field.setParent(mid)

	ctx := NewFocusContext()
	ctx.Register(field)
	ctx.RequestFocus(field)

	assert.Same(t, Component(field), scroller.target)
}

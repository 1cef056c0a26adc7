package strut

import "sort"

// ============================================================================
// Focus Management
// ============================================================================

// Focusable is the capability a component needs to take part in keyboard
// focus traversal. Base implements all of it; widgets opt in by setting a
// non-negative tab index.
type Focusable interface {
	Component

	// CanFocus reports whether the component can hold focus right now.
	CanFocus() bool

	// TabIndex returns the traversal index. Order is ascending tab index,
	// ties broken by registration order.
	TabIndex() int

	// IsFocused reports whether the component currently holds focus.
	IsFocused() bool

	setFocused(focused bool)
}

// Scrollable is implemented by containers that can scroll a descendant into
// view. The focus context walks a newly focused component's ancestor chain
// and calls the nearest one; components without a scrollable ancestor simply
// don't scroll.
type Scrollable interface {
	ScrollIntoView(target Component)
}

// FocusContext tracks every focusable component and moves keyboard focus
// between them. Keyboard focus is a single cross-tree resource, so one
// context serves an application; it is created at startup, threaded into
// construction of focusable widgets, and torn down with Destroy. There is
// no package-level instance.
type FocusContext struct {
	entries []focusEntry
	nextSeq uint64
	focused Focusable
}

// focusEntry pairs a registrant with its registration sequence number, the
// tie-breaker inside one tab index.
type focusEntry struct {
	c   Focusable
	seq uint64
}

// NewFocusContext returns an empty focus registry with nothing focused.
func NewFocusContext() *FocusContext {
	return &FocusContext{}
}

// Register adds a component to the registry. Components that cannot focus at
// registration time are ignored; registering the same component twice is an
// idempotent no-op.
func (f *FocusContext) Register(c Focusable) {
	if c == nil || !c.CanFocus() {
		return
	}
	for _, e := range f.entries {
		if e.c == c {
			check(false, "focus: component registered twice")
			return
		}
	}
	f.nextSeq++
	f.entries = append(f.entries, focusEntry{c: c, seq: f.nextSeq})
}

// Unregister removes a component. If it held focus, focus becomes none; the
// context never auto-advances on removal.
func (f *FocusContext) Unregister(c Focusable) {
	for i, e := range f.entries {
		if e.c == c {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			break
		}
	}
	if f.focused == c && c != nil {
		c.setFocused(false)
		f.focused = nil
	}
}

// Focused returns the component currently holding focus, or nil.
func (f *FocusContext) Focused() Focusable {
	return f.focused
}

// RequestFocus moves focus to the given component. Requests for
// unregistered or non-focusable components are best-effort no-ops: they
// commonly originate from generic pointer handling that cannot know
// focusability in advance. The previous holder's blur handler runs before
// the new holder's focus handler, so a blur handler still observes the old
// state.
func (f *FocusContext) RequestFocus(c Focusable) {
	if c == nil || c == f.focused || !c.CanFocus() || !f.registered(c) {
		return
	}
	f.setFocus(c)
}

// ClearFocus blurs the current holder, leaving nothing focused.
func (f *FocusContext) ClearFocus() {
	if f.focused != nil {
		f.focused.setFocused(false)
		f.focused = nil
	}
}

// FocusNext advances focus to the next component in tab order, cycling past
// the end. From no focus it enters at the first entry.
func (f *FocusContext) FocusNext() {
	f.advance(1)
}

// FocusPrevious moves focus to the previous component in tab order, cycling
// past the start. From no focus it enters at the last entry.
func (f *FocusContext) FocusPrevious() {
	f.advance(-1)
}

// Destroy clears all registrations and the current focus holder. The
// context must not be used afterwards.
func (f *FocusContext) Destroy() {
	f.ClearFocus()
	f.entries = nil
}

func (f *FocusContext) registered(c Focusable) bool {
	for _, e := range f.entries {
		if e.c == c {
			return true
		}
	}
	return false
}

// setFocus performs the blur-then-focus handoff and the scroll-into-view
// side effect for the new holder.
func (f *FocusContext) setFocus(c Focusable) {
	if prev := f.focused; prev != nil {
		prev.setFocused(false)
	}
	f.focused = c
	c.setFocused(true)
	logger.Debug().Int("tab_index", c.TabIndex()).Msg("focus: moved")
	scrollAncestorIntoView(c)
}

// tabOrder returns the currently traversable components: registered, able to
// focus right now, sorted by (tab index, registration sequence). Components
// that became disabled or hidden after registration are skipped here, not
// removed.
func (f *FocusContext) tabOrder() []Focusable {
	ordered := make([]focusEntry, 0, len(f.entries))
	for _, e := range f.entries {
		if e.c.CanFocus() {
			ordered = append(ordered, e)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].c.TabIndex() != ordered[j].c.TabIndex() {
			return ordered[i].c.TabIndex() < ordered[j].c.TabIndex()
		}
		return ordered[i].seq < ordered[j].seq
	})
	out := make([]Focusable, len(ordered))
	for i, e := range ordered {
		out[i] = e.c
	}
	return out
}

// advance moves focus by one step in tab order, wrapping cyclically.
func (f *FocusContext) advance(step int) {
	order := f.tabOrder()
	if len(order) == 0 {
		return
	}

	idx := -1
	for i, c := range order {
		if c == f.focused {
			idx = i
			break
		}
	}

	var next Focusable
	switch {
	case idx >= 0:
		next = order[(idx+step+len(order))%len(order)]
	case step > 0:
		next = order[0]
	default:
		next = order[len(order)-1]
	}
	if next == f.focused {
		return
	}
	f.setFocus(next)
}

// scrollAncestorIntoView asks the nearest scroll-capable ancestor, if any,
// to bring the component into view. No scrollable ancestor means no scroll.
func scrollAncestorIntoView(c Component) {
	for p := c.Parent(); p != nil; p = p.Parent() {
		if s, ok := p.(Scrollable); ok {
			s.ScrollIntoView(c)
			return
		}
	}
}

// Package strut is the layout and interaction substrate for a retained-mode
// widget toolkit driven by an external 2D scene-graph renderer.
//
// The package owns the box-model measurement/layout algorithm, flex
// distribution across child components, keyboard-focus traversal, and the
// text-cursor editing state machine shared by the text widgets. Painting,
// text shaping, asset loading, and animation belong to external
// collaborators reached through the VisualNode and TextMeasurer interfaces.
//
// The whole substrate is single-threaded and cooperative: layout, focus, and
// editing operations run to completion on the calling goroutine, and input
// events arrive as synchronous callbacks. Nothing here is safe for
// concurrent use; a multi-threaded embedding must serialize access itself.
// Layout must not be re-entered from inside a layout pass.
package strut

// Component is the contract every widget fulfils: report a desired size
// bottom-up (Measure), accept concrete geometry top-down (Layout), and push
// visual state into the renderer (Render).
//
// Concrete widgets embed Base, which supplies the state and the leaf-shaped
// default behavior.
type Component interface {
	// Measure returns the component's desired outer size given the space
	// the parent could offer. Fill dimensions report only their insets;
	// they are resolved during Layout.
	Measure(available Size) Size

	// Layout resolves final geometry inside the given slot (position and
	// available extent in the parent's space) and clears the dirty flag.
	Layout(slot Rect)

	// Render pushes current visual state to the owned scene-graph node.
	Render()

	// Box returns the component's declared box model.
	Box() BoxModel

	// SetBox replaces the box model and marks layout dirty.
	SetBox(box BoxModel)

	// ComputedLayout returns the geometry from the most recent layout
	// pass. While the component is layout-dirty the value is stale and
	// must not be trusted.
	ComputedLayout() ComputedLayout

	// Parent returns the containing component, or nil at the root.
	Parent() Component

	// Node returns the owned scene-graph node, if any.
	Node() VisualNode

	// MarkLayoutDirty flags this component and every ancestor as needing
	// a fresh layout pass.
	MarkLayoutDirty()

	// LayoutDirty reports whether a layout pass is pending.
	LayoutDirty() bool

	// Visible reports whether the component participates in layout and
	// rendering.
	Visible() bool

	// Enabled reports whether the component accepts interaction.
	Enabled() bool

	// Destroy releases the owned visual node and detaches the component.
	// Terminal: a destroyed component is never reused.
	Destroy()

	setParent(p Component)
}

// KeyHandler is implemented by components that consume keyboard events.
// The return value reports whether the event was handled.
type KeyHandler interface {
	HandleKeyDown(e KeyEvent) bool
}

// PointerHandler is implemented by components that consume pointer events.
type PointerHandler interface {
	HandlePointer(e PointerEvent) bool
}

// Base holds the state shared by every component: the box model, the cached
// computed layout, tree linkage, visibility/enabled/tab-index flags, and the
// dirty-tracking lifecycle. Construction enters the layout-dirty state; a
// Layout call moves to laid-out; Destroy is terminal.
type Base struct {
	box    BoxModel
	layout ComputedLayout

	parent Component
	node   VisualNode

	visible   bool
	enabled   bool
	tabIndex  int
	focused   bool
	dirty     bool
	destroyed bool

	onFocus func()
	onBlur  func()
}

// NewBase returns component state in its initial layout-dirty configuration:
// visible, enabled, and not focusable (tab index -1).
func NewBase() Base {
	return Base{
		visible:  true,
		enabled:  true,
		tabIndex: -1,
		dirty:    true,
	}
}

// Box returns the declared box model.
func (b *Base) Box() BoxModel { return b.box }

// SetBox replaces the box model wholesale and marks layout dirty.
func (b *Base) SetBox(box BoxModel) {
	b.box = box.normalized()
	b.MarkLayoutDirty()
}

// ComputedLayout returns the most recently computed geometry. Zero before
// the first layout pass; stale while the component is layout-dirty.
func (b *Base) ComputedLayout() ComputedLayout {
	if b.dirty && debugChecks {
		logger.Warn().Msg("component: computed layout read while layout-dirty")
	}
	return b.layout
}

// Parent returns the containing component, or nil.
func (b *Base) Parent() Component { return b.parent }

func (b *Base) setParent(p Component) { b.parent = p }

// Node returns the owned scene-graph node, or nil.
func (b *Base) Node() VisualNode { return b.node }

// SetNode attaches the scene-graph node this component owns.
func (b *Base) SetNode(n VisualNode) { b.node = n }

// MarkLayoutDirty flags this component and walks the parent chain so the
// next top-down pass starts from the root.
func (b *Base) MarkLayoutDirty() {
	b.dirty = true
	if b.parent != nil && !b.parent.LayoutDirty() {
		b.parent.MarkLayoutDirty()
	}
}

// LayoutDirty reports whether a fresh layout pass is pending.
func (b *Base) LayoutDirty() bool { return b.dirty }

// Visible reports whether the component takes part in layout and rendering.
func (b *Base) Visible() bool { return b.visible }

// SetVisible toggles visibility. Hidden components are skipped by flex
// layout and by focus traversal.
func (b *Base) SetVisible(visible bool) {
	if b.visible == visible {
		return
	}
	b.visible = visible
	b.MarkLayoutDirty()
}

// Enabled reports whether the component accepts interaction.
func (b *Base) Enabled() bool { return b.enabled }

// SetEnabled toggles interactivity. Disabled components are skipped at focus
// traversal time but stay registered.
func (b *Base) SetEnabled(enabled bool) { b.enabled = enabled }

// TabIndex returns the focus-order index; negative means not focusable.
func (b *Base) TabIndex() int { return b.tabIndex }

// SetTabIndex sets the focus-order index. Indices sort ascending in the tab
// order; ties keep registration order.
func (b *Base) SetTabIndex(i int) { b.tabIndex = i }

// CanFocus reports whether the component can receive keyboard focus right
// now: a non-negative tab index while visible, enabled, and alive.
func (b *Base) CanFocus() bool {
	return b.tabIndex >= 0 && b.visible && b.enabled && !b.destroyed
}

// IsFocused reports whether the component currently holds keyboard focus.
func (b *Base) IsFocused() bool { return b.focused }

// OnFocus sets the handler invoked when the component gains focus.
func (b *Base) OnFocus(fn func()) { b.onFocus = fn }

// OnBlur sets the handler invoked when the component loses focus.
func (b *Base) OnBlur(fn func()) { b.onBlur = fn }

// setFocused flips focus state and fires the matching handler. Only the
// focus context calls this.
func (b *Base) setFocused(focused bool) {
	if b.focused == focused {
		return
	}
	b.focused = focused
	if focused {
		if b.onFocus != nil {
			b.onFocus()
		}
	} else if b.onBlur != nil {
		b.onBlur()
	}
}

// Destroyed reports whether Destroy has been called.
func (b *Base) Destroyed() bool { return b.destroyed }

// Destroy releases the owned visual node and detaches from the parent's
// node. Terminal.
func (b *Base) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	if b.node != nil {
		if b.parent != nil && b.parent.Node() != nil {
			b.parent.Node().RemoveChild(b.node)
		}
		b.node = nil
	}
	b.parent = nil
}

// Measure is the leaf default: a box with no content of its own.
func (b *Base) Measure(available Size) Size {
	return MeasureBox(b.box, Size{})
}

// Layout is the leaf default: resolve the box against the slot.
func (b *Base) Layout(slot Rect) {
	b.finishLayout(slot, b.Measure(slot.SizeOf()))
}

// Render is a no-op by default; finishLayout already pushed geometry.
func (b *Base) Render() {}

// finishLayout runs the box algorithm for the given slot, stores the result
// wholesale, clears the dirty flag, and syncs the scene-graph node. Widgets
// call this from their Layout overrides with their own measured size.
func (b *Base) finishLayout(slot Rect, measured Size) {
	cl := LayoutBox(b.box, measured, slot.SizeOf()).OffsetBy(slot.X, slot.Y)
	b.layout = cl
	b.dirty = false
	if b.node != nil {
		b.node.SetPosition(cl.X, cl.Y)
		b.node.SetSize(cl.Width, cl.Height)
	}
}

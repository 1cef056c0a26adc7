package strut

// VisualNode is the scene-graph handle a component owns in the external
// renderer. The layout substrate never paints; it only attaches nodes to
// their parents and pushes geometry into them after a layout pass.
type VisualNode interface {
	// AttachChild parents the given node under this one.
	AttachChild(child VisualNode)

	// RemoveChild detaches the given node from this one.
	RemoveChild(child VisualNode)

	// SetPosition moves the node to (x, y) in its parent's space.
	SetPosition(x, y float32)

	// SetSize resizes the node's reported bounds.
	SetSize(width, height float32)
}

// TextMeasurer reports natural text dimensions. Text shaping and glyph
// metrics live in the rendering collaborator; auto-sized text components
// call into this interface during their measure pass.
//
// wrapWidth <= 0 means unconstrained (single line, no wrapping).
type TextMeasurer interface {
	MeasureText(text string, fontSize float32, wrapWidth float32) (width, height float32)
}

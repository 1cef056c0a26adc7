package strut

import "strings"

// stubNode records the geometry the layout pass pushes into the renderer.
type stubNode struct {
	children []VisualNode

	x, y float32
	w, h float32

	positioned int
	resized    int
}

func (n *stubNode) AttachChild(child VisualNode) {
	n.children = append(n.children, child)
}

func (n *stubNode) RemoveChild(child VisualNode) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

func (n *stubNode) SetPosition(x, y float32) {
	n.x, n.y = x, y
	n.positioned++
}

func (n *stubNode) SetSize(w, h float32) {
	n.w, n.h = w, h
	n.resized++
}

// gridMeasurer measures text on a fixed character grid: every rune is
// charWidth wide and every row is fontSize tall. Deterministic stand-in for
// the renderer's shaper.
type gridMeasurer struct {
	charWidth float32
}

func (m gridMeasurer) MeasureText(text string, fontSize, wrapWidth float32) (width, height float32) {
	cw := m.charWidth
	if cw == 0 {
		cw = 8
	}
	rows := 0
	for _, line := range strings.Split(text, "\n") {
		w := float32(len([]rune(line))) * cw
		if wrapWidth > 0 && w > wrapWidth {
			rows += int((w + wrapWidth - 1) / wrapWidth)
			w = wrapWidth
		} else {
			rows++
		}
		if w > width {
			width = w
		}
	}
	height = float32(rows) * fontSize
	return width, height
}

// newTestBox returns a bare leaf component with the given box model.
func newTestBox(box BoxModel) *Base {
	b := NewBase()
	b.SetBox(box)
	return &b
}

// newFocusBox returns a focusable leaf with the given tab index.
func newFocusBox(tabIndex int) *Base {
	b := NewBase()
	b.SetTabIndex(tabIndex)
	return &b
}

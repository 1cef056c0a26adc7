package strut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedBox(w, h float32) BoxModel {
	return BoxModel{Width: Fixed(w), Height: Fixed(h)}
}

func TestFlexFillDistribution(t *testing.T) {
	fillW := BoxModel{Width: Fill(), Height: Fixed(50)}

	a := newTestBox(fixedBox(50, 50))
	b := newTestBox(fillW)
	c := newTestBox(fixedBox(50, 50))
	d := newTestBox(fillW)

	row := HStack(a, b, c, d).Styled(fixedBox(300, 50))
	row.Layout(Rect{Width: 300, Height: 50})

	assert.Equal(t, float32(0), a.ComputedLayout().X)
	assert.Equal(t, float32(50), a.ComputedLayout().Width)
	assert.Equal(t, float32(50), b.ComputedLayout().X)
	assert.Equal(t, float32(100), b.ComputedLayout().Width)
	assert.Equal(t, float32(150), c.ComputedLayout().X)
	assert.Equal(t, float32(200), d.ComputedLayout().X)
	assert.Equal(t, float32(100), d.ComputedLayout().Width)

	// The children tile the container exactly.
	last := d.ComputedLayout()
	assert.Equal(t, float32(300), last.X+last.Width)
	assert.Equal(t, float32(0), row.Overflow())
	assert.False(t, row.LayoutDirty())
}

func TestFlexJustify(t *testing.T) {
	tests := []struct {
		name    string
		justify JustifyContent
		widths  []float32
		wantX   []float32
	}{
		{
			name:    "start packs at head",
			justify: JustifyStart,
			widths:  []float32{50, 50},
			wantX:   []float32{0, 50},
		},
		{
			name:    "end packs at tail",
			justify: JustifyEnd,
			widths:  []float32{50},
			wantX:   []float32{150},
		},
		{
			name:    "center splits free space",
			justify: JustifyCenter,
			widths:  []float32{50},
			wantX:   []float32{75},
		},
		{
			name:    "between pins edges",
			justify: JustifyBetween,
			widths:  []float32{20, 20, 20},
			wantX:   []float32{0, 90, 180},
		},
		{
			name:    "around gives edges half a gap",
			justify: JustifyAround,
			widths:  []float32{50, 50},
			wantX:   []float32{25, 125},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var children []Component
			for _, w := range tt.widths {
				children = append(children, newTestBox(fixedBox(w, 20)))
			}
			row := HStack(children...).Styled(fixedBox(200, 20)).Justify(tt.justify)
			row.Layout(Rect{Width: 200, Height: 20})

			for i, want := range tt.wantX {
				assert.InDelta(t, want, float64(children[i].ComputedLayout().X), 0.001, "child %d", i)
			}
		})
	}
}

func TestFlexGapAndMeasure(t *testing.T) {
	a := newTestBox(fixedBox(50, 20))
	b := newTestBox(fixedBox(50, 30))
	row := HStack(a, b).Gap(10)

	got := row.Measure(Size{Width: 1000, Height: 1000})
	assert.Equal(t, Size{Width: 110, Height: 30}, got)

	row.Layout(Rect{Width: 110, Height: 30})
	assert.Equal(t, float32(60), b.ComputedLayout().X)
}

func TestFlexOverflow(t *testing.T) {
	a := newTestBox(fixedBox(60, 20))
	b := newTestBox(fixedBox(60, 20))
	row := HStack(a, b).Styled(fixedBox(100, 20))
	row.Layout(Rect{Width: 100, Height: 20})

	// No shrink pass: children keep their size and run off the tail.
	assert.Equal(t, float32(0), a.ComputedLayout().X)
	assert.Equal(t, float32(60), b.ComputedLayout().X)
	assert.Equal(t, float32(60), b.ComputedLayout().Width)
	assert.Equal(t, float32(20), row.Overflow())
}

func TestFlexMargins(t *testing.T) {
	a := newTestBox(BoxModel{
		Width:  Fixed(50),
		Height: Fixed(20),
		Margin: Insets(0, 5, 0, 10),
	})
	b := newTestBox(fixedBox(50, 20))
	row := HStack(a, b).Styled(fixedBox(200, 20))
	row.Layout(Rect{Width: 200, Height: 20})

	assert.Equal(t, float32(10), a.ComputedLayout().X)
	assert.Equal(t, float32(65), b.ComputedLayout().X)
}

func TestFlexHiddenChildSkipped(t *testing.T) {
	a := newTestBox(fixedBox(50, 20))
	hidden := newTestBox(fixedBox(50, 20))
	hidden.SetVisible(false)
	b := newTestBox(fixedBox(50, 20))

	row := HStack(a, hidden, b).Styled(fixedBox(200, 20))
	row.Layout(Rect{Width: 200, Height: 20})

	assert.Equal(t, float32(50), b.ComputedLayout().X)
}

func TestFlexColumnAxis(t *testing.T) {
	a := newTestBox(fixedBox(40, 30))
	b := newTestBox(BoxModel{Width: Fixed(40), Height: Fill()})
	col := VStack(a, b).Styled(fixedBox(40, 100))
	col.Layout(Rect{Width: 40, Height: 100})

	assert.Equal(t, float32(0), a.ComputedLayout().Y)
	assert.Equal(t, float32(30), b.ComputedLayout().Y)
	assert.Equal(t, float32(70), b.ComputedLayout().Height)
}

func TestFlexAlignCross(t *testing.T) {
	center := newTestBox(fixedBox(20, 20))
	row := HStack(center).Styled(fixedBox(100, 50)).Align(AlignCenter)
	row.Layout(Rect{Width: 100, Height: 50})
	assert.Equal(t, float32(15), center.ComputedLayout().Y)
	assert.Equal(t, float32(20), center.ComputedLayout().Height)

	stretch := newTestBox(BoxModel{Width: Fixed(20), Height: Fill()})
	row2 := HStack(stretch).Styled(fixedBox(100, 50))
	row2.Layout(Rect{Width: 100, Height: 50})
	assert.Equal(t, float32(50), stretch.ComputedLayout().Height)

	end := newTestBox(fixedBox(20, 20))
	row3 := HStack(end).Styled(fixedBox(100, 50)).Align(AlignEnd)
	row3.Layout(Rect{Width: 100, Height: 50})
	assert.Equal(t, float32(30), end.ComputedLayout().Y)
}

func TestFlexZeroSpaceFillChild(t *testing.T) {
	fill := newTestBox(BoxModel{Width: Fill(), Height: Fixed(20)})
	row := HStack(fill).Styled(fixedBox(0, 20))
	row.Layout(Rect{Width: 0, Height: 20})

	assert.Equal(t, float32(0), fill.ComputedLayout().Width)
	assert.Equal(t, float32(0), row.Overflow())
}

func TestFlexEmptyContainerCollapses(t *testing.T) {
	row := HStack().Styled(BoxModel{Padding: InsetsAll(8)})
	got := row.Measure(Size{Width: 500, Height: 500})
	assert.Equal(t, Size{Width: 16, Height: 16}, got)
}

func TestFlexNestedFill(t *testing.T) {
	leaf := newTestBox(BoxModel{Width: Fill(), Height: Fixed(10)})
	inner := HStack(leaf).Styled(BoxModel{Width: Fill(), Height: Fixed(10)})
	outer := HStack(inner).Styled(fixedBox(240, 10))
	outer.Layout(Rect{Width: 240, Height: 10})

	require.Equal(t, float32(240), inner.ComputedLayout().Width)
	assert.Equal(t, float32(240), leaf.ComputedLayout().Width)
}

func TestFlexRemoveChild(t *testing.T) {
	a := newTestBox(fixedBox(50, 20))
	b := newTestBox(fixedBox(50, 20))
	row := HStack(a, b)

	row.RemoveChild(a)
	require.Len(t, row.Children(), 1)
	assert.Nil(t, a.Parent())
	assert.True(t, row.LayoutDirty())
}

func TestFlexNodeAttachment(t *testing.T) {
	parent := &stubNode{}
	childNode := &stubNode{}

	row := NewFlexContainer(FlexRow)
	row.SetNode(parent)
	row.Styled(fixedBox(100, 20))

	child := newTestBox(fixedBox(50, 20))
	child.SetNode(childNode)
	row.AddChild(child)

	require.Len(t, parent.children, 1)

	row.Layout(Rect{X: 5, Y: 7, Width: 100, Height: 20})
	assert.Equal(t, float32(5), childNode.x)
	assert.Equal(t, float32(7), childNode.y)
	assert.Equal(t, float32(50), childNode.w)

	row.RemoveChild(child)
	assert.Empty(t, parent.children)
}

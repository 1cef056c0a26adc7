package strut

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(v float32) *float32 { return &v }

func TestMeasureBox(t *testing.T) {
	tests := []struct {
		name    string
		box     BoxModel
		content Size
		want    Size
	}{
		{
			name: "fixed adds padding",
			box: BoxModel{
				Width:   Fixed(100),
				Height:  Fixed(40),
				Padding: InsetsAll(10),
			},
			want: Size{Width: 120, Height: 60},
		},
		{
			name:    "auto follows content",
			box:     BoxModel{},
			content: Size{Width: 80, Height: 20},
			want:    Size{Width: 80, Height: 20},
		},
		{
			name: "auto clamped to max",
			box: BoxModel{
				MaxWidth: fptr(50),
			},
			content: Size{Width: 80, Height: 20},
			want:    Size{Width: 50, Height: 20},
		},
		{
			name: "fixed raised to min",
			box: BoxModel{
				Width:    Fixed(10),
				MinWidth: fptr(30),
			},
			content: Size{Height: 20},
			want:    Size{Width: 30, Height: 20},
		},
		{
			name: "fill contributes only insets",
			box: BoxModel{
				Width:   Fill(),
				Height:  Fill(),
				Padding: InsetsAll(5),
				Border:  InsetsAll(1),
			},
			content: Size{Width: 999, Height: 999},
			want:    Size{Width: 12, Height: 12},
		},
		{
			name:    "degenerate content clamps to zero",
			box:     BoxModel{},
			content: Size{Width: -5, Height: float32(math.NaN())},
			want:    Size{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MeasureBox(tt.box, tt.content))
		})
	}
}

func TestLayoutBoxFillClaimsAvailable(t *testing.T) {
	box := BoxModel{Width: Fill(), Height: Fill(), Padding: InsetsAll(10)}
	measured := MeasureBox(box, Size{})

	cl := LayoutBox(box, measured, Size{Width: 200, Height: 100})
	assert.Equal(t, float32(200), cl.Width)
	assert.Equal(t, float32(100), cl.Height)
	assert.Equal(t, float32(10), cl.ContentX)
	assert.Equal(t, float32(10), cl.ContentY)
	assert.Equal(t, float32(180), cl.ContentWidth)
	assert.Equal(t, float32(80), cl.ContentHeight)
}

func TestLayoutBoxFixedIgnoresAvailable(t *testing.T) {
	box := BoxModel{Width: Fixed(100), Height: Fixed(40), Padding: InsetsAll(10)}
	measured := MeasureBox(box, Size{})

	cl := LayoutBox(box, measured, Size{Width: 500, Height: 500})
	assert.Equal(t, float32(120), cl.Width)
	assert.Equal(t, float32(60), cl.Height)
}

func TestLayoutBoxFillRespectsMax(t *testing.T) {
	box := BoxModel{Width: Fill(), MaxWidth: fptr(150)}
	cl := LayoutBox(box, MeasureBox(box, Size{}), Size{Width: 400, Height: 50})
	assert.Equal(t, float32(150), cl.Width)
}

func TestLayoutBoxDegenerateAvailable(t *testing.T) {
	nan := float32(math.NaN())
	box := BoxModel{Width: Fill(), Height: Fill()}

	cl := LayoutBox(box, Size{}, Size{Width: nan, Height: -20})
	assert.Equal(t, float32(0), cl.Width)
	assert.Equal(t, float32(0), cl.Height)
}

func TestLayoutBoxPure(t *testing.T) {
	box := BoxModel{Width: Fill(), Height: Fixed(30), Padding: InsetsSymmetric(4, 2)}
	measured := MeasureBox(box, Size{Width: 12, Height: 12})
	avail := Size{Width: 320, Height: 200}

	first := LayoutBox(box, measured, avail)
	second := LayoutBox(box, measured, avail)
	assert.Equal(t, first, second)
}

func TestComputedLayoutOffsetAndContains(t *testing.T) {
	cl := ComputedLayout{Width: 50, Height: 20, ContentX: 5, ContentY: 5, ContentWidth: 40, ContentHeight: 10}
	moved := cl.OffsetBy(100, 200)

	assert.Equal(t, float32(100), moved.X)
	assert.Equal(t, float32(205), moved.ContentY)
	assert.True(t, moved.Contains(100, 200))
	assert.True(t, moved.Contains(149, 219))
	assert.False(t, moved.Contains(150, 200))
	assert.False(t, moved.Contains(100, 220))
}

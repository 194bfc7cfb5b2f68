package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type arcCall struct {
	bounds Rect
	start  float32
	sweep  float32
	stroke Stroke
}

type recordingSurface struct {
	arcs  []arcCall
	rects int
}

func (surface *recordingSurface) DrawArc(bounds Rect, startAngle, sweepAngle float32, stroke Stroke) {
	surface.arcs = append(surface.arcs, arcCall{bounds: bounds, start: startAngle, sweep: sweepAngle, stroke: stroke})
}

func (surface *recordingSurface) DrawRoundRect(Rect, float32, color.NRGBA, Stroke) {
	surface.rects++
}

func TestDeterminateSweep(t *testing.T) {
	tests := []struct {
		progress int
		max      int
		want     float32
	}{
		{0, 100, 0},
		{50, 100, 180},
		{100, 100, 360},
		{25, 100, 90},
		{10, 20, 180},
		{5, 0, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, DeterminateSweep(tt.progress, tt.max), 0.001, "progress %d/%d", tt.progress, tt.max)
	}
}

func TestIndicatorBoundsCentresSquare(t *testing.T) {
	bounds := IndicatorBounds(200, 40, 4)

	assert.Equal(t, Rect{Left: 84, Top: 4, Right: 116, Bottom: 36}, bounds)
	assert.InDelta(t, bounds.Width(), bounds.Height(), 0.001)
}

func TestDrawDeterminate(t *testing.T) {
	surface := &recordingSurface{}
	stroke := Stroke{Color: color.NRGBA{B: 255, A: 255}, Width: 4}

	DrawDeterminate(surface, Rect{Right: 40, Bottom: 40}, 50, 100, stroke)

	require.Len(t, surface.arcs, 1)
	call := surface.arcs[0]
	assert.Equal(t, StartAngle, call.start)
	assert.InDelta(t, 180, call.sweep, 0.001)
	assert.Equal(t, Rect{Left: 2, Top: 2, Right: 38, Bottom: 38}, call.bounds)
}

func TestDrawDeterminateSkipsEmptyArc(t *testing.T) {
	surface := &recordingSurface{}
	DrawDeterminate(surface, Rect{Right: 40, Bottom: 40}, 0, 100, Stroke{Width: 4})
	assert.Empty(t, surface.arcs)
}

func TestImageSurfaceDrawsArc(t *testing.T) {
	surface := NewImageSurface(100, 100, 1)
	blue := color.NRGBA{B: 255, A: 255}

	surface.DrawArc(Rect{Left: 10, Top: 10, Right: 90, Bottom: 90}, StartAngle, 180, Stroke{Color: blue, Width: 4})

	// top centre and right centre lie on the first half of the circle
	assert.NotZero(t, surface.Image.NRGBAAt(50, 10).A)
	assert.NotZero(t, surface.Image.NRGBAAt(89, 50).A)
	// left centre is outside the swept half
	assert.Zero(t, surface.Image.NRGBAAt(10, 50).A)
	assert.Zero(t, surface.Image.NRGBAAt(50, 50).A)
}

func TestImageSurfaceFillsRoundRect(t *testing.T) {
	surface := NewImageSurface(100, 40, 1)
	green := color.NRGBA{G: 200, A: 255}

	surface.DrawRoundRect(Rect{Right: 100, Bottom: 40}, 8, green, Stroke{})

	assert.Equal(t, green, surface.Image.NRGBAAt(50, 20))
	// corner pixel is cut away by the radius
	assert.Zero(t, surface.Image.NRGBAAt(0, 0).A)
}

func TestImageSurfaceScale(t *testing.T) {
	surface := NewImageSurface(200, 80, 2)
	red := color.NRGBA{R: 255, A: 255}

	surface.DrawRoundRect(Rect{Left: 50, Right: 100, Bottom: 40}, 0, red, Stroke{})

	assert.Equal(t, red, surface.Image.NRGBAAt(150, 40))
	assert.Zero(t, surface.Image.NRGBAAt(50, 40).A)
}

func TestImageSurfaceIgnoresEmptyImage(t *testing.T) {
	surface := NewImageSurface(0, 0, 1)
	assert.NotPanics(t, func() {
		surface.DrawArc(Rect{Right: 10, Bottom: 10}, 0, 90, Stroke{Width: 2, Color: color.NRGBA{A: 255}})
		surface.DrawRoundRect(Rect{Right: 10, Bottom: 10}, 2, color.NRGBA{A: 255}, Stroke{})
	})
}

func TestImageSurfaceDrawsLargeArc(t *testing.T) {
	surface := NewImageSurface(100, 100, 1)
	blue := color.NRGBA{B: 255, A: 255}

	surface.DrawArc(Rect{Left: 10, Top: 10, Right: 90, Bottom: 90}, StartAngle, 270, Stroke{Color: blue, Width: 4})

	assert.NotZero(t, surface.Image.NRGBAAt(89, 50).A)
	assert.NotZero(t, surface.Image.NRGBAAt(50, 89).A)
	assert.NotZero(t, surface.Image.NRGBAAt(11, 50).A)
	// the top-left quarter stays open
	assert.Zero(t, surface.Image.NRGBAAt(22, 22).A)
}

func TestImageSurfaceDrawsFullCircle(t *testing.T) {
	surface := NewImageSurface(100, 100, 1)
	blue := color.NRGBA{B: 255, A: 255}

	surface.DrawArc(Rect{Left: 10, Top: 10, Right: 90, Bottom: 90}, StartAngle, 360, Stroke{Color: blue, Width: 4})

	assert.NotZero(t, surface.Image.NRGBAAt(22, 22).A)
	assert.NotZero(t, surface.Image.NRGBAAt(11, 50).A)
	assert.Zero(t, surface.Image.NRGBAAt(50, 50).A)
}

func TestImageSurfaceSquareRoundRectIsCircle(t *testing.T) {
	surface := NewImageSurface(40, 40, 1)
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	surface.DrawRoundRect(Rect{Right: 40, Bottom: 40}, 40, white, Stroke{})

	assert.Equal(t, white, surface.Image.NRGBAAt(20, 20))
	assert.NotZero(t, surface.Image.NRGBAAt(20, 1).A)
	assert.Zero(t, surface.Image.NRGBAAt(2, 2).A)
}

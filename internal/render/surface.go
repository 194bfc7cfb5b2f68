// Package render holds the drawing primitives the progress button paints with.
//
// Angles are in degrees, measured clockwise from 3 o'clock with y growing
// downward, so -90 is 12 o'clock.
package render

import "image/color"

// Rect is an axis-aligned rectangle in logical units.
type Rect struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

// Width returns the horizontal extent.
func (rect Rect) Width() float32 {
	return rect.Right - rect.Left
}

// Height returns the vertical extent.
func (rect Rect) Height() float32 {
	return rect.Bottom - rect.Top
}

// Inset shrinks the rectangle by amount on every side.
func (rect Rect) Inset(amount float32) Rect {
	return Rect{
		Left:   rect.Left + amount,
		Top:    rect.Top + amount,
		Right:  rect.Right - amount,
		Bottom: rect.Bottom - amount,
	}
}

// Empty reports whether the rectangle has no area.
func (rect Rect) Empty() bool {
	return rect.Width() <= 0 || rect.Height() <= 0
}

// Stroke describes an outline.
type Stroke struct {
	Color color.NRGBA
	Width float32
}

// Surface is the drawing target supplied by the host.
type Surface interface {
	DrawArc(bounds Rect, startAngle, sweepAngle float32, stroke Stroke)
	DrawRoundRect(bounds Rect, radius float32, fill color.NRGBA, stroke Stroke)
}

// Renderable paints its current visual onto a surface.
type Renderable interface {
	Render(surface Surface)
}

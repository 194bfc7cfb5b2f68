package render

// StartAngle is where the determinate arc begins (12 o'clock).
const StartAngle float32 = -90

// DeterminateSweep converts a progress value into degrees of arc.
func DeterminateSweep(progress, maxProgress int) float32 {
	if maxProgress <= 0 {
		return 0
	}
	return (360 / float32(maxProgress)) * float32(progress)
}

// IndicatorBounds returns the square the progress indicator is drawn in:
// the button height minus padding, centred horizontally.
func IndicatorBounds(width, height, padding float32) Rect {
	offset := (width - height) / 2
	size := height - padding*2
	left := offset + padding
	return Rect{
		Left:   left,
		Top:    padding,
		Right:  left + size,
		Bottom: padding + size,
	}
}

// DrawDeterminate strokes the arc for progress inside bounds.
func DrawDeterminate(surface Surface, bounds Rect, progress, maxProgress int, stroke Stroke) {
	sweep := DeterminateSweep(progress, maxProgress)
	if sweep <= 0 {
		return
	}
	if sweep > 360 {
		sweep = 360
	}
	surface.DrawArc(bounds.Inset(stroke.Width/2), StartAngle, sweep, stroke)
}

package animation

import (
	"image/color"

	"cpbutton/internal/core/model"

	"github.com/lucasb-eyer/go-colorful"
)

// Interpolate blends every numeric field of two styles linearly at fraction t.
func Interpolate(from, to model.Style, t float32) model.Style {
	t = clamp(t)
	return model.Style{
		BackgroundColor: LerpColor(from.BackgroundColor, to.BackgroundColor, t),
		StrokeColor:     LerpColor(from.StrokeColor, to.StrokeColor, t),
		CornerRadius:    lerp(from.CornerRadius, to.CornerRadius, t),
		Width:           lerp(from.Width, to.Width, t),
		Height:          lerp(from.Height, to.Height, t),
		Padding:         lerp(from.Padding, to.Padding, t),
	}
}

// LerpColor blends the RGB channels in RGB space and the alpha channel linearly.
func LerpColor(from, to color.NRGBA, t float32) color.NRGBA {
	t = clamp(t)
	red, green, blue := toColorful(from).BlendRgb(toColorful(to), float64(t)).RGB255()
	return color.NRGBA{
		R: red,
		G: green,
		B: blue,
		A: uint8(lerp(float32(from.A), float32(to.A), t) + 0.5),
	}
}

func toColorful(value color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(value.R) / 255,
		G: float64(value.G) / 255,
		B: float64(value.B) / 255,
	}
}

func lerp(from, to, t float32) float32 {
	return from + (to-from)*t
}

func clamp(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

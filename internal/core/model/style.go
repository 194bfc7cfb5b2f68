package model

import "image/color"

// Style is a snapshot of the button background at one animation frame.
type Style struct {
	BackgroundColor color.NRGBA
	StrokeColor     color.NRGBA
	CornerRadius    float32
	Width           float32
	Height          float32
	Padding         float32
}

// Interaction describes the pointer and enablement state reported by the host view.
type Interaction struct {
	Pressed  bool
	Focused  bool
	Disabled bool
}

// Palette holds the colour variants of one semantic state.
type Palette struct {
	Normal   color.NRGBA
	Pressed  color.NRGBA
	Focused  color.NRGBA
	Disabled color.NRGBA
}

// Resolve returns the variant for the given interaction.
func (palette Palette) Resolve(interaction Interaction) color.NRGBA {
	switch {
	case interaction.Disabled:
		return palette.Disabled
	case interaction.Pressed:
		return palette.Pressed
	case interaction.Focused:
		return palette.Focused
	default:
		return palette.Normal
	}
}

// Uniform returns a palette using the same colour for every variant.
func Uniform(value color.NRGBA) Palette {
	return Palette{
		Normal:   value,
		Pressed:  value,
		Focused:  value,
		Disabled: value,
	}
}

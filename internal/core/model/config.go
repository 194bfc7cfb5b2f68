package model

import (
	"errors"
	"fmt"
	"image/color"
	"time"
)

var (
	// ErrMissingVariant indicates a palette colour variant was not provided.
	ErrMissingVariant = errors.New("missing colour variant")
	// ErrInvalidConfig indicates a geometry or range value is out of bounds.
	ErrInvalidConfig = errors.New("invalid button config")
)

// ButtonConfig contains the palettes, geometry and texts of a progress button.
type ButtonConfig struct {
	Idle     Palette
	Complete Palette
	Error    Palette

	ProgressColor            color.NRGBA
	IndicatorColor           color.NRGBA
	IndicatorBackgroundColor color.NRGBA

	CornerRadius    float32
	StrokeWidth     float32
	PaddingProgress float32

	IdleText     string
	ProgressText string
	CompleteText string
	ErrorText    string

	MaxProgress   int
	MorphDuration time.Duration
}

var (
	blue      = color.NRGBA{R: 0x00, G: 0x99, B: 0xcc, A: 0xff}
	bluePress = color.NRGBA{R: 0x00, G: 0x77, B: 0xa3, A: 0xff}
	green     = color.NRGBA{R: 0x99, G: 0xcc, B: 0x00, A: 0xff}
	greenDark = color.NRGBA{R: 0x66, G: 0x99, B: 0x00, A: 0xff}
	red       = color.NRGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xff}
	redDark   = color.NRGBA{R: 0xcc, G: 0x00, B: 0x00, A: 0xff}
	white     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	grey      = color.NRGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}
	disabled  = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
)

// DefaultConfig returns the stock blue/green/red theme.
func DefaultConfig() ButtonConfig {
	return ButtonConfig{
		Idle: Palette{
			Normal:   blue,
			Pressed:  bluePress,
			Focused:  bluePress,
			Disabled: disabled,
		},
		Complete: Palette{
			Normal:   green,
			Pressed:  greenDark,
			Focused:  greenDark,
			Disabled: disabled,
		},
		Error: Palette{
			Normal:   red,
			Pressed:  redDark,
			Focused:  redDark,
			Disabled: disabled,
		},
		ProgressColor:            white,
		IndicatorColor:           blue,
		IndicatorBackgroundColor: grey,
		CornerRadius:             4,
		StrokeWidth:              4,
		PaddingProgress:          0,
		IdleText:                 "Upload",
		CompleteText:             "Done",
		ErrorText:                "Error",
		MaxProgress:              100,
		MorphDuration:            400 * time.Millisecond,
	}
}

// Validate rejects configs the animation layer cannot render.
// A zero colour value is treated as a missing variant.
func (config ButtonConfig) Validate() error {
	palettes := []struct {
		name    string
		palette Palette
	}{
		{"idle", config.Idle},
		{"complete", config.Complete},
		{"error", config.Error},
	}
	for _, entry := range palettes {
		if err := validatePalette(entry.name, entry.palette); err != nil {
			return err
		}
	}

	colors := []struct {
		name  string
		value color.NRGBA
	}{
		{"progress", config.ProgressColor},
		{"indicator", config.IndicatorColor},
		{"indicator background", config.IndicatorBackgroundColor},
	}
	for _, entry := range colors {
		if isUnset(entry.value) {
			return fmt.Errorf("%s colour: %w", entry.name, ErrMissingVariant)
		}
	}

	if config.CornerRadius < 0 || config.StrokeWidth < 0 || config.PaddingProgress < 0 {
		return fmt.Errorf("negative geometry: %w", ErrInvalidConfig)
	}
	if config.MaxProgress <= 0 {
		return fmt.Errorf("max progress %d: %w", config.MaxProgress, ErrInvalidConfig)
	}
	if config.MorphDuration < 0 {
		return fmt.Errorf("morph duration %s: %w", config.MorphDuration, ErrInvalidConfig)
	}
	return nil
}

func validatePalette(name string, palette Palette) error {
	if err := palette.Validate(); err != nil {
		return fmt.Errorf("%s palette %w", name, err)
	}
	return nil
}

// Validate reports the first unset variant.
func (palette Palette) Validate() error {
	variants := []struct {
		name  string
		value color.NRGBA
	}{
		{"normal", palette.Normal},
		{"pressed", palette.Pressed},
		{"focused", palette.Focused},
		{"disabled", palette.Disabled},
	}
	for _, variant := range variants {
		if isUnset(variant.value) {
			return fmt.Errorf("%s: %w", variant.name, ErrMissingVariant)
		}
	}
	return nil
}

func isUnset(value color.NRGBA) bool {
	return value == color.NRGBA{}
}

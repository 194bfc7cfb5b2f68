package storage

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"cpbutton/internal/core/model"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

type yamlPalette struct {
	Normal   string `yaml:"normal"`
	Pressed  string `yaml:"pressed"`
	Focused  string `yaml:"focused"`
	Disabled string `yaml:"disabled"`
}

type yamlTheme struct {
	Palettes struct {
		Idle     *yamlPalette `yaml:"idle"`
		Complete *yamlPalette `yaml:"complete"`
		Error    *yamlPalette `yaml:"error"`
	} `yaml:"palettes"`
	Progress            string   `yaml:"progress"`
	Indicator           string   `yaml:"indicator"`
	IndicatorBackground string   `yaml:"indicator_background"`
	CornerRadius        *float32 `yaml:"corner_radius"`
	StrokeWidth         *float32 `yaml:"stroke_width"`
	PaddingProgress     *float32 `yaml:"padding_progress"`
	MaxProgress         int      `yaml:"max_progress"`
	MorphDurationMillis int      `yaml:"morph_duration_ms"`
}

// LoadTheme reads a theme file and overlays it on base.
func LoadTheme(path string, base model.ButtonConfig) (model.ButtonConfig, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, fmt.Errorf("theme file %s: %w", path, err)
		}
		return base, fmt.Errorf("read theme file: %w", err)
	}
	return ParseTheme(rawData, base)
}

// ParseTheme decodes theme YAML. A palette that is present must list all four
// variants; omitted palettes keep the base colours. The result is validated.
func ParseTheme(rawData []byte, base model.ButtonConfig) (model.ButtonConfig, error) {
	var fileData yamlTheme
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return base, fmt.Errorf("parse theme yaml: %w", err)
	}

	config := base
	palettes := []struct {
		name   string
		source *yamlPalette
		target *model.Palette
	}{
		{"idle", fileData.Palettes.Idle, &config.Idle},
		{"complete", fileData.Palettes.Complete, &config.Complete},
		{"error", fileData.Palettes.Error, &config.Error},
	}
	for _, entry := range palettes {
		if entry.source == nil {
			continue
		}
		palette, err := parsePalette(entry.name, *entry.source)
		if err != nil {
			return base, err
		}
		*entry.target = palette
	}

	colors := []struct {
		name   string
		value  string
		target *color.NRGBA
	}{
		{"progress", fileData.Progress, &config.ProgressColor},
		{"indicator", fileData.Indicator, &config.IndicatorColor},
		{"indicator_background", fileData.IndicatorBackground, &config.IndicatorBackgroundColor},
	}
	for _, entry := range colors {
		if entry.value == "" {
			continue
		}
		parsed, err := parseHex(entry.value)
		if err != nil {
			return base, fmt.Errorf("theme %s: %w", entry.name, err)
		}
		*entry.target = parsed
	}

	if fileData.CornerRadius != nil {
		config.CornerRadius = *fileData.CornerRadius
	}
	if fileData.StrokeWidth != nil {
		config.StrokeWidth = *fileData.StrokeWidth
	}
	if fileData.PaddingProgress != nil {
		config.PaddingProgress = *fileData.PaddingProgress
	}
	if fileData.MaxProgress != 0 {
		config.MaxProgress = fileData.MaxProgress
	}
	if fileData.MorphDurationMillis > 0 {
		config.MorphDuration = time.Duration(fileData.MorphDurationMillis) * time.Millisecond
	}

	if err := config.Validate(); err != nil {
		return base, fmt.Errorf("validate theme: %w", err)
	}
	return config, nil
}

func parsePalette(name string, source yamlPalette) (model.Palette, error) {
	variants := []struct {
		name  string
		value string
	}{
		{"normal", source.Normal},
		{"pressed", source.Pressed},
		{"focused", source.Focused},
		{"disabled", source.Disabled},
	}
	parsed := make([]color.NRGBA, 0, len(variants))
	for _, variant := range variants {
		if variant.value == "" {
			return model.Palette{}, fmt.Errorf("theme %s palette %s: %w", name, variant.name, model.ErrMissingVariant)
		}
		value, err := parseHex(variant.value)
		if err != nil {
			return model.Palette{}, fmt.Errorf("theme %s palette %s: %w", name, variant.name, err)
		}
		parsed = append(parsed, value)
	}
	return model.Palette{
		Normal:   parsed[0],
		Pressed:  parsed[1],
		Focused:  parsed[2],
		Disabled: parsed[3],
	}, nil
}

func parseHex(value string) (color.NRGBA, error) {
	parsed, err := colorful.Hex(value)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse colour %q: %w", value, err)
	}
	red, green, blue := parsed.RGB255()
	return color.NRGBA{R: red, G: green, B: blue, A: 0xff}, nil
}

package preferences

import (
	"time"

	"cpbutton/internal/core/model"
)

// Settings defines editable demo preferences.
type Settings struct {
	IdleText     string
	ProgressText string
	CompleteText string
	ErrorText    string

	MorphDuration time.Duration
	Indeterminate bool

	// SimulationStep is the progress added on every simulation tick.
	SimulationStep     int
	SimulationInterval time.Duration
}

// DefaultSettings returns the settings the demo starts with.
func DefaultSettings() Settings {
	config := model.DefaultConfig()
	return Settings{
		IdleText:           config.IdleText,
		ProgressText:       config.ProgressText,
		CompleteText:       config.CompleteText,
		ErrorText:          config.ErrorText,
		MorphDuration:      config.MorphDuration,
		Indeterminate:      false,
		SimulationStep:     5,
		SimulationInterval: 150 * time.Millisecond,
	}
}

// ButtonConfig applies the settings on top of a theme.
func (settings Settings) ButtonConfig(theme model.ButtonConfig) model.ButtonConfig {
	theme.IdleText = settings.IdleText
	theme.ProgressText = settings.ProgressText
	theme.CompleteText = settings.CompleteText
	theme.ErrorText = settings.ErrorText
	if settings.MorphDuration > 0 {
		theme.MorphDuration = settings.MorphDuration
	}
	return theme
}

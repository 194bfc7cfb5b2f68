package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cpbutton/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	IdleText           string `yaml:"idle_text"`
	ProgressText       string `yaml:"progress_text"`
	CompleteText       string `yaml:"complete_text"`
	ErrorText          string `yaml:"error_text"`
	MorphDurationMs    int    `yaml:"morph_duration_ms"`
	Indeterminate      bool   `yaml:"indeterminate"`
	SimulationStep     int    `yaml:"simulation_step"`
	SimulationInterval int    `yaml:"simulation_interval_ms"`
}

// LoadSettings reads demo preferences from YAML under the user config dir.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := resolveConfigPath(appName, settingsFileName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads demo preferences from path.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes demo preferences to YAML under the user config dir.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName, settingsFileName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SaveSettingsFile writes demo preferences to path.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		IdleText:           settings.IdleText,
		ProgressText:       settings.ProgressText,
		CompleteText:       settings.CompleteText,
		ErrorText:          settings.ErrorText,
		MorphDurationMs:    int(settings.MorphDuration / time.Millisecond),
		Indeterminate:      settings.Indeterminate,
		SimulationStep:     settings.SimulationStep,
		SimulationInterval: int(settings.SimulationInterval / time.Millisecond),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName, fileName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, fileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.IdleText != "" {
		settings.IdleText = fileData.IdleText
	}
	if fileData.CompleteText != "" {
		settings.CompleteText = fileData.CompleteText
	}
	if fileData.ErrorText != "" {
		settings.ErrorText = fileData.ErrorText
	}
	settings.ProgressText = fileData.ProgressText

	if fileData.MorphDurationMs > 0 {
		settings.MorphDuration = time.Duration(fileData.MorphDurationMs) * time.Millisecond
	}
	if fileData.SimulationStep > 0 && fileData.SimulationStep <= 100 {
		settings.SimulationStep = fileData.SimulationStep
	}
	if fileData.SimulationInterval > 0 {
		settings.SimulationInterval = time.Duration(fileData.SimulationInterval) * time.Millisecond
	}

	settings.Indeterminate = fileData.Indeterminate
}

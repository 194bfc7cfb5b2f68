package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cpbutton/internal/core/progress"

	"gopkg.in/yaml.v3"
)

const stateFileName = "state.yaml"

type yamlSavedState struct {
	Progress      int  `yaml:"progress"`
	Indeterminate bool `yaml:"indeterminate"`
	ForceInstant  bool `yaml:"force_instant"`
}

// StateStore keeps saved button records in one YAML file keyed by button.
type StateStore struct {
	path string
}

// NewStateStore returns a store backed by path.
func NewStateStore(path string) *StateStore {
	return &StateStore{path: path}
}

// DefaultStateStore returns the store under the user config directory.
func DefaultStateStore(appName string) (*StateStore, error) {
	path, err := resolveConfigPath(appName, stateFileName)
	if err != nil {
		return nil, err
	}
	return NewStateStore(path), nil
}

// Path returns the backing file.
func (store *StateStore) Path() string {
	return store.path
}

// Load returns the record for key. Loaded records always force an instant restore.
func (store *StateStore) Load(key string) (progress.SavedState, bool, error) {
	records, err := store.readAll()
	if err != nil {
		return progress.SavedState{}, false, err
	}
	record, ok := records[key]
	if !ok {
		return progress.SavedState{}, false, nil
	}
	return progress.SavedState{
		Progress:      record.Progress,
		Indeterminate: record.Indeterminate,
		ForceInstant:  true,
	}, true, nil
}

// Save writes the record for key, keeping the others.
func (store *StateStore) Save(key string, state progress.SavedState) error {
	records, err := store.readAll()
	if err != nil {
		return err
	}
	records[key] = yamlSavedState{
		Progress:      state.Progress,
		Indeterminate: state.Indeterminate,
		ForceInstant:  state.ForceInstant,
	}

	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	serialized, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal state yaml: %w", err)
	}
	if err := os.WriteFile(store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

func (store *StateStore) readAll() (map[string]yamlSavedState, error) {
	records := map[string]yamlSavedState{}
	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return records, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}
	if err := yaml.Unmarshal(rawData, &records); err != nil {
		return nil, fmt.Errorf("parse state yaml: %w", err)
	}
	if records == nil {
		records = map[string]yamlSavedState{}
	}
	return records, nil
}

package store

import (
	"bytes"
	"fmt"
	"os"

	"github.com/plouvier/facture/pkg/entity"
)

// Settings reads the settings document. An empty document (as written by
// init before the settings prompt has run) parses to the zero value.
func (s *Store) Settings() (entity.Settings, error) {
	data, err := os.ReadFile(s.layout.SettingsFile)
	if err != nil {
		return entity.Settings{}, fmt.Errorf("unable to read settings file %s: %w", s.layout.SettingsFile, err)
	}

	var settings entity.Settings
	if len(bytes.TrimSpace(data)) == 0 {
		return settings, nil
	}
	if err := entity.FromYAML(data, &settings); err != nil {
		return entity.Settings{}, fmt.Errorf("unable to parse settings file %s: %w", s.layout.SettingsFile, err)
	}
	return settings, nil
}

// SaveSettings replaces the settings document wholesale. Create and edit
// both go through here.
func (s *Store) SaveSettings(settings entity.Settings) error {
	data, err := entity.ToYAML(settings)
	if err != nil {
		return fmt.Errorf("unable to serialize settings: %w", err)
	}
	if err := os.WriteFile(s.layout.SettingsFile, data, 0o644); err != nil {
		return fmt.Errorf("unable to write settings file %s: %w", s.layout.SettingsFile, err)
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "config.yaml"

// Storage backends understood by the progress package.
const (
	BackendFile   = "file"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

// NerdFonts modes.
const (
	NerdFontsAuto = "auto"
	NerdFontsOn   = "on"
	NerdFontsOff  = "off"
)

// DefaultStateKey is the key the progress record is stored under.
const DefaultStateKey = "shipfive-state"

// Settings are the user-tunable options read from config.yaml.
type Settings struct {
	Backend   string `yaml:"backend" validate:"required,oneof=file badger memory"`
	StateKey  string `yaml:"state_key" validate:"required,max=128,excludesall=/\\"`
	NerdFonts string `yaml:"nerd_fonts" validate:"required,oneof=auto on off"`
	Debug     bool   `yaml:"debug"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		Backend:   BackendFile,
		StateKey:  DefaultStateKey,
		NerdFonts: NerdFontsAuto,
	}
}

var validate = validator.New()

// Validate checks the settings against their constraints.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// fill replaces zero values with defaults so a partial file still validates.
func (s *Settings) fill() {
	def := DefaultSettings()
	if s.Backend == "" {
		s.Backend = def.Backend
	}
	if s.StateKey == "" {
		s.StateKey = def.StateKey
	}
	if s.NerdFonts == "" {
		s.NerdFonts = def.NerdFonts
	}
}

// LoadSettings reads config.yaml from the state directory.
// A missing file yields defaults. A file that fails to parse or validate
// also yields defaults, together with the error so the caller can log it.
func LoadSettings() (Settings, error) {
	path, err := PathInShipDir(settingsFileName)
	if err != nil {
		return DefaultSettings(), err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultSettings(), nil
	} else if err != nil {
		return DefaultSettings(), fmt.Errorf("read %s: %w", path, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("parse %s: %w", path, err)
	}
	settings.fill()
	if err := settings.Validate(); err != nil {
		return DefaultSettings(), err
	}
	return settings, nil
}

// SaveSettings writes settings to config.yaml in the state directory.
func SaveSettings(settings Settings) error {
	settings.fill()
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := EnsureShipDir(); err != nil {
		return err
	}

	path, err := PathInShipDir(settingsFileName)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

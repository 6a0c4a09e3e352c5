// Package config loads the pxhist configuration file and resolves the
// directories and paths pxhist reads and writes to.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root of $PXH_HOME/config.yaml.
type Config struct {
	Recall RecallConfig `yaml:"recall"`
}

// RecallConfig controls the recall TUI.
type RecallConfig struct {
	// Keymap selects the initial input mode: "emacs" or "vim".
	Keymap string `yaml:"keymap"`

	// ShowPreview toggles the preview pane.
	ShowPreview bool `yaml:"show_preview"`

	// ResultLimit bounds how many rows are loaded into the picker.
	ResultLimit int `yaml:"result_limit"`

	// Preview controls which fields the preview pane renders.
	Preview PreviewConfig `yaml:"preview"`
}

// PreviewConfig controls which fields render in the recall preview pane.
type PreviewConfig struct {
	ShowDirectory  bool `yaml:"show_directory"`
	ShowTimestamp  bool `yaml:"show_timestamp"`
	ShowExitStatus bool `yaml:"show_exit_status"`
	ShowHostname   bool `yaml:"show_hostname"`
	ShowDuration   bool `yaml:"show_duration"`
}

// KeymapMode is the recall TUI's active input mode.
type KeymapMode int

const (
	ModeEmacs KeymapMode = iota
	ModeVimInsert
	ModeVimNormal
)

// InitialKeymapMode derives the TUI's starting mode from the configured
// keymap string. Anything other than "vim" (case-insensitive) is Emacs.
func (r RecallConfig) InitialKeymapMode() KeymapMode {
	if strings.EqualFold(r.Keymap, "vim") {
		return ModeVimInsert
	}
	return ModeEmacs
}

// DefaultConfig returns the built-in defaults, used whenever config.yaml is
// absent or omits a field.
func DefaultConfig() *Config {
	return &Config{
		Recall: RecallConfig{
			Keymap:      "emacs",
			ShowPreview: true,
			ResultLimit: 5000,
			Preview: PreviewConfig{
				ShowDirectory:  true,
				ShowTimestamp:  true,
				ShowExitStatus: true,
				ShowHostname:   false,
				ShowDuration:   true,
			},
		},
	}
}

// LoadConfig loads configuration from path. If the file does not exist,
// the defaults are returned without error. If it exists but cannot be
// parsed, an error is returned. Fields absent from the file keep their
// default values, since YAML unmarshaling into a pre-populated struct only
// overwrites keys that are actually present.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Load resolves $PXH_HOME/config.yaml and loads it, falling back to
// defaults if $PXH_HOME cannot be resolved or the file is absent.
func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

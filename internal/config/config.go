package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const appName = "deckhand"

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the application configuration
type Config struct {
	DeckFile  string `toml:"deck_file"`
	HandSize  int    `toml:"hand_size"`
	Color     string `toml:"color"`
	TrueColor bool   `toml:"truecolor"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		DeckFile:  "",
		HandSize:  5,
		Color:     ColorAuto,
		TrueColor: false,
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetDataDir returns the directory holding saved decks
func GetDataDir() string {
	return filepath.Join(GetXDGDataHome(), appName)
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// DeckPath resolves the deck file, falling back to the data directory
func (c *Config) DeckPath() string {
	if c.DeckFile == "" {
		return filepath.Join(GetDataDir(), "deck.cbor")
	}
	if strings.HasPrefix(c.DeckFile, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, c.DeckFile[2:])
		}
	}
	return c.DeckFile
}

// Validate checks field values
func (c *Config) Validate() error {
	if c.HandSize < 0 {
		return fmt.Errorf("hand_size must not be negative, got %d", c.HandSize)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of %s, %s, %s; got %q", ColorAuto, ColorAlways, ColorNever, c.Color)
	}
	return nil
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	meta, err := toml.DecodeFile(configPath, config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("error decoding config file: unknown key %q", undecoded[0].String())
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := SaveConfig(config); err != nil {
		return nil, err
	}
	log.Printf("created config file at %s", GetConfigFilePath())
	return config, nil
}

// SaveConfig writes the config file
func SaveConfig(config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	configPath := GetConfigFilePath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

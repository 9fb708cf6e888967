package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/lucasb-eyer/go-colorful"
)

// EnvPrefix prefixes every environment override, e.g. SOLITAIRE_SEED
const EnvPrefix = "SOLITAIRE_"

const (
	SymbolsUnicode = "unicode"
	SymbolsASCII   = "ascii"
)

// Config represents the application configuration
type Config struct {
	Color      bool   `toml:"color" env:"COLOR"`
	Symbols    string `toml:"symbols" env:"SYMBOLS"`
	RedColor   string `toml:"red_color" env:"RED"`
	BlackColor string `toml:"black_color" env:"BLACK"`
	Seed       uint64 `toml:"seed" env:"SEED"`
	LogLevel   string `toml:"log_level" env:"LOG_LEVEL"`
}

// Default returns the settings written to a new config file
func Default() *Config {
	return &Config{
		Color:      true,
		Symbols:    SymbolsUnicode,
		RedColor:   "#e0443e",
		BlackColor: "#d0d0d0",
		LogLevel:   "warn",
	}
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

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "solitaire", "config.toml")
}

// LoadConfig loads the config file from its XDG location, creating it with
// defaults if it doesn't exist, then applies environment overrides.
func LoadConfig() (*Config, error) {
	cfg, err := LoadFile(GetConfigFilePath())
	if err != nil {
		return nil, err
	}
	if err := ApplyEnv(cfg, nil); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// LoadFile decodes the config at path, creating a default one if it is missing.
// Keys absent from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return createDefaultConfig(path)
	}

	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return config, nil
}

// ApplyEnv overrides cfg from SOLITAIRE_* variables. A nil environ reads the
// process environment.
func ApplyEnv(cfg *Config, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error reading environment: %w", err)
	}
	return nil
}

// Validate checks the symbol set and suit colours
func (c *Config) Validate() error {
	switch strings.ToLower(c.Symbols) {
	case SymbolsUnicode, SymbolsASCII:
	default:
		return fmt.Errorf("invalid symbols %q (want %s or %s)", c.Symbols, SymbolsUnicode, SymbolsASCII)
	}
	for name, hex := range map[string]string{"red_color": c.RedColor, "black_color": c.BlackColor} {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, hex, err)
		}
	}
	return nil
}

// ASCII reports whether suits should be drawn as letters
func (c *Config) ASCII() bool {
	return strings.EqualFold(c.Symbols, SymbolsASCII)
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) (*Config, error) {
	config := Default()
	if err := Save(path, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes config to path as TOML, creating the directory if needed
func Save(path string, config *Config) error {
	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	// Encode the config to TOML
	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

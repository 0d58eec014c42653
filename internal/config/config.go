package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/viper"

	"autokeys/internal/keystroke"
)

// Config holds application configuration.
type Config struct {
	Keys  KeysConfig  `mapstructure:"keys"`
	UI    UIConfig    `mapstructure:"ui"`
	Log   LogConfig   `mapstructure:"log"`
	Store StoreConfig `mapstructure:"store"`
}

// KeysConfig holds shortcut resolution settings.
type KeysConfig struct {
	Baseline string `mapstructure:"baseline"` // primary shortcut modifier, never derived
	Style    string `mapstructure:"style"`    // auto, text or glyph
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string `mapstructure:"theme"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// StoreConfig holds run history settings.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// AUTOKEYS_. path, when set, names the config file; otherwise
// $AUTOKEYS_CONFIG or ~/.config/autokeys/config.yaml is used if present.
func Load(path string) (Config, error) {
	v := viper.New()

	home, _ := os.UserHomeDir()

	v.SetDefault("keys.baseline", "ctrl")
	v.SetDefault("keys.style", "auto")
	v.SetDefault("ui.theme", "classic")
	v.SetDefault("log.file", "autokeys_debug.log")
	v.SetDefault("log.level", "info")
	v.SetDefault("store.path", filepath.Join(home, ".local", "share", "autokeys", "history.db"))

	v.SetConfigType("yaml")

	if path == "" {
		path = os.Getenv("AUTOKEYS_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "autokeys"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("AUTOKEYS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	if _, err := c.Baseline(); err != nil {
		return err
	}
	if _, err := c.Style(); err != nil {
		return err
	}
	return nil
}

// Baseline is the parsed keys.baseline modifier.
func (c Config) Baseline() (tcell.ModMask, error) {
	mod, err := keystroke.ParseModifier(c.Keys.Baseline)
	if err != nil {
		return 0, fmt.Errorf("keys.baseline: %w", err)
	}
	return mod, nil
}

// Style is the parsed keys.style rendering style.
func (c Config) Style() (keystroke.Style, error) {
	style, err := keystroke.ParseStyle(c.Keys.Style)
	if err != nil {
		return keystroke.StyleAuto, fmt.Errorf("keys.style: %w", err)
	}
	return style, nil
}

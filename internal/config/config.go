// Package config loads settings for the example application.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Window  WindowConfig `mapstructure:"window"`
	Panel   PanelConfig  `mapstructure:"panel"`
	Verbose bool         `mapstructure:"verbose"`
}

// WindowConfig holds GLFW window settings.
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
	VSync  bool   `mapstructure:"vsync"`
}

// PanelConfig holds control panel settings.
type PanelConfig struct {
	X     float32 `mapstructure:"x"`
	Y     float32 `mapstructure:"y"`
	Width float32 `mapstructure:"width"`
	// Style is "dark" or "light".
	Style string `mapstructure:"style"`
	// LegacyPadding pads groups whose size is already a multiple of 16
	// with a further 16 bytes.
	LegacyPadding bool `mapstructure:"legacy_padding"`
}

// LoadEnv loads .env files into the process environment. Variables that
// are already set win. Missing files are ignored.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads configuration from file and env. Env var overrides use prefix
// CONTROLS_, e.g. CONTROLS_WINDOW_WIDTH. The file is CONTROLS_CONFIG if set,
// otherwise config.{toml,yaml,...} in the user config dir or the working
// directory, if present.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "controls")
	v.SetDefault("window.vsync", true)
	v.SetDefault("panel.x", 10)
	v.SetDefault("panel.y", 10)
	v.SetDefault("panel.width", 360)
	v.SetDefault("panel.style", "dark")
	v.SetDefault("panel.legacy_padding", false)
	v.SetDefault("verbose", false)

	if cfgPath := os.Getenv("CONTROLS_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "controls"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CONTROLS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
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

// Validate reports settings the application cannot start with.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Panel.Width <= 0 {
		errs = append(errs, fmt.Errorf("panel width %v must be positive", c.Panel.Width))
	}
	switch c.Panel.Style {
	case "dark", "light":
	default:
		errs = append(errs, fmt.Errorf("unknown panel style %q", c.Panel.Style))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Package config loads host settings for rgui applications from a TOML file
// and RGUI_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	gui "github.com/go-theft-auto/rgui"
)

// Config holds application configuration.
type Config struct {
	Window WindowConfig `mapstructure:"window"`
	Input  InputConfig  `mapstructure:"input"`
	Theme  ThemeConfig  `mapstructure:"theme"`
	Log    LogConfig    `mapstructure:"log"`
}

// WindowConfig sizes the host window.
type WindowConfig struct {
	Title  string `mapstructure:"title"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

// InputConfig selects key decoding.
type InputConfig struct {
	Layout      string `mapstructure:"layout"`      // embedded layout name
	LayoutFile  string `mapstructure:"layout_file"` // custom TOML layout, wins over Layout
	EscapeQuits bool   `mapstructure:"escape_quits"`
}

// ThemeConfig picks colors.
type ThemeConfig struct {
	Style      string `mapstructure:"style"`      // "dark" or "light"
	Background string `mapstructure:"background"` // "#rrggbb"
	Debug      bool   `mapstructure:"debug"`
}

// LogConfig controls the event trace.
type LogConfig struct {
	Verbose bool `mapstructure:"verbose"`
}

// Load reads configuration from path, or from $RGUI_CONFIG, or from
// <user config dir>/rgui/config.toml. A missing default file is not an
// error; a missing explicit one is. Env var overrides use prefix RGUI_,
// e.g. RGUI_WINDOW_WIDTH.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("window.title", "rgui")
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("input.layout", "us")
	v.SetDefault("input.layout_file", "")
	v.SetDefault("input.escape_quits", true)
	v.SetDefault("theme.style", "dark")
	v.SetDefault("theme.background", "#1e1e22")
	v.SetDefault("theme.debug", false)
	v.SetDefault("log.verbose", false)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("RGUI_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "rgui"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("RGUI")
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
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return Config{}, fmt.Errorf("window size %dx%d: %w", c.Window.Width, c.Window.Height, gui.ErrInvalidRange)
	}
	return c, nil
}

// KeyMap resolves the configured layout.
func (c InputConfig) KeyMap() (*gui.KeyMap, error) {
	if c.LayoutFile == "" {
		return gui.Layout(c.Layout)
	}
	f, err := os.Open(c.LayoutFile)
	if err != nil {
		return nil, fmt.Errorf("open layout: %w", err)
	}
	defer f.Close()
	return gui.LoadKeyMap(f)
}

// BackgroundColor parses Background as "#rrggbb" (the '#' is optional).
func (c ThemeConfig) BackgroundColor() (uint32, error) {
	s := strings.TrimPrefix(c.Background, "#")
	if len(s) != 6 {
		return 0, fmt.Errorf("background %q: want #rrggbb", c.Background)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("background %q: %w", c.Background, err)
	}
	return gui.RGB(uint8(n>>16), uint8(n>>8), uint8(n)), nil
}

// Options turns the configuration into gui construction options.
func (c Config) Options() ([]gui.Option, error) {
	km, err := c.Input.KeyMap()
	if err != nil {
		return nil, err
	}
	bg, err := c.Theme.BackgroundColor()
	if err != nil {
		return nil, err
	}
	return []gui.Option{
		gui.WithKeyMap(km),
		gui.WithEscapeQuits(c.Input.EscapeQuits),
		gui.WithStyle(gui.StyleByName(c.Theme.Style)),
		gui.WithBackground(bg),
		gui.WithDebug(c.Theme.Debug),
	}, nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces environment overrides, e.g. HACKSAW_THEME.
const EnvPrefix = "HACKSAW"

// Config holds user configuration values.
type Config struct {
	Keymap         map[string]string `mapstructure:"keymap" yaml:"keymap"`
	Theme          string            `mapstructure:"theme" yaml:"theme"`
	MessageTimeout time.Duration     `mapstructure:"message_timeout" yaml:"message_timeout"`
	Colors         ColorConfig       `mapstructure:"colors" yaml:"colors"`
	Log            LogConfig         `mapstructure:"log" yaml:"log"`
}

// ColorConfig overrides individual theme colors. Values are W3C color names
// or #rrggbb; empty or unparsable values keep the theme color.
type ColorConfig struct {
	Filler            string `mapstructure:"filler_fg" yaml:"filler_fg,omitempty"`
	StatusForeground  string `mapstructure:"status_fg" yaml:"status_fg,omitempty"`
	StatusBackground  string `mapstructure:"status_bg" yaml:"status_bg,omitempty"`
	MessageForeground string `mapstructure:"message_fg" yaml:"message_fg,omitempty"`
	MessageBackground string `mapstructure:"message_bg" yaml:"message_bg,omitempty"`
}

// LogConfig controls the JSON event log.
type LogConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	File    string `mapstructure:"file" yaml:"file"`
}

// Default returns a Config with default key mappings.
func Default() *Config {
	return &Config{
		Keymap: map[string]string{
			"quit": "Ctrl+Q",
			"save": "Ctrl+S",
		},
		Theme:          "default",
		MessageTimeout: 5 * time.Second,
	}
}

// DefaultPath returns ~/.hacksaw/config.yaml, or "" when there is no home
// directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hacksaw", "config.yaml")
}

// WriteDefault writes the default configuration to path, creating parent
// directories as needed.
func WriteDefault(path string) error {
	data, err := Default().Marshal()
	if err != nil {
		return fmt.Errorf("rendering default config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

// Load reads configuration from path. An empty path looks for
// ~/.hacksaw/config.yaml. A missing file yields the defaults; HACKSAW_*
// environment variables override file values either way.
func Load(path string) (*Config, error) {
	v := viper.New()
	def := Default()
	for cmd, binding := range def.Keymap {
		v.SetDefault("keymap."+cmd, binding)
	}
	v.SetDefault("theme", def.Theme)
	v.SetDefault("message_timeout", def.MessageTimeout)
	v.SetDefault("log.enabled", false)
	v.SetDefault("log.file", "")
	for _, key := range []string{"filler_fg", "status_fg", "status_bg", "message_fg", "message_bg"} {
		v.SetDefault("colors."+key, "")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// HACKSAW_LOG is the short switch; HACKSAW_LOG_ENABLED follows the key.
	_ = v.BindEnv("log.enabled", EnvPrefix+"_LOG", EnvPrefix+"_LOG_ENABLED")

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if _, err := cfg.Keybindings(); err != nil {
		return nil, err
	}
	if _, ok := BuiltinThemes[cfg.Theme]; !ok {
		return nil, fmt.Errorf("unknown theme %q", cfg.Theme)
	}
	if cfg.MessageTimeout <= 0 {
		cfg.MessageTimeout = def.MessageTimeout
	}
	return cfg, nil
}

// Marshal renders cfg as YAML in the format Load accepts.
func (c *Config) Marshal() ([]byte, error) {
	out := map[string]any{
		"keymap":          c.Keymap,
		"theme":           c.Theme,
		"message_timeout": c.MessageTimeout.String(),
		"colors":          c.Colors,
		"log":             c.Log,
	}
	return yaml.Marshal(out)
}

// Keybindings parses the textual keymap. Commands missing from the keymap
// keep their default binding.
func (c *Config) Keybindings() (map[string]Keybinding, error) {
	km := DefaultKeymap()
	for cmd, s := range c.Keymap {
		kb, err := ParseKeybinding(s)
		if err != nil {
			return nil, fmt.Errorf("keymap %s: %w", cmd, err)
		}
		km[cmd] = kb
	}
	return km, nil
}

// ResolveTheme returns the named builtin theme (default when unknown) with
// the color overrides applied.
func (c *Config) ResolveTheme() Theme {
	th, ok := BuiltinThemes[c.Theme]
	if !ok {
		th = DefaultTheme()
	}
	th.FillerForeground = ParseColor(c.Colors.Filler, th.FillerForeground)
	th.StatusForeground = ParseColor(c.Colors.StatusForeground, th.StatusForeground)
	th.StatusBackground = ParseColor(c.Colors.StatusBackground, th.StatusBackground)
	th.MessageForeground = ParseColor(c.Colors.MessageForeground, th.MessageForeground)
	th.MessageBackground = ParseColor(c.Colors.MessageBackground, th.MessageBackground)
	return th
}

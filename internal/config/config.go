package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mithrel/wpreader/internal/richtext"
	"github.com/mithrel/wpreader/pkg/wp"
)

// Config is the decoded view of the effective settings.
type Config struct {
	Site     wp.Site `mapstructure:"site"`
	Output   string  `mapstructure:"output"`
	HTTPAddr string  `mapstructure:"http_addr"`
	Render   Render  `mapstructure:"render"`
	Log      Log     `mapstructure:"log"`
	TUI      TUI     `mapstructure:"tui"`
}

type Render struct {
	Style      string `mapstructure:"style"`
	WordWrap   int    `mapstructure:"word_wrap"`
	DateFormat string `mapstructure:"date_format"`
}

type Log struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type TUI struct {
	FilterLimit int `mapstructure:"filter_limit"`
}

// DefaultDateFormat is a short date, e.g. "May 18, 2021".
const DefaultDateFormat = "Jan 2, 2006"

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
// This is the single source of truth for defaults and generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "output", Default: "pretty", Comment: "Default output for show: plain|pretty|json|tui|html"},
		{Key: "http_addr", Default: "127.0.0.1:8080", Comment: "Listen address for the serve command"},

		{Key: "site.name", Default: wp.Wordhord.Name, Comment: "Display name of the WordPress site"},
		{Key: "site.domain", Default: wp.Wordhord.Domain, Comment: "Domain used to build ?p=<id> links"},

		{Key: "render.style", Default: richtext.DefaultStyle, Comment: "Glamour style for rich text (dark|light|dracula|notty|...)"},
		{Key: "render.word_wrap", Default: richtext.DefaultWordWrap, Comment: "Word wrap column for rich text; 0 follows the terminal width"},
		{Key: "render.date_format", Default: DefaultDateFormat, Comment: "Go time layout for posted/modified dates"},

		{Key: "log.level", Default: "warn", Comment: "Log level: debug|info|warn|error"},
		{Key: "log.development", Default: false, Comment: "Human readable console logs instead of JSON"},

		{Key: "tui.filter_limit", Default: 200, Comment: "Maximum fuzzy matches kept by the browse filter"},
	}
}

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
func Load(ctx context.Context, v *viper.Viper) error {
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "wpreader"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "wpreader"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && v.ConfigFileUsed() != "" {
			return err
		}
	}

	// Environment variables: WPREADER_* (highest among these sources)
	v.SetEnvPrefix("wpreader")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(v.GetString("site.domain")) == "" {
		v.Set("site.domain", wp.Wordhord.Domain)
	}
	return nil
}

// Decode unmarshals the merged settings.
func Decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "wpreader", "config.toml")
}

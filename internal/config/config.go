// Package config loads the CLI settings from paywallui.yaml, a .env file and
// PAYWALLUI_* environment variables.
package config

import (
	"fmt"

	paywallui "github.com/reoring/paywallui"
)

// Config is the CLI configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Render   RenderConfig   `mapstructure:"render"`
	Document DocumentConfig `mapstructure:"document"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// RenderConfig holds the environment a tree is rendered for.
type RenderConfig struct {
	Platform string  `mapstructure:"platform"`
	Theme    string  `mapstructure:"theme"`
	Locale   string  `mapstructure:"locale"`
	Screen   string  `mapstructure:"screen"`
	Width    float64 `mapstructure:"width"`
	Height   float64 `mapstructure:"height"`
}

type DocumentConfig struct {
	MaxDepth      int    `mapstructure:"max_depth"`
	MaxBytes      int64  `mapstructure:"max_bytes"`
	DuplicateKeys string `mapstructure:"duplicate_keys"` // error, warn or ignore
}

// ParseOptions converts the document settings into loader options.
func (d DocumentConfig) ParseOptions(sink func(paywallui.Issue)) paywallui.Options {
	opt := paywallui.Options{MaxDepth: d.MaxDepth, MaxBytes: d.MaxBytes, IssueSink: sink}
	switch d.DuplicateKeys {
	case "warn":
		opt.Strictness.OnDuplicateKey = paywallui.Warn
	case "ignore":
		opt.Strictness.OnDuplicateKey = paywallui.Ignore
	default:
		opt.Strictness.OnDuplicateKey = paywallui.Error
	}
	return opt
}

var defaults = map[string]any{
	"logging.level":           "info",
	"logging.format":          "console",
	"render.platform":         "android",
	"render.theme":            "light",
	"render.locale":           "en",
	"render.screen":           "default",
	"render.width":            390.0,
	"render.height":           844.0,
	"document.max_depth":      64,
	"document.max_bytes":      int64(8 << 20),
	"document.duplicate_keys": "error",
}

func validateConfig(cfg *Config) error {
	switch cfg.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", cfg.Logging.Format)
	}
	switch cfg.Render.Theme {
	case "light", "dark":
	default:
		return fmt.Errorf("render.theme must be light or dark, got %q", cfg.Render.Theme)
	}
	if cfg.Render.Platform == "" {
		return fmt.Errorf("render.platform is required")
	}
	if cfg.Render.Width <= 0 || cfg.Render.Height <= 0 {
		return fmt.Errorf("render.width and render.height must be positive")
	}
	switch cfg.Document.DuplicateKeys {
	case "error", "warn", "ignore":
	default:
		return fmt.Errorf("document.duplicate_keys must be error, warn or ignore, got %q", cfg.Document.DuplicateKeys)
	}
	if cfg.Document.MaxDepth < 0 || cfg.Document.MaxBytes < 0 {
		return fmt.Errorf("document limits must not be negative")
	}
	return nil
}

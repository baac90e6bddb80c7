// Package config loads runtime configuration for a prompt-math session
// from .tensormath.yaml, TENSORMATH_* environment variables, and CLI
// flags, and loads declarative schedule packs from TOML.
package config

import "github.com/spf13/viper"

// Config holds all runtime configuration. The registry itself is built by
// the caller; config only carries knobs and paths.
type Config struct {
	MaxDepth     int     `mapstructure:"max_depth"`     // parser nesting guard
	PadEnabled   bool    `mapstructure:"pad_enabled"`   // substitute a pad vector for unresolved tokens
	PadValue     float64 `mapstructure:"pad_value"`     // fill value of the pad vector
	PadDim       int     `mapstructure:"pad_dim"`       // dimension of the pad vector
	SchedulePack string  `mapstructure:"schedule_pack"` // optional schedules.toml path
	SnippetDB    string  `mapstructure:"snippet_db"`    // sqlite snippet library path
	Verbose      bool    `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("max_depth", 64)
	viper.SetDefault("pad_enabled", false)
	viper.SetDefault("pad_value", 0.0)
	viper.SetDefault("pad_dim", 4)
	viper.SetDefault("schedule_pack", "")
	viper.SetDefault("snippet_db", ".tensormath/snippets.db")
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}

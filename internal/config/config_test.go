package config

import (
	"testing"

	"github.com/spf13/viper"
)

// Not parallel: viper keys live in package-global state.
func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := Load()
	if cfg.MaxDepth != 64 {
		t.Errorf("MaxDepth = %d, want 64", cfg.MaxDepth)
	}
	if cfg.PadEnabled || cfg.PadValue != 0 || cfg.PadDim != 4 {
		t.Errorf("pad defaults = %v/%g/%d, want false/0/4", cfg.PadEnabled, cfg.PadValue, cfg.PadDim)
	}
	if cfg.SchedulePack != "" {
		t.Errorf("SchedulePack = %q, want empty", cfg.SchedulePack)
	}
	if cfg.SnippetDB != ".tensormath/snippets.db" {
		t.Errorf("SnippetDB = %q", cfg.SnippetDB)
	}
	if cfg.Verbose {
		t.Error("Verbose = true, want false")
	}
}

func TestLoadHonorsSetValues(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("max_depth", 8)
	viper.Set("pad_enabled", true)
	viper.Set("pad_dim", 16)
	viper.Set("schedule_pack", "packs/schedules.toml")

	cfg := Load()
	if cfg.MaxDepth != 8 {
		t.Errorf("MaxDepth = %d, want 8", cfg.MaxDepth)
	}
	if !cfg.PadEnabled || cfg.PadDim != 16 {
		t.Errorf("pad = %v/%d, want true/16", cfg.PadEnabled, cfg.PadDim)
	}
	if cfg.SchedulePack != "packs/schedules.toml" {
		t.Errorf("SchedulePack = %q", cfg.SchedulePack)
	}
}

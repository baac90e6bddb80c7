package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/enigmatic-figure/TensorMath-Node/internal/schedule"
)

const samplePack = `
[[schedule]]
name = "slow_burn"
label = "Slow Burn"
direction = "increase"
description = "Ramp in over most of the run."
clamp_output = true

[schedule.defaults]
start = 0.1
end = 0.95

[[schedule.parameters]]
name = "start"
type = "float"
required = true

[[schedule.parameters]]
name = "end"
type = "float"
required = true

[[schedule]]
name = "early_exit"
direction = "decrease"
`

func TestParsePack(t *testing.T) {
	t.Parallel()

	pack, err := ParsePack([]byte(samplePack))
	if err != nil {
		t.Fatalf("ParsePack: %v", err)
	}
	if len(pack.Schedules) != 2 {
		t.Fatalf("got %d schedules, want 2", len(pack.Schedules))
	}

	burn := pack.Schedules[0]
	if burn.Name != "slow_burn" || burn.Label != "Slow Burn" {
		t.Errorf("first entry = %+v", burn)
	}
	if burn.Direction != schedule.Increase || !burn.ClampOutput {
		t.Errorf("first entry flags = %s/%v", burn.Direction, burn.ClampOutput)
	}
	if burn.Defaults["start"] != 0.1 || burn.Defaults["end"] != 0.95 {
		t.Errorf("defaults = %v", burn.Defaults)
	}
	if len(burn.Parameters) != 2 {
		t.Errorf("parameters = %v", burn.Parameters)
	}
}

func TestParsePackDefaultsDirection(t *testing.T) {
	t.Parallel()

	pack, err := ParsePack([]byte("[[schedule]]\nname = \"plain\"\n"))
	if err != nil {
		t.Fatalf("ParsePack: %v", err)
	}
	if pack.Schedules[0].Direction != schedule.Increase {
		t.Errorf("direction = %q, want increase default", pack.Schedules[0].Direction)
	}
}

func TestParsePackRejectsBadEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		toml string
	}{
		{"missing name", "[[schedule]]\nlabel = \"Anonymous\"\n"},
		{"bad direction", "[[schedule]]\nname = \"x\"\ndirection = \"sideways\"\n"},
		{"malformed toml", "[[schedule]\nname = \"x\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ParsePack([]byte(tt.toml)); err == nil {
				t.Errorf("ParsePack accepted %q", tt.toml)
			}
		})
	}
}

func TestLoadPack(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "schedules.toml")
	if err := os.WriteFile(path, []byte(samplePack), 0o644); err != nil {
		t.Fatal(err)
	}
	pack, err := LoadPack(path)
	if err != nil {
		t.Fatalf("LoadPack: %v", err)
	}
	if len(pack.Schedules) != 2 {
		t.Errorf("got %d schedules, want 2", len(pack.Schedules))
	}

	if _, err := LoadPack(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadPack on missing file: want error")
	}
}

func TestApplyRegistersAndOverrides(t *testing.T) {
	t.Parallel()

	pack, err := ParsePack([]byte(samplePack))
	if err != nil {
		t.Fatal(err)
	}
	reg := schedule.NewRegistry()
	pack.Apply(reg)

	for _, name := range []string{"slow_burn", "early_exit", "fade_in", "fade_out"} {
		if !reg.Has(name) {
			t.Errorf("registry missing %s after Apply", name)
		}
	}

	// Packs may override builtins; last write wins.
	override, err := ParsePack([]byte("[[schedule]]\nname = \"fade_in\"\nlabel = \"Custom Fade\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	override.Apply(reg)
	meta, _ := reg.Metadata("fade_in")
	if meta.Label != "Custom Fade" {
		t.Errorf("fade_in label = %q, want override", meta.Label)
	}
}

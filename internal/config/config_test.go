package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dt != 0.0001 {
		t.Errorf("expected dt 0.0001, got %f", cfg.Dt)
	}
	if cfg.Duration != 1.0 {
		t.Errorf("expected duration 1.0, got %f", cfg.Duration)
	}
	if cfg.Stimulus.Amplitude != 1.0 {
		t.Errorf("expected amplitude 1.0, got %f", cfg.Stimulus.Amplitude)
	}
	if cfg.Stimulus.Duration != 0.2 {
		t.Errorf("expected pulse duration 0.2, got %f", cfg.Stimulus.Duration)
	}
	if cfg.Excitation != "pulse" || cfg.Integrator != "rk4" || cfg.Muscle != "linear" {
		t.Errorf("unexpected component defaults: %+v", cfg)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Integrator = "rk45"
	cfg.Duration = 1.5
	cfg.Stimulus.Amplitude = 0.4

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("roundtrip mismatch:\n saved  %+v\n loaded %+v", cfg, loaded)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := []byte("integrator: euler\nstimulus:\n  amplitude: 0.7\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Integrator != "euler" {
		t.Errorf("expected overridden integrator, got %q", cfg.Integrator)
	}
	if cfg.Stimulus.Amplitude != 0.7 {
		t.Errorf("expected overridden amplitude, got %f", cfg.Stimulus.Amplitude)
	}
	// unspecified fields keep their defaults
	if cfg.Dt != DefaultDt || cfg.Excitation != "pulse" {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("dt: [not a number"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestPresets(t *testing.T) {
	for _, name := range []string{"twitch", "brief", "sustained", "submax", "train", "ramp"} {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Errorf("preset %q missing", name)
			continue
		}
		if cfg.Dt <= 0 || cfg.Duration <= 0 {
			t.Errorf("preset %q has invalid grid: dt=%f duration=%f", name, cfg.Dt, cfg.Duration)
		}
		if cfg.Stimulus.Amplitude < 0 || cfg.Stimulus.Amplitude > 1 {
			t.Errorf("preset %q amplitude out of range: %f", name, cfg.Stimulus.Amplitude)
		}
	}

	if GetPreset("bogus") != nil {
		t.Error("expected nil for unknown preset")
	}

	if got := len(ListPresets()); got != len(Presets) {
		t.Errorf("ListPresets returned %d names, want %d", got, len(Presets))
	}
}

func TestTwitchPreset(t *testing.T) {
	cfg := GetPreset("twitch")
	if cfg.Stimulus.Duration != 0.005 {
		t.Errorf("twitch pulse should be 5ms, got %f", cfg.Stimulus.Duration)
	}
	if cfg.Stimulus.Amplitude != 1.0 {
		t.Errorf("twitch should be maximal, got %f", cfg.Stimulus.Amplitude)
	}
}

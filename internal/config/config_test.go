package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Geometry.Diameter != DefaultDiameter {
		t.Errorf("expected diameter %v, got %v", DefaultDiameter, cfg.Geometry.Diameter)
	}
	if cfg.Flow.RPM <= 0 {
		t.Error("rpm should be positive")
	}
	if cfg.Disk.Stations < 2 {
		t.Error("stations should allow integration")
	}
	if cfg.Loading.Preset != "elliptic" {
		t.Errorf("expected preset elliptic, got %s", cfg.Loading.Preset)
	}
	if cfg.Sweep.From >= cfg.Sweep.To {
		t.Error("sweep range should be ascending")
	}
}

func TestLoadMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	partial := "flow:\n  velocity: 22.5\nloading:\n  preset: uniform\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Flow.Velocity != 22.5 {
		t.Errorf("expected velocity 22.5, got %v", cfg.Flow.Velocity)
	}
	if cfg.Loading.Preset != "uniform" {
		t.Errorf("expected preset uniform, got %s", cfg.Loading.Preset)
	}
	if cfg.Geometry.Diameter != DefaultDiameter {
		t.Errorf("unset fields should keep defaults, got diameter %v", cfg.Geometry.Diameter)
	}
	if cfg.Flow.RPM != DefaultRPM {
		t.Errorf("unset fields should keep defaults, got rpm %v", cfg.Flow.RPM)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Geometry.Diameter = 0.4
	cfg.Loading.Coeffs = []float64{1, 0.5, 0, 0, 0}
	cfg.Optimize.ThrustTarget = 20

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got.Geometry.Diameter != 0.4 {
		t.Errorf("expected diameter 0.4, got %v", got.Geometry.Diameter)
	}
	if len(got.Loading.Coeffs) != 5 || got.Loading.Coeffs[1] != 0.5 {
		t.Errorf("coeffs did not survive round trip: %v", got.Loading.Coeffs)
	}
	if got.Optimize.ThrustTarget != 20 {
		t.Errorf("expected thrust target 20, got %v", got.Optimize.ThrustTarget)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("hover")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Flow.Velocity != 0 {
		t.Errorf("expected hover velocity 0, got %v", cfg.Flow.Velocity)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	cfg := GetPreset("nonexistent")
	if cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("preset names not sorted: %v", names)
		}
	}

	found := false
	for _, name := range names {
		if name == "baseline" {
			found = true
		}
	}
	if !found {
		t.Error("expected baseline preset in list")
	}
}

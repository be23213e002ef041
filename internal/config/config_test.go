package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Run("drift", func(t *testing.T) {
		var cfg DriftConfig
		if err := yaml.Unmarshal(GetDefaultYAML("drift"), &cfg); err != nil {
			t.Fatalf("embedded drift.yaml does not parse: %v", err)
		}
		if !reflect.DeepEqual(cfg, DefaultDriftConfig()) {
			t.Errorf("embedded drift.yaml = %+v\nexpected %+v", cfg, DefaultDriftConfig())
		}
	})

	t.Run("jumper", func(t *testing.T) {
		var cfg JumperConfig
		if err := yaml.Unmarshal(GetDefaultYAML("jumper"), &cfg); err != nil {
			t.Fatalf("embedded jumper.yaml does not parse: %v", err)
		}
		if !reflect.DeepEqual(cfg, DefaultJumperConfig()) {
			t.Errorf("embedded jumper.yaml = %+v\nexpected %+v", cfg, DefaultJumperConfig())
		}
	})

	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultDriftConfig().Validate(); err != nil {
		t.Errorf("default drift config invalid: %v", err)
	}
	if err := DefaultJumperConfig().Validate(); err != nil {
		t.Errorf("default jumper config invalid: %v", err)
	}
}

func TestLoadCustomPathOverridesOnlyGivenFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drift.yaml")
	data := "physics:\n  max_speed: 3\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDrift(path)
	if err != nil {
		t.Fatalf("LoadDrift() failed: %v", err)
	}
	if cfg.Physics.MaxSpeed != 3 {
		t.Errorf("MaxSpeed = %f, expected 3", cfg.Physics.MaxSpeed)
	}
	if cfg.Player.Radius != 20 || cfg.World.Width != 640 {
		t.Errorf("unspecified fields should keep defaults, got radius=%f width=%f",
			cfg.Player.Radius, cfg.World.Width)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	badYAML := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badYAML, []byte("world: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("physics:\n  ground_y: 900\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantMsg string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read"},
		{"bad yaml", badYAML, "failed to parse"},
		{"ground outside world", invalid, "ground_y"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadJumper(tc.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.HasPrefix(err.Error(), "config: ") {
				t.Errorf("error %q should carry the config: prefix", err)
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("error %q should mention %q", err, tc.wantMsg)
			}
		})
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	// Isolate from any real ~/.circles or ./configs.
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadJumper("")
	if err != nil {
		t.Fatalf("LoadJumper() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultJumperConfig()) {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}
}

func TestLoadPrefersLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "drift.yaml"), []byte("player:\n  radius: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDrift("")
	if err != nil {
		t.Fatalf("LoadDrift() failed: %v", err)
	}
	if cfg.Player.Radius != 30 {
		t.Errorf("Radius = %f, expected 30 from ./configs", cfg.Player.Radius)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*JumperConfig)
	}{
		{"zero world", func(c *JumperConfig) { c.World.Width = 0 }},
		{"zero player radius", func(c *JumperConfig) { c.Player.Radius = 0 }},
		{"zero projectile radius", func(c *JumperConfig) { c.Projectile.Radius = 0 }},
		{"zero enemy radius", func(c *JumperConfig) { c.Enemies.Radius = 0 }},
		{"still projectile", func(c *JumperConfig) { c.Projectile.Speed = 0 }},
		{"ground above player radius", func(c *JumperConfig) { c.Physics.GroundY = 10 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultJumperConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}

	d := DefaultDriftConfig()
	d.Player.Radius = 300
	if err := d.Validate(); err == nil {
		t.Error("a circle wider than the world should be rejected")
	}
}

func TestApplyJumperPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantPatrol  float64
		wantHP      int
	}{
		{"", false, 0, 1},
		{DifficultyFixed, false, 0, 1},
		{DifficultyEasy, true, 0.5, 1},
		{DifficultyNormal, true, 1.0, 1},
		{DifficultyHard, true, 1.5, 2},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultJumperConfig()
			ApplyJumperPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.wantEnabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.wantEnabled)
			}
			if cfg.Enemies.PatrolSpeed != tc.wantPatrol {
				t.Errorf("PatrolSpeed = %f, expected %f", cfg.Enemies.PatrolSpeed, tc.wantPatrol)
			}
			if cfg.Enemies.HitPoints != tc.wantHP {
				t.Errorf("HitPoints = %d, expected %d", cfg.Enemies.HitPoints, tc.wantHP)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should map to empty")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 4},
		Scaling:      ScalingConfig{SpeedMultiplier: 3.0},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score     int
		wantLevel float64
	}{
		{0, 0.3},
		{2, 0.65},
		{4, 1.0},
		{10, 1.0}, // clamped
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.wantLevel) > 1e-9 {
			t.Errorf("Level(%d) = %f, expected %f", tc.score, got, tc.wantLevel)
		}
	}

	if got := d.Speed(1.0, 4, 0); math.Abs(got-4.0) > 1e-9 {
		t.Errorf("Speed at max = %f, expected 4", got)
	}

	cfg.Enabled = false
	fixed := NewDifficultyManager(cfg)
	if fixed.IsEnabled() {
		t.Error("disabled manager reports enabled")
	}
	if got := fixed.Level(100, 100); got != 0.3 {
		t.Errorf("disabled Level = %f, expected initial 0.3", got)
	}

	timed := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
	})
	if got := timed.Level(0, 50); got != 0.5 {
		t.Errorf("time Level = %f, expected 0.5", got)
	}
}

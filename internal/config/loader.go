package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// HomeDirName is the per-user directory for configs and screenshots.
const HomeDirName = ".circles"

// LoadDrift loads Moving Red Circle configuration.
// Search order: customPath -> ~/.circles/configs/drift.yaml -> ./configs/drift.yaml -> embedded default
func LoadDrift(customPath string) (DriftConfig, error) {
	return load("drift", customPath, defaultDriftYAML, DefaultDriftConfig, DriftConfig.Validate)
}

// LoadJumper loads Jump & Shoot configuration.
// Search order: customPath -> ~/.circles/configs/jumper.yaml -> ./configs/jumper.yaml -> embedded default
func LoadJumper(customPath string) (JumperConfig, error) {
	return load("jumper", customPath, defaultJumperYAML, DefaultJumperConfig, JumperConfig.Validate)
}

// load implements the search order shared by every game. A custom path
// must exist, parse and validate; the implicit locations are skipped
// silently when any of those fail.
func load[T any](gameID, customPath string, embedded []byte, fallback func() T, validate func(T) error) (T, error) {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := validate(cfg); err != nil {
			return cfg, fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := fallback()
		if err := yaml.Unmarshal(data, &cfg); err == nil && validate(cfg) == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, HomeDirName, "configs", filename)
}

var (
	errWorldSize = errors.New("world width and height must be positive")
	errRadius    = errors.New("radius must be positive")
)

// Validate checks the values the simulation divides or clamps by.
func (c DriftConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return errWorldSize
	}
	if c.Player.Radius <= 0 {
		return fmt.Errorf("player: %w", errRadius)
	}
	if 2*c.Player.Radius > c.World.Width || 2*c.Player.Radius > c.World.Height {
		return fmt.Errorf("player radius %.1f does not fit the world", c.Player.Radius)
	}
	return nil
}

// Validate checks the values the simulation divides or clamps by.
func (c JumperConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return errWorldSize
	}
	if c.Player.Radius <= 0 {
		return fmt.Errorf("player: %w", errRadius)
	}
	if c.Projectile.Radius <= 0 {
		return fmt.Errorf("projectile: %w", errRadius)
	}
	if c.Enemies.Radius <= 0 {
		return fmt.Errorf("enemies: %w", errRadius)
	}
	if c.Projectile.Speed <= 0 {
		return errors.New("projectile speed must be positive")
	}
	if c.Physics.GroundY < c.Player.Radius || c.Physics.GroundY > c.World.Height-c.Player.Radius {
		return fmt.Errorf("ground_y %.1f must lie within [%.1f, %.1f]",
			c.Physics.GroundY, c.Player.Radius, c.World.Height-c.Player.Radius)
	}
	return nil
}

// ApplyJumperPreset modifies the config based on a difficulty preset.
// Presets turn on enemy patrols; fixed keeps the loaded values and
// disables progression.
func ApplyJumperPreset(cfg *JumperConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.PatrolSpeed = 0.5
	case DifficultyNormal:
		cfg.Enemies.PatrolSpeed = 1.0
	case DifficultyHard:
		cfg.Enemies.PatrolSpeed = 1.5
		cfg.Enemies.HitPoints = 2
	}
}

// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import "github.com/vovakirdan/circle-arcade/internal/core"

// World is the simulated area in world units (pixels in the window frontend).
type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RGBA is a colour as written in YAML: [r, g, b, a].
type RGBA [4]uint8

// Color converts to the renderer's colour type.
func (c RGBA) Color() core.Color {
	return core.RGBA(c[0], c[1], c[2], c[3])
}

// DriftConfig contains all configuration for the Moving Red Circle game.
type DriftConfig struct {
	World   World        `yaml:"world"`
	Physics DriftPhysics `yaml:"physics"`
	Player  DriftPlayer  `yaml:"player"`
}

// DriftPhysics defines the acceleration/friction model.
type DriftPhysics struct {
	Acceleration    float64 `yaml:"acceleration"`     // added to velocity per key-down
	Friction        float64 `yaml:"friction"`         // removed from velocity per key-up
	RollingFriction float64 `yaml:"rolling_friction"` // per frame while no key is held
	MaxSpeed        float64 `yaml:"max_speed"`
}

// DriftPlayer defines the circle.
type DriftPlayer struct {
	Radius float64 `yaml:"radius"`
	Color  RGBA    `yaml:"color"`
}

// JumperConfig contains all configuration for the Jump & Shoot game.
type JumperConfig struct {
	World      World            `yaml:"world"`
	Physics    JumperPhysics    `yaml:"physics"`
	Player     JumperPlayer     `yaml:"player"`
	Projectile JumperProjectile `yaml:"projectile"`
	Enemies    JumperEnemies    `yaml:"enemies"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// JumperPhysics defines movement parameters.
type JumperPhysics struct {
	MoveSpeed    float64 `yaml:"move_speed"`
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"`
	GroundY      float64 `yaml:"ground_y"`
}

// JumperPlayer defines the player circle and its start position.
type JumperPlayer struct {
	StartX float64 `yaml:"start_x"`
	Radius float64 `yaml:"radius"`
	Color  RGBA    `yaml:"color"`
}

// JumperProjectile defines the single shot.
type JumperProjectile struct {
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"`
	Color  RGBA    `yaml:"color"`
}

// JumperEnemies defines the static enemy list.
type JumperEnemies struct {
	Radius      float64      `yaml:"radius"`
	HitPoints   int          `yaml:"hit_points"`
	PatrolSpeed float64      `yaml:"patrol_speed"` // base speed, scaled by difficulty; 0 = static
	Color       RGBA         `yaml:"color"`
	Positions   [][2]float64 `yaml:"positions"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown or empty strings
// yield "" which means "use the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

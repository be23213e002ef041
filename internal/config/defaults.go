package config

import (
	_ "embed"
)

//go:embed defaults/drift.yaml
var defaultDriftYAML []byte

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultDriftConfig returns the default Moving Red Circle configuration.
func DefaultDriftConfig() DriftConfig {
	return DriftConfig{
		World: World{Width: 640, Height: 480},
		Physics: DriftPhysics{
			Acceleration:    0.1,
			Friction:        0.02,
			RollingFriction: 0,
			MaxSpeed:        8,
		},
		Player: DriftPlayer{
			Radius: 20,
			Color:  RGBA{255, 0, 0, 255},
		},
	}
}

// DefaultJumperConfig returns the default Jump & Shoot configuration.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		World: World{Width: 800, Height: 600},
		Physics: JumperPhysics{
			MoveSpeed:    5,
			Gravity:      0.5,
			JumpVelocity: -12,
			GroundY:      560,
		},
		Player: JumperPlayer{
			StartX: 400,
			Radius: 20,
			Color:  RGBA{40, 110, 255, 255},
		},
		Projectile: JumperProjectile{
			Speed:  10,
			Radius: 5,
			Color:  RGBA{255, 220, 0, 255},
		},
		Enemies: JumperEnemies{
			Radius:      20,
			HitPoints:   1,
			PatrolSpeed: 0,
			Color:       RGBA{0, 200, 0, 255},
			Positions: [][2]float64{
				{100, 100},
				{300, 100},
				{500, 100},
				{700, 100},
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 4,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 3.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "drift":
		return defaultDriftYAML
	case "jumper":
		return defaultJumperYAML
	default:
		return nil
	}
}

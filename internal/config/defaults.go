package config

import (
	_ "embed"
)

//go:embed defaults/pupdash.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in game configuration. It mirrors the
// embedded defaults/pupdash.yaml and serves as the last-resort fallback.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			Width:       320,
			Height:      180,
			GroundY:     160,
			PruneMargin: 32,
		},
		Physics: PhysicsConfig{
			Gravity:      1200,
			JumpVelocity: -420,
			ScrollSpeed:  140,
			MaxDT:        0.25,
		},
		Player: PlayerConfig{
			X:      40,
			Width:  12,
			Height: 14,
		},
		Obstacles: ObstaclesConfig{
			Crate:            SizeConfig{Width: 16, Height: 16},
			Cone:             SizeConfig{Width: 11, Height: 20},
			SpawnIntervalMin: 0.9,
			SpawnIntervalMax: 2.2,
		},
		Treats: TreatsConfig{
			Width:            9,
			Height:           9,
			SpawnIntervalMin: 1.4,
			SpawnIntervalMax: 3.2,
			Tiers:            []float64{0, 36, 68},
		},
	}
}

// DefaultYAML returns the embedded default configuration file, for the
// `pupdash config` command and for documentation.
func DefaultYAML() []byte {
	return defaultYAML
}

package config

import (
	_ "embed"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// DefaultDinoConfig returns the built-in tuning.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		Field: Field{
			Width:      800,
			Height:     300,
			GroundLine: 290,
		},
		Player: Player{
			X:       50,
			GroundY: 250,
			Width:   40,
			Height:  40,
		},
		Obstacles: Obstacles{
			Width:       20,
			Height:      40,
			SpawnChance: 0.02,
		},
		Physics: Physics{
			Gravity:     0.6,
			JumpImpulse: -13,
			GameSpeed:   5,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultDinoYAML
}

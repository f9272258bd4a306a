// Package config provides YAML-based tuning for the game: play-field size,
// player and obstacle geometry and the physics constants.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// DinoConfig contains all tuning for the game.
type DinoConfig struct {
	Field     Field     `yaml:"field"`
	Player    Player    `yaml:"player"`
	Obstacles Obstacles `yaml:"obstacles"`
	Physics   Physics   `yaml:"physics"`
}

// Field defines the play field.
type Field struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	GroundLine float64 `yaml:"ground_line"` // y of the drawn ground line
}

// Player defines the player's geometry.
type Player struct {
	X       float64 `yaml:"x"`
	GroundY float64 `yaml:"ground_y"` // top edge of the player when standing
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// Obstacles defines obstacle geometry and spawning.
type Obstacles struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpawnChance float64 `yaml:"spawn_chance"` // per-frame probability
}

// Physics defines per-frame motion constants.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // negative is up
	GameSpeed   float64 `yaml:"game_speed"`
}

// Validate checks that the config describes a playable game.
func (c DinoConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field size %vx%v", ErrInvalid, c.Field.Width, c.Field.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size %vx%v", ErrInvalid, c.Player.Width, c.Player.Height)
	case c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0:
		return fmt.Errorf("%w: obstacle size %vx%v", ErrInvalid, c.Obstacles.Width, c.Obstacles.Height)
	case c.Obstacles.SpawnChance < 0 || c.Obstacles.SpawnChance > 1:
		return fmt.Errorf("%w: spawn_chance %v outside [0, 1]", ErrInvalid, c.Obstacles.SpawnChance)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive, got %v", ErrInvalid, c.Physics.Gravity)
	case c.Physics.JumpImpulse >= 0:
		return fmt.Errorf("%w: jump_impulse must be negative, got %v", ErrInvalid, c.Physics.JumpImpulse)
	case c.Physics.GameSpeed <= 0:
		return fmt.Errorf("%w: game_speed must be positive, got %v", ErrInvalid, c.Physics.GameSpeed)
	case c.Player.GroundY < 0 || c.Player.GroundY+c.Player.Height > c.Field.Height:
		return fmt.Errorf("%w: player ground_y %v outside field", ErrInvalid, c.Player.GroundY)
	}
	return nil
}

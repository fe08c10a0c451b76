// Package config provides YAML-based tunables for the game. All values are
// loaded once at process start; there is no runtime reconfiguration.
package config

import "fmt"

// Config contains every tunable constant of the game world. Distances are in
// world pixels, velocities in world pixels per second, durations in seconds.
type Config struct {
	Field     FieldConfig     `yaml:"field"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Treats    TreatsConfig    `yaml:"treats"`
}

// FieldConfig defines the visible playfield.
type FieldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	GroundY     float64 `yaml:"ground_y"`     // y of the walkable ground plane
	PruneMargin float64 `yaml:"prune_margin"` // entities are dropped once right edge < -margin
}

// PhysicsConfig defines gravity, jump and scroll parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // downward acceleration, px/s^2
	JumpVelocity float64 `yaml:"jump_velocity"` // launch velocity, negative = up
	ScrollSpeed  float64 `yaml:"scroll_speed"`  // constant leftward world speed, px/s
	MaxDT        float64 `yaml:"max_dt"`        // frame delta cap applied by the platform clock
}

// PlayerConfig defines the player hitbox. X is fixed for the whole session.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SizeConfig is a width/height pair for an obstacle variant.
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstaclesConfig defines the two obstacle variants and their spawn cadence.
type ObstaclesConfig struct {
	Crate            SizeConfig `yaml:"crate"`
	Cone             SizeConfig `yaml:"cone"`
	SpawnIntervalMin float64    `yaml:"spawn_interval_min"`
	SpawnIntervalMax float64    `yaml:"spawn_interval_max"`
}

// TreatsConfig defines the collectible size, spawn cadence, and the three
// discrete height tiers. Tiers are heights of the treat's bottom edge above
// the ground line: ground-level, small-jump, big-jump.
type TreatsConfig struct {
	Width            float64   `yaml:"width"`
	Height           float64   `yaml:"height"`
	SpawnIntervalMin float64   `yaml:"spawn_interval_min"`
	SpawnIntervalMax float64   `yaml:"spawn_interval_max"`
	Tiers            []float64 `yaml:"tiers"`
}

// Validate checks that the loaded values describe a playable world.
func (c Config) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("config: field dimensions must be positive, got %gx%g", c.Field.Width, c.Field.Height)
	}
	if c.Field.GroundY <= 0 || c.Field.GroundY > c.Field.Height {
		return fmt.Errorf("config: ground_y %g must be inside the field (height %g)", c.Field.GroundY, c.Field.Height)
	}
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("config: gravity must be positive, got %g", c.Physics.Gravity)
	}
	if c.Physics.JumpVelocity >= 0 {
		return fmt.Errorf("config: jump_velocity must be negative (up), got %g", c.Physics.JumpVelocity)
	}
	if c.Physics.ScrollSpeed <= 0 {
		return fmt.Errorf("config: scroll_speed must be positive, got %g", c.Physics.ScrollSpeed)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("config: player dimensions must be positive")
	}
	if c.Player.Height >= c.Field.GroundY {
		return fmt.Errorf("config: player height %g does not fit above ground_y %g", c.Player.Height, c.Field.GroundY)
	}
	if err := validateInterval("obstacles", c.Obstacles.SpawnIntervalMin, c.Obstacles.SpawnIntervalMax); err != nil {
		return err
	}
	if err := validateInterval("treats", c.Treats.SpawnIntervalMin, c.Treats.SpawnIntervalMax); err != nil {
		return err
	}
	if c.Obstacles.Crate.Width <= 0 || c.Obstacles.Crate.Height <= 0 ||
		c.Obstacles.Cone.Width <= 0 || c.Obstacles.Cone.Height <= 0 {
		return fmt.Errorf("config: obstacle dimensions must be positive")
	}
	if c.Treats.Width <= 0 || c.Treats.Height <= 0 {
		return fmt.Errorf("config: treat dimensions must be positive")
	}
	if len(c.Treats.Tiers) != 3 {
		return fmt.Errorf("config: treats need exactly 3 height tiers, got %d", len(c.Treats.Tiers))
	}
	for i, tier := range c.Treats.Tiers {
		if tier < 0 {
			return fmt.Errorf("config: treat tier %d is negative (%g)", i, tier)
		}
	}
	return nil
}

func validateInterval(name string, min, max float64) error {
	if min <= 0 {
		return fmt.Errorf("config: %s spawn_interval_min must be positive, got %g", name, min)
	}
	if max < min {
		return fmt.Errorf("config: %s spawn interval range [%g, %g] is inverted", name, min, max)
	}
	return nil
}

// Package config provides YAML-based tunnel configuration loading and
// difficulty management for colorswitch.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate when tunables are inconsistent.
var ErrInvalidConfig = errors.New("invalid config")

// TunnelConfig contains every tunable of the falling-ball simulation.
// Distances are world units, speeds are per frame.
type TunnelConfig struct {
	Physics     PhysicsConfig    `yaml:"physics"`
	Ball        BallConfig       `yaml:"ball"`
	Rings       RingsConfig      `yaml:"rings"`
	Changers    ChangersConfig   `yaml:"changers"`
	Bounds      BoundsConfig     `yaml:"bounds"`
	PaletteSize int              `yaml:"palette_size"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines gravity and jump strength.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // added to velocity each started frame (negative)
	JumpVelocity float64 `yaml:"jump_velocity"` // absolute velocity set by a jump
}

// BallConfig defines the player ball.
type BallConfig struct {
	Radius       float64 `yaml:"radius"`
	StartOffset  float64 `yaml:"start_offset"` // distance below the first ring
	InitialColor int     `yaml:"initial_color"`
}

// RingsConfig defines ring generation.
type RingsConfig struct {
	FirstY            float64 `yaml:"first_y"`
	InitialCount      int     `yaml:"initial_count"`
	BaseSpacing       float64 `yaml:"base_spacing"`
	SpacingJitter     float64 `yaml:"spacing_jitter"`
	OuterRadiusMin    float64 `yaml:"outer_radius_min"`
	OuterRadiusRange  float64 `yaml:"outer_radius_range"`
	ThicknessMin      float64 `yaml:"thickness_min"`
	ThicknessRange    float64 `yaml:"thickness_range"`
	BaseRotationDeg   float64 `yaml:"base_rotation_deg"`   // degrees per frame at the reference radius
	RotationRefRadius float64 `yaml:"rotation_ref_radius"` // smaller rings spin faster
	RandomDirection   bool    `yaml:"random_direction"`
	SegmentCount      int     `yaml:"segment_count"`
}

// ChangersConfig defines color changer pickups.
type ChangersConfig struct {
	Probability float64 `yaml:"probability"`
	Radius      float64 `yaml:"radius"`
}

// BoundsConfig defines the world thresholds.
type BoundsConfig struct {
	SpawnY float64 `yaml:"spawn_y"` // spawn when the topmost ring is below this
	CullY  float64 `yaml:"cull_y"`  // remove entities below this
	FailY  float64 `yaml:"fail_y"`  // game over when the ball is below this
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
	RotationMultiplier float64 `yaml:"rotation_multiplier"` // added to rotation speed at max difficulty
	SpacingReduction   float64 `yaml:"spacing_reduction"`   // ring spacing reduction at max difficulty
}

// Validate checks that the tunables describe a playable tunnel.
func (c TunnelConfig) Validate() error {
	switch {
	case c.Physics.Gravity >= 0:
		return fmt.Errorf("%w: gravity must be negative, got %v", ErrInvalidConfig, c.Physics.Gravity)
	case c.Physics.JumpVelocity <= 0:
		return fmt.Errorf("%w: jump_velocity must be positive, got %v", ErrInvalidConfig, c.Physics.JumpVelocity)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius must be positive", ErrInvalidConfig)
	case c.PaletteSize < 1:
		return fmt.Errorf("%w: palette_size must be at least 1", ErrInvalidConfig)
	case c.Ball.InitialColor < 0 || c.Ball.InitialColor >= c.PaletteSize:
		return fmt.Errorf("%w: initial_color %d outside palette of %d", ErrInvalidConfig, c.Ball.InitialColor, c.PaletteSize)
	case c.Rings.SegmentCount < 1:
		return fmt.Errorf("%w: segment_count must be at least 1", ErrInvalidConfig)
	case c.Rings.InitialCount < 1:
		return fmt.Errorf("%w: initial_count must be at least 1", ErrInvalidConfig)
	case c.Rings.BaseSpacing <= 0 || c.Rings.SpacingJitter < 0:
		return fmt.Errorf("%w: ring spacing must be positive", ErrInvalidConfig)
	case c.Rings.ThicknessMin <= 0 || c.Rings.ThicknessRange < 0:
		return fmt.Errorf("%w: ring thickness must be positive", ErrInvalidConfig)
	case c.Rings.OuterRadiusMin-c.Rings.ThicknessMin-c.Rings.ThicknessRange < 0:
		return fmt.Errorf("%w: thickest ring would have a negative inner radius", ErrInvalidConfig)
	case c.Rings.OuterRadiusRange < 0:
		return fmt.Errorf("%w: outer_radius_range must not be negative", ErrInvalidConfig)
	case c.Rings.RotationRefRadius <= 0:
		return fmt.Errorf("%w: rotation_ref_radius must be positive", ErrInvalidConfig)
	case c.Changers.Probability < 0 || c.Changers.Probability > 1:
		return fmt.Errorf("%w: changer probability must be in [0, 1]", ErrInvalidConfig)
	case c.Changers.Radius <= 0:
		return fmt.Errorf("%w: changer radius must be positive", ErrInvalidConfig)
	case !(c.Bounds.CullY < c.Bounds.FailY && c.Bounds.FailY < 0 && 0 < c.Bounds.SpawnY):
		return fmt.Errorf("%w: bounds must satisfy cull_y < fail_y < 0 < spawn_y", ErrInvalidConfig)
	case c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1:
		return fmt.Errorf("%w: difficulty initial_level must be in [0, 1]", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. The empty string means
// "keep whatever the config file says".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (easy, normal, hard, fixed)", ErrInvalidConfig, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// The fixed preset turns progression off and plays the base tunnel.
func ApplyPreset(cfg *TunnelConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

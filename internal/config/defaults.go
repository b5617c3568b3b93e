package config

import (
	_ "embed"
)

//go:embed defaults/tunnel.yaml
var defaultTunnelYAML []byte

// DefaultTunnelConfig returns the hard-coded tunnel configuration. It matches
// defaults/tunnel.yaml and is used when the embedded file cannot be parsed.
func DefaultTunnelConfig() TunnelConfig {
	return TunnelConfig{
		Physics: PhysicsConfig{
			Gravity:      -0.01,
			JumpVelocity: 0.2,
		},
		Ball: BallConfig{
			Radius:       0.5,
			StartOffset:  2.0,
			InitialColor: 0,
		},
		Rings: RingsConfig{
			FirstY:            5.0,
			InitialCount:      3,
			BaseSpacing:       20.0,
			SpacingJitter:     4.0,
			OuterRadiusMin:    3.5,
			OuterRadiusRange:  3.0,
			ThicknessMin:      0.8,
			ThicknessRange:    0.7,
			BaseRotationDeg:   1.5,
			RotationRefRadius: 4.5,
			RandomDirection:   true,
			SegmentCount:      4,
		},
		Changers: ChangersConfig{
			Probability: 0.4,
			Radius:      0.35,
		},
		Bounds: BoundsConfig{
			SpawnY: 15.0,
			CullY:  -20.0,
			FailY:  -12.0,
		},
		PaletteSize: 4,
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				RotationMultiplier: 1.0,
				SpacingReduction:   6.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default tunnel YAML.
func DefaultYAML() []byte {
	return defaultTunnelYAML
}

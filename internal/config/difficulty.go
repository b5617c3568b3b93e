package config

import "math"

// minSpacingFactor bounds how much difficulty can shrink ring spacing.
const minSpacingFactor = 0.5

// DifficultyManager calculates dynamic tunnel parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty scaling is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d != nil && d.cfg.Enabled
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type == "none" {
		return d.baseLevel()
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

func (d *DifficultyManager) baseLevel() float64 {
	if d == nil {
		return 0
	}
	return d.initialLevel
}

// RotationScale returns the factor applied to a new ring's rotation speed.
// It is exactly 1 when scaling is disabled.
func (d *DifficultyManager) RotationScale(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return 1.0
	}
	return 1.0 + d.Level(score, ticks)*d.cfg.Scaling.RotationMultiplier
}

// Spacing returns the base ring spacing reduced by difficulty. It never drops
// below half of the base spacing and is exactly baseSpacing when disabled.
func (d *DifficultyManager) Spacing(baseSpacing float64, score int, ticks int) float64 {
	if !d.IsEnabled() {
		return baseSpacing
	}
	reduced := baseSpacing - d.Level(score, ticks)*d.cfg.Scaling.SpacingReduction
	return math.Max(reduced, baseSpacing*minSpacingFactor)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

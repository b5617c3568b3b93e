package config

import (
	"math"
	"testing"
)

func TestDifficultyDisabledIsIdentity(t *testing.T) {
	d := NewDifficultyManager(DefaultTunnelConfig().Difficulty)

	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if got := d.RotationScale(100, 100000); got != 1.0 {
		t.Errorf("RotationScale = %v, expected 1.0", got)
	}
	if got := d.Spacing(20, 100, 100000); got != 20 {
		t.Errorf("Spacing = %v, expected 20", got)
	}
}

func TestDifficultyNilManager(t *testing.T) {
	var d *DifficultyManager
	if d.IsEnabled() {
		t.Error("nil manager should be disabled")
	}
	if got := d.Spacing(20, 5, 5); got != 20 {
		t.Errorf("Spacing = %v, expected 20", got)
	}
	if got := d.Level(5, 5); got != 0 {
		t.Errorf("Level = %v, expected 0", got)
	}
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{RotationMultiplier: 1.0, SpacingReduction: 6},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{5, 0.6},
		{10, 1.0},
		{50, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d, 0) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	if got := d.RotationScale(10, 0); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("RotationScale at max = %v, expected 2.0", got)
	}
	if got := d.Spacing(20, 10, 0); math.Abs(got-14) > 1e-9 {
		t.Errorf("Spacing at max = %v, expected 14", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
	})
	if got := d.Level(999, 300); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level(_, 300) = %v, expected 0.5", got)
	}
}

func TestDifficultySpacingFloor(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1.0,
		Progression:  ProgressionConfig{Type: "none"},
		Scaling:      ScalingConfig{SpacingReduction: 100},
	})
	if got := d.Spacing(20, 0, 0); got != 10 {
		t.Errorf("Spacing = %v, expected floor of 10", got)
	}
}

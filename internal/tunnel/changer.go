package tunnel

import "github.com/vovakirdan/colorswitch/internal/core"

// ColorChanger is a one-shot pickup that advances the ball's color.
type ColorChanger struct {
	X        float64
	Y        float64
	Radius   float64
	Consumed bool
}

// Circle returns the pickup's collision circle.
func (c ColorChanger) Circle() core.Circle {
	return core.Circle{Center: core.Vec2{X: c.X, Y: c.Y}, R: c.Radius}
}

// Consume marks the pickup used and drops it below cullY so the same
// frame's cull pass removes it.
func (c *ColorChanger) Consume(cullY float64) {
	c.Consumed = true
	c.Y = cullY - 1
}

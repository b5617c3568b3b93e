package tunnel

import (
	"math"

	"github.com/vovakirdan/colorswitch/internal/core"
)

// Ball is the player. X stays at 0; only Y moves.
type Ball struct {
	X          float64
	Y          float64
	Velocity   float64 // vertical, positive is up
	Radius     float64
	ColorIndex int
}

// ApplyGravity adds gravity (negative) to the vertical velocity.
func (b *Ball) ApplyGravity(g float64) {
	b.Velocity += g
}

// Jump replaces the vertical velocity. It is not additive.
func (b *Ball) Jump(v float64) {
	b.Velocity = v
}

// Integrate moves the ball by its velocity for one frame.
func (b *Ball) Integrate() {
	b.Y += b.Velocity
}

// ChangeColor advances to the next palette color.
func (b *Ball) ChangeColor(paletteSize int) {
	b.ColorIndex = (b.ColorIndex + 1) % paletteSize
}

// Pos returns the ball center.
func (b Ball) Pos() core.Vec2 {
	return core.Vec2{X: b.X, Y: b.Y}
}

// Circle returns the ball's collision circle.
func (b Ball) Circle() core.Circle {
	return core.Circle{Center: b.Pos(), R: b.Radius}
}

// InRingBand reports whether the ball center lies within the ring's band
// measured along the vertical axis: inner <= |dy| <= outer.
func (b Ball) InRingBand(r Ring) bool {
	d := math.Abs(b.Y - r.Y)
	return d >= r.InnerRadius && d <= r.OuterRadius
}

// Touches reports whether the ball overlaps an unconsumed changer.
func (b Ball) Touches(c ColorChanger) bool {
	return !c.Consumed && b.Circle().Intersects(c.Circle())
}

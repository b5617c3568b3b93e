package tunnel

import "github.com/vovakirdan/colorswitch/internal/core"

// Ring is a rotating annulus centered at (0, Y), split into SegmentCount
// equal angular segments. Segment 0 starts at Rotation and segments grow
// counter-clockwise.
type Ring struct {
	Y             float64
	InnerRadius   float64
	OuterRadius   float64
	Rotation      float64 // radians in [0, 2π)
	RotationSpeed float64 // signed radians per frame
	SegmentCount  int
	Passed        bool
}

// Rotate advances the ring by one frame.
func (r *Ring) Rotate() {
	r.Rotation = core.NormalizeAngle(r.Rotation + r.RotationSpeed)
}

// SegmentAt returns the segment index under point p.
func (r Ring) SegmentAt(p core.Vec2) int {
	rel := p.Sub(core.Vec2{X: 0, Y: r.Y})
	return SegmentForAngle(rel.Angle(), r.Rotation, r.SegmentCount)
}

// SegmentForAngle maps a math angle around a ring center to one of n equal
// segments of a ring rotated by rotation radians.
func SegmentForAngle(theta, rotation float64, n int) int {
	if n <= 1 {
		return 0
	}
	rel := core.NormalizeAngle(theta - rotation)
	return min(int(rel/(core.TwoPi/float64(n))), n-1)
}

// SegmentColor maps a segment to its palette color. Colors repeat in a
// fixed order around the ring.
func SegmentColor(segment, paletteSize int) int {
	return segment % paletteSize
}

// SegmentColors lists the palette color of every segment.
func (r Ring) SegmentColors(paletteSize int) []int {
	colors := make([]int, r.SegmentCount)
	for i := range colors {
		colors[i] = SegmentColor(i, paletteSize)
	}
	return colors
}

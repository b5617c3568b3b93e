package tunnel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/colorswitch/internal/config"
	"github.com/vovakirdan/colorswitch/internal/core"
)

// scriptedStream replays fixed draws, cycling when exhausted.
type scriptedStream struct {
	floats []float64
	bools  []bool
	fi, bi int
}

func (s *scriptedStream) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *scriptedStream) Bool() bool {
	if len(s.bools) == 0 {
		return true
	}
	v := s.bools[s.bi%len(s.bools)]
	s.bi++
	return v
}

func newTestWorld(t *testing.T, seed int64) *World {
	t.Helper()
	return NewWorld(config.DefaultTunnelConfig(), NewRandomStream(seed), nil)
}

// isolate replaces the generated tunnel with the given rings and no changers,
// puts the ball at y with zero velocity and starts the world.
func isolate(w *World, y float64, rings ...Ring) {
	w.rings = append(w.rings[:0], rings...)
	w.changers = w.changers[:0]
	w.ball.Y = y
	w.ball.Velocity = 0
	w.started = true
}

// ringShowing builds a ring at ringY whose segment under a point straight
// above (above=true) or below its center is seg, with no rotation speed.
func ringShowing(ringY float64, seg int, above bool) Ring {
	pointAngle := math.Pi / 2
	if !above {
		pointAngle = 3 * math.Pi / 2
	}
	segWidth := core.TwoPi / 4
	return Ring{
		Y:            ringY,
		InnerRadius:  2,
		OuterRadius:  4,
		Rotation:     core.NormalizeAngle(pointAngle - (float64(seg)+0.5)*segWidth),
		SegmentCount: 4,
	}
}

func assertSorted(t *testing.T, w *World) {
	t.Helper()
	rings := w.Rings()
	for i := 1; i < len(rings); i++ {
		require.LessOrEqual(t, rings[i-1].Y, rings[i].Y, "rings out of order at %d", i)
	}
	changers := w.Changers()
	for i := 1; i < len(changers); i++ {
		require.LessOrEqual(t, changers[i-1].Y, changers[i].Y, "changers out of order at %d", i)
	}
}

func TestNewWorldLayout(t *testing.T) {
	cfg := config.DefaultTunnelConfig()
	w := newTestWorld(t, 7)

	rings := w.Rings()
	require.Len(t, rings, cfg.Rings.InitialCount)
	assert.Equal(t, 5.0, rings[0].Y)
	assert.Equal(t, 3.0, w.Ball().Y, "ball starts under the first ring")
	assert.Equal(t, 0.0, w.Ball().Velocity)
	assert.Equal(t, 0, w.Ball().ColorIndex)
	assert.Equal(t, PhaseNotStarted, w.Phase())

	for i, r := range rings {
		assert.GreaterOrEqual(t, r.OuterRadius, 3.5)
		assert.Less(t, r.OuterRadius, 6.5)
		thickness := r.OuterRadius - r.InnerRadius
		assert.GreaterOrEqual(t, thickness, 0.8-1e-9)
		assert.Less(t, thickness, 1.5+1e-9)
		assert.GreaterOrEqual(t, r.InnerRadius, 0.0)
		assert.InDelta(t, core.DegToRad(1.5)*4.5/r.OuterRadius, math.Abs(r.RotationSpeed), 1e-12)
		assert.Equal(t, 4, r.SegmentCount)
		assert.False(t, r.Passed)
		if i > 0 {
			gap := r.Y - rings[i-1].Y
			assert.GreaterOrEqual(t, gap, 20.0-1e-9)
			assert.Less(t, gap, 24.0+1e-9)
		}
	}
	assertSorted(t, w)
}

func TestSpawnRingDrawOrder(t *testing.T) {
	cfg := config.DefaultTunnelConfig()
	rng := &scriptedStream{
		floats: []float64{0.5, 0.0, 0.9, 0.5, 0.0, 0.5},
		bools:  []bool{false, true},
	}
	w := &World{cfg: cfg, rng: rng}

	w.spawnRing(7)
	require.Len(t, w.rings, 1)
	r := w.rings[0]
	assert.InDelta(t, 5.0, r.OuterRadius, 1e-12)
	assert.InDelta(t, 4.2, r.InnerRadius, 1e-12)
	assert.InDelta(t, -core.DegToRad(1.5)*0.9, r.RotationSpeed, 1e-12)
	require.Len(t, w.changers, 1, "roll 0.9 > 0.6 spawns a changer")
	assert.Equal(t, 17.0, w.changers[0].Y)
	assert.Equal(t, 0.35, w.changers[0].Radius)

	w.spawnRing(30)
	require.Len(t, w.rings, 2)
	assert.Greater(t, w.rings[1].RotationSpeed, 0.0)
	assert.Len(t, w.changers, 1, "roll 0.5 spawns no changer")
}

func TestChangerSpawnsHalfBaseSpacingAboveRing(t *testing.T) {
	for _, spacing := range []float64{20, 30, 8} {
		cfg := config.DefaultTunnelConfig()
		cfg.Rings.BaseSpacing = spacing
		cfg.Rings.SpacingJitter = 0
		w := &World{cfg: cfg, rng: &scriptedStream{floats: []float64{0.5, 0.5, 0.9}}}

		w.spawnRing(7)
		require.Len(t, w.changers, 1)
		assert.Equal(t, 7+spacing/2, w.changers[0].Y, "base spacing %v", spacing)
	}
}

func TestNoFallBeforeFirstJump(t *testing.T) {
	w := newTestWorld(t, 1)
	before := w.Rings()

	for i := 0; i < 300; i++ {
		ev := w.Update()
		assert.Equal(t, FrameEvents{}, ev)
	}

	assert.Equal(t, 3.0, w.Ball().Y)
	assert.Equal(t, 0.0, w.Ball().Velocity)
	assert.Equal(t, PhaseNotStarted, w.Phase())
	after := w.Rings()
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].Y, after[i].Y, "rings must not scroll before the first jump")
	}
}

func TestJumpIsAbsolute(t *testing.T) {
	w := newTestWorld(t, 1)

	require.True(t, w.Jump())
	assert.Equal(t, 0.2, w.Ball().Velocity)
	assert.Equal(t, PhaseRunning, w.Phase())

	w.Update()
	assert.InDelta(t, 0.19, w.Ball().Velocity, 1e-12)

	w.Jump()
	assert.Equal(t, 0.2, w.Ball().Velocity, "jump sets velocity, it does not add")
}

func TestParabolaAfterSingleJump(t *testing.T) {
	w := newTestWorld(t, 3)
	isolate(w, 3, Ring{Y: 5, InnerRadius: 2, OuterRadius: 4, SegmentCount: 4})
	w.started = false

	require.True(t, w.Jump())

	const g, v0 = -0.01, 0.2
	refBall, refRing, refV := 3.0, 5.0, v0
	for frame := 1; frame <= 20; frame++ {
		ev := w.Update()
		require.False(t, ev.Ended(), "frame %d ended the world", frame)

		refV += g
		refBall += refV
		if refBall > 0 {
			refRing -= refBall
			refBall = 0
		}

		ball := w.Ball()
		ring := w.Rings()[0]
		assert.InDelta(t, refV, ball.Velocity, 1e-12, "velocity at frame %d", frame)
		assert.InDelta(t, refBall, ball.Y, 1e-12, "ball y at frame %d", frame)
		assert.InDelta(t, refRing, ring.Y, 1e-12, "ring y at frame %d", frame)

		// Height climbed relative to the ring follows the discrete parabola
		// y0 + v0*t + g*t*(t+1)/2.
		tf := float64(frame)
		height := 3 + v0*tf + g*tf*(tf+1)/2
		assert.InDelta(t, height-5, ball.Y-ring.Y, 1e-9, "relative height at frame %d", frame)
	}

	assert.InDelta(t, 0.0, w.Ball().Velocity, 1e-12)
	assert.InDelta(t, -0.1, w.Ball().Y-w.Rings()[0].Y, 1e-9)
	assert.Equal(t, 0, w.Score())
}

func TestRingBelowCullLineIsRemoved(t *testing.T) {
	w := newTestWorld(t, 1)
	n := len(w.rings)
	w.rings = append([]Ring{{Y: -25, InnerRadius: 2, OuterRadius: 4, SegmentCount: 4}}, w.rings...)
	w.changers = append([]ColorChanger{{Y: -25, Radius: 0.35}}, w.changers...)

	w.Update()

	rings := w.Rings()
	assert.Len(t, rings, n)
	for _, r := range rings {
		assert.GreaterOrEqual(t, r.Y, -20.0)
	}
	for _, c := range w.Changers() {
		assert.GreaterOrEqual(t, c.Y, -20.0)
	}
}

func TestRingsStaySortedDuringPlay(t *testing.T) {
	w := newTestWorld(t, 42)
	for frame := 0; frame < 5000; frame++ {
		if frame%14 == 0 {
			w.Jump()
		}
		w.Update()
		assertSorted(t, w)
		if w.GameOver() {
			w.Reset()
		}
	}
}

func TestPassingRingScoresOnce(t *testing.T) {
	w := newTestWorld(t, 1)
	isolate(w, 0, ringShowing(-3, 0, true))

	ev := w.Update()
	assert.Equal(t, 1, ev.Scored)
	assert.Equal(t, 1, w.Score())
	assert.True(t, w.Rings()[0].Passed)

	for i := 0; i < 5; i++ {
		ev = w.Update()
		assert.Equal(t, 0, ev.Scored)
	}
	assert.Equal(t, 1, w.Score())
	assert.False(t, w.GameOver())
}

func TestWrongSegmentEndsGameImmediately(t *testing.T) {
	w := newTestWorld(t, 1)
	wrong := ringShowing(-3, 0, true)
	right := ringShowing(3, 1, false)
	isolate(w, 0, wrong, right)
	w.ball.ColorIndex = 1
	w.changers = append(w.changers, ColorChanger{Y: 0, Radius: 0.35})

	ev := w.Update()
	assert.True(t, ev.Crashed)
	assert.Equal(t, 0, ev.Scored)
	assert.Equal(t, 0, ev.ColorChanged, "changers are skipped after a crash")
	assert.True(t, w.GameOver())
	assert.Equal(t, PhaseOver, w.Phase())
	assert.Equal(t, 0, w.Score())
	assert.Equal(t, 1, w.Ball().ColorIndex)
	assert.False(t, w.Rings()[1].Passed)

	ball := w.Ball()
	for i := 0; i < 10; i++ {
		assert.Equal(t, FrameEvents{}, w.Update())
	}
	assert.Equal(t, ball, w.Ball(), "an over world is frozen")
	assert.False(t, w.Jump())
}

func TestFallingBelowFailLineEndsGame(t *testing.T) {
	w := newTestWorld(t, 1)
	isolate(w, -11.99, Ring{Y: 30, InnerRadius: 2, OuterRadius: 4, SegmentCount: 4})
	w.score = 4
	w.ball.Velocity = -0.5

	ev := w.Update()
	assert.True(t, ev.FellOut)
	assert.True(t, w.GameOver())
	assert.Equal(t, 4, w.Score())

	w.Update()
	assert.Equal(t, 4, w.Score(), "score is frozen once over")
}

func TestChangerAdvancesColorOnce(t *testing.T) {
	w := newTestWorld(t, 1)
	isolate(w, 0, Ring{Y: 30, InnerRadius: 2, OuterRadius: 4, SegmentCount: 4})
	w.changers = append(w.changers, ColorChanger{Y: -0.2, Radius: 0.35})

	ev := w.Update()
	assert.Equal(t, 1, ev.ColorChanged)
	assert.Equal(t, 1, w.Ball().ColorIndex)
	assert.Empty(t, w.Changers(), "consumed changer is culled in the same frame")

	for i := 0; i < 5; i++ {
		assert.Equal(t, 0, w.Update().ColorChanged)
	}
	assert.Equal(t, 1, w.Ball().ColorIndex)
}

func TestBallChangeColorWraps(t *testing.T) {
	b := Ball{ColorIndex: 3}
	b.ChangeColor(4)
	assert.Equal(t, 0, b.ColorIndex)
	b.ChangeColor(4)
	assert.Equal(t, 1, b.ColorIndex)
}

func TestRingSegmentAt(t *testing.T) {
	tests := []struct {
		name     string
		rotation float64
		point    core.Vec2
		expected int
	}{
		{"first quadrant", 0, core.Vec2{X: 1, Y: 11}, 0},
		{"second quadrant", 0, core.Vec2{X: -1, Y: 11}, 1},
		{"third quadrant", 0, core.Vec2{X: -1, Y: 9}, 2},
		{"fourth quadrant", 0, core.Vec2{X: 1, Y: 9}, 3},
		{"rotated a quarter turn", math.Pi / 2, core.Vec2{X: 1, Y: 11}, 3},
		{"rotated back a quarter turn", 3 * math.Pi / 2, core.Vec2{X: 1, Y: 11}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := Ring{Y: 10, InnerRadius: 1, OuterRadius: 3, Rotation: tc.rotation, SegmentCount: 4}
			assert.Equal(t, tc.expected, r.SegmentAt(tc.point))
		})
	}
}

func TestSegmentForAngle(t *testing.T) {
	tests := []struct {
		name     string
		theta    float64
		rotation float64
		n        int
		expected int
	}{
		{"zero angle", 0, 0, 4, 0},
		{"just below a boundary", math.Pi/2 - 1e-9, 0, 4, 0},
		{"on a boundary", math.Pi / 2, 0, 4, 1},
		{"negative angle wraps", -0.1, 0, 4, 3},
		{"rotation shifts segments", 0.1, 0.2, 4, 3},
		{"full turn clamps", core.TwoPi - 1e-15, 0, 4, 3},
		{"single segment", 2, 0, 1, 0},
		{"no segments", 2, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SegmentForAngle(tc.theta, tc.rotation, tc.n))
		})
	}
}

func TestRingRotateWraps(t *testing.T) {
	r := Ring{Rotation: core.TwoPi - 0.1, RotationSpeed: 0.2}
	r.Rotate()
	assert.InDelta(t, 0.1, r.Rotation, 1e-9)

	r = Ring{Rotation: 0.05, RotationSpeed: -0.1}
	r.Rotate()
	assert.InDelta(t, core.TwoPi-0.05, r.Rotation, 1e-9)
}

func TestSameSeedSameWorld(t *testing.T) {
	a := newTestWorld(t, 99)
	b := newTestWorld(t, 99)

	for frame := 0; frame < 1500; frame++ {
		if frame%13 == 0 {
			a.Jump()
			b.Jump()
		}
		assert.Equal(t, a.Update(), b.Update())
	}
	assert.Equal(t, a.View(), b.View())
}

func TestResetStartsNewLife(t *testing.T) {
	w := newTestWorld(t, 5)
	isolate(w, -11.99, Ring{Y: 30, InnerRadius: 2, OuterRadius: 4, SegmentCount: 4})
	w.ball.Velocity = -1
	w.score = 3
	w.Update()
	require.True(t, w.GameOver())

	w.Reset()
	assert.Equal(t, PhaseNotStarted, w.Phase())
	assert.Equal(t, 0, w.Score())
	assert.Equal(t, 0, w.Ticks())
	assert.Equal(t, 3.0, w.Ball().Y)
	assert.Len(t, w.Rings(), 3)
	assert.Equal(t, 5.0, w.Rings()[0].Y)
}

func TestViewIsACopy(t *testing.T) {
	w := newTestWorld(t, 2)
	v := w.View()
	require.NotEmpty(t, v.Rings)

	v.Rings[0].Y = 1000
	v.Rings[0].SegmentColors[0] = 3
	assert.Equal(t, 5.0, w.Rings()[0].Y)
	assert.Equal(t, []int{0, 1, 2, 3}, w.View().Rings[0].SegmentColors)
	assert.Equal(t, PhaseNotStarted, v.Phase)
	assert.Equal(t, 4, v.PaletteSize)
}

func TestDifficultyScalesRotation(t *testing.T) {
	cfg := config.DefaultTunnelConfig()
	diffCfg := config.DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1.0,
		Progression:  config.ProgressionConfig{Type: "none"},
		Scaling:      config.ScalingConfig{RotationMultiplier: 1.0},
	}

	plain := NewWorld(cfg, NewRandomStream(11), nil)
	hard := NewWorld(cfg, NewRandomStream(11), config.NewDifficultyManager(diffCfg))

	pr, hr := plain.Rings(), hard.Rings()
	require.Len(t, hr, len(pr))
	for i := range pr {
		assert.Equal(t, pr[i].OuterRadius, hr[i].OuterRadius)
		assert.InDelta(t, 2*pr[i].RotationSpeed, hr[i].RotationSpeed, 1e-12)
	}
}

// Package tunnel implements the per-frame simulation of one player's world:
// a ball climbing through rotating color rings with color changer pickups.
// It is deterministic for a given RandomStream and jump sequence and knows
// nothing about rendering.
package tunnel

import (
	"github.com/vovakirdan/colorswitch/internal/config"
	"github.com/vovakirdan/colorswitch/internal/core"
)

// Phase is the lifecycle state of a world.
type Phase int

const (
	PhaseNotStarted Phase = iota // waiting for the first jump
	PhaseRunning
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseRunning:
		return "Running"
	case PhaseOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// FrameEvents reports what happened during one Update.
type FrameEvents struct {
	Scored       int  // rings passed this frame
	ColorChanged int  // changers consumed this frame
	Crashed      bool // hit a ring segment of the wrong color
	FellOut      bool // dropped below the fail line
}

// Ended reports whether the world became OVER during this frame.
func (e FrameEvents) Ended() bool {
	return e.Crashed || e.FellOut
}

// World is one player's complete simulation state.
type World struct {
	cfg  config.TunnelConfig
	diff *config.DifficultyManager
	rng  RandomStream

	ball     Ball
	rings    []Ring         // ascending Y
	changers []ColorChanger // ascending Y
	score    int
	ticks    int
	over     bool
	started  bool
}

// NewWorld creates a world with its initial rings. diff may be nil, which
// plays the unscaled tunnel.
func NewWorld(cfg config.TunnelConfig, rng RandomStream, diff *config.DifficultyManager) *World {
	w := &World{
		cfg:      cfg,
		diff:     diff,
		rng:      rng,
		rings:    make([]Ring, 0, cfg.Rings.InitialCount+2),
		changers: make([]ColorChanger, 0, 4),
		ball: Ball{
			Radius:     cfg.Ball.Radius,
			ColorIndex: cfg.Ball.InitialColor,
		},
	}
	w.spawnInitialRings()
	return w
}

// Reset starts a new life. The whole state is replaced at once; the random
// stream continues where it left off.
func (w *World) Reset() {
	*w = *NewWorld(w.cfg, w.rng, w.diff)
}

// spawnInitialRings places the first rings and puts the ball under the first.
func (w *World) spawnInitialRings() {
	first := w.cfg.Rings.FirstY
	w.spawnRing(first)
	for i := 1; i < w.cfg.Rings.InitialCount; i++ {
		w.spawnRing(w.rings[len(w.rings)-1].Y + w.nextSpacing())
	}
	w.ball.Y = first - w.cfg.Ball.StartOffset
}

// nextSpacing draws the distance to the next ring.
func (w *World) nextSpacing() float64 {
	base := w.diff.Spacing(w.cfg.Rings.BaseSpacing, w.score, w.ticks)
	return base + w.rng.Float64()*w.cfg.Rings.SpacingJitter
}

// spawnRing appends a ring at y and maybe a changer half a base spacing
// above it.
// Draw order: outer radius, thickness, direction, changer roll.
func (w *World) spawnRing(y float64) {
	rc := w.cfg.Rings
	outer := rc.OuterRadiusMin + w.rng.Float64()*rc.OuterRadiusRange
	thickness := rc.ThicknessMin + w.rng.Float64()*rc.ThicknessRange

	dir := 1.0
	if rc.RandomDirection && !w.rng.Bool() {
		dir = -1.0
	}
	speed := core.DegToRad(rc.BaseRotationDeg) * (rc.RotationRefRadius / outer) * dir
	speed *= w.diff.RotationScale(w.score, w.ticks)

	w.rings = append(w.rings, Ring{
		Y:             y,
		InnerRadius:   outer - thickness,
		OuterRadius:   outer,
		RotationSpeed: speed,
		SegmentCount:  rc.SegmentCount,
	})

	if w.rng.Float64() > 1-w.cfg.Changers.Probability {
		w.changers = append(w.changers, ColorChanger{
			Y:      y + rc.BaseSpacing/2,
			Radius: w.cfg.Changers.Radius,
		})
	}
}

// Jump gives the ball the configured jump velocity and starts the world.
// It returns false and does nothing once the world is over.
func (w *World) Jump() bool {
	if w.over {
		return false
	}
	w.started = true
	w.ball.Jump(w.cfg.Physics.JumpVelocity)
	return true
}

// Update advances the world by one frame. It does nothing once over.
func (w *World) Update() FrameEvents {
	var ev FrameEvents
	if w.over {
		return ev
	}
	w.ticks++

	if w.started {
		w.ball.ApplyGravity(w.cfg.Physics.Gravity)
	}
	w.ball.Integrate()

	// Camera follows the ball upward: the ball stays at y <= 0.
	if w.started && w.ball.Y > 0 {
		w.scroll(w.ball.Y)
	}

	if w.started {
		w.collide(&ev)
	}

	for i := range w.rings {
		w.rings[i].Rotate()
	}

	w.cull()
	w.spawn()

	if !w.over && w.ball.Y < w.cfg.Bounds.FailY {
		w.over = true
		ev.FellOut = true
	}
	return ev
}

// scroll moves the ball to y = 0 and everything else down by dy.
func (w *World) scroll(dy float64) {
	w.ball.Y = 0
	for i := range w.rings {
		w.rings[i].Y -= dy
	}
	for i := range w.changers {
		w.changers[i].Y -= dy
	}
}

// collide checks rings then changers. A wrong-color hit ends the world and
// skips everything after it.
func (w *World) collide(ev *FrameEvents) {
	pos := w.ball.Pos()
	for i := range w.rings {
		r := &w.rings[i]
		if !w.ball.InRingBand(*r) {
			continue
		}
		if SegmentColor(r.SegmentAt(pos), w.cfg.PaletteSize) != w.ball.ColorIndex {
			w.over = true
			ev.Crashed = true
			return
		}
		if !r.Passed {
			r.Passed = true
			w.score++
			ev.Scored++
		}
	}

	for i := range w.changers {
		c := &w.changers[i]
		if !w.ball.Touches(*c) {
			continue
		}
		w.ball.ChangeColor(w.cfg.PaletteSize)
		c.Consume(w.cfg.Bounds.CullY)
		ev.ColorChanged++
	}
}

// cull removes rings and changers below the cull line, keeping order.
func (w *World) cull() {
	cullY := w.cfg.Bounds.CullY

	rings := w.rings[:0]
	for _, r := range w.rings {
		if r.Y >= cullY {
			rings = append(rings, r)
		}
	}
	w.rings = rings

	changers := w.changers[:0]
	for _, c := range w.changers {
		if c.Y >= cullY && !c.Consumed {
			changers = append(changers, c)
		}
	}
	w.changers = changers
}

// spawn adds at most one ring per frame once the topmost ring is below the
// spawn line. An empty tunnel restarts at the spawn line.
func (w *World) spawn() {
	if len(w.rings) == 0 {
		w.spawnRing(w.cfg.Bounds.SpawnY)
		return
	}
	last := w.rings[len(w.rings)-1].Y
	if last < w.cfg.Bounds.SpawnY {
		w.spawnRing(last + w.nextSpacing())
	}
}

// Phase returns the current lifecycle phase.
func (w *World) Phase() Phase {
	switch {
	case w.over:
		return PhaseOver
	case w.started:
		return PhaseRunning
	default:
		return PhaseNotStarted
	}
}

// Score returns the number of rings passed this life.
func (w *World) Score() int { return w.score }

// GameOver reports whether this life has ended.
func (w *World) GameOver() bool { return w.over }

// Started reports whether the first jump has happened.
func (w *World) Started() bool { return w.started }

// Ticks returns the number of frames simulated this life.
func (w *World) Ticks() int { return w.ticks }

// Ball returns a copy of the ball.
func (w *World) Ball() Ball { return w.ball }

// Rings returns a copy of the ring sequence.
func (w *World) Rings() []Ring {
	return append([]Ring(nil), w.rings...)
}

// Changers returns a copy of the changer sequence.
func (w *World) Changers() []ColorChanger {
	return append([]ColorChanger(nil), w.changers...)
}

// Config returns the tunables this world was built with.
func (w *World) Config() config.TunnelConfig { return w.cfg }

package tunnel

// BallView is a read-only snapshot of the ball.
type BallView struct {
	X, Y       float64
	Radius     float64
	ColorIndex int
}

// RingView is a read-only snapshot of a ring.
type RingView struct {
	Y             float64
	InnerRadius   float64
	OuterRadius   float64
	Rotation      float64
	SegmentCount  int
	SegmentColors []int
	Passed        bool
}

// ChangerView is a read-only snapshot of a color changer.
type ChangerView struct {
	X, Y     float64
	Radius   float64
	Consumed bool
}

// WorldView is everything a renderer needs for one frame. All slices are
// copies; mutating them does not affect the world.
type WorldView struct {
	Ball        BallView
	Rings       []RingView
	Changers    []ChangerView
	Score       int
	Phase       Phase
	GameOver    bool
	Started     bool
	PaletteSize int
}

// View snapshots the world for rendering.
func (w *World) View() WorldView {
	v := WorldView{
		Ball: BallView{
			X:          w.ball.X,
			Y:          w.ball.Y,
			Radius:     w.ball.Radius,
			ColorIndex: w.ball.ColorIndex,
		},
		Rings:       make([]RingView, len(w.rings)),
		Changers:    make([]ChangerView, len(w.changers)),
		Score:       w.score,
		Phase:       w.Phase(),
		GameOver:    w.over,
		Started:     w.started,
		PaletteSize: w.cfg.PaletteSize,
	}
	for i, r := range w.rings {
		v.Rings[i] = RingView{
			Y:             r.Y,
			InnerRadius:   r.InnerRadius,
			OuterRadius:   r.OuterRadius,
			Rotation:      r.Rotation,
			SegmentCount:  r.SegmentCount,
			SegmentColors: r.SegmentColors(w.cfg.PaletteSize),
			Passed:        r.Passed,
		}
	}
	for i, c := range w.changers {
		v.Changers[i] = ChangerView{X: c.X, Y: c.Y, Radius: c.Radius, Consumed: c.Consumed}
	}
	return v
}

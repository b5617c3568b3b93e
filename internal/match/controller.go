package match

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorswitch/internal/config"
	"github.com/vovakirdan/colorswitch/internal/tunnel"
)

// ErrInvalidWorld is returned for a world index outside [0, players).
var ErrInvalidWorld = errors.New("match: invalid world index")

// Option configures a Controller.
type Option func(*Controller)

// WithListener registers a listener. It may be given more than once.
func WithListener(l Listener) Option {
	return func(c *Controller) {
		if l != nil {
			c.listeners = append(c.listeners, l)
		}
	}
}

// WithLogger sets the logger for match events.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRandom overrides how each world's random stream is created.
func WithRandom(newStream func(world int) tunnel.RandomStream) Option {
	return func(c *Controller) {
		if newStream != nil {
			c.newStream = newStream
		}
	}
}

// Controller owns the worlds of one match. All methods except Enqueue must
// be called from the goroutine that drives Frame.
type Controller struct {
	mode   Mode
	cfg    config.TunnelConfig
	seed   int64
	worlds []*tunnel.World

	listeners multiListener
	logger    *log.Logger
	newStream func(world int) tunnel.RandomStream
	queue     *InputQueue

	frames     uint64
	ended      bool // listener notified, waiting for Reset (solo)
	lastResult *MatchResult
}

// New creates a controller with fresh worlds. World i draws from a stream
// seeded with seed+i so the two sides of a versus match differ.
func New(mode Mode, cfg config.TunnelConfig, seed int64, opts ...Option) (*Controller, error) {
	if mode != ModeSolo && mode != ModeVersus {
		return nil, fmt.Errorf("match: unknown mode %d", mode)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("match: %w", err)
	}

	c := &Controller{
		mode:   mode,
		cfg:    cfg,
		seed:   seed,
		logger: log.New(io.Discard),
		queue:  NewInputQueue(defaultQueueSize),
	}
	c.newStream = func(world int) tunnel.RandomStream {
		return tunnel.NewRandomStream(c.seed + int64(world))
	}
	for _, opt := range opts {
		opt(c)
	}

	diff := config.NewDifficultyManager(cfg.Difficulty)
	c.worlds = make([]*tunnel.World, mode.Players())
	for i := range c.worlds {
		c.worlds[i] = tunnel.NewWorld(cfg, c.newStream(i), diff)
	}
	return c, nil
}

func (c *Controller) checkIndex(world int) error {
	if world < 0 || world >= len(c.worlds) {
		return fmt.Errorf("%w: %d (players: %d)", ErrInvalidWorld, world, len(c.worlds))
	}
	return nil
}

// Jump applies a jump to one world right away. A jump for a world that is
// over is ignored.
func (c *Controller) Jump(world int) error {
	if err := c.checkIndex(world); err != nil {
		return err
	}
	c.worlds[world].Jump()
	return nil
}

// Enqueue queues a jump from any goroutine. It is applied at the start of
// the next Frame.
func (c *Controller) Enqueue(world int) error {
	if err := c.checkIndex(world); err != nil {
		return err
	}
	if !c.queue.Push(world) {
		c.logger.Warn("input queue full, jump dropped", "world", world)
	}
	return nil
}

// Frame advances the match by one tick: queued jumps, then each world in
// index order, then the end-of-match check. It returns each world's events.
func (c *Controller) Frame() []tunnel.FrameEvents {
	for _, w := range c.queue.Drain() {
		c.worlds[w].Jump()
	}

	events := make([]tunnel.FrameEvents, len(c.worlds))
	for i, w := range c.worlds {
		events[i] = w.Update()
		c.logEvents(i, events[i])
	}
	c.frames++

	c.checkEnd()
	return events
}

func (c *Controller) logEvents(world int, ev tunnel.FrameEvents) {
	if ev.Scored > 0 {
		c.logger.Debug("ring passed", "player", world+1, "score", c.worlds[world].Score())
	}
	if ev.ColorChanged > 0 {
		c.logger.Debug("color changed", "player", world+1, "color", c.worlds[world].Ball().ColorIndex)
	}
	if ev.Ended() {
		c.logger.Debug("player out", "player", world+1, "score", c.worlds[world].Score(),
			"crashed", ev.Crashed, "fell", ev.FellOut)
	}
}

// checkEnd notifies listeners once every world is over. Versus matches then
// start over; solo matches wait for Reset.
func (c *Controller) checkEnd() {
	if c.ended {
		return
	}
	for _, w := range c.worlds {
		if !w.GameOver() {
			return
		}
	}

	scores := c.Scores()
	result := MatchResult{
		Mode:   c.mode,
		Scores: scores,
		Winner: WinnerOf(scores),
		Frames: c.frames,
	}
	c.lastResult = &result
	c.ended = true

	c.logger.Info("match ended", "mode", c.mode, "scores", scores, "result", result.Headline())
	c.listeners.MatchEnded(result)

	if c.mode == ModeVersus {
		c.Reset()
	}
}

// Reset starts a new match with fresh worlds. Pending jumps are discarded.
func (c *Controller) Reset() {
	c.queue.Drain()
	for _, w := range c.worlds {
		w.Reset()
	}
	c.frames = 0
	c.ended = false
}

// ResetWorld restarts a single world.
func (c *Controller) ResetWorld(world int) error {
	if err := c.checkIndex(world); err != nil {
		return err
	}
	c.worlds[world].Reset()
	c.ended = false
	return nil
}

// RequestExit forwards an exit request to the listeners.
func (c *Controller) RequestExit() {
	c.logger.Debug("exit requested", "mode", c.mode)
	c.listeners.ExitRequested()
}

// Mode returns the match mode.
func (c *Controller) Mode() Mode { return c.mode }

// Players returns the number of worlds.
func (c *Controller) Players() int { return len(c.worlds) }

// Frames returns the frames simulated in the current match.
func (c *Controller) Frames() uint64 { return c.frames }

// Ended reports whether a solo match has ended and is waiting for Reset.
func (c *Controller) Ended() bool { return c.ended }

// LastResult returns the most recent match result, if any.
func (c *Controller) LastResult() (MatchResult, bool) {
	if c.lastResult == nil {
		return MatchResult{}, false
	}
	return *c.lastResult, true
}

// Scores returns the current score of every world.
func (c *Controller) Scores() []int {
	scores := make([]int, len(c.worlds))
	for i, w := range c.worlds {
		scores[i] = w.Score()
	}
	return scores
}

// Phase returns one world's phase.
func (c *Controller) Phase(world int) (tunnel.Phase, error) {
	if err := c.checkIndex(world); err != nil {
		return tunnel.PhaseNotStarted, err
	}
	return c.worlds[world].Phase(), nil
}

// View returns a render snapshot of one world.
func (c *Controller) View(world int) (tunnel.WorldView, error) {
	if err := c.checkIndex(world); err != nil {
		return tunnel.WorldView{}, err
	}
	return c.worlds[world].View(), nil
}

// Views returns render snapshots of every world in index order.
func (c *Controller) Views() []tunnel.WorldView {
	views := make([]tunnel.WorldView, len(c.worlds))
	for i, w := range c.worlds {
		views[i] = w.View()
	}
	return views
}

// Config returns the tunables the worlds run with.
func (c *Controller) Config() config.TunnelConfig { return c.cfg }

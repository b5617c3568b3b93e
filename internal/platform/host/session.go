// Package host holds the frame loop shared by the terminal and window front
// ends. A Session turns one tick of input into match controller calls and
// keeps what the screen needs on top of the worlds: pause state, the
// result banner and the best score.
package host

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorswitch/internal/config"
	"github.com/vovakirdan/colorswitch/internal/core"
	"github.com/vovakirdan/colorswitch/internal/match"
	"github.com/vovakirdan/colorswitch/internal/render"
	"github.com/vovakirdan/colorswitch/internal/storage"
)

// BannerSeconds is how long a versus result stays on screen.
const BannerSeconds = 3

// Services are the dependencies shared by every match of a session.
// Store and HighScores may be nil; that part of persistence is skipped.
type Services struct {
	Store      *storage.Store
	HighScores *storage.HighScoreManager
	Tunnel     config.TunnelConfig
	Logger     *log.Logger
}

// Log returns the logger, discarding output when none was set.
func (s Services) Log() *log.Logger {
	if s.Logger == nil {
		return log.New(io.Discard)
	}
	return s.Logger
}

// Savers returns the configured result stores.
func (s Services) Savers() []match.ResultSaver {
	var savers []match.ResultSaver
	if s.Store != nil {
		savers = append(savers, s.Store)
	}
	if s.HighScores != nil {
		savers = append(savers, s.HighScores)
	}
	return savers
}

// Session drives one match controller from per-tick input.
// It is not safe for concurrent use.
type Session struct {
	ctrl     *match.Controller
	svc      Services
	tickRate int

	best       int
	banner     string
	bannerLeft int // ticks until a versus banner hides; 0 keeps it up
	paused     bool

	// filled by listener callbacks during Frame and RequestExit
	results []match.MatchResult
	exit    bool
}

// NewSession creates a session running a fresh match in the given mode.
func NewSession(mode match.Mode, svc Services, seed int64, tickRate int) (*Session, error) {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	s := &Session{svc: svc, tickRate: tickRate}

	logger := svc.Log()
	ctrl, err := match.New(mode, svc.Tunnel, seed,
		match.WithLogger(logger),
		// Savers run first so the best score is current when results are read.
		match.WithListener(match.SaveResults(logger, svc.Savers()...)),
		match.WithListener(s),
	)
	if err != nil {
		return nil, fmt.Errorf("host: %w", err)
	}
	s.ctrl = ctrl
	s.best = s.loadBest()
	return s, nil
}

// MatchEnded implements match.Listener.
func (s *Session) MatchEnded(result match.MatchResult) {
	s.results = append(s.results, result)
}

// ExitRequested implements match.Listener.
func (s *Session) ExitRequested() {
	s.exit = true
}

var _ match.Listener = (*Session)(nil)

func (s *Session) loadBest() int {
	if s.svc.HighScores == nil {
		return 0
	}
	best, err := s.svc.HighScores.HighScore(s.ctrl.Mode().String())
	if err != nil {
		s.svc.Log().Warn("cannot load best score", "mode", s.ctrl.Mode(), "err", err)
		return 0
	}
	return best
}

// Step applies one tick of input and advances the match unless paused.
// It returns true once a player asked to leave the match.
func (s *Session) Step(in core.MultiInputFrame) (leave bool) {
	switch {
	case in.Global.Has(core.ActionBack):
		s.ctrl.RequestExit()
	case in.Global.Has(core.ActionRestart):
		if s.ctrl.Ended() {
			s.Restart()
		}
	case in.Global.Has(core.ActionPause):
		if !s.ctrl.Ended() {
			s.paused = !s.paused
		}
	}

	if s.exit {
		s.exit = false
		return true
	}
	if s.paused {
		return false
	}

	s.applyJumps(in)
	s.ctrl.Frame()
	s.collectResults()

	if s.bannerLeft > 0 {
		s.bannerLeft--
		if s.bannerLeft == 0 {
			s.banner = ""
		}
	}
	return false
}

func (s *Session) applyJumps(in core.MultiInputFrame) {
	for world, n := 0, s.ctrl.Players(); world < n; world++ {
		if !in.World(world).Has(core.ActionJump) {
			continue
		}
		if s.ctrl.Ended() {
			// A jump on the solo end screen starts the next match.
			s.Restart()
			return
		}
		if s.bannerLeft > 0 {
			s.banner = ""
			s.bannerLeft = 0
		}
		if err := s.ctrl.Jump(world); err != nil {
			s.svc.Log().Warn("jump rejected", "world", world, "err", err)
		}
	}
}

func (s *Session) collectResults() {
	for _, r := range s.results {
		s.banner = r.Summary()
		if r.Mode == match.ModeVersus {
			s.bannerLeft = BannerSeconds * s.tickRate
		}
		s.best = s.loadBest()
	}
	s.results = s.results[:0]
}

// Restart discards the current match and starts a fresh one.
func (s *Session) Restart() {
	s.ctrl.Reset()
	s.banner = ""
	s.bannerLeft = 0
	s.paused = false
}

// HUD returns the overlay state for render.Draw. Hosts add their own hint.
func (s *Session) HUD() render.HUD {
	return render.HUD{
		Best:   s.best,
		Paused: s.paused,
		Banner: s.banner,
	}
}

// Controller returns the match controller driven by the session.
func (s *Session) Controller() *match.Controller { return s.ctrl }

// Mode returns the match mode.
func (s *Session) Mode() match.Mode { return s.ctrl.Mode() }

// Paused reports whether the simulation is paused.
func (s *Session) Paused() bool { return s.paused }

// Banner returns the result banner on screen, if any.
func (s *Session) Banner() string { return s.banner }

// Best returns the best score for the session's mode.
func (s *Session) Best() int { return s.best }

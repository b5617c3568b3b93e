package match

import "github.com/charmbracelet/log"

// Listener receives match notifications. Both methods are called on the
// goroutine that drives Frame.
type Listener interface {
	// MatchEnded is called once per match with the frozen scores.
	MatchEnded(result MatchResult)

	// ExitRequested is called when a player asks to leave.
	ExitRequested()
}

// ListenerFuncs adapts plain functions to a Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnMatchEnded    func(MatchResult)
	OnExitRequested func()
}

// MatchEnded implements Listener.
func (f ListenerFuncs) MatchEnded(result MatchResult) {
	if f.OnMatchEnded != nil {
		f.OnMatchEnded(result)
	}
}

// ExitRequested implements Listener.
func (f ListenerFuncs) ExitRequested() {
	if f.OnExitRequested != nil {
		f.OnExitRequested()
	}
}

// multiListener fans a notification out to several listeners in order.
type multiListener []Listener

func (m multiListener) MatchEnded(result MatchResult) {
	for _, l := range m {
		l.MatchEnded(result)
	}
}

func (m multiListener) ExitRequested() {
	for _, l := range m {
		l.ExitRequested()
	}
}

// ResultSaver persists finished matches.
// This allows hosts to plug storage in without the match package knowing it.
type ResultSaver interface {
	SaveResult(result MatchResult) error
}

// SaveResults returns a listener that hands every result to each saver in
// order. Failures are logged and do not stop the other savers.
func SaveResults(logger *log.Logger, savers ...ResultSaver) Listener {
	return ListenerFuncs{
		OnMatchEnded: func(result MatchResult) {
			for _, s := range savers {
				if err := s.SaveResult(result); err != nil && logger != nil {
					logger.Error("cannot save match result", "mode", result.Mode, "err", err)
				}
			}
		},
	}
}

var (
	_ Listener = ListenerFuncs{}
	_ Listener = multiListener(nil)
)

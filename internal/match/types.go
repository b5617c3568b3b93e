// Package match runs one or two tunnel worlds as a single game: it routes
// jump input, detects the end of a match and reports it to a listener.
package match

import "fmt"

// Mode defines how many worlds a match runs.
type Mode int

const (
	// ModeSolo is a single world; the match ends when it is over.
	ModeSolo Mode = iota

	// ModeVersus is two side-by-side worlds on one machine; the match ends
	// when both are over.
	ModeVersus
)

// NoWinner marks a solo result or a tie.
const NoWinner = -1

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeSolo:
		return "solo"
	case ModeVersus:
		return "versus"
	default:
		return "unknown"
	}
}

// Players returns the number of worlds the mode runs.
func (m Mode) Players() int {
	if m == ModeVersus {
		return 2
	}
	return 1
}

// ParseMode converts a mode name back into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "solo", "":
		return ModeSolo, nil
	case "versus":
		return ModeVersus, nil
	default:
		return ModeSolo, fmt.Errorf("match: unknown mode %q", s)
	}
}

// MatchResult contains the outcome of a completed match.
type MatchResult struct {
	Mode   Mode
	Scores []int  // final score per world
	Winner int    // world index, or NoWinner
	Frames uint64 // frames simulated in this match
}

// Tie reports whether a versus match ended level.
func (r MatchResult) Tie() bool {
	return r.Mode == ModeVersus && r.Winner == NoWinner
}

// Score returns the score of world i, or 0 if out of range.
func (r MatchResult) Score(i int) int {
	if i < 0 || i >= len(r.Scores) {
		return 0
	}
	return r.Scores[i]
}

// Best returns the highest score in the result.
func (r MatchResult) Best() int {
	best := 0
	for _, s := range r.Scores {
		best = max(best, s)
	}
	return best
}

// Headline returns the end-of-match banner.
func (r MatchResult) Headline() string {
	if r.Mode != ModeVersus {
		return "GAME OVER"
	}
	switch r.Winner {
	case 0:
		return "PLAYER 1 WINS!"
	case 1:
		return "PLAYER 2 WINS!"
	default:
		return "IT'S A TIE!"
	}
}

// Summary returns the headline with the scores, e.g. "PLAYER 1 WINS! 5 - 3".
func (r MatchResult) Summary() string {
	if r.Mode != ModeVersus {
		return fmt.Sprintf("%s  Score: %d", r.Headline(), r.Score(0))
	}
	return fmt.Sprintf("%s %d - %d", r.Headline(), r.Score(0), r.Score(1))
}

// WinnerOf picks the world with the strictly highest score. One world or a
// tie gives NoWinner.
func WinnerOf(scores []int) int {
	if len(scores) < 2 {
		return NoWinner
	}
	switch {
	case scores[0] > scores[1]:
		return 0
	case scores[1] > scores[0]:
		return 1
	default:
		return NoWinner
	}
}

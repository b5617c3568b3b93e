package match

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestWinnerOf(t *testing.T) {
	tests := []struct {
		name     string
		scores   []int
		expected int
	}{
		{"solo", []int{7}, NoWinner},
		{"player 1", []int{5, 3}, 0},
		{"player 2", []int{2, 9}, 1},
		{"tie", []int{4, 4}, NoWinner},
		{"empty", nil, NoWinner},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := WinnerOf(tc.scores); got != tc.expected {
				t.Errorf("WinnerOf(%v) = %d, expected %d", tc.scores, got, tc.expected)
			}
		})
	}
}

func TestResultSummary(t *testing.T) {
	tests := []struct {
		result   MatchResult
		expected string
	}{
		{MatchResult{Mode: ModeVersus, Scores: []int{5, 3}, Winner: 0}, "PLAYER 1 WINS! 5 - 3"},
		{MatchResult{Mode: ModeVersus, Scores: []int{1, 6}, Winner: 1}, "PLAYER 2 WINS! 1 - 6"},
		{MatchResult{Mode: ModeVersus, Scores: []int{2, 2}, Winner: NoWinner}, "IT'S A TIE! 2 - 2"},
		{MatchResult{Mode: ModeSolo, Scores: []int{9}, Winner: NoWinner}, "GAME OVER  Score: 9"},
	}

	for _, tc := range tests {
		if got := tc.result.Summary(); got != tc.expected {
			t.Errorf("Summary() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeSolo, ModeVersus} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMode("coop"); err == nil {
		t.Error("ParseMode(coop) should fail")
	}
}

func TestInputQueueDropsWhenFull(t *testing.T) {
	q := NewInputQueue(2)
	if !q.Push(0) || !q.Push(1) {
		t.Fatal("first two pushes should fit")
	}
	if q.Push(0) {
		t.Error("push into a full queue should be dropped")
	}

	got := q.Drain()
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("Drain() = %v, expected [0 1]", got)
	}
	if q.Len() != 0 {
		t.Errorf("Len() after drain = %d, expected 0", q.Len())
	}
}

type fakeSaver struct {
	saved []MatchResult
	err   error
}

func (f *fakeSaver) SaveResult(r MatchResult) error {
	f.saved = append(f.saved, r)
	return f.err
}

func TestSaveResultsContinuesAfterError(t *testing.T) {
	failing := &fakeSaver{err: errors.New("disk full")}
	ok := &fakeSaver{}
	l := SaveResults(log.New(io.Discard), failing, ok)

	l.MatchEnded(MatchResult{Mode: ModeSolo, Scores: []int{3}, Winner: NoWinner})
	l.ExitRequested()

	if len(failing.saved) != 1 || len(ok.saved) != 1 {
		t.Errorf("saved = %d, %d; expected 1, 1", len(failing.saved), len(ok.saved))
	}
}

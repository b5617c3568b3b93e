package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/colorswitch/internal/match"
	"github.com/vovakirdan/colorswitch/internal/platform/tui"
)

var (
	flagMatches   int
	flagResetBest bool
	flagClear     bool
	flagScoresTUI bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [solo|versus]",
	Short: "Show high scores",
	Long: `Display the top 10 scores and the best score for a mode (solo by
default). Versus also lists the most recent matches.

Examples:
  colorswitch scores
  colorswitch scores versus --matches 20
  colorswitch scores --tui
  colorswitch scores solo --reset-best
  colorswitch scores versus --clear`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"solo", "versus"},
	RunE:      runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagMatches, "matches", 5, "Recent versus matches to list")
	scoresCmd.Flags().BoolVar(&flagResetBest, "reset-best", false, "Reset the best score for the mode to 0")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the score history for the mode")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in the interactive scoreboard")
}

func runScores(cmd *cobra.Command, args []string) error {
	var name string
	if len(args) > 0 {
		name = args[0]
	}
	mode, err := match.ParseMode(name)
	if err != nil {
		return err
	}

	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(svc, width, height)
		return err
	}

	if flagClear {
		if svc.Store == nil {
			return fmt.Errorf("score history unavailable")
		}
		if err := svc.Store.ClearScores(mode.String()); err != nil {
			return err
		}
		fmt.Printf("Score history for %s cleared.\n", mode)
	}
	if flagResetBest {
		if err := svc.HighScores.Reset(mode.String()); err != nil {
			return err
		}
		fmt.Printf("Best score for %s reset.\n", mode)
	}
	if flagClear || flagResetBest {
		return nil
	}

	best, err := svc.HighScores.HighScore(mode.String())
	if err != nil {
		logger.Warn("cannot read best score", "err", err)
	}

	fmt.Printf("High Scores - %s\n", mode)
	fmt.Println()

	if svc.Store == nil {
		fmt.Println("Score history unavailable.")
		fmt.Printf("Best: %d\n", best)
		return nil
	}

	scores, err := svc.Store.TopScores(mode.String(), 10)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'colorswitch play%s' to set the first high score!\n", versusFlag(mode))
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", best)

	if mode != match.ModeVersus || flagMatches <= 0 {
		return nil
	}
	matches, err := svc.Store.RecentMatches(flagMatches)
	if err != nil {
		return fmt.Errorf("cannot retrieve matches: %w", err)
	}
	if len(matches) == 0 {
		return nil
	}
	fmt.Println()
	fmt.Println("Recent matches")
	for _, rec := range matches {
		fmt.Printf("  %-16s  %3d - %-3d  %s\n",
			rec.Headline(), rec.Score1, rec.Score2, rec.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func versusFlag(mode match.Mode) string {
	if mode == match.ModeVersus {
		return " --versus"
	}
	return ""
}

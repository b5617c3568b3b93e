package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorswitch/internal/match"
	"github.com/vovakirdan/colorswitch/internal/platform/tui"
)

var flagVersus bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a match in the terminal.

Controls:
  Space      - Jump (player 1)
  Up         - Jump (player 2 in versus, player 1 in solo)
  P          - Pause
  R          - Restart (after game over)
  Esc        - Leave the match
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at the lowest level, speeds up as you score
  normal - Start at 30% difficulty
  hard   - Start at 70% difficulty
  fixed  - No progression, plays the config's base tunnel

Examples:
  colorswitch play
  colorswitch play --versus
  colorswitch play --difficulty hard --seed 42`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{interactiveAnnotation: ""},
	RunE:        runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagVersus, "versus", false, "Two players, one keyboard, split screen")
}

// selectedMode returns the mode picked by --versus.
func selectedMode(versus bool) match.Mode {
	if versus {
		return match.ModeVersus
	}
	return match.ModeSolo
}

func runPlay(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	mode := selectedMode(flagVersus)
	logger.Info("starting match", "mode", mode, "seed", flagSeed)
	return tui.Run(mode, svc, runtimeConfig())
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorswitch/internal/platform/window"
)

var (
	flagWindowVersus bool
	flagWidth        int
	flagHeight       int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with vector graphics.

Uses the same controls as the terminal: Space and Up to jump, P to pause,
R to restart and Esc to close the window.

Examples:
  colorswitch window
  colorswitch window --versus --width 1280 --height 720`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagWindowVersus, "versus", false, "Two players, one keyboard, split screen")
	windowCmd.Flags().IntVar(&flagWidth, "width", window.DefaultWidth, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", window.DefaultHeight, "Window height in pixels")
}

func runWindow(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	mode := selectedMode(flagWindowVersus)
	logger.Info("opening window", "mode", mode, "width", flagWidth, "height", flagHeight)
	return window.Run(mode, svc, window.Options{
		Width:    flagWidth,
		Height:   flagHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	})
}

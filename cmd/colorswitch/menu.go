package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorswitch/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive menu",
	Long: `Open the main menu to start solo or versus matches and browse
high scores. Leaving a match returns to the menu.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{interactiveAnnotation: ""},
	RunE:        runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	return tui.RunSession(svc, runtimeConfig())
}

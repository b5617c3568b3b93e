package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorswitch/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tunnel config",
	Long: `Print the tunnel config as YAML after --config and --difficulty are
applied. Save the output to ~/.colorswitch/configs/tunnel.yaml to tune it.

Examples:
  colorswitch config
  colorswitch config --difficulty hard > tunnel.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadTunnel()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// colorswitch is a Color Switch style arcade game: jump a ball through
// rotating rings whose segment matches its color. It runs in the terminal,
// in a desktop window and over SSH.
//
// Usage:
//
//	colorswitch play [--versus]     - Play in the terminal
//	colorswitch window [--versus]   - Play in a desktop window
//	colorswitch menu                - Menu with solo, versus and high scores
//	colorswitch serve               - Start SSH server for remote play
//	colorswitch scores [solo|versus] - Show high scores
//	colorswitch config              - Print the effective tunnel config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.colorswitch/scores.db)
//	--config <path>       - Custom tunnel config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorswitch/internal/config"
)

const defaultDBPath = "~/.colorswitch/scores.db"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string

	logger   *log.Logger
	closeLog = func() error { return nil }
)

func main() {
	err := rootCmd.Execute()
	if cerr := closeLog(); cerr != nil {
		fmt.Fprintln(os.Stderr, cerr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorswitch",
	Short: "Color Switch - jump through rings of your own color",
	Long: `Color Switch is an arcade game: tap to jump your ball upward through
rotating rings. Only the segment that matches the ball's color lets it pass;
color changers between rings switch the ball to the next color.

Available commands:
  play     - Play in the terminal (solo or versus)
  window   - Play in a desktop window
  menu     - Interactive menu
  serve    - Start SSH server for remote play
  scores   - View high scores and recent versus matches
  config   - Print the effective tunnel config

Flag defaults can also come from the environment or a .env file:
  COLORSWITCH_DB, COLORSWITCH_CONFIG, COLORSWITCH_SEED, COLORSWITCH_LOG_LEVEL

Examples:
  colorswitch play
  colorswitch play --versus --difficulty hard
  colorswitch window
  colorswitch serve --ssh :2222
  colorswitch scores versus --matches`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database")
	flags.StringVar(&flagConfig, "config", "", "Path to custom tunnel config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads .env, fills unset flags from the environment and builds the
// logger. It runs before every command.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("db") {
		flagDBPath = config.EnvString(config.EnvDB, flagDBPath)
	}
	if !flags.Changed("config") {
		flagConfig = config.EnvString(config.EnvConfig, flagConfig)
	}
	if !flags.Changed("log-level") {
		flagLogLevel = config.EnvString(config.EnvLogLevel, flagLogLevel)
	}
	if !flags.Changed("seed") {
		seed, err := config.EnvInt64(config.EnvSeed, flagSeed)
		if err != nil {
			return err
		}
		flagSeed = seed
	}

	l, closer, err := newLogger(flagLogLevel, flagLogFile, isInteractive(cmd))
	if err != nil {
		return err
	}
	logger, closeLog = l, closer
	return nil
}

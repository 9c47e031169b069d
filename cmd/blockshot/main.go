// blockshot is a terminal block shooter: aim the launcher, fire colored,
// number and bomb blocks into the grid, merge numbers, match colors and
// keep the bottom row clear.
//
// Usage:
//
//	blockshot list               - List available modes
//	blockshot play [mode]        - Play a mode (default: blockshot)
//	blockshot menu               - Pick a mode interactively
//	blockshot config             - Print the default rule set
//	blockshot config --validate  - Check a config file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 50)
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--config <path>       - Use a custom rule set
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockshot/internal/core"
	"github.com/vovakirdan/blockshot/internal/games/blockshot"
	"github.com/vovakirdan/blockshot/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

// Set up by the root command before any subcommand runs.
var (
	logger    = logging.Discard()
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		//nolint:errcheck // Nothing left to report to
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockshot",
	Short: "Blockshot - a block shooter puzzle for your terminal",
	Long: `Blockshot is a puzzle game played in the terminal. Aim the launcher
at the bottom of the board and fire blocks toward the far wall:

  - number blocks merge with equal numbers and double
  - bombs clear the 3x3 area around where they land
  - three or more touching blocks of one color and kind vanish

The round ends when a block settles in the bottom row.

Available commands:
  list     - Show all modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  config   - Print or validate the rule set

Examples:
  blockshot play
  blockshot play numbers --seed 42
  blockshot menu --log-file ~/.blockshot/blockshot.log
  blockshot config --validate ./configs/blockshot.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rule set YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}

// setup configures logging and hands the shared settings to the game.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	l, closer, err := logging.New(logging.Options{
		Path:  expandHome(flagLogFile),
		Level: flagLogLevel,
	})
	if err != nil {
		return err
	}
	logger, logCloser = l, closer

	blockshot.SetLogger(logger)
	blockshot.SetConfigPath(expandHome(flagConfig))
	return nil
}

// runtimeConfig builds the platform config from the flags and the current
// terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	} else {
		logger.Warn("cannot read terminal size, using defaults", "error", err)
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// expandHome replaces a leading "~/" with the home directory.
func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

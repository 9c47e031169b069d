package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockshot/internal/config"
	"github.com/vovakirdan/blockshot/internal/games/blockshot"
	"github.com/vovakirdan/blockshot/internal/platform/tui"
	"github.com/vovakirdan/blockshot/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode. The mode is a registry ID from
'blockshot list' or a preset name (classic, numbers, colors).

Controls:
  Left/Right, A/D  - Rotate the launcher
  Space/Up/Enter   - Fire the loaded block
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Examples:
  blockshot play
  blockshot play blockshot_numbers
  blockshot play colors --seed 7
  blockshot play --config ./my-rules.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	name := "blockshot"
	if len(args) == 1 {
		name = args[0]
	}

	gameID, err := resolveGame(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'blockshot list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	result, err := tui.Run(game, runtimeConfig(), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: final score %d\n", game.Title(), result.State.Score)
}

// resolveGame accepts a registry ID or a mode preset name.
func resolveGame(name string) (string, error) {
	if registry.Exists(name) {
		return name, nil
	}
	if mode, err := config.ParseMode(name); err == nil {
		if id, ok := blockshot.ModeID(mode); ok {
			return id, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q", name)
}

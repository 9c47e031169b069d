package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockshot/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows every Blockshot mode with a short description.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	games := registry.List()
	out := cmd.OutOrStdout()

	if len(games) == 0 {
		fmt.Fprintln(out, "No modes available.")
		return
	}

	fmt.Fprintln(out, "Available modes:")
	fmt.Fprintln(out)

	idWidth, titleWidth := len("ID"), len("Title")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
		titleWidth = max(titleWidth, len(g.Title))
	}

	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", idWidth, "ID", titleWidth, "Title", "Description")
	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", idWidth, "--", titleWidth, "-----", "-----------")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %-*s  %s\n", idWidth, g.ID, titleWidth, g.Title, g.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'blockshot play <id>' to play a mode.")
}

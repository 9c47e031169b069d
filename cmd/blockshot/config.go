package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockshot/internal/config"
)

var flagValidate string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default rule set or validate a file",
	Long: `Without flags, prints the built-in rule set as YAML. Copy it to
~/.blockshot/configs/blockshot.yaml or ./configs/blockshot.yaml and edit
the values you want to change; missing keys keep their defaults.

With --validate, parses the given file and checks the rules.

Examples:
  blockshot config > ~/.blockshot/configs/blockshot.yaml
  blockshot config --validate ./configs/blockshot.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagValidate, "validate", "", "Config file to check")
}

func runConfig(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	if flagValidate == "" {
		out.Write(config.DefaultYAML()) //nolint:errcheck // Writing to stdout
		return
	}

	path := expandHome(flagValidate)
	cfg, err := config.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	settings, err := cfg.ToSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
		os.Exit(1)
	}

	fmt.Fprintf(out, "%s: ok (%dx%d grid, %d colors, %d kinds)\n",
		path, settings.Rows, settings.Cols, len(settings.Palette), len(settings.Kinds))
}

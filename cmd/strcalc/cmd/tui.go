package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/strcalc/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open an interactive prompt",
	Long: `Open an interactive prompt that evaluates input as you type.

Type \n for a newline. Enter records the result in the history list;
Esc or Ctrl+C quits.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

var tuiRaw bool

func init() {
	tuiCmd.Flags().BoolVar(&tuiRaw, "raw", false, "do not interpret escape sequences")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	escapes := cfg.Input.EscapesEnabled() && !tuiRaw
	if err := tui.Run(tui.WithEscapes(escapes)); err != nil {
		return ioError(fmt.Errorf("tui: %w", err))
	}
	return nil
}

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/strcalc/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the strcalc config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a default config file to the --config path (default .strcalc.json).

Examples:
  strcalc config init
  strcalc config init --force   # overwrite an existing file`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if !configForce {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return ioError(fmt.Errorf("failed to check config: %w", err))
		}
	}

	escapes := true
	format := config.FormatText
	color := true
	debounce := config.DefaultWatchDebounce.String()
	c := config.Default()
	c.Input = &config.InputConfig{Escapes: &escapes}
	c.Output = &config.OutputConfig{Format: &format, Color: &color}
	c.Watch = &config.WatchConfig{Debounce: &debounce}

	if err := config.Save(configPath, c); err != nil {
		return ioError(fmt.Errorf("failed to write config: %w", err))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	payload := map[string]any{
		"path":     configPath,
		"version":  cfg.Version,
		"escapes":  cfg.Input.EscapesEnabled(),
		"format":   cfg.Output.GetFormat(),
		"color":    cfg.Output.ColorEnabled(),
		"debounce": cfg.Watch.GetDebounce().String(),
	}
	return writeJSON(cmd.OutOrStdout(), payload)
}

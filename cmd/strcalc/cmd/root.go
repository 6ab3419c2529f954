package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/strcalc/internal/config"
)

// Version is set at build time via -ldflags.
var Version = "dev"

const (
	exitSuccess   = 0
	exitEvalError = 1
	exitUsage     = 2
	exitIO        = 3
)

var (
	configPath string
	logLevel   string
	noColor    bool

	cfg    = config.Default()
	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "strcalc",
	Short: "Sum delimiter-separated numbers",
	Long: `strcalc sums integers separated by commas or newlines, or by a custom
delimiter declared with a "//<delim>\n" header. Negative numbers are rejected.

Examples:
  strcalc add "1,2,3"          # 6
  strcalc add '1\n2,3'         # 6
  strcalc add '//;\n1;2'       # 3
  strcalc watch numbers.txt    # re-evaluate on every save
  strcalc tui                  # interactive prompt`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
}

// exitError carries a process exit code through cobra's error return.
// A nil err means the command already reported the failure.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func ioError(err error) error {
	return &exitError{code: exitIO, err: err}
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			if ee.err != nil {
				fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", ee.err)
			}
			return ee.code
		}
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return exitUsage
	}
	return exitSuccess
}

func setup(cmd *cobra.Command, args []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q", logLevel)
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	// config init must be able to replace a broken file.
	if cmd == configInitCmd {
		return nil
	}

	loaded, err := config.LoadOrDefault(configPath)
	if err != nil {
		return ioError(fmt.Errorf("failed to load config: %w", err))
	}
	cfg = loaded
	logger.Debug("config loaded", "path", configPath, "format", cfg.Output.GetFormat())
	return nil
}

func colorEnabled() bool {
	return !noColor && cfg.Output.ColorEnabled() && os.Getenv("NO_COLOR") == ""
}

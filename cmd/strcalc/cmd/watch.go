package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/strcalc/internal/calculator"
	"github.com/pengelbrecht/strcalc/internal/config"
	"github.com/pengelbrecht/strcalc/internal/input"
	"github.com/pengelbrecht/strcalc/internal/styles"
	"github.com/pengelbrecht/strcalc/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-evaluate a file whenever it changes",
	Long: `Watch a file and print its sum every time it is saved.

Runs until interrupted with Ctrl+C.

Examples:
  strcalc watch numbers.txt
  strcalc watch numbers.txt --json --debounce 250ms`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

var (
	watchJSON     bool
	watchDebounce time.Duration
)

func init() {
	watchCmd.Flags().BoolVar(&watchJSON, "json", false, "output JSONL, one result per change")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 0, "wait this long after the last change (default from config, 100ms)")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	debounce := cfg.Watch.GetDebounce()
	if watchDebounce > 0 {
		debounce = watchDebounce
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := watch.NewFileWatcher(args[0], watch.WithDebounce(debounce), watch.WithLogger(logger))
	if err := w.Start(); err != nil {
		return ioError(fmt.Errorf("failed to watch %s: %w", args[0], err))
	}
	defer w.Stop()

	asJSON := watchJSON || cfg.Output.GetFormat() == config.FormatJSON
	return watchLoop(ctx, w.Events(), cmd.OutOrStdout(), asJSON)
}

// watchEvent is the JSONL shape of a watch result.
type watchEvent struct {
	Time  time.Time `json:"time"`
	Event string    `json:"event"`
	result
}

func watchLoop(ctx context.Context, events <-chan watch.Event, out io.Writer, asJSON bool) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := printWatchEvent(out, ev, asJSON); err != nil {
				return err
			}
		}
	}
}

func printWatchEvent(out io.Writer, ev watch.Event, asJSON bool) error {
	now := time.Now()

	if ev.Type == watch.Removed {
		if asJSON {
			return writeJSON(out, watchEvent{Time: now, Event: ev.Type.String()})
		}
		fmt.Fprintln(out, render(styles.RenderDim(now.Format("15:04:05")+" "+ev.Path+" removed")))
		return nil
	}

	sum, err := calculator.Add(input.TrimLineEnding(ev.Content))
	if asJSON {
		return writeJSON(out, watchEvent{Time: now, Event: ev.Type.String(), result: newResult(sum, err)})
	}

	line := styles.RenderSuccess(fmt.Sprint(sum))
	if err != nil {
		line = styles.RenderError(err.Error())
	}
	fmt.Fprintln(out, render(styles.RenderDim(now.Format("15:04:05"))+" "+line))
	return nil
}

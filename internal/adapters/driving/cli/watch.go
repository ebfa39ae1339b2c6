package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akashic-archives/cartographer/internal/core/ports/driven"
)

var errWatchUnsupported = errors.New("the configured backend cannot be watched")

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Report topics as their documents change",
	Long: `Watch the archive root and print the topic id of every record set that
is written or removed. Only the file backend can be watched. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return watchArchive(commandContext(cmd), newPrinter(cmd.OutOrStdout()))
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func watchArchive(ctx context.Context, p *printer) error {
	if changeWatcher == nil {
		return errWatchUnsupported
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driven.ChangeEvent, 16)
	done := make(chan error, 1)
	go func() {
		done <- changeWatcher.Watch(ctx, events)
	}()

	fmt.Fprintf(p.w, "Watching %s for changes...\n", effective.Root)
	for {
		select {
		case ev := <-events:
			renderChange(p, ev)
		case err := <-done:
			drainChanges(p, events)
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("watching archive: %w", err)
			}
			return nil
		}
	}
}

// drainChanges prints events still buffered after the watcher returned.
func drainChanges(p *printer, events <-chan driven.ChangeEvent) {
	for {
		select {
		case ev := <-events:
			renderChange(p, ev)
		default:
			return
		}
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/josiewhittington/Regular-Expression-Call-Numbers/internal/logging"
	"github.com/josiewhittington/Regular-Expression-Call-Numbers/internal/ui"
	"github.com/josiewhittington/Regular-Expression-Call-Numbers/internal/watcher"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-sort and reprint whenever the shelf list changes",
		Long: `Watch a shelf list and print the sorted records again after every
change on disk. A failing sort (malformed line, invalid call number)
is reported and the previous output stands until the file is fixed.

Press Ctrl+C to stop.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if noColor || !cfg.Output.Color {
				ui.DisableColors()
			}
			if debounce == 0 {
				debounce = time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
			}

			logCfg := cfg.Logging
			if verbose {
				logCfg.Level = "debug"
			}
			log, err := logging.New(logCfg)
			if err != nil {
				return err
			}
			defer log.Close()

			return runWatch(args[0], debounce, cfg.Output.Table, log)
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", 0, "delay after the last change before re-sorting")

	return cmd
}

// reloader adapts sortFile to the watcher's Handler interface. Sort
// failures are reported but do not stop the watch; the file will
// usually be mid-edit.
type reloader struct {
	out   io.Writer
	table bool
}

func (r *reloader) Reload(path string) error {
	ui.Section("resorted " + time.Now().Format("15:04:05"))
	if err := sortFile(path, r.out, r.table); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.Error("✗"), err)
		return err
	}
	return nil
}

func runWatch(path string, debounce time.Duration, table bool, log *logging.Logger) error {
	handler := &reloader{out: os.Stdout, table: table}

	// Initial sort before the first change; a broken file is not fatal
	// here, watching exists to catch the fix.
	if err := sortFile(path, handler.out, table); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.Error("✗"), err)
	}

	w, err := watcher.New(path, handler,
		watcher.WithDebounce(debounce),
		watcher.WithLogger(log))
	if err != nil {
		return err
	}
	defer w.Close()

	log.Info("watch", "watching shelf list", logging.F("path", path))
	fmt.Fprintf(os.Stderr, "%s\n", ui.Dim("watching "+path+" (Ctrl+C to stop)"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

package cli

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dotdoc-tools/dotdoc/internal/extract"
	"github.com/dotdoc-tools/dotdoc/internal/watcher"
)

var errNoWatchOutput = errors.New("watch mode needs an output file: set output.path in config or pass --out")

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Re-extract documentation whenever sources change",
	Long: `Watch extracts the tree once, then monitors it for changes to
supported source files and re-runs extraction after each quiet period.
Requires an output file (config output.path or --out).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		return runWatch(cmd.Context(), root)
	},
}

func init() {
	watchCmd.Flags().StringVarP(&extractFormat, "format", "f", "", "output format: json, yaml, or html (default from config)")
	watchCmd.Flags().StringVarP(&extractOut, "out", "o", "", "output file (required unless set in config)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(ctx context.Context, root string) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if cfg.Output.Path == "" {
		return errNoWatchOutput
	}

	rebuild := func() {
		units, err := extractTree(ctx, root, cfg)
		if err != nil {
			log.Printf("extraction finished with errors: %v", err)
		}
		if err := writeOutput(cfg, units); err != nil {
			log.Printf("write failed: %v", err)
		} else {
			log.Printf("wrote %s (%d source units)", cfg.Output.Path, len(units))
		}
	}

	rebuild()

	w, err := watcher.New(root, extract.Extensions())
	if err != nil {
		return err
	}
	defer w.Stop()

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := w.Start(watchCtx, func(files []string) {
		log.Printf("%d file(s) changed, re-extracting", len(files))
		rebuild()
	}); err != nil {
		return err
	}

	log.Printf("watching %s for changes (Ctrl-C to stop)", root)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sigCh:
	case <-ctx.Done():
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotdoc-tools/dotdoc/internal/config"
	"github.com/dotdoc-tools/dotdoc/internal/discovery"
	"github.com/dotdoc-tools/dotdoc/internal/docmodel"
	"github.com/dotdoc-tools/dotdoc/internal/extract"
	"github.com/dotdoc-tools/dotdoc/internal/render"
)

var (
	extractFormat  string
	extractOut     string
	extractWorkers int
)

var extractCmd = &cobra.Command{
	Use:   "extract [path]",
	Short: "Extract documentation from a source tree",
	Long: `Extract walks the given directory (default: current directory),
parses every supported source file, and renders the extracted
documentation model.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		return runExtract(cmd.Context(), root)
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "", "output format: json, yaml, or html (default from config)")
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "output file (default from config, stdout when unset)")
	extractCmd.Flags().IntVar(&extractWorkers, "workers", 0, "concurrent files (default from config)")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(ctx context.Context, root string) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	units, err := extractTree(ctx, root, cfg)
	if err != nil {
		// Per-file failures are reported but do not abort the run; the
		// collected units still render below.
		log.Printf("extraction finished with errors: %v", err)
	}

	return writeOutput(cfg, units)
}

// extractTree discovers and extracts every supported file under root.
func extractTree(ctx context.Context, root string, cfg *config.Config) ([]*docmodel.SourceUnit, error) {
	fd, err := discovery.New(root, cfg.Paths.Include, cfg.Paths.Ignore)
	if err != nil {
		return nil, fmt.Errorf("invalid path patterns: %w", err)
	}

	files, err := fd.Discover()
	if err != nil {
		return nil, fmt.Errorf("file discovery failed: %w", err)
	}

	progress := newProgressReporter(quiet)
	progress.onStart(len(files))

	runner := extract.NewRunner(cfg.Extract.Workers)
	units, err := runner.Run(ctx, files, func(path string) {
		progress.onFile(path)
	})
	progress.onDone()

	return units, err
}

// loadConfig merges the config file under root with command-line overrides.
func loadConfig(root string) (*config.Config, error) {
	cfg, err := config.NewLoader(root).Load()
	if err != nil {
		return nil, err
	}
	if extractFormat != "" {
		cfg.Output.Format = extractFormat
	}
	if extractOut != "" {
		cfg.Output.Path = extractOut
	}
	if extractWorkers > 0 {
		cfg.Extract.Workers = extractWorkers
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func writeOutput(cfg *config.Config, units []*docmodel.SourceUnit) error {
	renderer, err := render.ForFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if cfg.Output.Path != "" {
		f, err := os.Create(cfg.Output.Path)
		if err != nil {
			return fmt.Errorf("cannot create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := renderer.Render(w, units); err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}
	if verbose && cfg.Output.Path != "" {
		log.Printf("wrote %s (%d source units)", cfg.Output.Path, len(units))
	}
	return nil
}

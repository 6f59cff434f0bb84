package extract

import (
	"context"
	"errors"
	"sync"

	"github.com/dotdoc-tools/dotdoc/internal/docmodel"
)

// Runner extracts many files with a bounded worker pool. The engine itself
// is pure and synchronous per file, so workers share nothing but the input
// list and the result slots.
type Runner struct {
	workers int
}

// NewRunner creates a runner with the given concurrency. Values below one
// fall back to serial extraction.
func NewRunner(workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{workers: workers}
}

// Run extracts every file, preserving input order in the result. Files in
// unsupported grammars are skipped. Per-file failures do not stop the run;
// they are joined into the returned error alongside any partial units.
// onFile, when non-nil, is called once per finished file.
func (r *Runner) Run(ctx context.Context, files []string, onFile func(path string)) ([]*docmodel.SourceUnit, error) {
	results := make([]*docmodel.SourceUnit, len(files))
	errs := make([]error, len(files))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				path := files[i]
				extractor, ok := ForFile(path)
				if !ok {
					continue
				}
				unit, err := extractor.ParseFile(ctx, path)
				results[i] = unit
				errs[i] = err
				if onFile != nil {
					onFile(path)
				}
			}
		}()
	}

	for i := range files {
		select {
		case jobs <- i:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return compact(results), ctx.Err()
		}
	}
	close(jobs)
	wg.Wait()

	return compact(results), errors.Join(errs...)
}

func compact(units []*docmodel.SourceUnit) []*docmodel.SourceUnit {
	out := make([]*docmodel.SourceUnit, 0, len(units))
	for _, u := range units {
		if u != nil {
			out = append(out, u)
		}
	}
	return out
}

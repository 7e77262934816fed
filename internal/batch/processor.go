// Package batch parses many statement files with a pool of workers while
// handing results back in input order.
package batch

import (
	"context"
	"runtime"
	"sync"
	"time"

	"fjacquet/tdstatement/internal/logging"
	"fjacquet/tdstatement/internal/models"
)

// ParseFunc parses a single document.
type ParseFunc func(ctx context.Context, path string) (*models.Document, error)

// Result is the outcome of parsing one input. Exactly one of Document and
// Err is set.
type Result struct {
	Index    int
	Path     string
	Document *models.Document
	Err      error
	Duration time.Duration
}

// Summary counts the outcomes of a run.
type Summary struct {
	Processed  int
	Failed     int
	Duplicates int
}

// Processor runs ParseFunc over many paths. A failing document never stops
// the others.
type Processor struct {
	logger      logging.Logger
	workerCount int
}

// NewProcessor creates a processor with the given number of workers. A value
// below one uses the number of CPUs.
func NewProcessor(logger logging.Logger, workers int) *Processor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "json")
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Processor{
		logger:      logger,
		workerCount: workers,
	}
}

// Workers returns the configured pool size.
func (p *Processor) Workers() int {
	return p.workerCount
}

// Run parses every path and calls emit once per path, in input order, as
// soon as that result and all results before it are available. Paths not
// started before ctx is cancelled are reported with ctx.Err().
func (p *Processor) Run(ctx context.Context, paths []string, parse ParseFunc, emit func(Result)) Summary {
	var summary Summary
	if len(paths) == 0 {
		return summary
	}

	workers := p.workerCount
	if workers > len(paths) {
		workers = len(paths)
	}

	jobs := make(chan int, workers)
	results := make(chan Result, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go p.worker(ctx, &wg, paths, jobs, results, parse)
	}

	go func() {
		defer close(jobs)
		for i := range paths {
			select {
			case jobs <- i:
			case <-ctx.Done():
				for j := i; j < len(paths); j++ {
					results <- Result{Index: j, Path: paths[j], Err: ctx.Err()}
				}
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	// Results arrive out of order; hold them until their predecessors are out.
	pending := make(map[int]Result)
	next := 0
	seen := make(map[string]string)
	for r := range results {
		pending[r.Index] = r
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			p.account(&summary, seen, ready)
			if emit != nil {
				emit(ready)
			}
		}
	}

	p.logger.Debug("Batch processing completed",
		logging.Field{Key: logging.FieldCount, Value: len(paths)},
		logging.Field{Key: logging.FieldWorkers, Value: workers})
	return summary
}

// Collect runs all paths and returns the results in input order.
func (p *Processor) Collect(ctx context.Context, paths []string, parse ParseFunc) ([]Result, Summary) {
	out := make([]Result, 0, len(paths))
	summary := p.Run(ctx, paths, parse, func(r Result) {
		out = append(out, r)
	})
	return out, summary
}

// worker processes indexes from the jobs channel.
func (p *Processor) worker(ctx context.Context, wg *sync.WaitGroup, paths []string, jobs <-chan int, results chan<- Result, parse ParseFunc) {
	defer wg.Done()

	for i := range jobs {
		if err := ctx.Err(); err != nil {
			results <- Result{Index: i, Path: paths[i], Err: err}
			continue
		}
		results <- p.parseOne(ctx, i, paths[i], parse)
	}
}

func (p *Processor) parseOne(ctx context.Context, index int, path string, parse ParseFunc) (res Result) {
	start := time.Now()
	res = Result{Index: index, Path: path}
	defer func() {
		if r := recover(); r != nil {
			res.Document = nil
			res.Err = &PanicError{Path: path, Value: r}
		}
		res.Duration = time.Since(start)
	}()

	res.Document, res.Err = parse(ctx, path)
	if res.Err != nil {
		res.Document = nil
	}
	return res
}

// account updates the summary and warns about inputs whose content was
// already seen under another path.
func (p *Processor) account(summary *Summary, seen map[string]string, r Result) {
	if r.Err != nil {
		summary.Failed++
		return
	}
	summary.Processed++

	hash := r.Document.Identity.Hash
	if hash == "" {
		return
	}
	if first, ok := seen[hash]; ok {
		summary.Duplicates++
		p.logger.Warn("Duplicate statement content",
			logging.Field{Key: logging.FieldFile, Value: r.Path},
			logging.Field{Key: "duplicate_of", Value: first})
		return
	}
	seen[hash] = r.Path
}

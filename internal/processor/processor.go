// Package processor runs the transcode pipeline: it fans files out to a
// fixed pool of workers, collects their outcomes in a single goroutine and
// replaces originals that got smaller.
package processor

import (
	"context"
	"fmt"
	"os"
	"sync"

	"decoreco/internal/collector"
	"decoreco/internal/transcode"
)

// Run transcodes every file with tc and returns the aggregated summary.
// Per-file failures are recorded in the summary and never stop other
// workers. When updates is non-nil one ProgressUpdate is sent per file.
func Run(ctx context.Context, files []collector.Candidate, tc transcode.Transcoder, opts Options, updates chan<- ProgressUpdate) (*RunSummary, error) {
	summary := &RunSummary{}
	if opts.Scratch == nil {
		return summary, fmt.Errorf("%w: not initialised", ErrScratch)
	}
	if opts.Size == nil {
		opts.Size = StatSize
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(files) && len(files) > 0 {
		workers = len(files)
	}

	jobs := make(chan FileTask)
	results := make(chan JobOutcome)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			worker(ctx, jobs, results, tc, opts)
		}()
	}

	collectorDone := make(chan struct{})
	go func() {
		defer close(collectorDone)
		for res := range results {
			summary.record(res)
			if updates != nil {
				updates <- progressFor(res)
			}
		}
	}()

	producerErr := make(chan error, 1)
	go func() {
		defer close(jobs)
		for i, f := range files {
			task := FileTask{
				Source:  f.Path,
				Scratch: opts.Scratch.Path(i, transcode.ScratchExt(f.Path, opts.Mode)),
				Ordinal: i,
			}
			select {
			case jobs <- task:
			case <-ctx.Done():
				producerErr <- ctx.Err()
				return
			}
		}
		producerErr <- nil
	}()

	wg.Wait()
	close(results)
	<-collectorDone

	if err := <-producerErr; err != nil {
		return summary, err
	}
	if err := ctx.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}

func worker(ctx context.Context, jobs <-chan FileTask, results chan<- JobOutcome, tc transcode.Transcoder, opts Options) {
	for task := range jobs {
		results <- process(ctx, task, tc, opts)
	}
}

// process drives one file through encode, compare and replace.
func process(ctx context.Context, task FileTask, tc transcode.Transcoder, opts Options) JobOutcome {
	out := JobOutcome{Task: task, Status: StatusFailed, State: StateFailed}

	if err := tc.Encode(ctx, task.Source, task.Scratch, opts.Mode); err != nil {
		discard(task.Scratch)
		out.Err = err
		return out
	}

	origSize, err := opts.Size(task.Source)
	if err != nil {
		discard(task.Scratch)
		out.Err = fmt.Errorf("size of %s: %w", task.Source, err)
		return out
	}
	newSize, err := opts.Size(task.Scratch)
	if err != nil {
		discard(task.Scratch)
		out.Err = fmt.Errorf("size of encoded %s: %w", task.Source, err)
		return out
	}
	out.OriginalSize = origSize
	out.NewSize = newSize

	if newSize >= origSize {
		discard(task.Scratch)
		out.Status = StatusNotImproved
		out.State = StateNotImproved
		return out
	}

	if opts.DryRun {
		discard(task.Scratch)
		out.Status = StatusImproved
		out.State = StateDryRunSkipped
		return out
	}

	if err := Replace(task.Scratch, task.Source, opts.Mode); err != nil {
		discard(task.Scratch)
		out.Err = fmt.Errorf("replace %s: %w", task.Source, err)
		return out
	}
	out.Status = StatusImproved
	out.State = StateReplaced
	return out
}

// discard drops a scratch output early; Scratch.Close sweeps anything left.
func discard(path string) {
	_ = os.Remove(path)
}

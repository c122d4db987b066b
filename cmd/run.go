package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"decoreco/internal/collector"
	"decoreco/internal/config"
	"decoreco/internal/display"
	"decoreco/internal/logging"
	"decoreco/internal/processor"
	"decoreco/internal/term"
	"decoreco/internal/transcode"
	"decoreco/internal/tui"
)

// run collects the files and either lists them or transcodes them.
func run(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	mode := cfg.Mode()

	if len(cfg.Set) == 0 {
		log.Info("searching for media files in %s", cfg.Path)
	}
	files, err := collector.Collect(collector.Options{
		Root:       cfg.Path,
		Set:        cfg.Set,
		Extensions: mode.Extensions(),
		MaxDepth:   cfg.MaxDepth,
		Sort:       cfg.Sort,
		Reverse:    cfg.Reverse,
	}, log)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		fmt.Fprintln(os.Stdout, "no files found!")
		return nil
	}
	log.Info("found %d file%s!", len(files), display.Plural(len(files)))

	if cfg.List {
		return listFiles(files, mode, log)
	}

	if err := transcode.CheckDeps(mode); err != nil {
		return err
	}
	return transcodeFiles(ctx, cfg, mode, files, log)
}

func transcodeFiles(ctx context.Context, cfg *config.Config, mode config.EncodeMode, files []collector.Candidate, log *logging.Logger) (err error) {
	runID := uuid.NewString()[:8]
	scratch, err := processor.NewScratch(runID)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := scratch.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()
	log.Debug("run %s using scratch area %s", runID, scratch.Dir())

	workers := cfg.Workers()
	rows := []tui.SummaryRow{
		{Label: "mode", Value: mode.String()},
		{Label: "workers", Value: strconv.Itoa(workers)},
		{Label: "files", Value: strconv.Itoa(len(files))},
		{Label: "total size", Value: display.FormatBytes(collector.TotalSize(files))},
	}
	if cfg.DryRun {
		rows = append(rows, tui.SummaryRow{Label: "dry run", Value: "originals are left untouched", Warn: true})
	}
	fmt.Fprintln(os.Stdout, tui.RenderSummary("decoreco "+version, rows))
	if cfg.DryRun {
		log.Warn("dry run enabled, no files will be modified.")
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	start := time.Now()
	updates := make(chan processor.ProgressUpdate, 64)
	interactive := !cfg.Plain && term.Interactive()

	uiDone := make(chan struct{})
	if interactive {
		program := tea.NewProgram(tui.NewModel(updates, len(files), cfg.DryRun, cancel))
		go func() {
			_, _ = program.Run()
			for range updates {
			}
			close(uiDone)
		}()
	} else {
		reporter := tui.NewPlainReporter(len(files), os.Stderr, log)
		go func() {
			reporter.Run(updates)
			close(uiDone)
		}()
	}

	summary, runErr := processor.Run(runCtx, files, transcode.NewExec(), processor.Options{
		Mode:    mode,
		Workers: workers,
		DryRun:  cfg.DryRun,
		Scratch: scratch,
	}, updates)
	close(updates)
	<-uiDone
	elapsed := time.Since(start)

	// The plain reporter logs failures as they happen.
	if interactive {
		logFailures(log, summary.Failures)
	}
	printReport(summary, elapsed, cfg.DryRun, log)

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			return errors.New("interrupted")
		}
		return runErr
	}
	return nil
}

func logFailures(log *logging.Logger, failures []processor.Failure) {
	for _, f := range failures {
		tui.LogFailure(log, f.Path, f.Err)
	}
}

func printReport(summary *processor.RunSummary, elapsed time.Duration, dryRun bool, log *logging.Logger) {
	width := term.Width()

	fmt.Fprintln(os.Stdout, "done.")
	fmt.Fprintln(os.Stdout, tui.Rule(width))
	log.Info("%d replaced, %d dry-run skipped, %d not improved, %d failed",
		summary.Replaced, summary.DryRunSkipped, summary.NotImproved, len(summary.Failures))

	if summary.SavedBytes == 0 {
		fmt.Fprintln(os.Stdout, "no files were compressed.")
	} else {
		fmt.Fprintln(os.Stdout, tui.SavedLine(summary))
		if dryRun {
			fmt.Fprintln(os.Stdout, "files that would be compressed:")
		} else {
			fmt.Fprintln(os.Stdout, "files compressed:")
		}
		fmt.Fprintln(os.Stdout, tui.RenderReport(summary, width))
	}

	fmt.Fprintf(os.Stdout, "took %s total, on average %s per MB\n",
		tui.Highlight(display.FormatDuration(elapsed)),
		tui.Highlight(display.FormatDuration(display.PerMB(elapsed, summary.TotalBytes))),
	)
}

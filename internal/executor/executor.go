package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/aoc2022/internal/ctxlog"
	"github.com/specialistvlad/aoc2022/internal/puzzle"
	"golang.org/x/sync/errgroup"
)

// Job is one unit of work: a named call that yields answer parts.
type Job struct {
	Name string
	Day  int
	Run  func(ctx context.Context) ([]puzzle.Part, error)
}

// Result is the outcome of a successful job.
type Result struct {
	Name     string
	Day      int
	Parts    []puzzle.Part
	Duration time.Duration
}

// Executor is responsible for orchestrating the execution of a batch of jobs.
type Executor struct {
	workers int
}

// New creates an executor with the given worker count. Counts below one are
// treated as one.
func New(workers int) *Executor {
	if workers < 1 {
		workers = 1
	}
	return &Executor{workers: workers}
}

// Run executes jobs and returns their results in input order. It stops at
// the first failure.
func (e *Executor) Run(ctx context.Context, jobs []Job) ([]*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Executor starting run.", "jobs", len(jobs), "workers", e.workers)

	results := make([]*Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				logger.Debug("Skipping job after cancellation.", "job", job.Name)
				return err
			}
			jobCtx := ctxlog.With(gctx, "job", job.Name, "day", job.Day)
			jobLogger := ctxlog.FromContext(jobCtx)

			start := time.Now()
			parts, err := job.Run(jobCtx)
			if err != nil {
				jobLogger.Error("Job failed.", "error", err)
				return fmt.Errorf("run %q (day %d): %w", job.Name, job.Day, err)
			}
			elapsed := time.Since(start)
			jobLogger.Debug("Job finished.", "duration", elapsed)

			results[i] = &Result{Name: job.Name, Day: job.Day, Parts: parts, Duration: elapsed}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Debug("Executor finished run.")
	return results, nil
}

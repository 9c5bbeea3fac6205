package app

import (
	"context"
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/aoc2022/internal/ctxlog"
	"github.com/specialistvlad/aoc2022/internal/executor"
	"github.com/specialistvlad/aoc2022/internal/fsutil"
	"github.com/specialistvlad/aoc2022/internal/puzzle"
	"github.com/specialistvlad/aoc2022/internal/registry"
	"github.com/specialistvlad/aoc2022/internal/report"
)

// task is one resolved puzzle run.
type task struct {
	name    string // manifest label, empty for days named on the command line
	puzzle  *registry.Puzzle
	example bool
	input   string // input file, unused when example is set
	params  map[string]hcl.Expression
}

func (t *task) jobName() string {
	if t.name != "" {
		return t.name
	}
	return fmt.Sprintf("day%02d", t.puzzle.Day)
}

// Run executes the main application logic based on the configuration the
// App was built with.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	tasks, err := a.plan(ctx)
	if err != nil {
		return err
	}

	jobs := make([]executor.Job, len(tasks))
	for i, t := range tasks {
		jobs[i] = executor.Job{
			Name: t.jobName(),
			Day:  t.puzzle.Day,
			Run:  func(ctx context.Context) ([]puzzle.Part, error) { return a.solve(ctx, t) },
		}
	}

	a.logger.Info("Solving puzzles.", "runs", len(jobs), "workers", a.config.Workers)
	results, err := executor.New(a.config.Workers).Run(ctx, jobs)
	if err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	answers := make([]*puzzle.Answer, len(results))
	for i, res := range results {
		t := tasks[i]
		answers[i] = &puzzle.Answer{
			Run:     t.name,
			Day:     t.puzzle.Day,
			Title:   t.puzzle.Title,
			Example: t.example,
			Parts:   res.Parts,
		}
		a.logger.Debug("Run finished.", "run", res.Name, "duration", res.Duration)
	}

	if err := report.Write(a.outW, a.config.Format, answers); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// plan turns the configuration into the list of runs to execute.
//
// Days named on the command line select manifest runs for those days; a
// named day without a manifest run gets a default run. Without days every
// manifest run is executed, and without a manifest the latest day is run.
func (a *App) plan(ctx context.Context) ([]*task, error) {
	logger := ctxlog.FromContext(ctx)

	days := dedupe(a.config.Days)
	if len(days) == 0 && a.manifest == nil {
		latest, ok := a.registry.Latest()
		if !ok {
			return nil, fmt.Errorf("no puzzles are registered")
		}
		logger.Info("No day given, running the latest one.", "day", latest.Day)
		days = []int{latest.Day}
	}

	var tasks []*task
	if len(days) == 0 {
		if len(a.manifest.Runs) == 0 {
			return nil, fmt.Errorf("manifest declares no runs")
		}
		for _, run := range a.manifest.Runs {
			t, err := a.manifestTask(run.Day, run.Name, run.Example, run.Input, run.Params)
			if err != nil {
				return nil, err
			}
			tasks = append(tasks, t)
		}
		return tasks, nil
	}

	for _, day := range days {
		matched := false
		if a.manifest != nil {
			for _, run := range a.manifest.Runs {
				if run.Day != day {
					continue
				}
				t, err := a.manifestTask(run.Day, run.Name, run.Example, run.Input, run.Params)
				if err != nil {
					return nil, err
				}
				tasks = append(tasks, t)
				matched = true
			}
		}
		if matched {
			continue
		}
		p, err := a.lookup(day)
		if err != nil {
			return nil, err
		}
		input := a.config.InputPath
		if input == "" {
			input = fsutil.InputPath(a.config.InputsDir, day)
		}
		tasks = append(tasks, &task{puzzle: p, example: a.config.Example, input: input})
	}
	return tasks, nil
}

// manifestTask resolves one manifest run. The manifest's inputs_dir takes
// precedence over the configured one, and --example forces the example input.
func (a *App) manifestTask(day int, name string, example bool, input string, params map[string]hcl.Expression) (*task, error) {
	p, err := a.lookup(day)
	if err != nil {
		return nil, fmt.Errorf("run %q: %w", name, err)
	}
	example = example || a.config.Example
	if input == "" {
		dir := a.config.InputsDir
		if a.manifest.InputsDir != "" {
			dir = a.manifest.InputsDir
		}
		input = fsutil.InputPath(dir, day)
	}
	return &task{name: name, puzzle: p, example: example, input: input, params: params}, nil
}

func (a *App) lookup(day int) (*registry.Puzzle, error) {
	p, ok := a.registry.Lookup(day)
	if !ok {
		return nil, fmt.Errorf("day %d is not implemented (available: %v)", day, a.registry.Days())
	}
	return p, nil
}

// solve reads the input of t, binds its params and calls the puzzle.
func (a *App) solve(ctx context.Context, t *task) ([]puzzle.Part, error) {
	logger := ctxlog.FromContext(ctx)

	input := t.puzzle.Example
	if !t.example {
		var err error
		if input, err = fsutil.ReadInput(t.input); err != nil {
			return nil, err
		}
	}
	logger.Debug("Input resolved.", "example", t.example, "bytes", len(input))

	var params any
	switch {
	case t.puzzle.NewParams != nil:
		params = t.puzzle.NewParams()
		if len(t.params) > 0 {
			if a.converter == nil {
				return nil, fmt.Errorf("params given but no converter is configured")
			}
			if err := a.converter.DecodeParams(ctx, params, t.params); err != nil {
				return nil, fmt.Errorf("invalid params: %w", err)
			}
		}
		logger.Debug("Params bound.", "params", fmt.Sprintf("%+v", params))
	case len(t.params) > 0:
		return nil, fmt.Errorf("day %d takes no params", t.puzzle.Day)
	}

	return t.puzzle.Solve(ctx, input, params)
}

// dedupe drops repeated days while keeping the first occurrence order.
func dedupe(days []int) []int {
	out := make([]int, 0, len(days))
	for _, d := range days {
		if !slices.Contains(out, d) {
			out = append(out, d)
		}
	}
	return out
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/specialistvlad/aoc2022/internal/app"
	"github.com/specialistvlad/aoc2022/internal/cli"
	"github.com/specialistvlad/aoc2022/internal/hcl"
)

// main is the entrypoint for the aoc application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Answers go to outW; logs and usage go to errW.
func run(ctx context.Context, outW, errW io.Writer, args []string) (err error) {
	appConfig, action, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if action == cli.ActionExit {
		return nil
	}

	// NewApp panics when a puzzle's params cannot be bound, so we recover
	// here to provide a clean error to the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	aocApp, err := app.NewApp(outW, errW, appConfig, hcl.NewLoader(), hcl.NewConverter())
	if err != nil {
		return err
	}
	if action == cli.ActionList {
		return aocApp.List()
	}
	return aocApp.Run(ctx)
}

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/specialistvlad/aoc2022/internal/app"
	"github.com/specialistvlad/aoc2022/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that stand in for flags.
const EnvPrefix = "AOC"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Action tells the caller what to do once arguments are parsed.
type Action int

const (
	// ActionExit means nothing is left to do, e.g. help was printed.
	ActionExit Action = iota
	// ActionRun means the selected puzzles should be solved.
	ActionRun
	// ActionList means the registered puzzles should be listed.
	ActionList
)

// Parse processes command-line arguments. It returns a populated Config and
// the action to take, or an ExitError for invalid usage.
func Parse(args []string, output io.Writer) (*app.Config, Action, error) {
	slog.Debug("CLI parser started.")
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var (
		config *app.Config
		action = ActionExit
	)

	root := &cobra.Command{
		Use:   "aoc [flags] [DAY...]",
		Short: "Solve Advent of Code 2022 puzzles.",
		Long: `aoc solves Advent of Code 2022 puzzles.

With no DAY and no manifest the latest implemented day is solved. Inputs
are read from INPUTS_DIR/dayNN.txt unless --example or --input is given.
Every flag can also be set through an AOC_<FLAG> environment variable,
for example AOC_LOG_LEVEL=debug or AOC_INPUTS_DIR=~/aoc.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(v, args)
			if err != nil {
				return err
			}
			config, action = cfg, ActionRun
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetArgs(args)
	root.SetOut(output)
	root.SetErr(output)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError("%s", err.Error())
	})

	persistent := root.PersistentFlags()
	persistent.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	persistent.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	flags := root.Flags()
	flags.BoolP("example", "e", false, "Solve the embedded example input instead of the puzzle input.")
	flags.StringP("input", "i", "", "Read the puzzle input from this file (single day only).")
	flags.String("inputs-dir", app.DefaultInputsDir, "Directory holding puzzle inputs named dayNN.txt.")
	flags.StringP("manifest", "m", "", "Path to a run manifest (.hcl file or a directory of them).")
	flags.StringP("format", "f", string(report.Text), "Answer output format. Options: 'text', 'json' or 'yaml'.")
	flags.IntP("workers", "w", 1, "Number of puzzles solved concurrently.")

	list := &cobra.Command{
		Use:   "list",
		Short: "List the implemented days.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildLogConfig(v)
			if err != nil {
				return err
			}
			config, action = cfg, ActionList
			return nil
		},
	}
	root.AddCommand(list)

	if err := v.BindPFlags(flags); err != nil {
		return nil, ActionExit, err
	}
	if err := v.BindPFlags(persistent); err != nil {
		return nil, ActionExit, err
	}

	if err := root.Execute(); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			return nil, ActionExit, exitErr
		}
		// Cobra reports unknown commands and bad arguments as plain errors.
		return nil, ActionExit, usageError("%s", err.Error())
	}
	slog.Debug("CLI parser finished.", "action", action)
	return config, action, nil
}

// buildLogConfig reads the settings shared by every command.
func buildLogConfig(v *viper.Viper) (*app.Config, error) {
	logFormat := strings.ToLower(v.GetString("log-format"))
	if logFormat != "text" && logFormat != "json" {
		return nil, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(v.GetString("log-level"))
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	cfg, err := app.NewConfig(app.Config{LogFormat: logFormat, LogLevel: logLevel})
	if err != nil {
		return nil, usageError("%s", err.Error())
	}
	return cfg, nil
}

// buildConfig validates the root command's flags and arguments.
func buildConfig(v *viper.Viper, args []string) (*app.Config, error) {
	base, err := buildLogConfig(v)
	if err != nil {
		return nil, err
	}

	days := make([]int, 0, len(args))
	for _, arg := range args {
		day, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(arg), "day"))
		if err != nil {
			return nil, usageError("invalid day %q: must be a number between 1 and 25", arg)
		}
		days = append(days, day)
	}

	format, err := report.ParseFormat(v.GetString("format"))
	if err != nil {
		return nil, usageError("%s", err.Error())
	}

	workers := v.GetInt("workers")
	if workers < 1 {
		return nil, usageError("invalid workers: must be at least 1")
	}

	cfg, err := app.NewConfig(app.Config{
		Days:         days,
		Example:      v.GetBool("example"),
		InputPath:    v.GetString("input"),
		InputsDir:    v.GetString("inputs-dir"),
		ManifestPath: v.GetString("manifest"),
		Format:       format,
		LogFormat:    base.LogFormat,
		LogLevel:     base.LogLevel,
		Workers:      workers,
	})
	if err != nil {
		return nil, usageError("%s", err.Error())
	}
	slog.Debug("CLI parameter validation complete.", "days", days)
	return cfg, nil
}

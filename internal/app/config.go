package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/aoc2022/internal/report"
)

// DefaultInputsDir is where puzzle inputs are looked up when nothing else
// is configured.
const DefaultInputsDir = "inputs"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Days         []int  // days named on the command line, in order
	Example      bool   // solve the embedded example instead of the real input
	InputPath    string // explicit input file, only valid with a single day
	InputsDir    string // directory holding dayNN.txt inputs
	ManifestPath string // .hcl file or directory of them

	Format    report.Format
	LogFormat string
	LogLevel  string
	Workers   int
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	for _, d := range cfg.Days {
		if d < 1 || d > 25 {
			return nil, fmt.Errorf("day %d is out of range 1-25", d)
		}
	}
	if cfg.InputPath != "" {
		if len(cfg.Days) != 1 {
			return nil, errors.New("an explicit input file requires exactly one day")
		}
		if cfg.Example {
			return nil, errors.New("an explicit input file cannot be combined with the example input")
		}
	}
	if cfg.InputsDir == "" {
		cfg.InputsDir = DefaultInputsDir
	}
	if cfg.Format == "" {
		cfg.Format = report.Text
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &cfg, nil
}

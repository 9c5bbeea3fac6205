// Package config defines the format-agnostic run manifest model for the
// application, along with the core interfaces (Loader, Converter) for
// loading it and for binding per-run parameters to Go structs.
//
// The `config.Model` is the single source of truth for which puzzles the
// `app` package runs. Concrete implementations of the interfaces, such as
// for HCL, are provided in separate packages.
package config

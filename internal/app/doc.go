// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle that turns a selection of
// days (from flags or a manifest) into rendered answers, decoupled from any
// specific entrypoint like a CLI.
package app

// Package cli defines the Cobra command tree for the ade CLI. Each file in
// this package builds one top-level command (scaffold, validate, list, etc.).
// Commands delegate to internal packages for the actual work and only handle
// flag parsing, output formatting, and mapping errors to exit codes.
package cli

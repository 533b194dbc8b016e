// Package cli provides the command-line interface for euid.
//
// Commands:
//   - new: Generate one or more identifiers, optionally with an extension
//   - inspect: Decode identifiers and show their fields
//   - from: Build an identifier from a 128-bit integer
//   - config: Display effective configuration and its sources
//   - version: Show euid version
//
// Every command accepts --json for machine-readable output. Settings are
// resolved by the cliconfig package; flags override them.
package cli

// Package cliconfig provides configuration types and loading for the euid
// command.
//
// Configuration is layered with the following precedence (highest to
// lowest):
//
//  1. Command-line flags
//  2. Environment variables (EUID_* prefix)
//  3. A file named by --config or EUID_CONFIG
//  4. Local config file (.euid.yaml in the current directory)
//  5. Global config file ($XDG_CONFIG_HOME/euid/config.yaml)
//  6. Default values
//
// The loader records the source of every value so `euid config` can show
// where the effective settings came from.
package cliconfig

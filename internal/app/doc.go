// Package app wires application dependencies for the CLI.
//
// It loads Config with koanf (defaults, then an optional YAML file, then
// SHRAMIK_* environment variables, then command-line flags) and builds the
// session storage, HTTP adapter, gateways and view-models from it, exposing
// them via the Wire struct for commands to use.
package app

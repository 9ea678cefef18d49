// Package commands defines the shramikadmin CLI, one command group per
// console screen.
//
// # Commands
//
//   - login            Sign in and store the session
//   - logout           Drop the stored session
//   - whoami           Show the signed-in administrator
//   - specializations  List, inspect and edit specializations
//   - question-sets    List, search and build question sets
//   - coin-pricing     Manage coin packages and rules per category
//
// # Implementation
//
// The root command loads configuration and builds the dependency graph
// (session storage, HTTP adapter, gateways) before any subcommand runs. Each
// subcommand opens its screen on the router, drives a view-model or form,
// and prints the result. After every run the request metrics are written
// when a metrics file is configured, and a rejected session is reported.
package commands

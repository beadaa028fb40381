// Package commands defines the take5 CLI and wires dependencies for subcommands.
//
// Commands
//
//   - simulate     Play many rounds between automated players and print totals
//   - play         Play one narrated round, optionally with manual players
//   - strategies   List the strategies a seat can use
//   - report       Print a saved simulation report
//
// # Implementation
//
// Seats come from repeated --player id=strategy[:alpha] flags or a --lineup
// JSON file, falling back to a default table of bots. Each command builds the
// dependency graph (seed source, players, round engine, simulation, report
// store) through app.NewWire before it runs.
package commands

// Package app wires application dependencies for the CLI.
//
// It builds the seed source, the seated players and their strategies, the
// round engine, the simulation service and the report store from Config,
// exposing them via the Wire struct for commands to use.
package app

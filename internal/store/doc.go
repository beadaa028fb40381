// Package store provides file-based persistence for simulation artefacts.
//
// Reports are serialised as JSON, one file per run named after the run id,
// and written atomically through a temp file and rename. Lineup files, which
// seat players for a run, are read from the same JSON format. Game state
// itself is never persisted.
package store

// Package simulation runs many rounds for one table and aggregates the
// results.
//
// Each round draws its deck from its own seed-derived generator, so a run can
// be replayed from its seed phrase. Running scores are reset after every
// round; the totals live in Stats, which the caller owns.
package simulation

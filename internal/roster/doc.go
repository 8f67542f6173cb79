// Package roster assembles the character database from the raw game data
// tables.
//
// The work happens in five ordered enrichment passes over a shared
// accumulator keyed by character ID. The populate pass inserts one entry per
// playable avatar and resolves its display name; every later pass only adds
// fields to entries that already exist. The order is fixed: later passes rely
// on the populate pass having established the full ID set.
//
// Generate wraps the passes with run-level concerns: the run lock, table
// loading, output writing, and run-history recording.
package roster

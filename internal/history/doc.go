// Package history records one row per pipeline run in a SQLite database.
//
// The store is an operational convenience: it answers "when did this last
// run, and did it work" without trawling logs. Generation itself never reads
// from it, and a disabled or broken history store never blocks a run.
package history

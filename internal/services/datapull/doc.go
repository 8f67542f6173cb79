// Package datapull wraps the external script that downloads or updates the
// game data dump.
//
// The pipeline only needs "trigger a refresh, report success or failure";
// the script owns the download mechanics. A missing or failing script is
// reported as an external tool error so callers can decide whether existing
// local documents make the run viable anyway.
package datapull

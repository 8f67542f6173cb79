// Package services defines shared utilities consumed by the generation
// pipeline and external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and pass names for logging.
//   - Structured error markers plus the Wrap helper that classify failures
//     into consistent exit codes and run-history statuses.
//   - Thin abstractions that make external command execution testable.
package services

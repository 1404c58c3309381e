// Package logging assembles the structured slog loggers used across
// namefold commands.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// exposes attr helper aliases so callers do not import slog directly. A
// no-op logger is available for tests and for wiring code that cannot fail.
package logging

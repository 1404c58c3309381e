// Package config loads, normalizes, and validates namefold configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Settings obtained through this package
// arrive sanitized: formats are canonical lowercase, noise words are trimmed
// and deduplicated, and the similarity threshold is validated against its
// legal range before any command runs.
package config

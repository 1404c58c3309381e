// Package input reads raw company names from line-oriented sources.
// One name per line; surrounding whitespace is trimmed and blank lines are
// dropped. Original casing and punctuation are preserved.
package input

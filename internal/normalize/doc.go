// Package normalize reduces free-text company names to a canonical form
// suitable for comparison.
//
// Normalization lowercases the input, decomposes accented characters and
// strips their combining marks, removes punctuation and symbols, and drops
// noise words that carry no distinguishing signal (legal suffixes such as
// "inc" and "ltd", generic business terms such as "studio" and "solutions",
// and common stop-words). Tokenization splits the normalized form into a set
// of unique word tokens.
//
// Both operations are total, pure functions: any string in, a string (or
// token set) out, with no error surface. Normalization is idempotent.
package normalize

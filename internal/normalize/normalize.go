package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented characters into base letter plus combining
// marks, removes the marks, and recomposes (so "é" becomes "e").
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// defaultNoiseWords are dropped during normalization. The set covers legal
// suffixes, generic business descriptors, and stop-words.
var defaultNoiseWords = map[string]struct{}{
	"inc":           {},
	"incorporated":  {},
	"ltd":           {},
	"limited":       {},
	"llc":           {},
	"plc":           {},
	"gmbh":          {},
	"co":            {},
	"corp":          {},
	"corporation":   {},
	"company":       {},
	"holdings":      {},
	"group":         {},
	"studio":        {},
	"studios":       {},
	"software":      {},
	"games":         {},
	"interactive":   {},
	"entertainment": {},
	"digital":       {},
	"media":         {},
	"solutions":     {},
	"technologies":  {},
	"the":           {},
	"and":           {},
	"of":            {},
}

// Normalizer applies the canonical cleanup with an optionally extended
// noise-word set. The zero-argument constructor yields the default behavior
// used by the package-level functions.
type Normalizer struct {
	noise map[string]struct{}
}

// New returns a Normalizer whose noise-word set is the default set extended
// with the given words. Extra words are matched case-insensitively.
func New(extraNoiseWords ...string) *Normalizer {
	if len(extraNoiseWords) == 0 {
		return &Normalizer{noise: defaultNoiseWords}
	}
	noise := make(map[string]struct{}, len(defaultNoiseWords)+len(extraNoiseWords))
	for word := range defaultNoiseWords {
		noise[word] = struct{}{}
	}
	for _, word := range extraNoiseWords {
		word = strings.ToLower(strings.TrimSpace(word))
		if word != "" {
			noise[word] = struct{}{}
		}
	}
	return &Normalizer{noise: noise}
}

// Normalize maps a raw name to its canonical form: lowercase, accent-free,
// punctuation-free, noise-word-free, single-spaced, trimmed. The result may
// be empty when the name consists only of noise words or punctuation.
func (n *Normalizer) Normalize(raw string) string {
	lowered := strings.ToLower(raw)
	folded, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		folded = lowered
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	words := strings.Fields(b.String())
	kept := words[:0]
	for _, word := range words {
		if _, skip := n.noise[word]; skip {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}

// Tokenize returns the set of unique tokens of the normalized name. A name
// that normalizes to the empty string yields an empty set, never a set
// containing the empty token.
func (n *Normalizer) Tokenize(raw string) TokenSet {
	normalized := n.Normalize(raw)
	if normalized == "" {
		return TokenSet{}
	}
	words := strings.Fields(normalized)
	set := make(TokenSet, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}

var defaultNormalizer = New()

// Normalize applies the default Normalizer.
func Normalize(raw string) string {
	return defaultNormalizer.Normalize(raw)
}

// Tokenize applies the default Normalizer.
func Tokenize(raw string) TokenSet {
	return defaultNormalizer.Tokenize(raw)
}

package normalize

// TokenSet holds the unique word tokens of a normalized name. Tokens are
// always non-empty strings; the empty set is a valid value for names that
// normalize to nothing.
type TokenSet map[string]struct{}

// Len returns the number of tokens in the set.
func (s TokenSet) Len() int { return len(s) }

// Has reports whether the set contains the given token.
func (s TokenSet) Has(token string) bool {
	_, ok := s[token]
	return ok
}

// Min returns the lexicographically smallest token, or the empty string for
// an empty set.
func (s TokenSet) Min() string {
	min := ""
	for token := range s {
		if min == "" || token < min {
			min = token
		}
	}
	return min
}

// Overlap returns the number of tokens present in both sets.
func (s TokenSet) Overlap(other TokenSet) int {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	count := 0
	for token := range small {
		if _, ok := large[token]; ok {
			count++
		}
	}
	return count
}

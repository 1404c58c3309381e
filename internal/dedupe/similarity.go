package dedupe

import "namefold/internal/normalize"

// Jaccard computes the Jaccard similarity of two token sets: the size of the
// intersection divided by the size of the union, in [0, 1]. Two empty sets
// score 0, not 1 — names that normalize to nothing are never similar to
// anything, and the guard avoids a zero division.
func Jaccard(a, b normalize.TokenSet) float64 {
	if a.Len() == 0 && b.Len() == 0 {
		return 0
	}
	intersection := a.Overlap(b)
	union := a.Len() + b.Len() - intersection
	return float64(intersection) / float64(union)
}

package dedupe

import "namefold/internal/normalize"

// emptyBlockKey collects every name whose token set is empty. Real block keys
// are always non-empty tokens, so the empty string cannot collide.
const emptyBlockKey = ""

// BlockIndex partitions input names into buckets sharing a block key: the
// lexicographically smallest token of each name's token set. Every name
// belongs to exactly one bucket, and buckets preserve input order. The index
// also caches the token set of every name so grouping never re-tokenizes.
//
// Names are tracked by input position, not by string value: duplicate literal
// strings in the input are distinct entries.
type BlockIndex struct {
	names   []string
	tokens  []normalize.TokenSet
	keys    []string         // block keys in first-population order
	buckets map[string][]int // block key -> input positions
}

// BuildBlocks tokenizes every name once, in input order, and assigns it to
// the bucket of its smallest token.
func BuildBlocks(names []string, norm *normalize.Normalizer) *BlockIndex {
	if norm == nil {
		norm = normalize.New()
	}
	index := &BlockIndex{
		names:   names,
		tokens:  make([]normalize.TokenSet, len(names)),
		buckets: make(map[string][]int),
	}
	for pos, name := range names {
		tokens := norm.Tokenize(name)
		index.tokens[pos] = tokens

		key := tokens.Min()
		if tokens.Len() == 0 {
			key = emptyBlockKey
		}
		if _, exists := index.buckets[key]; !exists {
			index.keys = append(index.keys, key)
		}
		index.buckets[key] = append(index.buckets[key], pos)
	}
	return index
}

// Len returns the number of indexed names.
func (ix *BlockIndex) Len() int { return len(ix.names) }

// Blocks returns the number of distinct buckets.
func (ix *BlockIndex) Blocks() int { return len(ix.keys) }

// Tokens returns the cached token set for the name at the given input
// position.
func (ix *BlockIndex) Tokens(pos int) normalize.TokenSet { return ix.tokens[pos] }

// Bucket returns the input positions assigned to the given block key, in
// input order.
func (ix *BlockIndex) Bucket(key string) []int { return ix.buckets[key] }

// Keys returns the block keys in the order their buckets were first
// populated. Iterating this slice, not the bucket map, keeps downstream
// output deterministic.
func (ix *BlockIndex) Keys() []string { return ix.keys }

package dedupe

// Group is a set of input names judged to be duplicates of one another,
// materialized in discovery order. The first member is the representative
// every other member was compared against. Groups always have at least two
// members; singletons are never emitted.
type Group struct {
	// Key is the block key the group was found under.
	Key string `json:"key"`
	// Members holds the original raw names, casing and punctuation intact.
	Members []string `json:"members"`
}

// Size returns the number of members.
func (g Group) Size() int { return len(g.Members) }

// groupBlocks runs the greedy clustering over every bucket of the index, in
// first-population key order.
//
// Within a bucket, each unseen name opens a new group and scans strictly
// forward: a later unseen name joins when its similarity to the group's
// representative meets the threshold. Membership is decided against the
// representative only, never against other members, and a name claimed by an
// earlier group is skipped by later ones. Callers relying on transitive
// closure semantics will be surprised; the asymmetry is intentional.
func groupBlocks(index *BlockIndex, threshold float64) []Group {
	seen := make([]bool, index.Len())
	var groups []Group

	for _, key := range index.Keys() {
		bucket := index.Bucket(key)
		for i, pos := range bucket {
			if seen[pos] {
				continue
			}
			seen[pos] = true
			members := []string{index.names[pos]}

			for _, other := range bucket[i+1:] {
				if seen[other] {
					continue
				}
				if Jaccard(index.Tokens(pos), index.Tokens(other)) >= threshold {
					seen[other] = true
					members = append(members, index.names[other])
				}
			}

			if len(members) > 1 {
				groups = append(groups, Group{Key: key, Members: members})
			}
		}
	}
	return groups
}

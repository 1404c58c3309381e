// Package dedupe clusters near-duplicate company names into disjoint groups.
//
// The pipeline tokenizes every name once, partitions names into blocks keyed
// by the lexicographically smallest token, and greedily groups names within
// each block by Jaccard similarity of their token sets. Restricting
// comparisons to same-block pairs bounds the pairwise cost to the largest
// block instead of the whole input.
//
// Grouping is greedy and order-dependent: a name joins the first group whose
// representative (the group's first member) is similar enough, and a name
// consumed by an earlier group never joins a later one. This is not a
// transitive closure and is not guaranteed to be globally optimal.
//
// Known limitation: two near-duplicates whose smallest tokens differ land in
// different blocks and are never compared. This recall/performance trade-off
// is inherent to single-key blocking.
package dedupe

package dedupe

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"namefold/internal/logging"
	"namefold/internal/normalize"
)

// DefaultThreshold is the Jaccard similarity two names must reach to be
// grouped when no threshold is configured.
const DefaultThreshold = 0.5

// ErrInvalidThreshold reports a similarity threshold outside (0, 1].
var ErrInvalidThreshold = errors.New("similarity threshold must be in (0, 1]")

// Options configures a deduplication run.
type Options struct {
	// Threshold is the minimum Jaccard similarity for two names to be
	// grouped. Zero means DefaultThreshold.
	Threshold float64
	// ExtraNoiseWords extends the built-in noise-word set for this run.
	ExtraNoiseWords []string
	// Logger receives run statistics. Nil means no logging.
	Logger *slog.Logger
}

// FindDuplicateGroups clusters the given names into disjoint duplicate
// groups. Names are processed in input order and the result order is
// deterministic for a fixed input: groups appear in the order their block
// was first populated, members in discovery order. Names similar to nothing
// are omitted.
func FindDuplicateGroups(names []string, opts Options) ([]Group, error) {
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	if threshold <= 0 || threshold > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidThreshold, opts.Threshold)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	started := time.Now()
	index := BuildBlocks(names, normalize.New(opts.ExtraNoiseWords...))
	groups := groupBlocks(index, threshold)

	stats := Summarize(groups)
	logger.Info("deduplication complete",
		logging.Int("names", len(names)),
		logging.Int("blocks", index.Blocks()),
		logging.Int("groups", stats.Groups),
		logging.Int("duplicates", stats.Duplicates),
		logging.Float64("threshold", threshold),
		logging.Duration("elapsed", time.Since(started)),
	)
	return groups, nil
}

// Stats summarizes a deduplication result.
type Stats struct {
	Groups       int `json:"groups"`
	Duplicates   int `json:"duplicates"`
	LargestGroup int `json:"largest_group"`
}

// Summarize counts groups, total grouped names, and the largest group size.
func Summarize(groups []Group) Stats {
	stats := Stats{Groups: len(groups)}
	for _, group := range groups {
		stats.Duplicates += group.Size()
		if group.Size() > stats.LargestGroup {
			stats.LargestGroup = group.Size()
		}
	}
	return stats
}

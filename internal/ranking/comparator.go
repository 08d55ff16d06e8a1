// Package ranking merges persona outputs into the final report: per-video
// persona dedup, a single total-order comparator, truncation, and the
// executive summary.
package ranking

import "github.com/ternarybob/trendscout/internal/personas"

// Less reports whether a ranks strictly ahead of b. This is the one
// comparator used everywhere ranking order matters:
//
//  1. score descending
//  2. view velocity descending
//  3. publish timestamp descending (most recent wins)
//  4. video id ascending
//
// The final key makes the order total, so sorting is deterministic
// regardless of input order.
func Less(a, b personas.ScoredVideo) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Metrics.ViewVelocity != b.Metrics.ViewVelocity {
		return a.Metrics.ViewVelocity > b.Metrics.ViewVelocity
	}
	if !a.Signal.PublishedAt.Equal(b.Signal.PublishedAt) {
		return a.Signal.PublishedAt.After(b.Signal.PublishedAt)
	}
	return a.Signal.VideoID < b.Signal.VideoID
}

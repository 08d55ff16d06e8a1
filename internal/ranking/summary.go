package ranking

import (
	"fmt"
	"strings"

	"github.com/ternarybob/trendscout/internal/models"
	"github.com/ternarybob/trendscout/internal/signals"
	pkgmodels "github.com/ternarybob/trendscout/pkg/models"
)

// searchSurgeThreshold is the differential (in percent) above which a
// search surge is called out over raw view velocity in the summary.
const searchSurgeThreshold = 100.0

// BuildSummary produces the one-paragraph executive summary. It is a pure
// function of the request context and the final ranked slice: no clock, no
// randomness, no I/O.
func BuildSummary(req models.RequestContext, ranked []rankedRecord) string {
	if len(ranked) == 0 {
		return fmt.Sprintf("No qualifying signals for %q in %s over the last %d days. Widen the lookback window or adjust the keyword.",
			req.Keyword, req.Region, req.DaysBack)
	}

	dominant := dominantPersona(ranked)
	claimed := 0
	for _, record := range ranked {
		if record.persona.ID == dominant.ID {
			claimed++
		}
	}

	return fmt.Sprintf("%s leads %d of %d qualifying signals for %q (%s, %s). Top opportunities: %s. Strongest reading: %s.",
		dominant.Label,
		claimed,
		len(ranked),
		req.Keyword,
		signals.CategoryLabel(req.CategoryID),
		req.Region,
		topTitles(ranked),
		strongestMetric(ranked),
	)
}

// dominantPersona returns the persona claiming the most ranked videos.
// Ties resolve to the persona appearing earliest in ranking order.
func dominantPersona(ranked []rankedRecord) personaRef {
	counts := make(map[string]int, len(ranked))
	for _, record := range ranked {
		counts[record.persona.ID]++
	}

	best := personaRef{ID: ranked[0].persona.ID, Label: ranked[0].persona.Label}
	bestCount := counts[best.ID]
	for _, record := range ranked {
		if counts[record.persona.ID] > bestCount {
			best = personaRef{ID: record.persona.ID, Label: record.persona.Label}
			bestCount = counts[record.persona.ID]
		}
	}
	return best
}

type personaRef struct {
	ID    string
	Label string
}

// topTitles names the top one to three videos by title
func topTitles(ranked []rankedRecord) string {
	limit := len(ranked)
	if limit > 3 {
		limit = 3
	}

	titles := make([]string, 0, limit)
	for _, record := range ranked[:limit] {
		titles = append(titles, fmt.Sprintf("%q", record.video.Signal.Title))
	}

	if len(titles) == 1 {
		return titles[0]
	}
	return strings.Join(titles[:len(titles)-1], ", ") + " and " + titles[len(titles)-1]
}

// strongestMetric describes whichever metric is extremal across the top
// slice: a Very High monetization tier wins, then a triple-digit search
// surge, then peak view velocity.
func strongestMetric(ranked []rankedRecord) string {
	maxVelocity := 0.0
	maxDifferential := 0.0
	veryHigh := false

	for _, record := range ranked {
		m := record.video.Metrics
		if m.ViewVelocity > maxVelocity {
			maxVelocity = m.ViewVelocity
		}
		if m.SearchDifferential > maxDifferential {
			maxDifferential = m.SearchDifferential
		}
		if m.MonetizationTier == pkgmodels.TierVeryHigh {
			veryHigh = true
		}
	}

	switch {
	case veryHigh:
		return "Very High monetization potential on the top slice"
	case maxDifferential >= searchSurgeThreshold:
		return fmt.Sprintf("search interest up %.1f%%", maxDifferential)
	default:
		return fmt.Sprintf("view velocity peaking at %.0f views/hr", maxVelocity)
	}
}

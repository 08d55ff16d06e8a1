package personas

import (
	"math"

	"github.com/ternarybob/trendscout/internal/models"
	"github.com/ternarybob/trendscout/internal/signals"
	pkgmodels "github.com/ternarybob/trendscout/pkg/models"
)

// Tier scale used when folding the qualitative monetization tier into a
// persona's linear score. Fixed so scoring stays deterministic.
var tierScale = map[pkgmodels.MonetizationTier]float64{
	pkgmodels.TierLow:      0.1,
	pkgmodels.TierMedium:   0.4,
	pkgmodels.TierHigh:     0.7,
	pkgmodels.TierVeryHigh: 1.0,
}

// scoreDecimals controls rounding of persona scores. Rounding keeps the
// wire representation stable; ties created by it are resolved by the
// ranking comparator.
const scoreDecimals = 4

// ScoredVideo is one persona's verdict on one video
type ScoredVideo struct {
	Signal     models.NormalizedSignal
	Metrics    signals.DerivedMetrics
	Score      float64
	Narrative  string
	ActionStep string
}

// PersonaResult is a persona's scored and narrated view of a whole batch
type PersonaResult struct {
	Persona Persona
	Videos  []ScoredVideo
}

// Scorer applies persona weightings to a batch of derived metrics
type Scorer struct{}

// NewScorer creates a new persona scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score produces a scored and narrated record per video for one persona.
// Velocity and differential components are normalized against the batch so
// the three weighted components share a 0-1 scale. Pure: identical inputs
// produce identical output, narratives included.
func (s *Scorer) Score(persona Persona, batch []models.NormalizedSignal, metrics []signals.DerivedMetrics, req models.RequestContext) PersonaResult {
	minDiff, maxDiff := differentialRange(metrics)

	videos := make([]ScoredVideo, 0, len(batch))
	for i, signal := range batch {
		m := metrics[i]

		velocityComponent := m.NormalizedVelocity
		differentialComponent := normalizeDifferential(m.SearchDifferential, minDiff, maxDiff)
		monetizationComponent := tierScale[m.MonetizationTier]

		score := persona.Weights.Velocity*velocityComponent +
			persona.Weights.Differential*differentialComponent +
			persona.Weights.Monetization*monetizationComponent

		narrative, action := persona.narrate(narrativeContext{
			Keyword:       req.Keyword,
			CategoryLabel: signals.CategoryLabel(req.CategoryID),
			ChannelTitle:  signal.ChannelTitle,
			Metrics:       m,
		})

		videos = append(videos, ScoredVideo{
			Signal:     signal,
			Metrics:    m,
			Score:      roundScore(score),
			Narrative:  narrative,
			ActionStep: action,
		})
	}

	return PersonaResult{Persona: persona, Videos: videos}
}

// differentialRange returns the min and max search differential in a batch
func differentialRange(metrics []signals.DerivedMetrics) (float64, float64) {
	if len(metrics) == 0 {
		return 0, 0
	}
	min, max := metrics[0].SearchDifferential, metrics[0].SearchDifferential
	for _, m := range metrics[1:] {
		if m.SearchDifferential < min {
			min = m.SearchDifferential
		}
		if m.SearchDifferential > max {
			max = m.SearchDifferential
		}
	}
	return min, max
}

// normalizeDifferential maps a differential onto [0,1] relative to the
// batch extrema. A flat batch maps to 0.5 so the component neither rewards
// nor penalizes.
func normalizeDifferential(value, min, max float64) float64 {
	if max <= min {
		return 0.5
	}
	return (value - min) / (max - min)
}

func roundScore(score float64) float64 {
	mult := math.Pow(10, scoreDecimals)
	return math.Round(score*mult) / mult
}

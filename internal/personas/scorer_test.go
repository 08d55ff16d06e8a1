package personas

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/trendscout/internal/models"
	"github.com/ternarybob/trendscout/internal/signals"
	pkgmodels "github.com/ternarybob/trendscout/pkg/models"
)

func scorerFixture() ([]models.NormalizedSignal, []signals.DerivedMetrics, models.RequestContext) {
	publishedAt := time.Date(2025, 5, 30, 8, 0, 0, 0, time.UTC)

	batch := []models.NormalizedSignal{
		{VideoID: "fast", Title: "Fast Riser", ChannelTitle: "Velocity Lab", PublishedAt: publishedAt, CategoryID: "28"},
		{VideoID: "rich", Title: "Sponsor Magnet", ChannelTitle: "RPM Radio", PublishedAt: publishedAt, CategoryID: "28"},
	}

	// "fast" dominates velocity and search; "rich" dominates monetization.
	metrics := []signals.DerivedMetrics{
		{VideoID: "fast", ViewVelocity: 2000, NormalizedVelocity: 1.0, SearchDifferential: 180, MonetizationTier: pkgmodels.TierLow},
		{VideoID: "rich", ViewVelocity: 200, NormalizedVelocity: 0.1, SearchDifferential: 5, MonetizationTier: pkgmodels.TierVeryHigh},
	}

	req := models.RequestContext{
		Keyword:    "ai tools",
		Region:     "US",
		CategoryID: "28",
		DaysBack:   7,
		Agents:     []string{PersonaAlgorithmicEye, PersonaMonetizationMaven},
	}

	return batch, metrics, req
}

func TestScorer_PersonasDisagree(t *testing.T) {
	registry := NewRegistry()
	scorer := NewScorer()
	batch, metrics, req := scorerFixture()

	eye, _ := registry.Get(PersonaAlgorithmicEye)
	maven, _ := registry.Get(PersonaMonetizationMaven)

	eyeResult := scorer.Score(eye, batch, metrics, req)
	mavenResult := scorer.Score(maven, batch, metrics, req)

	// The velocity-weighted persona prefers the fast riser; the
	// monetization-weighted persona prefers the high-RPM video.
	assert.Greater(t, eyeResult.Videos[0].Score, eyeResult.Videos[1].Score, "algorithmic eye should favor the fast riser")
	assert.Greater(t, mavenResult.Videos[1].Score, mavenResult.Videos[0].Score, "monetization maven should favor the sponsor magnet")
}

func TestScorer_Deterministic(t *testing.T) {
	registry := NewRegistry()
	scorer := NewScorer()
	batch, metrics, req := scorerFixture()

	for _, persona := range registry.All() {
		first := scorer.Score(persona, batch, metrics, req)
		second := scorer.Score(persona, batch, metrics, req)

		require.Len(t, second.Videos, len(first.Videos))
		for i := range first.Videos {
			assert.Equal(t, first.Videos[i].Score, second.Videos[i].Score)
			assert.Equal(t, first.Videos[i].Narrative, second.Videos[i].Narrative)
			assert.Equal(t, first.Videos[i].ActionStep, second.Videos[i].ActionStep)
		}
	}
}

func TestScorer_ScoresStayComparable(t *testing.T) {
	registry := NewRegistry()
	scorer := NewScorer()
	batch, metrics, req := scorerFixture()

	// Weights sum to 1 and every component is in [0,1], so scores stay in
	// [0,1] and are comparable across personas.
	for _, persona := range registry.All() {
		result := scorer.Score(persona, batch, metrics, req)
		for _, video := range result.Videos {
			assert.GreaterOrEqual(t, video.Score, 0.0, "persona %s", persona.ID)
			assert.LessOrEqual(t, video.Score, 1.0, "persona %s", persona.ID)
		}
	}
}

func TestScorer_FlatDifferentialIsNeutral(t *testing.T) {
	registry := NewRegistry()
	scorer := NewScorer()

	batch := []models.NormalizedSignal{
		{VideoID: "a", Title: "A", CategoryID: "0"},
	}
	metrics := []signals.DerivedMetrics{
		{VideoID: "a", ViewVelocity: 100, NormalizedVelocity: 1.0, SearchDifferential: 0, MonetizationTier: pkgmodels.TierLow},
	}
	req := models.RequestContext{Keyword: "ai tools", Region: "US", CategoryID: "0", DaysBack: 7, Agents: []string{PersonaAlgorithmicEye}}

	eye, _ := registry.Get(PersonaAlgorithmicEye)
	result := scorer.Score(eye, batch, metrics, req)

	// velocity 0.45*1.0 + differential 0.45*0.5 (flat batch) + tier 0.10*0.1
	require.Len(t, result.Videos, 1)
	assert.InDelta(t, 0.685, result.Videos[0].Score, 1e-9)
}

func TestScorer_NarrativeInterpolatesContext(t *testing.T) {
	registry := NewRegistry()
	scorer := NewScorer()
	batch, metrics, req := scorerFixture()

	maven, _ := registry.Get(PersonaMonetizationMaven)
	result := scorer.Score(maven, batch, metrics, req)

	require.Len(t, result.Videos, 2)
	assert.Contains(t, result.Videos[1].Narrative, `"ai tools"`)
	assert.NotEmpty(t, result.Videos[1].ActionStep)
}

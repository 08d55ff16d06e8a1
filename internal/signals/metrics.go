package signals

import (
	"github.com/ternarybob/trendscout/internal/models"
	pkgmodels "github.com/ternarybob/trendscout/pkg/models"
)

// Monetization tier thresholds. The tier is the bucketed product of the
// category weight and the batch-normalized velocity. These are fixed
// constants, never derived per batch, so repeated runs on the same data
// are deterministic.
const (
	TierThresholdMedium   = 0.15 // below: Low
	TierThresholdHigh     = 0.40 // below: Medium
	TierThresholdVeryHigh = 0.70 // below: High, at or above: Very High
)

// MetricConfig holds configuration for metric derivation
type MetricConfig struct {
	// VelocityDecimals controls rounding of the views/hour figure.
	VelocityDecimals int `json:"velocity_decimals"`
	// DifferentialDecimals controls rounding of the search differential.
	DifferentialDecimals int `json:"differential_decimals"`
}

// DefaultMetricConfig returns the default configuration
func DefaultMetricConfig() MetricConfig {
	return MetricConfig{
		VelocityDecimals:     1,
		DifferentialDecimals: 1,
	}
}

// DerivedMetrics contains the comparable per-video metrics computed from a
// normalized signal. All fields are always present and finite.
type DerivedMetrics struct {
	VideoID string `json:"video_id"`

	// ViewVelocity is the view growth rate in views/hour over the most
	// recent observation interval. Always >= 0.
	ViewVelocity float64 `json:"view_velocity"`

	// SearchDifferential is the percentage change of the later half of the
	// search-interest sample against the earlier half.
	SearchDifferential float64 `json:"search_differential"`

	// NormalizedVelocity is ViewVelocity divided by the batch's maximum
	// velocity, always in [0,1]. Zero when the whole batch has velocity 0.
	NormalizedVelocity float64 `json:"normalized_velocity"`

	// MonetizationTier is the bucketed category-weighted velocity product.
	MonetizationTier pkgmodels.MonetizationTier `json:"monetization_tier"`

	// Degraded is set when fewer than two observations were available and
	// velocity fell back to 0. Exposed internally only; not an error.
	Degraded bool `json:"degraded"`
}

// MetricEngine computes derived metrics for a normalized batch
type MetricEngine struct {
	config MetricConfig
}

// NewMetricEngine creates a new metric engine
func NewMetricEngine(config MetricConfig) *MetricEngine {
	return &MetricEngine{config: config}
}

// ComputeBatch derives metrics for every signal in the batch. Monetization
// tiers depend on the batch's maximum velocity, so the whole batch is
// computed in one pass.
func (e *MetricEngine) ComputeBatch(batch []models.NormalizedSignal) []DerivedMetrics {
	metrics := make([]DerivedMetrics, len(batch))

	maxVelocity := 0.0
	for i, signal := range batch {
		velocity, degraded := e.computeVelocity(signal.Observations)
		metrics[i] = DerivedMetrics{
			VideoID:            signal.VideoID,
			ViewVelocity:       velocity,
			SearchDifferential: e.computeSearchDifferential(signal.SearchInterest),
			Degraded:           degraded,
		}
		maxVelocity = maxFloat(maxVelocity, velocity)
	}

	for i, signal := range batch {
		normalized := 0.0
		if maxVelocity > 0 {
			normalized = clamp(metrics[i].ViewVelocity/maxVelocity, 0, 1)
		}
		metrics[i].NormalizedVelocity = normalized
		metrics[i].MonetizationTier = monetizationTier(CategoryWeight(signal.CategoryID) * normalized)
	}

	return metrics
}

// computeVelocity returns views/hour over the two most recent
// observations. A single observation yields 0 with the degraded flag set.
func (e *MetricEngine) computeVelocity(observations []models.ViewObservation) (float64, bool) {
	if len(observations) < 2 {
		return 0, true
	}

	last := observations[len(observations)-1]
	prev := observations[len(observations)-2]

	hours := last.At.Sub(prev.At).Hours()
	if hours <= 0 {
		return 0, false
	}

	velocity := float64(last.Views-prev.Views) / hours
	return round(maxFloat(velocity, 0), e.config.VelocityDecimals), false
}

// computeSearchDifferential compares the later half of the search-interest
// sample against the earlier half, expressed as a percentage of the earlier
// half's total interest (floored at 1 to avoid division blowups on quiet
// keywords). Fewer than 2 samples yields 0.
func (e *MetricEngine) computeSearchDifferential(sample []float64) float64 {
	if len(sample) < 2 {
		return 0
	}

	earlier := sample[:len(sample)/2]
	later := sample[len(sample)/2:]

	base := maxFloat(sum(earlier), 1)
	return round((avg(later)-avg(earlier))/base*100, e.config.DifferentialDecimals)
}

// monetizationTier buckets the category-weighted normalized velocity into
// the four fixed tiers
func monetizationTier(product float64) pkgmodels.MonetizationTier {
	switch {
	case product < TierThresholdMedium:
		return pkgmodels.TierLow
	case product < TierThresholdHigh:
		return pkgmodels.TierMedium
	case product < TierThresholdVeryHigh:
		return pkgmodels.TierHigh
	default:
		return pkgmodels.TierVeryHigh
	}
}

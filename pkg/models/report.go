// Package models defines the outbound wire types returned to pipeline
// collaborators (HTTP layer, renderers). Field names and order are stable
// across calls: identical inputs must serialize byte-identically.
package models

// MonetizationTier is the qualitative four-tier revenue opportunity label.
type MonetizationTier string

const (
	TierLow      MonetizationTier = "Low"
	TierMedium   MonetizationTier = "Medium"
	TierHigh     MonetizationTier = "High"
	TierVeryHigh MonetizationTier = "Very High"
)

// TrendInsight is one ranked opportunity: a video tagged with the persona
// that claimed it, the persona's narrative, and the formatted metrics.
// Immutable once built; exactly one per video in a Report.
type TrendInsight struct {
	VideoID               string           `json:"videoId"`
	Title                 string           `json:"title"`
	ChannelTitle          string           `json:"channelTitle"`
	Thumbnail             string           `json:"thumbnail"`
	AgentLabel            string           `json:"agentLabel"`
	Narrative             string           `json:"narrative"`
	ActionStep            string           `json:"actionStep"`
	ViewVelocity          string           `json:"viewVelocity"`
	MonetizationPotential MonetizationTier `json:"monetizationPotential"`
	SearchDifferential    string           `json:"searchDifferential"`
	PublishedAt           string           `json:"publishedAt"`
	VideoURL              string           `json:"videoUrl"`
}

// Report is the final pipeline output: an executive summary plus insights
// in ranking order (index 0 is the strongest signal). Lifetime is one
// request; it is never persisted.
type Report struct {
	Summary  string         `json:"summary"`
	Insights []TrendInsight `json:"insights"`
}

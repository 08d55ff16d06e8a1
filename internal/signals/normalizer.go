// Package signals turns raw per-video popularity snapshots into validated,
// comparable signal data: the normalizer enforces batch invariants and the
// metric engine derives velocity, search differential, and monetization
// metrics from the normalized batch.
package signals

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/trendscout/internal/models"
)

// ErrEmptySignalSet is returned when no raw record survives filtering.
// Callers treat it as a recoverable no-data condition, not a crash.
var ErrEmptySignalSet = errors.New("empty signal set: no raw records survived filtering")

// videoURLFormat derives the public watch URL for a video id.
const videoURLFormat = "https://www.youtube.com/watch?v=%s"

// NormalizerConfig holds configuration for batch normalization
type NormalizerConfig struct {
	// GraceHours widens the publish-time window beyond the requested
	// lookback so videos published right at the boundary are not dropped.
	GraceHours int `json:"grace_hours"`
}

// DefaultNormalizerConfig returns the default configuration
func DefaultNormalizerConfig() NormalizerConfig {
	return NormalizerConfig{GraceHours: 6}
}

// DropCounts tracks how many raw records were discarded per reason.
// Record-level malformation is never escalated as an error; it is counted
// here and logged.
type DropCounts struct {
	Duplicate      int `json:"duplicate"`
	MissingFields  int `json:"missing_fields"`
	NoObservations int `json:"no_observations"`
	OutOfWindow    int `json:"out_of_window"`
}

// Total returns the total number of dropped records
func (d DropCounts) Total() int {
	return d.Duplicate + d.MissingFields + d.NoObservations + d.OutOfWindow
}

// Normalizer validates and deduplicates raw signal batches
type Normalizer struct {
	config NormalizerConfig
	logger arbor.ILogger
}

// NewNormalizer creates a new batch normalizer
func NewNormalizer(config NormalizerConfig, logger arbor.ILogger) *Normalizer {
	return &Normalizer{config: config, logger: logger}
}

// Normalize filters a raw batch into normalized signals. Records are kept
// first-seen-wins per video id; per-record problems (missing fields, no
// observations, publish time outside the lookback window plus grace) drop
// the record and increment a counter. ErrEmptySignalSet is returned only
// when nothing survives.
func (n *Normalizer) Normalize(req models.RequestContext, batch []models.RawVideoSignal, now time.Time) ([]models.NormalizedSignal, DropCounts, error) {
	var drops DropCounts

	windowStart := now.Add(-time.Duration(req.DaysBack)*24*time.Hour - time.Duration(n.config.GraceHours)*time.Hour)
	windowEnd := now.Add(time.Duration(n.config.GraceHours) * time.Hour)

	seen := make(map[string]bool, len(batch))
	normalized := make([]models.NormalizedSignal, 0, len(batch))

	for _, raw := range batch {
		if raw.VideoID == "" || raw.Title == "" {
			drops.MissingFields++
			continue
		}
		if seen[raw.VideoID] {
			drops.Duplicate++
			continue
		}
		seen[raw.VideoID] = true

		if raw.PublishedAt.Before(windowStart) || raw.PublishedAt.After(windowEnd) {
			drops.OutOfWindow++
			continue
		}

		observations := repairObservations(raw.Observations)
		if len(observations) == 0 {
			drops.NoObservations++
			continue
		}

		interest := make([]float64, len(raw.SearchInterest))
		copy(interest, raw.SearchInterest)

		normalized = append(normalized, models.NormalizedSignal{
			VideoID:        raw.VideoID,
			Title:          raw.Title,
			ChannelTitle:   raw.ChannelTitle,
			PublishedAt:    raw.PublishedAt,
			Thumbnail:      raw.Thumbnail,
			VideoURL:       fmt.Sprintf(videoURLFormat, raw.VideoID),
			Observations:   observations,
			CategoryID:     raw.CategoryID,
			Region:         raw.Region,
			SearchInterest: interest,
		})
	}

	if drops.Total() > 0 {
		n.logger.Debug().
			Int("kept", len(normalized)).
			Int("duplicate", drops.Duplicate).
			Int("missing_fields", drops.MissingFields).
			Int("no_observations", drops.NoObservations).
			Int("out_of_window", drops.OutOfWindow).
			Msg("Dropped malformed or out-of-window records during normalization")
	}

	if len(normalized) == 0 {
		return nil, drops, fmt.Errorf("%w (dropped %d of %d records)", ErrEmptySignalSet, drops.Total(), len(batch))
	}

	return normalized, drops, nil
}

// repairObservations returns a copy of the observations sorted by
// timestamp with strictly non-decreasing view counts. Points that would
// break monotonicity are dropped rather than propagated downstream.
func repairObservations(observations []models.ViewObservation) []models.ViewObservation {
	if len(observations) == 0 {
		return nil
	}

	ordered := make([]models.ViewObservation, len(observations))
	copy(ordered, observations)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].At.Before(ordered[j].At)
	})

	repaired := make([]models.ViewObservation, 0, len(ordered))
	repaired = append(repaired, ordered[0])
	for _, obs := range ordered[1:] {
		if obs.Views < repaired[len(repaired)-1].Views {
			continue
		}
		repaired = append(repaired, obs)
	}

	return repaired
}

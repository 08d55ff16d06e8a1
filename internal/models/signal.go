package models

import "time"

// ViewObservation is a single (timestamp, view count) snapshot for a video.
type ViewObservation struct {
	At    time.Time `json:"at"`
	Views int64     `json:"views"`
}

// RawVideoSignal is one video's popularity snapshot as delivered by the
// platform-fetch collaborator. Structural validity is only trusted after
// the normalizer has filtered the batch.
type RawVideoSignal struct {
	VideoID      string            `json:"video_id"`
	Title        string            `json:"title"`
	ChannelTitle string            `json:"channel_title"`
	PublishedAt  time.Time         `json:"published_at"`
	Thumbnail    string            `json:"thumbnail,omitempty"`
	Observations []ViewObservation `json:"observations"`
	CategoryID   string            `json:"category_id"`
	Region       string            `json:"region"`

	// SearchInterest is a small ordered sample of relative search interest
	// for the request keyword over the lookback window.
	SearchInterest []float64 `json:"search_interest"`
}

// NormalizedSignal is a RawVideoSignal with invariants enforced:
// observations are timestamp-ordered with non-decreasing view counts,
// optional fields are defaulted, and the video URL is derived. Built once
// by the normalizer and treated as immutable downstream.
type NormalizedSignal struct {
	VideoID        string
	Title          string
	ChannelTitle   string
	PublishedAt    time.Time
	Thumbnail      string
	VideoURL       string
	Observations   []ViewObservation
	CategoryID     string
	Region         string
	SearchInterest []float64
}

// LatestViews returns the view count of the most recent observation,
// or 0 when no observations are present.
func (n *NormalizedSignal) LatestViews() int64 {
	if len(n.Observations) == 0 {
		return 0
	}
	return n.Observations[len(n.Observations)-1].Views
}

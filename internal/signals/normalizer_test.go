package signals

import (
	"errors"
	"testing"
	"time"

	"github.com/ternarybob/trendscout/internal/common"
	"github.com/ternarybob/trendscout/internal/models"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testRequest() models.RequestContext {
	return models.RequestContext{
		Keyword:    "ai tools",
		Region:     "US",
		CategoryID: "28",
		DaysBack:   7,
		Agents:     []string{"algorithmic-eye"},
	}
}

func rawSignal(id string, publishedAt time.Time, observations ...models.ViewObservation) models.RawVideoSignal {
	return models.RawVideoSignal{
		VideoID:      id,
		Title:        "Video " + id,
		ChannelTitle: "Channel " + id,
		PublishedAt:  publishedAt,
		Observations: observations,
		CategoryID:   "28",
		Region:       "US",
	}
}

func obs(hoursAgo int, views int64) models.ViewObservation {
	return models.ViewObservation{At: testNow.Add(-time.Duration(hoursAgo) * time.Hour), Views: views}
}

func TestNormalizer_FirstSeenWins(t *testing.T) {
	n := NewNormalizer(DefaultNormalizerConfig(), common.GetLogger())

	batch := []models.RawVideoSignal{
		rawSignal("a", testNow.Add(-24*time.Hour), obs(2, 100), obs(1, 200)),
		rawSignal("a", testNow.Add(-48*time.Hour), obs(2, 999), obs(1, 9999)),
		rawSignal("b", testNow.Add(-24*time.Hour), obs(1, 50)),
	}

	normalized, drops, err := n.Normalize(testRequest(), batch, testNow)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if len(normalized) != 2 {
		t.Fatalf("kept %d signals, want 2", len(normalized))
	}
	if drops.Duplicate != 1 {
		t.Errorf("Duplicate = %d, want 1", drops.Duplicate)
	}
	if normalized[0].Observations[0].Views != 100 {
		t.Errorf("duplicate record replaced the first-seen one")
	}
}

func TestNormalizer_DropsMalformedRecords(t *testing.T) {
	n := NewNormalizer(DefaultNormalizerConfig(), common.GetLogger())

	noID := rawSignal("", testNow.Add(-24*time.Hour), obs(1, 10))
	noTitle := rawSignal("c", testNow.Add(-24*time.Hour), obs(1, 10))
	noTitle.Title = ""
	noObservations := rawSignal("d", testNow.Add(-24*time.Hour))

	batch := []models.RawVideoSignal{
		noID,
		noTitle,
		noObservations,
		rawSignal("e", testNow.Add(-24*time.Hour), obs(1, 10)),
	}

	normalized, drops, err := n.Normalize(testRequest(), batch, testNow)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if len(normalized) != 1 || normalized[0].VideoID != "e" {
		t.Fatalf("kept %v, want only video e", normalized)
	}
	if drops.MissingFields != 2 {
		t.Errorf("MissingFields = %d, want 2", drops.MissingFields)
	}
	if drops.NoObservations != 1 {
		t.Errorf("NoObservations = %d, want 1", drops.NoObservations)
	}
}

func TestNormalizer_LookbackWindow(t *testing.T) {
	n := NewNormalizer(DefaultNormalizerConfig(), common.GetLogger())
	req := testRequest() // 7 days back, 6h grace

	tests := []struct {
		name        string
		publishedAt time.Time
		wantKept    bool
	}{
		{"inside window", testNow.Add(-3 * 24 * time.Hour), true},
		{"boundary within grace", testNow.Add(-7*24*time.Hour - 3*time.Hour), true},
		{"outside window and grace", testNow.Add(-8 * 24 * time.Hour), false},
		{"future beyond grace", testNow.Add(12 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch := []models.RawVideoSignal{
				rawSignal("keeper", testNow.Add(-24*time.Hour), obs(1, 10)),
				rawSignal("probe", tt.publishedAt, obs(1, 10)),
			}
			normalized, _, err := n.Normalize(req, batch, testNow)
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			kept := len(normalized) == 2
			if kept != tt.wantKept {
				t.Errorf("kept = %v, want %v", kept, tt.wantKept)
			}
		})
	}
}

func TestNormalizer_RepairsObservations(t *testing.T) {
	n := NewNormalizer(DefaultNormalizerConfig(), common.GetLogger())

	// Out of order, with a view-count regression in the middle
	batch := []models.RawVideoSignal{
		rawSignal("a", testNow.Add(-24*time.Hour),
			obs(1, 400),
			obs(3, 100),
			obs(2, 50), // regression: below the 3-hours-ago count
		),
	}

	normalized, _, err := n.Normalize(testRequest(), batch, testNow)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	observations := normalized[0].Observations
	if len(observations) != 2 {
		t.Fatalf("got %d observations, want 2 (regression dropped)", len(observations))
	}
	for i := 1; i < len(observations); i++ {
		if observations[i].At.Before(observations[i-1].At) {
			t.Errorf("observations not time-ordered at %d", i)
		}
		if observations[i].Views < observations[i-1].Views {
			t.Errorf("observations not non-decreasing at %d", i)
		}
	}
}

func TestNormalizer_EmptySignalSet(t *testing.T) {
	n := NewNormalizer(DefaultNormalizerConfig(), common.GetLogger())

	tests := []struct {
		name  string
		batch []models.RawVideoSignal
	}{
		{"empty batch", nil},
		{"everything filtered", []models.RawVideoSignal{
			rawSignal("old", testNow.Add(-30*24*time.Hour), obs(1, 10)),
			rawSignal("", testNow.Add(-24*time.Hour), obs(1, 10)),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := n.Normalize(testRequest(), tt.batch, testNow)
			if !errors.Is(err, ErrEmptySignalSet) {
				t.Errorf("error = %v, want ErrEmptySignalSet", err)
			}
		})
	}
}

func TestNormalizer_DerivesVideoURL(t *testing.T) {
	n := NewNormalizer(DefaultNormalizerConfig(), common.GetLogger())

	normalized, _, err := n.Normalize(testRequest(), []models.RawVideoSignal{
		rawSignal("abc123", testNow.Add(-24*time.Hour), obs(1, 10)),
	}, testNow)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	want := "https://www.youtube.com/watch?v=abc123"
	if normalized[0].VideoURL != want {
		t.Errorf("VideoURL = %q, want %q", normalized[0].VideoURL, want)
	}
}

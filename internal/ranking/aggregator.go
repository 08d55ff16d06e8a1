package ranking

import (
	"fmt"
	"sort"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/trendscout/internal/models"
	"github.com/ternarybob/trendscout/internal/personas"
	pkgmodels "github.com/ternarybob/trendscout/pkg/models"
)

// publishedAtFormat is the wire format for the publish date
const publishedAtFormat = "2006-01-02"

// rankedRecord pairs a scored video with the persona that claimed it
type rankedRecord struct {
	video   personas.ScoredVideo
	persona personas.Persona
}

// Aggregator merges persona results into a bounded, ranked report
type Aggregator struct {
	maxInsights int
	logger      arbor.ILogger
}

// NewAggregator creates a new aggregator. maxInsights bounds the report
// payload; config validation keeps it within 1-50.
func NewAggregator(maxInsights int, logger arbor.ILogger) *Aggregator {
	return &Aggregator{maxInsights: maxInsights, logger: logger}
}

// BuildReport produces the final Report from every persona's scored batch.
// A video appears at most once, tagged with its highest-scoring persona;
// score ties resolve to the earlier persona in the requested agent order.
// An empty ranked list yields an empty-insight report with an explanatory
// summary, never an error.
func (a *Aggregator) BuildReport(req models.RequestContext, results []personas.PersonaResult) pkgmodels.Report {
	best := make(map[string]rankedRecord)
	for _, result := range results {
		for _, video := range result.Videos {
			id := video.Signal.VideoID
			current, exists := best[id]
			if !exists || video.Score > current.video.Score {
				best[id] = rankedRecord{video: video, persona: result.Persona}
			}
		}
	}

	ranked := make([]rankedRecord, 0, len(best))
	for _, record := range best {
		ranked = append(ranked, record)
	}
	sort.Slice(ranked, func(i, j int) bool {
		return Less(ranked[i].video, ranked[j].video)
	})

	if len(ranked) > a.maxInsights {
		a.logger.Debug().
			Int("ranked", len(ranked)).
			Int("max_insights", a.maxInsights).
			Msg("Truncating ranked videos to report bound")
		ranked = ranked[:a.maxInsights]
	}

	insights := make([]pkgmodels.TrendInsight, 0, len(ranked))
	for _, record := range ranked {
		insights = append(insights, buildInsight(record))
	}

	return pkgmodels.Report{
		Summary:  BuildSummary(req, ranked),
		Insights: insights,
	}
}

// buildInsight converts a ranked record into the outbound wire shape
func buildInsight(record rankedRecord) pkgmodels.TrendInsight {
	video := record.video
	return pkgmodels.TrendInsight{
		VideoID:               video.Signal.VideoID,
		Title:                 video.Signal.Title,
		ChannelTitle:          video.Signal.ChannelTitle,
		Thumbnail:             video.Signal.Thumbnail,
		AgentLabel:            record.persona.Label,
		Narrative:             video.Narrative,
		ActionStep:            video.ActionStep,
		ViewVelocity:          formatVelocity(video.Metrics.ViewVelocity),
		MonetizationPotential: video.Metrics.MonetizationTier,
		SearchDifferential:    formatDifferential(video.Metrics.SearchDifferential),
		PublishedAt:           video.Signal.PublishedAt.UTC().Format(publishedAtFormat),
		VideoURL:              video.Signal.VideoURL,
	}
}

func formatVelocity(velocity float64) string {
	return fmt.Sprintf("%.0f views/hr", velocity)
}

func formatDifferential(differential float64) string {
	return fmt.Sprintf("%+.1f%%", differential)
}

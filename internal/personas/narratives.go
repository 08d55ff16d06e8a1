package personas

import (
	"fmt"

	"github.com/ternarybob/trendscout/internal/signals"
	pkgmodels "github.com/ternarybob/trendscout/pkg/models"
)

// narrativeContext carries the inputs a narrative builder may interpolate.
// Builders must be pure functions of this context: identical context,
// identical text.
type narrativeContext struct {
	Keyword       string
	CategoryLabel string
	ChannelTitle  string
	Metrics       signals.DerivedMetrics
}

// narrativeBuilder produces a one-to-two sentence explanation and a single
// imperative action step for one video.
type narrativeBuilder func(ctx narrativeContext) (narrative string, actionStep string)

// algorithmicEyeNarrative reads the video through velocity and search
// anomalies.
func algorithmicEyeNarrative(ctx narrativeContext) (string, string) {
	m := ctx.Metrics

	var narrative string
	switch {
	case m.SearchDifferential >= 100 && m.NormalizedVelocity >= 0.5:
		narrative = fmt.Sprintf("Search interest for %q surged %.1f%% across the window while views compound at %.0f/hr, a twin spike the recommendation engine rewards aggressively.", ctx.Keyword, m.SearchDifferential, m.ViewVelocity)
	case m.SearchDifferential >= 100:
		narrative = fmt.Sprintf("Search interest for %q surged %.1f%% ahead of view velocity, which sits at %.0f/hr. Demand is outrunning supply in %s.", ctx.Keyword, m.SearchDifferential, m.ViewVelocity, ctx.CategoryLabel)
	case m.NormalizedVelocity >= 0.5:
		narrative = fmt.Sprintf("View velocity of %.0f/hr puts this video in the fastest tier of the batch for %q, even with search interest moving only %.1f%%.", m.ViewVelocity, ctx.Keyword, m.SearchDifferential)
	case m.SearchDifferential > 0:
		narrative = fmt.Sprintf("A modest %.1f%% rise in search interest for %q paired with %.0f views/hr suggests an early, unconfirmed signal.", m.SearchDifferential, ctx.Keyword, m.ViewVelocity)
	default:
		narrative = fmt.Sprintf("Velocity of %.0f views/hr with flat-to-declining search interest (%.1f%%) for %q reads as residual traffic rather than a breakout.", m.ViewVelocity, m.SearchDifferential, ctx.Keyword)
	}

	var action string
	switch {
	case m.SearchDifferential >= 100:
		action = "Publish a response video within 48 hours."
	case m.NormalizedVelocity >= 0.5:
		action = "Draft a same-topic video this week while velocity holds."
	default:
		action = "Add the topic to the watchlist and re-check in 72 hours."
	}

	return narrative, action
}

// creatorWhispererNarrative reads the video through format and
// collaboration angles.
func creatorWhispererNarrative(ctx narrativeContext) (string, string) {
	m := ctx.Metrics
	channel := ctx.ChannelTitle
	if channel == "" {
		channel = "the channel"
	}

	var narrative string
	switch {
	case m.NormalizedVelocity >= 0.7:
		narrative = fmt.Sprintf("%s found a format doing %.0f views/hr on %q. This is the pacing and framing other creators in %s will copy within the week.", channel, m.ViewVelocity, ctx.Keyword, ctx.CategoryLabel)
	case m.SearchDifferential >= 50:
		narrative = fmt.Sprintf("Audience pull toward %q is building (+%.1f%% search) while %s holds %.0f views/hr, leaving room for a collaboration or reaction angle.", ctx.Keyword, m.SearchDifferential, channel, m.ViewVelocity)
	case m.MonetizationTier == pkgmodels.TierHigh || m.MonetizationTier == pkgmodels.TierVeryHigh:
		narrative = fmt.Sprintf("%s is converting %q attention at %.0f views/hr in a %s-rated niche, which sponsors in %s track closely.", channel, ctx.Keyword, m.ViewVelocity, m.MonetizationTier, ctx.CategoryLabel)
	default:
		narrative = fmt.Sprintf("%s is testing %q at %.0f views/hr. The format has not broken out yet, which makes it cheap to iterate on.", channel, ctx.Keyword, m.ViewVelocity)
	}

	var action string
	switch {
	case m.NormalizedVelocity >= 0.7:
		action = "Adapt this format to your niche before it saturates."
	case m.SearchDifferential >= 50:
		action = "Pitch a collaboration to the channel this week."
	default:
		action = "Prototype a short in this format and measure retention."
	}

	return narrative, action
}

// monetizationMavenNarrative reads the video through RPM and sponsor
// demand.
func monetizationMavenNarrative(ctx narrativeContext) (string, string) {
	m := ctx.Metrics

	var narrative string
	switch m.MonetizationTier {
	case pkgmodels.TierVeryHigh:
		narrative = fmt.Sprintf("%s pricing on %q is at the top of the scale: %.0f views/hr in a Very High RPM niche with search interest moving %.1f%%. Sponsor inventory here clears fast.", ctx.CategoryLabel, ctx.Keyword, m.ViewVelocity, m.SearchDifferential)
	case pkgmodels.TierHigh:
		narrative = fmt.Sprintf("A High monetization read on %q: %.0f views/hr against a strong %s category multiplier. Mid-roll and sponsor slots are worth locking in now.", ctx.Keyword, m.ViewVelocity, ctx.CategoryLabel)
	case pkgmodels.TierMedium:
		narrative = fmt.Sprintf("Revenue potential on %q is middling: %.0f views/hr and a Medium tier in %s. Affiliate placements will outperform direct sponsorship here.", ctx.Keyword, m.ViewVelocity, ctx.CategoryLabel)
	default:
		narrative = fmt.Sprintf("The %q signal in %s is pre-revenue: %.0f views/hr and a Low monetization tier. Treat it as audience-building, not income.", ctx.Keyword, ctx.CategoryLabel, m.ViewVelocity)
	}

	var action string
	switch m.MonetizationTier {
	case pkgmodels.TierVeryHigh:
		action = "Reach out to category sponsors before rates reprice."
	case pkgmodels.TierHigh:
		action = "Line up a mid-roll sponsor for your next upload."
	case pkgmodels.TierMedium:
		action = "Attach affiliate links to related content this week."
	default:
		action = "Defer monetization and optimize for subscriber growth."
	}

	return narrative, action
}

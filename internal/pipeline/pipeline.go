// Package pipeline orchestrates the trend intelligence pipeline:
// normalization, metric derivation, persona scoring, and ranking. It is
// invoked as a library function and performs no I/O of its own; fetching
// raw signals and rendering the report are collaborator concerns.
package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/trendscout/internal/common"
	"github.com/ternarybob/trendscout/internal/models"
	"github.com/ternarybob/trendscout/internal/personas"
	"github.com/ternarybob/trendscout/internal/ranking"
	"github.com/ternarybob/trendscout/internal/signals"
	pkgmodels "github.com/ternarybob/trendscout/pkg/models"
)

// Pipeline sequences the trend intelligence stages for one request.
// All configuration is read at construction and immutable afterwards; a
// Pipeline is safe for concurrent use.
type Pipeline struct {
	config     common.PipelineConfig
	registry   *personas.Registry
	normalizer *signals.Normalizer
	engine     *signals.MetricEngine
	scorer     *personas.Scorer
	logger     arbor.ILogger
	clock      func() time.Time
}

// New creates a pipeline from the application configuration
func New(config *common.Config, logger arbor.ILogger) *Pipeline {
	normalizerConfig := signals.DefaultNormalizerConfig()
	normalizerConfig.GraceHours = config.Pipeline.GraceHours

	return &Pipeline{
		config:     config.Pipeline,
		registry:   personas.NewRegistry(),
		normalizer: signals.NewNormalizer(normalizerConfig, logger),
		engine:     signals.NewMetricEngine(signals.DefaultMetricConfig()),
		scorer:     personas.NewScorer(),
		logger:     logger,
		clock:      time.Now,
	}
}

// WithClock overrides the reference clock used for lookback-window
// filtering. Tests use a fixed clock to make runs reproducible.
func (p *Pipeline) WithClock(clock func() time.Time) *Pipeline {
	p.clock = clock
	return p
}

// Run executes the pipeline for one validated request and a complete raw
// signal batch, returning a complete Report. All-or-nothing: on error no
// partial Report is returned, so retry is re-fetch plus re-invoke.
func (p *Pipeline) Run(ctx context.Context, req models.RequestContext, batch []models.RawVideoSignal) (pkgmodels.Report, error) {
	runLogger := p.logger.WithCorrelationId(common.NewRunID())

	if err := req.Validate(); err != nil {
		return pkgmodels.Report{}, fmt.Errorf("invalid request context: %w", err)
	}

	active, unknown, err := p.registry.Resolve(req.Agents)
	if len(unknown) > 0 {
		runLogger.Warn().Strs("agents", unknown).Msg("Ignoring unknown agent ids")
	}
	if err != nil {
		return pkgmodels.Report{}, err
	}

	runLogger.Info().
		Str("keyword", req.Keyword).
		Str("region", req.Region).
		Str("category", req.CategoryID).
		Int("days_back", req.DaysBack).
		Int("agents", len(active)).
		Int("raw_signals", len(batch)).
		Msg("Starting trend pipeline run")

	normalized, drops, err := p.normalizer.Normalize(req, batch, p.clock().UTC())
	if err != nil {
		return pkgmodels.Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return pkgmodels.Report{}, err
	}

	metrics := p.engine.ComputeBatch(normalized)
	if err := ctx.Err(); err != nil {
		return pkgmodels.Report{}, err
	}

	results := p.scorePersonas(active, normalized, metrics, req)
	if err := ctx.Err(); err != nil {
		return pkgmodels.Report{}, err
	}

	aggregator := ranking.NewAggregator(p.config.MaxInsights, runLogger)
	report := aggregator.BuildReport(req, results)

	runLogger.Info().
		Int("normalized", len(normalized)).
		Int("dropped", drops.Total()).
		Int("insights", len(report.Insights)).
		Msg("Trend pipeline run complete")

	return report, nil
}

// scorePersonas scores the batch under every active persona. Personas are
// pure functions over the same immutable metrics, so concurrent and
// sequential execution produce identical results; outputs are kept in
// requested-agent order either way.
func (p *Pipeline) scorePersonas(active []personas.Persona, normalized []models.NormalizedSignal, metrics []signals.DerivedMetrics, req models.RequestContext) []personas.PersonaResult {
	results := make([]personas.PersonaResult, len(active))

	if !p.config.Parallel || len(active) < 2 {
		for i, persona := range active {
			results[i] = p.scorer.Score(persona, normalized, metrics, req)
		}
		return results
	}

	var wg sync.WaitGroup
	for i, persona := range active {
		wg.Add(1)
		go func(i int, persona personas.Persona) {
			defer wg.Done()
			results[i] = p.scorer.Score(persona, normalized, metrics, req)
		}(i, persona)
	}
	wg.Wait()

	return results
}

// Package report assembles the full financial analysis of a company.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/finsight/internal/common"
	"github.com/ternarybob/finsight/internal/models"
	"github.com/ternarybob/finsight/internal/services/benchmarks"
	"github.com/ternarybob/finsight/internal/services/forecast"
	"github.com/ternarybob/finsight/internal/services/health"
	"github.com/ternarybob/finsight/internal/services/heuristics"
	"github.com/ternarybob/finsight/internal/services/normalize"
	"github.com/ternarybob/finsight/internal/services/ratios"
	"github.com/ternarybob/finsight/internal/services/recommend"
	"github.com/ternarybob/finsight/internal/services/valuation"
)

const defaultMaxYears = 5

// Input is everything one analysis reads. Sector and Quote are optional.
type Input struct {
	Company    models.Company
	Statements []models.StatementRecord
	Sector     *models.SectorBenchmark
	Quote      *models.MarketQuote
	MaxYears   int // overrides the engine default when > 0
}

// Engine runs the analysis pipeline on in-memory data
type Engine struct {
	scorer      *health.Scorer
	recommender *recommend.Engine
	policy      valuation.Policy
	maxYears    int
	parallel    bool
	logger      arbor.ILogger
}

// NewEngine creates an analysis engine from the analysis and valuation configuration
func NewEngine(config *common.Config, logger arbor.ILogger) *Engine {
	if config == nil {
		config = common.NewDefaultConfig()
	}
	maxYears := config.Analysis.MaxYears
	if maxYears <= 0 {
		maxYears = defaultMaxYears
	}
	return &Engine{
		scorer:      health.NewScorer(logger),
		recommender: recommend.NewEngine(logger),
		policy:      valuation.PolicyFromConfig(config.Valuation),
		maxYears:    maxYears,
		parallel:    config.Analysis.ParallelRatios,
		logger:      logger,
	}
}

// Analyze builds a report. Parts that cannot be computed from the available
// history are left nil. It only fails when ctx is cancelled.
func (e *Engine) Analyze(ctx context.Context, in Input) (*models.Report, error) {
	code := models.NormalizeCompanyCode(in.Company.Code)
	company := in.Company
	company.Code = code

	maxYears := e.maxYears
	if in.MaxYears > 0 {
		maxYears = in.MaxYears
	}

	snapshots := normalize.Window(normalize.Normalize(code, in.Statements), maxYears)

	series, err := ratios.CalculateSeries(ctx, snapshots, e.parallel)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate ratios for %s: %w", code, err)
	}

	report := &models.Report{
		ID:          common.NewReportID(),
		Company:     company,
		GeneratedAt: time.Now(),
		Years:       models.Years(snapshots),
		Snapshots:   snapshots,
		Ratios:      series,
		Sector:      in.Sector,
	}

	latest := report.LatestRatios()
	latestSnapshot := normalize.Latest(snapshots)

	report.SectorComparison = benchmarks.CompareWithSector(latest, in.Sector)
	report.Forecast = forecast.Forecast(snapshots)
	report.Health = e.scorer.Assess(latest, snapshots, in.Sector)
	report.BusinessRecommendations = e.scorer.Recommend(report.Health)
	report.Valuation = valuation.Analyze(e.policy, latestSnapshot)

	recIn := recommend.Input{
		CompanyCode: code,
		Latest:      latest,
		Snapshots:   snapshots,
		Sector:      in.Sector,
		Valuation:   report.Valuation,
		Quote:       in.Quote,
	}
	report.RiskFactors = e.recommender.RiskFactors(recIn)
	report.Recommendation = e.recommender.Recommend(recIn)

	report.Heuristics = collectHeuristics(report, snapshots)

	if e.logger != nil {
		e.logger.Debug().
			Str("company", code).
			Int("years", len(snapshots)).
			Int("heuristics", len(report.Heuristics)).
			Msg("Report analyzed")
	}

	return report, nil
}

// collectHeuristics merges the fallback flags raised by every part of a report
func collectHeuristics(r *models.Report, snapshots []models.AnnualSnapshot) []string {
	flags := &heuristics.Set{}

	for _, s := range snapshots {
		flags.AddIf(ratios.COGSApproximated(s), heuristics.FlagCOGSApproximated)
	}
	if r.Forecast != nil {
		flags.AddIf(len(r.Forecast.DefaultedMetrics) > 0, heuristics.FlagDefaultGrowthRate)
	}
	if r.Valuation != nil {
		flags.AddIf(r.Valuation.RetainedEarningsEstimated, heuristics.FlagRetainedEarnings)
	}
	if r.Health != nil {
		flags.Merge(r.Health.Heuristics)
	}
	if r.BusinessRecommendations != nil {
		flags.Merge(r.BusinessRecommendations.Heuristics)
	}
	if r.RiskFactors != nil {
		flags.Merge(r.RiskFactors.Heuristics)
	}
	if r.Recommendation != nil {
		flags.Merge(r.Recommendation.Heuristics)
	}

	return flags.List()
}

package report

import (
	"context"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ternarybob/finsight/internal/interfaces"
	"github.com/ternarybob/finsight/internal/models"
)

// Traced wraps a report service with spans and timing logs
type Traced struct {
	next   interfaces.ReportService
	tracer trace.Tracer
	logger arbor.ILogger
}

// NewTraced decorates next. A nil tracer disables spans.
func NewTraced(next interfaces.ReportService, tracer trace.Tracer, logger arbor.ILogger) *Traced {
	return &Traced{next: next, tracer: tracer, logger: logger}
}

// Generate traces report generation
func (t *Traced) Generate(ctx context.Context, companyCode string, opts models.ReportOptions) (*models.Report, error) {
	ctx, span := t.start(ctx, "report.Generate", companyCode)
	defer span.End()

	start := time.Now()
	report, err := t.next.Generate(ctx, companyCode, opts)
	t.finish(span, "generate", companyCode, start, err)

	if err == nil && report != nil {
		span.SetAttributes(
			attribute.String("report.id", report.ID),
			attribute.Int("report.years", len(report.Years)),
			attribute.Int("report.heuristics", len(report.Heuristics)),
		)
		if report.Recommendation != nil {
			span.SetAttributes(attribute.String("report.rating", string(report.Recommendation.Rating)))
		}
	}
	return report, err
}

// Ratios traces ratio series computation
func (t *Traced) Ratios(ctx context.Context, companyCode string) ([]models.RatioSet, error) {
	ctx, span := t.start(ctx, "report.Ratios", companyCode)
	defer span.End()

	start := time.Now()
	series, err := t.next.Ratios(ctx, companyCode)
	t.finish(span, "ratios", companyCode, start, err)
	return series, err
}

// Statements traces a single-year statement lookup
func (t *Traced) Statements(ctx context.Context, companyCode string, year int) (*models.AnnualSnapshot, error) {
	ctx, span := t.start(ctx, "report.Statements", companyCode)
	defer span.End()
	span.SetAttributes(attribute.Int("statements.year", year))

	start := time.Now()
	snap, err := t.next.Statements(ctx, companyCode, year)
	t.finish(span, "statements", companyCode, start, err)
	return snap, err
}

// Compare traces a comparison across companies and sectors
func (t *Traced) Compare(ctx context.Context, companyCodes, sectors []string) (*models.Comparison, error) {
	ctx, span := t.start(ctx, "report.Compare", strings.Join(companyCodes, ","))
	defer span.End()
	span.SetAttributes(attribute.StringSlice("compare.sectors", sectors))

	start := time.Now()
	comparison, err := t.next.Compare(ctx, companyCodes, sectors)
	t.finish(span, "compare", strings.Join(companyCodes, ","), start, err)
	return comparison, err
}

// Sector traces a sector analysis
func (t *Traced) Sector(ctx context.Context, sector string) (*models.SectorAnalysis, error) {
	ctx, span := t.start(ctx, "report.Sector", "")
	defer span.End()
	span.SetAttributes(attribute.String("sector.name", sector))

	start := time.Now()
	analysis, err := t.next.Sector(ctx, sector)
	t.finish(span, "sector", "", start, err)
	if err == nil && analysis != nil {
		span.SetAttributes(attribute.Int("sector.companies", analysis.CompanyCount))
	}
	return analysis, err
}

func (t *Traced) start(ctx context.Context, name, companyCode string) (context.Context, trace.Span) {
	if t.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return t.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("company.code", models.NormalizeCompanyCode(companyCode)),
	))
}

func (t *Traced) finish(span trace.Span, op, companyCode string, start time.Time, err error) {
	elapsed := time.Since(start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		t.logger.Warn().
			Str("op", op).
			Str("company", companyCode).
			Dur("duration", elapsed).
			Err(err).
			Msg("Report operation failed")
		return
	}
	t.logger.Debug().
		Str("op", op).
		Str("company", companyCode).
		Dur("duration", elapsed).
		Msg("Report operation completed")
}

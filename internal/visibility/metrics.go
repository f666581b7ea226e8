package visibility

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Arjun0606/cabbageseo-sub003/pkg/domain"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/metrics"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/serrors"
)

// scanMetrics instruments the scan pipeline. A nil *scanMetrics (no meter
// configured) disables collection, so tests and one-off CLI runs skip the
// exporter entirely.
type scanMetrics struct {
	scans            metric.Int64Counter
	scanDuration     metric.Float64Histogram
	scores           metric.Int64Histogram
	platformCalls    metric.Int64Counter
	platformDuration metric.Float64Histogram
}

func newScanMetrics(meter metric.Meter) (*scanMetrics, error) {
	if meter == nil {
		return nil, nil
	}

	var m scanMetrics
	var err error
	if m.scans, err = meter.Int64Counter("visibility_scans_total",
		metric.WithDescription("Completed visibility scans.")); err != nil {
		return nil, fmt.Errorf("could not create scan counter: %w", err)
	}
	if m.scanDuration, err = meter.Float64Histogram("visibility_scan_duration_seconds",
		metric.WithDescription("End-to-end scan pipeline duration."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...)); err != nil {
		return nil, fmt.Errorf("could not create scan duration histogram: %w", err)
	}
	if m.scores, err = meter.Int64Histogram("visibility_score",
		metric.WithDescription("Distribution of computed visibility scores."),
		metric.WithExplicitBucketBoundaries(0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100)); err != nil {
		return nil, fmt.Errorf("could not create score histogram: %w", err)
	}
	if m.platformCalls, err = meter.Int64Counter("visibility_platform_requests_total",
		metric.WithDescription("Platform adapter calls by outcome.")); err != nil {
		return nil, fmt.Errorf("could not create platform counter: %w", err)
	}
	if m.platformDuration, err = meter.Float64Histogram("visibility_platform_request_duration_seconds",
		metric.WithDescription("Platform adapter call duration."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...)); err != nil {
		return nil, fmt.Errorf("could not create platform duration histogram: %w", err)
	}

	return &m, nil
}

func (m *scanMetrics) observeScan(ctx context.Context, took time.Duration, invisible bool) {
	if m == nil {
		return
	}

	m.scans.Add(ctx, 1, metric.WithAttributes(attribute.Bool("invisible", invisible)))
	m.scanDuration.Record(ctx, took.Seconds())
}

func (m *scanMetrics) observeScore(ctx context.Context, score int) {
	if m == nil {
		return
	}

	m.scores.Record(ctx, int64(score))
}

func (m *scanMetrics) observePlatformCall(ctx context.Context, platform domain.Platform, took time.Duration, err error) {
	if m == nil {
		return
	}

	m.platformCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("platform", string(platform)),
		attribute.String("outcome", callOutcome(err)),
	))
	m.platformDuration.Record(ctx, took.Seconds(), metric.WithAttributes(
		attribute.String("platform", string(platform)),
	))
}

func callOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, serrors.ErrNotConfigured):
		return "not_configured"
	case errors.Is(err, serrors.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}

package visibility

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/Arjun0606/cabbageseo-sub003/internal/config"
	"github.com/Arjun0606/cabbageseo-sub003/internal/ratelimit"
	"github.com/Arjun0606/cabbageseo-sub003/internal/scoring"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/aiplatform"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/domain"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/logger"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/serrors"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/storage"
)

const (
	defaultRateLimit       = 5
	defaultRateWindow      = time.Hour
	defaultDNSTimeout      = 5 * time.Second
	defaultSiteTimeout     = 5 * time.Second
	defaultClassifyTimeout = 10 * time.Second
	defaultQueryTimeout    = 20 * time.Second
	defaultPlatformTimeout = 30 * time.Second
	defaultPreviewTimeout  = 25 * time.Second
	defaultPersistTimeout  = 10 * time.Second
	defaultSnippetLength   = 280

	// queriesPerPlatform is how many of the generated queries each platform
	// receives: the brand query plus one rotating non-brand query.
	queriesPerPlatform = 2
	// maxRecommendedOthers caps the competitor list on each platform result.
	maxRecommendedOthers = 5
)

// Options configure the scan pipeline: the rate limit and the deadline of
// each pipeline step. These settings are typically derived from application
// configuration.
type Options struct {
	// RateLimit is the number of scan slots per caller per window.
	RateLimit int
	// RateWindow is the fixed rate-limit window length.
	RateWindow time.Duration
	// DNSTimeout bounds the resolution check during domain validation.
	DNSTimeout time.Duration
	// SiteTimeout bounds the best-effort homepage fetch.
	SiteTimeout time.Duration
	// ClassifyTimeout bounds the best-effort category classification.
	ClassifyTimeout time.Duration
	// QueryTimeout bounds AI query generation. The generator falls back to
	// templates internally, so expiry never fails the scan.
	QueryTimeout time.Duration
	// PlatformTimeout bounds each individual platform call.
	PlatformTimeout time.Duration
	// PreviewTimeout bounds the best-effort content preview.
	PreviewTimeout time.Duration
	// PersistTimeout bounds the best-effort report insert.
	PersistTimeout time.Duration
	// SnippetLength caps the answer excerpt on each platform result, in
	// runes.
	SnippetLength int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		RateLimit:       cfg.RateLimit.Limit,
		RateWindow:      cfg.RateLimit.Window,
		DNSTimeout:      cfg.Scan.DNSTimeout,
		SiteTimeout:     cfg.Scan.SiteContextTimeout,
		ClassifyTimeout: cfg.Scan.ClassifyTimeout,
		QueryTimeout:    cfg.Scan.QueryTimeout,
		PlatformTimeout: cfg.Scan.PlatformTimeout,
		PreviewTimeout:  cfg.Scan.PreviewTimeout,
		PersistTimeout:  cfg.Scan.PersistTimeout,
		SnippetLength:   cfg.Scan.SnippetLength,
	}
}

func (o Options) withDefaults() Options {
	if o.RateLimit <= 0 {
		o.RateLimit = defaultRateLimit
	}
	if o.RateWindow <= 0 {
		o.RateWindow = defaultRateWindow
	}
	if o.DNSTimeout <= 0 {
		o.DNSTimeout = defaultDNSTimeout
	}
	if o.SiteTimeout <= 0 {
		o.SiteTimeout = defaultSiteTimeout
	}
	if o.ClassifyTimeout <= 0 {
		o.ClassifyTimeout = defaultClassifyTimeout
	}
	if o.QueryTimeout <= 0 {
		o.QueryTimeout = defaultQueryTimeout
	}
	if o.PlatformTimeout <= 0 {
		o.PlatformTimeout = defaultPlatformTimeout
	}
	if o.PreviewTimeout <= 0 {
		o.PreviewTimeout = defaultPreviewTimeout
	}
	if o.PersistTimeout <= 0 {
		o.PersistTimeout = defaultPersistTimeout
	}
	if o.SnippetLength <= 0 {
		o.SnippetLength = defaultSnippetLength
	}

	return o
}

// Deps are the collaborators the service orchestrates. Limiter, Resolver,
// Queries, Scorer and at least one platform are required; the rest are
// optional and the pipeline degrades gracefully without them.
type Deps struct {
	Limiter    ratelimit.Limiter
	Resolver   Resolver
	Site       SiteFetcher
	Classifier CategoryClassifier
	Queries    QueryGenerator
	Platforms  []aiplatform.Client
	Scorer     scoring.Strategy
	Preview    PreviewGenerator
	Reports    storage.ReportStorage
	// Meter enables pipeline metrics when set.
	Meter metric.Meter
}

// service is the concrete implementation of the Scanner interface.
type service struct {
	options Options
	deps    Deps
	metrics *scanMetrics
}

// New creates the scan service. It fails fast on missing required
// dependencies so wiring bugs surface at startup rather than on the first
// request.
func New(deps Deps, options Options) (Scanner, error) {
	switch {
	case deps.Limiter == nil:
		return nil, errors.New("visibility: limiter is required")
	case deps.Resolver == nil:
		return nil, errors.New("visibility: resolver is required")
	case deps.Queries == nil:
		return nil, errors.New("visibility: query generator is required")
	case deps.Scorer == nil:
		return nil, errors.New("visibility: scorer is required")
	case len(deps.Platforms) == 0:
		return nil, errors.New("visibility: at least one platform is required")
	}

	m, err := newScanMetrics(deps.Meter)
	if err != nil {
		return nil, fmt.Errorf("could not create metrics: %w", err)
	}

	return &service{
		options: options.withDefaults(),
		deps:    deps,
		metrics: m,
	}, nil
}

// Scan implements Scanner. Validation happens before the rate limit is
// charged, so malformed or unresolvable domains never cost a slot.
func (s *service) Scan(ctx context.Context, callerID, rawDomain string) (*domain.VisibilityReport, error) {
	dom, err := s.validateDomain(ctx, rawDomain)
	if err != nil {
		return nil, err
	}
	ctx = logger.WithFields(ctx, zap.String("domain", dom))

	if !s.deps.Limiter.TryConsume(callerID, 1) {
		return nil, serrors.With(serrors.ErrRateLimited, "rate limit exceeded: %s", s.limitMessage())
	}

	return s.run(ctx, dom)
}

// Report implements Scanner.
func (s *service) Report(ctx context.Context, id domain.ReportID) (*domain.VisibilityReport, error) {
	if s.deps.Reports == nil {
		return nil, serrors.With(serrors.ErrNotFound, "report %s not found", id)
	}

	report, err := s.deps.Reports.ReportByID(ctx, id)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not get report")
	}
	if report == nil {
		return nil, serrors.With(serrors.ErrNotFound, "report %s not found", id)
	}

	return report, nil
}

// validateDomain normalizes the raw input and confirms it resolves in DNS.
// Both failures map to bad requests.
func (s *service) validateDomain(ctx context.Context, rawDomain string) (string, error) {
	dom, err := NormalizeDomain(rawDomain)
	if err != nil {
		return "", err
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.options.DNSTimeout)
	defer cancel()
	if _, err := s.deps.Resolver.LookupHost(lookupCtx, dom); err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "%s does not resolve", dom)
	}

	return dom, nil
}

// run executes the pipeline for an already validated and charged domain.
func (s *service) run(ctx context.Context, dom string) (*domain.VisibilityReport, error) {
	start := time.Now()

	site := s.siteContext(ctx, dom)

	queryCtx, cancel := context.WithTimeout(ctx, s.options.QueryTimeout)
	querySet := s.deps.Queries.Generate(queryCtx, dom, site)
	cancel()

	results, platformErrs := s.askPlatforms(ctx, dom, querySet)
	// platform failures degrade the report, a caller abort discards it
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("scan aborted: %w", err)
	}

	score, breakdown, explanation := s.deps.Scorer.Score(results, len(s.deps.Platforms))

	report := &domain.VisibilityReport{
		Domain:    dom,
		Results:   results,
		Summary:   s.buildSummary(dom, querySet, results, platformErrs, score, breakdown, explanation),
		CreatedAt: time.Now().UTC(),
	}

	if s.deps.Preview != nil {
		report.Preview = bestEffort(ctx, "content preview", s.options.PreviewTimeout, nil,
			func(ctx context.Context) (*domain.ContentPreview, error) {
				return s.deps.Preview.Generate(ctx, dom, querySet.BusinessSummary, site)
			})
	}

	if s.deps.Reports != nil {
		report.ID = bestEffort(ctx, "report persistence", s.options.PersistTimeout, domain.ReportID{},
			func(ctx context.Context) (domain.ReportID, error) {
				return s.deps.Reports.StoreReport(ctx, report)
			})
	}

	s.metrics.observeScan(ctx, time.Since(start), report.Summary.IsInvisible)
	s.metrics.observeScore(ctx, score)
	logger.Get(ctx).Info("scan completed",
		zap.Int("score", score),
		zap.Bool("invisible", report.Summary.IsInvisible),
		zap.Int("platformErrors", len(platformErrs)),
		zap.Duration("took", time.Since(start)))

	return report, nil
}

// siteContext fetches and classifies homepage context. Both steps are best
// effort: a scan of a site that is down still runs against the platforms.
func (s *service) siteContext(ctx context.Context, dom string) *domain.SiteContext {
	if s.deps.Site == nil {
		return nil
	}

	site := bestEffort(ctx, "site context", s.options.SiteTimeout, nil,
		func(ctx context.Context) (*domain.SiteContext, error) {
			return s.deps.Site.Fetch(ctx, dom)
		})
	if site == nil || s.deps.Classifier == nil {
		return site
	}

	site.Category = bestEffort(ctx, "category classification", s.options.ClassifyTimeout, "",
		func(ctx context.Context) (string, error) {
			return s.deps.Classifier.Classify(ctx, dom, site)
		})

	return site
}

func (s *service) buildSummary(dom string, querySet domain.QuerySet, results []domain.PlatformResult,
	platformErrs []domain.PlatformError, score int, breakdown domain.ScoreBreakdown, explanation string,
) domain.ScanSummary {
	mentioned := 0
	platformScores := make(map[domain.Platform]int, len(s.deps.Platforms))
	for _, r := range results {
		if r.MentionedYou {
			mentioned++
		}
		platformScores[r.Platform] = r.Score
	}
	// Errored platforms show up as explicit zeros rather than missing keys.
	for _, perr := range platformErrs {
		if _, ok := platformScores[perr.Platform]; !ok {
			platformScores[perr.Platform] = 0
		}
	}

	return domain.ScanSummary{
		TotalQueries:     queriesPerPlatform * len(s.deps.Platforms),
		MentionedCount:   mentioned,
		IsInvisible:      mentioned == 0,
		VisibilityScore:  score,
		PlatformScores:   platformScores,
		ScoreBreakdown:   breakdown,
		ScoreExplanation: explanation,
		BusinessSummary:  querySet.BusinessSummary,
		Message:          scanMessage(dom, score, mentioned, len(s.deps.Platforms)),
		PlatformErrors:   platformErrs,
	}
}

// scanMessage is the one-line human reading of a scan, tiered by score.
func scanMessage(dom string, score, mentioned, attempted int) string {
	switch {
	case mentioned == 0:
		return fmt.Sprintf("%s is invisible to AI. When people ask AI about what you do, you don't exist.", dom)
	case score >= 70:
		return fmt.Sprintf("%s has a strong AI presence: mentioned on %d of %d platforms.", dom, mentioned, attempted)
	case score >= 40:
		return fmt.Sprintf("%s shows up in AI answers, but inconsistently: mentioned on %d of %d platforms.",
			dom, mentioned, attempted)
	default:
		return fmt.Sprintf("%s is barely visible to AI: mentioned on %d of %d platforms.", dom, mentioned, attempted)
	}
}

// limitMessage spells out the configured quota for 429 responses.
func (s *service) limitMessage() string {
	if s.options.RateWindow == time.Hour {
		return fmt.Sprintf("%d scans per hour", s.options.RateLimit)
	}

	return fmt.Sprintf("%d scans per %s", s.options.RateLimit, s.options.RateWindow)
}

var _ Scanner = (*service)(nil)

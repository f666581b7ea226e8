// Package visibility orchestrates the scan pipeline: validate the domain,
// charge the rate limit, gather site context, generate queries, fan out to
// the AI platforms, extract signals, score the evidence and assemble the
// report. Comparisons run two pipelines head to head.
package visibility

import (
	"context"

	"github.com/Arjun0606/cabbageseo-sub003/pkg/domain"
)

// Scanner is the service surface consumed by the HTTP handlers.
//
//go:generate mockgen -package mockvisibility -source=interface.go -destination=mock/mockvisibility.go *
type Scanner interface {
	// Scan runs the full pipeline for one domain. callerID keys the rate
	// limit; rawDomain may be any user-supplied spelling of the domain.
	Scan(ctx context.Context, callerID, rawDomain string) (*domain.VisibilityReport, error)
	// Compare scans two domains concurrently and derives a head-to-head
	// verdict. It charges two rate-limit slots atomically before either scan
	// begins.
	Compare(ctx context.Context, callerID, first, second string) (*domain.Comparison, error)
	// Report returns a previously persisted report by its shareable ID.
	Report(ctx context.Context, id domain.ReportID) (*domain.VisibilityReport, error)
}

// Resolver confirms a domain resolves before a scan spends quota on it.
// *net.Resolver satisfies it.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// SiteFetcher loads homepage context. Satisfied by sitecontext.Fetcher.
type SiteFetcher interface {
	Fetch(ctx context.Context, dom string) (*domain.SiteContext, error)
}

// CategoryClassifier assigns a business category to a fetched site.
// Satisfied by sitecontext.Classifier.
type CategoryClassifier interface {
	Classify(ctx context.Context, dom string, site *domain.SiteContext) (string, error)
}

// QueryGenerator produces the per-scan query set. Satisfied by
// queries.Generator.
type QueryGenerator interface {
	Generate(ctx context.Context, dom string, site *domain.SiteContext) domain.QuerySet
}

// PreviewGenerator produces the optional content preview. Satisfied by
// preview.Generator.
type PreviewGenerator interface {
	Generate(ctx context.Context, dom, businessSummary string, site *domain.SiteContext) (*domain.ContentPreview, error)
}

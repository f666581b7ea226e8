package visibility

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Arjun0606/cabbageseo-sub003/internal/signals"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/aiplatform"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/domain"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/logger"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/serrors"
)

// answeredQuery pairs a query with the answer it produced and the signals
// extracted from that answer.
type answeredQuery struct {
	query  domain.GeneratedQuery
	answer *aiplatform.Answer
	eval   signals.Evaluation
}

// askPlatforms fans out to every platform concurrently. Each platform gets
// queriesPerPlatform queries, also in parallel, so a full scan issues all
// platform calls at once and finishes within a single platform timeout.
func (s *service) askPlatforms(ctx context.Context, dom string, set domain.QuerySet,
) ([]domain.PlatformResult, []domain.PlatformError) {
	type outcome struct {
		result *domain.PlatformResult
		err    *domain.PlatformError
	}

	outcomes := make([]outcome, len(s.deps.Platforms))
	var wg sync.WaitGroup
	for i, client := range s.deps.Platforms {
		i, client := i, client
		wg.Add(1)
		go func() {
			defer wg.Done()

			result, perr := s.askPlatform(ctx, client, dom, platformQueries(set, i))
			outcomes[i] = outcome{result: result, err: perr}
		}()
	}
	wg.Wait()

	results := make([]domain.PlatformResult, 0, len(outcomes))
	var platformErrs []domain.PlatformError
	for _, o := range outcomes {
		if o.result != nil {
			results = append(results, *o.result)
		}
		if o.err != nil {
			platformErrs = append(platformErrs, *o.err)
		}
	}

	return results, platformErrs
}

// platformQueries picks the queries one platform receives: the brand query
// always, plus discovery or decision alternating by the platform's position
// in the fan-out, so every intent gets coverage within a scan.
func platformQueries(set domain.QuerySet, position int) []domain.GeneratedQuery {
	queries := make([]domain.GeneratedQuery, 0, queriesPerPlatform)
	if q, ok := set.ByIntent(domain.IntentBrand); ok {
		queries = append(queries, q)
	}

	rotating := domain.IntentDiscovery
	if position%2 == 1 {
		rotating = domain.IntentDecision
	}
	if q, ok := set.ByIntent(rotating); ok {
		queries = append(queries, q)
	}

	return queries
}

// askPlatform poses each query to one platform and merges the answers. A
// platform only fails the scan row when every query against it failed; a
// single successful answer is enough to produce a result.
func (s *service) askPlatform(ctx context.Context, client aiplatform.Client, dom string,
	queries []domain.GeneratedQuery,
) (*domain.PlatformResult, *domain.PlatformError) {
	answers := make([]*aiplatform.Answer, len(queries))
	errs := make([]error, len(queries))
	var wg sync.WaitGroup
	for i, q := range queries {
		i, q := i, q
		wg.Add(1)
		go func() {
			defer wg.Done()

			answers[i], errs[i] = s.ask(ctx, client, q.Text)
		}()
	}
	wg.Wait()

	var answered []answeredQuery
	var failures []error
	for i, q := range queries {
		if errs[i] != nil {
			failures = append(failures, errs[i])

			continue
		}
		answered = append(answered, answeredQuery{
			query:  q,
			answer: answers[i],
			eval:   signals.Evaluate(answers[i].Text, answers[i].Citations, dom),
		})
	}

	if len(answered) == 0 {
		err := errors.Join(failures...)
		logger.Get(ctx).Warn("platform unavailable",
			zap.String("platform", string(client.Platform())),
			zap.Error(err))

		return nil, &domain.PlatformError{
			Platform:      client.Platform(),
			Message:       failures[0].Error(),
			NotConfigured: errors.Is(err, serrors.ErrNotConfigured),
		}
	}

	result := s.merge(client.Platform(), answered)

	return &result, nil
}

// ask runs one platform call under its own deadline and records its metric.
func (s *service) ask(ctx context.Context, client aiplatform.Client, query string) (*aiplatform.Answer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.options.PlatformTimeout)
	defer cancel()

	start := time.Now()
	answer, err := client.Ask(ctx, query)
	s.metrics.observePlatformCall(ctx, client.Platform(), time.Since(start), err)

	return answer, err
}

// merge folds the answered queries of one platform into a single result.
// Boolean signals combine with OR, counts sum, and the earliest positive
// mention position wins.
func (s *service) merge(platform domain.Platform, answered []answeredQuery) domain.PlatformResult {
	result := domain.PlatformResult{
		Platform:        platform,
		MentionPosition: -1,
	}

	shown := answered[0]
	bestRank := rankShown(shown)
	seen := make(map[string]struct{})
	for _, aq := range answered {
		if r := rankShown(aq); r > bestRank {
			shown, bestRank = aq, r
		}

		result.MentionedYou = result.MentionedYou || aq.eval.Mentioned
		result.InCitations = result.InCitations || aq.eval.Cited
		result.DomainFound = result.DomainFound || aq.eval.DomainFound
		result.MentionCount += aq.eval.Count
		if aq.eval.Position >= 0 && (result.MentionPosition < 0 || aq.eval.Position < result.MentionPosition) {
			result.MentionPosition = aq.eval.Position
		}
		for _, other := range aq.eval.OtherDomains {
			if _, ok := seen[other]; ok {
				continue
			}
			seen[other] = struct{}{}
			if len(result.RecommendedOthers) < maxRecommendedOthers {
				result.RecommendedOthers = append(result.RecommendedOthers, other)
			}
		}
	}

	result.QueryShown = shown.query.Text
	result.Snippet = snippet(shown.answer.Text, s.options.SnippetLength)
	result.Score = s.deps.Scorer.PlatformScore(result)

	return result
}

// rankShown orders answered queries by how compelling they are to display:
// a positive non-brand answer beats a positive brand answer beats any brand
// answer.
func rankShown(aq answeredQuery) int {
	positive := aq.eval.Mentioned
	brand := aq.query.Intent == domain.IntentBrand
	switch {
	case positive && !brand:
		return 3
	case positive && brand:
		return 2
	case brand:
		return 1
	default:
		return 0
	}
}

// snippet truncates answer text to limit runes, trimming mid-word cuts.
func snippet(text string, limit int) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	return strings.TrimSpace(string(runes[:limit])) + "..."
}

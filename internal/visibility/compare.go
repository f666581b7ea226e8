package visibility

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Arjun0606/cabbageseo-sub003/pkg/domain"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/logger"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/serrors"
)

// comparisonSlots is the rate-limit cost of one comparison: two full scans.
const comparisonSlots = 2

// Compare implements Scanner. Both domains are validated before any quota is
// charged, and the two slots are consumed atomically so a caller with one
// slot left is rejected without running a partial comparison.
func (s *service) Compare(ctx context.Context, callerID, first, second string) (*domain.Comparison, error) {
	firstDom, err := s.validateDomain(ctx, first)
	if err != nil {
		return nil, err
	}
	secondDom, err := s.validateDomain(ctx, second)
	if err != nil {
		return nil, err
	}
	if firstDom == secondDom {
		return nil, serrors.With(serrors.ErrBadRequest, "cannot compare a domain against itself")
	}

	if !s.deps.Limiter.TryConsume(callerID, comparisonSlots) {
		return nil, serrors.With(serrors.ErrRateLimited, "rate limit exceeded: %s", s.limitMessage())
	}

	var (
		wg                        sync.WaitGroup
		firstReport, secondReport *domain.VisibilityReport
		firstErr, secondErr       error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()

		firstReport, firstErr = s.run(logger.WithFields(ctx, zap.String("domain", firstDom)), firstDom)
	}()
	go func() {
		defer wg.Done()

		secondReport, secondErr = s.run(logger.WithFields(ctx, zap.String("domain", secondDom)), secondDom)
	}()
	wg.Wait()

	if firstErr != nil {
		return nil, fmt.Errorf("could not scan %s: %w", firstDom, firstErr)
	}
	if secondErr != nil {
		return nil, fmt.Errorf("could not scan %s: %w", secondDom, secondErr)
	}

	winner := domain.Tie
	delta := firstReport.Summary.VisibilityScore - secondReport.Summary.VisibilityScore
	switch {
	case delta > 0:
		winner = firstDom
	case delta < 0:
		winner, delta = secondDom, -delta
	}

	return &domain.Comparison{
		First:           firstReport,
		Second:          secondReport,
		Winner:          winner,
		ScoreDelta:      delta,
		PlatformWinners: s.platformWinners(firstReport, secondReport),
		Verdict:         verdict(winner, delta),
		Upsell:          buildUpsell(winner, delta, firstDom, secondDom),
	}, nil
}

// platformWinners decides the head-to-head outcome on each platform, in the
// fan-out order. A domain whose platform call failed scores zero and can
// still lose that platform outright.
func (s *service) platformWinners(first, second *domain.VisibilityReport) []domain.PlatformWinner {
	winners := make([]domain.PlatformWinner, 0, len(s.deps.Platforms))
	for _, client := range s.deps.Platforms {
		platform := client.Platform()
		firstScore := first.Summary.PlatformScores[platform]
		secondScore := second.Summary.PlatformScores[platform]

		winner := domain.Tie
		switch {
		case firstScore > secondScore:
			winner = first.Domain
		case secondScore > firstScore:
			winner = second.Domain
		}

		winners = append(winners, domain.PlatformWinner{
			Platform: platform,
			Winner:   winner,
			Scores: map[string]int{
				first.Domain:  firstScore,
				second.Domain: secondScore,
			},
		})
	}

	return winners
}

// verdict phrases the overall gap, tiered by the score delta.
func verdict(winner string, delta int) string {
	switch {
	case winner == domain.Tie:
		return "It's a dead heat. Neither domain has an edge in AI answers."
	case delta >= 40:
		return fmt.Sprintf("%s dominates AI visibility. It's not even close.", winner)
	case delta >= 20:
		return fmt.Sprintf("%s has a strong lead in AI answers.", winner)
	default:
		return fmt.Sprintf("It's close, but %s is ahead.", winner)
	}
}

// buildUpsell targets the losing side with a call to action sized to the
// gap.
func buildUpsell(winner string, delta int, firstDom, secondDom string) domain.Upsell {
	if winner == domain.Tie {
		return domain.Upsell{
			Headline: "Neck and neck, for now.",
			Body:     "Neither domain leads AI answers yet. The first to optimize takes the lead.",
			CTA:      "Get ahead",
		}
	}

	loser := firstDom
	if winner == firstDom {
		loser = secondDom
	}

	return domain.Upsell{
		Headline: fmt.Sprintf("%s is losing the AI race.", loser),
		Body: fmt.Sprintf("%s trails %s by %d points in AI visibility. Every AI answer that skips you sends buyers to them.",
			loser, winner, delta),
		CTA: "Close the gap",
	}
}

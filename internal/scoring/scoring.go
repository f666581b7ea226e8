// Package scoring turns per-platform results into a 0-100 visibility score.
// The canonical strategy weighs citations heaviest, then domain presence,
// brand mentions, mention prominence and mention depth.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/Arjun0606/cabbageseo-sub003/pkg/domain"
)

// Strategy computes visibility scores from extracted signals. Implementations
// must be deterministic: the same results always produce the same score.
type Strategy interface {
	// Name identifies the strategy version for logs and stored reports.
	Name() string
	// Score aggregates results across platforms into a 0-100 score, its
	// factor breakdown and a human-readable explanation. attempted is the
	// number of platforms queried, including ones that errored, so missing
	// platforms drag the score down rather than inflating it.
	Score(results []domain.PlatformResult, attempted int) (int, domain.ScoreBreakdown, string)
	// PlatformScore rates a single platform's result on the same scale.
	PlatformScore(result domain.PlatformResult) int
}

// Factor weights. They sum to 100 for a domain with perfect signals
// everywhere.
const (
	citationWeight   = 40.0
	domainWeight     = 25.0
	mentionWeight    = 15.0
	prominenceWeight = 12.0
	depthWeight      = 8.0

	// depthScale controls how fast repeated mentions saturate the depth
	// factor: 1-e^(-count/depthScale).
	depthScale = 3.0
)

type weightedV3 struct{}

// Default returns the canonical scoring strategy.
func Default() Strategy { return weightedV3{} }

func (weightedV3) Name() string { return "weighted-v3" }

// Score implements Strategy.
func (weightedV3) Score(results []domain.PlatformResult, attempted int) (int, domain.ScoreBreakdown, string) {
	if attempted < len(results) {
		attempted = len(results)
	}
	if attempted == 0 {
		return 0, domain.ScoreBreakdown{}, "No AI platforms could be queried."
	}

	var (
		cited, found, mentioned int
		totalMentions           int
		posSum                  float64
		posCount                int
	)
	for _, r := range results {
		if r.InCitations {
			cited++
		}
		if r.DomainFound {
			found++
		}
		if r.MentionedYou {
			mentioned++
		}
		totalMentions += r.MentionCount
		if r.MentionedYou && r.MentionPosition >= 0 {
			posSum += r.MentionPosition
			posCount++
		}
	}

	bd := domain.ScoreBreakdown{
		Citations: citationWeight * float64(cited) / float64(attempted),
		Domain:    domainWeight * float64(found) / float64(attempted),
		Mentions:  mentionWeight * float64(mentioned) / float64(attempted),
	}
	if posCount > 0 {
		bd.Prominence = prominenceWeight * (1 - posSum/float64(posCount))
	}
	if totalMentions > 0 {
		bd.Depth = depthWeight * (1 - math.Exp(-float64(totalMentions)/depthScale))
	}

	total := bd.Total()
	if total > 100 {
		total = 100
	}
	score := int(math.Round(total))

	return score, bd, explain(attempted, cited, found, mentioned, totalMentions, posSum, posCount)
}

// PlatformScore implements Strategy. It applies the same weights to a single
// platform, so per-platform scores are directly comparable.
func (weightedV3) PlatformScore(r domain.PlatformResult) int {
	var total float64
	if r.InCitations {
		total += citationWeight
	}
	if r.DomainFound {
		total += domainWeight
	}
	if r.MentionedYou {
		total += mentionWeight
	}
	if r.MentionedYou && r.MentionPosition >= 0 {
		total += prominenceWeight * (1 - r.MentionPosition)
	}
	if r.MentionCount > 0 {
		total += depthWeight * (1 - math.Exp(-float64(r.MentionCount)/depthScale))
	}
	if total > 100 {
		total = 100
	}

	return int(math.Round(total))
}

// explain builds the score explanation from the aggregate counts alone, so
// the same results always yield the same text.
func explain(attempted, cited, found, mentioned, totalMentions int, posSum float64, posCount int) string {
	if mentioned == 0 {
		return fmt.Sprintf(
			"None of the %d AI platforms mentioned this domain in their answers. The brand is currently invisible to AI search.",
			attempted)
	}

	parts := []string{fmt.Sprintf("Mentioned by %d of %d platforms", mentioned, attempted)}
	if cited > 0 {
		parts = append(parts, fmt.Sprintf("cited as a source by %d", cited))
	}
	if found > 0 {
		parts = append(parts, fmt.Sprintf("domain surfaced by %d", found))
	}
	if totalMentions > 0 {
		parts = append(parts, fmt.Sprintf("%d mentions in total", totalMentions))
	}
	if posCount > 0 {
		parts = append(parts, fmt.Sprintf("first mention %.0f%% into the average answer", posSum/float64(posCount)*100))
	}

	return strings.Join(parts, "; ") + "."
}

var _ Strategy = weightedV3{}

package visibility_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/Arjun0606/cabbageseo-sub003/pkg/aiplatform"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/domain"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/serrors"
)

const rivalDom = "rival.io"

// template queries the nil-model generator produces for rival.io
const (
	rivalDiscoveryQuery = "tell me about rival"
	rivalBrandQuery     = "what is rival.io"
	rivalDecisionQuery  = "rival reviews"
)

// expectComparisonAnswers scripts both domains on every platform: example.com
// answers strongly everywhere, rival.io is hedged away everywhere.
func expectComparisonAnswers(d *testDeps) {
	strong := &aiplatform.Answer{
		Text:      "Example.com is the leader here. Visit example.com today.",
		Citations: []string{"https://example.com"},
	}
	hedged := &aiplatform.Answer{Text: "I'm not aware of rival.io."}

	rotating := []struct{ example, rival string }{
		{discoveryQuery, rivalDiscoveryQuery},
		{decisionQuery, rivalDecisionQuery},
		{discoveryQuery, rivalDiscoveryQuery},
	}
	for i, client := range d.platforms {
		client.EXPECT().Ask(gomock.Any(), brandQuery).Return(strong, nil)
		client.EXPECT().Ask(gomock.Any(), rotating[i].example).Return(strong, nil)
		client.EXPECT().Ask(gomock.Any(), rivalBrandQuery).Return(hedged, nil)
		client.EXPECT().Ask(gomock.Any(), rotating[i].rival).Return(hedged, nil)
	}
}

func TestService_Compare(t *testing.T) {
	svc, d := newTestService(t, 5)
	expectResolves(d, testDom)
	expectResolves(d, rivalDom)
	expectComparisonAnswers(d)
	d.store.EXPECT().StoreReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *domain.VisibilityReport) (domain.ReportID, error) {
			return domain.ReportID(uuid.New()), nil
		}).Times(2)

	comparison, err := svc.Compare(context.Background(), caller, "https://Example.com", rivalDom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if comparison.First.Domain != testDom || comparison.Second.Domain != rivalDom {
		t.Fatalf("reports out of order: %q vs %q", comparison.First.Domain, comparison.Second.Domain)
	}
	if comparison.Winner != testDom {
		t.Errorf("expected %s to win, got %q", testDom, comparison.Winner)
	}
	wantDelta := comparison.First.Summary.VisibilityScore - comparison.Second.Summary.VisibilityScore
	if comparison.ScoreDelta != wantDelta {
		t.Errorf("delta mismatch: got %d, want %d", comparison.ScoreDelta, wantDelta)
	}
	if comparison.Second.Summary.VisibilityScore != 0 {
		t.Errorf("hedged domain should score 0, got %d", comparison.Second.Summary.VisibilityScore)
	}

	if len(comparison.PlatformWinners) != 3 {
		t.Fatalf("expected a winner per platform, got %d", len(comparison.PlatformWinners))
	}
	for _, pw := range comparison.PlatformWinners {
		if pw.Winner != testDom {
			t.Errorf("%s: expected %s to win, got %q", pw.Platform, testDom, pw.Winner)
		}
		if pw.Scores[testDom] <= 0 || pw.Scores[rivalDom] != 0 {
			t.Errorf("%s: unexpected scores %v", pw.Platform, pw.Scores)
		}
	}

	// a gap this wide lands in the top verdict tier
	if want := "example.com dominates AI visibility. It's not even close."; comparison.Verdict != want {
		t.Errorf("verdict: got %q, want %q", comparison.Verdict, want)
	}
	if !strings.Contains(comparison.Upsell.Headline, rivalDom) {
		t.Errorf("upsell must target the loser: %q", comparison.Upsell.Headline)
	}
	if !strings.Contains(comparison.Upsell.Body, testDom) || !strings.Contains(comparison.Upsell.Body, rivalDom) {
		t.Errorf("upsell body should name both sides: %q", comparison.Upsell.Body)
	}
	if comparison.Upsell.CTA == "" {
		t.Error("expected a call to action")
	}

	// exactly two slots were charged: 3 remain out of 5
	if d.limiter.TryConsume(caller, 4) {
		t.Error("expected only 3 slots to remain")
	}
	if !d.limiter.TryConsume(caller, 3) {
		t.Error("expected 3 slots to remain")
	}
}

func TestService_Compare_Tie(t *testing.T) {
	svc, d := newTestService(t, 5)
	expectResolves(d, testDom)
	expectResolves(d, rivalDom)

	// both domains hedged away everywhere
	for _, client := range d.platforms {
		client.EXPECT().Ask(gomock.Any(), gomock.Any()).
			Return(&aiplatform.Answer{Text: "I have no information about that."}, nil).Times(4)
	}
	d.store.EXPECT().StoreReport(gomock.Any(), gomock.Any()).
		Return(domain.ReportID(uuid.New()), nil).Times(2)

	comparison, err := svc.Compare(context.Background(), caller, testDom, rivalDom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comparison.Winner != domain.Tie {
		t.Errorf("expected a tie, got %q", comparison.Winner)
	}
	if comparison.ScoreDelta != 0 {
		t.Errorf("expected no delta, got %d", comparison.ScoreDelta)
	}
	if !strings.Contains(comparison.Verdict, "dead heat") {
		t.Errorf("unexpected tie verdict: %q", comparison.Verdict)
	}
	if comparison.Upsell.Headline != "Neck and neck, for now." {
		t.Errorf("unexpected tie upsell: %q", comparison.Upsell.Headline)
	}
	for _, pw := range comparison.PlatformWinners {
		if pw.Winner != domain.Tie {
			t.Errorf("%s: expected a platform tie, got %q", pw.Platform, pw.Winner)
		}
	}
}

func TestService_Compare_SameDomain(t *testing.T) {
	svc, d := newTestService(t, 5)
	// both spellings normalize to the same domain and are validated first
	d.resolver.EXPECT().LookupHost(gomock.Any(), testDom).
		Return([]string{"93.184.216.34"}, nil).Times(2)

	_, err := svc.Compare(context.Background(), caller, testDom, "https://www.Example.com/")
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected a bad request error, got %v", err)
	}
	if !d.limiter.TryConsume(caller, 5) {
		t.Error("a rejected comparison must not consume quota")
	}
}

// A caller with one slot left cannot afford a comparison, and the attempt
// must not burn the remaining slot.
func TestService_Compare_AtomicCharge(t *testing.T) {
	svc, d := newTestService(t, 1)
	expectResolves(d, testDom)
	expectResolves(d, rivalDom)

	_, err := svc.Compare(context.Background(), caller, testDom, rivalDom)
	if !errors.Is(err, serrors.ErrRateLimited) {
		t.Fatalf("expected a rate limit error, got %v", err)
	}

	var serr *serrors.Error
	if !errors.As(err, &serr) {
		t.Fatalf("expected a semantic error, got %T", err)
	}
	if want := "rate limit exceeded: 1 scans per hour"; serr.Message() != want {
		t.Errorf("the message must state the limit: got %q, want %q", serr.Message(), want)
	}
	if !d.limiter.TryConsume(caller, 1) {
		t.Error("the remaining slot must survive a rejected comparison")
	}
}

func TestService_Compare_InvalidSecondDomainNotCharged(t *testing.T) {
	svc, d := newTestService(t, 5)
	expectResolves(d, testDom)

	_, err := svc.Compare(context.Background(), caller, testDom, "not a domain")
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected a bad request error, got %v", err)
	}
	if !d.limiter.TryConsume(caller, 5) {
		t.Error("a failed validation must not consume quota")
	}
}

func TestService_Compare_AbortedContext(t *testing.T) {
	svc, d := newTestService(t, 5)
	expectResolves(d, testDom)
	expectResolves(d, rivalDom)

	for _, client := range d.platforms {
		client.EXPECT().Ask(gomock.Any(), gomock.Any()).
			Return(&aiplatform.Answer{Text: "Example is fine."}, nil).AnyTimes()
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Compare(ctx, caller, testDom, rivalDom)
	if err == nil || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected a canceled comparison to abort, got %v", err)
	}
	if !strings.Contains(err.Error(), "could not scan") {
		t.Errorf("expected the failing side to be named: %v", err)
	}
}

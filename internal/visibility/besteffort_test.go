package visibility

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBestEffort_ReturnsResult(t *testing.T) {
	t.Parallel()

	got := bestEffort(context.Background(), "step", time.Second, "fallback",
		func(_ context.Context) (string, error) {
			return "value", nil
		})
	if got != "value" {
		t.Fatalf("got %q, want %q", got, "value")
	}
}

func TestBestEffort_FallsBackOnError(t *testing.T) {
	t.Parallel()

	got := bestEffort(context.Background(), "step", time.Second, 42,
		func(_ context.Context) (int, error) {
			return 7, errors.New("boom")
		})
	if got != 42 {
		t.Fatalf("got %d, want fallback 42", got)
	}
}

func TestBestEffort_EnforcesTimeout(t *testing.T) {
	t.Parallel()

	start := time.Now()
	got := bestEffort(context.Background(), "step", 10*time.Millisecond, "fallback",
		func(ctx context.Context) (string, error) {
			<-ctx.Done()

			return "", ctx.Err()
		})
	if got != "fallback" {
		t.Fatalf("got %q, want fallback", got)
	}
	if took := time.Since(start); took > time.Second {
		t.Fatalf("timeout not enforced, took %s", took)
	}
}

func TestBestEffort_NilFallbackForPointers(t *testing.T) {
	t.Parallel()

	type preview struct{ title string }
	got := bestEffort[*preview](context.Background(), "step", time.Second, nil,
		func(_ context.Context) (*preview, error) {
			return nil, errors.New("unavailable")
		})
	if got != nil {
		t.Fatalf("got %+v, want nil", got)
	}
}

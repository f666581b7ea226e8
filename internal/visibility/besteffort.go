package visibility

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Arjun0606/cabbageseo-sub003/pkg/logger"
)

// bestEffort runs fn under its own timeout and swallows failures, returning
// fallback instead. Site context, classification, previews and persistence
// all degrade output richness when they fail; none of them may fail a scan.
func bestEffort[T any](ctx context.Context, op string, timeout time.Duration, fallback T, fn func(ctx context.Context) (T, error)) T {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res, err := fn(ctx)
	if err != nil {
		logger.Get(ctx).Warn("best-effort step failed", zap.String("op", op), zap.Error(err))

		return fallback
	}

	return res
}

// Package aiplatform defines the adapter contract for the conversational AI
// platforms a visibility scan queries.
package aiplatform

import (
	"context"

	"github.com/Arjun0606/cabbageseo-sub003/pkg/domain"
)

// Answer is one platform's response to a single query.
type Answer struct {
	// Text is the full answer text.
	Text string
	// Citations lists the source URLs the platform attached, when the
	// platform exposes them.
	Citations []string
}

// Client is the abstraction over one AI answer platform. Implementations
// must be safe for concurrent use: a scan queries every platform in
// parallel.
//
//go:generate mockgen -package mockaiplatform -source=interface.go -destination=mock/mockaiplatform.go *
type Client interface {
	// Platform identifies the provider.
	Platform() domain.Platform
	// Ask poses a single query and returns the platform's answer. A missing
	// credential fails fast with serrors.ErrNotConfigured before any network
	// traffic.
	Ask(ctx context.Context, query string) (*Answer, error)
}

// Package semantic scores meaning-level similarity between JD and CV
// sections through an external embedding provider.
package semantic

import (
	"context"
	"errors"
)

// ErrProviderUnavailable signals that the embedding backend cannot be
// reached. It is recovered locally through the degraded-weights path and
// never surfaced to callers as a hard failure.
var ErrProviderUnavailable = errors.New("embedding provider unavailable")

// Provider returns a fixed-length embedding vector for a piece of text.
// Implementations fail with ErrProviderUnavailable (possibly wrapped) when
// the backend is unreachable; a context timeout is treated the same way.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

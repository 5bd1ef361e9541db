package embedding

import (
	"context"

	"go.uber.org/zap"

	"github.com/talentbridge/matchd/internal/domain"
	"github.com/talentbridge/matchd/internal/metrics"
)

// FailOpen degrades provider failures to the zero vector. A profile
// save must never fail because the embeddings API is down; the subject
// simply scores 0 on the semantic component until the next save.
type FailOpen struct {
	inner  domain.Embedder
	logger *zap.Logger
}

// NewFailOpen creates the fail-open decorator.
func NewFailOpen(inner domain.Embedder, logger *zap.Logger) *FailOpen {
	return &FailOpen{inner: inner, logger: logger}
}

// Embed calls the inner embedder and swallows its error, falling back
// to the zero vector.
func (f *FailOpen) Embed(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	result, err := f.inner.Embed(ctx, text)
	if err != nil {
		metrics.EmbeddingFallbacksTotal.Inc()
		f.logger.Warn("Embedding provider failed, storing zero vector",
			zap.Int("text_len", len(text)),
			zap.Error(err),
		)
		return domain.EmbeddingResult{Embedding: domain.ZeroVector()}, nil
	}
	return result, nil
}

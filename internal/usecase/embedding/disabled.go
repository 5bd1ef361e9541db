// Package embedding holds the embedder decorator chain: an optional
// cache, a fail-open guard, and the disabled provider used when no API
// key is configured. Every layer implements domain.Embedder.
package embedding

import (
	"context"

	"github.com/talentbridge/matchd/internal/domain"
)

// Disabled is the embedder used when no provider is configured. It
// always returns the zero vector, so matches degrade to lexical-only
// scoring instead of failing.
type Disabled struct{}

// NewDisabled creates the no-provider embedder.
func NewDisabled() Disabled {
	return Disabled{}
}

// Embed returns the zero vector and no usage.
func (Disabled) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	return domain.EmbeddingResult{Embedding: domain.ZeroVector()}, nil
}

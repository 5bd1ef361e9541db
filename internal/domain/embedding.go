package domain

import (
	"context"
	"fmt"
)

// Dimensions is the fixed embedding vector width (text-embedding-3-small).
const Dimensions = 1536

// Source tags the text a subject's embedding was produced from. A subject
// may carry one embedding per source. Enumerated rather than free-form so a
// typo cannot silently read as "no embedding stored".
type Source string

const (
	// SourceProfile is the embedding of the subject's profile text.
	SourceProfile Source = "profile"
	// SourceThesis is the embedding of an investor's thesis text.
	SourceThesis Source = "thesis"
)

// IsValid checks if the source tag is supported.
func (s Source) IsValid() bool {
	return s == SourceProfile || s == SourceThesis
}

// ParseSource validates a raw source tag.
func ParseSource(raw string) (Source, error) {
	s := Source(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown embedding source %q", raw)
	}
	return s, nil
}

// Embedding is one stored vector row, unique per (subject, source).
type Embedding struct {
	SubjectID SubjectID
	Source    Source
	Vector    []float32
	CreatedAt int64 // unix millis, refreshed on upsert
}

// Embedder is the shared text vectorization contract between layers.
type Embedder interface {
	Embed(ctx context.Context, text string) (EmbeddingResult, error)
}

// EmbeddingResult carries the embedding vector and token usage through the
// decorator chain.
type EmbeddingResult struct {
	Embedding    []float32
	PromptTokens int
	TotalTokens  int
}

// ZeroVector returns the all-zeros vector signalling "no real embedding".
func ZeroVector() []float32 {
	return make([]float32, Dimensions)
}

// IsZeroVector reports whether v carries no real embedding. An empty or
// all-zero vector never participates in cosine math; the semantic score is
// defined as 0 instead.
func IsZeroVector(v []float32) bool {
	for _, f := range v {
		if f != 0 {
			return false
		}
	}
	return true
}

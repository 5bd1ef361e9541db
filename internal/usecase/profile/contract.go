package profile

import (
	"context"

	"github.com/talentbridge/matchd/internal/domain"
	domprof "github.com/talentbridge/matchd/internal/domain/profile"
)

// Repository defines the storage contract for profiles.
type Repository interface {
	SaveTalent(ctx context.Context, t domprof.Talent) error
	GetTalent(ctx context.Context, id domain.SubjectID) (domprof.Talent, error)
	SaveStartup(ctx context.Context, s domprof.Startup) error
	GetStartup(ctx context.Context, id domain.SubjectID) (domprof.Startup, error)
	SaveInvestor(ctx context.Context, i domprof.Investor) error
	GetInvestor(ctx context.Context, id domain.SubjectID) (domprof.Investor, error)
}

// EmbeddingWriter persists embedding rows.
type EmbeddingWriter interface {
	Upsert(ctx context.Context, emb domain.Embedding) error
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

package matching

import (
	"context"

	"github.com/talentbridge/matchd/internal/domain"
	domprof "github.com/talentbridge/matchd/internal/domain/profile"
)

// ProfileReader reads the typed profiles being matched.
type ProfileReader interface {
	GetTalent(ctx context.Context, id domain.SubjectID) (domprof.Talent, error)
	GetStartup(ctx context.Context, id domain.SubjectID) (domprof.Startup, error)
	GetInvestor(ctx context.Context, id domain.SubjectID) (domprof.Investor, error)
}

// EmbeddingReader reads stored embedding rows.
type EmbeddingReader interface {
	Get(ctx context.Context, subjectID domain.SubjectID, source domain.Source) (domain.Embedding, error)
}

package job

import (
	"context"

	"github.com/talentbridge/matchd/internal/domain"
	domjob "github.com/talentbridge/matchd/internal/domain/job"
	domprof "github.com/talentbridge/matchd/internal/domain/profile"
)

// Repository defines the storage contract for job postings.
type Repository interface {
	Save(ctx context.Context, j domjob.Job) error
	Get(ctx context.Context, id string) (domjob.Job, error)
	List(ctx context.Context) ([]domjob.Job, error)
	ListByStartup(ctx context.Context, startupID domain.SubjectID) ([]domjob.Job, error)
}

// StartupReader checks posting ownership.
type StartupReader interface {
	GetStartup(ctx context.Context, id domain.SubjectID) (domprof.Startup, error)
}

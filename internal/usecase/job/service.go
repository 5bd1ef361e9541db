// Package job implements job posting management. Postings belong to a
// startup profile and feed the talent job ranking.
package job

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentbridge/matchd/internal/domain"
	domjob "github.com/talentbridge/matchd/internal/domain/job"
)

// Service implements job posting operations.
type Service struct {
	jobs     Repository
	startups StartupReader
	logger   *zap.Logger
}

// New creates a job service.
func New(jobs Repository, startups StartupReader, logger *zap.Logger) *Service {
	return &Service{jobs: jobs, startups: startups, logger: logger}
}

// Create validates the owning startup and persists a new posting.
func (s *Service) Create(
	ctx context.Context, startupID domain.SubjectID,
	title, description string, jobType domjob.Type, requiredSkills []string,
) (domjob.Job, error) {
	if _, err := s.startups.GetStartup(ctx, startupID); err != nil {
		return domjob.Job{}, fmt.Errorf("get startup %s: %w", startupID, err)
	}

	j, err := domjob.New(uuid.NewString(), startupID, title, description, jobType, requiredSkills)
	if err != nil {
		return domjob.Job{}, err
	}
	if err := s.jobs.Save(ctx, j); err != nil {
		return domjob.Job{}, fmt.Errorf("save job: %w", err)
	}

	s.logger.Info("Job posting created",
		zap.String("job_id", j.ID()),
		zap.String("startup_id", string(startupID)),
	)
	return j, nil
}

// Get returns a posting by ID.
func (s *Service) Get(ctx context.Context, id string) (domjob.Job, error) {
	return s.jobs.Get(ctx, id)
}

// List returns every posting in creation order.
func (s *Service) List(ctx context.Context) ([]domjob.Job, error) {
	return s.jobs.List(ctx)
}

// ListByStartup returns the startup's own postings.
func (s *Service) ListByStartup(ctx context.Context, startupID domain.SubjectID) ([]domjob.Job, error) {
	return s.jobs.ListByStartup(ctx, startupID)
}

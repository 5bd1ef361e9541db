// Package ranking fans a pairwise matcher out over the full candidate
// set of a role and returns the scored list sorted best-first. A failed
// candidate is dropped from the listing, never aborting the batch.
package ranking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/talentbridge/matchd/internal/domain"
	"github.com/talentbridge/matchd/internal/domain/match"
	"github.com/talentbridge/matchd/internal/metrics"
)

const defaultConcurrency = 8

// Service implements the ranking operations.
type Service struct {
	matcher     Matcher
	profiles    ProfileReader
	jobs        JobLister
	concurrency int
	logger      *zap.Logger
}

// New creates a ranking service. concurrency bounds the matcher fan-out;
// values below 1 fall back to the default.
func New(m Matcher, profiles ProfileReader, jobs JobLister, concurrency int, logger *zap.Logger) *Service {
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}
	return &Service{
		matcher:     m,
		profiles:    profiles,
		jobs:        jobs,
		concurrency: concurrency,
		logger:      logger,
	}
}

// RankStartupsForTalent scores every startup for one talent, best first.
func (s *Service) RankStartupsForTalent(ctx context.Context, talentID domain.SubjectID) ([]match.Result, error) {
	if _, err := s.profiles.GetTalent(ctx, talentID); err != nil {
		return nil, fmt.Errorf("get talent %s: %w", talentID, err)
	}
	candidates, err := s.profiles.ListCandidates(ctx, domain.RoleStartup)
	if err != nil {
		return nil, fmt.Errorf("list startups: %w", err)
	}
	return s.fanOut(ctx, "startups_for_talent", candidates,
		func(ctx context.Context, candidate domain.SubjectID) (match.Result, error) {
			return s.matcher.MatchTalentToStartup(ctx, talentID, candidate)
		},
	), nil
}

// RankTalentForStartup scores every talent for one startup, best first.
func (s *Service) RankTalentForStartup(ctx context.Context, startupID domain.SubjectID) ([]match.Result, error) {
	if _, err := s.profiles.GetStartup(ctx, startupID); err != nil {
		return nil, fmt.Errorf("get startup %s: %w", startupID, err)
	}
	candidates, err := s.profiles.ListCandidates(ctx, domain.RoleTalent)
	if err != nil {
		return nil, fmt.Errorf("list talents: %w", err)
	}
	return s.fanOut(ctx, "talent_for_startup", candidates,
		func(ctx context.Context, candidate domain.SubjectID) (match.Result, error) {
			r, err := s.matcher.MatchTalentToStartup(ctx, candidate, startupID)
			if err != nil {
				return match.Result{}, err
			}
			return rekey(r, candidate), nil
		},
	), nil
}

// RankInvestorsForStartup scores every investor for one startup, best first.
func (s *Service) RankInvestorsForStartup(ctx context.Context, startupID domain.SubjectID) ([]match.Result, error) {
	if _, err := s.profiles.GetStartup(ctx, startupID); err != nil {
		return nil, fmt.Errorf("get startup %s: %w", startupID, err)
	}
	candidates, err := s.profiles.ListCandidates(ctx, domain.RoleInvestor)
	if err != nil {
		return nil, fmt.Errorf("list investors: %w", err)
	}
	return s.fanOut(ctx, "investors_for_startup", candidates,
		func(ctx context.Context, candidate domain.SubjectID) (match.Result, error) {
			return s.matcher.MatchStartupToInvestor(ctx, startupID, candidate)
		},
	), nil
}

// RankJobsForTalent scores every job posting for one talent, best first.
// The job matcher is lexical-only and cannot fail, so no candidates are
// dropped here.
func (s *Service) RankJobsForTalent(ctx context.Context, talentID domain.SubjectID) ([]match.Result, error) {
	talent, err := s.profiles.GetTalent(ctx, talentID)
	if err != nil {
		return nil, fmt.Errorf("get talent %s: %w", talentID, err)
	}
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	start := time.Now()
	results := make([]match.Result, len(jobs))
	for i, j := range jobs {
		results[i] = s.matcher.MatchTalentToJob(talent, j)
	}
	match.SortByPercentageDesc(results)

	metrics.RankDuration.WithLabelValues("jobs_for_talent").Observe(time.Since(start).Seconds())
	metrics.RankCandidatesTotal.WithLabelValues("jobs_for_talent").Observe(float64(len(jobs)))
	return results, nil
}

// fanOut runs the match function over every candidate with bounded
// concurrency. Results land in candidate-indexed slots, so after the
// stable sort ties keep the candidate listing order.
func (s *Service) fanOut(
	ctx context.Context,
	listing string,
	candidates []domain.SubjectID,
	matchFn func(ctx context.Context, candidate domain.SubjectID) (match.Result, error),
) []match.Result {
	start := time.Now()

	slots := make([]*match.Result, len(candidates))
	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup

	for i, candidate := range candidates {
		wg.Add(1)
		go func(i int, candidate domain.SubjectID) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			r, err := matchFn(ctx, candidate)
			if err != nil {
				s.logger.Debug("Candidate dropped from ranking",
					zap.String("listing", listing),
					zap.String("candidate_id", string(candidate)),
					zap.Error(err),
				)
				return
			}
			slots[i] = &r
		}(i, candidate)
	}
	wg.Wait()

	results := make([]match.Result, 0, len(candidates))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}
	match.SortByPercentageDesc(results)

	metrics.RankDuration.WithLabelValues(listing).Observe(time.Since(start).Seconds())
	metrics.RankCandidatesTotal.WithLabelValues(listing).Observe(float64(len(candidates)))
	return results
}

// rekey rewraps a result under the candidate's ID. The pairwise matcher
// keys its result by the second party; listings key by candidate.
func rekey(r match.Result, candidate domain.SubjectID) match.Result {
	return match.New(candidate, r.Percentage(), r.Breakdown(), r.MatchedSkills(), r.MissingSkills())
}

package ranking

import (
	"context"

	"github.com/talentbridge/matchd/internal/domain"
	domjob "github.com/talentbridge/matchd/internal/domain/job"
	"github.com/talentbridge/matchd/internal/domain/match"
	domprof "github.com/talentbridge/matchd/internal/domain/profile"
)

// Matcher computes pairwise scores for the fan-out.
type Matcher interface {
	MatchTalentToStartup(ctx context.Context, talentID, startupID domain.SubjectID) (match.Result, error)
	MatchStartupToInvestor(ctx context.Context, startupID, investorID domain.SubjectID) (match.Result, error)
	MatchTalentToJob(talent domprof.Talent, j domjob.Job) match.Result
}

// ProfileReader reads the requesting profile and lists role candidates.
type ProfileReader interface {
	GetTalent(ctx context.Context, id domain.SubjectID) (domprof.Talent, error)
	GetStartup(ctx context.Context, id domain.SubjectID) (domprof.Startup, error)
	ListCandidates(ctx context.Context, role domain.Role) ([]domain.SubjectID, error)
}

// JobLister lists job postings for the job feed.
type JobLister interface {
	List(ctx context.Context) ([]domjob.Job, error)
}

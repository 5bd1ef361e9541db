package matching

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/talentbridge/matchd/internal/domain"
	domjob "github.com/talentbridge/matchd/internal/domain/job"
	"github.com/talentbridge/matchd/internal/domain/match"
	domprof "github.com/talentbridge/matchd/internal/domain/profile"
)

// --- Talent <-> Startup ---

// Two of three distinct skills overlap and no embeddings are stored:
// lexical 2/3, semantic 0, percentage 100*(0.6*2/3) = 40.0.
func TestMatchTalentToStartup_LexicalOnly(t *testing.T) {
	svc, mp, _ := newTestService(t)
	ctx := context.Background()

	mp.getTalentFn = func(_ context.Context, _ domain.SubjectID) (domprof.Talent, error) {
		return talentWithSkills(t, "Go", "Python"), nil
	}
	mp.getStartupFn = func(_ context.Context, _ domain.SubjectID) (domprof.Startup, error) {
		return startupWithSkills(t, "Go", "Python", "React"), nil
	}

	result, err := svc.MatchTalentToStartup(ctx, talentID, startupID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Percentage() != 40.0 {
		t.Errorf("expected 40.0, got %f", result.Percentage())
	}
	if result.Breakdown()[match.ComponentSkills] != 0.67 {
		t.Errorf("expected skills 0.67, got %f", result.Breakdown()[match.ComponentSkills])
	}
	if result.Breakdown()[match.ComponentSemantic] != 0 {
		t.Errorf("expected semantic 0, got %f", result.Breakdown()[match.ComponentSemantic])
	}
}

func TestMatchTalentToStartup_CaseInsensitive(t *testing.T) {
	svc, mp, _ := newTestService(t)
	ctx := context.Background()

	mp.getTalentFn = func(_ context.Context, _ domain.SubjectID) (domprof.Talent, error) {
		return talentWithSkills(t, "GO", "python"), nil
	}
	mp.getStartupFn = func(_ context.Context, _ domain.SubjectID) (domprof.Startup, error) {
		return startupWithSkills(t, "Go", "Python"), nil
	}

	result, err := svc.MatchTalentToStartup(ctx, talentID, startupID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Percentage() != 60.0 {
		t.Errorf("expected 60.0 for full lexical overlap, got %f", result.Percentage())
	}
	// matched skills report the startup's casing
	matched := result.MatchedSkills()
	if len(matched) != 2 || matched[0] != "Go" || matched[1] != "Python" {
		t.Errorf("unexpected matched skills: %v", matched)
	}
	if len(result.MissingSkills()) != 0 {
		t.Errorf("unexpected missing skills: %v", result.MissingSkills())
	}
}

// Full lexical overlap plus cosine 0.9 embeddings:
// 100*(0.6*1.0 + 0.4*0.9) = 96.0.
func TestMatchTalentToStartup_Hybrid(t *testing.T) {
	svc, mp, me := newTestService(t)
	ctx := context.Background()

	mp.getTalentFn = func(_ context.Context, _ domain.SubjectID) (domprof.Talent, error) {
		return talentWithSkills(t, "Go"), nil
	}
	mp.getStartupFn = func(_ context.Context, _ domain.SubjectID) (domprof.Startup, error) {
		return startupWithSkills(t, "Go"), nil
	}
	me.getFn = func(_ context.Context, id domain.SubjectID, source domain.Source) (domain.Embedding, error) {
		if source != domain.SourceProfile {
			t.Errorf("unexpected source %q", source)
		}
		if id == talentID {
			return domain.Embedding{SubjectID: id, Source: source, Vector: []float32{1, 0}}, nil
		}
		return domain.Embedding{SubjectID: id, Source: source,
			Vector: []float32{0.9, float32(math.Sqrt(0.19))}}, nil
	}

	result, err := svc.MatchTalentToStartup(ctx, talentID, startupID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Percentage() != 96.0 {
		t.Errorf("expected 96.0, got %f", result.Percentage())
	}
	if result.Breakdown()[match.ComponentSemantic] != 0.9 {
		t.Errorf("expected semantic 0.9, got %f", result.Breakdown()[match.ComponentSemantic])
	}
}

func TestMatchTalentToStartup_ZeroVectorScoresSemanticZero(t *testing.T) {
	svc, mp, me := newTestService(t)
	ctx := context.Background()

	mp.getTalentFn = func(_ context.Context, _ domain.SubjectID) (domprof.Talent, error) {
		return talentWithSkills(t, "Go"), nil
	}
	mp.getStartupFn = func(_ context.Context, _ domain.SubjectID) (domprof.Startup, error) {
		return startupWithSkills(t, "Go"), nil
	}
	me.getFn = func(_ context.Context, id domain.SubjectID, source domain.Source) (domain.Embedding, error) {
		return domain.Embedding{SubjectID: id, Source: source, Vector: domain.ZeroVector()}, nil
	}

	result, err := svc.MatchTalentToStartup(ctx, talentID, startupID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Percentage() != 60.0 {
		t.Errorf("expected 60.0, got %f", result.Percentage())
	}
}

func TestMatchTalentToStartup_ProfileNotFound(t *testing.T) {
	svc, mp, _ := newTestService(t)
	ctx := context.Background()

	mp.getTalentFn = func(_ context.Context, _ domain.SubjectID) (domprof.Talent, error) {
		return talentWithSkills(t, "Go"), nil
	}
	// startup getter left at its ErrProfileNotFound default

	_, err := svc.MatchTalentToStartup(ctx, talentID, startupID)
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

// --- Startup <-> Investor ---

func TestMatchStartupToInvestor(t *testing.T) {
	svc, mp, _ := newTestService(t)
	ctx := context.Background()

	mp.getStartupFn = func(_ context.Context, _ domain.SubjectID) (domprof.Startup, error) {
		return startupWithSkills(t, "Go"), nil // industry fintech, stage seed
	}
	mp.getInvestorFn = func(_ context.Context, _ domain.SubjectID) (domprof.Investor, error) {
		return domprof.NewInvestor(investorID, "Jo", "North Fund", "Backs fintech",
			[]string{"Fintech"}, []domprof.Stage{domprof.StageSeed})
	}

	result, err := svc.MatchStartupToInvestor(ctx, startupID, investorID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// both halves are exact singleton matches: lexical 1.0, semantic 0
	if result.Percentage() != 60.0 {
		t.Errorf("expected 60.0, got %f", result.Percentage())
	}
	if result.Breakdown()[match.ComponentIndustryStage] != 1.0 {
		t.Errorf("expected industry_stage 1.0, got %v", result.Breakdown())
	}
	if result.MatchedSkills() != nil || result.MissingSkills() != nil {
		t.Error("investor matches must not carry skill lists")
	}
}

func TestMatchStartupToInvestor_EmptyIndustryHalvesScore(t *testing.T) {
	svc, mp, _ := newTestService(t)
	ctx := context.Background()

	mp.getStartupFn = func(_ context.Context, _ domain.SubjectID) (domprof.Startup, error) {
		return domprof.NewStartup(startupID, "Acme", "", "", "", domprof.StageSeed, nil)
	}
	mp.getInvestorFn = func(_ context.Context, _ domain.SubjectID) (domprof.Investor, error) {
		return domprof.NewInvestor(investorID, "Jo", "", "",
			[]string{"fintech"}, []domprof.Stage{domprof.StageSeed})
	}

	result, err := svc.MatchStartupToInvestor(ctx, startupID, investorID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// industry half 0 (unset), stage half 1: lexical 0.5 -> 30.0
	if result.Percentage() != 30.0 {
		t.Errorf("expected 30.0, got %f", result.Percentage())
	}
}

func TestMatchStartupToInvestor_ProfileNotFound(t *testing.T) {
	svc, mp, _ := newTestService(t)
	ctx := context.Background()

	mp.getStartupFn = func(_ context.Context, _ domain.SubjectID) (domprof.Startup, error) {
		return startupWithSkills(t, "Go"), nil
	}

	_, err := svc.MatchStartupToInvestor(ctx, startupID, investorID)
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

// --- Talent <-> Job ---

func TestMatchTalentToJob(t *testing.T) {
	svc, _, _ := newTestService(t)

	talent := talentWithSkills(t, "Go", "Redis")
	j, err := domjob.New("job-1", startupID, "Backend Engineer", "",
		domjob.TypeFullTime, []string{"Go", "React", "Redis", "SQL"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := svc.MatchTalentToJob(talent, j)
	// 2 of 4 required skills covered: 50
	if result.Percentage() != 50.0 {
		t.Errorf("expected 50.0, got %f", result.Percentage())
	}
	if result.Breakdown()[match.ComponentSkills] != 0.5 {
		t.Errorf("expected skills 0.5, got %v", result.Breakdown())
	}
	if len(result.MatchedSkills()) != 2 || len(result.MissingSkills()) != 2 {
		t.Errorf("unexpected skill split: %v / %v",
			result.MatchedSkills(), result.MissingSkills())
	}
}

func TestMatchTalentToJob_NeutralOnEmptySide(t *testing.T) {
	svc, _, _ := newTestService(t)

	talent := talentWithSkills(t) // no skills listed
	j, err := domjob.New("job-1", startupID, "Backend Engineer", "",
		domjob.TypeFullTime, []string{"Go"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := svc.MatchTalentToJob(talent, j)
	if result.Percentage() != 50.0 {
		t.Errorf("expected neutral 50.0, got %f", result.Percentage())
	}
	if result.MatchedSkills() != nil || result.MissingSkills() != nil {
		t.Error("neutral score must not carry skill lists")
	}
}

func TestMatchTalentToJob_FullCoverageCapped(t *testing.T) {
	svc, _, _ := newTestService(t)

	talent := talentWithSkills(t, "Go", "React", "SQL")
	j, err := domjob.New("job-1", startupID, "Backend Engineer", "",
		domjob.TypeFullTime, []string{"go", "react"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := svc.MatchTalentToJob(talent, j)
	if result.Percentage() != 100.0 {
		t.Errorf("expected 100.0, got %f", result.Percentage())
	}
}

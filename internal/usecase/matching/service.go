// Package matching computes pairwise hybrid match scores. Scores combine
// a lexical attribute overlap with the cosine similarity of stored
// embeddings; missing embeddings degrade the semantic component to zero
// rather than failing the match.
package matching

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/talentbridge/matchd/internal/domain"
	domjob "github.com/talentbridge/matchd/internal/domain/job"
	"github.com/talentbridge/matchd/internal/domain/match"
	domprof "github.com/talentbridge/matchd/internal/domain/profile"
	"github.com/talentbridge/matchd/internal/metrics"
)

// Hybrid score weights.
const (
	lexicalWeight  = 0.6
	semanticWeight = 0.4
)

// neutralJobScore is returned when either side of a talent-job pairing
// has no skills listed. An incomplete profile ranks mid-feed instead of
// sinking to the bottom.
const neutralJobScore = 50.0

// Service implements the pairwise matchers.
type Service struct {
	profiles   ProfileReader
	embeddings EmbeddingReader
	logger     *zap.Logger
}

// New creates a matching service.
func New(profiles ProfileReader, embeddings EmbeddingReader, logger *zap.Logger) *Service {
	return &Service{profiles: profiles, embeddings: embeddings, logger: logger}
}

// MatchTalentToStartup scores one talent against one startup.
// Lexical component: Jaccard over skill names, compared case-insensitively.
// Semantic component: cosine of the two profile embeddings.
func (s *Service) MatchTalentToStartup(ctx context.Context, talentID, startupID domain.SubjectID) (match.Result, error) {
	talent, err := s.profiles.GetTalent(ctx, talentID)
	if err != nil {
		metrics.MatchComputationsTotal.WithLabelValues("talent_startup", "error").Inc()
		return match.Result{}, fmt.Errorf("get talent %s: %w", talentID, err)
	}
	startup, err := s.profiles.GetStartup(ctx, startupID)
	if err != nil {
		metrics.MatchComputationsTotal.WithLabelValues("talent_startup", "error").Inc()
		return match.Result{}, fmt.Errorf("get startup %s: %w", startupID, err)
	}

	talentSkills := canonicalize(talent.SkillNames())
	requiredSkills := canonicalize(startup.RequiredSkills())
	lexical := domain.Jaccard(talentSkills, requiredSkills)

	semantic := s.semantic(ctx,
		talentID, domain.SourceProfile,
		startupID, domain.SourceProfile,
	)

	matched, missing := splitSkills(talentSkills, startup.RequiredSkills())

	metrics.MatchComputationsTotal.WithLabelValues("talent_startup", "success").Inc()
	return match.New(
		startupID,
		percentage(lexical, semantic),
		map[string]float64{
			match.ComponentSkills:   domain.Round2(lexical),
			match.ComponentSemantic: domain.Round2(semantic),
		},
		matched, missing,
	), nil
}

// MatchStartupToInvestor scores one startup against one investor.
// Lexical component: average of the industry-vs-sectors and the
// stage-vs-stages overlaps. Semantic component: startup profile embedding
// against the investor thesis embedding.
func (s *Service) MatchStartupToInvestor(ctx context.Context, startupID, investorID domain.SubjectID) (match.Result, error) {
	startup, err := s.profiles.GetStartup(ctx, startupID)
	if err != nil {
		metrics.MatchComputationsTotal.WithLabelValues("startup_investor", "error").Inc()
		return match.Result{}, fmt.Errorf("get startup %s: %w", startupID, err)
	}
	investor, err := s.profiles.GetInvestor(ctx, investorID)
	if err != nil {
		metrics.MatchComputationsTotal.WithLabelValues("startup_investor", "error").Inc()
		return match.Result{}, fmt.Errorf("get investor %s: %w", investorID, err)
	}

	var industryHalf float64
	if startup.Industry() != "" {
		industryHalf = domain.Jaccard(
			canonicalize([]string{startup.Industry()}),
			canonicalize(investor.PreferredSectors()),
		)
	}
	var stageHalf float64
	if startup.Stage() != "" {
		stageHalf = domain.Jaccard(
			canonicalize([]string{string(startup.Stage())}),
			canonicalize(investor.StageValues()),
		)
	}
	lexical := (industryHalf + stageHalf) / 2

	semantic := s.semantic(ctx,
		startupID, domain.SourceProfile,
		investorID, domain.SourceThesis,
	)

	metrics.MatchComputationsTotal.WithLabelValues("startup_investor", "success").Inc()
	return match.New(
		investorID,
		percentage(lexical, semantic),
		map[string]float64{
			match.ComponentIndustryStage: domain.Round2(lexical),
			match.ComponentSemantic:      domain.Round2(semantic),
		},
		nil, nil,
	), nil
}

// MatchTalentToJob scores a loaded talent against a loaded job posting.
// Lexical only: the ratio of the job's required skills the talent covers,
// as an integer percentage. Either side without skills scores neutral.
func (s *Service) MatchTalentToJob(talent domprof.Talent, j domjob.Job) match.Result {
	talentSkills := canonicalize(talent.SkillNames())
	required := canonicalize(j.RequiredSkills())

	metrics.MatchComputationsTotal.WithLabelValues("talent_job", "success").Inc()

	if len(talentSkills) == 0 || len(required) == 0 {
		return match.New(
			domain.SubjectID(j.ID()),
			neutralJobScore,
			map[string]float64{
				match.ComponentSkills:   0.5,
				match.ComponentSemantic: 0,
			},
			nil, nil,
		)
	}

	have := make(map[string]struct{}, len(talentSkills))
	for _, sk := range talentSkills {
		have[sk] = struct{}{}
	}
	overlap := 0
	for _, sk := range required {
		if _, ok := have[sk]; ok {
			overlap++
		}
	}
	ratio := float64(overlap) / float64(len(required))

	pct := float64(int(ratio * 100))
	if pct > 100 {
		pct = 100
	}

	matched, missing := splitSkills(talentSkills, j.RequiredSkills())
	return match.New(
		domain.SubjectID(j.ID()),
		pct,
		map[string]float64{
			match.ComponentSkills:   domain.Round2(ratio),
			match.ComponentSemantic: 0,
		},
		matched, missing,
	)
}

// semantic loads both embeddings and returns the clamped cosine score.
// Any absent, zero, or unreadable embedding yields 0.
func (s *Service) semantic(
	ctx context.Context,
	aID domain.SubjectID, aSource domain.Source,
	bID domain.SubjectID, bSource domain.Source,
) float64 {
	va, ok := s.vector(ctx, aID, aSource)
	if !ok {
		return 0
	}
	vb, ok := s.vector(ctx, bID, bSource)
	if !ok {
		return 0
	}
	return domain.Clamp01(domain.Cosine(va, vb))
}

func (s *Service) vector(ctx context.Context, id domain.SubjectID, source domain.Source) ([]float32, bool) {
	emb, err := s.embeddings.Get(ctx, id, source)
	if err != nil {
		if !errors.Is(err, domain.ErrEmbeddingNotFound) {
			s.logger.Warn("Failed to load embedding, scoring semantic as 0",
				zap.String("subject_id", string(id)),
				zap.String("source", string(source)),
				zap.Error(err),
			)
		}
		return nil, false
	}
	if domain.IsZeroVector(emb.Vector) {
		return nil, false
	}
	return emb.Vector, true
}

// percentage combines the two components on the 0-100 scale, 2dp.
func percentage(lexical, semantic float64) float64 {
	return domain.Round2(100 * (lexicalWeight*lexical + semanticWeight*semantic))
}

// canonicalize lower-cases and trims labels, dropping empties.
func canonicalize(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		l = strings.ToLower(strings.TrimSpace(l))
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// splitSkills partitions the required skills into matched and missing,
// keeping the requirement's original casing in the report.
func splitSkills(talentSkills, required []string) (matched, missing []string) {
	have := make(map[string]struct{}, len(talentSkills))
	for _, sk := range talentSkills {
		have[sk] = struct{}{}
	}
	for _, sk := range required {
		canonical := strings.ToLower(strings.TrimSpace(sk))
		if canonical == "" {
			continue
		}
		if _, ok := have[canonical]; ok {
			matched = append(matched, sk)
		} else {
			missing = append(missing, sk)
		}
	}
	return matched, missing
}

// Package profile implements the profile save pipeline: persist the
// typed profile, compose its embedding text, vectorize it and store the
// vector under the role's source tag. The embedding leg is best-effort;
// a save never fails because of it.
package profile

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/talentbridge/matchd/internal/domain"
	domprof "github.com/talentbridge/matchd/internal/domain/profile"
)

// Service implements profile saves and reads.
type Service struct {
	profiles   Repository
	embeddings EmbeddingWriter
	embedder   Embedder
	logger     *zap.Logger
}

// New creates a profile service. The embedder is expected to be the
// composed fail-open chain and therefore never returns an error in
// practice.
func New(profiles Repository, embeddings EmbeddingWriter, embedder Embedder, logger *zap.Logger) *Service {
	return &Service{
		profiles:   profiles,
		embeddings: embeddings,
		embedder:   embedder,
		logger:     logger,
	}
}

// SaveTalent persists a talent profile and refreshes its embedding.
func (s *Service) SaveTalent(ctx context.Context, t domprof.Talent) error {
	if err := s.profiles.SaveTalent(ctx, t); err != nil {
		return fmt.Errorf("save talent %s: %w", t.SubjectID(), err)
	}
	s.refreshEmbedding(ctx, t.SubjectID(), domain.SourceProfile, t.EmbeddingText())
	return nil
}

// GetTalent returns a talent profile.
func (s *Service) GetTalent(ctx context.Context, id domain.SubjectID) (domprof.Talent, error) {
	return s.profiles.GetTalent(ctx, id)
}

// SaveStartup persists a startup profile and refreshes its embedding.
func (s *Service) SaveStartup(ctx context.Context, st domprof.Startup) error {
	if err := s.profiles.SaveStartup(ctx, st); err != nil {
		return fmt.Errorf("save startup %s: %w", st.SubjectID(), err)
	}
	s.refreshEmbedding(ctx, st.SubjectID(), domain.SourceProfile, st.EmbeddingText())
	return nil
}

// GetStartup returns a startup profile.
func (s *Service) GetStartup(ctx context.Context, id domain.SubjectID) (domprof.Startup, error) {
	return s.profiles.GetStartup(ctx, id)
}

// SaveInvestor persists an investor profile and refreshes its thesis
// embedding.
func (s *Service) SaveInvestor(ctx context.Context, inv domprof.Investor) error {
	if err := s.profiles.SaveInvestor(ctx, inv); err != nil {
		return fmt.Errorf("save investor %s: %w", inv.SubjectID(), err)
	}
	s.refreshEmbedding(ctx, inv.SubjectID(), domain.SourceThesis, inv.EmbeddingText())
	return nil
}

// GetInvestor returns an investor profile.
func (s *Service) GetInvestor(ctx context.Context, id domain.SubjectID) (domprof.Investor, error) {
	return s.profiles.GetInvestor(ctx, id)
}

// refreshEmbedding vectorizes the profile text and upserts the row.
// Failures are logged and swallowed; the next save retries.
func (s *Service) refreshEmbedding(ctx context.Context, id domain.SubjectID, source domain.Source, text string) {
	result, err := s.embedder.Embed(ctx, text)
	if err != nil {
		s.logger.Warn("Embedding skipped for profile save",
			zap.String("subject_id", string(id)),
			zap.String("source", string(source)),
			zap.Error(err),
		)
		return
	}

	emb := domain.Embedding{
		SubjectID: id,
		Source:    source,
		Vector:    result.Embedding,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := s.embeddings.Upsert(ctx, emb); err != nil {
		s.logger.Warn("Embedding upsert failed for profile save",
			zap.String("subject_id", string(id)),
			zap.String("source", string(source)),
			zap.Error(err),
		)
	}
}

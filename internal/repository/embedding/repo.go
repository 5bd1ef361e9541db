// Package embedding persists one vector row per (subject, source) pair.
// Rows live in Redis hashes keyed by subject and source, so an upsert for
// the same pair overwrites in place and never accumulates stale vectors.
package embedding

import (
	"context"
	"fmt"

	"github.com/talentbridge/matchd/internal/domain"
)

// store is the consumer interface for embedding rows (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
}

// Repo implements the embedding store used by the profile and matching
// use cases.
type Repo struct {
	store  store
	prefix string
}

// New creates an embedding repository. prefix namespaces every key.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// Upsert writes the embedding row for (subject, source), replacing any
// previous vector for the pair.
func (r *Repo) Upsert(ctx context.Context, emb domain.Embedding) error {
	key := r.key(emb.SubjectID, emb.Source)
	if err := r.store.HSet(ctx, key, buildHashFields(emb)); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	return nil
}

// Get returns the stored embedding for (subject, source).
func (r *Repo) Get(ctx context.Context, subjectID domain.SubjectID, source domain.Source) (domain.Embedding, error) {
	key := r.key(subjectID, source)
	fields, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return domain.Embedding{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	if len(fields) == 0 {
		return domain.Embedding{}, domain.ErrEmbeddingNotFound
	}
	return parseHashFields(subjectID, source, fields), nil
}

// Delete removes the embedding row for (subject, source). Deleting a
// missing row is not an error.
func (r *Repo) Delete(ctx context.Context, subjectID domain.SubjectID, source domain.Source) error {
	key := r.key(subjectID, source)
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

func (r *Repo) key(subjectID domain.SubjectID, source domain.Source) string {
	return fmt.Sprintf("%semb:%s:%s", r.prefix, subjectID, source)
}

// Package job persists job postings as JSON values plus an append-only
// index list, so the job feed is ranked over postings in creation order.
package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/talentbridge/matchd/internal/db"
	"github.com/talentbridge/matchd/internal/domain"
	domjob "github.com/talentbridge/matchd/internal/domain/job"
)

// store is the consumer interface for job postings (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	GetMulti(ctx context.Context, keys []string) ([][]byte, error)
	RPush(ctx context.Context, key string, values ...string) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	LPos(ctx context.Context, key, value string) (bool, error)
}

type jobDTO struct {
	ID             string   `json:"id"`
	StartupID      string   `json:"startup_id"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	JobType        string   `json:"job_type"`
	RequiredSkills []string `json:"required_skills,omitempty"`
}

// Repo implements the job store used by the job and ranking use cases.
type Repo struct {
	store  store
	prefix string
}

// New creates a job repository. prefix namespaces every key.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// Save writes a job posting and registers it in the job index on first
// save.
func (r *Repo) Save(ctx context.Context, j domjob.Job) error {
	data, err := json.Marshal(buildDTO(j))
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}

	key := r.jobKey(j.ID())
	if err := r.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	idxKey := r.indexKey()
	indexed, err := r.store.LPos(ctx, idxKey, j.ID())
	if err != nil {
		return fmt.Errorf("lpos %s: %w", idxKey, err)
	}
	if !indexed {
		if err := r.store.RPush(ctx, idxKey, j.ID()); err != nil {
			return fmt.Errorf("rpush %s: %w", idxKey, err)
		}
	}
	return nil
}

// Get returns a job posting by ID.
func (r *Repo) Get(ctx context.Context, id string) (domjob.Job, error) {
	key := r.jobKey(id)
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domjob.Job{}, domain.ErrJobNotFound
		}
		return domjob.Job{}, fmt.Errorf("get %s: %w", key, err)
	}
	var dto jobDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return domjob.Job{}, fmt.Errorf("unmarshal job: %w", err)
	}
	return parseDTO(dto), nil
}

// List returns every job posting in creation order. Indexed jobs missing
// a value are skipped.
func (r *Repo) List(ctx context.Context) ([]domjob.Job, error) {
	idxKey := r.indexKey()
	ids, err := r.store.LRange(ctx, idxKey, 0, -1)
	if err != nil {
		return nil, fmt.Errorf("lrange %s: %w", idxKey, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.jobKey(id)
	}
	values, err := r.store.GetMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("mget jobs: %w", err)
	}

	jobs := make([]domjob.Job, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		var dto jobDTO
		if err := json.Unmarshal(v, &dto); err != nil {
			return nil, fmt.Errorf("unmarshal job: %w", err)
		}
		jobs = append(jobs, parseDTO(dto))
	}
	return jobs, nil
}

// ListByStartup returns the startup's own postings in creation order.
func (r *Repo) ListByStartup(ctx context.Context, startupID domain.SubjectID) ([]domjob.Job, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domjob.Job, 0, len(all))
	for _, j := range all {
		if j.StartupID() == startupID {
			out = append(out, j)
		}
	}
	return out, nil
}

func buildDTO(j domjob.Job) jobDTO {
	return jobDTO{
		ID:             j.ID(),
		StartupID:      string(j.StartupID()),
		Title:          j.Title(),
		Description:    j.Description(),
		JobType:        string(j.JobType()),
		RequiredSkills: j.RequiredSkills(),
	}
}

func parseDTO(dto jobDTO) domjob.Job {
	return domjob.Reconstruct(
		dto.ID, domain.SubjectID(dto.StartupID), dto.Title, dto.Description,
		domjob.Type(dto.JobType), dto.RequiredSkills,
	)
}

func (r *Repo) jobKey(id string) string {
	return fmt.Sprintf("%sjob:%s", r.prefix, id)
}

func (r *Repo) indexKey() string {
	return r.prefix + "idx:jobs"
}

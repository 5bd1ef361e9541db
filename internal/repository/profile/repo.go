// Package profile persists role profiles as JSON values and keeps one
// candidate index list per role. The index is an append-only Redis list,
// so candidate listing order is registration order and stays stable
// across ranking calls.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/talentbridge/matchd/internal/db"
	"github.com/talentbridge/matchd/internal/domain"
	domprof "github.com/talentbridge/matchd/internal/domain/profile"
)

// store is the consumer interface for profiles (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	GetMulti(ctx context.Context, keys []string) ([][]byte, error)
	RPush(ctx context.Context, key string, values ...string) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	LPos(ctx context.Context, key, value string) (bool, error)
}

// Repo implements the profile store used by the profile and ranking
// use cases.
type Repo struct {
	store  store
	prefix string
}

// New creates a profile repository. prefix namespaces every key.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// SaveTalent writes a talent profile and registers it in the talent
// candidate index on first save.
func (r *Repo) SaveTalent(ctx context.Context, t domprof.Talent) error {
	return r.save(ctx, domain.RoleTalent, t.SubjectID(), buildTalentDTO(t))
}

// GetTalent returns a talent profile by subject ID.
func (r *Repo) GetTalent(ctx context.Context, id domain.SubjectID) (domprof.Talent, error) {
	var dto talentDTO
	if err := r.get(ctx, domain.RoleTalent, id, &dto); err != nil {
		return domprof.Talent{}, err
	}
	return parseTalentDTO(dto), nil
}

// SaveStartup writes a startup profile and registers it in the startup
// candidate index on first save.
func (r *Repo) SaveStartup(ctx context.Context, s domprof.Startup) error {
	return r.save(ctx, domain.RoleStartup, s.SubjectID(), buildStartupDTO(s))
}

// GetStartup returns a startup profile by subject ID.
func (r *Repo) GetStartup(ctx context.Context, id domain.SubjectID) (domprof.Startup, error) {
	var dto startupDTO
	if err := r.get(ctx, domain.RoleStartup, id, &dto); err != nil {
		return domprof.Startup{}, err
	}
	return parseStartupDTO(dto), nil
}

// SaveInvestor writes an investor profile and registers it in the
// investor candidate index on first save.
func (r *Repo) SaveInvestor(ctx context.Context, i domprof.Investor) error {
	return r.save(ctx, domain.RoleInvestor, i.SubjectID(), buildInvestorDTO(i))
}

// GetInvestor returns an investor profile by subject ID.
func (r *Repo) GetInvestor(ctx context.Context, id domain.SubjectID) (domprof.Investor, error) {
	var dto investorDTO
	if err := r.get(ctx, domain.RoleInvestor, id, &dto); err != nil {
		return domprof.Investor{}, err
	}
	return parseInvestorDTO(dto), nil
}

// ListCandidates returns every registered subject ID for a role in
// registration order.
func (r *Repo) ListCandidates(ctx context.Context, role domain.Role) ([]domain.SubjectID, error) {
	key := r.indexKey(role)
	raw, err := r.store.LRange(ctx, key, 0, -1)
	if err != nil {
		return nil, fmt.Errorf("lrange %s: %w", key, err)
	}
	ids := make([]domain.SubjectID, len(raw))
	for i, v := range raw {
		ids[i] = domain.SubjectID(v)
	}
	return ids, nil
}

// ListStartups returns every startup profile in registration order.
// Subjects indexed but missing a profile value are skipped.
func (r *Repo) ListStartups(ctx context.Context) ([]domprof.Startup, error) {
	values, err := r.listValues(ctx, domain.RoleStartup)
	if err != nil {
		return nil, err
	}
	out := make([]domprof.Startup, 0, len(values))
	for _, v := range values {
		var dto startupDTO
		if err := json.Unmarshal(v, &dto); err != nil {
			return nil, fmt.Errorf("unmarshal startup profile: %w", err)
		}
		out = append(out, parseStartupDTO(dto))
	}
	return out, nil
}

// ListTalents returns every talent profile in registration order.
func (r *Repo) ListTalents(ctx context.Context) ([]domprof.Talent, error) {
	values, err := r.listValues(ctx, domain.RoleTalent)
	if err != nil {
		return nil, err
	}
	out := make([]domprof.Talent, 0, len(values))
	for _, v := range values {
		var dto talentDTO
		if err := json.Unmarshal(v, &dto); err != nil {
			return nil, fmt.Errorf("unmarshal talent profile: %w", err)
		}
		out = append(out, parseTalentDTO(dto))
	}
	return out, nil
}

// ListInvestors returns every investor profile in registration order.
func (r *Repo) ListInvestors(ctx context.Context) ([]domprof.Investor, error) {
	values, err := r.listValues(ctx, domain.RoleInvestor)
	if err != nil {
		return nil, err
	}
	out := make([]domprof.Investor, 0, len(values))
	for _, v := range values {
		var dto investorDTO
		if err := json.Unmarshal(v, &dto); err != nil {
			return nil, fmt.Errorf("unmarshal investor profile: %w", err)
		}
		out = append(out, parseInvestorDTO(dto))
	}
	return out, nil
}

func (r *Repo) save(ctx context.Context, role domain.Role, id domain.SubjectID, dto any) error {
	data, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("marshal %s profile: %w", role, err)
	}

	key := r.profileKey(role, id)
	if err := r.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	idxKey := r.indexKey(role)
	indexed, err := r.store.LPos(ctx, idxKey, string(id))
	if err != nil {
		return fmt.Errorf("lpos %s: %w", idxKey, err)
	}
	if !indexed {
		if err := r.store.RPush(ctx, idxKey, string(id)); err != nil {
			return fmt.Errorf("rpush %s: %w", idxKey, err)
		}
	}
	return nil
}

func (r *Repo) get(ctx context.Context, role domain.Role, id domain.SubjectID, dto any) error {
	key := r.profileKey(role, id)
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domain.ErrProfileNotFound
		}
		return fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dto); err != nil {
		return fmt.Errorf("unmarshal %s profile: %w", role, err)
	}
	return nil
}

// listValues fetches every indexed profile value for a role in one MGET.
func (r *Repo) listValues(ctx context.Context, role domain.Role) ([][]byte, error) {
	ids, err := r.ListCandidates(ctx, role)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.profileKey(role, id)
	}
	values, err := r.store.GetMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("mget %s profiles: %w", role, err)
	}

	out := make([][]byte, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *Repo) profileKey(role domain.Role, id domain.SubjectID) string {
	return fmt.Sprintf("%sprofile:%s:%s", r.prefix, role, id)
}

func (r *Repo) indexKey(role domain.Role) string {
	return fmt.Sprintf("%sidx:%s", r.prefix, role)
}

// Package connection persists connection requests as JSON values with
// per-subject sent and received index lists.
package connection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/talentbridge/matchd/internal/db"
	"github.com/talentbridge/matchd/internal/domain"
	domconn "github.com/talentbridge/matchd/internal/domain/connection"
)

// store is the consumer interface for connection requests (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	GetMulti(ctx context.Context, keys []string) ([][]byte, error)
	RPush(ctx context.Context, key string, values ...string) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
}

type requestDTO struct {
	ID        string `json:"id"`
	Requester string `json:"requester_id"`
	Target    string `json:"target_id"`
	Message   string `json:"message,omitempty"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

// Repo implements the connection store used by the connection use case.
type Repo struct {
	store  store
	prefix string
}

// New creates a connection repository. prefix namespaces every key.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// Create writes a new request and indexes it on both sides.
func (r *Repo) Create(ctx context.Context, req domconn.Request) error {
	if err := r.write(ctx, req); err != nil {
		return err
	}

	sentKey := r.sentKey(req.Requester())
	if err := r.store.RPush(ctx, sentKey, req.ID()); err != nil {
		return fmt.Errorf("rpush %s: %w", sentKey, err)
	}
	recvKey := r.receivedKey(req.Target())
	if err := r.store.RPush(ctx, recvKey, req.ID()); err != nil {
		return fmt.Errorf("rpush %s: %w", recvKey, err)
	}
	return nil
}

// Update rewrites an existing request in place. Indexes are untouched;
// a request never changes sides.
func (r *Repo) Update(ctx context.Context, req domconn.Request) error {
	return r.write(ctx, req)
}

// Get returns a request by ID.
func (r *Repo) Get(ctx context.Context, id string) (domconn.Request, error) {
	key := r.connKey(id)
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domconn.Request{}, domain.ErrConnectionNotFound
		}
		return domconn.Request{}, fmt.Errorf("get %s: %w", key, err)
	}
	var dto requestDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return domconn.Request{}, fmt.Errorf("unmarshal connection: %w", err)
	}
	return parseDTO(dto), nil
}

// ListSent returns the requests a subject has sent, oldest first.
func (r *Repo) ListSent(ctx context.Context, subjectID domain.SubjectID) ([]domconn.Request, error) {
	return r.list(ctx, r.sentKey(subjectID))
}

// ListReceived returns the requests addressed to a subject, oldest first.
func (r *Repo) ListReceived(ctx context.Context, subjectID domain.SubjectID) ([]domconn.Request, error) {
	return r.list(ctx, r.receivedKey(subjectID))
}

func (r *Repo) write(ctx context.Context, req domconn.Request) error {
	data, err := json.Marshal(buildDTO(req))
	if err != nil {
		return fmt.Errorf("marshal connection: %w", err)
	}
	key := r.connKey(req.ID())
	if err := r.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (r *Repo) list(ctx context.Context, idxKey string) ([]domconn.Request, error) {
	ids, err := r.store.LRange(ctx, idxKey, 0, -1)
	if err != nil {
		return nil, fmt.Errorf("lrange %s: %w", idxKey, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.connKey(id)
	}
	values, err := r.store.GetMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("mget connections: %w", err)
	}

	out := make([]domconn.Request, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		var dto requestDTO
		if err := json.Unmarshal(v, &dto); err != nil {
			return nil, fmt.Errorf("unmarshal connection: %w", err)
		}
		out = append(out, parseDTO(dto))
	}
	return out, nil
}

func buildDTO(req domconn.Request) requestDTO {
	return requestDTO{
		ID:        req.ID(),
		Requester: string(req.Requester()),
		Target:    string(req.Target()),
		Message:   req.Message(),
		Status:    string(req.Status()),
		CreatedAt: req.CreatedAt(),
	}
}

func parseDTO(dto requestDTO) domconn.Request {
	return domconn.Reconstruct(
		dto.ID, domain.SubjectID(dto.Requester), domain.SubjectID(dto.Target),
		dto.Message, domconn.Status(dto.Status), dto.CreatedAt,
	)
}

func (r *Repo) connKey(id string) string {
	return fmt.Sprintf("%sconn:%s", r.prefix, id)
}

func (r *Repo) sentKey(id domain.SubjectID) string {
	return fmt.Sprintf("%sidx:conn:sent:%s", r.prefix, id)
}

func (r *Repo) receivedKey(id domain.SubjectID) string {
	return fmt.Sprintf("%sidx:conn:recv:%s", r.prefix, id)
}

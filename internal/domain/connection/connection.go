// Package connection holds the connection-request aggregate exchanged
// between matched subjects. Connections never influence scoring.
package connection

import (
	"fmt"
	"time"

	"github.com/talentbridge/matchd/internal/domain"
)

// Status is the lifecycle state of a connection request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// IsValid checks if the status is supported.
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusAccepted || s == StatusRejected
}

const maxMessageLen = 2000

// Request is one connection request (immutable value object).
type Request struct {
	id        string
	requester domain.SubjectID
	target    domain.SubjectID
	message   string
	status    Status
	createdAt int64
}

// New validates and creates a pending Request.
func New(id string, requester, target domain.SubjectID, message string) (Request, error) {
	if id == "" {
		return Request{}, fmt.Errorf("%w: connection ID is required", domain.ErrInvalidConnection)
	}
	if requester == target {
		return Request{}, fmt.Errorf("%w: cannot request a connection with yourself", domain.ErrInvalidConnection)
	}
	if len(message) > maxMessageLen {
		return Request{}, fmt.Errorf("%w: message too long (max %d)", domain.ErrInvalidConnection, maxMessageLen)
	}

	return Request{
		id:        id,
		requester: requester,
		target:    target,
		message:   message,
		status:    StatusPending,
		createdAt: time.Now().UnixMilli(),
	}, nil
}

// Reconstruct creates a Request without validation (storage hydration).
func Reconstruct(
	id string, requester, target domain.SubjectID,
	message string, status Status, createdAt int64,
) Request {
	return Request{
		id: id, requester: requester, target: target,
		message: message, status: status, createdAt: createdAt,
	}
}

func (r Request) ID() string { return r.id }
func (r Request) Requester() domain.SubjectID { return r.requester }
func (r Request) Target() domain.SubjectID { return r.target }
func (r Request) Message() string { return r.message }
func (r Request) Status() Status { return r.status }
func (r Request) CreatedAt() int64 { return r.createdAt }

// Resolve transitions a pending request to accepted or rejected.
// Already-resolved requests cannot change state again.
func (r Request) Resolve(to Status) (Request, error) {
	if to != StatusAccepted && to != StatusRejected {
		return Request{}, fmt.Errorf("cannot resolve to status %q", to)
	}
	if r.status != StatusPending {
		return Request{}, fmt.Errorf("%w: status is %s", domain.ErrInvalidConnectionState, r.status)
	}
	resolved := r
	resolved.status = to
	return resolved, nil
}

// Package connection implements the connection request workflow between
// matched subjects.
package connection

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentbridge/matchd/internal/domain"
	domconn "github.com/talentbridge/matchd/internal/domain/connection"
)

// Service implements connection request operations.
type Service struct {
	conns  Repository
	logger *zap.Logger
}

// New creates a connection service.
func New(conns Repository, logger *zap.Logger) *Service {
	return &Service{conns: conns, logger: logger}
}

// Request creates a pending connection request.
func (s *Service) Request(ctx context.Context, requester, target domain.SubjectID, message string) (domconn.Request, error) {
	req, err := domconn.New(uuid.NewString(), requester, target, message)
	if err != nil {
		return domconn.Request{}, err
	}
	if err := s.conns.Create(ctx, req); err != nil {
		return domconn.Request{}, fmt.Errorf("create connection: %w", err)
	}

	s.logger.Info("Connection requested",
		zap.String("connection_id", req.ID()),
		zap.String("requester_id", string(requester)),
		zap.String("target_id", string(target)),
	)
	return req, nil
}

// ListFor returns a subject's sent and received requests.
func (s *Service) ListFor(ctx context.Context, subjectID domain.SubjectID) (sent, received []domconn.Request, err error) {
	sent, err = s.conns.ListSent(ctx, subjectID)
	if err != nil {
		return nil, nil, fmt.Errorf("list sent: %w", err)
	}
	received, err = s.conns.ListReceived(ctx, subjectID)
	if err != nil {
		return nil, nil, fmt.Errorf("list received: %w", err)
	}
	return sent, received, nil
}

// Respond resolves a pending request to accepted or rejected.
func (s *Service) Respond(ctx context.Context, id string, accept bool) (domconn.Request, error) {
	req, err := s.conns.Get(ctx, id)
	if err != nil {
		return domconn.Request{}, err
	}

	to := domconn.StatusRejected
	if accept {
		to = domconn.StatusAccepted
	}
	resolved, err := req.Resolve(to)
	if err != nil {
		return domconn.Request{}, err
	}
	if err := s.conns.Update(ctx, resolved); err != nil {
		return domconn.Request{}, fmt.Errorf("update connection: %w", err)
	}
	return resolved, nil
}

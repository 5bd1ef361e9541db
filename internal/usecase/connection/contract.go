package connection

import (
	"context"

	"github.com/talentbridge/matchd/internal/domain"
	domconn "github.com/talentbridge/matchd/internal/domain/connection"
)

// Repository defines the storage contract for connection requests.
type Repository interface {
	Create(ctx context.Context, req domconn.Request) error
	Update(ctx context.Context, req domconn.Request) error
	Get(ctx context.Context, id string) (domconn.Request, error)
	ListSent(ctx context.Context, subjectID domain.SubjectID) ([]domconn.Request, error)
	ListReceived(ctx context.Context, subjectID domain.SubjectID) ([]domconn.Request, error)
}

package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// SubjectID is an opaque actor identifier (talent, startup, or investor).
// The embedding layer carries no role distinction.
type SubjectID string

// ParseSubjectID validates a raw identifier. Malformed IDs are rejected
// here, before any storage round-trip.
func ParseSubjectID(raw string) (SubjectID, error) {
	if _, err := uuid.Parse(raw); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidSubjectID, raw)
	}
	return SubjectID(raw), nil
}

func (id SubjectID) String() string { return string(id) }

// Role distinguishes the three marketplace actor kinds.
type Role string

const (
	// RoleTalent is a candidate looking for startup roles.
	RoleTalent Role = "talent"
	// RoleStartup is a founder-side startup profile.
	RoleStartup Role = "startup"
	// RoleInvestor is a fund or angel profile.
	RoleInvestor Role = "investor"
)

// IsValid checks if the role is one of the three supported kinds.
func (r Role) IsValid() bool {
	return r == RoleTalent || r == RoleStartup || r == RoleInvestor
}

package domain

import "errors"

var (
	// ErrProfileNotFound signals a missing profile on either side of a match.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrJobNotFound signals a missing job posting.
	ErrJobNotFound = errors.New("job not found")
	// ErrEmbeddingNotFound signals an absent embedding row. Never surfaces to
	// callers of the matchers: an absent embedding degrades the semantic
	// score to zero.
	ErrEmbeddingNotFound = errors.New("embedding not found")
	// ErrConnectionNotFound signals a missing connection request.
	ErrConnectionNotFound = errors.New("connection request not found")
	// ErrInvalidSubjectID signals a malformed subject identifier, rejected before any I/O.
	ErrInvalidSubjectID = errors.New("invalid subject id")
	// ErrInvalidProfile signals a profile that failed validation.
	ErrInvalidProfile = errors.New("invalid profile")
	// ErrInvalidJob signals a job posting that failed validation.
	ErrInvalidJob = errors.New("invalid job posting")
	// ErrInvalidConnection signals a connection request that failed validation.
	ErrInvalidConnection = errors.New("invalid connection request")
	// ErrInvalidConnectionState signals a status transition from a non-pending request.
	ErrInvalidConnectionState = errors.New("connection request already resolved")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	// The fail-open decorator converts it into a zero vector.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
)

// Package job holds startup job postings ranked in the talent job feed.
package job

import (
	"fmt"

	"github.com/talentbridge/matchd/internal/domain"
)

// Type is the engagement kind of a posting.
type Type string

const (
	TypeFullTime  Type = "full-time"
	TypePartTime  Type = "part-time"
	TypeContract  Type = "contract"
	TypeCofounder Type = "cofounder"
)

// IsValid checks if the job type is supported.
func (t Type) IsValid() bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeContract, TypeCofounder:
		return true
	}
	return false
}

// Job is one posting owned by a startup (immutable value object).
type Job struct {
	id             string
	startupID      domain.SubjectID
	title          string
	description    string
	jobType        Type
	requiredSkills []string
}

// New validates and creates a Job.
func New(
	id string, startupID domain.SubjectID, title, description string,
	jobType Type, requiredSkills []string,
) (Job, error) {
	if id == "" {
		return Job{}, fmt.Errorf("%w: job ID is required", domain.ErrInvalidJob)
	}
	if title == "" {
		return Job{}, fmt.Errorf("%w: title is required", domain.ErrInvalidJob)
	}
	if jobType == "" {
		jobType = TypeFullTime
	}
	if !jobType.IsValid() {
		return Job{}, fmt.Errorf("%w: unknown job type %q", domain.ErrInvalidJob, jobType)
	}

	return Job{
		id:             id,
		startupID:      startupID,
		title:          title,
		description:    description,
		jobType:        jobType,
		requiredSkills: append([]string(nil), requiredSkills...),
	}, nil
}

// Reconstruct creates a Job without validation (storage hydration).
func Reconstruct(
	id string, startupID domain.SubjectID, title, description string,
	jobType Type, requiredSkills []string,
) Job {
	return Job{
		id: id, startupID: startupID, title: title, description: description,
		jobType: jobType, requiredSkills: requiredSkills,
	}
}

func (j Job) ID() string { return j.id }
func (j Job) StartupID() domain.SubjectID { return j.startupID }
func (j Job) Title() string { return j.title }
func (j Job) Description() string { return j.description }
func (j Job) JobType() Type { return j.jobType }
func (j Job) RequiredSkills() []string { return j.requiredSkills }

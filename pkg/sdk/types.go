package matchd

import "time"

// Skill is one talent skill with an optional self-reported proficiency.
type Skill struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
}

// TalentProfile is the candidate-side profile. ID and Completeness are
// set by the server and ignored on save.
type TalentProfile struct {
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name"`
	Headline     string  `json:"headline,omitempty"`
	Bio          string  `json:"bio,omitempty"`
	Skills       []Skill `json:"skills,omitempty"`
	Completeness float64 `json:"completeness,omitempty"`
}

// StartupProfile is the founder-side profile.
type StartupProfile struct {
	ID             string   `json:"id,omitempty"`
	Name           string   `json:"name"`
	Tagline        string   `json:"tagline,omitempty"`
	Description    string   `json:"description,omitempty"`
	Industry       string   `json:"industry,omitempty"`
	Stage          string   `json:"stage,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	Completeness   float64  `json:"completeness,omitempty"`
}

// InvestorProfile is the fund-side profile.
type InvestorProfile struct {
	ID               string   `json:"id,omitempty"`
	Name             string   `json:"name"`
	Fund             string   `json:"fund,omitempty"`
	Thesis           string   `json:"thesis,omitempty"`
	PreferredSectors []string `json:"preferred_sectors,omitempty"`
	InvestmentStages []string `json:"investment_stages,omitempty"`
}

// JobPosting is one startup job posting. ID is set by the server.
type JobPosting struct {
	ID             string   `json:"id,omitempty"`
	StartupID      string   `json:"startup_id"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	JobType        string   `json:"job_type,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
}

// MatchResult is one scored pairing.
type MatchResult struct {
	SubjectID       string             `json:"subject_id"`
	MatchPercentage float64            `json:"match_percentage"`
	ScoreBreakdown  map[string]float64 `json:"score_breakdown"`
	MatchedSkills   []string           `json:"matched_skills,omitempty"`
	MissingSkills   []string           `json:"missing_skills,omitempty"`
}

// Connection is one connection request between two subjects.
type Connection struct {
	ID          string    `json:"id"`
	RequesterID string    `json:"requester_id"`
	TargetID    string    `json:"target_id"`
	Message     string    `json:"message,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ConnectionList groups a subject's requests by direction.
type ConnectionList struct {
	Sent     []Connection `json:"sent"`
	Received []Connection `json:"received"`
}

// HealthStatus is the aggregated system health.
type HealthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type jobList struct {
	Items []JobPosting `json:"items"`
	Total int          `json:"total"`
}

type matchList struct {
	Items []MatchResult `json:"items"`
	Total int           `json:"total"`
}

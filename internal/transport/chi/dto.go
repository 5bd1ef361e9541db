package chi

import (
	"time"

	domconn "github.com/talentbridge/matchd/internal/domain/connection"
	domjob "github.com/talentbridge/matchd/internal/domain/job"
	"github.com/talentbridge/matchd/internal/domain/match"
	domprof "github.com/talentbridge/matchd/internal/domain/profile"
)

// ErrorResponse is the JSON error body returned by every failing endpoint.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type skillDTO struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
}

type talentRequest struct {
	Name     string     `json:"name"`
	Headline string     `json:"headline,omitempty"`
	Bio      string     `json:"bio,omitempty"`
	Skills   []skillDTO `json:"skills,omitempty"`
}

type talentResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Headline     string     `json:"headline,omitempty"`
	Bio          string     `json:"bio,omitempty"`
	Skills       []skillDTO `json:"skills,omitempty"`
	Completeness float64    `json:"completeness"`
}

type startupRequest struct {
	Name           string   `json:"name"`
	Tagline        string   `json:"tagline,omitempty"`
	Description    string   `json:"description,omitempty"`
	Industry       string   `json:"industry,omitempty"`
	Stage          string   `json:"stage,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
}

type startupResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Tagline        string   `json:"tagline,omitempty"`
	Description    string   `json:"description,omitempty"`
	Industry       string   `json:"industry,omitempty"`
	Stage          string   `json:"stage,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	Completeness   float64  `json:"completeness"`
}

type investorRequest struct {
	Name             string   `json:"name"`
	Fund             string   `json:"fund,omitempty"`
	Thesis           string   `json:"thesis,omitempty"`
	PreferredSectors []string `json:"preferred_sectors,omitempty"`
	InvestmentStages []string `json:"investment_stages,omitempty"`
}

type investorResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Fund             string   `json:"fund,omitempty"`
	Thesis           string   `json:"thesis,omitempty"`
	PreferredSectors []string `json:"preferred_sectors,omitempty"`
	InvestmentStages []string `json:"investment_stages,omitempty"`
}

type jobRequest struct {
	StartupID      string   `json:"startup_id"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	JobType        string   `json:"job_type,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
}

type jobResponse struct {
	ID             string   `json:"id"`
	StartupID      string   `json:"startup_id"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	JobType        string   `json:"job_type"`
	RequiredSkills []string `json:"required_skills,omitempty"`
}

type jobListResponse struct {
	Items []jobResponse `json:"items"`
	Total int           `json:"total"`
}

type matchResponse struct {
	SubjectID       string             `json:"subject_id"`
	MatchPercentage float64            `json:"match_percentage"`
	ScoreBreakdown  map[string]float64 `json:"score_breakdown"`
	MatchedSkills   []string           `json:"matched_skills,omitempty"`
	MissingSkills   []string           `json:"missing_skills,omitempty"`
}

type matchListResponse struct {
	Items []matchResponse `json:"items"`
	Total int             `json:"total"`
}

type connectionRequest struct {
	RequesterID string `json:"requester_id"`
	TargetID    string `json:"target_id"`
	Message     string `json:"message,omitempty"`
}

type connectionRespondRequest struct {
	Accept bool `json:"accept"`
}

type connectionResponse struct {
	ID          string    `json:"id"`
	RequesterID string    `json:"requester_id"`
	TargetID    string    `json:"target_id"`
	Message     string    `json:"message,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type connectionListResponse struct {
	Sent     []connectionResponse `json:"sent"`
	Received []connectionResponse `json:"received"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func skillsFromDTO(skills []skillDTO) []domprof.Skill {
	out := make([]domprof.Skill, len(skills))
	for i, s := range skills {
		out[i] = domprof.Skill{Name: s.Name, Proficiency: s.Proficiency}
	}
	return out
}

func skillsToDTO(skills []domprof.Skill) []skillDTO {
	if len(skills) == 0 {
		return nil
	}
	out := make([]skillDTO, len(skills))
	for i, s := range skills {
		out[i] = skillDTO{Name: s.Name, Proficiency: s.Proficiency}
	}
	return out
}

func talentToResponse(t domprof.Talent) talentResponse {
	return talentResponse{
		ID:           string(t.SubjectID()),
		Name:         t.Name(),
		Headline:     t.Headline(),
		Bio:          t.Bio(),
		Skills:       skillsToDTO(t.Skills()),
		Completeness: t.Completeness(),
	}
}

func startupToResponse(s domprof.Startup) startupResponse {
	return startupResponse{
		ID:             string(s.SubjectID()),
		Name:           s.Name(),
		Tagline:        s.Tagline(),
		Description:    s.Description(),
		Industry:       s.Industry(),
		Stage:          string(s.Stage()),
		RequiredSkills: s.RequiredSkills(),
		Completeness:   s.Completeness(),
	}
}

func investorToResponse(i domprof.Investor) investorResponse {
	return investorResponse{
		ID:               string(i.SubjectID()),
		Name:             i.Name(),
		Fund:             i.Fund(),
		Thesis:           i.Thesis(),
		PreferredSectors: i.PreferredSectors(),
		InvestmentStages: i.StageValues(),
	}
}

func jobToResponse(j domjob.Job) jobResponse {
	return jobResponse{
		ID:             j.ID(),
		StartupID:      string(j.StartupID()),
		Title:          j.Title(),
		Description:    j.Description(),
		JobType:        string(j.JobType()),
		RequiredSkills: j.RequiredSkills(),
	}
}

func matchToResponse(r match.Result) matchResponse {
	return matchResponse{
		SubjectID:       string(r.SubjectID()),
		MatchPercentage: r.Percentage(),
		ScoreBreakdown:  r.Breakdown(),
		MatchedSkills:   r.MatchedSkills(),
		MissingSkills:   r.MissingSkills(),
	}
}

func matchesToResponse(results []match.Result) matchListResponse {
	items := make([]matchResponse, len(results))
	for i, r := range results {
		items[i] = matchToResponse(r)
	}
	return matchListResponse{Items: items, Total: len(items)}
}

func connectionToResponse(c domconn.Request) connectionResponse {
	return connectionResponse{
		ID:          c.ID(),
		RequesterID: string(c.Requester()),
		TargetID:    string(c.Target()),
		Message:     c.Message(),
		Status:      string(c.Status()),
		CreatedAt:   time.UnixMilli(c.CreatedAt()).UTC(),
	}
}

func connectionsToResponse(reqs []domconn.Request) []connectionResponse {
	out := make([]connectionResponse, len(reqs))
	for i, c := range reqs {
		out[i] = connectionToResponse(c)
	}
	return out
}

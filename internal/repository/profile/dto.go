package profile

import (
	"github.com/talentbridge/matchd/internal/domain"
	domprof "github.com/talentbridge/matchd/internal/domain/profile"
)

type skillDTO struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
}

type talentDTO struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Headline     string     `json:"headline,omitempty"`
	Bio          string     `json:"bio,omitempty"`
	Skills       []skillDTO `json:"skills,omitempty"`
	Completeness float64    `json:"completeness"`
}

type startupDTO struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Tagline        string   `json:"tagline,omitempty"`
	Description    string   `json:"description,omitempty"`
	Industry       string   `json:"industry,omitempty"`
	Stage          string   `json:"stage,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	Completeness   float64  `json:"completeness"`
}

type investorDTO struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Fund             string   `json:"fund,omitempty"`
	Thesis           string   `json:"thesis,omitempty"`
	PreferredSectors []string `json:"preferred_sectors,omitempty"`
	InvestmentStages []string `json:"investment_stages,omitempty"`
}

func buildTalentDTO(t domprof.Talent) talentDTO {
	skills := make([]skillDTO, len(t.Skills()))
	for i, s := range t.Skills() {
		skills[i] = skillDTO{Name: s.Name, Proficiency: s.Proficiency}
	}
	return talentDTO{
		ID:           string(t.SubjectID()),
		Name:         t.Name(),
		Headline:     t.Headline(),
		Bio:          t.Bio(),
		Skills:       skills,
		Completeness: t.Completeness(),
	}
}

func parseTalentDTO(dto talentDTO) domprof.Talent {
	skills := make([]domprof.Skill, len(dto.Skills))
	for i, s := range dto.Skills {
		skills[i] = domprof.Skill{Name: s.Name, Proficiency: s.Proficiency}
	}
	return domprof.ReconstructTalent(
		domain.SubjectID(dto.ID), dto.Name, dto.Headline, dto.Bio,
		skills, dto.Completeness,
	)
}

func buildStartupDTO(s domprof.Startup) startupDTO {
	return startupDTO{
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

func parseStartupDTO(dto startupDTO) domprof.Startup {
	return domprof.ReconstructStartup(
		domain.SubjectID(dto.ID), dto.Name, dto.Tagline, dto.Description, dto.Industry,
		domprof.Stage(dto.Stage), dto.RequiredSkills, dto.Completeness,
	)
}

func buildInvestorDTO(i domprof.Investor) investorDTO {
	return investorDTO{
		ID:               string(i.SubjectID()),
		Name:             i.Name(),
		Fund:             i.Fund(),
		Thesis:           i.Thesis(),
		PreferredSectors: i.PreferredSectors(),
		InvestmentStages: i.StageValues(),
	}
}

func parseInvestorDTO(dto investorDTO) domprof.Investor {
	stages := make([]domprof.Stage, len(dto.InvestmentStages))
	for n, st := range dto.InvestmentStages {
		stages[n] = domprof.Stage(st)
	}
	return domprof.ReconstructInvestor(
		domain.SubjectID(dto.ID), dto.Name, dto.Fund, dto.Thesis,
		dto.PreferredSectors, stages,
	)
}

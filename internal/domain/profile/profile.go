// Package profile holds the typed attribute sets used for lexical scoring.
// The three role variants carry explicit fields, validated at the
// persistence boundary rather than at scoring time.
package profile

import (
	"fmt"
	"strings"

	"github.com/talentbridge/matchd/internal/domain"
)

// Stage is a startup funding stage.
type Stage string

const (
	StagePreSeed Stage = "pre-seed"
	StageSeed    Stage = "seed"
	StageSeriesA Stage = "series-a"
	StageSeriesB Stage = "series-b"
	StageGrowth  Stage = "growth"
)

// IsValid checks if the stage is one of the supported values.
func (s Stage) IsValid() bool {
	switch s {
	case StagePreSeed, StageSeed, StageSeriesA, StageSeriesB, StageGrowth:
		return true
	}
	return false
}

// ParseStage validates a raw stage value.
func ParseStage(raw string) (Stage, error) {
	s := Stage(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: unknown stage %q", domain.ErrInvalidProfile, raw)
	}
	return s, nil
}

// Skill is one talent skill with a self-reported proficiency.
// Only the name participates in scoring.
type Skill struct {
	Name        string
	Proficiency string
}

const maxSkills = 64

// Talent is the candidate-side profile (immutable value object).
type Talent struct {
	subjectID    domain.SubjectID
	name         string
	headline     string
	bio          string
	skills       []Skill
	completeness float64
}

// NewTalent validates and creates a Talent profile.
func NewTalent(subjectID domain.SubjectID, name, headline, bio string, skills []Skill) (Talent, error) {
	if name == "" {
		return Talent{}, fmt.Errorf("%w: name is required", domain.ErrInvalidProfile)
	}
	if len(skills) > maxSkills {
		return Talent{}, fmt.Errorf("%w: too many skills (max %d)", domain.ErrInvalidProfile, maxSkills)
	}
	for _, s := range skills {
		if strings.TrimSpace(s.Name) == "" {
			return Talent{}, fmt.Errorf("%w: skill name is required", domain.ErrInvalidProfile)
		}
	}

	t := Talent{
		subjectID: subjectID,
		name:      name,
		headline:  headline,
		bio:       bio,
		skills:    append([]Skill(nil), skills...),
	}
	t.completeness = completeness(name, headline, bio, len(skills) > 0)
	return t, nil
}

// ReconstructTalent creates a Talent without validation (storage hydration).
func ReconstructTalent(
	subjectID domain.SubjectID, name, headline, bio string,
	skills []Skill, completeness float64,
) Talent {
	return Talent{
		subjectID: subjectID, name: name, headline: headline, bio: bio,
		skills: skills, completeness: completeness,
	}
}

func (t Talent) SubjectID() domain.SubjectID { return t.subjectID }
func (t Talent) Name() string { return t.name }
func (t Talent) Headline() string { return t.headline }
func (t Talent) Bio() string { return t.bio }
func (t Talent) Skills() []Skill { return t.skills }
func (t Talent) Completeness() float64 { return t.completeness }

// SkillNames returns the skill names in declaration order.
func (t Talent) SkillNames() []string {
	names := make([]string, len(t.skills))
	for i, s := range t.skills {
		names[i] = s.Name
	}
	return names
}

// EmbeddingText composes the free text that gets vectorized on save:
// name, headline, bio, and skill names joined by spaces.
func (t Talent) EmbeddingText() string {
	parts := []string{t.name, t.headline, t.bio}
	parts = append(parts, t.SkillNames()...)
	return joinNonEmpty(parts)
}

// Startup is the founder-side profile (immutable value object).
type Startup struct {
	subjectID      domain.SubjectID
	name           string
	tagline        string
	description    string
	industry       string
	stage          Stage
	requiredSkills []string
	completeness   float64
}

// NewStartup validates and creates a Startup profile.
// Stage and industry may be empty on an incomplete profile; an empty value
// contributes a zero lexical component instead of failing the match.
func NewStartup(
	subjectID domain.SubjectID, name, tagline, description, industry string,
	stage Stage, requiredSkills []string,
) (Startup, error) {
	if name == "" {
		return Startup{}, fmt.Errorf("%w: name is required", domain.ErrInvalidProfile)
	}
	if stage != "" && !stage.IsValid() {
		return Startup{}, fmt.Errorf("%w: unknown stage %q", domain.ErrInvalidProfile, stage)
	}
	if len(requiredSkills) > maxSkills {
		return Startup{}, fmt.Errorf("%w: too many required skills (max %d)", domain.ErrInvalidProfile, maxSkills)
	}

	s := Startup{
		subjectID:      subjectID,
		name:           name,
		tagline:        tagline,
		description:    description,
		industry:       industry,
		stage:          stage,
		requiredSkills: append([]string(nil), requiredSkills...),
	}
	s.completeness = completeness(name, tagline, description, industry != "" && stage != "" && len(requiredSkills) > 0)
	return s, nil
}

// ReconstructStartup creates a Startup without validation (storage hydration).
func ReconstructStartup(
	subjectID domain.SubjectID, name, tagline, description, industry string,
	stage Stage, requiredSkills []string, completeness float64,
) Startup {
	return Startup{
		subjectID: subjectID, name: name, tagline: tagline, description: description,
		industry: industry, stage: stage, requiredSkills: requiredSkills,
		completeness: completeness,
	}
}

func (s Startup) SubjectID() domain.SubjectID { return s.subjectID }
func (s Startup) Name() string { return s.name }
func (s Startup) Tagline() string { return s.tagline }
func (s Startup) Description() string { return s.description }
func (s Startup) Industry() string { return s.industry }
func (s Startup) Stage() Stage { return s.stage }
func (s Startup) RequiredSkills() []string { return s.requiredSkills }
func (s Startup) Completeness() float64 { return s.completeness }

// EmbeddingText composes the free text that gets vectorized on save.
func (s Startup) EmbeddingText() string {
	parts := []string{s.name, s.tagline, s.description, s.industry}
	parts = append(parts, s.requiredSkills...)
	return joinNonEmpty(parts)
}

// Investor is the fund-side profile (immutable value object).
type Investor struct {
	subjectID        domain.SubjectID
	name             string
	fund             string
	thesis           string
	preferredSectors []string
	investmentStages []Stage
}

// NewInvestor validates and creates an Investor profile.
func NewInvestor(
	subjectID domain.SubjectID, name, fund, thesis string,
	preferredSectors []string, investmentStages []Stage,
) (Investor, error) {
	if name == "" {
		return Investor{}, fmt.Errorf("%w: name is required", domain.ErrInvalidProfile)
	}
	for _, st := range investmentStages {
		if !st.IsValid() {
			return Investor{}, fmt.Errorf("%w: unknown stage %q", domain.ErrInvalidProfile, st)
		}
	}

	return Investor{
		subjectID:        subjectID,
		name:             name,
		fund:             fund,
		thesis:           thesis,
		preferredSectors: append([]string(nil), preferredSectors...),
		investmentStages: append([]Stage(nil), investmentStages...),
	}, nil
}

// ReconstructInvestor creates an Investor without validation (storage hydration).
func ReconstructInvestor(
	subjectID domain.SubjectID, name, fund, thesis string,
	preferredSectors []string, investmentStages []Stage,
) Investor {
	return Investor{
		subjectID: subjectID, name: name, fund: fund, thesis: thesis,
		preferredSectors: preferredSectors, investmentStages: investmentStages,
	}
}

func (i Investor) SubjectID() domain.SubjectID { return i.subjectID }
func (i Investor) Name() string { return i.name }
func (i Investor) Fund() string { return i.fund }
func (i Investor) Thesis() string { return i.thesis }
func (i Investor) PreferredSectors() []string { return i.preferredSectors }
func (i Investor) InvestmentStages() []Stage { return i.investmentStages }

// StageValues returns the investment stages as plain strings for lexical scoring.
func (i Investor) StageValues() []string {
	out := make([]string, len(i.investmentStages))
	for n, st := range i.investmentStages {
		out[n] = string(st)
	}
	return out
}

// EmbeddingText composes the thesis text that gets vectorized on save.
func (i Investor) EmbeddingText() string {
	parts := []string{i.name, i.fund, i.thesis}
	parts = append(parts, i.preferredSectors...)
	return joinNonEmpty(parts)
}

// completeness scores how filled-in a profile is, as a 0-100 percentage
// over four core field groups. Shown to users to nudge profile completion.
func completeness(name, short, long string, attrsFilled bool) float64 {
	filled := 0
	total := 4
	if name != "" {
		filled++
	}
	if short != "" {
		filled++
	}
	if long != "" {
		filled++
	}
	if attrsFilled {
		filled++
	}
	return float64(filled) / float64(total) * 100
}

func joinNonEmpty(parts []string) string {
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

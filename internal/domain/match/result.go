// Package match holds the transient pairwise match result. Results are
// computed fresh on every request and never persisted.
package match

import (
	"sort"

	"github.com/talentbridge/matchd/internal/domain"
)

// Breakdown component names. These are the de facto wire contract of the
// score_breakdown object and must not change.
const (
	ComponentSkills        = "skills"
	ComponentIndustryStage = "industry_stage"
	ComponentSemantic      = "semantic"
)

// Result is one scored pairing of the requesting subject with a candidate.
type Result struct {
	subjectID     domain.SubjectID
	percentage    float64
	breakdown     map[string]float64
	matchedSkills []string
	missingSkills []string
}

// New creates a Result. Percentage is expected on the 0-100 scale rounded
// to two decimals; breakdown components on the 0-1 scale rounded to two
// decimals.
func New(
	subjectID domain.SubjectID, percentage float64,
	breakdown map[string]float64, matchedSkills, missingSkills []string,
) Result {
	return Result{
		subjectID:     subjectID,
		percentage:    percentage,
		breakdown:     breakdown,
		matchedSkills: matchedSkills,
		missingSkills: missingSkills,
	}
}

func (r Result) SubjectID() domain.SubjectID { return r.subjectID }
func (r Result) Percentage() float64 { return r.percentage }
func (r Result) Breakdown() map[string]float64 { return r.breakdown }
func (r Result) MatchedSkills() []string { return r.matchedSkills }
func (r Result) MissingSkills() []string { return r.missingSkills }

// SortByPercentageDesc orders results by percentage, highest first.
// The sort is stable: ties keep the original candidate order, which is the
// candidate listing order of the persistence layer.
func SortByPercentageDesc(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].percentage > results[j].percentage
	})
}

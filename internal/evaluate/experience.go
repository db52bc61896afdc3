package evaluate

import (
	"context"
	"fmt"

	"github.com/sandesh/shortlist-agent/internal/types"
)

// ExperienceEvaluator scores years of experience against the requirement:
// min(candidate/required, 1) * 10, capped so surplus years are not rewarded.
type ExperienceEvaluator struct{}

// NewExperienceEvaluator returns the experience-years evaluator.
func NewExperienceEvaluator() *ExperienceEvaluator {
	return &ExperienceEvaluator{}
}

// Criterion implements Evaluator.
func (e *ExperienceEvaluator) Criterion() types.Criterion {
	return types.CriterionExperience
}

// Evaluate computes the experience score. A zero-year requirement scores 10:
// there is no experience floor to fall short of.
func (e *ExperienceEvaluator) Evaluate(_ context.Context, in Input) (Result, error) {
	required := in.Job.YearsRequired
	years := in.Resume.YearsExperience

	if required == 0 {
		return Result{
			Criterion: types.CriterionExperience,
			Score: types.EvaluationScore{
				Score:         10,
				Justification: fmt.Sprintf("The position has no minimum experience requirement; candidate has %.1f years.", years),
			},
			Years: years,
		}, nil
	}

	ratio := years / required
	if ratio > 1 {
		ratio = 1
	}

	var justification string
	switch {
	case years > required:
		justification = fmt.Sprintf("Candidate's %.1f years exceed the required %.1f years.", years, required)
	case years == required:
		justification = fmt.Sprintf("Candidate's %.1f years exactly meet the required %.1f years.", years, required)
	default:
		justification = fmt.Sprintf("Candidate's %.1f years fall short of the required %.1f years.", years, required)
	}

	return Result{
		Criterion: types.CriterionExperience,
		Score:     types.EvaluationScore{Score: ratio * 10, Justification: justification},
		Years:     years,
	}, nil
}

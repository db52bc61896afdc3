package evaluate

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandesh/shortlist-agent/internal/types"
)

// SkillsEvaluator scores the overlap between required and candidate skills:
// |required ∩ candidate| / |required| * 10 over normalized skill sets.
type SkillsEvaluator struct{}

// NewSkillsEvaluator returns the skills evaluator.
func NewSkillsEvaluator() *SkillsEvaluator {
	return &SkillsEvaluator{}
}

// Criterion implements Evaluator.
func (e *SkillsEvaluator) Criterion() types.Criterion {
	return types.CriterionSkills
}

// Evaluate computes the skill-overlap score. An empty required-skills set
// scores 0: there is no skill requirement to fail against, and a free 10
// would drown the other criteria.
func (e *SkillsEvaluator) Evaluate(_ context.Context, in Input) (Result, error) {
	required := types.NormalizeSkills(in.Job.RequiredSkills)
	if len(required) == 0 {
		return Result{
			Criterion: types.CriterionSkills,
			Score: types.EvaluationScore{
				Score:         0,
				Justification: "The job description lists no required skills to match against.",
			},
		}, nil
	}

	candidate := make(map[string]bool)
	for _, s := range in.Resume.Skills {
		candidate[types.NormalizeSkill(s)] = true
	}

	matched := make([]string, 0, len(required))
	for _, s := range required {
		if candidate[s] {
			matched = append(matched, s)
		}
	}

	score := float64(len(matched)) / float64(len(required)) * 10

	justification := fmt.Sprintf("Matched %d of %d required skills.", len(matched), len(required))
	if len(matched) > 0 {
		justification = fmt.Sprintf("Matched %d of %d required skills: %s.",
			len(matched), len(required), strings.Join(matched, ", "))
	}

	return Result{
		Criterion:     types.CriterionSkills,
		Score:         types.EvaluationScore{Score: score, Justification: justification},
		MatchedSkills: matched,
	}, nil
}

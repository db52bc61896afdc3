// Package evaluate holds the five independent criterion evaluators. Each is
// stateless given its inputs and safe to run concurrently with the others;
// the only ordering constraint is that all five finish before aggregation.
package evaluate

import (
	"context"

	"github.com/sandesh/shortlist-agent/internal/llm"
	"github.com/sandesh/shortlist-agent/internal/types"
)

// Input is everything an evaluator may consult for one candidate. All fields
// are immutable for the duration of a run.
type Input struct {
	Job        *types.JobRequirements
	JobText    string
	Resume     types.ResumeStructured
	SourceFile string
}

// Result is one criterion's verdict plus the criterion-specific facts the
// final breakdown reports.
type Result struct {
	Criterion types.Criterion
	Score     types.EvaluationScore

	// MatchedSkills is set by the skills evaluator.
	MatchedSkills []string
	// Years is set by the experience evaluator (candidate's raw years).
	Years float64
	// Category is set by the qualification evaluator.
	Category string
}

// Evaluator scores one criterion for one candidate.
type Evaluator interface {
	Criterion() types.Criterion
	Evaluate(ctx context.Context, in Input) (Result, error)
}

// DefaultEvaluators returns the five evaluators in canonical order.
func DefaultEvaluators(deps Deps) []Evaluator {
	return []Evaluator{
		NewSkillsEvaluator(),
		NewExperienceEvaluator(),
		NewWorkAlignmentEvaluator(deps.Extractor),
		NewProjectAlignmentEvaluator(deps.Extractor),
		NewQualificationEvaluator(deps.Extractor, deps.DegreeWeights, deps.DefaultDegreeWeight),
	}
}

// Deps carries the shared dependencies of the LLM-judged evaluators.
type Deps struct {
	Extractor           llm.Extractor
	DegreeWeights       map[string]float64
	DefaultDegreeWeight float64
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 10 {
		return 10
	}
	return s
}

package evaluate

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandesh/shortlist-agent/internal/llm"
	"github.com/sandesh/shortlist-agent/internal/prompts"
	"github.com/sandesh/shortlist-agent/internal/schemas"
	"github.com/sandesh/shortlist-agent/internal/types"
)

// judgement is the shared response shape of the LLM-judged evaluators.
type judgement struct {
	Score         float64 `json:"score"`
	Justification string  `json:"justification"`
}

// WorkAlignmentEvaluator asks the extraction capability to judge how well
// the candidate's work history matches the role. The rubric sub-weights
// (role relevance 40%, industry 20%, technical depth 25%, progression 15%)
// live in the prompt and guide the judgement; they are not stored.
type WorkAlignmentEvaluator struct {
	extractor llm.Extractor
}

// NewWorkAlignmentEvaluator builds the work-alignment evaluator.
func NewWorkAlignmentEvaluator(extractor llm.Extractor) *WorkAlignmentEvaluator {
	return &WorkAlignmentEvaluator{extractor: extractor}
}

// Criterion implements Evaluator.
func (e *WorkAlignmentEvaluator) Criterion() types.Criterion {
	return types.CriterionWorkAlignment
}

// Evaluate judges work-history alignment on a 0-10 scale.
func (e *WorkAlignmentEvaluator) Evaluate(ctx context.Context, in Input) (Result, error) {
	prompt := prompts.Format(
		prompts.MustGet("evaluation.json", "judge-work-alignment"),
		map[string]string{
			"JobText":     in.JobText,
			"WorkHistory": formatWorkHistory(in.Resume.WorkExperience),
		},
	)

	var j judgement
	err := e.extractor.Extract(ctx, llm.Request{
		Prompt: prompt,
		Schema: schemas.Judgement,
		Tier:   llm.TierStandard,
	}, &j)
	if err != nil {
		return Result{}, fmt.Errorf("judge work alignment for %s: %w", in.SourceFile, err)
	}

	return Result{
		Criterion: types.CriterionWorkAlignment,
		Score: types.EvaluationScore{
			Score:         clampScore(j.Score),
			Justification: j.Justification,
		},
	}, nil
}

func formatWorkHistory(entries []types.WorkExperienceEntry) string {
	if len(entries) == 0 {
		return "No work experience listed."
	}

	var sb strings.Builder
	for i, entry := range entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "- %s at %s (%s)\n", entry.Position, entry.Company, entry.DurationText)
		for _, r := range entry.Responsibilities {
			fmt.Fprintf(&sb, "  * %s\n", r)
		}
	}
	return sb.String()
}

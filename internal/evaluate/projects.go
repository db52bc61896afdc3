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

// noProjectsJustification is the fixed verdict for candidates without
// projects; no extraction call is made for them.
const noProjectsJustification = "No projects listed"

// ProjectAlignmentEvaluator asks the extraction capability to judge how
// relevant the candidate's projects are to the role.
type ProjectAlignmentEvaluator struct {
	extractor llm.Extractor
}

// NewProjectAlignmentEvaluator builds the project-alignment evaluator.
func NewProjectAlignmentEvaluator(extractor llm.Extractor) *ProjectAlignmentEvaluator {
	return &ProjectAlignmentEvaluator{extractor: extractor}
}

// Criterion implements Evaluator.
func (e *ProjectAlignmentEvaluator) Criterion() types.Criterion {
	return types.CriterionProjects
}

// Evaluate judges project relevance on a 0-10 scale. A candidate with zero
// projects scores a hard-coded 0.
func (e *ProjectAlignmentEvaluator) Evaluate(ctx context.Context, in Input) (Result, error) {
	if len(in.Resume.Projects) == 0 {
		return Result{
			Criterion: types.CriterionProjects,
			Score: types.EvaluationScore{
				Score:         0,
				Justification: noProjectsJustification,
			},
		}, nil
	}

	prompt := prompts.Format(
		prompts.MustGet("evaluation.json", "judge-project-alignment"),
		map[string]string{
			"JobText":  in.JobText,
			"Projects": formatProjects(in.Resume.Projects),
		},
	)

	var j judgement
	err := e.extractor.Extract(ctx, llm.Request{
		Prompt: prompt,
		Schema: schemas.Judgement,
		Tier:   llm.TierStandard,
	}, &j)
	if err != nil {
		return Result{}, fmt.Errorf("judge project alignment for %s: %w", in.SourceFile, err)
	}

	return Result{
		Criterion: types.CriterionProjects,
		Score: types.EvaluationScore{
			Score:         clampScore(j.Score),
			Justification: j.Justification,
		},
	}, nil
}

func formatProjects(projects []types.ProjectEntry) string {
	var sb strings.Builder
	for i, project := range projects {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "- %s: %s", project.Name, project.Description)
		if len(project.Technologies) > 0 {
			fmt.Fprintf(&sb, " [%s]", strings.Join(project.Technologies, ", "))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

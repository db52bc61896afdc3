package evaluate

import (
	"context"
	"fmt"

	"github.com/sandesh/shortlist-agent/internal/llm"
	"github.com/sandesh/shortlist-agent/internal/prompts"
	"github.com/sandesh/shortlist-agent/internal/schemas"
	"github.com/sandesh/shortlist-agent/internal/types"
)

// unknownDegree is classified like any other degree text; candidates with no
// education entries get it as their degree.
const unknownDegree = "Unknown"

// DefaultDegreeWeights is the fixed weight (out of 10) per degree category.
// Categories follow a curriculum rubric, not literal string matching:
// "Electronics & Communication Engineering" classifies as Computer
// Engineering, "BIM" as BIT.
func DefaultDegreeWeights() map[string]float64 {
	return map[string]float64{
		"Computer Engineering": 10,
		"CSIT":                 9,
		"BIT":                  8,
		"STEM":                 6,
		"Management":           3,
		"Others":               1,
	}
}

// DefaultDegreeFallbackWeight is used when the classifier returns a category
// outside the weight table.
const DefaultDegreeFallbackWeight = 5

// QualificationEvaluator normalizes the candidate's most relevant degree
// into a fixed category via LLM classification, then scores it with the
// category weight table.
type QualificationEvaluator struct {
	extractor     llm.Extractor
	weights       map[string]float64
	defaultWeight float64
}

// NewQualificationEvaluator builds the qualification evaluator. Nil weights
// select the defaults.
func NewQualificationEvaluator(extractor llm.Extractor, weights map[string]float64, defaultWeight float64) *QualificationEvaluator {
	if weights == nil {
		weights = DefaultDegreeWeights()
	}
	if defaultWeight <= 0 {
		defaultWeight = DefaultDegreeFallbackWeight
	}
	return &QualificationEvaluator{extractor: extractor, weights: weights, defaultWeight: defaultWeight}
}

// Criterion implements Evaluator.
func (e *QualificationEvaluator) Criterion() types.Criterion {
	return types.CriterionQualification
}

// Evaluate classifies the candidate's degree and maps it to a score.
func (e *QualificationEvaluator) Evaluate(ctx context.Context, in Input) (Result, error) {
	degree := unknownDegree
	if len(in.Resume.Education) > 0 {
		degree = mostRelevantDegree(in.Resume.Education)
	}

	prompt := prompts.Format(
		prompts.MustGet("evaluation.json", "classify-degree"),
		map[string]string{"Degree": degree},
	)

	var resp struct {
		Category string `json:"category"`
	}
	err := e.extractor.Extract(ctx, llm.Request{
		Prompt: prompt,
		Schema: schemas.DegreeCategory,
		Tier:   llm.TierLite,
	}, &resp)
	if err != nil {
		return Result{}, fmt.Errorf("classify degree for %s: %w", in.SourceFile, err)
	}

	weight, known := e.weights[resp.Category]
	if !known {
		weight = e.defaultWeight
	}

	justification := fmt.Sprintf("Degree %q classified as %s (weight %.0f/10).", degree, resp.Category, weight)
	if !known {
		justification = fmt.Sprintf("Degree %q classified as unrecognized category %q; default weight %.0f/10 applied.",
			degree, resp.Category, weight)
	}

	return Result{
		Criterion: types.CriterionQualification,
		Score:     types.EvaluationScore{Score: clampScore(weight), Justification: justification},
		Category:  resp.Category,
	}, nil
}

// mostRelevantDegree picks the degree to classify. Education entries keep
// resume order, which puts the primary qualification first on nearly every
// resume; the first non-empty degree wins.
func mostRelevantDegree(education []types.EducationEntry) string {
	for _, entry := range education {
		if entry.Degree != "" {
			return entry.Degree
		}
	}
	return unknownDegree
}

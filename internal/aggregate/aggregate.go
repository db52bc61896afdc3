// Package aggregate combines the five criterion scores for one candidate
// into a weighted 0-100 final score with a full breakdown.
package aggregate

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sandesh/shortlist-agent/internal/evaluate"
	"github.com/sandesh/shortlist-agent/internal/types"
)

// Weights holds the fixed per-criterion weights. They must sum to 1.0.
type Weights struct {
	Skills        float64 `json:"skills" mapstructure:"skills"`
	Experience    float64 `json:"experience_years" mapstructure:"experience_years"`
	WorkAlignment float64 `json:"work_alignment" mapstructure:"work_alignment"`
	Projects      float64 `json:"project_alignment" mapstructure:"project_alignment"`
	Qualification float64 `json:"qualification" mapstructure:"qualification"`
}

// DefaultWeights returns the standard weight table.
func DefaultWeights() Weights {
	return Weights{
		Skills:        0.20,
		Experience:    0.20,
		WorkAlignment: 0.30,
		Projects:      0.20,
		Qualification: 0.10,
	}
}

const weightSumTolerance = 1e-9

// Validate checks that the weights are non-negative and sum to 1.0.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"skills":            w.Skills,
		"experience_years":  w.Experience,
		"work_alignment":    w.WorkAlignment,
		"project_alignment": w.Projects,
		"qualification":     w.Qualification,
	} {
		if v < 0 {
			return fmt.Errorf("weight %s is negative: %f", name, v)
		}
	}

	sum := w.Skills + w.Experience + w.WorkAlignment + w.Projects + w.Qualification
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("criterion weights must sum to 1.0, got %f", sum)
	}
	return nil
}

// AggregationError marks a candidate that reached aggregation without
// exactly one score per criterion. A missing evaluation is a bug upstream,
// not a valid zero, so the candidate fails fast instead of being defaulted.
type AggregationError struct {
	SourceFile string
	Missing    []types.Criterion
	Duplicated []types.Criterion
}

func (e *AggregationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+joinCriteria(e.Missing))
	}
	if len(e.Duplicated) > 0 {
		parts = append(parts, "duplicated "+joinCriteria(e.Duplicated))
	}
	return fmt.Sprintf("cannot aggregate %s: %s", e.SourceFile, strings.Join(parts, ", "))
}

func joinCriteria(criteria []types.Criterion) string {
	names := make([]string, len(criteria))
	for i, c := range criteria {
		names[i] = string(c)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// Aggregator computes final candidate scores.
type Aggregator struct {
	weights Weights
}

// New builds an Aggregator. Invalid weights are a configuration bug and are
// rejected here, before any candidate is scored.
func New(weights Weights) (*Aggregator, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Aggregator{weights: weights}, nil
}

// Aggregate combines one candidate's five criterion results. Each sub-score
// is on 0-10; the weighted sum is scaled by 10 onto 0-100. The result is a
// pure function of the inputs and the weight table.
func (a *Aggregator) Aggregate(sourceFile string, results []evaluate.Result) (types.CandidateScore, error) {
	byCriterion := make(map[types.Criterion]evaluate.Result, len(results))
	var duplicated []types.Criterion
	for _, r := range results {
		if _, ok := byCriterion[r.Criterion]; ok {
			duplicated = append(duplicated, r.Criterion)
			continue
		}
		byCriterion[r.Criterion] = r
	}

	var missing []types.Criterion
	for _, c := range types.AllCriteria() {
		if _, ok := byCriterion[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 || len(duplicated) > 0 {
		return types.CandidateScore{}, &AggregationError{
			SourceFile: sourceFile,
			Missing:    missing,
			Duplicated: duplicated,
		}
	}

	skills := byCriterion[types.CriterionSkills]
	experience := byCriterion[types.CriterionExperience]
	work := byCriterion[types.CriterionWorkAlignment]
	projects := byCriterion[types.CriterionProjects]
	qualification := byCriterion[types.CriterionQualification]

	weighted := skills.Score.Score*a.weights.Skills +
		experience.Score.Score*a.weights.Experience +
		work.Score.Score*a.weights.WorkAlignment +
		projects.Score.Score*a.weights.Projects +
		qualification.Score.Score*a.weights.Qualification

	return types.CandidateScore{
		SourceFile: sourceFile,
		FinalScore: weighted * 10,
		Breakdown: types.CandidateBreakdown{
			Skills:          skills.Score,
			Experience:      experience.Score,
			WorkAlignment:   work.Score,
			Projects:        projects.Score,
			Qualification:   qualification.Score,
			MatchedSkills:   skills.MatchedSkills,
			YearsExperience: experience.Years,
			DegreeCategory:  qualification.Category,
		},
	}, nil
}

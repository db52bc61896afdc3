package types

import "time"

// Criterion identifies one of the five evaluation criteria.
type Criterion string

// The five criteria every candidate is evaluated against.
const (
	CriterionSkills        Criterion = "skills"
	CriterionExperience    Criterion = "experience_years"
	CriterionWorkAlignment Criterion = "work_alignment"
	CriterionProjects      Criterion = "project_alignment"
	CriterionQualification Criterion = "qualification"
)

// AllCriteria returns the five criteria in their canonical order.
func AllCriteria() []Criterion {
	return []Criterion{
		CriterionSkills,
		CriterionExperience,
		CriterionWorkAlignment,
		CriterionProjects,
		CriterionQualification,
	}
}

// EvaluationScore is one criterion's verdict for one candidate.
type EvaluationScore struct {
	// Score is on a 0-10 scale.
	Score float64 `json:"score"`
	// Justification is a non-empty human-readable explanation.
	Justification string `json:"justification"`
}

// CandidateBreakdown maps each criterion to its score, plus the
// criterion-specific auxiliary facts used to compute them.
type CandidateBreakdown struct {
	Skills        EvaluationScore `json:"skills"`
	Experience    EvaluationScore `json:"experience_years"`
	WorkAlignment EvaluationScore `json:"work_alignment"`
	Projects      EvaluationScore `json:"project_alignment"`
	Qualification EvaluationScore `json:"qualification"`

	MatchedSkills   []string `json:"matched_skills"`
	YearsExperience float64  `json:"years_experience"`
	DegreeCategory  string   `json:"degree_category"`
}

// ByCriterion returns the score for a criterion. The second return is false
// for an unknown criterion name.
func (b *CandidateBreakdown) ByCriterion(c Criterion) (EvaluationScore, bool) {
	switch c {
	case CriterionSkills:
		return b.Skills, true
	case CriterionExperience:
		return b.Experience, true
	case CriterionWorkAlignment:
		return b.WorkAlignment, true
	case CriterionProjects:
		return b.Projects, true
	case CriterionQualification:
		return b.Qualification, true
	}
	return EvaluationScore{}, false
}

// CandidateScore is the final weighted verdict for one candidate.
type CandidateScore struct {
	// SourceFile joins this score back to the originating resume.
	SourceFile string `json:"source_file"`
	// FinalScore is on a 0-100 scale and is a pure function of the
	// breakdown and the fixed criterion weights.
	FinalScore float64            `json:"final_score"`
	Breakdown  CandidateBreakdown `json:"breakdown"`
}

// ShortlistReport is the terminal artifact of one workflow run.
// Shortlisted and Rejected partition all scored candidates exactly;
// candidates at the threshold boundary are shortlisted.
type ShortlistReport struct {
	RunID           string           `json:"run_id"`
	GeneratedAt     time.Time        `json:"generated_at"`
	TotalCandidates int              `json:"total_candidates"`
	Threshold       float64          `json:"threshold"`
	Shortlisted     []CandidateScore `json:"shortlisted"`
	Rejected        []CandidateScore `json:"rejected"`
}

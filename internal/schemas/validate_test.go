package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_JobRequirements(t *testing.T) {
	doc := []byte(`{
		"required_skills": ["python", "aws"],
		"min_degree": "BSc Computer Science",
		"years_required": 3,
		"responsibilities": ["build services"]
	}`)
	assert.NoError(t, Validate(JobRequirements, doc))
}

func TestValidate_JobRequirements_NegativeYears(t *testing.T) {
	doc := []byte(`{"required_skills": [], "years_required": -1, "responsibilities": []}`)
	err := Validate(JobRequirements, doc)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, JobRequirements, verr.Schema)
	assert.NotEmpty(t, verr.Errors)
}

func TestValidate_Judgement_ScoreOutOfRange(t *testing.T) {
	err := Validate(Judgement, []byte(`{"score": 11, "justification": "too good"}`))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Errors)
}

func TestValidate_Judgement_MissingJustification(t *testing.T) {
	err := Validate(Judgement, []byte(`{"score": 5}`))
	assert.Error(t, err)
}

func TestValidate_Resume(t *testing.T) {
	doc := []byte(`{
		"skills": ["go"],
		"work_experience": [{"company": "Acme", "position": "Engineer", "duration_text": "2020-2023", "responsibilities": []}],
		"education": [{"degree": "BE Computer", "institution": "TU", "year": 2019}],
		"years_experience": 3.5,
		"projects": []
	}`)
	assert.NoError(t, Validate(Resume, doc))
}

func TestValidate_DegreeCategory(t *testing.T) {
	assert.NoError(t, Validate(DegreeCategory, []byte(`{"category": "CSIT"}`)))
	assert.Error(t, Validate(DegreeCategory, []byte(`{"category": ""}`)))
	assert.Error(t, Validate(DegreeCategory, []byte(`{}`)))
}

func TestValidate_MalformedDocument(t *testing.T) {
	err := Validate(Judgement, []byte(`{ not json }`))
	assert.Error(t, err)
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("nonexistent", []byte(`{}`))
	assert.Error(t, err)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Schema: Judgement,
		Errors: []FieldError{
			{Field: "score", Message: "must be <= 10"},
			{Field: "justification", Message: "is required"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "judgement")
	assert.Contains(t, msg, "score")
	assert.Contains(t, msg, "justification")
}

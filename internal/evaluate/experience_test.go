package evaluate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandesh/shortlist-agent/internal/types"
)

func TestExperienceEvaluator_ShortOfRequirement(t *testing.T) {
	e := NewExperienceEvaluator()
	in := Input{
		Job:    &types.JobRequirements{YearsRequired: 3},
		Resume: types.ResumeStructured{YearsExperience: 1},
	}

	res, err := e.Evaluate(context.Background(), in)

	require.NoError(t, err)
	assert.InDelta(t, 3.333, res.Score.Score, 0.001)
	assert.Equal(t, 1.0, res.Years)
	assert.Contains(t, res.Score.Justification, "fall short")
}

func TestExperienceEvaluator_SurplusIsCapped(t *testing.T) {
	e := NewExperienceEvaluator()
	in := Input{
		Job:    &types.JobRequirements{YearsRequired: 3},
		Resume: types.ResumeStructured{YearsExperience: 8},
	}

	res, err := e.Evaluate(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, 10.0, res.Score.Score)
	assert.Contains(t, res.Score.Justification, "exceed")
}

func TestExperienceEvaluator_NoRequirement(t *testing.T) {
	e := NewExperienceEvaluator()
	in := Input{
		Job:    &types.JobRequirements{YearsRequired: 0},
		Resume: types.ResumeStructured{YearsExperience: 2},
	}

	res, err := e.Evaluate(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, 10.0, res.Score.Score)
}

func TestExperienceEvaluator_ExactMatch(t *testing.T) {
	e := NewExperienceEvaluator()
	in := Input{
		Job:    &types.JobRequirements{YearsRequired: 5},
		Resume: types.ResumeStructured{YearsExperience: 5},
	}

	res, err := e.Evaluate(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, 10.0, res.Score.Score)
	assert.Contains(t, res.Score.Justification, "exactly meet")
}

package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiningstar/learninglens/internal/app/models"
	"github.com/shiningstar/learninglens/internal/pkg/apperrors"
)

func TestValidateResponses(t *testing.T) {
	svc := &assessmentServiceImpl{}

	tests := []struct {
		name      string
		role      models.RespondentRole
		responses map[string]int
		age       int
		wantErr   bool
	}{
		{"known student questions", models.RespondentStudent, map[string]int{"ls_1": 0, "mid_2": 1}, 12, false},
		{"teacher uses student question set", models.RespondentTeacher, map[string]int{"ls_1": 2}, 12, false},
		{"parent question set", models.RespondentParent, map[string]int{"parent_1": 1}, 12, false},
		{"unknown question id", models.RespondentStudent, map[string]int{"bogus_1": 0}, 12, true},
		{"question from wrong age band", models.RespondentStudent, map[string]int{"high_1": 0}, 7, true},
		{"parent answering student question", models.RespondentParent, map[string]int{"ls_1": 0}, 12, true},
		{"negative option", models.RespondentStudent, map[string]int{"ls_1": -1}, 12, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.validateResponses(tt.role, tt.responses, tt.age)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResponsesForAndSetResponses(t *testing.T) {
	svc := &assessmentServiceImpl{}
	assessment := &models.Assessment{}
	answers := map[string]int{"ls_1": 1}

	for _, role := range []models.RespondentRole{
		models.RespondentStudent,
		models.RespondentParent,
		models.RespondentTeacher,
	} {
		assert.Empty(t, svc.responsesFor(assessment, role))
		svc.setResponses(assessment, role, answers)
		assert.Equal(t, answers, svc.responsesFor(assessment, role))
	}

	assert.True(t, assessment.HasAllResponses())
}

func TestHasAllResponses_PartialSubmission(t *testing.T) {
	assessment := &models.Assessment{
		StudentResponses: map[string]int{"ls_1": 0},
		ParentResponses:  map[string]int{"parent_1": 1},
	}

	assert.False(t, assessment.HasAllResponses())
}

func TestBuildProfile_Deterministic(t *testing.T) {
	responses := map[string]int{"ls_1": 0, "ls_2": 0, "in_1": 2, "mid_1": 1}

	first := buildProfile(responses, 12)
	second := buildProfile(responses, 12)

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first.Result.LearningStyles.Primary)
	assert.NotEmpty(t, first.Pathway.PrimaryCategory)
	assert.Len(t, first.Courses, courseRecommendationCount)
}

func TestMarshalAnalysis(t *testing.T) {
	profile := buildProfile(map[string]int{"ls_1": 0, "in_1": 2}, 12)

	result, err := marshalAnalysis(profile)
	require.NoError(t, err)

	assert.True(t, json.Valid(result.LearningStyles))
	assert.True(t, json.Valid(result.Traits))
	assert.True(t, json.Valid(result.Interests))
	assert.True(t, json.Valid(result.CourseRecommendations))
	assert.True(t, json.Valid(result.MathPathway))
	assert.True(t, json.Valid(result.ExamRecommendations))
}

func TestAnalysisCacheKey(t *testing.T) {
	assert.Equal(t, "analysis:42", analysisCacheKey(42))
}

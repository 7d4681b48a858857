package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionsForAge_Elementary(t *testing.T) {
	questions := QuestionsForAge(8)

	require.Len(t, questions, 15)
	assert.Equal(t, "ls_1", questions[0].ID)
	assert.Equal(t, "elem_1", questions[10].ID)
	assert.Equal(t, "elem_5", questions[14].ID)
}

func TestQuestionsForAge_MiddleSchool(t *testing.T) {
	questions := QuestionsForAge(12)

	require.Len(t, questions, 16)
	assert.Equal(t, "mid_1", questions[10].ID)
	assert.Equal(t, "mid_6", questions[15].ID)
}

func TestQuestionsForAge_HighSchool(t *testing.T) {
	questions := QuestionsForAge(16)

	require.Len(t, questions, 18)
	assert.Equal(t, "high_1", questions[10].ID)
	assert.Equal(t, "high_8", questions[17].ID)
}

func TestQuestionsForAge_OutsideBands(t *testing.T) {
	// Ages outside every band get the common set only.
	assert.Len(t, QuestionsForAge(4), 10)
	assert.Len(t, QuestionsForAge(19), 10)
}

func TestQuestionsForAge_BandBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		age     int
		bandQID string
	}{
		{"elementary lower bound", 5, "elem_1"},
		{"elementary upper bound", 10, "elem_1"},
		{"middle lower bound", 11, "mid_1"},
		{"middle upper bound", 13, "mid_1"},
		{"high lower bound", 14, "high_1"},
		{"high upper bound", 18, "high_1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions := QuestionsForAge(tt.age)
			require.Greater(t, len(questions), 10)
			assert.Equal(t, tt.bandQID, questions[10].ID)
		})
	}
}

func TestParentQuestions(t *testing.T) {
	questions := ParentQuestions()

	require.Len(t, questions, 5)
	assert.Equal(t, "parent_1", questions[0].ID)
	assert.Equal(t, "parent_5", questions[4].ID)

	// Returned slice is a copy; mutating it must not affect the bank.
	questions[0].ID = "mutated"
	assert.Equal(t, "parent_1", ParentQuestions()[0].ID)
}

func TestLogicPuzzlesCarryCorrectAnswer(t *testing.T) {
	tests := []struct {
		id     string
		age    int
		answer string
	}{
		{"elem_2", 8, "Triangle"},
		{"mid_2", 12, "57"},
		{"high_2", 16, "GFWECVKQP"},
	}

	for _, tt := range tests {
		q, ok := FindQuestion(tt.id, tt.age)
		require.True(t, ok, "question %s not found", tt.id)
		assert.Equal(t, TypeLogicPuzzle, q.Type)
		assert.Equal(t, tt.answer, q.CorrectAnswer)
	}
}

func TestFindQuestion_NotInBand(t *testing.T) {
	_, ok := FindQuestion("elem_2", 16)
	assert.False(t, ok)
}

func TestFindParentQuestion(t *testing.T) {
	q, ok := FindParentQuestion("parent_3")
	require.True(t, ok)
	assert.Equal(t, "problem_solving", q.Category)
	assert.Len(t, q.TraitMapping, 4)

	_, ok = FindParentQuestion("ls_1")
	assert.False(t, ok)
}

func TestMappingsMatchOptionCounts(t *testing.T) {
	all := QuestionsForAge(8)
	all = append(all, QuestionsForAge(12)...)
	all = append(all, QuestionsForAge(16)...)
	all = append(all, ParentQuestions()...)

	for _, q := range all {
		if len(q.LearningStyleMapping) > 0 {
			assert.Len(t, q.Options, len(q.LearningStyleMapping), "question %s", q.ID)
		}
		if len(q.InterestMapping) > 0 {
			assert.Len(t, q.Options, len(q.InterestMapping), "question %s", q.ID)
		}
	}
}

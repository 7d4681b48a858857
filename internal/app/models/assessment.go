package models

import (
	"encoding/json"
	"time"
)

// Assessment defines the assessment model based on the 'assessments' table.
// Questionnaire responses and engine output are stored as jsonb columns.
type Assessment struct {
	ID        int64            `json:"id" db:"id"`
	StudentID int64            `json:"studentId" db:"student_id"`
	Date      time.Time        `json:"date" db:"date"`
	Status    AssessmentStatus `json:"status" db:"status"`

	// Responses keyed by question id, value is the selected option index
	StudentResponses map[string]int `json:"studentResponses,omitempty" db:"student_responses"`
	ParentResponses  map[string]int `json:"parentResponses,omitempty" db:"parent_responses"`
	TeacherResponses map[string]int `json:"teacherResponses,omitempty" db:"teacher_responses"`

	// Analysis engine output, populated once status reaches analyzed
	LearningStyles        json.RawMessage `json:"learningStyles,omitempty" db:"learning_styles"`
	Traits                json.RawMessage `json:"traits,omitempty" db:"traits"`
	Interests             json.RawMessage `json:"interests,omitempty" db:"interests"`
	CourseRecommendations json.RawMessage `json:"courseRecommendations,omitempty" db:"course_recommendations"`
	MathPathway           json.RawMessage `json:"mathPathway,omitempty" db:"math_pathway"`
	ExamRecommendations   json.RawMessage `json:"examRecommendations,omitempty" db:"exam_recommendations"`
}

// HasAllResponses reports whether all three respondent roles have submitted
func (a *Assessment) HasAllResponses() bool {
	return len(a.StudentResponses) > 0 && len(a.ParentResponses) > 0 && len(a.TeacherResponses) > 0
}

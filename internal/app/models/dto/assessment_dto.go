package dto

import (
	"github.com/shiningstar/learninglens/internal/app/models"
	"github.com/shiningstar/learninglens/internal/diagnostic/questionnaire"
)

// QuestionnaireResponse carries the age-banded question set for one assessment
type QuestionnaireResponse struct {
	AssessmentID    int64                    `json:"assessmentId"`
	StudentID       int64                    `json:"studentId"`
	StudentName     string                   `json:"studentName"`
	Age             int                      `json:"age"`
	Status          models.AssessmentStatus  `json:"status"`
	Questions       []questionnaire.Question `json:"questions"`
	ParentQuestions []questionnaire.Question `json:"parentQuestions"`
}

// SubmitQuestionnaireRequest stores one respondent role's answers.
// Responses map question ids to the selected option index.
type SubmitQuestionnaireRequest struct {
	AssessmentID int64          `json:"assessmentId" binding:"required,gt=0"`
	Role         string         `json:"role" binding:"required,oneof=student parent teacher"`
	Responses    map[string]int `json:"responses" binding:"required"`
}

// AnalyzeAssessmentRequest triggers the analysis engine for an assessment
type AnalyzeAssessmentRequest struct {
	AssessmentID int64 `json:"assessmentId" binding:"required,gt=0"`
}

// GenerateReportsRequest triggers report generation for an analyzed assessment
type GenerateReportsRequest struct {
	AssessmentID int64 `json:"assessmentId" binding:"required,gt=0"`
}

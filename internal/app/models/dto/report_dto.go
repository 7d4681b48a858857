package dto

import (
	"encoding/json"
	"time"

	"github.com/shiningstar/learninglens/internal/app/models"
)

// ReportResponse represents one generated report
type ReportResponse struct {
	ID           int64           `json:"id"`
	AssessmentID int64           `json:"assessmentId"`
	Type         string          `json:"type"`
	Code         string          `json:"code"`
	GeneratedAt  time.Time       `json:"generatedAt"`
	Content      json.RawMessage `json:"content"`
	Delivered    bool            `json:"delivered"`
}

// NewReportResponse converts a report model to its response DTO
func NewReportResponse(report *models.Report) *ReportResponse {
	return &ReportResponse{
		ID:           report.ID,
		AssessmentID: report.AssessmentID,
		Type:         string(report.Type),
		Code:         report.Code,
		GeneratedAt:  report.GeneratedAt,
		Content:      report.Content,
		Delivered:    report.Delivered,
	}
}

// GeneratedReportsResponse lists the reports produced for one assessment
type GeneratedReportsResponse struct {
	AssessmentID int64            `json:"assessmentId"`
	Reports      []ReportResponse `json:"reports"`
}

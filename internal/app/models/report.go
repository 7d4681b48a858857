package models

import (
	"encoding/json"
	"time"
)

// Report defines a generated diagnostic report based on the 'reports' table
type Report struct {
	ID           int64           `json:"id" db:"id"`
	AssessmentID int64           `json:"assessmentId" db:"assessment_id"`
	Type         ReportType      `json:"type" db:"type"`
	Code         string          `json:"code" db:"code" example:"SSR-20260829-1a2b3c4d"` // Reference code
	GeneratedAt  time.Time       `json:"generatedAt" db:"generated_at"`
	Content      json.RawMessage `json:"content" db:"content"`
	Delivered    bool            `json:"delivered" db:"delivered"`
}

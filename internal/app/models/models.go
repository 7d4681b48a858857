package models

// RoleType defines the user role type
type RoleType string

const (
	RoleUser    RoleType = "USER"
	RoleTeacher RoleType = "TEACHER"
	RoleAdmin   RoleType = "ADMIN"
)

// AssessmentStatus defines the lifecycle state of an assessment
type AssessmentStatus string

const (
	AssessmentPending    AssessmentStatus = "pending"
	AssessmentInProgress AssessmentStatus = "in_progress"
	AssessmentCompleted  AssessmentStatus = "completed"
	AssessmentAnalyzed   AssessmentStatus = "analyzed"
)

// RespondentRole identifies who answered a questionnaire
type RespondentRole string

const (
	RespondentStudent RespondentRole = "student"
	RespondentParent  RespondentRole = "parent"
	RespondentTeacher RespondentRole = "teacher"
)

// ReportType identifies the audience of a generated report
type ReportType string

const (
	ReportStudent ReportType = "student"
	ReportParent  ReportType = "parent"
	ReportTeacher ReportType = "teacher"
)

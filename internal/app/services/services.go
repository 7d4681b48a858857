package services

// Services defined in this package:
// - AuthService: Authenticates users and rotates refresh tokens
// - UserService: Manages user accounts
// - StudentService: Manages student profiles and access grants
// - AssessmentService: Drives the assessment lifecycle and the diagnostic engine
// - ReportService: Generates and stores audience-specific reports
// - ActivityLogService: Records and lists the audit trail

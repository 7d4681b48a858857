package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository          *UserRepository
	StudentRepository       *StudentRepository
	StudentAccessRepository *StudentAccessRepository
	AssessmentRepository    *AssessmentRepository
	ReportRepository        *ReportRepository
	ActivityLogRepository   *ActivityLogRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(db),
		StudentRepository:       NewStudentRepository(db),
		StudentAccessRepository: NewStudentAccessRepository(db),
		AssessmentRepository:    NewAssessmentRepository(db),
		ReportRepository:        NewReportRepository(db),
		ActivityLogRepository:   NewActivityLogRepository(db),
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation error.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // 23505 is unique_violation
}

// duplicateConstraint returns the violated constraint name for unique violations.
func duplicateConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName
	}
	return ""
}

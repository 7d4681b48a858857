package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shiningstar/learninglens/internal/app/models"
	"github.com/shiningstar/learninglens/internal/pkg/apperrors"
	"github.com/shiningstar/learninglens/internal/pkg/logger"
)

// AssessmentRepository handles assessment database operations
type AssessmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAssessmentRepository creates a new AssessmentRepository
func NewAssessmentRepository(db *pgxpool.Pool) *AssessmentRepository {
	return &AssessmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var assessmentColumns = []string{
	"id", "student_id", "date", "status",
	"student_responses", "parent_responses", "teacher_responses",
	"learning_styles", "traits", "interests",
	"course_recommendations", "math_pathway", "exam_recommendations",
}

// Create creates a new pending assessment for a student
func (r *AssessmentRepository) Create(ctx context.Context, assessment *models.Assessment) error {
	sql, args, err := r.sb.Insert("assessments").
		Columns("student_id", "date", "status").
		Values(assessment.StudentID, time.Now(), models.AssessmentPending).
		Suffix("RETURNING id, date, status").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create assessment SQL")
		return fmt.Errorf("failed to build create assessment query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&assessment.ID, &assessment.Date, &assessment.Status)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create assessment query")
		return fmt.Errorf("error creating assessment: %w", err)
	}

	return nil
}

// GetByID retrieves an assessment by ID
func (r *AssessmentRepository) GetByID(ctx context.Context, id int64) (*models.Assessment, error) {
	sql, args, err := r.sb.Select(assessmentColumns...).
		From("assessments").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get assessment SQL")
		return nil, fmt.Errorf("failed to build get assessment query: %w", err)
	}

	assessment := &models.Assessment{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&assessment.ID, &assessment.StudentID, &assessment.Date, &assessment.Status,
		&assessment.StudentResponses, &assessment.ParentResponses, &assessment.TeacherResponses,
		&assessment.LearningStyles, &assessment.Traits, &assessment.Interests,
		&assessment.CourseRecommendations, &assessment.MathPathway, &assessment.ExamRecommendations,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAssessmentNotFound
		}
		logger.Error().Err(err).Int64("assessmentID", id).Msg("Error scanning assessment row")
		return nil, fmt.Errorf("error getting assessment by ID: %w", err)
	}

	return assessment, nil
}

// GetAll retrieves assessments, optionally filtered by student, newest first
func (r *AssessmentRepository) GetAll(ctx context.Context, studentID int64) ([]*models.Assessment, error) {
	builder := r.sb.Select(assessmentColumns...).
		From("assessments").
		OrderBy("date DESC")
	if studentID > 0 {
		builder = builder.Where(squirrel.Eq{"student_id": studentID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list assessments SQL")
		return nil, fmt.Errorf("failed to build list assessments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list assessments query")
		return nil, fmt.Errorf("error querying assessments: %w", err)
	}
	defer rows.Close()

	assessments := []*models.Assessment{}
	for rows.Next() {
		assessment := &models.Assessment{}
		if err := rows.Scan(
			&assessment.ID, &assessment.StudentID, &assessment.Date, &assessment.Status,
			&assessment.StudentResponses, &assessment.ParentResponses, &assessment.TeacherResponses,
			&assessment.LearningStyles, &assessment.Traits, &assessment.Interests,
			&assessment.CourseRecommendations, &assessment.MathPathway, &assessment.ExamRecommendations,
		); err != nil {
			return nil, fmt.Errorf("error scanning assessment row: %w", err)
		}
		assessments = append(assessments, assessment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assessment rows: %w", err)
	}

	return assessments, nil
}

// UpdateStatus moves an assessment to a new lifecycle state
func (r *AssessmentRepository) UpdateStatus(ctx context.Context, id int64, status models.AssessmentStatus) error {
	sql, args, err := r.sb.Update("assessments").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build update status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("assessmentID", id).Msg("Error updating assessment status")
		return fmt.Errorf("error updating assessment status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssessmentNotFound
	}

	return nil
}

// SaveResponses stores one respondent role's answers and the resulting status
func (r *AssessmentRepository) SaveResponses(ctx context.Context, id int64, role models.RespondentRole, responses map[string]int, status models.AssessmentStatus) error {
	var column string
	switch role {
	case models.RespondentStudent:
		column = "student_responses"
	case models.RespondentParent:
		column = "parent_responses"
	case models.RespondentTeacher:
		column = "teacher_responses"
	default:
		return apperrors.ErrInvalidRespondentRole
	}

	sql, args, err := r.sb.Update("assessments").
		Set(column, responses).
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build save responses query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("assessmentID", id).Str("role", string(role)).Msg("Error saving responses")
		return fmt.Errorf("error saving responses: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssessmentNotFound
	}

	return nil
}

// AnalysisResult bundles the jsonb payloads the analysis engine produced
type AnalysisResult struct {
	LearningStyles        json.RawMessage
	Traits                json.RawMessage
	Interests             json.RawMessage
	CourseRecommendations json.RawMessage
	MathPathway           json.RawMessage
	ExamRecommendations   json.RawMessage
}

// SaveAnalysis persists the engine output and marks the assessment analyzed.
// Re-running an analysis overwrites the previous result.
func (r *AssessmentRepository) SaveAnalysis(ctx context.Context, id int64, result AnalysisResult) error {
	sql, args, err := r.sb.Update("assessments").
		SetMap(map[string]interface{}{
			"learning_styles":        result.LearningStyles,
			"traits":                 result.Traits,
			"interests":              result.Interests,
			"course_recommendations": result.CourseRecommendations,
			"math_pathway":           result.MathPathway,
			"exam_recommendations":   result.ExamRecommendations,
			"status":                 models.AssessmentAnalyzed,
		}).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build save analysis query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("assessmentID", id).Msg("Error saving analysis result")
		return fmt.Errorf("error saving analysis result: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssessmentNotFound
	}

	return nil
}

// Delete deletes an assessment by ID
func (r *AssessmentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("assessments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build delete assessment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("assessmentID", id).Msg("Error executing delete assessment query")
		return fmt.Errorf("error deleting assessment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssessmentNotFound
	}

	return nil
}

package repositories

import (
	"context"
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

// ReportRepository handles report database operations
type ReportRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ReplaceForAssessment swaps the stored report set for an assessment in a
// single transaction. Regeneration either writes the whole new set or
// leaves the previous one untouched.
func (r *ReportRepository) ReplaceForAssessment(ctx context.Context, assessmentID int64, reports []*models.Report) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting report transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	sql, args, err := r.sb.Delete("reports").
		Where(squirrel.Eq{"assessment_id": assessmentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete reports query: %w", err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("assessmentID", assessmentID).Msg("Error deleting previous reports")
		return fmt.Errorf("error deleting reports: %w", err)
	}

	for _, report := range reports {
		sql, args, err := r.sb.Insert("reports").
			Columns("assessment_id", "type", "code", "generated_at", "content", "delivered").
			Values(report.AssessmentID, report.Type, report.Code, time.Now(), report.Content, report.Delivered).
			Suffix("RETURNING id, generated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create report query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&report.ID, &report.GeneratedAt); err != nil {
			if isDuplicateKeyError(err) {
				return apperrors.NewConflictError("report code already exists")
			}
			logger.Error().Err(err).Msg("Error executing create report query")
			return fmt.Errorf("error creating report: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// GetByID retrieves a report by ID
func (r *ReportRepository) GetByID(ctx context.Context, id int64) (*models.Report, error) {
	sql, args, err := r.sb.Select("id", "assessment_id", "type", "code", "generated_at", "content", "delivered").
		From("reports").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get report query: %w", err)
	}

	report := &models.Report{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&report.ID, &report.AssessmentID, &report.Type, &report.Code,
		&report.GeneratedAt, &report.Content, &report.Delivered,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReportNotFound
		}
		logger.Error().Err(err).Int64("reportID", id).Msg("Error scanning report row")
		return nil, fmt.Errorf("error getting report by ID: %w", err)
	}

	return report, nil
}

// GetByAssessmentID lists the reports generated for an assessment
func (r *ReportRepository) GetByAssessmentID(ctx context.Context, assessmentID int64) ([]*models.Report, error) {
	sql, args, err := r.sb.Select("id", "assessment_id", "type", "code", "generated_at", "content", "delivered").
		From("reports").
		Where(squirrel.Eq{"assessment_id": assessmentID}).
		OrderBy("type ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build list reports query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("assessmentID", assessmentID).Msg("Error executing list reports query")
		return nil, fmt.Errorf("error querying reports: %w", err)
	}
	defer rows.Close()

	reports := []*models.Report{}
	for rows.Next() {
		report := &models.Report{}
		if err := rows.Scan(&report.ID, &report.AssessmentID, &report.Type, &report.Code,
			&report.GeneratedAt, &report.Content, &report.Delivered); err != nil {
			return nil, fmt.Errorf("error scanning report row: %w", err)
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report rows: %w", err)
	}

	return reports, nil
}

// MarkDelivered flags a report as delivered to its audience
func (r *ReportRepository) MarkDelivered(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Update("reports").
		Set("delivered", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build mark delivered query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("reportID", id).Msg("Error marking report delivered")
		return fmt.Errorf("error marking report delivered: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrReportNotFound
	}

	return nil
}

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

// StudentAccessRepository handles student access grant database operations
type StudentAccessRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentAccessRepository creates a new StudentAccessRepository
func NewStudentAccessRepository(db *pgxpool.Pool) *StudentAccessRepository {
	return &StudentAccessRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Grant gives a user read access to a student
func (r *StudentAccessRepository) Grant(ctx context.Context, access *models.StudentAccess) error {
	sql, args, err := r.sb.Insert("student_access").
		Columns("user_id", "student_id", "granted_at").
		Values(access.UserID, access.StudentID, time.Now()).
		Suffix("RETURNING id, granted_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build grant access query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&access.ID, &access.GrantedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.NewConflictError("access already granted")
		}
		logger.Error().Err(err).Msg("Error executing grant access query")
		return fmt.Errorf("error granting access: %w", err)
	}

	return nil
}

// Revoke removes a user's access to a student
func (r *StudentAccessRepository) Revoke(ctx context.Context, userID, studentID int64) error {
	sql, args, err := r.sb.Delete("student_access").
		Where(squirrel.Eq{"user_id": userID, "student_id": studentID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build revoke access query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing revoke access query")
		return fmt.Errorf("error revoking access: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// HasAccess reports whether a user has been granted access to a student
func (r *StudentAccessRepository) HasAccess(ctx context.Context, userID, studentID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("student_access").
		Where(squirrel.Eq{"user_id": userID, "student_id": studentID}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("failed to build access check query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Msg("Error checking student access")
		return false, fmt.Errorf("error checking student access: %w", err)
	}

	return exists, nil
}

// StudentIDsForUser lists the student IDs a user has access to
func (r *StudentAccessRepository) StudentIDsForUser(ctx context.Context, userID int64) ([]int64, error) {
	sql, args, err := r.sb.Select("student_id").
		From("student_access").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("student_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build student IDs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error querying student access")
		return nil, fmt.Errorf("error querying student access: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning student access row: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student access rows: %w", err)
	}

	return ids, nil
}

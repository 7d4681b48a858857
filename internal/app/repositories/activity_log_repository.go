package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shiningstar/learninglens/internal/app/models"
	"github.com/shiningstar/learninglens/internal/pkg/helpers"
	"github.com/shiningstar/learninglens/internal/pkg/logger"
)

// ActivityLogRepository handles activity log database operations
type ActivityLogRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewActivityLogRepository creates a new ActivityLogRepository
func NewActivityLogRepository(db *pgxpool.Pool) *ActivityLogRepository {
	return &ActivityLogRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Insert records a single activity entry
func (r *ActivityLogRepository) Insert(ctx context.Context, entry *models.ActivityLog) error {
	sql, args, err := r.sb.Insert("activity_logs").
		Columns("user_id", "action", "details", "ip_address", "timestamp").
		Values(entry.UserID, entry.Action, helpers.GetContentNullString(entry.Details), entry.IPAddress, time.Now()).
		Suffix("RETURNING id, timestamp").
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build insert log query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&entry.ID, &entry.Timestamp)
	if err != nil {
		logger.Error().Err(err).Str("action", entry.Action).Msg("Error inserting activity log")
		return fmt.Errorf("error inserting activity log: %w", err)
	}

	return nil
}

// List returns activity entries newest first with offset pagination
func (r *ActivityLogRepository) List(ctx context.Context, offset uint64, limit int) ([]*models.ActivityLog, error) {
	sql, args, err := r.sb.Select("id", "user_id", "action", "details", "ip_address", "timestamp").
		From("activity_logs").
		OrderBy("timestamp DESC", "id DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build list logs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list logs query")
		return nil, fmt.Errorf("error querying activity logs: %w", err)
	}
	defer rows.Close()

	logs := []*models.ActivityLog{}
	for rows.Next() {
		entry := &models.ActivityLog{}
		var details *string
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Action, &details, &entry.IPAddress, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("error scanning activity log row: %w", err)
		}
		if details != nil {
			entry.Details = *details
		}
		logs = append(logs, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity log rows: %w", err)
	}

	return logs, nil
}

// Count returns the total number of activity entries
func (r *ActivityLogRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("activity_logs").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("failed to build count logs query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting activity logs")
		return 0, fmt.Errorf("error counting activity logs: %w", err)
	}

	return total, nil
}

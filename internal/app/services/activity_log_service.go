package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shiningstar/learninglens/internal/app/models"
	"github.com/shiningstar/learninglens/internal/app/models/dto"
	"github.com/shiningstar/learninglens/internal/app/repositories"
	"github.com/shiningstar/learninglens/internal/pkg/helpers"
)

// ActivityLogService defines the interface for activity log operations
type ActivityLogService interface {
	Record(ctx context.Context, userID *int64, action, details, ipAddress string)
	List(ctx context.Context, page, pageSize int) (*dto.ActivityLogListResponse, error)
}

// activityLogServiceImpl implements ActivityLogService
type activityLogServiceImpl struct {
	logRepo *repositories.ActivityLogRepository
	logger  zerolog.Logger
}

// NewActivityLogService creates a new ActivityLogService
func NewActivityLogService(logRepo *repositories.ActivityLogRepository, logger zerolog.Logger) ActivityLogService {
	return &activityLogServiceImpl{
		logRepo: logRepo,
		logger:  logger,
	}
}

// Record writes an activity entry. Failures are logged and never propagated,
// a broken audit trail must not fail the operation being audited.
func (s *activityLogServiceImpl) Record(ctx context.Context, userID *int64, action, details, ipAddress string) {
	entry := &models.ActivityLog{
		UserID:    userID,
		Action:    action,
		Details:   details,
		IPAddress: ipAddress,
	}

	if err := s.logRepo.Insert(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Str("action", action).Msg("Failed to record activity entry")
	}
}

// List returns a page of activity entries, newest first
func (s *activityLogServiceImpl) List(ctx context.Context, page, pageSize int) (*dto.ActivityLogListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	logs, err := s.logRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing activity logs: %w", err)
	}

	total, err := s.logRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting activity logs: %w", err)
	}

	return &dto.ActivityLogListResponse{
		Logs:       logs,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

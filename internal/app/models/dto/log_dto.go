package dto

import "github.com/shiningstar/learninglens/internal/app/models"

// ActivityLogListResponse represents a page of activity log entries
type ActivityLogListResponse struct {
	Logs       []*models.ActivityLog `json:"logs"`
	Pagination PaginationInfo        `json:"pagination"`
}

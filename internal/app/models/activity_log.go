package models

import "time"

// ActivityLog records a single audited action based on the 'activity_logs' table
type ActivityLog struct {
	ID        int64     `json:"id" db:"id"`
	UserID    *int64    `json:"userId,omitempty" db:"user_id"` // Nullable, e.g. failed logins
	Action    string    `json:"action" db:"action"`
	Details   string    `json:"details,omitempty" db:"details"`
	IPAddress string    `json:"ipAddress,omitempty" db:"ip_address"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

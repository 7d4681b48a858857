package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64      `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Username  string     `json:"username" db:"username" example:"jdoe"`                    // Login name, unique
	Email     string     `json:"email" db:"email" example:"jdoe@shiningstar.edu"`          // User's email address, unique
	Password  string     `json:"-" db:"password_hash"`                                     // User's hashed password (excluded from JSON)
	Role      RoleType   `json:"role" db:"role" example:"TEACHER"`                         // User's role (USER, TEACHER or ADMIN)
	CreatedAt time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	LastLogin *time.Time `json:"lastLogin,omitempty" db:"last_login"`                      // Timestamp of the last login (nullable)
}

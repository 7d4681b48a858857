package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID          int64     `json:"id" db:"id"`
	FirstName   string    `json:"firstName" db:"first_name"`
	LastName    string    `json:"lastName" db:"last_name"`
	Age         int       `json:"age" db:"age"`
	Grade       string    `json:"grade" db:"grade"`
	ParentEmail *string   `json:"parentEmail,omitempty" db:"parent_email"` // Pointer for potential NULL
	ParentPhone *string   `json:"parentPhone,omitempty" db:"parent_phone"` // Pointer for potential NULL
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// StudentAccess grants a non-admin user read access to a student,
// based on the 'student_access' table.
type StudentAccess struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	GrantedAt time.Time `json:"grantedAt" db:"granted_at"`
}

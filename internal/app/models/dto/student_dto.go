package dto

// CreateStudentRequest represents student registration data
type CreateStudentRequest struct {
	FirstName   string  `json:"firstName" binding:"required"`
	LastName    string  `json:"lastName" binding:"required"`
	Age         int     `json:"age" binding:"required"`
	Grade       string  `json:"grade"`
	ParentEmail *string `json:"parentEmail,omitempty" binding:"omitempty,email"`
	ParentPhone *string `json:"parentPhone,omitempty"`
}

// UpdateStudentRequest represents student update data. All fields are
// optional; only the ones provided are changed.
type UpdateStudentRequest struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Age         *int    `json:"age,omitempty"`
	Grade       *string `json:"grade,omitempty"`
	ParentEmail *string `json:"parentEmail,omitempty" binding:"omitempty,email"`
	ParentPhone *string `json:"parentPhone,omitempty"`
}

// GrantAccessRequest assigns a student to a teacher or user account
type GrantAccessRequest struct {
	UserID    int64 `json:"userId" binding:"required,gt=0"`
	StudentID int64 `json:"studentId" binding:"required,gt=0"`
}

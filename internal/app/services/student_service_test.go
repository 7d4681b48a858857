package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shiningstar/learninglens/internal/app/models"
	"github.com/shiningstar/learninglens/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func validStudent() *models.Student {
	return &models.Student{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Age:         10,
		Grade:       "4",
		ParentEmail: strPtr("parent@example.com"),
	}
}

func TestValidateStudent(t *testing.T) {
	svc := &studentServiceImpl{}

	tests := []struct {
		name    string
		mutate  func(s *models.Student)
		wantErr error
	}{
		{"valid profile", func(s *models.Student) {}, nil},
		{"blank first name", func(s *models.Student) { s.FirstName = "  " }, apperrors.ErrValidationFailed},
		{"blank last name", func(s *models.Student) { s.LastName = "" }, apperrors.ErrValidationFailed},
		{"age below range", func(s *models.Student) { s.Age = 4 }, apperrors.ErrInvalidStudentAge},
		{"age above range", func(s *models.Student) { s.Age = 19 }, apperrors.ErrInvalidStudentAge},
		{"no parent contact", func(s *models.Student) { s.ParentEmail = nil }, apperrors.ErrMissingParentContact},
		{"blank parent email counts as missing", func(s *models.Student) { s.ParentEmail = strPtr("  ") }, apperrors.ErrMissingParentContact},
		{"malformed parent email", func(s *models.Student) { s.ParentEmail = strPtr("not-an-email") }, apperrors.ErrInvalidEmail},
		{"malformed parent phone", func(s *models.Student) {
			s.ParentEmail = nil
			s.ParentPhone = strPtr("12ab")
		}, apperrors.ErrValidationFailed},
		{"phone only is enough", func(s *models.Student) {
			s.ParentEmail = nil
			s.ParentPhone = strPtr("+90 555 123 4567")
		}, nil},
		{"boundary ages accepted", func(s *models.Student) { s.Age = 5 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student := validStudent()
			tt.mutate(student)

			err := svc.validateStudent(student)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateStudent_UppercaseEmailAccepted(t *testing.T) {
	svc := &studentServiceImpl{}
	student := validStudent()
	student.ParentEmail = strPtr("Parent@Example.COM")

	assert.NoError(t, svc.validateStudent(student))
}

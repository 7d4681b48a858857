package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shiningstar/learninglens/internal/app/models"
	"github.com/shiningstar/learninglens/internal/app/models/dto"
	"github.com/shiningstar/learninglens/internal/app/repositories"
	"github.com/shiningstar/learninglens/internal/pkg/apperrors"
	"github.com/shiningstar/learninglens/internal/pkg/validation"
)

const (
	minStudentAge = 5
	maxStudentAge = 18
)

// StudentService defines the interface for student management operations
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest, actorID int64, ipAddress string) (*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetStudents(ctx context.Context) ([]*models.Student, error)
	GetStudentsForUser(ctx context.Context, userID int64) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest, actorID int64, ipAddress string) (*models.Student, error)
	DeleteStudent(ctx context.Context, id, actorID int64, ipAddress string) error
	CanAccessStudent(ctx context.Context, userID int64, role string, studentID int64) (bool, error)
	GrantAccess(ctx context.Context, req *dto.GrantAccessRequest, actorID int64, ipAddress string) (*models.StudentAccess, error)
	RevokeAccess(ctx context.Context, userID, studentID, actorID int64, ipAddress string) error
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
	accessRepo  *repositories.StudentAccessRepository
	userRepo    *repositories.UserRepository
	activity    ActivityLogService
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	accessRepo *repositories.StudentAccessRepository,
	userRepo *repositories.UserRepository,
	activity ActivityLogService,
	logger zerolog.Logger,
) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		accessRepo:  accessRepo,
		userRepo:    userRepo,
		activity:    activity,
		logger:      logger,
	}
}

// validateStudent enforces the student profile rules shared by create and update
func (s *studentServiceImpl) validateStudent(student *models.Student) error {
	if strings.TrimSpace(student.FirstName) == "" {
		return fmt.Errorf("%w: first name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(student.LastName) == "" {
		return fmt.Errorf("%w: last name cannot be empty", apperrors.ErrValidationFailed)
	}
	if student.Age < minStudentAge || student.Age > maxStudentAge {
		return apperrors.ErrInvalidStudentAge
	}

	hasEmail := student.ParentEmail != nil && strings.TrimSpace(*student.ParentEmail) != ""
	hasPhone := student.ParentPhone != nil && strings.TrimSpace(*student.ParentPhone) != ""
	if !hasEmail && !hasPhone {
		return apperrors.ErrMissingParentContact
	}

	if hasEmail && !validation.CompiledPatterns.Email.MatchString(strings.ToLower(*student.ParentEmail)) {
		return fmt.Errorf("%w: parent email is not a valid address", apperrors.ErrInvalidEmail)
	}
	if hasPhone && !validation.CompiledPatterns.Phone.MatchString(*student.ParentPhone) {
		return fmt.Errorf("%w: parent phone is not a valid number", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateStudent registers a new student profile
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest, actorID int64, ipAddress string) (*models.Student, error) {
	student := &models.Student{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Age:         req.Age,
		Grade:       req.Grade,
		ParentEmail: req.ParentEmail,
		ParentPhone: req.ParentPhone,
	}

	if err := s.validateStudent(student); err != nil {
		return nil, err
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, &actorID, "student_created",
		fmt.Sprintf("created student %s %s (id %d)", student.FirstName, student.LastName, student.ID), ipAddress)

	return student, nil
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// GetStudents retrieves all students
func (s *studentServiceImpl) GetStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// GetStudentsForUser retrieves the students a non-admin user has been granted access to
func (s *studentServiceImpl) GetStudentsForUser(ctx context.Context, userID int64) ([]*models.Student, error) {
	ids, err := s.accessRepo.StudentIDsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.studentRepo.GetByIDs(ctx, ids)
}

// UpdateStudent applies partial changes to a student profile
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest, actorID int64, ipAddress string) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.Age != nil {
		student.Age = *req.Age
	}
	if req.Grade != nil {
		student.Grade = *req.Grade
	}
	if req.ParentEmail != nil {
		student.ParentEmail = req.ParentEmail
	}
	if req.ParentPhone != nil {
		student.ParentPhone = req.ParentPhone
	}

	if err := s.validateStudent(student); err != nil {
		return nil, err
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, &actorID, "student_updated",
		fmt.Sprintf("updated student %s %s (id %d)", student.FirstName, student.LastName, student.ID), ipAddress)

	return student, nil
}

// DeleteStudent removes a student profile
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id, actorID int64, ipAddress string) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, &actorID, "student_deleted", fmt.Sprintf("deleted student id %d", id), ipAddress)

	return nil
}

// CanAccessStudent reports whether a user may read a student profile.
// Admins always can, other users need an explicit access grant.
func (s *studentServiceImpl) CanAccessStudent(ctx context.Context, userID int64, role string, studentID int64) (bool, error) {
	if role == string(models.RoleAdmin) {
		return true, nil
	}
	return s.accessRepo.HasAccess(ctx, userID, studentID)
}

// GrantAccess gives a user read access to a student
func (s *studentServiceImpl) GrantAccess(ctx context.Context, req *dto.GrantAccessRequest, actorID int64, ipAddress string) (*models.StudentAccess, error) {
	// Verify both sides exist so the grant cannot dangle
	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}
	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	access := &models.StudentAccess{
		UserID:    req.UserID,
		StudentID: req.StudentID,
	}

	if err := s.accessRepo.Grant(ctx, access); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, &actorID, "access_granted",
		fmt.Sprintf("granted user %d access to student %d", req.UserID, req.StudentID), ipAddress)

	return access, nil
}

// RevokeAccess removes a user's access to a student
func (s *studentServiceImpl) RevokeAccess(ctx context.Context, userID, studentID, actorID int64, ipAddress string) error {
	if err := s.accessRepo.Revoke(ctx, userID, studentID); err != nil {
		return err
	}

	s.activity.Record(ctx, &actorID, "access_revoked",
		fmt.Sprintf("revoked user %d access to student %d", userID, studentID), ipAddress)

	return nil
}

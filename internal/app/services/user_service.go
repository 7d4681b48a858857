package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shiningstar/learninglens/internal/app/models"
	"github.com/shiningstar/learninglens/internal/app/models/dto"
	"github.com/shiningstar/learninglens/internal/app/repositories"
	"github.com/shiningstar/learninglens/internal/pkg/apperrors"
	"github.com/shiningstar/learninglens/internal/pkg/auth"
	"github.com/shiningstar/learninglens/internal/pkg/helpers"
)

// UserService defines the interface for user management operations
type UserService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest, actorID int64, ipAddress string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetAllUsers(ctx context.Context, page, pageSize int) (*dto.UserListResponse, error)
	UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest, actorID int64, ipAddress string) (*models.User, error)
	DeleteUser(ctx context.Context, id, actorID int64, ipAddress string) error
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo *repositories.UserRepository
	activity ActivityLogService
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo *repositories.UserRepository,
	activity ActivityLogService,
	logger zerolog.Logger,
) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		activity: activity,
		logger:   logger,
	}
}

// CreateUser creates a new account with a hashed password
func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest, actorID int64, ipAddress string) (*models.User, error) {
	usernameTaken, err := s.userRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if usernameTaken {
		return nil, apperrors.ErrUsernameAlreadyExists
	}

	emailTaken, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if emailTaken {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     models.RoleType(req.Role),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, &actorID, "user_created", fmt.Sprintf("created user %s (id %d)", user.Username, user.ID), ipAddress)

	return user, nil
}

// GetUserByID retrieves a user by ID
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetAllUsers retrieves a page of users
func (s *userServiceImpl) GetAllUsers(ctx context.Context, page, pageSize int) (*dto.UserListResponse, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	total := int64(len(users))
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	if offset > uint64(len(users)) {
		users = []*models.User{}
	} else {
		end := offset + uint64(limit)
		if end > uint64(len(users)) {
			end = uint64(len(users))
		}
		users = users[offset:end]
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, *dto.NewUserResponse(user))
	}

	return &dto.UserListResponse{
		Users:      responses,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

// UpdateUser applies partial changes to an existing user
func (s *userServiceImpl) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest, actorID int64, ipAddress string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		emailTaken, err := s.userRepo.EmailExists(ctx, *req.Email)
		if err != nil {
			return nil, fmt.Errorf("error checking email: %w", err)
		}
		if emailTaken {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		user.Email = *req.Email
	}

	if req.Password != nil {
		hashedPassword, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		user.Password = hashedPassword
	}

	if req.Role != nil {
		user.Role = models.RoleType(*req.Role)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, &actorID, "user_updated", fmt.Sprintf("updated user %s (id %d)", user.Username, user.ID), ipAddress)

	return user, nil
}

// DeleteUser removes an account. Admins cannot delete themselves.
func (s *userServiceImpl) DeleteUser(ctx context.Context, id, actorID int64, ipAddress string) error {
	if id == actorID {
		return apperrors.ErrSelfDeletion
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, &actorID, "user_deleted", fmt.Sprintf("deleted user %s (id %d)", user.Username, user.ID), ipAddress)

	return nil
}

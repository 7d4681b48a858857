package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/shiningstar/learninglens/internal/app/models/dto"
	"github.com/shiningstar/learninglens/internal/pkg/apperrors"
)

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrAssessmentNotFound,
		apperrors.ErrReportNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()),
		})
		return
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"),
		})
		return
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		})
		return
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		})
		return
	case apperrors.Is(err, apperrors.ErrPermissionDenied, apperrors.ErrSelfDeletion):
		c.JSON(403, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, err.Error()),
		})
		return
	case errors.Is(err, apperrors.ErrTooManyRequests):
		c.JSON(429, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeRateLimited, "Too many requests"),
		})
		return
	case apperrors.Is(err, apperrors.ErrEmailAlreadyExists,
		apperrors.ErrUsernameAlreadyExists,
		apperrors.ErrConflict,
		apperrors.ErrResponsesAlreadySet):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()),
		})
		return
	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrInvalidEmail,
		apperrors.ErrInvalidStudentAge,
		apperrors.ErrMissingParentContact,
		apperrors.ErrInvalidRespondentRole):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		})
		return
	case apperrors.Is(err, apperrors.ErrBadRequest,
		apperrors.ErrAssessmentNotCompleted,
		apperrors.ErrAssessmentNotAnalyzed):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, err.Error()),
		})
		return
	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
		return
	}
}

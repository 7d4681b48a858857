package middleware

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/shiningstar/learninglens/internal/pkg/apperrors"
)

func handleError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleAPIError(c, err)
	return w
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"user not found", apperrors.ErrUserNotFound, 404},
		{"student not found", apperrors.ErrStudentNotFound, 404},
		{"assessment not found", apperrors.ErrAssessmentNotFound, 404},
		{"report not found", apperrors.ErrReportNotFound, 404},
		{"invalid credentials", apperrors.ErrInvalidCredentials, 401},
		{"token expired", apperrors.ErrTokenExpired, 401},
		{"token invalid", apperrors.ErrTokenInvalid, 401},
		{"permission denied", apperrors.ErrPermissionDenied, 403},
		{"self deletion", apperrors.ErrSelfDeletion, 403},
		{"too many requests", apperrors.ErrTooManyRequests, 429},
		{"email exists", apperrors.ErrEmailAlreadyExists, 409},
		{"username exists", apperrors.ErrUsernameAlreadyExists, 409},
		{"responses already set", apperrors.ErrResponsesAlreadySet, 409},
		{"validation failed", apperrors.ErrValidationFailed, 400},
		{"invalid email", apperrors.ErrInvalidEmail, 400},
		{"invalid student age", apperrors.ErrInvalidStudentAge, 400},
		{"missing parent contact", apperrors.ErrMissingParentContact, 400},
		{"invalid respondent role", apperrors.ErrInvalidRespondentRole, 400},
		{"assessment not completed", apperrors.ErrAssessmentNotCompleted, 400},
		{"assessment not analyzed", apperrors.ErrAssessmentNotAnalyzed, 400},
		{"unknown error", errors.New("boom"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := handleError(tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandleAPIError_WrappedErrorsMatch(t *testing.T) {
	wrapped := fmt.Errorf("%w: first name cannot be empty", apperrors.ErrValidationFailed)

	w := handleError(wrapped)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "first name cannot be empty")
}

func TestHandleAPIError_CustomErrorKeepsMessage(t *testing.T) {
	w := handleError(apperrors.NewResourceNotFoundError("assessment with ID 7 not found"))

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "assessment with ID 7 not found")
}

func TestHandleAPIError_InternalErrorHidesDetails(t *testing.T) {
	w := handleError(errors.New("pq: connection refused"))

	assert.Equal(t, 500, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Contains(t, w.Body.String(), "Internal server error")
}

package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/shiningstar/learninglens/internal/app/models/dto"
)

func bindJSON(t *testing.T, body string, obj interface{}) (bool, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/auth/login", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	return BindAndValidate(c, obj), w
}

func TestBindAndValidate_ValidBody(t *testing.T) {
	var req dto.LoginRequest
	ok, w := bindJSON(t, `{"username":"admin","password":"Admin123!"}`, &req)

	assert.True(t, ok)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "admin", req.Username)
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	var req dto.LoginRequest
	ok, w := bindJSON(t, `{"username":`, &req)

	assert.False(t, ok)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request format")
}

func TestBindAndValidate_MissingRequiredField(t *testing.T) {
	var req dto.LoginRequest
	ok, w := bindJSON(t, `{"username":"admin"}`, &req)

	assert.False(t, ok)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Password is required")
}

func TestBindAndValidate_FieldRuleViolation(t *testing.T) {
	var req dto.GrantAccessRequest
	ok, w := bindJSON(t, `{"userId":-1,"studentId":3}`, &req)

	assert.False(t, ok)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "UserID must be greater than 0")
}

func TestBindAndValidate_InvalidEmailFormat(t *testing.T) {
	var req dto.CreateStudentRequest
	ok, w := bindJSON(t, `{"firstName":"Ada","lastName":"L","age":10,"parentEmail":"not-an-email"}`, &req)

	assert.False(t, ok)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "ParentEmail must be a valid email address")
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiningstar/learninglens/internal/app/models"
	"github.com/shiningstar/learninglens/internal/pkg/auth"
)

func newTestAuthRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "test-issuer",
	})

	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetInt64("userID")})
	})
	router.GET("/admin", m.JWTAuth(), m.RoleRequired(string(models.RoleAdmin)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router, jwtService
}

func issueToken(t *testing.T, jwtService *auth.JWTService, role models.RoleType) string {
	t.Helper()
	access, _, _, _, err := jwtService.GenerateTokenPair(&models.User{
		ID:    7,
		Email: "user@shiningstar.edu",
		Role:  role,
	})
	require.NoError(t, err)
	return access
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router, _ := newTestAuthRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ValidBearerToken(t *testing.T) {
	router, jwtService := newTestAuthRouter(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleTeacher))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":7`)
}

func TestJWTAuth_RawTokenWithoutBearerPrefix(t *testing.T) {
	router, jwtService := newTestAuthRouter(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", issueToken(t, jwtService, models.RoleTeacher))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuth_GarbageToken(t *testing.T) {
	router, _ := newTestAuthRouter(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleRequired_AdminAllowed(t *testing.T) {
	router, jwtService := newTestAuthRouter(t)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleAdmin))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleRequired_TeacherForbidden(t *testing.T) {
	router, jwtService := newTestAuthRouter(t)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleTeacher))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerlink/company-service/config"
)

func testConfig() *config.EnvConfig {
	cfg := &config.EnvConfig{}
	cfg.JWT.SecretKey = "test-secret"
	return cfg
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func authRequest(cfg *config.EnvConfig, token string) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		c.Request.Header.Set("Authorization", "Bearer "+token)
	}
	AuthMiddleware(cfg)(c)
	return w, c
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	w, c := authRequest(testConfig(), "")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestAuthMiddlewareRejectsBadSignature(t *testing.T) {
	token := signToken(t, "wrong-secret", jwt.MapClaims{"sub": uuid.New().String()})
	w, c := authRequest(testConfig(), token)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInjectsClaims(t *testing.T) {
	userID := uuid.New()
	token := signToken(t, "test-secret", jwt.MapClaims{"sub": userID.String(), "role": "recruiter"})
	_, c := authRequest(testConfig(), token)

	assert.False(t, c.IsAborted())
	assert.Equal(t, userID.String(), c.GetString("user_id"))
	assert.Equal(t, "recruiter", c.GetString("role"))
}

func TestRequireRolesRejectsOutsiders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Set("role", "candidate")

	RequireRoles("recruiter", "admin")(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRolesAllowsListedRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Set("role", "admin")

	RequireRoles("recruiter", "admin")(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, http.StatusOK, w.Code)
}

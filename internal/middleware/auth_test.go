package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/vidyapath/planner-api/internal/models"
	"github.com/vidyapath/planner-api/internal/services"
)

const testSecret = "test-secret"

func issueTestToken(t *testing.T, userID uint64) string {
	t.Helper()
	authService := services.NewAuthService(nil, testSecret)
	token, err := authService.IssueToken(&models.User{ID: userID})
	assert.NoError(t, err)
	return token
}

func runAuthMiddleware(header, value string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/planner", nil)
	if header != "" {
		c.Request.Header.Set(header, value)
	}

	RequireAuth(testSecret)(c)
	return c, w
}

func TestRequireAuth_BearerHeader(t *testing.T) {
	token := issueTestToken(t, 7)

	c, w := runAuthMiddleware("Authorization", "Bearer "+token)

	assert.False(t, c.IsAborted())
	assert.Equal(t, http.StatusOK, w.Code)

	userID, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, uint64(7), userID)
}

func TestRequireAuth_LegacyHeader(t *testing.T) {
	token := issueTestToken(t, 9)

	c, _ := runAuthMiddleware("x-auth-token", token)

	assert.False(t, c.IsAborted())
	userID, _ := GetUserID(c)
	assert.Equal(t, uint64(9), userID)
}

func TestRequireAuth_MissingToken(t *testing.T) {
	c, w := runAuthMiddleware("", "")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_GarbageToken(t *testing.T) {
	c, w := runAuthMiddleware("Authorization", "Bearer not-a-token")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	authService := services.NewAuthService(nil, "other-secret")
	token, err := authService.IssueToken(&models.User{ID: 3})
	assert.NoError(t, err)

	c, w := runAuthMiddleware("Authorization", "Bearer "+token)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

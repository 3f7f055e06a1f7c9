package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"academy_backend/internal/auth"
	"academy_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestRouter(tm *auth.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(tm), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": GetUserID(c),
			"role":    GetRole(c),
		})
	})
	r.GET("/admin-only", AuthMiddleware(tm), RequireRoles(models.UserRoleSuperAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	r := newAuthTestRouter(tm)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header missing or invalid")
}

func TestAuthMiddleware_BadToken(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	r := newAuthTestRouter(tm)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestAuthMiddleware_ValidTokenSetsIdentity(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	r := newAuthTestRouter(tm)

	token, err := tm.Generate("user-42", models.UserRoleTrainer)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
	assert.Contains(t, w.Body.String(), "trainer")
}

func TestRequireRoles_Forbidden(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	r := newAuthTestRouter(tm)

	token, err := tm.Generate("user-42", models.UserRoleStudent)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient permissions")
}

func TestRequireRoles_Allowed(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	r := newAuthTestRouter(tm)

	token, err := tm.Generate("admin-1", models.UserRoleSuperAdmin)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

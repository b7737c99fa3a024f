package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tienda/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{ID: 7, Role: models.RoleAdmin}

	token, err := GenerateToken(user, testSecret)
	require.NoError(t, err)

	claims, err := VerifyToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)

	_, err = VerifyToken(token, "otro-secreto")
	assert.Error(t, err)
}

func setupProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protegido", AuthMiddleware(testSecret), func(c *gin.Context) {
		userID, _ := c.Get("userID")
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": role})
	})
	r.GET("/solo-admin", AuthMiddleware(testSecret), AdminMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := setupProtectedRouter()

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protegido", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		req.Header.Set("Authorization", "Bearer basura")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token attaches user to context", func(t *testing.T) {
		token, err := GenerateToken(&models.User{ID: 7, Role: models.RoleCustomer}, testSecret)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":7`)
		assert.Contains(t, w.Body.String(), `"role":"cliente"`)
	})
}

func TestAdminMiddleware(t *testing.T) {
	r := setupProtectedRouter()

	t.Run("customer is rejected", func(t *testing.T) {
		token, err := GenerateToken(&models.User{ID: 7, Role: models.RoleCustomer}, testSecret)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/solo-admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		token, err := GenerateToken(&models.User{ID: 1, Role: models.RoleAdmin}, testSecret)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/solo-admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

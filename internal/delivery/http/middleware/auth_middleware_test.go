package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/authz"
	"go-jobportal-backend/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter(tokens *token.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(tokens), func(c *gin.Context) {
		// The identity must be readable both via gin keys and via the
		// request context the usecases receive.
		id := authz.FromContext(c.Request.Context())
		if id == nil {
			c.String(http.StatusInternalServerError, "identity missing from request context")
			return
		}
		c.String(http.StatusOK, c.GetString(string(domain.KeyUserID))+":"+id.Role)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	router := setupRouter(tokens)

	t.Run("Should reject requests without a token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should accept a bearer token in the Authorization header", func(t *testing.T) {
		tokenString, err := tokens.Issue("user1", "student")
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tokenString)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user1:student", w.Body.String())
	})

	t.Run("Should accept the session cookie", func(t *testing.T) {
		tokenString, err := tokens.Issue("user2", "recruiter")
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: tokenString})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user2:recruiter", w.Body.String())
	})

	t.Run("Should reject an expired token with a distinct message", func(t *testing.T) {
		expired := token.NewManager("test-secret", -time.Minute)
		tokenString, err := expired.Issue("user1", "student")
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tokenString)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "expired")
	})

	t.Run("Should reject a token signed with another secret", func(t *testing.T) {
		other := token.NewManager("other-secret", time.Hour)
		tokenString, err := other.Issue("user1", "student")
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tokenString)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

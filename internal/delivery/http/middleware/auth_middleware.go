package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// CookieName is the session cookie carrying the bearer token.
const CookieName = "token"

// AuthMiddleware validates the session token from the Authorization header
// or the session cookie and attaches the identity to the request context.
// Requests without a valid identity never reach role or ownership checks.
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else if cookie, err := c.Cookie(CookieName); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, token.ErrExpired) {
				msg = "Token has expired"
			}
			response.Error(c, http.StatusUnauthorized, msg, nil)
			c.Abort()
			return
		}

		// Handlers read the identity via c.GetString; usecases read it from
		// the request context, so it is attached to both.
		c.Set(string(domain.KeyUserID), claims.UserID)
		c.Set(string(domain.KeyUserRole), claims.Role)

		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, domain.KeyUserRole, claims.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

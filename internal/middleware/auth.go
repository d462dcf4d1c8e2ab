package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-marketplace/internal/auth"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
)

const ContextUserID = "userID"

func bearer(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", httperr.Auth("missing_authorization_header", "Authentication required.")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", httperr.Auth("invalid_authorization_header", "Authorization header must be a bearer token.")
	}
	return strings.TrimSpace(parts[1]), nil
}

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware(v *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearer(c)
		if err != nil {
			httperr.Respond(c, err)
			return
		}

		userID, err := v.Verify(token)
		if err != nil {
			httperr.Respond(c, httperr.Auth("invalid_token", "Token is invalid or expired."))
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present and
// lets anonymous requests through.
func OptionalAuth(v *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := bearer(c); err == nil {
			if userID, err := v.Verify(token); err == nil {
				c.Set(ContextUserID, userID)
			}
		}
		c.Next()
	}
}

// UserID returns the authenticated user, or "" for anonymous requests.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

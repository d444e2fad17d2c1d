package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dietplanner/backend/pkg/auth"
	"github.com/dietplanner/backend/pkg/constants"
)

// RequireAuth validates the Bearer JWT and stores the admin session in
// the request context
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			abortUnauthorized(c, "no authorization token provided")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}

		c.Set(constants.ContextKeyAdmin, claims.Admin)
		c.Set(constants.ContextKeyToken, parts[1])
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"code":    "UNAUTHORIZED",
		"message": message,
	})
	c.Abort()
}

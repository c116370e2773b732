package auth

import (
	"crypto/subtle"
	"net/http"

	apperrors "property-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AdminKeyHeader carries the shared admin secret on gated requests
const AdminKeyHeader = "X-Admin-Key"

// RequireAdmin gates a route behind the shared admin secret.
//
// Fail closed: a server with no secret configured rejects every request
// with 500 rather than letting anything through. The expected value is
// injected, never read from ambient process state, so tests and callers
// control it explicitly.
func RequireAdmin(expectedSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expectedSecret == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				gin.H{"error": apperrors.ErrAdminSecretNotSet.Error()})
			return
		}

		key := c.GetHeader(AdminKeyHeader)
		if subtle.ConstantTimeCompare([]byte(key), []byte(expectedSecret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"error": apperrors.ErrUnauthorized.Error()})
			return
		}

		c.Next()
	}
}

package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	appErrors "github.com/takwin-app/landing-api/pkg/errors"
	"github.com/takwin-app/landing-api/pkg/response"
)

// SessionCookie is the cookie carrying the opaque admin session token.
const SessionCookie = "admin_session"

// ContextUserKey is the gin context key storing the authenticated admin name.
const ContextUserKey = "adminUser"

type authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// Session guards admin routes. A missing, unknown or expired session aborts
// with 401 before the handler runs, so unauthenticated requests never reach
// storage.
func Session(auth authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

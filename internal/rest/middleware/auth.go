package middleware

import (
	"strings"

	"github.com/deespora/backoffice/internal/auth"
	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/types"
	"github.com/gin-gonic/gin"
)

// AuthenticateMiddleware requires a Bearer token issued by the login
// function. The admin email and token land in the request context; an
// X-Backend-Token header is forwarded to the backend as its bearer token.
func AuthenticateMiddleware(provider auth.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(types.HeaderAuthorization)
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if authHeader == "" || !ok || strings.TrimSpace(tokenString) == "" {
			c.Error(ierr.NewError("missing bearer token").
				WithHint("Please log in to continue").
				Mark(ierr.ErrUnauthorized))
			c.Abort()
			return
		}

		claims, err := provider.ValidateToken(c.Request.Context(), strings.TrimSpace(tokenString))
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		ctx = types.SetAdminEmail(ctx, claims.Email)
		ctx = types.SetJWT(ctx, tokenString)
		if backendToken := c.GetHeader(types.HeaderBackendToken); backendToken != "" {
			ctx = types.SetBackendToken(ctx, backendToken)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

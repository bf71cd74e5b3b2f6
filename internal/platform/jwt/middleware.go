package jwtmw

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"social_backend/internal/platform/http/respond"
	"social_backend/internal/platform/logger"
	"social_backend/internal/shared/apperr"
)

// ContextClaims is the gin context key holding the verified Claims.
const ContextClaims = "claims"

const bearerPrefix = "Bearer "

type claimsKey struct{}

// AuthRequired returns a Gin middleware that validates the bearer token
// and restricts access to authenticated users only.
func AuthRequired(verifier Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, bearerPrefix) {
			respond.Abort(c, apperr.Auth("unauthorized"))
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(auth, bearerPrefix))

		claims, err := verifier.Verify(tokenStr)
		if err != nil {
			// the reason stays in the logs
			logger.FromContext(c.Request.Context()).Debug("token verification failed",
				"error", err,
				"remote_addr", c.ClientIP(),
			)
			respond.Abort(c, apperr.Auth("unauthorized"))
			return
		}

		c.Set(ContextClaims, claims)
		c.Request = c.Request.WithContext(WithClaims(c.Request.Context(), claims))
		c.Next()
	}
}

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext returns the claims bound by AuthRequired.
func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(Claims)
	return claims, ok
}

// CurrentClaims returns the claims bound to the gin context by AuthRequired.
func CurrentClaims(c *gin.Context) (Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return Claims{}, false
	}
	claims, ok := v.(Claims)
	return claims, ok
}

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/nextstop-api/internal/models"
	"github.com/noah-isme/nextstop-api/internal/service"
	appErrors "github.com/noah-isme/nextstop-api/pkg/errors"
	"github.com/noah-isme/nextstop-api/pkg/response"
)

// ContextUserKey is the gin context key storing JWT claims.
const ContextUserKey = "currentUser"

type tokenValidator interface {
	ValidateToken(token string) (*models.JWTClaims, error)
}

// JWT protects routes by requiring a valid admin bearer token.
func JWT(auth tokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header"))
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserKey, claims)
		c.Next()
	}
}

// LeadAccess guards lead endpoints with JWT when required is set and is a
// pass-through otherwise. Without an auth service a required guard rejects
// every request.
func LeadAccess(required bool, auth *service.AuthService) gin.HandlerFunc {
	if !required {
		return func(c *gin.Context) { c.Next() }
	}
	if auth == nil {
		return func(c *gin.Context) {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "admin login is not configured"))
			c.Abort()
		}
	}
	return JWT(auth)
}

// CurrentClaims returns the claims attached by JWT, if any.
func CurrentClaims(c *gin.Context) (*models.JWTClaims, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*models.JWTClaims)
	return claims, ok
}

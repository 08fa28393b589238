package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/medcore/hospital-api/internal/model"
	"github.com/medcore/hospital-api/pkg/apperror"
	"github.com/medcore/hospital-api/pkg/auth"
	"github.com/medcore/hospital-api/pkg/httputil"
)

const contextIdentity = "identity"

type AuthMiddleware struct {
	jwtSvc auth.JWTService
}

func NewAuthMiddleware(jwtSvc auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtSvc: jwtSvc}
}

// Authenticate verifies the bearer token and stores the resolved
// identity in the request context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httputil.Abort(c, apperror.Unauthenticated("missing authorization header"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			httputil.Abort(c, apperror.Unauthenticated("invalid authorization format"))
			return
		}

		identity, err := m.jwtSvc.Validate(parts[1])
		if err != nil {
			httputil.Abort(c, apperror.Unauthenticated("invalid or expired token"))
			return
		}

		c.Set(contextIdentity, identity)
		c.Next()
	}
}

// RequireRole gates the route on role membership. With no roles given,
// any authenticated identity passes.
func (m *AuthMiddleware) RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			httputil.Abort(c, apperror.Unauthenticated("unauthenticated"))
			return
		}

		if len(roles) == 0 {
			c.Next()
			return
		}

		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		httputil.Abort(c, apperror.Forbidden("forbidden"))
	}
}

// IdentityFrom returns the identity stored by Authenticate.
func IdentityFrom(c *gin.Context) (*model.Identity, bool) {
	value, exists := c.Get(contextIdentity)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*model.Identity)
	return identity, ok
}

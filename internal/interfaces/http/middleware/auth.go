package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/infrastructure/auth"
	"github.com/resolvia-inc/resolvia/internal/shared/constants"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
	"github.com/resolvia-inc/resolvia/internal/shared/utils"
)

// RoleDirectory resolves the role assignments of an authenticated user.
type RoleDirectory interface {
	AssignmentsByUserID(ctx context.Context, userID uint) ([]identity.RoleAssignment, error)
}

type AuthMiddleware struct {
	jwtService *auth.JWTService
	roles      RoleDirectory
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, roles RoleDirectory, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		roles:      roles,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and resolves the caller into a
// principal. Role assignments are loaded per request; a token never carries
// authority on its own.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		assignments, err := m.roles.AssignmentsByUserID(c.Request.Context(), claims.UserID)
		if err != nil {
			m.logger.Errorw("failed to load role assignments", "user_id", claims.UserID, "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to resolve caller identity")
			c.Abort()
			return
		}

		principal := identity.NewPrincipal(claims.UserID, assignments)
		c.Set(constants.ContextKeyPrincipal, principal)

		c.Next()
	}
}

// PrincipalFromContext returns the principal set by RequireAuth.
func PrincipalFromContext(c *gin.Context) (identity.Principal, bool) {
	v, ok := c.Get(constants.ContextKeyPrincipal)
	if !ok {
		return identity.Principal{}, false
	}
	p, ok := v.(identity.Principal)
	return p, ok
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/infrastructure/auth"
	"ticketdesk/internal/shared/authorization"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   user.Repository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, userRepo user.Repository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and resolves the subject to a live
// account. A valid token whose account has since been deleted is rejected,
// so deletion takes effect immediately rather than at token expiry.
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
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		currentUser, err := m.userRepo.GetByEmail(c.Request.Context(), claims.Subject)
		if err != nil {
			m.logger.Errorw("failed to resolve token subject", "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
			c.Abort()
			return
		}
		if currentUser == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "User not found")
			c.Abort()
			return
		}

		c.Set("user_id", currentUser.ID())
		c.Set("user_email", currentUser.Email().String())
		// The stored role is authoritative over the token claim.
		c.Set(authorization.ContextKeyUserRole, currentUser.Role().String())

		c.Next()
	}
}

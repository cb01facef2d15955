package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"ecommerce-backend/internal/handler/httperr"
	"ecommerce-backend/internal/pkg/errs"
	"ecommerce-backend/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const ctxStaffRoleKey = "staff_role"

var (
	errMissingToken     = errs.New("missing bearer token")
	errInsufficientRole = errs.New("staff role is not admin")
)

// AuthMiddleware guards staff-only endpoints. Customer-facing routes
// (catalog, checkout) stay public.
type AuthMiddleware struct {
	tokens *jwt.Service
}

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		if claims.Role != jwt.RoleAdmin {
			httperr.AbortWithError(c, http.StatusForbidden, errInsufficientRole, "Insufficient permissions", nil)
			return
		}

		c.Set(ctxStaffRoleKey, claims.Role)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

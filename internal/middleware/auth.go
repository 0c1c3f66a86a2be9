package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	"github.com/finlearnhq/finlearn_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RequireAuth creates a Gin middleware handler that validates bearer tokens.
// On success the verified subject id and role are attached to the request
// context; on failure the request is rejected with 401 before any handler
// logic runs.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		// Attach the verified identity to the request context and enrich
		// the request-scoped logger with it.
		ctx := context.WithValue(c.Request.Context(), subjectIDKey, claims.Subject)
		ctx = context.WithValue(ctx, roleKey, claims.Role)

		enrichedLogger := logger.With(
			slog.String("subject_id", claims.Subject),
			slog.String("role", string(claims.Role)),
		)
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRole creates a middleware that additionally requires the verified
// role to equal expected. Mismatch is an authorization failure (403),
// distinct from the authentication failures RequireAuth rejects with 401.
// Must be applied after RequireAuth.
func RequireRole(expected domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		role, ok := GetRoleFromContext(c)
		if !ok {
			logger.Error("Role missing from context; RequireRole applied without RequireAuth?")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if role != expected {
			logger.Warn("Role mismatch", slog.String("required", string(expected)), slog.String("actual", string(role)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}

// OptionalAuth attaches identity when a valid bearer token is present but
// lets anonymous requests through. Used on public content routes where
// entitlement depends on who is asking.
func OptionalAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Next()
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			// An invalid token on an optional route is treated as anonymous.
			c.Next()
			return
		}

		ctx := context.WithValue(c.Request.Context(), subjectIDKey, claims.Subject)
		ctx = context.WithValue(ctx, roleKey, claims.Role)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

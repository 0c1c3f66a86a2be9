package middleware

import (
	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// subjectIDKey is the key used to store the authenticated subject's ID in the
// request context. Using a custom type prevents collisions.
const subjectIDKey = contextKey("subjectID")

// roleKey is the key used to store the authenticated subject's role.
const roleKey = contextKey("role")

// GetSubjectIDFromContext retrieves the authenticated subject ID attached by
// RequireAuth. Downstream handlers must use this (never a client-supplied id)
// when acting on behalf of the caller.
func GetSubjectIDFromContext(c *gin.Context) (string, bool) {
	subjectID, ok := c.Request.Context().Value(subjectIDKey).(string)
	if !ok || subjectID == "" {
		return "", false
	}
	return subjectID, true
}

// GetRoleFromContext retrieves the verified role attached by RequireAuth.
func GetRoleFromContext(c *gin.Context) (domain.Role, bool) {
	role, ok := c.Request.Context().Value(roleKey).(domain.Role)
	if !ok || !role.Valid() {
		return "", false
	}
	return role, true
}

package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/quizforum/quizforum-backend/internal/core/domain"
)

// contextKey is a private type for context keys set by this package.
// Using a custom type prevents collisions.
type contextKey string

// memberKey is the key under which the authenticated member is stored in the
// request context. The value is an immutable *domain.Member produced by the
// auth guard; handlers read it, never write it.
const memberKey = contextKey("authMember")

// GetMemberFromContext retrieves the authenticated member from the request
// context. The boolean reports whether the auth guard ran and attached one.
func GetMemberFromContext(c *gin.Context) (*domain.Member, bool) {
	val := c.Request.Context().Value(memberKey)
	if val == nil {
		return nil, false
	}
	member, ok := val.(*domain.Member)
	if !ok {
		return nil, false
	}
	return member, true
}

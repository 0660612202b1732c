package middleware

import (
	"net/http"
	"strings"

	"stockroom/internal/identity"
	"stockroom/internal/model"
	"stockroom/internal/repository"
	"stockroom/internal/respond"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// Authenticate verifies the bearer token and resolves it to an active local
// user. The ladder is strict: missing or malformed header, failed
// verification, or a subject with no local row all answer 401; a row that
// exists but is deactivated answers 403.
func Authenticate(verifier identity.Verifier, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			respond.Fail(c, http.StatusUnauthorized, "missing or malformed authorization header", nil)
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		claims, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			respond.Fail(c, http.StatusUnauthorized, "invalid or expired token", nil)
			c.Abort()
			return
		}

		user, err := users.FindByIdentityUID(c.Request.Context(), claims.SubjectID)
		if err != nil {
			respond.Error(c, err)
			c.Abort()
			return
		}
		if user == nil {
			respond.Fail(c, http.StatusUnauthorized, "user not registered", nil)
			c.Abort()
			return
		}
		if !user.IsActive {
			respond.Fail(c, http.StatusForbidden, "user account is deactivated", nil)
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireRole allows the request through only when the authenticated user's
// role is one of the listed roles. Membership is flat: admin passes an
// admin-only gate, not every gate.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			respond.Fail(c, http.StatusUnauthorized, "authentication required", nil)
			c.Abort()
			return
		}
		if _, ok := allowed[user.Role]; !ok {
			respond.Fail(c, http.StatusForbidden, "insufficient permissions", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Authenticate, or nil.
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}

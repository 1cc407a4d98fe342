package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/kareemh/maarif/internal/app/models"
	"github.com/kareemh/maarif/internal/app/services"
	"github.com/kareemh/maarif/internal/pkg/apperrors"
)

const (
	// SessionUserIDKey is the only value stored in the session cookie
	SessionUserIDKey = "userID"
	// IdentityKey holds the resolved models.Identity in the gin context
	IdentityKey = "identity"
)

// AuthMiddleware resolves session cookies to request identities
type AuthMiddleware struct {
	authService services.AuthService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// SessionRequired rejects requests without a valid session. The session only
// carries the user id; role and account state are read fresh from the store
// so a deleted or demoted account loses access immediately.
func (m *AuthMiddleware) SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := m.resolve(c)
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}
		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// AdminRequired rejects requests whose freshly-loaded role is not admin.
// Must run after SessionRequired would have; it resolves the session itself
// so it can guard a route group alone.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := m.resolve(c)
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}
		if !identity.IsAdmin() {
			HandleAPIError(c, apperrors.ErrPermissionDenied)
			c.Abort()
			return
		}
		c.Set(IdentityKey, identity)
		c.Next()
	}
}

func (m *AuthMiddleware) resolve(c *gin.Context) (models.Identity, error) {
	session := sessions.Default(c)
	raw := session.Get(SessionUserIDKey)
	userID, ok := raw.(int64)
	if !ok || userID == 0 {
		return models.Identity{}, apperrors.ErrAuthenticationRequired
	}

	user, err := m.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		// A session pointing at a deleted account is treated as no session
		return models.Identity{}, apperrors.ErrAuthenticationRequired
	}
	return models.Identity{UserID: user.ID, Role: user.Role}, nil
}

// GetIdentity returns the identity set by SessionRequired or AdminRequired
func GetIdentity(c *gin.Context) (models.Identity, bool) {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return models.Identity{}, false
	}
	identity, ok := value.(models.Identity)
	return identity, ok
}

package middleware

import (
	"doctor-appointment-server/internal/session"
	"doctor-appointment-server/internal/utils"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// RequireSession creates a middleware that gates a route behind a valid,
// non-expired session. The identity is stashed in the gin context for
// downstream handlers.
func RequireSession(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil {
			utils.Unauthorized(c, "Unauthorized: Please log in")
			c.Abort()
			return
		}

		identity, ok := sessions.Get(token)
		if !ok {
			utils.Unauthorized(c, "Unauthorized: Please log in")
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// GetIdentityFromContext returns the session identity stashed by
// RequireSession.
func GetIdentityFromContext(c *gin.Context) (session.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return session.Identity{}, false
	}
	identity, ok := v.(session.Identity)
	return identity, ok
}

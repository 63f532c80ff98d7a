package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-order-panel/session"
)

// SessionKey is the gin context key holding the resolved *session.Session.
const SessionKey = "panel_session"

// SessionMiddleware resolves (or starts) the browser session carrying
// the cart and re-issues its cookie so the TTL slides.
func SessionMiddleware(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(session.CookieName)
		s := manager.GetOrCreate(id)

		if s.ID != id {
			c.SetCookie(session.CookieName, s.ID, 0, "/", "", false, true)
		}

		c.Set(SessionKey, s)
		c.Next()
	}
}

// CurrentSession pulls the session placed by SessionMiddleware.
func CurrentSession(c *gin.Context) *session.Session {
	v, exists := c.Get(SessionKey)
	if !exists {
		c.AbortWithStatus(http.StatusInternalServerError)
		return nil
	}
	return v.(*session.Session)
}

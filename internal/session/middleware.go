package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieName is the browser cookie carrying the signed session token.
const CookieName = "solutions_session"

const contextKey = "session"

// Load resolves the session cookie (if any) and stores the session on the
// gin context. It never blocks a request; anonymous visitors pass through.
func Load(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		sess, err := m.Get(c.Request.Context(), token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(contextKey, sess)
		c.Next()
	}
}

// RequireLogin gates protected routes: requests without an authenticated
// session are redirected to /login.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Current(c) == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Current returns the session loaded for this request, or nil.
func Current(c *gin.Context) *Session {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*Session)
	return sess
}

package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chinmay09gowda/e-commerce.website/session"
)

// ContextSessionID is the gin context key the resolved session id is
// stored under.
const ContextSessionID = "session_id"

// cookieStorage adapts the request/response cookies to session.Storage,
// so the browser's cookie jar plays the role of client-local storage.
type cookieStorage struct {
	c *gin.Context
}

func (s cookieStorage) Get(key string) string {
	value, err := s.c.Cookie(key)
	if err != nil {
		return ""
	}
	return value
}

func (s cookieStorage) Set(key, value string) {
	maxAge := int((365 * 24 * time.Hour).Seconds())
	s.c.SetCookie(key, value, maxAge, "/", "", false, true)
}

// ResolveSession attaches the caller's session id to the request
// context. A bearer session token wins, then an explicit X-Session-ID
// header; browsers fall through to the cookie, which is minted on first
// contact and never rotated after that.
func ResolveSession(c *gin.Context) {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		id, err := session.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session token"})
			c.Abort()
			return
		}
		c.Set(ContextSessionID, id)
		c.Next()
		return
	}

	if id := c.GetHeader("X-Session-ID"); id != "" {
		c.Set(ContextSessionID, id)
		c.Next()
		return
	}

	c.Set(ContextSessionID, session.GetOrCreate(cookieStorage{c}))
	c.Next()
}

// SessionID returns the session id resolved by ResolveSession.
func SessionID(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}

package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chinmay09gowda/e-commerce.website/session"
)

// CreateSession mints a fresh session id for clients that cannot hold a
// cookie, plus a bearer token carrying it. Browsers never call this;
// their id is minted lazily by the session middleware.
// POST /session
func CreateSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := session.NewID()

		token, err := session.IssueToken(sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"token":      token,
		})
	}
}

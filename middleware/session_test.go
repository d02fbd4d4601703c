package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinmay09gowda/e-commerce.website/session"
)

func sessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", ResolveSession, func(c *gin.Context) {
		c.String(http.StatusOK, SessionID(c))
	})
	return r
}

func TestResolveSessionMintsCookieOnFirstContact(t *testing.T) {
	r := sessionRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "session_"))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	found := false
	for _, cookie := range cookies {
		if cookie.Name == session.StorageKey {
			found = true
			assert.Equal(t, w.Body.String(), cookie.Value)
		}
	}
	assert.True(t, found, "session cookie must be set")
}

func TestResolveSessionKeepsExistingCookie(t *testing.T) {
	r := sessionRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: session.StorageKey, Value: "session_123_abcdefghi"})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "session_123_abcdefghi", w.Body.String())
}

func TestResolveSessionHonorsHeader(t *testing.T) {
	r := sessionRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Session-ID", "session_456_jklmnopqr")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "session_456_jklmnopqr", w.Body.String())
}

func TestResolveSessionHonorsBearerToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := sessionRouter()

	id := session.NewID()
	token, err := session.IssueToken(id)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, w.Body.String())
}

func TestResolveSessionRejectsBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := sessionRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

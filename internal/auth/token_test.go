package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionToken(t *testing.T) {
	token := SessionToken("7715")

	require.NotEmpty(t, token)
	require.NotContains(t, token, "7715", "token must not leak the password")
	require.Equal(t, token, SessionToken("7715"), "token must be deterministic")
	require.NotEqual(t, token, SessionToken("other"))
}

func TestSessionCookie(t *testing.T) {
	cookie := SessionCookie("7715")

	require.Equal(t, CookieName, cookie.Name)
	require.Equal(t, SessionToken("7715"), cookie.Value)
	require.Equal(t, "/", cookie.Path)
	require.Equal(t, 1800, cookie.MaxAge)
	require.True(t, cookie.HttpOnly)
}

func TestValidRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/stats", nil)
	require.False(t, ValidRequest(req, "7715"), "no cookie must be rejected")

	req = httptest.NewRequest("GET", "/api/stats", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: SessionToken("7715")})
	require.True(t, ValidRequest(req, "7715"))

	req = httptest.NewRequest("GET", "/api/stats", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "definitely-wrong"})
	require.False(t, ValidRequest(req, "7715"))

	req = httptest.NewRequest("GET", "/api/stats", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: SessionToken("wrong-password")})
	require.False(t, ValidRequest(req, "7715"))
}

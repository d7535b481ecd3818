package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"anlagen-register/internal/auth"
	"anlagen-register/internal/session"

	"github.com/stretchr/testify/require"
)

// loginServer builds a Server with its own gate so cap tests do not leak
// sessions into each other.
func loginServer() *Server {
	gate := session.NewGate(testCfg.Auth.MaxSessions, testCfg.Auth.SessionTimeout)
	return NewServer(testCfg, testServer.store, gate, nil)
}

func doLogin(t *testing.T, s *Server, password, identity string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(LoginRequest{Password: password})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/login", bytes.NewReader(body))
	if identity != "" {
		req.Header.Set("X-Forwarded-For", identity)
	}
	rr := httptest.NewRecorder()
	http.HandlerFunc(s.LoginHandler).ServeHTTP(rr, req)
	return rr
}

func TestLoginHandler_Success(t *testing.T) {
	rr := doLogin(t, loginServer(), "7715", "198.51.100.10")

	require.Equal(t, http.StatusOK, rr.Code)

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.Success)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, auth.CookieName, cookies[0].Name)
	require.Equal(t, auth.SessionToken("7715"), cookies[0].Value)
	require.Equal(t, 1800, cookies[0].MaxAge)
	require.True(t, cookies[0].HttpOnly)
	require.Equal(t, "/", cookies[0].Path)
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	rr := doLogin(t, loginServer(), "falsch", "198.51.100.10")

	require.Equal(t, http.StatusUnauthorized, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "Falsches Passwort", resp.Error)
	require.Empty(t, rr.Result().Cookies())
}

func TestLoginHandler_InvalidBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/login", bytes.NewReader([]byte("kein json")))
	rr := httptest.NewRecorder()
	http.HandlerFunc(loginServer().LoginHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLoginHandler_CapacityExceeded(t *testing.T) {
	s := loginServer()

	require.Equal(t, http.StatusOK, doLogin(t, s, "7715", "ip-1").Code)
	require.Equal(t, http.StatusOK, doLogin(t, s, "7715", "ip-2").Code)

	rr := doLogin(t, s, "7715", "ip-3")
	require.Equal(t, http.StatusTooManyRequests, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t,
		"Maximale Anzahl gleichzeitiger Benutzer erreicht (2). Bitte versuchen Sie es später erneut.",
		resp.Error)

	// a held identity logs in again without a free slot
	require.Equal(t, http.StatusOK, doLogin(t, s, "7715", "ip-1").Code)
}

func TestLoginHandler_FailedPasswordConsumesNoSlot(t *testing.T) {
	s := loginServer()

	// hammer the gate with bad credentials from many identities
	for _, ip := range []string{"ip-1", "ip-2", "ip-3", "ip-4"} {
		require.Equal(t, http.StatusUnauthorized, doLogin(t, s, "falsch", ip).Code)
	}

	// both slots are still free
	require.Equal(t, http.StatusOK, doLogin(t, s, "7715", "ip-5").Code)
	require.Equal(t, http.StatusOK, doLogin(t, s, "7715", "ip-6").Code)
}

func TestLoginHandler_UnknownIdentityBucket(t *testing.T) {
	s := loginServer()

	// two headerless clients share the "unknown" slot
	require.Equal(t, http.StatusOK, doLogin(t, s, "7715", "").Code)
	require.Equal(t, http.StatusOK, doLogin(t, s, "7715", "").Code)
	require.Equal(t, 1, s.gate.Active(time.Now()))
}

func TestAuthMiddleware(t *testing.T) {
	router := newAPIRouter(loginServer())

	req := httptest.NewRequest("GET", "/api/stats", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "Nicht autorisiert", resp.Error)

	req = httptest.NewRequest("GET", "/api/stats", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "gefälscht"})
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	req = httptest.NewRequest("GET", "/api/stats", nil)
	req.AddCookie(validAuthCookie())
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestAuthMiddleware_TouchKeepsSessionAlive(t *testing.T) {
	s := loginServer()
	router := newAPIRouter(s)

	require.Equal(t, http.StatusOK, doLogin(t, s, "7715", "ip-1").Code)

	req := httptest.NewRequest("GET", "/api/stats", nil)
	req.Header.Set("X-Forwarded-For", "ip-1")
	req.AddCookie(validAuthCookie())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	require.Equal(t, 1, s.gate.Active(time.Now()))
}

func TestRouter_CatchAll404(t *testing.T) {
	router := newAPIRouter(loginServer())

	req := httptest.NewRequest("GET", "/api/unbekannt/pfad", nil)
	req.AddCookie(validAuthCookie())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "Not Found", rr.Body.String())
}

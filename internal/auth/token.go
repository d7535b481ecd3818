// Package auth implements the shared-secret session credential. The token is
// a single value derived from the configured password and is identical for
// every session: any holder of the cookie can act as any session. That is a
// deliberate property of the two-seat deployment this service is built for,
// not an oversight.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
)

const (
	CookieName = "auth"

	// CookieMaxAge matches the session timeout of the gate (30 minutes).
	CookieMaxAge = 1800
)

// SessionToken derives the opaque credential from the shared password. The
// derivation is deterministic so that validation can compare for equality.
func SessionToken(password string) string {
	mac := hmac.New(sha256.New, []byte(password))
	mac.Write([]byte("anlagen-register-session-v1"))
	return hex.EncodeToString(mac.Sum(nil))
}

// SessionCookie builds the credential cookie delivered on successful login.
func SessionCookie(password string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    SessionToken(password),
		Path:     "/",
		MaxAge:   CookieMaxAge,
		HttpOnly: true,
	}
}

// ValidRequest reports whether r carries the exact expected credential.
func ValidRequest(r *http.Request, password string) bool {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(cookie.Value), []byte(SessionToken(password)))
}

package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"anlagen-register/internal/auth"
	"anlagen-register/internal/session"
)

type LoginRequest struct {
	Password string `json:"password" example:"7715"`
}

// @Summary      Logs a client in
// @Description  Checks the shared password and, if a concurrency slot is free, issues the session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        loginRequest  body      LoginRequest  true  "Shared password"
// @Success      200           {object}  SuccessResponse
// @Failure      400           {object}  ErrorResponse "Invalid request body"
// @Failure      401           {object}  ErrorResponse "Falsches Passwort"
// @Failure      429           {object}  ErrorResponse "Session cap reached"
// @Router       /login [post]
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Password first: a failed credential check never consumes a slot.
	if req.Password != s.config.Auth.Password {
		writeError(w, http.StatusUnauthorized, "Falsches Passwort")
		return
	}

	identity := session.ResolveIdentity(r)
	if !s.gate.Login(identity, time.Now()) {
		msg := fmt.Sprintf(
			"Maximale Anzahl gleichzeitiger Benutzer erreicht (%d). Bitte versuchen Sie es später erneut.",
			s.config.Auth.MaxSessions,
		)
		writeError(w, http.StatusTooManyRequests, msg)
		return
	}

	http.SetCookie(w, auth.SessionCookie(s.config.Auth.Password))
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

package api

import (
	"encoding/json"
	"net/http"

	"anlagen-register/internal/config"
	"anlagen-register/internal/database"
	"anlagen-register/internal/session"
	"anlagen-register/internal/websocket"

	"github.com/google/uuid"
)

type Server struct {
	config     *config.Config
	store      *database.Store
	gate       *session.Gate
	wsHub      *websocket.Hub
	instanceID string
}

func NewServer(cfg *config.Config, store *database.Store, gate *session.Gate, wsHub *websocket.Hub) *Server {
	return &Server{
		config:     cfg,
		store:      store,
		gate:       gate,
		wsHub:      wsHub,
		instanceID: uuid.NewString(),
	}
}

// @Summary      Liveness check
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (s *Server) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if err := s.store.GetPool().Ping(r.Context()); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"status":   status,
		"instance": s.instanceID,
	})
}

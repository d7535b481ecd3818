package api

import (
	"encoding/json"
	"log"
	"net/http"

	"anlagen-register/internal/websocket"

	"github.com/jaevor/go-nanoid"
)

type ChangeEvent struct {
	Type string `json:"type"`
	ID   int64  `json:"id"`
}

// publishEvent notifies connected clients that a record changed so open list
// views can refresh. No-op when the hub is not wired (tests).
func (s *Server) publishEvent(eventType string, id int64) {
	if s.wsHub == nil {
		return
	}
	data, err := json.Marshal(ChangeEvent{Type: eventType, ID: id})
	if err != nil {
		log.Printf("ERROR: marshal change event: %v", err)
		return
	}
	s.wsHub.Broadcast(data)
}

// ServeWsHandler upgrades an authenticated connection to the change-event
// stream. It sits behind AuthMiddleware, so the credential is already
// checked.
func (s *Server) ServeWsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	generateID, err := nanoid.Standard(21)
	if err != nil {
		log.Printf("ERROR: failed to initialize nanoid generator: %v", err)
		conn.Close()
		return
	}

	client := websocket.NewClient(s.wsHub, conn, generateID())
	s.wsHub.Register <- client

	go client.ReadPump()
	go client.WritePump()
}

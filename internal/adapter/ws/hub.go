// Package ws pushes domain events to board subscribers over websockets.
package ws

import (
	"encoding/json"

	"go.uber.org/zap"

	"planboard/internal/core/domain"
	"planboard/internal/core/ports"
)

type envelope struct {
	boardID string
	payload []byte
}

// Hub maintains the set of connected clients and fans domain events out to
// the subscribers of the event's board.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan envelope
	register   chan *Client
	unregister chan *Client
}

var _ ports.EventPublisher = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan envelope, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Publish implements ports.EventPublisher. Marshalling failures are logged
// and dropped; live updates are best-effort.
func (h *Hub) Publish(event domain.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		zap.L().Warn("failed to marshal event", zap.String("type", string(event.Type)), zap.Error(err))
		return
	}
	h.broadcast <- envelope{boardID: event.BoardID, payload: payload}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Run is the hub's main loop; start it once from main.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			zap.L().Debug("subscriber connected", zap.String("board_id", client.boardID))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				zap.L().Debug("subscriber disconnected", zap.String("board_id", client.boardID))
			}
		case msg := <-h.broadcast:
			for client := range h.clients {
				if client.boardID != msg.boardID {
					continue
				}
				select {
				case client.send <- msg.payload:
				default:
					// Send buffer full, assume the client is gone.
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

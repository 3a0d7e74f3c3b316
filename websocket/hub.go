package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// Client is a connected admin panel session.
type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// LeadEvent is pushed to every connected admin whenever a new lead arrives.
type LeadEvent struct {
	Kind      string    `json:"kind"` // enrollment | application | contact
	LeadID    uuid.UUID `json:"lead_id"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan LeadEvent, 16)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Admin client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Admin client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case event := <-Broadcast:
			var stale []uuid.UUID

			clientsMu.RLock()
			for userID, conn := range clients {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error sending lead event to client %s: %v", userID, err)
					conn.Close()
					stale = append(stale, userID)
				}
			}
			clientsMu.RUnlock()

			if len(stale) > 0 {
				clientsMu.Lock()
				for _, userID := range stale {
					delete(clients, userID)
				}
				clientsMu.Unlock()
			}
		}
	}
}

// NotifyLead fans a lead event out without blocking the submitting request;
// the event is dropped when the hub buffer is full.
func NotifyLead(kind string, leadID uuid.UUID, summary string) {
	event := LeadEvent{
		Kind:      kind,
		LeadID:    leadID,
		Summary:   summary,
		CreatedAt: time.Now(),
	}
	select {
	case Broadcast <- event:
	default:
		log.Println("⚠️ Lead event buffer full, dropping websocket notification")
	}
}

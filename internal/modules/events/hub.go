package events

import (
	"sync"
	"time"

	"hotelpms/internal/domain"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// BookingEvent is pushed to every connected front-desk client whenever a
// booking changes status, so open dashboards refresh without polling.
type BookingEvent struct {
	Type          string               `json:"type"`
	BookingID     int64                `json:"booking_id"`
	ReferenceCode string               `json:"reference_code"`
	Status        domain.BookingStatus `json:"status"`
	At            time.Time            `json:"at"`
}

type Hub struct {
	connections map[int64]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[userID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[userID] = conn
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[userID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, userID)
	}
}

// PublishStatus broadcasts a status change to every connected client.
// A write failure drops that client; the broadcast continues.
func (h *Hub) PublishStatus(bookingID int64, ref string, status domain.BookingStatus) {
	event := BookingEvent{
		Type:          "booking_status",
		BookingID:     bookingID,
		ReferenceCode: ref,
		Status:        status,
		At:            time.Now(),
	}

	h.mutex.RLock()
	conns := make(map[int64]*websocket.Conn, len(h.connections))
	for id, conn := range h.connections {
		conns[id] = conn
	}
	h.mutex.RUnlock()

	for userID, conn := range conns {
		if conn == nil {
			continue
		}
		if err := conn.WriteJSON(event); err != nil {
			log.Debug().Int64("user_id", userID).Err(err).Msg("dropping dead websocket client")
			h.Unregister(userID)
		}
	}
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, userID)
	}
}

package kds

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/yeremiapane/restaurant-order-panel/models"
	"github.com/yeremiapane/restaurant-order-panel/utils"
)

// Event types
const (
	EventOrderUpdate = "order_update"
	EventBoardUpdate = "kitchen_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds the kitchen display clients. The board broadcasts its
// snapshot here after every successful refresh; browsers that prefer
// polling can keep hitting the REST endpoint instead.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]string),
	}
}

// RegisterClient adds a connection with its role.
func (h *Hub) RegisterClient(conn *websocket.Conn, role string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = role
}

// UnregisterClient releases a connection.
func (h *Hub) UnregisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// BroadcastOrderUpdate pushes one changed order to every client.
func (h *Hub) BroadcastOrderUpdate(order models.Order) {
	h.broadcast(Message{
		Event: EventOrderUpdate,
		Data:  order,
	})
}

// BroadcastBoardUpdate pushes the full board snapshot.
func (h *Hub) BroadcastBoardUpdate(orders []models.Order) {
	h.broadcast(Message{
		Event: EventBoardUpdate,
		Data:  orders,
	})
}

func (h *Hub) broadcast(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshalling kds message: %v", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			// Dead connection, drop it.
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

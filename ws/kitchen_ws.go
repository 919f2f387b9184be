package ws

import (
	"log"
	"net/http"
	"sync"

	"backend/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// KitchenHub pushes order lifecycle events to the KDS and ops screens. Every
// connected client gets every event; screens filter on their side (the kitchen
// ignores out_for_delivery, the counter ignores preparing, etc).
type KitchenHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

// OrderEvent mirrors the realtime table-change feed the screens subscribe to.
type OrderEvent struct {
	Type  string        `json:"type"` // order_created / order_updated
	Order *entity.Order `json:"order"`
}

func NewKitchenHub() *KitchenHub {
	return &KitchenHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *KitchenHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// services.OrderEvents implementation

func (h *KitchenHub) OrderCreated(o *entity.Order) {
	h.broadcast <- OrderEvent{Type: "order_created", Order: o}
}

func (h *KitchenHub) OrderStatusChanged(o *entity.Order) {
	h.broadcast <- OrderEvent{Type: "order_updated", Order: o}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/kitchen
func (h *KitchenHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn
	go h.listen(conn)
}

// listen drains client frames; the feed is one-way, reads only detect closes.
func (h *KitchenHub) listen(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/jesh-analyst/campus-eats-hub/entity"
)

// OrderEvent is what canteen dashboards receive whenever an order is
// created or changes status/payment.
type OrderEvent struct {
	Event string       `json:"event"`
	Order entity.Order `json:"order"`
}

// OrderHub fans order events out to every connected canteen client.
// There is one canteen, so one room: all staff share the feed.
type OrderHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Run loops over register/unregister/broadcast. Start it once, in its
// own goroutine, before serving traffic.
func (h *OrderHub) Run() {
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

// Publish implements services.Publisher. The send is non-blocking so a
// slow feed can never stall a checkout.
func (h *OrderHub) Publish(event string, o entity.Order) {
	select {
	case h.broadcast <- OrderEvent{Event: event, Order: o}:
	default:
		log.Printf("ws feed full, dropping %s for %s", event, o.ID)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket upgrades a canteen client onto the feed. Role checks
// already happened in the ws auth middleware; clients only listen, the
// read loop just detects the close.
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn
	go h.drain(conn)
}

func (h *OrderHub) drain(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// OrderHub pushes order reminders to connected merchant consoles.
type OrderHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan Reminder
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
	log        *logrus.Logger
}

const (
	ReminderNewOrder = 1 // order paid, waiting for the merchant to confirm
	ReminderCancel   = 2 // paid order cancelled by the customer
)

type Reminder struct {
	Type        int       `json:"type"`
	OrderID     uint      `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	At          time.Time `json:"at"`
}

func NewOrderHub(log *logrus.Logger) *OrderHub {
	return &OrderHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan Reminder, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		log:        log,
	}
}

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

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(msg); err != nil {
					h.log.WithError(err).Warn("ws write failed")
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Notify is best effort: when no merchant console is listening the reminder
// is dropped, never blocking the caller.
func (h *OrderHub) Notify(reminderType int, orderID uint, orderNumber string) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- Reminder{Type: reminderType, OrderID: orderID, OrderNumber: orderNumber, At: time.Now()}:
	default:
		h.log.WithField("orderId", orderID).Warn("reminder channel full, dropping")
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Serve upgrades GET /ws/admin for a merchant console.
func (h *OrderHub) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).Warn("ws upgrade failed")
		return
	}
	h.register <- conn

	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

package realtime

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// EventOrderPlaced is pushed to a customer right after their order commits.
const EventOrderPlaced = "order.placed"

// Hub tracks one live websocket per customer.
type Hub struct {
	mu         sync.RWMutex
	byCustomer map[uint]*wsConn
	log        zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{byCustomer: make(map[uint]*wsConn), log: log}
}

// wsConn wraps a websocket connection with a write mutex to serialize writes.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (h *Hub) RegisterCustomer(customerID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.byCustomer[customerID]; ok {
		old.conn.Close()
	}
	h.byCustomer[customerID] = &wsConn{conn: conn}
}

func (h *Hub) UnregisterCustomer(customerID uint) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.byCustomer[customerID]; ok {
		c.conn.Close()
		delete(h.byCustomer, customerID)
	}
}

// NotifyCustomer sends an event to the customer if connected. A customer
// without an open socket just misses the event.
func (h *Hub) NotifyCustomer(customerID uint, event string, payload any) error {
	h.mu.RLock()
	wc, ok := h.byCustomer[customerID]
	h.mu.RUnlock()
	if !ok {
		return nil
	}
	msg := map[string]any{"event": event, "data": payload}
	wc.mu.Lock()
	defer wc.mu.Unlock()
	if err := wc.conn.WriteJSON(msg); err != nil {
		h.log.Warn().Uint("customer_id", customerID).Str("event", event).Err(err).Msg("ws write failed")
		return err
	}
	return nil
}

// OrderPlacedPayload is sent to the customer who placed the order.
type OrderPlacedPayload struct {
	OrderID uint   `json:"order_id"`
	Code    string `json:"code"`
	Total   string `json:"total"`
	Status  string `json:"status"`
}

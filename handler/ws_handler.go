package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/mikios34/kpopshop-backend/middleware"
	"github.com/mikios34/kpopshop-backend/realtime"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type WSHandler struct {
	hub *realtime.Hub
}

func NewWSHandler(hub *realtime.Hub) *WSHandler { return &WSHandler{hub: hub} }

// OrderSocket upgrades to WS and registers the customer connection. The
// socket only pushes; inbound frames are drained until the peer closes.
func (h *WSHandler) OrderSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := middleware.CurrentCustomerID(c)
		if customerID == 0 {
			c.JSON(http.StatusForbidden, gin.H{"error": "customer_id missing in context"})
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		h.hub.RegisterCustomer(customerID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.hub.UnregisterCustomer(customerID)
				break
			}
		}
	}
}

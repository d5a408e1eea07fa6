package controllers

import (
	"net/http"

	"github.com/crpmlabs/crpm-app/events"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // internal dashboard, same-origin deployment
	},
}

// DashboardEventsHandler -> WebSocket endpoint feeding live entity
// change events to open dashboard sessions
func DashboardEventsHandler(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	events.RegisterClient(ws)

	// Clients only listen; drain until disconnect
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	events.UnregisterClient(ws)
}

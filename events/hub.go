package events

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/crpmlabs/crpm-app/models"
	"github.com/gorilla/websocket"
)

// Event types pushed to open dashboard sessions
const (
	EventCustomerCreated = "customer_created"
	EventCustomerStatus  = "customer_status_changed"
	EventProductCreated  = "product_created"
	EventPurchaseCreated = "purchase_recorded"
	EventRevenueUpdate   = "revenue_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds every connected dashboard client.
type Hub struct {
	clients map[*websocket.Conn]bool
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]bool),
}

// RegisterClient -> adds a connection to the set
func RegisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = true
}

// UnregisterClient -> removes and closes a connection
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastCustomerCreated -> a new customer row exists
func BroadcastCustomerCreated(customer models.Customer) {
	broadcast(Message{
		Event: EventCustomerCreated,
		Data:  customer,
	})
}

// BroadcastCustomerStatus -> a customer was activated or deactivated
func BroadcastCustomerStatus(customer models.Customer) {
	broadcast(Message{
		Event: EventCustomerStatus,
		Data:  customer,
	})
}

// BroadcastProductCreated -> a new product row exists
func BroadcastProductCreated(product models.Product) {
	broadcast(Message{
		Event: EventProductCreated,
		Data:  product,
	})
}

// BroadcastPurchaseCreated -> a purchase was recorded; revenue charts
// should refresh
func BroadcastPurchaseCreated(purchase models.Purchase) {
	broadcast(Message{
		Event: EventPurchaseCreated,
		Data:  purchase,
	})
	broadcast(Message{
		Event: EventRevenueUpdate,
		Data:  nil,
	})
}

// writeWait bounds how long one stalled client can hold up a broadcast
const writeWait = 5 * time.Second

// broadcast delivers best effort; a client whose write fails or times
// out is dropped from the hub so it cannot stall later broadcasts.
func broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	for conn := range hub.clients {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Error sending message to client: %v", err)
			delete(hub.clients, conn)
			conn.Close()
		}
	}
}

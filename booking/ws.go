package booking

import (
	"encoding/json"
	"net/http"
	"sync"

	"eventify/models"
	"eventify/utils"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins; adjust for production if needed
		return true
	},
}

var (
	subscribers = make(map[string][]*websocket.Conn)
	mu          sync.Mutex
)

// HandleWS streams booking updates for the authenticated organizer's own
// dashboard. Bookings carry customer details, so the feed is scoped by the
// token, never by a caller-supplied id. The connection stays open until the
// client disconnects.
func HandleWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	organizerID := utils.GetUserIDFromRequest(r)
	if organizerID == "" {
		http.Error(w, "Invalid user", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "WebSocket upgrade failed", http.StatusBadRequest)
		return
	}

	mu.Lock()
	subscribers[organizerID] = append(subscribers[organizerID], conn)
	mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	mu.Lock()
	conns := subscribers[organizerID]
	for i, c := range conns {
		if c == conn {
			subscribers[organizerID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	mu.Unlock()
	conn.Close()
}

type wsMessage struct {
	Type    string          `json:"type"`
	Booking *models.Booking `json:"booking"`
}

// broadcastBookingUpdate pushes a booking change to the owning organizer's
// open dashboard connections. Best-effort; dead connections are dropped on
// their next read.
func broadcastBookingUpdate(organizerID string, b *models.Booking) {
	data, err := json.Marshal(wsMessage{Type: "booking-update", Booking: b})
	if err != nil {
		return
	}

	mu.Lock()
	defer mu.Unlock()
	for _, conn := range subscribers[organizerID] {
		_ = conn.WriteMessage(websocket.TextMessage, data)
	}
}

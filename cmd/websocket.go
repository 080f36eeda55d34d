package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Vivek212004/bake-cart-manager/internal/models"
)

const (
	readLimit     = 1 << 20
	readDeadline  = 120 * time.Second
	writeDeadline = 5 * time.Second
	pingInterval  = 15 * time.Second
)

type Client struct {
	ID     int
	Role   string
	Socket *websocket.Conn
}

type unreg struct {
	userID int
	conn   *websocket.Conn
}

// WebSocketManager fans order events out to connected dashboards. Admin and
// delivery connections see every event; a customer only sees their own orders.
type WebSocketManager struct {
	clients    map[int]Client
	register   chan Client
	unregister chan unreg
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[int]Client),
		register:   make(chan Client),
		unregister: make(chan unreg),
	}
}

// All operations on clients happen here.
func (ws *WebSocketManager) Run(events <-chan models.OrderEvent) {
	for {
		select {
		case client := <-ws.register:
			// a reconnect replaces the old socket
			if old, ok := ws.clients[client.ID]; ok && old.Socket != nil && old.Socket != client.Socket {
				_ = old.Socket.Close()
			}
			ws.clients[client.ID] = client
			log.Printf("WS register user=%d role=%s", client.ID, client.Role)

		case u := <-ws.unregister:
			if cur, ok := ws.clients[u.userID]; ok && cur.Socket == u.conn {
				_ = cur.Socket.Close()
				delete(ws.clients, u.userID)
				log.Printf("WS unregister user=%d", u.userID)
			}

		case event := <-events:
			for id, client := range ws.clients {
				if client.Role == models.RoleCustomer && id != event.UserID {
					continue
				}
				_ = client.Socket.SetWriteDeadline(time.Now().Add(writeDeadline))
				if err := client.Socket.WriteJSON(event); err != nil {
					log.Printf("WS send error to=%d: %v", id, err)
					_ = client.Socket.Close()
					delete(ws.clients, id)
				}
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin:       func(r *http.Request) bool { return true },
	ReadBufferSize:    1024,
	WriteBufferSize:   1024,
	EnableCompression: true,
}

// OrderFeedHandler upgrades an authenticated request into a live order feed.
// Identity comes from the JWT middleware, not from the client.
func (app *application) OrderFeedHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	role, _ := r.Context().Value("role").(string)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	conn.SetReadLimit(readLimit)
	conn.SetReadDeadline(time.Now().Add(readDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	app.wsManager.register <- Client{ID: userID, Role: role, Socket: conn}

	go pingLoop(app.wsManager, conn, userID)
	go drainFeed(conn, userID, app.wsManager)
}

func pingLoop(ws *WebSocketManager, conn *websocket.Conn, uid int) {
	t := time.NewTicker(pingInterval)
	defer t.Stop()
	for range t.C {
		_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			_ = writeClose(conn, websocket.CloseGoingAway, "ping error")
			ws.unregister <- unreg{userID: uid, conn: conn}
			return
		}
	}
}

// drainFeed keeps the read side alive for control frames. The feed is one
// way, so any data frame from the client is ignored.
func drainFeed(conn *websocket.Conn, userID int, wsManager *WebSocketManager) {
	defer func() {
		wsManager.unregister <- unreg{userID: userID, conn: conn}
		_ = conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writeClose(conn *websocket.Conn, code int, reason string) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	return conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(writeDeadline),
	)
}

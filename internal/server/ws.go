package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/jakovjj/tycooner/internal/sim"
	"github.com/jakovjj/tycooner/internal/state"
)

// WSMessage is the envelope for all pushed frames.
type WSMessage struct {
	Type    string `json:"type"` // "state", "tick"
	Payload any    `json:"payload"`
}

// Client is one connected browser session.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub maintains the set of active clients and fans game updates out to
// them. Slow clients are dropped rather than blocking the tick path.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	logger *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// BroadcastState pushes a full snapshot frame to every client.
func (h *Hub) BroadcastState(s state.GameState) {
	h.send(WSMessage{Type: "state", Payload: s})
}

// BroadcastTick pushes the post-tick summary and report.
func (h *Hub) BroadcastTick(s state.GameState, rep sim.Report) {
	h.send(WSMessage{Type: "tick", Payload: map[string]any{
		"summary": summarize(s),
		"report":  rep,
	}})
}

func (h *Hub) send(msg WSMessage) {
	b, err := json.Marshal(msg)
	if err != nil {
		h.logger.Printf("ws marshal failed: %v", err)
		return
	}
	select {
	case h.broadcast <- b:
	default:
		h.logger.Print("ws broadcast buffer full, frame dropped")
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// RegisterWS mounts the websocket endpoint. Every new client immediately
// receives the current snapshot.
func RegisterWS(mux *http.ServeMux, app *App) {
	mux.HandleFunc("GET /ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			app.Hub.logger.Printf("ws upgrade failed: %v", err)
			return
		}
		client := &Client{hub: app.Hub, conn: conn, send: make(chan []byte, 256)}
		client.hub.register <- client

		go client.writePump()
		go client.readPump()

		app.broadcastState(app.Store.Get())
	})
}

// readPump drains the connection so pings and closes are processed. The
// client never drives game actions over the socket, the REST API does.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

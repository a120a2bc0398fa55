package live

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"lagoon/mq"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// Client is one open viewer of a shared trip page.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
	Room string
}

type broadcastMsg struct {
	Room string
	Data []byte
}

// Hub fans trip-change notifications out to every viewer of that trip. One
// room per trip short id.
type Hub struct {
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	done       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.mu.Lock()
			for room, conns := range h.rooms {
				for c := range conns {
					close(c.Send)
				}
				delete(h.rooms, room)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.Room] == nil {
				h.rooms[c.Room] = make(map[*Client]bool)
			}
			h.rooms[c.Room][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if conns := h.rooms[c.Room]; conns != nil {
				delete(conns, c)
				close(c.Send)
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for c := range h.rooms[m.Room] {
				select {
				case c.Send <- m.Data:
				default:
					close(c.Send)
					delete(h.rooms[m.Room], c)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// notification is what viewers receive when a trip changes.
type notification struct {
	Action    string `json:"action"` // refresh/deleted
	ShortID   string `json:"short_id"`
	Timestamp int64  `json:"timestamp"`
}

// NotifyTripEvent translates an mq trip event into a room broadcast. Wired
// as the handler for mq.StartTripEventWorker.
func (h *Hub) NotifyTripEvent(event mq.TripEvent) {
	action := "refresh"
	if event.Event == "trip-deleted" {
		action = "deleted"
	}
	out := notification{
		Action:    action,
		ShortID:   event.ShortID,
		Timestamp: time.Now().Unix(),
	}
	data, err := json.Marshal(out)
	if err != nil {
		return
	}
	// A stopped hub no longer drains broadcast; drop the event instead of
	// blocking the caller forever.
	select {
	case h.broadcast <- broadcastMsg{Room: event.ShortID, Data: data}:
	case <-h.done:
	}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// WebSocketHandler upgrades a viewer connection and parks it in the trip's
// room until the socket closes. Viewers only listen; mutations arrive over
// the regular REST endpoints.
func WebSocketHandler(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		room := ps.ByName("shortid")

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}
		client := &Client{
			Conn: conn,
			Send: make(chan []byte, 256),
			Room: room,
		}

		hub.register <- client
		go writePump(client)
		go readPump(client, hub)
	}
}

func writePump(c *Client) {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

func readPump(c *Client, hub *Hub) {
	defer func() {
		hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

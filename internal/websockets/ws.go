package websockets

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/9910597111/BlindSketch/internal"
	"github.com/9910597111/BlindSketch/internal/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// client is one websocket connection. The mutex serializes writes; gorilla
// connections do not allow concurrent writers.
type client struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// Hub owns every live connection and the room delivery groups, and
// implements the engine's BroadcastGateway. Inbound messages are routed to
// the registry; the per-connection id doubles as the participant id.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client
	groups  map[string]map[string]struct{}

	registry *game.Registry
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*client),
		groups:  make(map[string]map[string]struct{}),
	}
}

// Bind attaches the registry. The hub is constructed first because the
// registry needs it as its gateway.
func (h *Hub) Bind(reg *game.Registry) {
	h.registry = reg
}

// ConnectionCount reports live connections, for the health endpoint.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ---------------------------------------------------------------------------
// BroadcastGateway
// ---------------------------------------------------------------------------

func (h *Hub) Join(roomID, participantID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	group, ok := h.groups[roomID]
	if !ok {
		group = make(map[string]struct{})
		h.groups[roomID] = group
	}
	group[participantID] = struct{}{}
}

func (h *Hub) Leave(roomID, participantID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if group, ok := h.groups[roomID]; ok {
		delete(group, participantID)
		if len(group) == 0 {
			delete(h.groups, roomID)
		}
	}
}

func (h *Hub) ToParticipant(participantID, event string, payload any) {
	h.mu.RLock()
	c := h.clients[participantID]
	h.mu.RUnlock()
	if c == nil {
		return
	}
	if err := c.writeJSON(internal.Message[any]{Type: event, Data: payload}); err != nil {
		log.Printf("[ToParticipant] write to %s failed: %v", participantID, err)
	}
}

func (h *Hub) ToRoom(roomID, event string, payload any) {
	h.mu.RLock()
	members := make([]*client, 0, len(h.groups[roomID]))
	for id := range h.groups[roomID] {
		if c := h.clients[id]; c != nil {
			members = append(members, c)
		}
	}
	h.mu.RUnlock()

	msg := internal.Message[any]{Type: event, Data: payload}
	for _, c := range members {
		if err := c.writeJSON(msg); err != nil {
			log.Printf("[ToRoom] room=%s write to %s failed: %v", roomID, c.id, err)
		}
	}
}

// ---------------------------------------------------------------------------
// Connection handling
// ---------------------------------------------------------------------------

// HandleWebSocket upgrades the connection, assigns the participant id and
// runs the read loop until the connection drops.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("[HandleWebSocket] upgrade failed:", err)
		return
	}

	c := &client{id: uuid.NewString(), conn: conn}
	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()

	log.Printf("[HandleWebSocket] connected: %s", c.id)
	go h.readLoop(c)
}

func (h *Hub) readLoop(c *client) {
	defer func() {
		c.conn.Close()
		h.disconnect(c)
	}()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			log.Printf("[readLoop] %s: read error: %v", c.id, err)
			return
		}

		var msg internal.Message[json.RawMessage]
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Printf("[readLoop] %s: bad envelope: %v", c.id, err)
			continue
		}
		h.route(c, msg.Type, msg.Data)
	}
}

// route dispatches one inbound action. Every rejection is reported back to
// the caller as a single error event; room state is untouched.
func (h *Hub) route(c *client, action string, data json.RawMessage) {
	switch action {
	case internal.ActionCreateRoom:
		var payload internal.CreateRoomData
		if err := json.Unmarshal(data, &payload); err != nil {
			h.sendError(c.id, err)
			return
		}
		settings := internal.DefaultSettings()
		if payload.Settings != nil {
			settings = *payload.Settings
		}
		room := h.registry.Create(settings)
		if err := room.Join(internal.Player{ID: c.id, Name: playerName(payload.PlayerName)}); err != nil {
			h.sendError(c.id, err)
		}

	case internal.ActionJoinRoom:
		var payload internal.JoinRoomData
		if err := json.Unmarshal(data, &payload); err != nil {
			h.sendError(c.id, err)
			return
		}
		room, err := h.registry.Get(payload.RoomID)
		if err != nil {
			h.sendError(c.id, err)
			return
		}
		if err := room.Join(internal.Player{ID: c.id, Name: playerName(payload.PlayerName)}); err != nil {
			h.sendError(c.id, err)
		}

	case internal.ActionStartGame:
		h.withRoom(c, h.registry.FindByHost, func(room *game.Room) error {
			return room.Start(c.id)
		})

	case internal.ActionSelectWord:
		var payload internal.SelectWordData
		if err := json.Unmarshal(data, &payload); err != nil {
			h.sendError(c.id, err)
			return
		}
		h.withRoom(c, h.registry.FindByDrawer, func(room *game.Room) error {
			return room.SelectWord(c.id, payload.Word)
		})

	case internal.ActionDraw:
		h.withRoom(c, h.registry.FindByParticipant, func(room *game.Room) error {
			return room.Draw(c.id, internal.Stroke(data))
		})

	case internal.ActionChatMessage:
		var payload internal.ChatMessageData
		if err := json.Unmarshal(data, &payload); err != nil {
			h.sendError(c.id, err)
			return
		}
		h.withRoom(c, h.registry.FindByParticipant, func(room *game.Room) error {
			return room.Chat(c.id, payload.Message)
		})

	case internal.ActionPlayAgain:
		h.withRoom(c, h.registry.FindByHost, func(room *game.Room) error {
			return room.PlayAgain(c.id)
		})

	default:
		log.Printf("[route] %s: unknown action %q", c.id, action)
	}
}

func (h *Hub) withRoom(c *client, find func(string) (*game.Room, error), fn func(*game.Room) error) {
	room, err := find(c.id)
	if err != nil {
		h.sendError(c.id, err)
		return
	}
	if err := fn(room); err != nil {
		h.sendError(c.id, err)
	}
}

func (h *Hub) disconnect(c *client) {
	if room, err := h.registry.FindByParticipant(c.id); err == nil {
		if empty := room.Leave(c.id); empty {
			h.registry.Delete(room.ID)
		}
	} else if !errors.Is(err, internal.ErrRoomNotFound) {
		log.Printf("[disconnect] %s: lookup failed: %v", c.id, err)
	}

	h.mu.Lock()
	delete(h.clients, c.id)
	h.mu.Unlock()
	log.Printf("[disconnect] %s: connection closed", c.id)
}

func (h *Hub) sendError(participantID string, err error) {
	h.ToParticipant(participantID, internal.EventError, internal.ErrorData{Message: err.Error()})
}

func playerName(name string) string {
	if name == "" {
		return "Anonymous"
	}
	return name
}

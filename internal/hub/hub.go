package hub

import "sync"

// Client represents a single connected chat client. It's essentially a
// channel that the websocket write loop listens to.
type Client chan []byte

// Hub manages all active chat rooms and their clients. Rooms are keyed by
// the derived room name and are independent of each other.
type Hub struct {
	rooms map[string]map[Client]bool
	mu    sync.RWMutex
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[Client]bool),
	}
}

// Subscribe adds a new client to a room.
func (h *Hub) Subscribe(room string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[room]; !ok {
		h.rooms[room] = make(map[Client]bool)
	}
	h.rooms[room][client] = true
}

// Unsubscribe removes a client from a room and closes its channel. Empty
// rooms are dropped entirely.
func (h *Hub) Unsubscribe(room string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.rooms[room]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client)
			if len(clients) == 0 {
				delete(h.rooms, room)
			}
		}
	}
}

// Broadcast sends a payload to every client in a room, including all of the
// sender's own connections.
func (h *Hub) Broadcast(room string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[room] {
		// Use a non-blocking send to prevent a slow client from blocking the hub.
		select {
		case client <- payload:
		default:
			// Client channel is full, maybe they are disconnected or slow.
			// The unsubscribe logic will handle cleaning this up eventually.
		}
	}
}

// RoomSize reports the number of clients currently in a room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

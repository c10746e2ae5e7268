package game

import (
	"log"
	"sync"

	"github.com/9910597111/BlindSketch/internal"
	"github.com/9910597111/BlindSketch/internal/utils"
	"github.com/9910597111/BlindSketch/internal/words"
)

// Registry is the process-wide directory of active rooms. It is constructed
// once and injected into the transport layer; there is no package-level room
// map. Rooms are independent of each other, the registry lock only guards
// the directory itself.
type Registry struct {
	mu      sync.RWMutex
	rooms   map[string]*Room
	gateway BroadcastGateway
	pool    *words.Pool
}

func NewRegistry(gw BroadcastGateway, pool *words.Pool) *Registry {
	return &Registry{
		rooms:   make(map[string]*Room),
		gateway: gw,
		pool:    pool,
	}
}

// Create validates the settings and registers a new empty room in Lobby.
// Token collisions are rare but real; the id is regenerated under the write
// lock until free, so check-and-insert is atomic.
func (reg *Registry) Create(settings internal.Settings) *Room {
	settings = settings.Normalize()

	reg.mu.Lock()
	defer reg.mu.Unlock()

	id := utils.RoomToken()
	for _, taken := reg.rooms[id]; taken; _, taken = reg.rooms[id] {
		id = utils.RoomToken()
	}
	room := newRoom(id, settings, reg.gateway, reg.pool)
	reg.rooms[id] = room

	log.Printf("[Create] room=%s created, total rooms: %d", id, len(reg.rooms))
	return room
}

// Get looks a room up by id.
func (reg *Registry) Get(roomID string) (*Room, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	room, ok := reg.rooms[roomID]
	if !ok {
		return nil, internal.ErrRoomNotFound
	}
	return room, nil
}

// FindByHost returns the room the participant hosts.
func (reg *Registry) FindByHost(participantID string) (*Room, error) {
	return reg.find(func(r *Room) bool { return r.HostID() == participantID })
}

// FindByDrawer returns the room where the participant is the current drawer.
func (reg *Registry) FindByDrawer(participantID string) (*Room, error) {
	return reg.find(func(r *Room) bool { return r.DrawerID() == participantID })
}

// FindByParticipant returns the room the participant belongs to.
func (reg *Registry) FindByParticipant(participantID string) (*Room, error) {
	return reg.find(func(r *Room) bool { return r.HasParticipant(participantID) })
}

func (reg *Registry) find(match func(*Room) bool) (*Room, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	for _, room := range reg.rooms {
		if match(room) {
			return room, nil
		}
	}
	return nil, internal.ErrRoomNotFound
}

// Delete cancels the room's timers and removes it. Idempotent.
func (reg *Registry) Delete(roomID string) {
	reg.mu.Lock()
	room, ok := reg.rooms[roomID]
	if ok {
		delete(reg.rooms, roomID)
	}
	reg.mu.Unlock()

	if ok {
		room.Close()
		log.Printf("[Delete] room=%s removed", roomID)
	}
}

// Count returns the number of active rooms.
func (reg *Registry) Count() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}

package game

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/9910597111/BlindSketch/internal"
	"github.com/9910597111/BlindSketch/internal/words"
	"github.com/stretchr/testify/require"
)

// recordedEvent is one delivery captured by the fake gateway. Participant is
// empty for room-wide broadcasts.
type recordedEvent struct {
	Room        string
	Participant string
	Event       string
	Payload     any
}

// fakeGateway records everything the engine emits instead of delivering it.
type fakeGateway struct {
	mu     sync.Mutex
	events []recordedEvent
	joins  []string
	leaves []string
}

func (f *fakeGateway) Join(roomID, participantID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.joins = append(f.joins, roomID+"/"+participantID)
}

func (f *fakeGateway) Leave(roomID, participantID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.leaves = append(f.leaves, roomID+"/"+participantID)
}

func (f *fakeGateway) ToParticipant(participantID, event string, payload any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{Participant: participantID, Event: event, Payload: payload})
}

func (f *fakeGateway) ToRoom(roomID, event string, payload any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{Room: roomID, Event: event, Payload: payload})
}

// named returns every recorded event with the given name, oldest first.
func (f *fakeGateway) named(event string) []recordedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []recordedEvent
	for _, e := range f.events {
		if e.Event == event {
			out = append(out, e)
		}
	}
	return out
}

// lastNamed returns the most recent event with the given name, or false.
func (f *fakeGateway) lastNamed(event string) (recordedEvent, bool) {
	all := f.named(event)
	if len(all) == 0 {
		return recordedEvent{}, false
	}
	return all[len(all)-1], true
}

// newTestRoom builds a registry with a fake gateway and one room running on
// millisecond ticks so timer scenarios stay fast.
func newTestRoom(t *testing.T, settings internal.Settings) (*Registry, *Room, *fakeGateway) {
	t.Helper()
	gw := &fakeGateway{}
	reg := NewRegistry(gw, words.NewPool(words.Builtin()))
	room := reg.Create(settings)
	room.tick = time.Millisecond
	return reg, room, gw
}

// joinPlayers adds n players named p1..pn and returns their ids.
func joinPlayers(t *testing.T, room *Room, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("p%d", i)
		require.NoError(t, room.Join(internal.Player{ID: id, Name: "Player " + id}))
		ids = append(ids, id)
	}
	return ids
}

// selectFirstChoice has the current drawer pick the first offered candidate
// and returns the chosen word.
func selectFirstChoice(t *testing.T, room *Room, gw *fakeGateway, drawer string) string {
	t.Helper()
	var choice string
	require.Eventually(t, func() bool {
		all := gw.named(internal.EventWordChoices)
		for i := len(all) - 1; i >= 0; i-- {
			if all[i].Participant == drawer {
				choices := all[i].Payload.([]string)
				require.NotEmpty(t, choices)
				choice = choices[0]
				return true
			}
		}
		return false
	}, time.Second, time.Millisecond, "drawer %s never received word choices", drawer)

	require.NoError(t, room.SelectWord(drawer, choice))
	return choice
}

package game

import (
	"regexp"
	"testing"

	"github.com/9910597111/BlindSketch/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAppliesDefaults(t *testing.T) {
	_, room, _ := newTestRoom(t, internal.Settings{})

	assert.Equal(t, internal.DefaultMaxPlayers, room.Settings.MaxPlayers)
	assert.Equal(t, internal.DefaultRounds, room.Settings.Rounds)
	assert.Equal(t, internal.DefaultDrawTimeSeconds, room.Settings.DrawTimeSeconds)
	assert.Equal(t, internal.DefaultWordChoiceCount, room.Settings.WordChoiceCount)
	assert.Equal(t, internal.DefaultLetterHintCount, room.Settings.LetterHintCount)
	assert.Equal(t, internal.StateLobby, room.State())
	assert.Equal(t, 0, room.PlayerCount())
}

func TestCreateClampsOutOfRangeSettings(t *testing.T) {
	_, room, _ := newTestRoom(t, internal.Settings{
		MaxPlayers:      50,
		Rounds:          99,
		DrawTimeSeconds: 5,
		WordChoiceCount: 1,
		LetterHintCount: 42,
	})

	assert.Equal(t, internal.MaxMaxPlayers, room.Settings.MaxPlayers)
	assert.Equal(t, internal.MaxRounds, room.Settings.Rounds)
	assert.Equal(t, internal.MinDrawTimeSeconds, room.Settings.DrawTimeSeconds)
	assert.Equal(t, internal.MinWordChoiceCount, room.Settings.WordChoiceCount)
	assert.Equal(t, internal.MaxLetterHintCount, room.Settings.LetterHintCount)
}

func TestRoomIDFormat(t *testing.T) {
	_, room, _ := newTestRoom(t, internal.Settings{})
	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{8}$`), room.ID)
}

func TestGetUnknownRoom(t *testing.T) {
	reg, _, _ := newTestRoom(t, internal.Settings{})
	_, err := reg.Get("NOPE1234")
	assert.ErrorIs(t, err, internal.ErrRoomNotFound)
}

func TestFindByHostDrawerParticipant(t *testing.T) {
	reg, room, _ := newTestRoom(t, internal.Settings{})
	ids := joinPlayers(t, room, 2)

	found, err := reg.FindByHost(ids[0])
	require.NoError(t, err)
	assert.Same(t, room, found)

	_, err = reg.FindByHost(ids[1])
	assert.ErrorIs(t, err, internal.ErrRoomNotFound)

	found, err = reg.FindByParticipant(ids[1])
	require.NoError(t, err)
	assert.Same(t, room, found)

	_, err = reg.FindByDrawer(ids[0])
	assert.ErrorIs(t, err, internal.ErrRoomNotFound, "nobody draws before the game starts")

	require.NoError(t, room.Start(ids[0]))
	found, err = reg.FindByDrawer(room.DrawerID())
	require.NoError(t, err)
	assert.Same(t, room, found)
}

func TestDeleteIsIdempotent(t *testing.T) {
	reg, room, _ := newTestRoom(t, internal.Settings{})

	reg.Delete(room.ID)
	reg.Delete(room.ID)

	_, err := reg.Get(room.ID)
	assert.ErrorIs(t, err, internal.ErrRoomNotFound)
	assert.Equal(t, 0, reg.Count())
}

func TestTeardownOnLastDisconnect(t *testing.T) {
	reg, room, _ := newTestRoom(t, internal.Settings{})
	ids := joinPlayers(t, room, 2)

	assert.False(t, room.Leave(ids[0]))
	assert.True(t, room.Leave(ids[1]), "last departure must report the room empty")

	reg.Delete(room.ID)
	_, err := reg.Get(room.ID)
	assert.ErrorIs(t, err, internal.ErrRoomNotFound)
	_, err = reg.FindByParticipant(ids[0])
	assert.ErrorIs(t, err, internal.ErrRoomNotFound)
}

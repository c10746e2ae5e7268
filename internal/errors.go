package internal

import "errors"

// Recoverable rejection reasons. An action that fails with one of these
// leaves room state untouched; the caller gets a single error event back.
var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomFull         = errors.New("room is full")
	ErrNotHost          = errors.New("only the host can do that")
	ErrNotCurrentDrawer = errors.New("only the current drawer can do that")
	ErrInvalidState     = errors.New("action not allowed in the current game state")
	ErrNotEnoughPlayers = errors.New("not enough players to start")
)

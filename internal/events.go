package internal

import "encoding/json"

// Message is the wire envelope for both directions of the websocket.
type Message[T any] struct {
	Type string `json:"type"`
	Data T      `json:"data"`
}

// Inbound action names (participant -> core).
const (
	ActionCreateRoom  = "createRoom"
	ActionJoinRoom    = "joinRoom"
	ActionStartGame   = "startGame"
	ActionSelectWord  = "selectWord"
	ActionDraw        = "draw"
	ActionChatMessage = "chatMessage"
	ActionPlayAgain   = "playAgain"
)

// Outbound event names (core -> participants). These follow the client
// contract, so the existing frontend can drive this server unchanged.
const (
	EventRoomCreated    = "roomCreated"
	EventRoomJoined     = "roomJoined"
	EventRoomUpdate     = "roomUpdate"
	EventGameStarted    = "gameStarted"
	EventRoundStart     = "roundStart"
	EventWordChoices    = "wordChoices"
	EventWordSelected   = "wordSelected"
	EventDraw           = "draw"
	EventLetterRevealed = "letterRevealed"
	EventChatMessage    = "chatMessage"
	EventWordGuessed    = "wordGuessed"
	EventGameFinished   = "gameFinished"
	EventGameState      = "gameState"
	EventError          = "error"
)

// Stroke is an opaque draw event. The core stores and relays it without
// interpreting its contents.
type Stroke = json.RawMessage

// Inbound payloads.

type CreateRoomData struct {
	PlayerName string    `json:"playerName"`
	Settings   *Settings `json:"settings,omitempty"`
}

type JoinRoomData struct {
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
}

type SelectWordData struct {
	Word string `json:"word"`
}

type ChatMessageData struct {
	Message string `json:"message"`
}

// Outbound payloads.

type RoomCreatedData struct {
	RoomID string `json:"roomId"`
	IsHost bool   `json:"isHost"`
}

type RoomJoinedData struct {
	RoomID string `json:"roomId"`
	IsHost bool   `json:"isHost"`
}

type RoomUpdateData struct {
	Players  []Player  `json:"players"`
	Host     string    `json:"host"`
	Settings Settings  `json:"settings"`
	State    RoomState `json:"gameState"`
}

type RoundStartData struct {
	Drawer      string `json:"drawer"`
	Round       int    `json:"round"`
	TotalRounds int    `json:"totalRounds"`
}

type WordSelectedData struct {
	Word   string `json:"word"`
	Length int    `json:"length"`
}

type LetterRevealedData struct {
	Index  int    `json:"index"`
	Letter string `json:"letter"`
}

type ChatBroadcastData struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Message    string `json:"message"`
	IsCorrect  bool   `json:"isCorrect"`
}

type WordGuessedData struct {
	Winner string         `json:"winner"`
	Word   string         `json:"word"`
	Scores map[string]int `json:"scores"`
}

type GameFinishedData struct {
	Scores map[string]int `json:"scores"`
	Winner string         `json:"winner"`
}

// GameStateData is the catch-up snapshot sent to a participant joining a
// room whose game is already in progress.
type GameStateData struct {
	Drawer          string         `json:"currentDrawer"`
	MaskedWord      string         `json:"currentWord,omitempty"`
	Strokes         []Stroke       `json:"canvas"`
	Scores          map[string]int `json:"scores"`
	RevealedLetters []int          `json:"revealedLetters"`
	Round           int            `json:"round"`
	TotalRounds     int            `json:"totalRounds"`
}

type ErrorData struct {
	Message string `json:"message"`
}

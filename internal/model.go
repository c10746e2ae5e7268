package internal

type RoomState string

const (
	StateLobby    RoomState = "lobby"
	StateChoosing RoomState = "choosing"
	StatePlaying  RoomState = "playing"
	StateFinished RoomState = "finished"
)

// Settings bounds. Values outside these ranges are clamped at room creation,
// zero values get the default.
const (
	MinPlayersToStart = 2

	DefaultMaxPlayers = 6
	MinMaxPlayers     = 2
	MaxMaxPlayers     = 8

	DefaultRounds = 3
	MinRounds     = 1
	MaxRounds     = 10

	DefaultDrawTimeSeconds = 60
	MinDrawTimeSeconds     = 40
	MaxDrawTimeSeconds     = 90

	DefaultWordChoiceCount = 3
	MinWordChoiceCount     = 2
	MaxWordChoiceCount     = 5

	DefaultLetterHintCount = 2
	MaxLetterHintCount     = 5
)

// Settings is the immutable-after-creation configuration of a room. JSON
// field names match the client contract.
type Settings struct {
	MaxPlayers      int `json:"maxPlayers"`
	Rounds          int `json:"rounds"`
	DrawTimeSeconds int `json:"drawTime"`
	WordChoiceCount int `json:"wordChoices"`
	LetterHintCount int `json:"letterHints"`
}

// DefaultSettings returns the settings used when the creator sends none.
func DefaultSettings() Settings {
	return Settings{
		MaxPlayers:      DefaultMaxPlayers,
		Rounds:          DefaultRounds,
		DrawTimeSeconds: DefaultDrawTimeSeconds,
		WordChoiceCount: DefaultWordChoiceCount,
		LetterHintCount: DefaultLetterHintCount,
	}
}

// Normalize clamps every field independently to its documented range. A zero
// field means "not provided" and takes the default.
func (s Settings) Normalize() Settings {
	s.MaxPlayers = clampOrDefault(s.MaxPlayers, MinMaxPlayers, MaxMaxPlayers, DefaultMaxPlayers)
	s.Rounds = clampOrDefault(s.Rounds, MinRounds, MaxRounds, DefaultRounds)
	s.DrawTimeSeconds = clampOrDefault(s.DrawTimeSeconds, MinDrawTimeSeconds, MaxDrawTimeSeconds, DefaultDrawTimeSeconds)
	s.WordChoiceCount = clampOrDefault(s.WordChoiceCount, MinWordChoiceCount, MaxWordChoiceCount, DefaultWordChoiceCount)
	// LetterHintCount may legitimately be zero, so only clamp the upper bound.
	if s.LetterHintCount < 0 {
		s.LetterHintCount = 0
	} else if s.LetterHintCount > MaxLetterHintCount {
		s.LetterHintCount = MaxLetterHintCount
	}
	return s
}

func clampOrDefault(v, lo, hi, def int) int {
	if v == 0 {
		return def
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Player is one participant of a room. The id is the stable per-connection
// identifier assigned by the transport layer.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

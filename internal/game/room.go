package game

import (
	"log"
	"math/rand"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/9910597111/BlindSketch/internal"
	"github.com/9910597111/BlindSketch/internal/utils"
	"github.com/9910597111/BlindSketch/internal/words"
)

// graceTicks is the delay between a round ending and the next turn starting,
// giving clients time to show the reveal.
const graceTicks = 3

// emit is a pending outbound event, collected under the room lock and
// delivered after it is released. An empty participant targets the room.
type emit struct {
	participant string
	event       string
	payload     any
}

// Room is one game session. Every transition runs under mu, so a correct
// guess and an expiring timer can never both complete round-end for the same
// round; broadcasts happen only after the lock is released.
type Room struct {
	ID       string
	Settings internal.Settings

	mu       sync.Mutex
	players  map[string]*internal.Player
	order    []string // join order; drives rotation and tie-breaks
	host     string
	state    internal.RoomState
	round    int // 0-based, advances once per completed round
	drawer   string
	word     string
	choices  []string
	strokes  []internal.Stroke
	revealed map[int]bool
	scores   map[string]int

	timers  *Scheduler
	scoring ScoringEngine
	gateway BroadcastGateway
	pool    *words.Pool

	// tick scales every scheduled duration. Production rooms run on
	// time.Second; tests shrink it to keep timer scenarios fast.
	tick time.Duration
}

func newRoom(id string, settings internal.Settings, gw BroadcastGateway, pool *words.Pool) *Room {
	return &Room{
		ID:       id,
		Settings: settings,
		players:  make(map[string]*internal.Player),
		state:    internal.StateLobby,
		revealed: make(map[int]bool),
		scores:   make(map[string]int),
		timers:   NewScheduler(),
		gateway:  gw,
		pool:     pool,
		tick:     time.Second,
	}
}

// Join adds a participant. The first joiner becomes host and gets the
// room-created event; later joiners get room-joined plus, mid-game, a
// catch-up snapshot including the stroke log.
func (r *Room) Join(p internal.Player) error {
	r.mu.Lock()
	if len(r.players) >= r.Settings.MaxPlayers {
		r.mu.Unlock()
		return internal.ErrRoomFull
	}

	first := len(r.players) == 0
	cp := p
	r.players[p.ID] = &cp
	r.order = append(r.order, p.ID)
	r.scores[p.ID] = 0
	if first {
		r.host = p.ID
	}

	var emits []emit
	if first {
		emits = append(emits, emit{p.ID, internal.EventRoomCreated, internal.RoomCreatedData{RoomID: r.ID, IsHost: true}})
	} else {
		emits = append(emits, emit{p.ID, internal.EventRoomJoined, internal.RoomJoinedData{RoomID: r.ID, IsHost: false}})
	}
	emits = append(emits, emit{"", internal.EventRoomUpdate, r.rosterLocked()})
	if r.state == internal.StateChoosing || r.state == internal.StatePlaying {
		emits = append(emits, emit{p.ID, internal.EventGameState, r.snapshotLocked()})
	}
	r.mu.Unlock()

	log.Printf("[Join] room=%s player=%s (%s)", r.ID, p.ID, p.Name)
	r.gateway.Join(r.ID, p.ID)
	r.flush(emits)
	return nil
}

// Leave removes a participant and reports whether the room is now empty, in
// which case its timers are already cancelled and the registry should drop
// it. Host reassigns to the earliest-joined remaining player. If the drawer
// leaves while Playing the round ends with no winner; while Choosing the
// turn restarts with the next drawer.
func (r *Room) Leave(participantID string) (empty bool) {
	r.mu.Lock()
	if _, ok := r.players[participantID]; !ok {
		r.mu.Unlock()
		return false
	}

	wasDrawer := r.drawer == participantID
	delete(r.players, participantID)
	delete(r.scores, participantID)
	r.order = slices.DeleteFunc(r.order, func(id string) bool { return id == participantID })

	if len(r.players) == 0 {
		r.timers.CancelAll()
		r.mu.Unlock()
		r.gateway.Leave(r.ID, participantID)
		log.Printf("[Leave] room=%s player=%s left, room empty", r.ID, participantID)
		return true
	}

	if r.host == participantID {
		r.host = r.order[0]
	}

	emits := []emit{{"", internal.EventRoomUpdate, r.rosterLocked()}}
	if wasDrawer {
		switch r.state {
		case internal.StatePlaying:
			log.Printf("[Leave] room=%s drawer left mid-round, ending round", r.ID)
			emits = append(emits, r.endRoundLocked()...)
		case internal.StateChoosing:
			log.Printf("[Leave] room=%s drawer left while choosing, restarting turn", r.ID)
			emits = append(emits, r.beginTurnLocked()...)
		}
	}
	r.mu.Unlock()

	r.gateway.Leave(r.ID, participantID)
	r.flush(emits)
	return false
}

// Start begins the game. Host only, lobby only, needs at least two players.
func (r *Room) Start(callerID string) error {
	r.mu.Lock()
	if r.state != internal.StateLobby {
		r.mu.Unlock()
		return internal.ErrInvalidState
	}
	if callerID != r.host {
		r.mu.Unlock()
		return internal.ErrNotHost
	}
	if len(r.players) < internal.MinPlayersToStart {
		r.mu.Unlock()
		return internal.ErrNotEnoughPlayers
	}

	r.round = 0
	emits := []emit{{"", internal.EventGameStarted, nil}}
	emits = append(emits, r.beginTurnLocked()...)
	r.mu.Unlock()

	log.Printf("[Start] room=%s game started by host %s", r.ID, callerID)
	r.flush(emits)
	return nil
}

// SelectWord is the drawer committing to one of the offered candidates. It
// moves the room to Playing, reveals the masked word to everyone (the plain
// word only to the drawer) and arms the round timers.
func (r *Room) SelectWord(callerID, word string) error {
	r.mu.Lock()
	if r.state != internal.StateChoosing {
		r.mu.Unlock()
		return internal.ErrInvalidState
	}
	if callerID != r.drawer {
		r.mu.Unlock()
		return internal.ErrNotCurrentDrawer
	}
	if !slices.Contains(r.choices, word) {
		r.mu.Unlock()
		return internal.ErrInvalidState
	}

	r.word = word
	r.choices = nil
	r.state = internal.StatePlaying

	masked := utils.MaskWord(word)
	length := len([]rune(word))
	emits := []emit{
		{"", internal.EventWordSelected, internal.WordSelectedData{Word: masked, Length: length}},
		{r.drawer, internal.EventWordSelected, internal.WordSelectedData{Word: word, Length: length}},
	}
	r.armRoundTimersLocked()
	r.mu.Unlock()

	log.Printf("[SelectWord] room=%s drawer=%s selected a word (len=%d)", r.ID, callerID, length)
	r.flush(emits)
	return nil
}

// Draw appends a stroke to the round's log and relays it. Accepted only from
// the current drawer while Playing.
func (r *Room) Draw(callerID string, stroke internal.Stroke) error {
	r.mu.Lock()
	if r.state != internal.StatePlaying {
		r.mu.Unlock()
		return internal.ErrInvalidState
	}
	if callerID != r.drawer {
		r.mu.Unlock()
		return internal.ErrNotCurrentDrawer
	}
	r.strokes = append(r.strokes, stroke)
	r.mu.Unlock()

	r.flush([]emit{{"", internal.EventDraw, stroke}})
	return nil
}

// Chat relays a message to the room, annotated with whether it was a correct
// guess. A correct guess awards the guesser and drawer and ends the round
// with the guesser credited; the drawer's own messages are never guesses.
func (r *Room) Chat(callerID, text string) error {
	r.mu.Lock()
	p, ok := r.players[callerID]
	if !ok {
		r.mu.Unlock()
		return internal.ErrRoomNotFound
	}

	var emits []emit
	correct := r.state == internal.StatePlaying && r.scoring.Evaluate(r.word, r.drawer, callerID, text)
	if correct {
		r.scores[callerID] += GuesserPoints
		if _, drawerPresent := r.players[r.drawer]; drawerPresent {
			r.scores[r.drawer] += DrawerPoints
		}
		emits = append(emits, emit{"", internal.EventWordGuessed, internal.WordGuessedData{
			Winner: callerID,
			Word:   r.word,
			Scores: r.scoresCopyLocked(),
		}})
		emits = append(emits, r.endRoundLocked()...)
	}
	emits = append(emits, emit{"", internal.EventChatMessage, internal.ChatBroadcastData{
		PlayerID:   callerID,
		PlayerName: p.Name,
		Message:    text,
		IsCorrect:  correct,
	}})
	r.mu.Unlock()

	if correct {
		log.Printf("[Chat] room=%s player=%s guessed the word", r.ID, callerID)
	}
	r.flush(emits)
	return nil
}

// PlayAgain restarts a finished game with the same players: scores and round
// index reset, then straight into the first turn. Host only.
func (r *Room) PlayAgain(callerID string) error {
	r.mu.Lock()
	if r.state != internal.StateFinished {
		r.mu.Unlock()
		return internal.ErrInvalidState
	}
	if callerID != r.host {
		r.mu.Unlock()
		return internal.ErrNotHost
	}
	if len(r.players) < internal.MinPlayersToStart {
		r.mu.Unlock()
		return internal.ErrNotEnoughPlayers
	}

	r.round = 0
	for id := range r.scores {
		r.scores[id] = 0
	}
	emits := []emit{{"", internal.EventGameStarted, nil}}
	emits = append(emits, r.beginTurnLocked()...)
	r.mu.Unlock()

	log.Printf("[PlayAgain] room=%s restarted by host %s", r.ID, callerID)
	r.flush(emits)
	return nil
}

// Close cancels every pending timer. Called by the registry on deletion;
// safe to call more than once.
func (r *Room) Close() {
	r.timers.CancelAll()
}

// ---------------------------------------------------------------------------
// Transitions (lock held)
// ---------------------------------------------------------------------------

// beginTurnLocked advances the drawer to the next participant in join order,
// samples fresh word candidates and resets the per-round state. The
// candidate list goes privately to the new drawer.
func (r *Room) beginTurnLocked() []emit {
	// A turn never starts with stale timers pending; this also covers the
	// drawer leaving while the between-rounds grace delay is still running.
	r.timers.CancelAll()
	idx := slices.Index(r.order, r.drawer) // -1 when unset or drawer left
	r.drawer = r.order[(idx+1)%len(r.order)]
	r.choices = r.pool.Sample(r.Settings.WordChoiceCount)
	r.word = ""
	r.strokes = nil
	r.revealed = make(map[int]bool)
	r.state = internal.StateChoosing

	return []emit{
		{"", internal.EventRoundStart, internal.RoundStartData{
			Drawer:      r.drawer,
			Round:       r.round + 1,
			TotalRounds: r.Settings.Rounds,
		}},
		{r.drawer, internal.EventWordChoices, r.choices},
	}
}

// endRoundLocked is the single round-end path shared by correct guesses,
// draw-timer expiry and drawer departure. It cancels the round's timers as a
// set, advances the round index and either finishes the game or schedules
// the next turn after the grace delay.
func (r *Room) endRoundLocked() []emit {
	r.timers.CancelAll()
	r.word = ""
	r.choices = nil
	r.round++

	if r.round >= r.Settings.Rounds {
		r.state = internal.StateFinished
		r.drawer = ""
		winner := r.winnerLocked()
		log.Printf("[endRound] room=%s game finished, winner=%s", r.ID, winner)
		return []emit{{"", internal.EventGameFinished, internal.GameFinishedData{
			Scores: r.scoresCopyLocked(),
			Winner: winner,
		}}}
	}

	r.state = internal.StateChoosing
	r.timers.Schedule(graceTicks*r.tick, r.handleGraceElapsed)
	return nil
}

// armRoundTimersLocked schedules the draw-expiry timer and the evenly spaced
// hint reveals for the round just entering Playing.
func (r *Room) armRoundTimersLocked() {
	draw := time.Duration(r.Settings.DrawTimeSeconds) * r.tick
	r.timers.Schedule(draw, r.handleDrawExpiry)

	if n := r.Settings.LetterHintCount; n > 0 {
		interval := draw / time.Duration(n+1)
		for k := 1; k <= n; k++ {
			r.timers.Schedule(interval*time.Duration(k), r.handleHintReveal)
		}
	}
}

// ---------------------------------------------------------------------------
// Timer callbacks
// ---------------------------------------------------------------------------

// handleDrawExpiry ends the round with no winner. The generation re-check
// under the room lock is what guarantees a guess landing just before expiry
// produces exactly one round-end: whichever path runs first cancels the
// other's generation.
func (r *Room) handleDrawExpiry(gen uint64) {
	r.mu.Lock()
	if !r.timers.Live(gen) || r.state != internal.StatePlaying {
		r.mu.Unlock()
		return
	}
	log.Printf("[handleDrawExpiry] room=%s time up", r.ID)
	emits := r.endRoundLocked()
	r.mu.Unlock()
	r.flush(emits)
}

// handleHintReveal discloses one random unrevealed non-space letter, up to
// the configured hint count. When nothing eligible remains it is a no-op.
func (r *Room) handleHintReveal(gen uint64) {
	r.mu.Lock()
	if !r.timers.Live(gen) || r.state != internal.StatePlaying || r.word == "" {
		r.mu.Unlock()
		return
	}
	if len(r.revealed) >= r.Settings.LetterHintCount {
		r.mu.Unlock()
		return
	}

	runes := []rune(strings.ToLower(r.word))
	eligible := make([]int, 0, len(runes))
	for i, c := range runes {
		if c != ' ' && !r.revealed[i] {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		r.mu.Unlock()
		return
	}

	idx := eligible[rand.Intn(len(eligible))]
	r.revealed[idx] = true
	payload := internal.LetterRevealedData{Index: idx, Letter: string(runes[idx])}
	r.mu.Unlock()

	r.flush([]emit{{"", internal.EventLetterRevealed, payload}})
}

// handleGraceElapsed re-enters begin-turn after the between-rounds delay.
// The generation check covers the room having been closed or restarted while
// the delay ran.
func (r *Room) handleGraceElapsed(gen uint64) {
	r.mu.Lock()
	if !r.timers.Live(gen) || r.state != internal.StateChoosing || len(r.order) == 0 {
		r.mu.Unlock()
		return
	}
	emits := r.beginTurnLocked()
	r.mu.Unlock()
	r.flush(emits)
}

// ---------------------------------------------------------------------------
// Snapshots and accessors
// ---------------------------------------------------------------------------

func (r *Room) rosterLocked() internal.RoomUpdateData {
	players := make([]internal.Player, 0, len(r.order))
	for _, id := range r.order {
		players = append(players, *r.players[id])
	}
	return internal.RoomUpdateData{
		Players:  players,
		Host:     r.host,
		Settings: r.Settings,
		State:    r.state,
	}
}

func (r *Room) snapshotLocked() internal.GameStateData {
	revealed := make([]int, 0, len(r.revealed))
	for i := range r.revealed {
		revealed = append(revealed, i)
	}
	slices.Sort(revealed)
	return internal.GameStateData{
		Drawer:          r.drawer,
		MaskedWord:      utils.MaskWord(r.word),
		Strokes:         slices.Clone(r.strokes),
		Scores:          r.scoresCopyLocked(),
		RevealedLetters: revealed,
		Round:           r.round,
		TotalRounds:     r.Settings.Rounds,
	}
}

func (r *Room) scoresCopyLocked() map[string]int {
	out := make(map[string]int, len(r.scores))
	for id, s := range r.scores {
		out[id] = s
	}
	return out
}

// winnerLocked picks the highest score; ties go to the earliest-joined
// player so the result never depends on map iteration order.
func (r *Room) winnerLocked() string {
	winner := ""
	best := -1
	for _, id := range r.order {
		if s := r.scores[id]; s > best {
			winner, best = id, s
		}
	}
	return winner
}

// HostID returns the current host.
func (r *Room) HostID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.host
}

// DrawerID returns the current drawer, empty outside Choosing/Playing.
func (r *Room) DrawerID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.drawer
}

// State returns the current lifecycle state.
func (r *Room) State() internal.RoomState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// HasParticipant reports membership.
func (r *Room) HasParticipant(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.players[id]
	return ok
}

// PlayerCount returns the number of current members.
func (r *Room) PlayerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players)
}

func (r *Room) flush(emits []emit) {
	for _, e := range emits {
		if e.participant == "" {
			r.gateway.ToRoom(r.ID, e.event, e.payload)
		} else {
			r.gateway.ToParticipant(e.participant, e.event, e.payload)
		}
	}
}

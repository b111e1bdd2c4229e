// Package match hosts live Mau Mau matches on top of the engine package.
// A Match owns the authoritative game state behind a mutex, runs turn
// timers, and pushes events to its subscribers through callbacks supplied
// by the transport layer.
package match

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/luizforgas/mau-mau-forgas/engine"
)

// OnMatchEndFunc defines the signature for a callback executed when a match
// ends. It receives the match ID and the final score per player.
type OnMatchEndFunc func(matchID uuid.UUID, scores map[uuid.UUID]int)

// PlayerInfo identifies a participant before the match starts.
type PlayerInfo struct {
	ID   uuid.UUID
	Name string
}

// Match is a single hosted match. All state access goes through mu; the
// broadcast callbacks are invoked with the lock held, so they must not call
// back into the match.
type Match struct {
	ID uuid.UUID

	mu       sync.Mutex
	state    engine.GameState
	players  []PlayerInfo
	settings engine.Settings

	// Turn management.
	TurnDuration time.Duration // Zero disables turn timers.
	turnID       int
	turnTimer    *time.Timer

	started bool
	ended   bool

	// Communication callbacks.
	BroadcastFn         func(ev Event)                     // Sends an event to all subscribers.
	BroadcastToPlayerFn func(playerID uuid.UUID, ev Event) // Sends an event to a single player.
	OnMatchEnd          OnMatchEndFunc                     // Executed once when the match finishes.

	log *logrus.Entry
}

// New creates a match host for the given roster. The match does not deal or
// announce anything until Start is called.
func New(players []PlayerInfo, settings engine.Settings, logger *logrus.Logger) *Match {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	id, _ := uuid.NewRandom()
	return &Match{
		ID:           id,
		players:      append([]PlayerInfo(nil), players...),
		settings:     settings,
		TurnDuration: 15 * time.Second,
		log:          logger.WithField("match_id", id),
	}
}

// Start deals the first round and begins the turn cycle.
func (m *Match) Start(seed uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		return errors.New("match already started")
	}

	seats := make([]engine.Seat, len(m.players))
	for i, p := range m.players {
		seats[i] = engine.Seat{ID: p.ID.String(), Name: p.Name}
	}
	state, err := engine.NewMatch(seats, m.settings, seed)
	if err != nil {
		return err
	}
	m.state = state
	m.started = true
	m.log.WithField("players", len(seats)).Info("match started")

	m.pushState()
	m.beginTurn()
	return nil
}

// State returns a copy of the current game state.
func (m *Match) State() engine.GameState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone()
}

// HandleCommand validates and applies a player-submitted command. Rejections
// are reported to the submitting player through a private event rather than
// an error return, mirroring how a connection handler consumes them.
func (m *Match) HandleCommand(playerID uuid.UUID, cmd Command) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.started || m.ended {
		m.failCommand(playerID, "match is not running")
		return
	}
	seat := m.state.PlayerIndexByID(playerID.String())
	if seat < 0 {
		m.failCommand(playerID, "player is not seated in this match")
		return
	}

	var action engine.Action
	switch cmd.Type {
	case CmdPlayCard:
		card, ok := m.cardInHand(seat, cmd.Payload)
		if !ok {
			m.failCommand(playerID, "card id missing or not in hand")
			return
		}
		action = engine.PlayCard{PlayerIndex: seat, Card: card}
	case CmdDrawCard:
		action = engine.DrawCard{PlayerIndex: seat}
	case CmdDeclareLastCard:
		action = engine.DeclareLastCard{PlayerIndex: seat}
	default:
		m.failCommand(playerID, fmt.Sprintf("unknown command type %q", cmd.Type))
		return
	}

	m.apply(playerID, action)
}

// AdvanceRound deals the next round once the current one has ended. When
// fewer than two players survive it finishes the match and returns
// engine.ErrMatchEnded.
func (m *Match) AdvanceRound() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.started || m.ended {
		return errors.New("match is not running")
	}
	next, err := engine.NextRound(m.state)
	if err != nil {
		if errors.Is(err, engine.ErrMatchEnded) {
			m.endMatch()
		}
		return err
	}
	m.state = next
	m.log.Info("next round started")

	m.pushState()
	m.beginTurn()
	return nil
}

// cardInHand resolves the "id" payload key against the seat's current hand.
// Assumes lock is held by caller.
func (m *Match) cardInHand(seat int, payload map[string]interface{}) (engine.Card, bool) {
	raw, ok := payload["id"].(string)
	if !ok || raw == "" {
		return engine.Card{}, false
	}
	for _, c := range m.state.Players[seat].Hand {
		if c.ID == raw {
			return c, true
		}
	}
	return engine.Card{}, false
}

// apply runs one engine action and distributes the outcome.
// Assumes lock is held by caller.
func (m *Match) apply(playerID uuid.UUID, action engine.Action) {
	next, err := engine.Apply(m.state, action)
	if err != nil {
		m.log.WithFields(logrus.Fields{"player": playerID, "error": err}).Debug("action rejected")
		m.failCommand(playerID, err.Error())
		return
	}
	m.state = next
	m.log.WithField("action", next.LastAction.Description).Debug("action applied")

	m.pushState()
	if m.state.Ended {
		m.finishRound()
		return
	}
	m.beginTurn()
}

// beginTurn announces the current player's turn and arms the turn timer.
// Assumes lock is held by caller.
func (m *Match) beginTurn() {
	if m.ended || m.state.Ended {
		return
	}
	m.turnID++
	m.fire(Event{
		Type: EventPlayerTurn,
		Payload: map[string]interface{}{
			"turn":     m.turnID,
			"playerId": m.state.CurrentPlayer().ID,
		},
	})
	m.scheduleTurnTimer()
}

// scheduleTurnTimer arms a timer for the current turn. The fired callback
// re-acquires the lock and checks the turn ID so a timer from a completed
// turn does nothing.
// Assumes lock is held by caller.
func (m *Match) scheduleTurnTimer() {
	if m.turnTimer != nil {
		m.turnTimer.Stop()
		m.turnTimer = nil
	}
	if m.TurnDuration <= 0 || m.ended || m.state.Ended {
		return
	}

	turnID := m.turnID
	seat := m.state.CurrentPlayerIndex
	m.turnTimer = time.AfterFunc(m.TurnDuration, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.ended || m.state.Ended || m.turnID != turnID {
			return
		}
		m.handleTimeout(seat)
	})
}

// handleTimeout acts for a player whose turn timer expired: draw, and when
// the draw keeps the turn, play the first playable card so a stalled player
// cannot hold up the match.
// Assumes lock is held by caller.
func (m *Match) handleTimeout(seat int) {
	player := m.state.Players[seat]
	m.log.WithFields(logrus.Fields{"player": player.ID, "turn": m.turnID}).Info("turn timed out, drawing for player")

	next, err := engine.Apply(m.state, engine.DrawCard{PlayerIndex: seat})
	if err != nil {
		m.log.WithError(err).Warn("timeout draw rejected")
		return
	}
	m.state = next

	if m.state.CurrentPlayerIndex == seat && !m.state.Ended {
		playable := m.state.PlayableCards(seat)
		if len(playable) == 0 {
			// Both piles are exhausted and the seat holds no playable card.
			// No action can move this table, so stop the timer cycle.
			m.log.Warn("table is stuck: nothing to draw and nothing playable")
			m.pushState()
			return
		}
		if forced, err := engine.Apply(m.state, engine.PlayCard{PlayerIndex: seat, Card: playable[0]}); err == nil {
			m.state = forced
		}
	}

	m.pushState()
	if m.state.Ended {
		m.finishRound()
		return
	}
	m.beginTurn()
}

// finishRound stops the timer and announces the round result. The match
// owner decides when to call AdvanceRound.
// Assumes lock is held by caller.
func (m *Match) finishRound() {
	if m.turnTimer != nil {
		m.turnTimer.Stop()
		m.turnTimer = nil
	}
	scores := map[string]interface{}{}
	for _, p := range m.state.Players {
		scores[p.ID] = p.Score
	}
	m.fire(Event{
		Type: EventRoundEnded,
		Payload: map[string]interface{}{
			"winnerId": m.state.WinnerID,
			"scores":   scores,
		},
	})
	m.log.WithField("winner", m.state.WinnerID).Info("round ended")
}

// endMatch finalizes the match, announces the standings, and runs the
// OnMatchEnd callback.
// Assumes lock is held by caller.
func (m *Match) endMatch() {
	if m.ended {
		return
	}
	m.ended = true
	if m.turnTimer != nil {
		m.turnTimer.Stop()
		m.turnTimer = nil
	}

	scores := make(map[uuid.UUID]int)
	standings := map[string]interface{}{}
	for _, p := range m.state.Players {
		standings[p.ID] = p.Score
		if id, err := uuid.Parse(p.ID); err == nil {
			scores[id] = p.Score
		}
	}
	m.fire(Event{
		Type:    EventMatchEnded,
		Payload: map[string]interface{}{"scores": standings},
	})
	if m.OnMatchEnd != nil {
		m.OnMatchEnd(m.ID, scores)
	}
	m.log.Info("match ended")
}

// pushState sends every roster member their tailored view of the state.
// Eliminated players keep receiving state so they can spectate.
// Assumes lock is held by caller.
func (m *Match) pushState() {
	if m.BroadcastToPlayerFn == nil {
		return
	}
	for _, p := range m.players {
		view := m.viewFor(p.ID)
		m.BroadcastToPlayerFn(p.ID, Event{Type: EventMatchState, State: &view})
	}
}

// failCommand reports a rejected command to the submitting player.
// Assumes lock is held by caller.
func (m *Match) failCommand(playerID uuid.UUID, reason string) {
	m.firePrivate(playerID, Event{
		Type:    EventActionFailed,
		Payload: map[string]interface{}{"message": reason},
	})
}

// fire broadcasts an event to all subscribers.
// Assumes lock is held by caller.
func (m *Match) fire(ev Event) {
	if m.BroadcastFn == nil {
		m.log.WithField("type", ev.Type).Warn("no broadcast callback set, dropping event")
		return
	}
	m.BroadcastFn(ev)
}

// firePrivate sends an event to a single player.
// Assumes lock is held by caller.
func (m *Match) firePrivate(playerID uuid.UUID, ev Event) {
	if m.BroadcastToPlayerFn == nil {
		m.log.WithField("type", ev.Type).Warn("no player broadcast callback set, dropping event")
		return
	}
	m.BroadcastToPlayerFn(playerID, ev)
}

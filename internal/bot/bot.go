// Package bot provides computer players for Mau Mau matches. A Brain picks
// one action for its seat from the current game state; the caller applies
// it through the engine and asks again on the bot's next turn.
package bot

import (
	"fmt"

	"github.com/luizforgas/mau-mau-forgas/engine"
)

// Level selects a bot strategy.
type Level string

const (
	LevelRandom Level = "random"
	LevelGreedy Level = "greedy"
)

// Brain is the interface all bot strategies implement.
type Brain interface {
	ChooseAction(state engine.GameState, seat int) (engine.Action, error)
}

// New creates a brain for the given level. The seed feeds strategies that
// randomize; deterministic strategies ignore it.
func New(level Level, seed int64) (Brain, error) {
	switch level {
	case LevelRandom:
		return NewRandom(seed), nil
	case LevelGreedy:
		return &Greedy{}, nil
	default:
		return nil, fmt.Errorf("unknown bot level %q", level)
	}
}

// checkSeat validates that the seat exists and holds the turn.
func checkSeat(state engine.GameState, seat int) error {
	if !state.Started || state.Ended {
		return fmt.Errorf("no round in progress")
	}
	if seat < 0 || seat >= len(state.Players) {
		return fmt.Errorf("seat %d out of range", seat)
	}
	if seat != state.CurrentPlayerIndex {
		return engine.ErrNotPlayersTurn
	}
	return nil
}

// declareIfNeeded returns a declaration when the seat is one card from
// winning and the rules demand announcing it. With auto-declaration on, or
// enforcement off, announcing buys nothing and the bot skips it.
func declareIfNeeded(state engine.GameState, seat int) (engine.Action, bool) {
	if !state.Settings.EnforceLastCard || state.Settings.AutoDeclareLastCard {
		return nil, false
	}
	p := state.Players[seat]
	if len(p.Hand) == 1 && !p.DeclaredLastCard {
		return engine.DeclareLastCard{PlayerIndex: seat}, true
	}
	return nil, false
}

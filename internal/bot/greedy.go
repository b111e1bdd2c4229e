package bot

import (
	"github.com/luizforgas/mau-mau-forgas/engine"
)

// Greedy sheds its most expensive playable card first, so the hand left
// behind costs as little as possible if an opponent wins the round.
type Greedy struct{}

func (b *Greedy) ChooseAction(state engine.GameState, seat int) (engine.Action, error) {
	if err := checkSeat(state, seat); err != nil {
		return nil, err
	}
	if a, ok := declareIfNeeded(state, seat); ok {
		return a, nil
	}
	playable := state.PlayableCards(seat)
	if len(playable) == 0 {
		return engine.DrawCard{PlayerIndex: seat}, nil
	}
	best := playable[0]
	for _, c := range playable[1:] {
		if c.Value() > best.Value() {
			best = c
		}
	}
	return engine.PlayCard{PlayerIndex: seat, Card: best}, nil
}

package bot

import (
	"math/rand"

	"github.com/luizforgas/mau-mau-forgas/engine"
)

// Random plays a uniformly random playable card and draws when it has none.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random brain seeded for reproducible play.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (b *Random) ChooseAction(state engine.GameState, seat int) (engine.Action, error) {
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
	pick := playable[b.rng.Intn(len(playable))]
	return engine.PlayCard{PlayerIndex: seat, Card: pick}, nil
}

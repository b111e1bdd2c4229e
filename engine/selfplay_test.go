package engine

import (
	"errors"
	"math/rand"
	"testing"
)

// pickAction chooses a random sensible action for the acting seat,
// declaring first whenever a single undeclared card remains.
func pickAction(rng *rand.Rand, g GameState) Action {
	seat := g.CurrentPlayerIndex
	if p := g.Players[seat]; len(p.Hand) == 1 && !p.DeclaredLastCard {
		return DeclareLastCard{PlayerIndex: seat}
	}
	playable := g.PlayableCards(seat)
	if len(playable) == 0 {
		return DrawCard{PlayerIndex: seat}
	}
	return PlayCard{PlayerIndex: seat, Card: playable[rng.Intn(len(playable))]}
}

// wedged reports a table where the last draw was a no-op and the acting
// seat still has nothing to play: both piles are exhausted, so every
// further action would be another reported no-op.
func wedged(g GameState, act Action) bool {
	draw, ok := act.(DrawCard)
	return ok && g.LastAction.CardsDrawn == 0 && len(g.PlayableCards(draw.PlayerIndex)) == 0
}

// playRound drives one round to its end with random legal moves, checking
// card conservation and seat validity on every transition. Reports whether
// the round finished (as opposed to exhausting both piles).
func playRound(t *testing.T, g *GameState, rng *rand.Rand, seed uint64) bool {
	t.Helper()
	const maxSteps = 20000

	total := g.CardCount()
	for steps := 1; !g.Ended; steps++ {
		if steps > maxSteps {
			t.Fatalf("seed %d: round still running after %d steps", seed, maxSteps)
		}
		act := pickAction(rng, *g)
		next, err := Apply(*g, act)
		if err != nil {
			t.Fatalf("seed %d step %d: Apply: %v", seed, steps, err)
		}
		if got := next.CardCount(); got != total {
			t.Fatalf("seed %d step %d: CardCount() = %d, want %d", seed, steps, got, total)
		}
		if next.CurrentPlayerIndex < 0 || next.CurrentPlayerIndex >= len(next.Players) {
			t.Fatalf("seed %d step %d: CurrentPlayerIndex = %d out of range", seed, steps, next.CurrentPlayerIndex)
		}
		*g = next
		if wedged(next, act) {
			return false
		}
	}
	return true
}

// TestSelfPlayRounds plays whole rounds with random legal moves across a
// spread of seeds and table sizes, then checks the finished round's shape:
// an empty-handed winner and no loser gaining points.
func TestSelfPlayRounds(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		numPlayers := 2 + int(seed)%4
		g, err := NewMatch(testSeats(numPlayers), DefaultSettings(), seed)
		if err != nil {
			t.Fatalf("seed %d: NewMatch: %v", seed, err)
		}
		rng := rand.New(rand.NewSource(int64(seed)))

		if !playRound(t, &g, rng, seed) {
			continue // both piles exhausted, nothing further to assert
		}

		if g.WinnerID == "" {
			t.Fatalf("seed %d: round ended without a winner", seed)
		}
		winner := g.PlayerIndexByID(g.WinnerID)
		if winner < 0 {
			t.Fatalf("seed %d: WinnerID %q not seated", seed, g.WinnerID)
		}
		if got := len(g.Players[winner].Hand); got != 0 {
			t.Fatalf("seed %d: winner holds %d cards, want 0", seed, got)
		}
		for i, p := range g.Players {
			if i != winner && p.Score > 100 {
				t.Fatalf("seed %d: loser %d score rose to %d", seed, i, p.Score)
			}
		}
	}
}

// TestSelfPlayFullMatch drives one match through successive rounds until
// elimination ends it, exercising NextRound against real scored states.
func TestSelfPlayFullMatch(t *testing.T) {
	settings := DefaultSettings()
	settings.StartingScore = 40 // fewer rounds to reach elimination
	g, err := NewMatch(testSeats(3), settings, 99)
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	rng := rand.New(rand.NewSource(99))

	matchEnded := false
	for rounds := 1; rounds <= 200; rounds++ {
		if !playRound(t, &g, rng, 99) {
			t.Skipf("round %d exhausted both piles, nothing further to assert", rounds)
		}
		next, err := NextRound(g)
		if errors.Is(err, ErrMatchEnded) {
			matchEnded = true
			break
		}
		if err != nil {
			t.Fatalf("NextRound: %v", err)
		}
		g = next
	}

	if !matchEnded {
		t.Fatalf("match still running after 200 rounds")
	}
	survivors := 0
	for _, p := range g.Players {
		if !p.Eliminated {
			survivors++
		}
	}
	if survivors >= 2 {
		t.Fatalf("match ended with %d survivors, want fewer than 2", survivors)
	}
}

// TestSelfPlayDeterministic verifies a fixed seed and policy replay to an
// identical final state.
func TestSelfPlayDeterministic(t *testing.T) {
	run := func() GameState {
		g, err := NewMatch(testSeats(3), DefaultSettings(), 1234)
		if err != nil {
			t.Fatalf("NewMatch: %v", err)
		}
		rng := rand.New(rand.NewSource(77))
		playRound(t, &g, rng, 1234)
		return g
	}

	a := run()
	b := run()
	if a.WinnerID != b.WinnerID || a.LastAction != b.LastAction || a.RNG != b.RNG {
		t.Fatalf("replay diverged: winner %q vs %q", a.WinnerID, b.WinnerID)
	}
}

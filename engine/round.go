package engine

import "fmt"

// NewMatch seats the given players with the starting score, shuffles a
// fresh deck from seed, deals the opening hands and seeds the discard
// pile. The first seat acts first, in forward direction.
func NewMatch(seats []Seat, settings Settings, seed uint64) (GameState, error) {
	if len(seats) < MinPlayers {
		return GameState{}, fmt.Errorf("need at least %d players, got %d", MinPlayers, len(seats))
	}
	players := make([]Player, len(seats))
	for i, s := range seats {
		players[i] = Player{ID: s.ID, Name: s.Name, Score: settings.StartingScore}
	}
	g := GameState{
		Players:  players,
		Settings: settings,
		RNG:      normalizeSeed(seed),
	}
	g.startRound()
	g.LastAction = LastAction{Description: "match started"}
	return g, nil
}

// NextRound carries the survivors of an ended round into a fresh deal,
// keeping identities and scores. ErrMatchEnded reports that elimination
// left fewer than two players; naming an overall match winner from the
// final scores is the caller's call, not the engine's.
func NextRound(prior GameState) (GameState, error) {
	if !prior.Ended {
		return prior, fmt.Errorf("current round has not ended")
	}
	survivors := make([]Player, 0, len(prior.Players))
	for _, p := range prior.Players {
		if p.Eliminated {
			continue
		}
		survivors = append(survivors, Player{ID: p.ID, Name: p.Name, Score: p.Score})
	}
	if len(survivors) < MinPlayers {
		return prior, ErrMatchEnded
	}
	g := GameState{
		Players:  survivors,
		Settings: prior.Settings,
		RNG:      prior.RNG,
	}
	g.startRound()
	g.LastAction = LastAction{Description: "next round started"}
	return g, nil
}

// startRound shuffles a full deck, deals the opening hands and flips one
// card to seed the discard pile. The seed card exerts no special effect.
// Players, Settings and RNG must already be in place.
func (g *GameState) startRound() {
	deck := BuildDeck(g.Settings.IncludeWildcards)
	g.shuffleInPlace(deck)
	g.Players, deck = Deal(g.Players, deck, HandSize)

	if len(deck) > 0 {
		top := deck[len(deck)-1]
		g.Deck = deck[:len(deck)-1]
		g.DiscardPile = []Card{top}
	} else {
		g.Deck = deck
		g.DiscardPile = nil
	}

	g.CurrentPlayerIndex = 0
	g.Direction = DirectionForward
	g.Started = true
	g.Ended = false
	g.WinnerID = ""
}

// endRound closes the round on a winning play: the winner is recorded and
// scoring settles every other player's remaining hand.
func (g *GameState) endRound(winnerIndex int, played Card) {
	winner := g.Players[winnerIndex]
	g.Ended = true
	g.WinnerID = winner.ID
	g.Players = CalculateScores(g.Players, winner.ID)
	g.LastAction.Description = fmt.Sprintf("%s played %s and won the round", winner.Name, played)
}

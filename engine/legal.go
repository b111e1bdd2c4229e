package engine

// PlayableCards returns the cards in the player's hand that can legally be
// played on the current discard top. UIs use this to highlight moves before
// one is submitted.
func (g GameState) PlayableCards(playerIndex int) []Card {
	if playerIndex < 0 || playerIndex >= len(g.Players) {
		return nil
	}
	top, ok := g.TopOfDiscard()
	var playable []Card
	for _, c := range g.Players[playerIndex].Hand {
		if !ok || IsValidMove(c, top, g.Settings.EnableBluffing) {
			playable = append(playable, c)
		}
	}
	return playable
}

// LegalActions enumerates the sensible actions for the player right now:
// one PlayCard per playable card plus a DrawCard on their turn, and a
// DeclareLastCard while holding a single undeclared card. Declaring is
// accepted by Apply at any time; listing it only at one card keeps bots and
// timeout policies from spamming stale declarations.
func (g GameState) LegalActions(playerIndex int) []Action {
	if !g.Started || g.Ended || playerIndex < 0 || playerIndex >= len(g.Players) {
		return nil
	}
	var actions []Action
	if playerIndex == g.CurrentPlayerIndex {
		for _, c := range g.PlayableCards(playerIndex) {
			actions = append(actions, PlayCard{PlayerIndex: playerIndex, Card: c})
		}
		actions = append(actions, DrawCard{PlayerIndex: playerIndex})
	}
	if p := g.Players[playerIndex]; len(p.Hand) == 1 && !p.DeclaredLastCard {
		actions = append(actions, DeclareLastCard{PlayerIndex: playerIndex})
	}
	return actions
}

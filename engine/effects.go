package engine

import "fmt"

// wildcardDrawCount is the forced draw a wildcard inflicts on the next
// player.
const wildcardDrawCount = 5

// effectFunc applies one special-card effect, including the turn advancement
// it dictates. The returned text augments the last-action description.
type effectFunc func(g *GameState) string

// specialEffects maps ranks with special behavior to their effect. Ranks
// not listed advance the turn by one seat and nothing else.
var specialEffects = map[Rank]effectFunc{
	RankWild:  effectWildcard,
	RankAce:   effectSkipNext,
	RankQueen: effectReverse,
	RankNine:  effectPreviousDraws,
}

// resolveEffect dispatches the played card's effect. Direction changes made
// by an effect resolve before any next-seat computation it performs.
func (g *GameState) resolveEffect(played Card) string {
	if effect, ok := specialEffects[played.Rank]; ok {
		return effect(g)
	}
	g.advanceTurn(1)
	return ""
}

// effectWildcard forces the next player to draw five cards and skips their
// turn. The skip stands even when the piles cannot cover the full draw.
func effectWildcard(g *GameState) string {
	victim := g.seatAfter(g.CurrentPlayerIndex, 1)
	drawn, _ := g.drawCards(victim, wildcardDrawCount)
	g.advanceTurn(2)
	return fmt.Sprintf("%s drew %d and was skipped", g.Players[victim].Name, len(drawn))
}

// effectSkipNext passes over the next player's turn.
func effectSkipNext(g *GameState) string {
	skipped := g.seatAfter(g.CurrentPlayerIndex, 1)
	g.advanceTurn(2)
	return fmt.Sprintf("%s was skipped", g.Players[skipped].Name)
}

// effectReverse flips the play direction, then advances one seat in the new
// direction. On a two-player table that hands the turn to the opponent as
// usual.
func effectReverse(g *GameState) string {
	g.Direction = g.Direction.Reversed()
	g.advanceTurn(1)
	return "direction reversed"
}

// effectPreviousDraws makes the previous player draw one card. Previous is
// computed in the direction that was active when the card was played.
func effectPreviousDraws(g *GameState) string {
	victim := g.seatAfter(g.CurrentPlayerIndex, -1)
	drawn, _ := g.drawCards(victim, 1)
	g.advanceTurn(1)
	if len(drawn) == 0 {
		return fmt.Sprintf("%s had nothing to draw", g.Players[victim].Name)
	}
	return fmt.Sprintf("%s drew a card", g.Players[victim].Name)
}

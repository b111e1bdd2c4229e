package engine

import "fmt"

// lastCardPenalty is the number of cards drawn for playing an undeclared
// final card.
const lastCardPenalty = 2

// Action is one player- or host-initiated transition request. The set of
// variants is closed; Apply dispatches over it exhaustively.
type Action interface {
	isAction()
}

// PlayCard plays a card from the acting player's hand onto the discard pile.
type PlayCard struct {
	PlayerIndex int
	Card        Card
}

// DrawCard draws one card from the deck into the acting player's hand.
type DrawCard struct {
	PlayerIndex int
}

// DeclareLastCard flags that the player is about to play their final card.
type DeclareLastCard struct {
	PlayerIndex int
}

// StartMatch deals the opening round for a fresh table.
type StartMatch struct {
	Players  []Seat
	Settings Settings
	Seed     uint64
}

// StartNextRound re-deals for the surviving players of an ended round.
type StartNextRound struct{}

func (PlayCard) isAction()        {}
func (DrawCard) isAction()        {}
func (DeclareLastCard) isAction() {}
func (StartMatch) isAction()      {}
func (StartNextRound) isAction()  {}

// Apply computes the successor state for one action. On error the returned
// state is the input state unchanged: a transition fully succeeds or is
// fully rejected.
func Apply(state GameState, action Action) (GameState, error) {
	switch a := action.(type) {
	case PlayCard:
		return applyPlayCard(state, a.PlayerIndex, a.Card)
	case DrawCard:
		return applyDrawCard(state, a.PlayerIndex)
	case DeclareLastCard:
		return applyDeclareLastCard(state, a.PlayerIndex)
	case StartMatch:
		return NewMatch(a.Players, a.Settings, a.Seed)
	case StartNextRound:
		return NextRound(state)
	default:
		return state, fmt.Errorf("unhandled action type %T", action)
	}
}

// checkActing validates that the round is running, playerIndex is seated
// and it is that player's turn.
func (g *GameState) checkActing(playerIndex int) error {
	if !g.Started {
		return ErrGameNotStarted
	}
	if g.Ended {
		return ErrGameEnded
	}
	if playerIndex < 0 || playerIndex >= len(g.Players) {
		return ErrNoSuchPlayer
	}
	if playerIndex != g.CurrentPlayerIndex {
		return ErrNotPlayersTurn
	}
	return nil
}

// applyPlayCard resolves one card play in order: validation, the last-card
// penalty, the play itself, win detection, then the card's effect on turn
// order. A play that wins the round stops before any effect resolves.
func applyPlayCard(state GameState, playerIndex int, card Card) (GameState, error) {
	if err := state.checkActing(playerIndex); err != nil {
		return state, err
	}
	handIdx := state.Players[playerIndex].handIndex(card.ID)
	if handIdx < 0 {
		return state, ErrCardNotInHand
	}
	played := state.Players[playerIndex].Hand[handIdx]
	if top, ok := state.TopOfDiscard(); ok && !IsValidMove(played, top, state.Settings.EnableBluffing) {
		return state, &InvalidMoveError{Card: played, Top: top}
	}

	g := state.Clone()
	player := &g.Players[playerIndex]
	g.LastAction = LastAction{PlayerID: player.ID}

	// Last-card enforcement happens before the card leaves the hand. The
	// penalized player still gets to complete the play afterwards.
	penaltyDrawn := 0
	if g.Settings.EnforceLastCard && len(player.Hand) == 1 && !player.DeclaredLastCard {
		if g.Settings.AutoDeclareLastCard {
			player.DeclaredLastCard = true
		} else {
			drawn, _ := g.drawCards(playerIndex, lastCardPenalty)
			penaltyDrawn = len(drawn)
			g.LastAction.Penalized = true
		}
	}

	player.Hand = append(player.Hand[:handIdx], player.Hand[handIdx+1:]...)
	g.DiscardPile = append(g.DiscardPile, played)

	// Emptying the hand wins the round outright: scores settle and no
	// turn advancement or card effect applies.
	if len(player.Hand) == 0 {
		g.endRound(playerIndex, played)
		return g, nil
	}

	note := g.resolveEffect(played)

	// Every completed play changes some hand, so all pending declarations
	// go stale and reset.
	g.resetDeclarations()

	desc := fmt.Sprintf("%s played %s", player.Name, played)
	if g.LastAction.Penalized {
		desc = fmt.Sprintf("%s drew %d penalty cards for an undeclared last card and played %s",
			player.Name, penaltyDrawn, played)
	}
	if note != "" {
		desc += "; " + note
	}
	g.LastAction.Description = desc
	return g, nil
}

// applyDrawCard draws one card for the acting player. A playable draw keeps
// the turn so the player may choose to play it; an unplayable draw passes
// the turn on. When deck and discard pile together hold nothing to draw,
// the action is a reported no-op.
func applyDrawCard(state GameState, playerIndex int) (GameState, error) {
	if err := state.checkActing(playerIndex); err != nil {
		return state, err
	}

	g := state.Clone()
	player := &g.Players[playerIndex]
	g.LastAction = LastAction{PlayerID: player.ID}

	drawn, _ := g.drawCards(playerIndex, 1)
	if len(drawn) == 0 {
		g.LastAction.Description = fmt.Sprintf("%s could not draw: no cards left", player.Name)
		return g, nil
	}

	if top, ok := g.TopOfDiscard(); !ok || IsValidMove(drawn[0], top, g.Settings.EnableBluffing) {
		g.LastAction.Description = fmt.Sprintf("%s drew a card and may play it", player.Name)
		return g, nil
	}

	g.advanceTurn(1)
	g.resetDeclarations()
	g.LastAction.Description = fmt.Sprintf("%s drew a card", player.Name)
	return g, nil
}

// applyDeclareLastCard records the player's declaration. Declaring is legal
// at any point regardless of hand size or turn; whether it was truthful is
// settled when the final card is played.
func applyDeclareLastCard(state GameState, playerIndex int) (GameState, error) {
	if !state.Started {
		return state, ErrGameNotStarted
	}
	if state.Ended {
		return state, ErrGameEnded
	}
	if playerIndex < 0 || playerIndex >= len(state.Players) {
		return state, ErrNoSuchPlayer
	}

	g := state.Clone()
	player := &g.Players[playerIndex]
	player.DeclaredLastCard = true
	g.LastAction = LastAction{
		Description: fmt.Sprintf("%s declared last card", player.Name),
		PlayerID:    player.ID,
	}
	return g, nil
}

// ---------------------------------------------------------------------------
// Drawing and turn rotation
// ---------------------------------------------------------------------------

// drawCards moves up to count cards from the deck into the player's hand,
// reshuffling the discard pile into the deck when it runs dry. Short draws
// are not errors: the returned slice holds what was actually drawn, and the
// running LastAction totals are updated.
func (g *GameState) drawCards(playerIndex, count int) (drawn []Card, reshuffled bool) {
	for len(drawn) < count {
		if len(g.Deck) == 0 {
			if !g.attemptReshuffle() {
				break
			}
			reshuffled = true
		}
		card := g.Deck[len(g.Deck)-1]
		g.Deck = g.Deck[:len(g.Deck)-1]
		g.Players[playerIndex].Hand = append(g.Players[playerIndex].Hand, card)
		drawn = append(drawn, card)
	}
	g.LastAction.CardsDrawn += len(drawn)
	if reshuffled {
		g.LastAction.Reshuffled = true
	}
	return drawn, reshuffled
}

// attemptReshuffle rebuilds the deck from the discard pile, holding the top
// card aside as the active discard. Reports whether any cards moved.
func (g *GameState) attemptReshuffle() bool {
	if len(g.DiscardPile) <= 1 {
		return false
	}
	top := g.DiscardPile[len(g.DiscardPile)-1]
	g.Deck = append(g.Deck, g.DiscardPile[:len(g.DiscardPile)-1]...)
	g.DiscardPile = []Card{top}
	g.shuffleInPlace(g.Deck)
	return true
}

// advanceTurn moves the current seat step positions in the active direction.
func (g *GameState) advanceTurn(step int) {
	g.CurrentPlayerIndex = g.seatAfter(g.CurrentPlayerIndex, step)
}

// resetDeclarations clears every player's declared flag. Hands change on
// any completed play or turn-passing draw, so prior declarations no longer
// describe the table.
func (g *GameState) resetDeclarations() {
	for i := range g.Players {
		g.Players[i].DeclaredLastCard = false
	}
}

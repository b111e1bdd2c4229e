package match

import (
	"github.com/google/uuid"

	"github.com/luizforgas/mau-mau-forgas/engine"
)

// CardView describes a revealed card in a state snapshot.
type CardView struct {
	ID    string `json:"id"`
	Suit  string `json:"suit"`
	Rank  string `json:"rank"`
	Value int    `json:"value"`
}

// PlayerView describes one seat as seen by a particular observer.
// Hand is populated only for the observer's own seat; every other seat is
// reduced to a hand count.
type PlayerView struct {
	PlayerID         string     `json:"playerId"`
	Name             string     `json:"name"`
	HandCount        int        `json:"handCount"`
	Score            int        `json:"score"`
	DeclaredLastCard bool       `json:"declaredLastCard"`
	Eliminated       bool       `json:"eliminated"`
	IsCurrentTurn    bool       `json:"isCurrentTurn"`
	Hand             []CardView `json:"hand,omitempty"`
}

// View is a snapshot of the match tailored to one observer.
type View struct {
	MatchID         uuid.UUID       `json:"matchId"`
	Started         bool            `json:"started"`
	RoundOver       bool            `json:"roundOver"`
	MatchOver       bool            `json:"matchOver"`
	Turn            int             `json:"turn"`
	CurrentPlayerID string          `json:"currentPlayerId,omitempty"`
	Direction       int             `json:"direction"`
	DeckCount       int             `json:"deckCount"`
	DiscardCount    int             `json:"discardCount"`
	DiscardTop      *CardView       `json:"discardTop,omitempty"`
	WinnerID        string          `json:"winnerId,omitempty"`
	Players         []PlayerView    `json:"players"`
	Settings        engine.Settings `json:"settings"`
}

func cardView(c engine.Card) *CardView {
	return &CardView{ID: c.ID, Suit: string(c.Suit), Rank: string(c.Rank), Value: c.Value()}
}

// viewFor builds the snapshot visible to the given observer.
// Assumes the match lock is held by the caller.
func (m *Match) viewFor(observer uuid.UUID) View {
	v := View{
		MatchID:      m.ID,
		Started:      m.started,
		RoundOver:    m.state.Ended,
		MatchOver:    m.ended,
		Turn:         m.turnID,
		Direction:    int(m.state.Direction),
		DeckCount:    len(m.state.Deck),
		DiscardCount: len(m.state.DiscardPile),
		WinnerID:     m.state.WinnerID,
		Settings:     m.state.Settings,
	}
	if top, ok := m.state.TopOfDiscard(); ok {
		v.DiscardTop = cardView(top)
	}
	if m.started && !m.ended && !m.state.Ended {
		v.CurrentPlayerID = m.state.CurrentPlayer().ID
	}

	self := observer.String()
	v.Players = make([]PlayerView, len(m.state.Players))
	for i, p := range m.state.Players {
		pv := PlayerView{
			PlayerID:         p.ID,
			Name:             p.Name,
			HandCount:        len(p.Hand),
			Score:            p.Score,
			DeclaredLastCard: p.DeclaredLastCard,
			Eliminated:       p.Eliminated,
			IsCurrentTurn:    v.CurrentPlayerID != "" && v.CurrentPlayerID == p.ID,
		}
		if p.ID == self {
			pv.Hand = make([]CardView, len(p.Hand))
			for j, c := range p.Hand {
				pv.Hand[j] = *cardView(c)
			}
		}
		v.Players[i] = pv
	}
	return v
}

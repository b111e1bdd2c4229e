package engine

import (
	"fmt"
	"strconv"
)

// Suit identifies one of the four standard suits, or the wildcard suit.
type Suit string

const (
	SuitHearts   Suit = "hearts"
	SuitDiamonds Suit = "diamonds"
	SuitClubs    Suit = "clubs"
	SuitSpades   Suit = "spades"
	SuitWild     Suit = "wild"
)

// Rank identifies a card rank. Numeral ranks keep their printed value.
type Rank string

const (
	RankTwo   Rank = "2"
	RankThree Rank = "3"
	RankFour  Rank = "4"
	RankFive  Rank = "5"
	RankSix   Rank = "6"
	RankSeven Rank = "7"
	RankEight Rank = "8"
	RankNine  Rank = "9"
	RankTen   Rank = "10"
	RankJack  Rank = "J"
	RankQueen Rank = "Q"
	RankKing  Rank = "K"
	RankAce   Rank = "A"
	RankWild  Rank = "W"
)

// standardSuits and standardRanks list the non-wild card space in deck
// construction order.
var standardSuits = [4]Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}

var standardRanks = [13]Rank{
	RankTwo, RankThree, RankFour, RankFive, RankSix, RankSeven, RankEight,
	RankNine, RankTen, RankJack, RankQueen, RankKing, RankAce,
}

// Card is a single playing card. Immutable once built; ID is unique within
// one built deck.
type Card struct {
	ID   string `json:"id"`
	Suit Suit   `json:"suit"`
	Rank Rank   `json:"rank"`
}

// IsRed reports whether the card is red (hearts or diamonds).
func (c Card) IsRed() bool {
	return c.Suit == SuitHearts || c.Suit == SuitDiamonds
}

// IsWild reports whether the card is a wildcard.
func (c Card) IsWild() bool { return c.Rank == RankWild }

// Value returns the card's scoring value: numerals count face value, face
// cards ten, aces fifteen and wildcards twenty.
func (c Card) Value() int {
	switch c.Rank {
	case RankWild:
		return 20
	case RankAce:
		return 15
	case RankJack, RankQueen, RankKing:
		return 10
	default:
		n, _ := strconv.Atoi(string(c.Rank))
		return n
	}
}

// String renders the card for action descriptions, e.g. "Q of spades".
func (c Card) String() string {
	if c.IsWild() {
		return "a wildcard"
	}
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Direction is the seating traversal order used to compute the next seat.
type Direction int8

const (
	DirectionForward Direction = 1
	DirectionReverse Direction = -1
)

// Reversed returns the opposite traversal order.
func (d Direction) Reversed() Direction { return -d }

// Seat names a participant joining a match: a stable id and a display name.
// Hosts own id generation; the engine treats ids as opaque strings.
type Seat struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Player is one participant's in-round and across-round state. Hand order
// carries no gameplay meaning but stays stable for UI rendering.
type Player struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Hand             []Card `json:"hand"`
	Score            int    `json:"score"`
	DeclaredLastCard bool   `json:"declaredLastCard"`
	Eliminated       bool   `json:"eliminated"`
}

// HandValue returns the combined scoring value of the player's hand.
func (p Player) HandValue() int {
	total := 0
	for _, c := range p.Hand {
		total += c.Value()
	}
	return total
}

// handIndex returns the position of the card with the given id, or -1.
func (p Player) handIndex(cardID string) int {
	for i, c := range p.Hand {
		if c.ID == cardID {
			return i
		}
	}
	return -1
}

// LastAction is the structured record of the most recent transition. The
// Description is what UIs display; the remaining fields report draw and
// penalty outcomes so callers can react without diffing states.
type LastAction struct {
	Description string `json:"description"`
	PlayerID    string `json:"playerId,omitempty"`
	CardsDrawn  int    `json:"cardsDrawn,omitempty"`
	Reshuffled  bool   `json:"reshuffled,omitempty"`
	Penalized   bool   `json:"penalized,omitempty"`
}

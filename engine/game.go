// Package engine implements the Mau Mau card game rules.
//
// The engine is a pure state-transition core: every operation consumes a
// GameState plus an Action and returns a fresh successor state, leaving the
// input untouched. It performs no I/O, holds no locks and keeps no global
// state, so hosts can drive it from any concurrency model. A transition
// either fully succeeds or is fully rejected with an error.
package engine

import "fmt"

const (
	// HandSize is the number of cards dealt to each player at round start.
	HandSize = 7

	// MinPlayers is the smallest table a round can be dealt for.
	MinPlayers = 2

	// deckCopies is the number of interleaved standard 52-card decks.
	deckCopies = 2

	// wildcardsPerCopy is the number of wildcards added per sub-deck when
	// the settings enable them.
	wildcardsPerCopy = 2
)

// GameState holds the complete, self-contained state of one Mau Mau round,
// plus the across-round player scores. It is the sole unit of truth passed
// between engine calls and is replaced wholesale on every transition, so a
// retained copy is immune to later moves.
type GameState struct {
	Players            []Player   `json:"players"`
	CurrentPlayerIndex int        `json:"currentPlayerIndex"`
	Deck               []Card     `json:"deck"`
	DiscardPile        []Card     `json:"discardPile"`
	Direction          Direction  `json:"direction"`
	Started            bool       `json:"gameStarted"`
	Ended              bool       `json:"gameEnded"`
	WinnerID           string     `json:"winnerId,omitempty"`
	LastAction         LastAction `json:"lastAction"`
	Settings           Settings   `json:"settings"`

	// RNG is the xorshift64 state behind every shuffle after the first, so
	// a (seed, action sequence) pair replays deterministically.
	RNG uint64 `json:"rngState"`
}

// ---------------------------------------------------------------------------
// xorshift64 RNG, kept inline so the state serializes with the game
// ---------------------------------------------------------------------------

func (g *GameState) nextRand() uint64 {
	x := g.RNG
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	g.RNG = x
	return x
}

// randN returns a random number in [0, n).
func (g *GameState) randN(n uint64) uint64 {
	return g.nextRand() % n
}

// normalizeSeed maps the one seed xorshift64 cannot run from onto a valid one.
func normalizeSeed(seed uint64) uint64 {
	if seed == 0 {
		return 1 // xorshift can't start at 0
	}
	return seed
}

// shuffleInPlace runs a Fisher-Yates pass over cards using the state RNG.
func (g *GameState) shuffleInPlace(cards []Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := int(g.randN(uint64(i + 1)))
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// ---------------------------------------------------------------------------
// Deck construction, shuffling and dealing
// ---------------------------------------------------------------------------

// BuildDeck builds the unshuffled playing deck: two interleaved standard
// 52-card decks, plus two wildcards per sub-deck when includeWildcards is
// set. Card ids are suit-rank-copy composites, unique within the deck.
func BuildDeck(includeWildcards bool) []Card {
	size := deckCopies * 52
	if includeWildcards {
		size += deckCopies * wildcardsPerCopy
	}
	deck := make([]Card, 0, size)
	for _, suit := range standardSuits {
		for _, rank := range standardRanks {
			for copyNum := 1; copyNum <= deckCopies; copyNum++ {
				deck = append(deck, Card{
					ID:   fmt.Sprintf("%s-%s-%d", suit, rank, copyNum),
					Suit: suit,
					Rank: rank,
				})
			}
		}
	}
	if includeWildcards {
		for copyNum := 1; copyNum <= deckCopies*wildcardsPerCopy; copyNum++ {
			deck = append(deck, Card{
				ID:   fmt.Sprintf("%s-%s-%d", SuitWild, RankWild, copyNum),
				Suit: SuitWild,
				Rank: RankWild,
			})
		}
	}
	return deck
}

// Shuffle returns a shuffled copy of cards, leaving the input unmodified.
// The same seed always yields the same permutation.
func Shuffle(cards []Card, seed uint64) []Card {
	out := cloneCards(cards)
	g := GameState{RNG: normalizeSeed(seed)}
	g.shuffleInPlace(out)
	return out
}

// Deal distributes handSize cards to each player in round-robin order, one
// card per player per pass, drawing from the end of the deck. A deck too
// small for the table deals out what it has; sizing the deck is the
// caller's concern. Inputs are not modified.
func Deal(players []Player, deck []Card, handSize int) ([]Player, []Card) {
	dealt := clonePlayers(players)
	rest := cloneCards(deck)
	for c := 0; c < handSize; c++ {
		for p := range dealt {
			if len(rest) == 0 {
				return dealt, rest
			}
			card := rest[len(rest)-1]
			rest = rest[:len(rest)-1]
			dealt[p].Hand = append(dealt[p].Hand, card)
		}
	}
	return dealt, rest
}

// ---------------------------------------------------------------------------
// Deep copies
// ---------------------------------------------------------------------------

func cloneCards(cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}

func clonePlayers(players []Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		p.Hand = cloneCards(p.Hand)
		out[i] = p
	}
	return out
}

// Clone returns a deep copy of the state. Transitions mutate a clone so a
// rejected action can hand the caller's state back untouched.
func (g GameState) Clone() GameState {
	g.Players = clonePlayers(g.Players)
	g.Deck = cloneCards(g.Deck)
	g.DiscardPile = cloneCards(g.DiscardPile)
	return g
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// TopOfDiscard returns the active discard card. ok is false before the
// discard pile has been seeded.
func (g GameState) TopOfDiscard() (Card, bool) {
	if len(g.DiscardPile) == 0 {
		return Card{}, false
	}
	return g.DiscardPile[len(g.DiscardPile)-1], true
}

// CurrentPlayer returns the player whose turn it is. Only meaningful on a
// started state.
func (g GameState) CurrentPlayer() Player {
	return g.Players[g.CurrentPlayerIndex]
}

// PlayerIndexByID returns the seat index of the player with the given id,
// or -1 when no such player is seated.
func (g GameState) PlayerIndexByID(id string) int {
	for i, p := range g.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// seatAfter returns the seat reached by stepping step seats from `from` in
// the current direction, wrapping around the table in either sign.
func (g GameState) seatAfter(from, step int) int {
	n := len(g.Players)
	i := (from + int(g.Direction)*step) % n
	if i < 0 {
		i += n
	}
	return i
}

// NextPlayerIndex returns the seat acting after the current one in the
// present direction.
func (g GameState) NextPlayerIndex() int {
	return g.seatAfter(g.CurrentPlayerIndex, 1)
}

// CardCount returns the total number of cards across hands, deck and
// discard pile. It is constant for the lifetime of a round.
func (g GameState) CardCount() int {
	total := len(g.Deck) + len(g.DiscardPile)
	for _, p := range g.Players {
		total += len(p.Hand)
	}
	return total
}

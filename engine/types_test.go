package engine

import "testing"

// TestCardValue verifies the scoring value of every rank.
func TestCardValue(t *testing.T) {
	tests := []struct {
		rank Rank
		want int
	}{
		{RankTwo, 2},
		{RankThree, 3},
		{RankFour, 4},
		{RankFive, 5},
		{RankSix, 6},
		{RankSeven, 7},
		{RankEight, 8},
		{RankNine, 9},
		{RankTen, 10},
		{RankJack, 10},
		{RankQueen, 10},
		{RankKing, 10},
		{RankAce, 15},
		{RankWild, 20},
	}
	for _, tt := range tests {
		c := Card{Suit: SuitSpades, Rank: tt.rank}
		if got := c.Value(); got != tt.want {
			t.Errorf("Value(%s) = %d, want %d", tt.rank, got, tt.want)
		}
	}
}

// TestCardIsRed verifies suit coloring, including the wild suit.
func TestCardIsRed(t *testing.T) {
	tests := []struct {
		suit Suit
		want bool
	}{
		{SuitHearts, true},
		{SuitDiamonds, true},
		{SuitClubs, false},
		{SuitSpades, false},
		{SuitWild, false},
	}
	for _, tt := range tests {
		c := Card{Suit: tt.suit, Rank: RankFive}
		if got := c.IsRed(); got != tt.want {
			t.Errorf("IsRed(%s) = %v, want %v", tt.suit, got, tt.want)
		}
	}
}

// TestCardIsWild verifies that only wildcard-ranked cards report as wild.
func TestCardIsWild(t *testing.T) {
	wild := Card{Suit: SuitWild, Rank: RankWild}
	if !wild.IsWild() {
		t.Errorf("IsWild(wildcard) = false, want true")
	}
	plain := Card{Suit: SuitHearts, Rank: RankAce}
	if plain.IsWild() {
		t.Errorf("IsWild(A of hearts) = true, want false")
	}
}

// TestCardString verifies the rendering used in action descriptions.
func TestCardString(t *testing.T) {
	queen := Card{Suit: SuitSpades, Rank: RankQueen}
	if got := queen.String(); got != "Q of spades" {
		t.Errorf("String() = %q, want %q", got, "Q of spades")
	}
	wild := Card{Suit: SuitWild, Rank: RankWild}
	if got := wild.String(); got != "a wildcard" {
		t.Errorf("String() = %q, want %q", got, "a wildcard")
	}
}

// TestDirectionReversed verifies direction flipping both ways.
func TestDirectionReversed(t *testing.T) {
	if got := DirectionForward.Reversed(); got != DirectionReverse {
		t.Errorf("DirectionForward.Reversed() = %d, want %d", got, DirectionReverse)
	}
	if got := DirectionReverse.Reversed(); got != DirectionForward {
		t.Errorf("DirectionReverse.Reversed() = %d, want %d", got, DirectionForward)
	}
}

// TestHandValue verifies hand totals over a mixed hand.
func TestHandValue(t *testing.T) {
	p := Player{Hand: []Card{
		{Suit: SuitHearts, Rank: RankThree},
		{Suit: SuitClubs, Rank: RankKing},
		{Suit: SuitSpades, Rank: RankAce},
		{Suit: SuitWild, Rank: RankWild},
	}}
	if got, want := p.HandValue(), 3+10+15+20; got != want {
		t.Fatalf("HandValue() = %d, want %d", got, want)
	}
	if got := (Player{}).HandValue(); got != 0 {
		t.Fatalf("HandValue(empty) = %d, want 0", got)
	}
}

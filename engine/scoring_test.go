package engine

import "testing"

// scoredPlayers builds three scored players with the given hands, all at
// the default starting score.
func scoredPlayers(hands ...[]Card) []Player {
	players := make([]Player, len(hands))
	for i, h := range hands {
		players[i] = Player{
			ID:    string(rune('a' + i)),
			Name:  string(rune('A' + i)),
			Hand:  cloneCards(h),
			Score: 100,
		}
	}
	return players
}

// TestCalculateScoresWinnerUntouched verifies the winner keeps their score
// while losers pay for their remaining hands.
func TestCalculateScoresWinnerUntouched(t *testing.T) {
	players := scoredPlayers(
		nil, // winner, empty hand
		[]Card{mkCard("ck", SuitClubs, RankKing), mkCard("h5", SuitHearts, RankFive)},
		[]Card{mkCard("w1", SuitWild, RankWild)},
	)

	scored := CalculateScores(players, "a")
	if got := scored[0].Score; got != 100 {
		t.Errorf("winner score = %d, want 100", got)
	}
	if got := scored[1].Score; got != 100-15 {
		t.Errorf("player b score = %d, want %d", got, 100-15)
	}
	if got := scored[2].Score; got != 100-20 {
		t.Errorf("player c score = %d, want %d", got, 100-20)
	}
	for i, p := range scored {
		if p.Eliminated {
			t.Errorf("player %d eliminated = true, want false", i)
		}
	}
}

// TestCalculateScoresEliminatesAtZero verifies a score of exactly zero
// eliminates, as does a negative one.
func TestCalculateScoresEliminatesAtZero(t *testing.T) {
	players := scoredPlayers(
		nil,
		[]Card{mkCard("w1", SuitWild, RankWild)},
		[]Card{mkCard("w2", SuitWild, RankWild)},
	)
	players[1].Score = 20 // drops to exactly zero
	players[2].Score = 10 // drops below zero

	scored := CalculateScores(players, "a")
	if got := scored[1].Score; got != 0 {
		t.Errorf("player b score = %d, want 0", got)
	}
	if !scored[1].Eliminated {
		t.Errorf("player b not eliminated at score 0")
	}
	if got := scored[2].Score; got != -10 {
		t.Errorf("player c score = %d, want -10", got)
	}
	if !scored[2].Eliminated {
		t.Errorf("player c not eliminated at score -10")
	}
}

// TestCalculateScoresPure verifies the input slice is not modified.
func TestCalculateScoresPure(t *testing.T) {
	players := scoredPlayers(
		nil,
		[]Card{mkCard("ck", SuitClubs, RankKing)},
	)

	CalculateScores(players, "a")
	if got := players[1].Score; got != 100 {
		t.Fatalf("input player score = %d, want 100 (CalculateScores must not mutate)", got)
	}
	if players[1].Eliminated {
		t.Fatalf("input player eliminated, CalculateScores must not mutate")
	}
}

// TestCalculateScoresEmptyLoserHand verifies a loser with no cards pays
// nothing.
func TestCalculateScoresEmptyLoserHand(t *testing.T) {
	players := scoredPlayers(nil, nil)
	scored := CalculateScores(players, "a")
	if got := scored[1].Score; got != 100 {
		t.Errorf("player b score = %d, want 100", got)
	}
}

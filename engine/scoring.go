package engine

// CalculateScores settles a finished round: the winner's score is untouched
// and every other player loses the combined value of the cards left in
// their hand. A score at or below zero eliminates the player. The input
// slice is not modified.
//
// Card values: numerals count face value, J/Q/K ten, aces fifteen and
// wildcards twenty.
func CalculateScores(players []Player, winnerID string) []Player {
	out := clonePlayers(players)
	for i := range out {
		if out[i].ID == winnerID {
			continue
		}
		out[i].Score -= out[i].HandValue()
		if out[i].Score <= 0 {
			out[i].Eliminated = true
		}
	}
	return out
}

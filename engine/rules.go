package engine

// Settings holds the rule knobs fixed for the lifetime of one match.
type Settings struct {
	// StartingScore is each player's score at the start of a match.
	StartingScore int `json:"startingScore"`
	// IncludeWildcards adds two wildcards per sub-deck when building a deck.
	IncludeWildcards bool `json:"includeWildcards"`
	// EnableBluffing lets any card be played regardless of the discard top.
	EnableBluffing bool `json:"enableBluffing"`
	// EnforceLastCard penalizes playing a final card without declaring it.
	EnforceLastCard bool `json:"enforceLastCard"`
	// AutoDeclareLastCard declares on the player's behalf instead of
	// penalizing. Only meaningful while EnforceLastCard is set.
	AutoDeclareLastCard bool `json:"autoDeclareLastCard"`
}

// DefaultSettings returns the standard rule set.
func DefaultSettings() Settings {
	return Settings{
		StartingScore:       100,
		IncludeWildcards:    true,
		EnableBluffing:      false,
		EnforceLastCard:     true,
		AutoDeclareLastCard: false,
	}
}

// IsValidMove reports whether card may be played onto top. A wildcard on
// either side matches anything, bluffing waives matching entirely, and
// otherwise the suit or the rank must match.
func IsValidMove(card, top Card, bluffing bool) bool {
	if bluffing {
		return true
	}
	if card.IsWild() || top.IsWild() {
		return true
	}
	return card.Suit == top.Suit || card.Rank == top.Rank
}

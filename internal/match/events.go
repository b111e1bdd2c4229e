package match

// EventType identifies a match event pushed to subscribers.
type EventType string

// Constants defining the event types delivered through the broadcast callbacks.
const (
	EventMatchState   EventType = "match_state"         // Private: observer-tailored state snapshot.
	EventPlayerTurn   EventType = "match_player_turn"   // Public: the current player's turn began.
	EventActionFailed EventType = "match_action_failed" // Private: a submitted command was rejected.
	EventRoundEnded   EventType = "match_round_ended"   // Public: a round finished, includes scores.
	EventMatchEnded   EventType = "match_ended"         // Public: fewer than two players remain.
)

// Event is the structure pushed to subscribers as the match develops.
type Event struct {
	Type    EventType              `json:"type"`
	Payload map[string]interface{} `json:"payload,omitempty"`
	State   *View                  `json:"state,omitempty"` // Populated for state sync events.
}

// Constants defining the command types players may submit.
const (
	CmdPlayCard        = "action_play"
	CmdDrawCard        = "action_draw"
	CmdDeclareLastCard = "action_declare"
)

// Command is a player request decoded from the transport layer. Play commands
// carry the card id under the "id" payload key.
type Command struct {
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by transitions. All are expected control flow:
// the caller's state stays valid and the rejected action can simply be
// retried with different input. Match with errors.Is.
var (
	// ErrMatchEnded reports that fewer than two players survived
	// elimination, so no further round can be dealt.
	ErrMatchEnded = errors.New("match ended: fewer than two players remain")

	ErrGameNotStarted = errors.New("round has not started")
	ErrGameEnded      = errors.New("round has already ended")
	ErrNotPlayersTurn = errors.New("not this player's turn")
	ErrNoSuchPlayer   = errors.New("player index out of range")
	ErrCardNotInHand  = errors.New("card is not in the player's hand")
)

// InvalidMoveError reports a play that fails move validation against the
// discard top. Match with errors.As.
type InvalidMoveError struct {
	Card Card
	Top  Card
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move: %s cannot be played on %s", e.Card, e.Top)
}

package game

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is wrapped by every rejected move
var ErrIllegalMove = errors.New("illegal move")

// Reason says why a move was rejected
type Reason string

const (
	ReasonEmptySource       Reason = "source pile is empty"
	ReasonFaceDown          Reason = "card is face-down"
	ReasonIndexOutOfRange   Reason = "card index out of range"
	ReasonColumnOutOfRange  Reason = "column out of range"
	ReasonSameColumn        Reason = "source and destination are the same column"
	ReasonNeedsKing         Reason = "only a King can go on an empty column"
	ReasonDoesNotStack      Reason = "card does not stack on the destination"
	ReasonBrokenRun         Reason = "cards above are not a descending alternating run"
	ReasonNotTopCard        Reason = "only the top card can go to a foundation"
	ReasonFoundationInvalid Reason = "card does not fit its foundation"
)

// MoveError describes a rejected move. It matches ErrIllegalMove with errors.Is.
type MoveError struct {
	Op     string
	Source Source
	Reason Reason
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%s from %s: %s", e.Op, e.Source, e.Reason)
}

func (e *MoveError) Unwrap() error {
	return ErrIllegalMove
}

func reject(op string, src Source, reason Reason) error {
	return &MoveError{Op: op, Source: src, Reason: reason}
}

package table

import "fmt"

// ResultCode distinguishes the flavors of a successful action
type ResultCode int

// result code constants
const (
	// Success is an ordinary accepted action
	Success ResultCode = iota
	// SuccessAllIn is an accepted action that put the player all-in
	SuccessAllIn
	// SuccessRoundEnded is an accepted action that ended the round
	SuccessRoundEnded
	// SuccessQueued is an accepted action deferred until conditions allow it
	SuccessQueued
)

func (c ResultCode) String() string {
	switch c {
	case SuccessAllIn:
		return "all-in"
	case SuccessRoundEnded:
		return "round-ended"
	case SuccessQueued:
		return "queued"
	}

	return "success"
}

// Result is the success half of an action response
type Result struct {
	Code   ResultCode
	Detail string
}

func result(code ResultCode, format string, a ...interface{}) Result {
	return Result{
		Code:   code,
		Detail: fmt.Sprintf(format, a...),
	}
}

// ErrorKind classifies why an action was rejected
type ErrorKind int

// error kind constants
const (
	ErrUnknown ErrorKind = iota
	// ErrNotPlaying means there is no round in progress
	ErrNotPlaying
	// ErrNotYourTurn means another seat is on the clock
	ErrNotYourTurn
	// ErrUnknownPlayer means the player is not at the table
	ErrUnknownPlayer
	// ErrInvalidAmount means the amount does not round to a positive integer
	ErrInvalidAmount
	// ErrInsufficientChips means the player cannot cover the amount
	ErrInsufficientChips
	// ErrBelowMinimumRaise means the raise is under the minimum increment
	ErrBelowMinimumRaise
	// ErrBelowCurrentBet means the bet does not exceed the live bet; the
	// player should call instead
	ErrBelowCurrentBet
	// ErrAboveMaximumBet means no opponent could match the bet
	ErrAboveMaximumBet
	// ErrNothingToCall means there is no bet to call
	ErrNothingToCall
	// ErrAlreadyMatched means the player already matched the current bet
	ErrAlreadyMatched
	// ErrCannotCheck means there is an outstanding bet
	ErrCannotCheck
	// ErrRoundInProgress means the action must wait for the round to end
	ErrRoundInProgress
	// ErrNotEnoughPlayers means a round needs at least two funded players
	ErrNotEnoughPlayers
)

// Error is an illegal-action response. The engine guarantees its state is
// unchanged whenever an Error is returned.
type Error struct {
	Kind ErrorKind
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

func newError(kind ErrorKind, format string, a ...interface{}) *Error {
	return &Error{
		Kind: kind,
		msg:  fmt.Sprintf(format, a...),
	}
}

package game

import "errors"

// Construction errors. These are fatal: no partial Game is produced.
var (
	ErrDeckSize          = errors.New("invalid deck size")
	ErrUnknownCardID     = errors.New("unknown card id")
	ErrMalformedDeckList = errors.New("malformed deck list")
	ErrMissingDeck       = errors.New("both players need a deck")
)

// ErrInvalidPositionKind is returned when a position variant does not match the card type.
var ErrInvalidPositionKind = errors.New("position kind does not match card type")

// Rejection reasons reported by Game.Check. ExecuteAction turns any of these
// into a false result with no state mutation.
var (
	ErrNotStarted        = errors.New("game has not started")
	ErrAlreadyStarted    = errors.New("game already started")
	ErrGameOver          = errors.New("game is over")
	ErrWrongPhase        = errors.New("action not allowed in this phase")
	ErrNotYourTurn       = errors.New("not the acting player's turn")
	ErrNotPlayerAction   = errors.New("action is not player-invocable")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrEmptyZone         = errors.New("zone is empty")
	ErrNoFreeZone        = errors.New("no free zone")
	ErrWrongCardType     = errors.New("wrong card type")
	ErrSummonUsed        = errors.New("normal summon already used this turn")
	ErrSummonCost        = errors.New("summon cost not met")
	ErrInvalidPosition   = errors.New("position not allowed for this action")
	ErrOncePerTurn       = errors.New("already done this turn")
	ErrNotActivatable    = errors.New("card cannot be activated")
	ErrConditionFailed   = errors.New("card condition not met")
	ErrUnknownEffect     = errors.New("card has no such effect")
	ErrNoCombatResolver  = errors.New("no combat resolver configured")
	ErrUnknownActionType = errors.New("unknown action type")
)

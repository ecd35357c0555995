package bridge

import "errors"

// Guard failures returned by machine operations. Every operation validates
// all preconditions before mutating anything, so any of these means state is
// unchanged. Callers match with errors.Is.
var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInsufficientFee  = errors.New("insufficient fee")
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrWrongDirection   = errors.New("wrong direction")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrAlreadyTerminal  = errors.New("order already terminal")
	ErrQueueEmpty       = errors.New("queue empty")
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

package app

import "errors"

var (
	// ErrMapNotFound is returned when an operation names a map id the
	// catalog does not contain.
	ErrMapNotFound = errors.New("app: map not found")
	// ErrInvalidArgument is returned for well-formed but semantically
	// invalid input, such as an empty player name.
	ErrInvalidArgument = errors.New("app: invalid argument")
	// ErrUnknownToken is returned when a well-formed bearer token does
	// not match any joined player.
	ErrUnknownToken = errors.New("app: unknown token")
)

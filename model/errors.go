package model

import "errors"

// Errors raised by the catalog while building maps. These never
// escape to a client — they are construction-time programmer errors
// that abort process startup.
var (
	ErrDuplicateMap    = errors.New("model: duplicate map id")
	ErrDuplicateOffice = errors.New("model: duplicate office id")
)

package core

import (
	"errors"
)

var (
	// ErrIndexOutOfRange reports an index that does not exist in the target
	// sequence at the time of the call.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrLengthMismatch reports two parallel sequences of different lengths.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrAttributeNotFound reports an attribute path that does not resolve
	// on the target object.
	ErrAttributeNotFound = errors.New("attribute not found")
	// ErrResourceUnavailable reports a datablock that is missing, already
	// freed, or otherwise not usable.
	ErrResourceUnavailable = errors.New("resource unavailable")
	// ErrInvalidParameter reports a parameter outside its accepted range.
	ErrInvalidParameter = errors.New("invalid parameter")
)

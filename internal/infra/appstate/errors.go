package appstate

import "errors"

var (
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrAlreadyTerminated      = errors.New("application already terminated")
)

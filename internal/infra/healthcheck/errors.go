package healthcheck

import "errors"

var (
	ErrCheckerNotFound          = errors.New("checker not found")
	ErrCheckerAlreadyRegistered = errors.New("checker already registered")
)

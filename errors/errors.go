package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")
	ErrLoopBusy    = fmt.Errorf("event loop queue is full")

	// Validation, recovered locally before any network call.
	ErrInvalidAddress = fmt.Errorf("invalid recipient address")
	ErrEmptyMessage   = fmt.Errorf("recipient and message must not be empty")
	ErrNegativeSurbs  = fmt.Errorf("surb count must not be negative")

	ErrConnection       = fmt.Errorf("connection to daemon failed")
	ErrTransportClosed  = fmt.Errorf("connection closed by the daemon")
	ErrMalformedFrame   = fmt.Errorf("malformed frame")
	ErrInvalidCharacter = fmt.Errorf("must be a single character")
)

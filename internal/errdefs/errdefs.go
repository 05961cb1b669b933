package errdefs

import "errors"

type ErrorType int

const (
	ErrTypeLaunch ErrorType = iota
	ErrTypeIPC
	ErrTypeConfigIO
	ErrTypeGeneric
)

type CustomError struct {
	Type    ErrorType
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

func NewCustomError(errType ErrorType, message string) error {
	return &CustomError{
		Type:    errType,
		Message: message,
	}
}

// IsType reports whether err carries the given error type.
func IsType(err error, errType ErrorType) bool {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Type == errType
	}
	return false
}

var (
	// ErrOverlayLaunch covers a missing, non-executable or failed overlay binary.
	ErrOverlayLaunch = NewCustomError(ErrTypeLaunch, "failed to launch overlay process")
	// ErrNightLightCall covers a failed or timed out compositor call.
	ErrNightLightCall = NewCustomError(ErrTypeIPC, "night light call failed")
	// ErrConfigIO covers config read/write failures.
	ErrConfigIO = NewCustomError(ErrTypeConfigIO, "config io failed")
	// ErrAlreadyRunning is returned when another instance holds the lock.
	ErrAlreadyRunning = NewCustomError(ErrTypeGeneric, "another dankdim instance is already running")
	// ErrUnknownProfile is returned for a profile id not in the table.
	ErrUnknownProfile = NewCustomError(ErrTypeGeneric, "unknown profile")
)

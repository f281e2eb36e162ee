package endpoints

import "errors"

var (
	// ErrMalformed indicates a write which is not a plain unsigned decimal number
	ErrMalformed = errors.New("malformed value")
	// ErrOutOfRange indicates a write with a value outside of the allowed bounds
	ErrOutOfRange = errors.New("value out of range")
	// ErrWriteTooLarge indicates a write exceeding WriteBufferSize
	ErrWriteTooLarge = errors.New("write too large")
	ErrReadOnly      = errors.New("endpoint is read-only")
	ErrNotFound      = errors.New("no such endpoint")
)

// IsRejectedInput returns true if err was caused by the caller's payload
func IsRejectedInput(err error) bool {
	return errors.Is(err, ErrMalformed) || errors.Is(err, ErrOutOfRange) || errors.Is(err, ErrWriteTooLarge)
}

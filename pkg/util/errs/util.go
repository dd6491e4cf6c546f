package errs

import (
	"errors"
	"fmt"
)

var (
	ErrMissingConfig = errors.New("config is missing")
	// ErrInvalidArgument is returned when an argument such as an
	// effect, effect type or color value is missing or malformed.
	ErrInvalidArgument = errors.New("invalid argument")
)

// InvalidArgument returns an error wrapping ErrInvalidArgument.
func InvalidArgument(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, a...))
}

// SilentError is an error wrapper type that silences an
// error and only logs them in the debug log.
//
// It is usually used to report data that was skipped while decoding
// item tags, e.g. effect ids the registry does not know.
type SilentError struct{ error }

func (e *SilentError) Error() string {
	return e.error.Error()
}

func NewSilentErr(format string, a ...interface{}) error {
	return &SilentError{fmt.Errorf(format, a...)}
}

func WrapSilent(wrappedErr error) error {
	return &SilentError{wrappedErr}
}

func (e *SilentError) Unwrap() error { return e.error }

// IsSilent reports whether every error in err's tree that is not a join
// is a SilentError. A nil error is not silent.
func IsSilent(err error) bool {
	if err == nil {
		return false
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if !IsSilent(e) {
				return false
			}
		}
		return true
	}
	var s *SilentError
	return errors.As(err, &s)
}

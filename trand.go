// Package trand generates reproducible pseudo-random values of SQL-visible
// types. Sub-packages hold the generator core (prng), the seeding protocol
// (stream), the type synthesizers (synth, netaddr) and the outer surfaces.
package trand

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is matched by every DomainError.
var ErrInvalidParameter = errors.New("invalid parameter value")

// DomainError reports an invalid parameter combination. It is returned
// before any stream is derived.
type DomainError struct {
	Param  string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Param, e.Reason)
}

// Is implements errors.Is.
func (e *DomainError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// NewDomainError create a new DomainError
func NewDomainError(param string, format string, args ...any) error {
	return &DomainError{
		Param:  param,
		Reason: fmt.Sprintf(format, args...),
	}
}

// IsDomainError reports whether err is or wraps a DomainError.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

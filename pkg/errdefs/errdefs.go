// Package errdefs defines the error types shared by the pattern building
// packages and helpers to wrap them with detail.
package errdefs

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedExpression signals that an input expression fails structural
	// validation, for example unbalanced brackets or a dangling intersection
	// operator. The caller must fix the expression; the error is not
	// recoverable by the library.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrUnsupportedConstruct signals that an input expression uses a syntax
	// feature the library does not model, such as an engine-specific class
	// extension. Surfaced instead of silently mis-transforming the input.
	ErrUnsupportedConstruct = errors.New("unsupported construct")

	// ErrInvalidParameter signals that the user input is invalid.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Newf wraps the base error and a formatted error created by fmt.Errorf,
// returns the error joined.
func Newf(base error, format string, args ...any) error {
	return errors.Join(base, fmt.Errorf(format, args...))
}

// NewE wraps the base error and the input error, returns the error joined.
func NewE(base error, err error) error {
	if err == nil || errors.Is(err, base) {
		return err
	}
	return errors.Join(base, err)
}

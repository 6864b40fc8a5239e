// Package errors wraps github.com/go-errors/errors so every component
// boundary in regref attaches a stack trace at the point an error first
// enters the pipeline, rather than at each call site that forwards it.
package errors

import (
	stderrors "errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// Error is an error decorated with a captured stack trace.
type Error = goerrors.Error

// New wraps v (an error, or any value go-errors knows how to format) with a
// stack trace captured at the call site. Calling New on an *Error returns it
// unchanged so repeated wrapping doesn't grow redundant stacks.
func New(v any) error {
	if v == nil {
		return nil
	}

	if err, ok := v.(*Error); ok {
		return err
	}

	return goerrors.Wrap(v, 1)
}

// Errorf formats according to a format specifier and wraps the result with a
// stack trace, in the manner of fmt.Errorf.
func Errorf(format string, args ...any) error {
	return goerrors.Wrap(fmt.Errorf(format, args...), 1)
}

// WithStackTrace is an alias for New, kept distinct so call sites can signal
// intent: this is the first place an underlying error is being promoted into
// a regref error, rather than a formatted message being built.
func WithStackTrace(err error) error {
	if err == nil {
		return nil
	}

	return New(err)
}

// Join combines errs with the standard library's errors.Join and attaches a
// stack trace iff the joined result is non-nil.
func Join(errs ...error) error {
	joined := stderrors.Join(errs...)
	if joined == nil {
		return nil
	}

	return goerrors.Wrap(joined, 1)
}

// Is reports whether any error in err's chain matches target, as errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target, as errors.As.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

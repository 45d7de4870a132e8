package main

import (
	"errors"

	"github.com/xmidt-org/httpheader"
)

// Process exit codes.  A missing header takes precedence over a malformed
// one when both occur.
const (
	exitSuccess      = 0
	exitError        = 1
	exitConfig       = 2
	exitNotFound     = 3
	exitTypeMismatch = 4
)

// ExitCoder is an optional interface that an error can implement to supply
// an associated exit code with that error.
type ExitCoder interface {
	// ExitCode returns the exit code associated with this error.
	ExitCode() int
}

type exitCodeErr struct {
	error
	exitCode int
}

func (ece exitCodeErr) ExitCode() int {
	return ece.exitCode
}

func (ece exitCodeErr) Unwrap() error {
	return ece.error
}

// useExitCode associates an existing error with an exit code.  A nil
// error stays nil.
func useExitCode(err error, exitCode int) error {
	if err == nil {
		return nil
	}

	return exitCodeErr{
		error:    err,
		exitCode: exitCode,
	}
}

// exitCodeFor determines the process exit code for the result of a command.
func exitCodeFor(err error) int {
	var ec ExitCoder
	switch {
	case err == nil:
		return exitSuccess

	case errors.As(err, &ec):
		return ec.ExitCode()

	case errors.Is(err, httpheader.ErrNotFound):
		return exitNotFound

	case errors.Is(err, httpheader.ErrTypeMismatch):
		return exitTypeMismatch

	default:
		return exitError
	}
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError signals a non-zero exit code without printing an extra
// error message. When a command handler returns an ExitError, main
// exits with the specified code without printing the error string;
// the command is expected to have already written its own output.
//
// This is useful when a non-zero exit is a valid outcome rather than
// an unexpected error: "tabular follow" returns code 130 after an
// interrupt, with the table frame already closed cleanly.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code. main checks for this interface on
// returned errors to distinguish "handled non-zero exit" from
// "unexpected error to display".
func (e *ExitError) ExitCode() int {
	return e.Code
}

// UsageError marks an error as a command-line usage problem: an
// unknown command or flag, a malformed flag value, or a wrong
// argument count. main prints the message and exits with code 2,
// keeping usage mistakes distinguishable from runtime failures.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func (e *UsageError) ExitCode() int {
	return 2
}

// Usagef builds a UsageError from a format string. Command handlers
// use it for argument-count and argument-shape complaints.
func Usagef(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

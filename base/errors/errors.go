// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers,
// extending the standard library errors package with slog
// logging of errors and generic one-line handling functions.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// New returns an error that formats as the given text.
// It is the same as [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target.
// It is the same as [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// It is the same as [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors.
// It is the same as [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap returns the result of calling the Unwrap method on err.
// It is the same as [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// CallerInfo returns string information about the caller
// of the function that called CallerInfo, for error logging.
func CallerInfo() string {
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown caller"
	}
	name := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
	}
	return fmt.Sprintf("%s (%s:%d)", name, file, line)
}

// Log takes the given error and logs it if it is non-nil,
// adding the caller's information. It returns the error
// unchanged, so it can be used in line:
//
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 takes the given value and error and logs the error
// if it is non-nil, returning the value in any case:
//
//	v := errors.Log1(MyFunc(x))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Must panics if the given error is non-nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns the given value and panics if the error is non-nil.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Ignore1 returns the given value, ignoring any error.
func Ignore1[T any](v T, err error) T {
	return v
}

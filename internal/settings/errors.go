// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongValue matches every [ValidationError].
	ErrWrongValue = errors.New("wrong value")
	// ErrMalformedNumber matches every [ParseError].
	ErrMalformedNumber = errors.New("malformed number")
)

// ValidationError reports an enum variable set to a value outside its
// allowed set.
type ValidationError struct {
	// Env is the offending environment variable name.
	Env string
	// Expected is the human-readable list of allowed values.
	Expected string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Wrong Value! %s needs %s", e.Env, e.Expected)
}

// Is reports whether target is [ErrWrongValue].
func (e *ValidationError) Is(target error) bool {
	return target == ErrWrongValue
}

// ParseError reports a numeric variable whose value is not a valid literal.
type ParseError struct {
	Env   string
	Value string
	Kind  Kind
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s literal %q for %s: %v", e.Kind, e.Value, e.Env, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is [ErrMalformedNumber].
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedNumber
}

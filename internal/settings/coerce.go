// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"
)

var (
	errNotFinite  = errors.New("value is not finite")
	errNotDecimal = errors.New("value is not a decimal literal")
)

// CoerceBool converts a raw boolean variable.
//
// An absent variable yields def. A variable set to the empty string is false
// regardless of def. Any other value is true only when it equals "true"
// case-insensitively; unrecognised values are false and never an error.
func CoerceBool(value string, ok bool, def bool) bool {
	if !ok {
		return def
	}
	if value == "" {
		return false
	}

	return strings.EqualFold(value, "true")
}

// CoerceInt converts a raw base-10 integer variable named key. Absent and
// empty values both yield def.
func CoerceInt(key, value string, ok bool, def int) (int, error) {
	if !ok || value == "" {
		return def, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &ParseError{Env: key, Value: value, Kind: KindInt, Err: err}
	}

	return n, nil
}

// CoerceFloat converts a raw floating-point variable named key. Absent and
// empty values both yield def. Only decimal literals are accepted: hexadecimal
// mantissas such as "0x1p-2" are rejected, and NaN and infinities are rejected
// because JSON cannot represent them.
func CoerceFloat(key, value string, ok bool, def float64) (float64, error) {
	if !ok || value == "" {
		return def, nil
	}

	literal := strings.TrimSpace(value)
	if strings.ContainsAny(literal, "xX") {
		return 0, &ParseError{Env: key, Value: value, Kind: KindFloat, Err: errNotDecimal}
	}

	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return 0, &ParseError{Env: key, Value: value, Kind: KindFloat, Err: err}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &ParseError{Env: key, Value: value, Kind: KindFloat, Err: errNotFinite}
	}

	return f, nil
}

// CoerceString returns value when the variable is present and def otherwise.
func CoerceString(value string, ok bool, def string) string {
	if !ok {
		return def
	}

	return value
}

// CheckEnum validates the variable named key against e. An absent variable is
// always accepted; a present one, including the empty string, must be one of
// e.Values exactly.
func CheckEnum(key, value string, ok bool, e Enum) error {
	if !ok || e.Allows(value) {
		return nil
	}

	return &ValidationError{Env: key, Expected: e.Description()}
}

// Enum is the allowed-value payload of [KindEnum] fields.
type Enum struct {
	Values []string
}

// NewEnum returns an Enum accepting exactly values.
func NewEnum(values ...string) Enum {
	return Enum{Values: values}
}

// Allows reports whether value is one of the allowed values. Matching is
// case-sensitive.
func (e Enum) Allows(value string) bool {
	return slices.Contains(e.Values, value)
}

// Description renders the allowed values for error messages, e.g.
// "Low, Normal or High".
func (e Enum) Description() string {
	switch len(e.Values) {
	case 0:
		return ""
	case 1:
		return e.Values[0]
	}

	last := len(e.Values) - 1
	return strings.Join(e.Values[:last], ", ") + " or " + e.Values[last]
}

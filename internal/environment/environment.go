// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=environment.go -destination=../mock/environment_mock.go -package=mock

// Package environment provides read-only snapshots of the variables the
// config creator reads.
//
// A snapshot distinguishes an absent variable from one set to the empty
// string. Snapshots are taken from the process environment, optionally
// layered over dotenv files.
//
// Dotenv values are read with godotenv, which expands $VAR and ${VAR} in
// unquoted and double-quoted values; an unset reference expands to the empty
// string. Single-quoted values are kept literally, so a server name or
// password containing '$' must be written as NAME='...'. Variables taken
// from the process environment are never expanded.
package environment

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Environment looks up variables by exact, case-sensitive name.
type Environment interface {
	// Lookup returns the value of key and whether it is set at all.
	Lookup(key string) (string, bool)
}

// Map is an immutable-by-convention snapshot of variables.
type Map map[string]string

// Lookup implements [Environment].
func (m Map) Lookup(key string) (string, bool) {
	value, ok := m[key]
	return value, ok
}

// FromOS snapshots the current process environment.
func FromOS() Map {
	return env.ToMap(os.Environ())
}

// Load reads the given dotenv files and overlays the process environment on
// top, so a variable set in the process always wins over a file. Later files
// win over earlier ones. With no files it is equivalent to [FromOS].
func Load(files ...string) (Map, error) {
	merged := make(Map)

	for _, file := range files {
		values, err := godotenv.Read(file)
		if err != nil {
			return nil, fmt.Errorf("error reading env file %q: %w", file, err)
		}
		for k, v := range values {
			merged[k] = v
		}
	}

	for k, v := range FromOS() {
		merged[k] = v
	}

	return merged, nil
}

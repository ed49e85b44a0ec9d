// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// EnvPrefix is prepended to every tool setting variable so that they never
// collide with the game server variables (PASSWORD, GAMEMODE, ...).
const EnvPrefix = "CREATOR_"

// StructuredConfig holds the config creator's own settings. It is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Output controls where the generated server config is written.
	Output Output `envPrefix:"OUTPUT_"`

	// Log controls diagnostic logging on stderr.
	Log Log `envPrefix:"LOG_"`

	// Source lists additional inputs for the game server variables.
	Source Source `envPrefix:"SOURCE_"`

	// JSONFilePath is the optional path to a JSON settings file merged on
	// top of env and flag values.
	// Env: CREATOR_CONFIG, flags: -c / -config
	JSONFilePath string `env:"CONFIG"`

	// ShowVersion makes the tool print its build info and exit.
	// Flag: -version
	ShowVersion bool
}

// Output holds the destination of the generated config.
type Output struct {
	// Path is the file the config is written to. Empty or "-" selects stdout.
	// Env: CREATOR_OUTPUT_PATH
	Path string `env:"PATH"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: CREATOR_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Source holds the inputs read in addition to the process environment.
type Source struct {
	// EnvFiles are dotenv files read before the process environment is
	// applied on top. Later files win.
	// Env: CREATOR_SOURCE_ENV_FILES (comma separated)
	EnvFiles []string `env:"ENV_FILES" envSeparator:","`
}

// GetStructuredConfig loads, merges, and validates the tool settings from
// all sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

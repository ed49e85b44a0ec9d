// Package config loads the config creator's own settings: where to write
// the generated server config, how verbosely to log, and which dotenv files
// to read besides the process environment.
//
// Settings are assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. CREATOR_-prefixed environment variables
//  2. Command-line flags
//  3. JSON settings file
//
// The main entry point is [GetStructuredConfig]. The game server variables
// themselves are read by package settings, not here.
package config

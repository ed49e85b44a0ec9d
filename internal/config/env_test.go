// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CREATOR_CONFIG":           "/path/to/creator.json",
		"CREATOR_OUTPUT_PATH":      "/sotf/userdata/dedicatedserver.cfg",
		"CREATOR_LOG_LEVEL":        "debug",
		"CREATOR_SOURCE_ENV_FILES": "base.env,override.env",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/creator.json", cfg.JSONFilePath)
	assert.Equal(t, "/sotf/userdata/dedicatedserver.cfg", cfg.Output.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"base.env", "override.env"}, cfg.Source.EnvFiles)
	assert.False(t, cfg.ShowVersion)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

// TestParseEnv_IgnoresUnprefixedVars verifies that game server variables
// sharing a name with a tool setting are not picked up.
func TestParseEnv_IgnoresUnprefixedVars(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG":      "/not/mine.json",
		"OUTPUT_PATH": "/not/mine.cfg",
		"LOG_LEVEL":   "debug",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, cfg.JSONFilePath)
	assert.Empty(t, cfg.Output.Path)
	assert.Empty(t, cfg.Log.Level)
}

// Helpers

var creatorEnvVars = []string{
	"CREATOR_CONFIG",
	"CREATOR_OUTPUT_PATH",
	"CREATOR_LOG_LEVEL",
	"CREATOR_SOURCE_ENV_FILES",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars blanks every tool variable for the duration of the test.
// t.Setenv restores the previous values on cleanup; the empty value is then
// removed so the variable reads as unset.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range creatorEnvVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/sotf-server-config/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// clearEnv unsets every variable the tool reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{"CREATOR_CONFIG", "CREATOR_OUTPUT_PATH", "CREATOR_LOG_LEVEL", "CREATOR_SOURCE_ENV_FILES"}
	for _, section := range settings.Sections() {
		for _, field := range section.Fields {
			keys = append(keys, field.Env)
		}
	}
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func runTool(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Defaults(t *testing.T) {
	clearEnv(t)

	code, out, errOut := runTool(t)

	require.Equal(t, 0, code)
	assert.Empty(t, errOut, "a successful run writes only the document")
	assert.Equal(t, "My Sotf Server", gjson.Get(out, "ServerName").String())
	assert.Equal(t, "Continue", gjson.Get(out, "SaveMode").String())
	assert.Equal(t, "{}", gjson.Get(out, "GameSettings").Raw)
	assert.Equal(t, "{}", gjson.Get(out, "CustomGameModeSettings").Raw)
	assert.True(t, strings.HasPrefix(out, "{\n    \"IpAddress\""))
}

func TestRun_InvalidGameMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("GAMEMODE", "FOOBAR")

	code, out, errOut := runTool(t)

	assert.Equal(t, 1, code)
	assert.Empty(t, out, "no partial config on failure")
	assert.Contains(t, errOut,
		"Error: Wrong Value! GAMEMODE needs Normal, Hard, Hardsurvival, Peaceful, Creative or Custom\n")
}

func TestRun_MalformedPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("QUERYPORT", "port")

	code, out, errOut := runTool(t)

	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Error: ")
	assert.Contains(t, errOut, "QUERYPORT")
}

func TestRun_ExtraSettings(t *testing.T) {
	clearEnv(t)
	t.Setenv("CREATIVEMODE", "true")
	t.Setenv("TREEREGROWTH", "true")

	code, out, _ := runTool(t)

	require.Equal(t, 0, code)
	assert.True(t, gjson.Get(out, `GameSettings.Gameplay\.TreeRegrowth`).Bool())
	assert.True(t, gjson.Get(out, `CustomGameModeSettings.GameSetting\.Survival\.CreativeMode`).Bool())
	assert.False(t, gjson.Get(out, `GameSettings.Structure\.Damage`).Exists())
}

func TestRun_WritesOutputFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "userdata", "dedicatedserver.cfg")
	t.Setenv("SERVERNAME", "File Server")

	code, out, errOut := runTool(t, "-o", path, "-log-level", "debug")

	require.Equal(t, 0, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "server config created")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "File Server", gjson.GetBytes(data, "ServerName").String())
}

func TestRun_EnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), "server.env")
	require.NoError(t, os.WriteFile(envFile, []byte("SERVERNAME=From File\nMAXPLAYERS=4\n"), 0o600))
	t.Setenv("MAXPLAYERS", "6")

	code, out, _ := runTool(t, "-env-file", envFile)

	require.Equal(t, 0, code)
	assert.Equal(t, "From File", gjson.Get(out, "ServerName").String())
	assert.Equal(t, int64(6), gjson.Get(out, "MaxPlayers").Int())
}

func TestRun_MissingEnvFile(t *testing.T) {
	clearEnv(t)

	code, _, errOut := runTool(t, "-env-file", filepath.Join(t.TempDir(), "nope.env"))

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Error: error reading env file")
}

func TestRun_InvalidLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("CREATOR_LOG_LEVEL", "chatty")

	code, out, errOut := runTool(t)

	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "invalid log configuration")
}

func TestRun_Version(t *testing.T) {
	clearEnv(t)

	code, out, _ := runTool(t, "-version")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Build version: ")
	assert.Contains(t, out, "Build commit: ")
}

func TestRun_Help(t *testing.T) {
	clearEnv(t)

	code, out, errOut := runTool(t, "-h")

	assert.Equal(t, 0, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Usage of config-creator:")
	assert.Contains(t, errOut, "-env-file")
}

func TestRun_UnknownFlag(t *testing.T) {
	clearEnv(t)

	code, out, errOut := runTool(t, "-bogus")

	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.True(t, strings.HasPrefix(errOut, "Error: "))
	assert.Contains(t, errOut, "flag provided but not defined: -bogus")
	assert.NotContains(t, errOut, "Usage of config-creator")
	assert.Equal(t, 1, strings.Count(errOut, "\n"), "only the error line is written")
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDuration_UnmarshalJSON_String(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`"10h"`)))
	assert.Equal(t, Duration(10*time.Hour), d)
}

func TestDuration_UnmarshalJSON_Number(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, Duration(time.Second), d)
}

func TestDuration_UnmarshalJSON_InvalidString(t *testing.T) {
	var d Duration
	require.Error(t, d.UnmarshalJSON([]byte(`"ten hours"`)))
}

func TestDuration_UnmarshalJSON_WrongType(t *testing.T) {
	var d Duration
	require.Error(t, d.UnmarshalJSON([]byte(`true`)))
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		"auth": {
			"token_sign_key": "json-sign-key",
			"token_issuer": "json-issuer",
			"token_duration": "2h",
			"bcrypt_cost": 9
		},
		"storage": {
			"db": {"dsn": "postgres://localhost/todo"}
		},
		"server": {
			"http_address": "0.0.0.0:9999",
			"request_timeout": "45s"
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-sign-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "json-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 9, cfg.Auth.BcryptCost)
	assert.Equal(t, "postgres://localhost/todo", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := writeTempJSONConfig(t, `{not json`)

	_, err := parseJSON(path)
	require.Error(t, err)
}

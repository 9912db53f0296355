package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmgilman/issuectl/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable the loader reads. viper treats empty
// variables as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envVars {
		t.Setenv(env, "")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := NewLoader(WithDir(t.TempDir())).Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Token())
	assert.Equal(t, "", cfg.Owner())
	assert.Equal(t, DefaultAPIURL, cfg.APIURL())
	assert.Equal(t, "", cfg.SlackWebhookURL())
	assert.Equal(t, BackendSDK, cfg.Backend())
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, DotEnvFile, "GITHUB_TOKEN=ghp_dotenv\nGITHUB_OWNER=octo\nSLACK_WEBHOOK_URL=https://hooks.slack.com/services/T/B/X\nISSUECTL_BACKEND=gh\n")

	cfg, err := NewLoader(WithDir(dir)).Load()
	require.NoError(t, err)

	assert.Equal(t, "ghp_dotenv", cfg.Token())
	assert.Equal(t, "octo", cfg.Owner())
	assert.Equal(t, "https://hooks.slack.com/services/T/B/X", cfg.SlackWebhookURL())
	assert.Equal(t, BackendGH, cfg.Backend())
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, DotEnvFile, "GITHUB_TOKEN=from-dotenv\nGITHUB_OWNER=dotenv-owner\nISSUECTL_TIMEOUT=5s\n")
	configFile := writeFile(t, dir, "issuectl.yaml", "github_owner: file-owner\ntimeout: 10s\nbackend: gh\n")

	t.Setenv("GITHUB_TOKEN", "from-env")
	t.Setenv("ISSUECTL_TIMEOUT", "20s")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("backend", "", "")
	flags.Duration("timeout", 0, "")
	require.NoError(t, flags.Parse([]string{"--backend", "sdk"}))

	cfg, err := NewLoader(
		WithDir(dir),
		WithConfigFile(configFile),
		WithFlag(KeyBackend, flags.Lookup("backend")),
		WithFlag(KeyTimeout, flags.Lookup("timeout")),
	).Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Token(), "environment beats .env")
	assert.Equal(t, "file-owner", cfg.Owner(), "config file beats .env")
	assert.Equal(t, 20*time.Second, cfg.Timeout(), "environment beats config file; unset flag is ignored")
	assert.Equal(t, BackendSDK, cfg.Backend(), "flag beats config file")
}

func TestLoad_NormalizesValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_API_URL", " https://ghe.example.com/api/v3/ ")
	t.Setenv("ISSUECTL_BACKEND", "GH")

	cfg, err := NewLoader(WithDir(t.TempDir())).Load()
	require.NoError(t, err)

	assert.Equal(t, "https://ghe.example.com/api/v3", cfg.APIURL())
	assert.Equal(t, BackendGH, cfg.Backend())
}

func TestLoad_Errors(t *testing.T) {
	t.Run("invalid timeout", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ISSUECTL_TIMEOUT", "soon")

		_, err := NewLoader(WithDir(t.TempDir())).Load()
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
	})

	t.Run("missing config file", func(t *testing.T) {
		clearEnv(t)

		_, err := NewLoader(WithDir(t.TempDir()), WithConfigFile("/nonexistent/issuectl.yaml")).Load()
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
	})

	t.Run("malformed config file", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		path := writeFile(t, dir, "issuectl.yaml", "github_owner: [unterminated\n")

		_, err := NewLoader(WithDir(dir), WithConfigFile(path)).Load()
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
	})
}

func TestConfig_Validate(t *testing.T) {
	base := Config{
		token:   "ghp_test",
		apiURL:  DefaultAPIURL,
		backend: BackendSDK,
		timeout: DefaultTimeout,
	}

	tests := []struct {
		name     string
		modify   func(c *Config)
		wantCode errors.ErrorCode
	}{
		{name: "valid", modify: func(*Config) {}},
		{name: "missing token for sdk", modify: func(c *Config) { c.token = "" }, wantCode: errors.CodeMissingCredential},
		{name: "missing token for gh", modify: func(c *Config) { c.token = ""; c.backend = BackendGH }},
		{name: "unknown backend", modify: func(c *Config) { c.backend = "graphql" }, wantCode: errors.CodeInvalidConfig},
		{name: "zero timeout", modify: func(c *Config) { c.timeout = 0 }, wantCode: errors.CodeInvalidConfig},
		{name: "relative API URL", modify: func(c *Config) { c.apiURL = "api.github.com" }, wantCode: errors.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := base
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetCode(err))
		})
	}
}

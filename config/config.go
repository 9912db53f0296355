// Package config loads issuectl settings from defaults, an optional .env
// file, an optional config file, environment variables and CLI flags.
//
// Sources are layered from lowest to highest precedence in that order. The
// result is an immutable Config that is passed explicitly to the code that
// needs it.
package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmgilman/issuectl/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys.
const (
	KeyToken           = "github_token"
	KeyOwner           = "github_owner"
	KeyAPIURL          = "github_api_url"
	KeySlackWebhookURL = "slack_webhook_url"
	KeyBackend         = "backend"
	KeyTimeout         = "timeout"
)

// Backends.
const (
	BackendSDK = "sdk"
	BackendGH  = "gh"
)

// Defaults.
const (
	DefaultAPIURL  = "https://api.github.com"
	DefaultBackend = BackendSDK
	DefaultTimeout = 30 * time.Second

	// DotEnvFile is read from the working directory when present.
	DotEnvFile = ".env"
)

// envVars maps each key to the environment variable that sets it. The same
// names are accepted inside the .env file.
var envVars = map[string]string{
	KeyToken:           "GITHUB_TOKEN",
	KeyOwner:           "GITHUB_OWNER",
	KeyAPIURL:          "GITHUB_API_URL",
	KeySlackWebhookURL: "SLACK_WEBHOOK_URL",
	KeyBackend:         "ISSUECTL_BACKEND",
	KeyTimeout:         "ISSUECTL_TIMEOUT",
}

// Config holds resolved settings.
type Config struct {
	token           string
	owner           string
	apiURL          string
	slackWebhookURL string
	backend         string
	timeout         time.Duration
}

// Token returns the GitHub token. It may be empty for the gh backend.
func (c *Config) Token() string { return c.token }

// Owner returns the default repository owner used for bare repository names.
func (c *Config) Owner() string { return c.owner }

// APIURL returns the GitHub REST API base URL.
func (c *Config) APIURL() string { return c.apiURL }

// SlackWebhookURL returns the Slack webhook URL, or "" when notifications are off.
func (c *Config) SlackWebhookURL() string { return c.slackWebhookURL }

// Backend returns the provider backend name.
func (c *Config) Backend() string { return c.backend }

// Timeout returns the per-command timeout.
func (c *Config) Timeout() time.Duration { return c.timeout }

// Validate checks that the configuration can reach GitHub. The sdk backend
// needs a token; the gh backend can fall back to gh's stored credentials.
func (c *Config) Validate() error {
	switch c.backend {
	case BackendSDK, BackendGH:
	default:
		err := errors.Newf(errors.CodeInvalidConfig, "unknown backend %q: must be %s or %s", c.backend, BackendSDK, BackendGH)
		return errors.WithContext(err, "field", KeyBackend)
	}

	if c.timeout <= 0 {
		err := errors.Newf(errors.CodeInvalidConfig, "timeout must be positive, got %s", c.timeout)
		return errors.WithContext(err, "field", KeyTimeout)
	}

	if u, err := url.Parse(c.apiURL); err != nil || !u.IsAbs() || u.Host == "" {
		invalid := errors.Newf(errors.CodeInvalidConfig, "invalid GitHub API URL %q", c.apiURL)
		return errors.WithContext(invalid, "field", KeyAPIURL)
	}

	if c.backend == BackendSDK && c.token == "" {
		err := errors.New(errors.CodeMissingCredential, "GITHUB_TOKEN is not set")
		err = errors.WithContext(err, "field", KeyToken)
		return errors.WithContext(err, "hint", "Set GITHUB_TOKEN in the environment or in a .env file")
	}

	return nil
}

// Loader resolves a Config.
type Loader struct {
	dir        string
	configFile string
	flags      map[string]*pflag.Flag
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithDir sets the directory searched for the .env file. Defaults to the
// working directory.
func WithDir(dir string) LoaderOption {
	return func(l *Loader) {
		l.dir = dir
	}
}

// WithConfigFile reads settings from path. The format is taken from the file
// extension (yaml, toml, json or env).
func WithConfigFile(path string) LoaderOption {
	return func(l *Loader) {
		l.configFile = path
	}
}

// WithFlag binds a command-line flag to key. The flag only takes effect when
// it was set on the command line.
func WithFlag(key string, flag *pflag.Flag) LoaderOption {
	return func(l *Loader) {
		if flag != nil {
			l.flags[key] = flag
		}
	}
}

// NewLoader creates a Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{flags: make(map[string]*pflag.Flag)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load resolves all sources into a Config. It does not validate the result.
func (l *Loader) Load() (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyAPIURL, DefaultAPIURL)
	v.SetDefault(KeyBackend, DefaultBackend)
	v.SetDefault(KeyTimeout, DefaultTimeout.String())

	// .env values sit just above the built-in defaults.
	dotenv, err := l.readDotEnv()
	if err != nil {
		return nil, err
	}
	for key, value := range dotenv {
		v.SetDefault(key, value)
	}

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
		if ext := strings.TrimPrefix(filepath.Ext(l.configFile), "."); ext == "" {
			v.SetConfigType("yaml")
		}
		if err := v.ReadInConfig(); err != nil {
			wrapped := errors.Wrap(err, errors.CodeInvalidConfig, "failed to read config file")
			return nil, errors.WithContext(wrapped, "path", l.configFile)
		}
	}

	for key, env := range envVars {
		if err := v.BindEnv(key, env); err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "failed to bind environment variable")
		}
	}

	for key, flag := range l.flags {
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "failed to bind flag")
		}
	}

	rawTimeout := strings.TrimSpace(v.GetString(KeyTimeout))
	timeout, err := time.ParseDuration(rawTimeout)
	if err != nil {
		wrapped := errors.Wrapf(err, errors.CodeInvalidConfig, "invalid timeout %q", rawTimeout)
		return nil, errors.WithContext(wrapped, "field", KeyTimeout)
	}

	return &Config{
		token:           strings.TrimSpace(v.GetString(KeyToken)),
		owner:           strings.TrimSpace(v.GetString(KeyOwner)),
		apiURL:          strings.TrimRight(strings.TrimSpace(v.GetString(KeyAPIURL)), "/"),
		slackWebhookURL: strings.TrimSpace(v.GetString(KeySlackWebhookURL)),
		backend:         strings.ToLower(strings.TrimSpace(v.GetString(KeyBackend))),
		timeout:         timeout,
	}, nil
}

// readDotEnv returns the settings found in the .env file, keyed by setting
// key. A missing file yields no settings.
func (l *Loader) readDotEnv() (map[string]string, error) {
	path := filepath.Join(l.dir, DotEnvFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		wrapped := errors.Wrap(err, errors.CodeInvalidConfig, "failed to read .env file")
		return nil, errors.WithContext(wrapped, "path", path)
	}

	values := make(map[string]string)
	for key, env := range envVars {
		// viper lower-cases keys read from files
		name := strings.ToLower(env)
		if v.IsSet(name) {
			values[key] = v.GetString(name)
		}
	}
	return values, nil
}

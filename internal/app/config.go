package app

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix      = "SHRAMIK_"
	envConfigFile  = "SHRAMIK_CONFIG"
	envHome        = "SHRAMIK_HOME"
	configFilename = "config.yaml"
	defaultHomeDir = ".shramikadmin"
)

// ErrNoAPIURL is returned when no API base URL is configured.
var ErrNoAPIURL = errors.New("api_url must not be empty (set SHRAMIK_API_URL or --api-url)")

// Config holds runtime wiring options for building the app.
type Config struct {
	// APIURL is the REST API base URL, e.g. https://api.shramik.in.
	APIURL string `koanf:"api_url"`
	// Home holds the session storage and the optional config file.
	Home string `koanf:"home"`

	LogLevel  string `koanf:"log_level"`
	LogPretty bool   `koanf:"log_pretty"`

	// SessionPassphrase, when set, encrypts the stored session.
	SessionPassphrase string `koanf:"session_passphrase"`
	// RequestTimeout bounds each API call. Zero means no timeout.
	RequestTimeout time.Duration `koanf:"request_timeout"`
	// MetricsFile receives request metrics in Prometheus text format after
	// each command.
	MetricsFile string `koanf:"metrics_file"`

	// HTTP is optional; defaults to a client with RequestTimeout.
	HTTP *http.Client `koanf:"-"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	home := defaultHomeDir
	if dir, err := os.UserHomeDir(); err == nil {
		home = filepath.Join(dir, defaultHomeDir)
	}
	return Config{
		Home:     home,
		LogLevel: "warn",
	}
}

// LoadConfig builds a Config by layering, lowest precedence first:
//  1. DefaultConfig
//  2. YAML file at $SHRAMIK_CONFIG, or <home>/config.yaml when it exists
//  3. env vars with the SHRAMIK_ prefix, e.g. SHRAMIK_API_URL
//  4. overrides, keyed like the koanf tags (typically from flags)
func LoadConfig(overrides map[string]any) (Config, error) {
	cfg, err := load(overrides)
	if err != nil {
		return Config{}, err
	}
	if cfg.APIURL == "" {
		return Config{}, ErrNoAPIURL
	}
	return cfg, nil
}

// LoadLocalConfig is LoadConfig for commands that only touch local session
// storage; the API URL may be empty.
func LoadLocalConfig(overrides map[string]any) (Config, error) {
	return load(overrides)
}

func load(overrides map[string]any) (Config, error) {
	cfg := DefaultConfig()
	k := koanf.New(".")

	path, explicit := configPath(cfg.Home, overrides)
	if path != "" {
		if _, err := os.Stat(path); err == nil || explicit {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Config{}, fmt.Errorf("load config file %s: %w", path, err)
			}
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	for key, v := range overrides {
		if err := k.Set(key, v); err != nil {
			return Config{}, fmt.Errorf("apply override %s: %w", key, err)
		}
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.APIURL = strings.TrimSpace(cfg.APIURL)
	if cfg.RequestTimeout < 0 {
		return Config{}, fmt.Errorf("request_timeout must not be negative, got %s", cfg.RequestTimeout)
	}
	return cfg, nil
}

// configPath picks the config file. explicit is true when the user named it,
// in which case a missing file is an error.
func configPath(defaultHome string, overrides map[string]any) (path string, explicit bool) {
	if p := os.Getenv(envConfigFile); p != "" {
		return p, true
	}
	home := defaultHome
	if h := os.Getenv(envHome); h != "" {
		home = h
	}
	if h, ok := overrides["home"].(string); ok && h != "" {
		home = h
	}
	return filepath.Join(home, configFilename), false
}

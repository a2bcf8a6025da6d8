package config

import (
	"fmt"
	"strconv"
	"time"
)

// Config holds the validated client settings. It is built once by New (or
// Load) and never modified afterwards.
type Config struct {
	Server   string
	Username string
	Password string

	AppName         string
	AppVersion      string
	ProtocolVersion string

	MaxSearchResults int
	RandomSongCount  int
	HTTPTimeout      int // in seconds
}

// Error reports a problem with a single configuration setting.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// Defaults for everything the caller is not required to supply.
const (
	DefaultAppName         = "subtone"
	DefaultAppVersion      = "0.1.0"
	DefaultProtocolVersion = "1.16.1"

	DefaultMaxSearchResults = 20
	DefaultRandomSongCount  = 10
	DefaultHTTPTimeout      = 30
)

// New builds a Config from a settings map. Server, username and password are
// required; the first one missing is reported in the returned *Error. All
// other settings fall back to defaults. The server URL is not validated here,
// a malformed one surfaces when the first request is attempted.
func New(settings map[string]string) (*Config, error) {
	for _, field := range []string{"server", "username", "password"} {
		if settings[field] == "" {
			return nil, &Error{Field: field, Reason: "required setting is missing"}
		}
	}

	cfg := &Config{
		Server:           settings["server"],
		Username:         settings["username"],
		Password:         settings["password"],
		AppName:          DefaultAppName,
		AppVersion:       DefaultAppVersion,
		ProtocolVersion:  DefaultProtocolVersion,
		MaxSearchResults: DefaultMaxSearchResults,
		RandomSongCount:  DefaultRandomSongCount,
		HTTPTimeout:      DefaultHTTPTimeout,
	}

	if v := settings["app_name"]; v != "" {
		cfg.AppName = v
	}
	if v := settings["app_version"]; v != "" {
		cfg.AppVersion = v
	}
	if v := settings["protocol_version"]; v != "" {
		cfg.ProtocolVersion = v
	}

	var err error
	if cfg.MaxSearchResults, err = intSetting(settings, "max_search_results", cfg.MaxSearchResults); err != nil {
		return nil, err
	}
	if cfg.RandomSongCount, err = intSetting(settings, "random_song_count", cfg.RandomSongCount); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = intSetting(settings, "http_timeout", cfg.HTTPTimeout); err != nil {
		return nil, err
	}

	return cfg, nil
}

func intSetting(settings map[string]string, field string, fallback int) (int, error) {
	v, ok := settings[field]
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &Error{Field: field, Reason: "not an integer: " + v}
	}
	return n, nil
}

// GetHTTPTimeout returns the HTTP timeout as a time.Duration.
func (c *Config) GetHTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

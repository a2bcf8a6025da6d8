// Package subsonic implements a client for the Subsonic REST protocol.
//
// All calls are synchronous, one request at a time. Results come back as
// tagged entities (kind + raw attribute fields) so that callers never have to
// care which XML element shape the server used.
package subsonic

import (
	"net/http"

	"github.com/subtone/subtone/config"
)

// Logger is an optional interface for debug logging of requests and
// responses. A nil logger disables logging.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// Client talks to one Subsonic server with one set of credentials.
type Client struct {
	baseURL    string
	username   string
	password   string
	clientID   string
	apiVersion string

	maxSearchResults int
	randomSongCount  int

	httpClient *http.Client
	logger     Logger
}

// New creates a Client from a validated configuration.
func New(cfg *config.Config) *Client {
	return &Client{
		baseURL:          cfg.Server,
		username:         cfg.Username,
		password:         cfg.Password,
		clientID:         cfg.AppName,
		apiVersion:       cfg.ProtocolVersion,
		maxSearchResults: cfg.MaxSearchResults,
		randomSongCount:  cfg.RandomSongCount,
		httpClient:       &http.Client{Timeout: cfg.GetHTTPTimeout()},
	}
}

// SetLogger installs a debug logger. Passing nil turns logging off again.
func (c *Client) SetLogger(l Logger) {
	c.logger = l
}

func (c *Client) debugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}

// Ping checks connectivity and credentials against the server.
func (c *Client) Ping() error {
	_, err := c.query("ping.view", nil)
	return err
}

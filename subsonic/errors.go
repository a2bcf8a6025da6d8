package subsonic

import (
	"fmt"
	"net/http"
)

// ProtocolError is an application-level failure the server reported inside
// the response envelope. It takes precedence over the HTTP status.
type ProtocolError struct {
	Code    int
	Message string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Code, e.Message)
}

// TransportError is a non-200 HTTP status without a protocol error.
type TransportError struct {
	StatusCode int
}

func (e *TransportError) Error() string {
	if e.StatusCode == http.StatusUnauthorized {
		return "unauthorized (401): check username and password"
	}
	return fmt.Sprintf("unexpected status: %d", e.StatusCode)
}

// ArgumentError means the caller passed a value the client cannot work with,
// like an empty stream URL or a non-integer count.
type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string {
	return e.Reason
}

// UnsupportedError reports an entity kind or search category the client has
// no handling for.
type UnsupportedError struct {
	Kind string
}

func (e *UnsupportedError) Error() string {
	return "unsupported kind: " + e.Kind
}

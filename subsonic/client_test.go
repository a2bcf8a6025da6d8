package subsonic

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/subtone/subtone/config"
)

const emptyOK = `<subsonic-response xmlns="http://subsonic.org/restapi" status="ok" version="1.16.1"></subsonic-response>`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg, err := config.New(map[string]string{
		"server":   server.URL,
		"username": "alice",
		"password": "secret",
	})
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	return New(cfg)
}

func serveXML(t *testing.T, body string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprint(w, body)
	}
}

func TestQuery(t *testing.T) {
	t.Run("sends basic auth and identity params", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || user != "alice" || pass != "secret" {
				t.Errorf("bad basic auth: %q %q", user, pass)
			}
			if r.URL.Query().Get("v") != config.DefaultProtocolVersion {
				t.Errorf("missing protocol version, got %q", r.URL.Query().Get("v"))
			}
			if r.URL.Query().Get("c") != config.DefaultAppName {
				t.Errorf("missing client name, got %q", r.URL.Query().Get("c"))
			}
			fmt.Fprint(w, emptyOK)
		})

		if err := client.Ping(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("protocol error wins over 200 status", func(t *testing.T) {
		client := newTestClient(t, serveXML(t, `<subsonic-response status="failed" version="1.16.1">
			<error code="70" message="The requested data was not found."/>
		</subsonic-response>`))

		err := client.Ping()
		var protoErr *ProtocolError
		if !errors.As(err, &protoErr) {
			t.Fatalf("expected *ProtocolError, got %v", err)
		}
		if protoErr.Code != 70 {
			t.Errorf("expected code 70, got %d", protoErr.Code)
		}
		if protoErr.Message != "The requested data was not found." {
			t.Errorf("unexpected message: %q", protoErr.Message)
		}
	})

	t.Run("protocol error wins over non-200 status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `<subsonic-response status="failed"><error code="0" message="boom"/></subsonic-response>`)
		})

		var protoErr *ProtocolError
		if err := client.Ping(); !errors.As(err, &protoErr) {
			t.Fatalf("expected *ProtocolError, got %v", err)
		}
	})

	t.Run("401 hints at credentials", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		err := client.Ping()
		var transportErr *TransportError
		if !errors.As(err, &transportErr) {
			t.Fatalf("expected *TransportError, got %v", err)
		}
		if transportErr.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", transportErr.StatusCode)
		}
		if want := "check username and password"; !strings.Contains(err.Error(), want) {
			t.Errorf("expected message to contain %q, got %q", want, err.Error())
		}
	})

	t.Run("other non-200 reports raw status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		err := client.Ping()
		var transportErr *TransportError
		if !errors.As(err, &transportErr) {
			t.Fatalf("expected *TransportError, got %v", err)
		}
		if transportErr.StatusCode != http.StatusBadGateway {
			t.Errorf("expected status 502, got %d", transportErr.StatusCode)
		}
	})

	t.Run("garbage body on 200 is a parse error", func(t *testing.T) {
		client := newTestClient(t, serveXML(t, `this is not xml`))

		err := client.Ping()
		if err == nil {
			t.Fatal("expected error")
		}
		var protoErr *ProtocolError
		var transportErr *TransportError
		if errors.As(err, &protoErr) || errors.As(err, &transportErr) {
			t.Fatalf("parse failure misclassified: %v", err)
		}
	})
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Debugf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestSetLogger(t *testing.T) {
	client := newTestClient(t, serveXML(t, emptyOK))

	// no logger installed: must not panic
	if err := client.Ping(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	logger := &recordingLogger{}
	client.SetLogger(logger)
	if err := client.Ping(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(logger.lines) == 0 {
		t.Error("expected debug lines to be logged")
	}
}

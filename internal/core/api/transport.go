package api

import (
	"fmt"
	"net/http"
	"net/http/httputil"

	"github.com/proyectmyvet/myvet/internal/core/store"
)

// newRequestGate composes the two cross-cutting behaviors around every call:
// bearer-token attachment on the way out, session clearing on a 401 on the
// way back. The gate deliberately does not talk to the in-memory auth state;
// the state machine picks the change up on its next re-read.
func newRequestGate(next http.RoundTripper, sessions *store.Session) http.RoundTripper {
	return &tokenTransport{
		sessions: sessions,
		next: &unauthorizedWatcher{
			sessions: sessions,
			next:     next,
		},
	}
}

// tokenTransport reads the current token from the session store per request
// and attaches it as a bearer credential. An absent token sends the request
// unauthenticated rather than failing it.
type tokenTransport struct {
	sessions *store.Session
	next     http.RoundTripper
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.sessions.Token()
	if err != nil {
		return nil, fmt.Errorf("read session token: %w", err)
	}
	if token != "" {
		// Clone before mutating; RoundTrippers must not modify the original.
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return t.next.RoundTrip(req)
}

// unauthorizedWatcher clears the persisted session whenever the backend
// answers 401. The response still flows back to the caller unchanged.
type unauthorizedWatcher struct {
	sessions *store.Session
	next     http.RoundTripper
}

func (w *unauthorizedWatcher) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := w.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		if clearErr := w.sessions.Clear(); clearErr != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("clear expired session: %w", clearErr)
		}
	}
	return resp, nil
}

// loggingTransport dumps requests and responses for --verbose runs.
type loggingTransport struct {
	next http.RoundTripper
	logf func(format string, args ...any)
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if dump, err := httputil.DumpRequestOut(req, true); err == nil {
		t.logf("--> %s", string(dump))
	}
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		t.logf("<-- error: %v", err)
		return nil, err
	}
	if dump, dumpErr := httputil.DumpResponse(resp, true); dumpErr == nil {
		t.logf("<-- %s", string(dump))
	}
	return resp, nil
}

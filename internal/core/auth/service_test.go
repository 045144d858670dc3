package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/proyectmyvet/myvet/internal/core/api"
	"github.com/proyectmyvet/myvet/internal/core/store"
)

type testEnv struct {
	service  *Service
	sessions *store.Session
}

func newTestEnv(t *testing.T, handler http.Handler) testEnv {
	t.Helper()
	kv, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sessions := store.NewSession(kv)
	client := api.New(server.URL, sessions)
	return testEnv{
		service:  NewService(client, sessions),
		sessions: sessions,
	}
}

func authOK(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.AuthResponse{
			Token: "T1",
			User: api.User{
				ID:    "1",
				Email: "a@b.com",
				Role:  "dueno",
				Name:  "Ana",
			},
		})
	})
}

func TestLogin_PersistsSession(t *testing.T) {
	env := newTestEnv(t, authOK(t))

	if err := env.service.Login(context.Background(), "a@b.com", "x"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	token, err := env.sessions.Token()
	if err != nil {
		t.Fatal(err)
	}
	if token != "T1" {
		t.Errorf("Token() = %q, want %q", token, "T1")
	}
	role, err := env.sessions.Role()
	if err != nil {
		t.Fatal(err)
	}
	if role != "dueno" {
		t.Errorf("Role() = %q, want %q", role, "dueno")
	}
	email, err := env.sessions.Email()
	if err != nil {
		t.Fatal(err)
	}
	if email != "a@b.com" {
		t.Errorf("Email() = %q, want %q", email, "a@b.com")
	}
	name, err := env.sessions.DisplayName()
	if err != nil {
		t.Fatal(err)
	}
	if name != "Ana" {
		t.Errorf("DisplayName() = %q, want %q", name, "Ana")
	}
}

func TestLogin_RejectionIsGeneric(t *testing.T) {
	// The backend's explanation must not reach the caller: login failures
	// stay generic so they cannot confirm whether an account exists.
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"no account for that email"}`))
	}))

	err := env.service.Login(context.Background(), "a@b.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_EmptyBodyIsInvalidCredentials(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	err := env.service.Login(context.Background(), "a@b.com", "x")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_FailureLeavesStoreUntouched(t *testing.T) {
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	if err := env.service.Login(context.Background(), "a@b.com", "wrong"); err == nil {
		t.Fatal("Expected login failure")
	}

	loggedIn, err := env.sessions.IsLoggedIn()
	if err != nil {
		t.Fatal(err)
	}
	if loggedIn {
		t.Error("Failed login must not write to the session store")
	}
	for name, read := range map[string]func() (string, error){
		"token": env.sessions.Token,
		"role":  env.sessions.Role,
		"email": env.sessions.Email,
		"name":  env.sessions.DisplayName,
	} {
		got, err := read()
		if err != nil {
			t.Fatal(err)
		}
		if got != "" {
			t.Errorf("%s = %q after failed login, want empty", name, got)
		}
	}
}

func TestLogin_FailedRetryKeepsExistingSession(t *testing.T) {
	// A logged-in user retrying with wrong credentials hits a 401, but the
	// auth endpoints bypass the request gate: the stored session survives
	// and the request carries no bearer token.
	var gotAuth string
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"bad password"}`))
	}))

	if err := env.sessions.Save("T1", "dueno", "a@b.com", "Ana"); err != nil {
		t.Fatal(err)
	}

	err := env.service.Login(context.Background(), "a@b.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
	}

	if gotAuth != "" {
		t.Errorf("Authorization = %q on login request, want none", gotAuth)
	}
	for name, read := range map[string]struct {
		fn   func() (string, error)
		want string
	}{
		"token": {env.sessions.Token, "T1"},
		"role":  {env.sessions.Role, "dueno"},
		"email": {env.sessions.Email, "a@b.com"},
		"name":  {env.sessions.DisplayName, "Ana"},
	} {
		got, err := read.fn()
		if err != nil {
			t.Fatal(err)
		}
		if got != read.want {
			t.Errorf("%s = %q after failed re-login, want %q", name, got, read.want)
		}
	}
}

func TestRegister_PersistsSession(t *testing.T) {
	env := newTestEnv(t, authOK(t))

	if err := env.service.Register(context.Background(), "a@b.com", "x", "dueno", "Ana"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	loggedIn, err := env.sessions.IsLoggedIn()
	if err != nil {
		t.Fatal(err)
	}
	if !loggedIn {
		t.Error("Expected logged in after register")
	}
}

func TestRegister_ForwardsServerMessage(t *testing.T) {
	tests := []struct {
		name string
		code int
		body string
		want string
	}{
		{"message field", http.StatusConflict, `{"message":"email already registered"}`, "email already registered"},
		{"error field fallback", http.StatusConflict, `{"error":"duplicate email"}`, "duplicate email"},
		{"message preferred over error", http.StatusConflict, `{"message":"m","error":"e"}`, "m"},
		{"generic fallback", http.StatusTeapot, `not json`, "registration failed (code 418)"},
		{"empty body fallback", http.StatusBadRequest, ``, "registration failed (code 400)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				_, _ = w.Write([]byte(tt.body))
			}))

			err := env.service.Register(context.Background(), "a@b.com", "x", "dueno", "Ana")
			if err == nil {
				t.Fatal("Expected register failure")
			}
			if err.Error() != tt.want {
				t.Errorf("Register() error = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	env := newTestEnv(t, authOK(t))

	if err := env.service.Login(context.Background(), "a@b.com", "x"); err != nil {
		t.Fatal(err)
	}
	if err := env.service.Logout(); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	loggedIn, err := env.sessions.IsLoggedIn()
	if err != nil {
		t.Fatal(err)
	}
	if loggedIn {
		t.Error("Expected logged out after Logout")
	}
}

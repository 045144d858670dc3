package auth

import (
	"context"
	"net/http"
	"testing"
)

func newTestMachine(t *testing.T, handler http.Handler) (*StateMachine, testEnv) {
	t.Helper()
	env := newTestEnv(t, handler)
	machine, err := NewStateMachine(env.service, env.sessions)
	if err != nil {
		t.Fatalf("NewStateMachine() error = %v", err)
	}
	return machine, env
}

func TestStateMachine_ColdStartAnonymous(t *testing.T) {
	machine, _ := newTestMachine(t, authOK(t))

	if got := machine.State().Phase; got != PhaseAnonymous {
		t.Errorf("Phase = %v, want anonymous", got)
	}
}

func TestStateMachine_ColdStartFromPersistedSession(t *testing.T) {
	env := newTestEnv(t, authOK(t))

	// A previous run left credentials behind; a fresh machine must pick
	// them up without any network call.
	if err := env.sessions.Save("T1", "dueno", "a@b.com", "Ana"); err != nil {
		t.Fatal(err)
	}

	machine, err := NewStateMachine(env.service, env.sessions)
	if err != nil {
		t.Fatal(err)
	}
	state := machine.State()
	if state.Phase != PhaseAuthenticated {
		t.Fatalf("Phase = %v, want authenticated", state.Phase)
	}
	if state.Role != "dueno" || state.Email != "a@b.com" || state.DisplayName != "Ana" {
		t.Errorf("Snapshot = %+v, want dueno/a@b.com/Ana", state)
	}
}

func TestLogin_SuccessRunsExactlyOnSuccess(t *testing.T) {
	machine, _ := newTestMachine(t, authOK(t))

	successes, failures := 0, 0
	machine.Login(context.Background(), "a@b.com", "x",
		func() { successes++ },
		func(string) { failures++ },
	)

	if successes != 1 || failures != 0 {
		t.Errorf("Continuations = (%d success, %d error), want (1, 0)", successes, failures)
	}

	state := machine.State()
	if state.Phase != PhaseAuthenticated {
		t.Fatalf("Phase = %v, want authenticated", state.Phase)
	}
	if state.Role != "dueno" {
		t.Errorf("Role = %q, want dueno", state.Role)
	}
	if state.Err != "" {
		t.Errorf("Err = %q on authenticated state, want empty", state.Err)
	}
}

func TestLogin_FailureRunsExactlyOnError(t *testing.T) {
	machine, env := newTestMachine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	successes, failures := 0, 0
	var message string
	machine.Login(context.Background(), "a@b.com", "wrong",
		func() { successes++ },
		func(m string) { failures++; message = m },
	)

	if successes != 0 || failures != 1 {
		t.Errorf("Continuations = (%d success, %d error), want (0, 1)", successes, failures)
	}
	if message != ErrInvalidCredentials.Error() {
		t.Errorf("Error message = %q, want %q", message, ErrInvalidCredentials.Error())
	}

	state := machine.State()
	if state.Phase != PhaseFailed {
		t.Fatalf("Phase = %v, want failed", state.Phase)
	}
	if state.Role != "" || state.Email != "" {
		t.Errorf("Failed state leaked profile fields: %+v", state)
	}

	loggedIn, err := env.sessions.IsLoggedIn()
	if err != nil {
		t.Fatal(err)
	}
	if loggedIn {
		t.Error("Store should be untouched after failed login")
	}
}

func TestLogin_NilContinuationsAllowed(t *testing.T) {
	machine, _ := newTestMachine(t, authOK(t))

	machine.Login(context.Background(), "a@b.com", "x", nil, nil)

	if got := machine.State().Phase; got != PhaseAuthenticated {
		t.Errorf("Phase = %v, want authenticated", got)
	}
}

func TestRegister_SameShapeAsLogin(t *testing.T) {
	machine, _ := newTestMachine(t, authOK(t))

	successes := 0
	machine.Register(context.Background(), "a@b.com", "x", "dueno", "Ana",
		func() { successes++ },
		func(string) { t.Error("onError fired on success") },
	)
	if successes != 1 {
		t.Errorf("onSuccess fired %d times, want 1", successes)
	}
	if got := machine.State().Phase; got != PhaseAuthenticated {
		t.Errorf("Phase = %v, want authenticated", got)
	}
}

func TestLogout_ResetsToAnonymous(t *testing.T) {
	machine, env := newTestMachine(t, authOK(t))

	machine.Login(context.Background(), "a@b.com", "x", nil, nil)
	if err := machine.Logout(); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	state := machine.State()
	if state.Phase != PhaseAnonymous {
		t.Errorf("Phase = %v, want anonymous", state.Phase)
	}
	if state.Role != "" || state.Email != "" || state.DisplayName != "" {
		t.Errorf("Anonymous state kept profile fields: %+v", state)
	}

	loggedIn, err := env.sessions.IsLoggedIn()
	if err != nil {
		t.Fatal(err)
	}
	if loggedIn {
		t.Error("Store still logged in after Logout")
	}
}

func TestValidateSession_SeesExternalClear(t *testing.T) {
	machine, env := newTestMachine(t, authOK(t))

	machine.Login(context.Background(), "a@b.com", "x", nil, nil)

	// The request gate clears the store behind the machine's back on a
	// 401; the machine only notices on its next re-read.
	if err := env.sessions.Clear(); err != nil {
		t.Fatal(err)
	}
	if got := machine.State().Phase; got != PhaseAuthenticated {
		t.Fatalf("Stale snapshot expected before ValidateSession, got %v", got)
	}

	if err := machine.ValidateSession(); err != nil {
		t.Fatalf("ValidateSession() error = %v", err)
	}
	if got := machine.State().Phase; got != PhaseAnonymous {
		t.Errorf("Phase = %v after external clear, want anonymous", got)
	}
}

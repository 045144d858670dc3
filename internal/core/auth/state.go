package auth

import (
	"context"
	"sync"

	"github.com/proyectmyvet/myvet/internal/core/store"
)

// Phase is the discriminant of the session state. Profile fields are only
// meaningful in PhaseAuthenticated and the error message only in PhaseFailed,
// so contradictory combinations (loading with a stale error, an error while
// logged in) cannot be expressed.
type Phase int

const (
	PhaseAnonymous Phase = iota
	PhaseLoggingIn
	PhaseAuthenticated
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseAnonymous:
		return "anonymous"
	case PhaseLoggingIn:
		return "logging in"
	case PhaseAuthenticated:
		return "authenticated"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of the session state machine.
type State struct {
	Phase       Phase
	Role        string // authenticated only
	Email       string // authenticated only
	DisplayName string // authenticated only
	Err         string // failed only
}

// StateMachine mirrors the persisted session into memory and is the single
// source of truth the interface layers react to. Construct one explicitly
// and pass it where needed; there is no package-level instance.
//
// Overlapping Login/Register calls are not serialized: the last one to
// finish wins the state. The mutex only keeps individual snapshots coherent.
type StateMachine struct {
	mu       sync.Mutex
	service  *Service
	sessions *store.Session
	state    State
}

// NewStateMachine builds a state machine and primes it from the session
// store, so a cold start lands directly in the right phase.
func NewStateMachine(service *Service, sessions *store.Session) (*StateMachine, error) {
	m := &StateMachine{service: service, sessions: sessions}
	if err := m.ValidateSession(); err != nil {
		return nil, err
	}
	return m, nil
}

// State returns the current snapshot.
func (m *StateMachine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// ValidateSession re-reads the session store into memory. It is synchronous,
// makes no network call, and is the only bridge between persisted truth and
// in-memory state outside a login/register cycle — in particular, it is how
// a 401-triggered clear by the request gate eventually becomes visible here.
func (m *StateMachine) ValidateSession() error {
	state, err := m.readStore()
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.state = state
	m.mu.Unlock()
	return nil
}

// Login runs one authentication cycle. Exactly one of onSuccess/onError is
// invoked, after the state has been updated. Nil continuations are allowed.
func (m *StateMachine) Login(ctx context.Context, email, password string, onSuccess func(), onError func(message string)) {
	m.setPhase(PhaseLoggingIn)
	err := m.service.Login(ctx, email, password)
	m.finish(err, onSuccess, onError)
}

// Register runs one registration cycle with the same shape as Login.
func (m *StateMachine) Register(ctx context.Context, email, password, role, displayName string, onSuccess func(), onError func(message string)) {
	m.setPhase(PhaseLoggingIn)
	err := m.service.Register(ctx, email, password, role, displayName)
	m.finish(err, onSuccess, onError)
}

// Logout clears the persisted session and drops to anonymous immediately.
func (m *StateMachine) Logout() error {
	if err := m.service.Logout(); err != nil {
		return err
	}
	m.mu.Lock()
	m.state = State{Phase: PhaseAnonymous}
	m.mu.Unlock()
	return nil
}

func (m *StateMachine) setPhase(p Phase) {
	m.mu.Lock()
	m.state = State{Phase: p}
	m.mu.Unlock()
}

// finish settles the cycle: authenticated only when the call succeeded AND
// the store now reports a token, otherwise failed with the error's message.
func (m *StateMachine) finish(opErr error, onSuccess func(), onError func(string)) {
	var next State
	if opErr == nil {
		stored, err := m.readStore()
		if err != nil {
			opErr = err
		} else if stored.Phase == PhaseAuthenticated {
			next = stored
		} else {
			opErr = ErrInvalidCredentials
		}
	}
	if opErr != nil {
		next = State{Phase: PhaseFailed, Err: opErr.Error()}
	}

	m.mu.Lock()
	m.state = next
	m.mu.Unlock()

	if opErr == nil {
		if onSuccess != nil {
			onSuccess()
		}
	} else if onError != nil {
		onError(opErr.Error())
	}
}

// readStore derives a snapshot from the session store alone.
func (m *StateMachine) readStore() (State, error) {
	loggedIn, err := m.sessions.IsLoggedIn()
	if err != nil {
		return State{}, err
	}
	if !loggedIn {
		return State{Phase: PhaseAnonymous}, nil
	}
	role, err := m.sessions.Role()
	if err != nil {
		return State{}, err
	}
	email, err := m.sessions.Email()
	if err != nil {
		return State{}, err
	}
	name, err := m.sessions.DisplayName()
	if err != nil {
		return State{}, err
	}
	return State{
		Phase:       PhaseAuthenticated,
		Role:        role,
		Email:       email,
		DisplayName: name,
	}, nil
}

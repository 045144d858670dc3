package cli

import (
	"fmt"
	"log/slog"

	"github.com/proyectmyvet/myvet/internal/core/api"
	"github.com/proyectmyvet/myvet/internal/core/auth"
	"github.com/proyectmyvet/myvet/internal/core/config"
	"github.com/proyectmyvet/myvet/internal/core/history"
	"github.com/proyectmyvet/myvet/internal/core/store"
)

// app wires the core components for one command invocation. Everything hangs
// off the local store, so closing the app closes it all.
type app struct {
	cfg      *config.Config
	kv       *store.KV
	sessions *store.Session
	api      *api.Client
	auth     *auth.Service
	state    *auth.StateMachine
	history  *history.Cache
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}

	kv, err := store.Open(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	sessions := store.NewSession(kv)

	opts := []api.Option{}
	if verbose {
		opts = append(opts, api.WithVerboseLogging(func(format string, args ...any) {
			slog.Debug(fmt.Sprintf(format, args...))
		}))
	}
	client := api.New(cfg.ServerURL, sessions, opts...)

	service := auth.NewService(client, sessions)
	state, err := auth.NewStateMachine(service, sessions)
	if err != nil {
		_ = kv.Close()
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	return &app{
		cfg:      cfg,
		kv:       kv,
		sessions: sessions,
		api:      client,
		auth:     service,
		state:    state,
		history:  history.New(kv),
	}, nil
}

func (a *app) Close() {
	_ = a.kv.Close()
}

// requireRole refreshes the session snapshot and checks the caller is logged
// in with the given role. The refresh also surfaces a 401-triggered clear
// from an earlier command.
func (a *app) requireRole(role string) error {
	if err := a.state.ValidateSession(); err != nil {
		return err
	}
	s := a.state.State()
	if s.Phase != auth.PhaseAuthenticated {
		return fmt.Errorf("not logged in. Run 'myvet login' first")
	}
	if s.Role != role {
		return fmt.Errorf("this command needs the %s role (you are logged in as %s)", role, s.Role)
	}
	return nil
}

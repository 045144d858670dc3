package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/proyectmyvet/myvet/internal/core/api"
	"github.com/proyectmyvet/myvet/internal/core/store"
)

// ErrInvalidCredentials is the only error Login surfaces for rejected
// credentials. Login deliberately never forwards backend detail, so a failed
// attempt cannot reveal whether the account exists. Register is the opposite:
// its failures (duplicate email, bad role) are forwarded so the user can fix
// them.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service performs the auth network calls and persists the resulting
// credentials. It never touches in-memory UI state; that is the state
// machine's job.
type Service struct {
	api      *api.Client
	sessions *store.Session
}

// NewService builds an auth service over a backend client and session store.
func NewService(client *api.Client, sessions *store.Session) *Service {
	return &Service{api: client, sessions: sessions}
}

// Login authenticates and persists the session on success. On failure the
// session store is left untouched.
func (s *Service) Login(ctx context.Context, email, password string) error {
	resp, err := s.api.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) {
			return ErrInvalidCredentials
		}
		return err
	}
	if resp.Token == "" {
		return ErrInvalidCredentials
	}
	if err := s.sessions.Save(resp.Token, resp.User.Role, resp.User.Email, resp.User.Name); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Register creates an account, then persists the session like Login does.
// Backend rejections are forwarded with the server's own message when the
// error body carries one.
func (s *Service) Register(ctx context.Context, email, password, role, displayName string) error {
	resp, err := s.api.Register(ctx, api.RegisterRequest{
		Email:    email,
		Password: password,
		Role:     role,
		Name:     displayName,
	})
	if err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) {
			return errors.New(registrationMessage(statusErr))
		}
		return err
	}
	if resp.Token == "" {
		return errors.New("registration failed: empty response")
	}
	if err := s.sessions.Save(resp.Token, resp.User.Role, resp.User.Email, resp.User.Name); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Logout clears the persisted session. No network call is involved; the
// token simply stops being presented.
func (s *Service) Logout() error {
	return s.sessions.Clear()
}

// registrationMessage extracts the server's explanation from an error body,
// preferring "message", then "error", then a generic code-bearing fallback.
func registrationMessage(statusErr *api.StatusError) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if len(statusErr.Body) > 0 && json.Unmarshal(statusErr.Body, &body) == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return fmt.Sprintf("registration failed (code %d)", statusErr.Code)
}

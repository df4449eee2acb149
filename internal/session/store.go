// Package session owns the client-side authenticated state: the bearer token
// (persisted to a single file) and the current user profile (in memory only).
// The store is explicitly constructed and injected; there is no ambient
// global session.
package session

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/travelplan/travelplan-go/internal/crypto"
	"github.com/travelplan/travelplan-go/internal/model"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
)

// AuthAPI is the slice of the remote service the session store needs.
// *api.Client satisfies it.
type AuthAPI interface {
	Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error)
	Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error)
	Profile(ctx context.Context) (model.User, error)
}

// Store holds the current session.
type Store struct {
	path  string
	auth  AuthAPI
	token string
	user  *model.User
}

// NewStore loads any previously persisted token from path. A missing or
// unreadable token file is the same as no session. The auth dependency is
// wired after construction to break the store/client construction cycle:
// the HTTP client needs the store as its token source.
func NewStore(path string) *Store {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err == nil {
		s.token = strings.TrimSpace(string(data))
	}
	return s
}

// SetAuthAPI wires the auth endpoints the store calls for login, register and
// profile refresh.
func (s *Store) SetAuthAPI(auth AuthAPI) {
	s.auth = auth
}

// Token returns the current bearer token, or "" when no session is active.
// Makes *Store an api.TokenSource.
func (s *Store) Token() string {
	return s.token
}

// IsAuthenticated reports whether a token is present.
func (s *Store) IsAuthenticated() bool {
	return s.token != ""
}

// User returns the profile recorded at login/refresh, or nil.
func (s *Store) User() *model.User {
	return s.user
}

// UserID returns the current user's id: from the fetched profile when
// available, otherwise decoded from the token's user_id claim.
func (s *Store) UserID() (int64, bool) {
	if s.user != nil {
		return s.user.ID, true
	}
	if s.token == "" {
		return 0, false
	}
	id, err := crypto.DecodeUserID(s.token)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Login authenticates with the service. On success the token is persisted
// and the session becomes active; on failure prior state is left untouched.
func (s *Store) Login(ctx context.Context, email, password string) error {
	resp, err := s.auth.Login(ctx, model.LoginRequest{Email: email, Password: password})
	if err != nil {
		slog.Warn("login failed", "email", email, "error", err)
		return err
	}
	return s.establish(resp)
}

// Register creates an account. Same contract as Login.
func (s *Store) Register(ctx context.Context, email, password, name string) error {
	resp, err := s.auth.Register(ctx, model.RegisterRequest{Email: email, Password: password, Name: name})
	if err != nil {
		slog.Warn("registration failed", "email", email, "error", err)
		return err
	}
	return s.establish(resp)
}

func (s *Store) establish(resp model.AuthResponse) error {
	if err := s.persistToken(resp.Token); err != nil {
		return err
	}
	s.token = resp.Token
	user := resp.User
	s.user = &user
	return nil
}

// Logout clears the persisted token and in-memory user. No server call.
func (s *Store) Logout() {
	// Removing an already-absent file is not a failure.
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		slog.Warn("removing token file failed", "path", s.path, "error", err)
	}
	s.token = ""
	s.user = nil
}

// Refresh fetches the current user's profile. Any failure is treated as an
// invalid or expired token: the session is force-logged-out and the error
// returned. This is the one recovery path in the system.
func (s *Store) Refresh(ctx context.Context) error {
	if s.token == "" {
		return ErrNotAuthenticated
	}
	user, err := s.auth.Profile(ctx)
	if err != nil {
		slog.Warn("profile fetch failed, clearing session", "error", err)
		s.Logout()
		return err
	}
	s.user = &user
	return nil
}

func (s *Store) persistToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

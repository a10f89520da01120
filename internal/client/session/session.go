// Package session owns the current-user identity. The session is a single
// durable JSON record keyed only by email: no token, no expiry. It is the
// sole gate for all team, photo and chat operations.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"teamspace/internal/client/models"
	"teamspace/internal/client/store"
	"teamspace/internal/logging"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnreachable        = errors.New("store unreachable")
)

// Session is the durable record of the authenticated user. The zero value
// is an unauthenticated session.
type Session struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (s Session) Authenticated() bool {
	return s.Email != ""
}

// Manager persists and restores the session and performs login/logout
// against the remote store.
type Manager struct {
	path    string
	client  store.Client
	logger  logging.Logger
	current Session
}

func NewManager(path string, client store.Client, logger logging.Logger) *Manager {
	return &Manager{path: path, client: client, logger: logger}
}

// Restore loads the persisted session. Absent or malformed state yields an
// empty session; Restore never fails the caller and is idempotent.
func (m *Manager) Restore() Session {
	m.current = Session{}

	data, err := os.ReadFile(m.path)
	if err != nil {
		return m.current
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil || !s.Authenticated() {
		return m.current
	}

	m.current = s
	return m.current
}

// Login checks credentials against the store. On success the session is
// established and persisted. On rejection nothing persisted changes.
func (m *Manager) Login(ctx context.Context, email, password string) (Session, error) {
	user, err := m.client.Authenticate(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUnauthorized):
			return Session{}, ErrInvalidCredentials
		case errors.Is(err, store.ErrUnavailable):
			return Session{}, fmt.Errorf("%w: %v", ErrUnreachable, err)
		default:
			return Session{}, err
		}
	}

	m.current = sessionFor(user)
	if err := m.persist(m.current); err != nil {
		// the in-memory session stands; only the restart survival is lost
		m.logger.Warn(ctx, "could not persist session", "error", err)
	}
	return m.current, nil
}

// Logout clears the in-memory and persisted session unconditionally.
func (m *Manager) Logout() {
	m.current = Session{}
	_ = os.Remove(m.path)
}

// Current returns the active session.
func (m *Manager) Current() Session {
	return m.current
}

func (m *Manager) persist(s Session) error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0o600)
}

func sessionFor(user *models.User) Session {
	return Session{Email: user.Email, Name: user.Name}
}

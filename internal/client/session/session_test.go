package session

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"teamspace/internal/client/models"
	"teamspace/internal/client/store"
	"teamspace/internal/client/store/storetest"
	"teamspace/internal/logging"
)

func newManager(t *testing.T, fake *storetest.Fake) (*Manager, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return NewManager(path, fake, logging.NewText(io.Discard)), path
}

func TestRestoreAbsentFile(t *testing.T) {
	m, _ := newManager(t, &storetest.Fake{})
	s := m.Restore()
	require.False(t, s.Authenticated())
}

func TestRestoreIdempotent(t *testing.T) {
	fake := &storetest.Fake{
		AuthenticateFn: func(_ context.Context, email, _ string) (*models.User, error) {
			return &models.User{Email: email, Name: "Ana"}, nil
		},
	}
	m, path := newManager(t, fake)

	_, err := m.Login(context.Background(), "ana@example.com", "secret")
	require.NoError(t, err)

	fresh := NewManager(path, fake, logging.NewText(io.Discard))
	first := fresh.Restore()
	second := fresh.Restore()
	require.Equal(t, first, second)
	require.True(t, first.Authenticated())
	require.Equal(t, "ana@example.com", first.Email)
}

func TestRestoreCorruptedFile(t *testing.T) {
	m, path := newManager(t, &storetest.Fake{})
	require.NoError(t, os.WriteFile(path, []byte(`{"email":`), 0o600))

	require.NotPanics(t, func() {
		s := m.Restore()
		require.False(t, s.Authenticated())
	})
}

func TestLoginInvalidCredentials(t *testing.T) {
	fake := &storetest.Fake{
		AuthenticateFn: func(context.Context, string, string) (*models.User, error) {
			return nil, store.ErrUnauthorized
		},
	}
	m, path := newManager(t, fake)

	_, err := m.Login(context.Background(), "ana@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// nothing persisted on rejection
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
	require.False(t, m.Current().Authenticated())
}

func TestLoginUnreachable(t *testing.T) {
	fake := &storetest.Fake{
		AuthenticateFn: func(context.Context, string, string) (*models.User, error) {
			return nil, store.ErrUnavailable
		},
	}
	m, _ := newManager(t, fake)

	_, err := m.Login(context.Background(), "ana@example.com", "secret")
	require.ErrorIs(t, err, ErrUnreachable)
}

func TestLoginUnexpectedErrorPassedThrough(t *testing.T) {
	boom := errors.New("boom")
	fake := &storetest.Fake{
		AuthenticateFn: func(context.Context, string, string) (*models.User, error) {
			return nil, boom
		},
	}
	m, _ := newManager(t, fake)

	_, err := m.Login(context.Background(), "ana@example.com", "secret")
	require.ErrorIs(t, err, boom)
}

func TestLogoutClearsEverything(t *testing.T) {
	m, path := newManager(t, &storetest.Fake{})

	_, err := m.Login(context.Background(), "ana@example.com", "secret")
	require.NoError(t, err)
	require.True(t, m.Current().Authenticated())

	m.Logout()
	require.False(t, m.Current().Authenticated())
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))

	// logging out twice is fine
	require.NotPanics(t, m.Logout)
}

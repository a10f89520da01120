package cli

import (
	"context"
	"errors"

	"teamspace/internal/client/session"
)

// SignIn prompts for credentials and authenticates against the store. The
// auth path surfaces its failures: a rejection or an unreachable store is
// reported to the user instead of degrading silently.
func (a *App) SignIn(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	s, err := a.sessions.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidCredentials):
			a.printf("Invalid email or password.\n")
		case errors.Is(err, session.ErrUnreachable):
			a.printf("The store is unreachable, try again later.\n")
		default:
			a.printf("Login failed: %v\n", err)
		}
		return err
	}

	a.printf("Welcome, %s!\n", s.Email)
	return a.enterTeamList(ctx)
}

// Package storetest provides a configurable in-memory store.Client fake for
// unit tests. Every method has a function-field override; unset methods
// behave like an empty, healthy store.
package storetest

import (
	"context"
	"sync"
	"time"

	"teamspace/internal/client/models"
)

type Fake struct {
	mu    sync.Mutex
	calls []string

	AuthenticateFn func(ctx context.Context, email, password string) (*models.User, error)
	ListTeamsFn    func(ctx context.Context, email string) ([]models.Team, error)
	CreateTeamFn   func(ctx context.Context, name, description, ownerEmail string) (*models.Team, error)
	ListPhotosFn   func(ctx context.Context, teamID string) ([]models.Photo, error)
	UploadPhotoFn  func(ctx context.Context, teamID, imageData string, uploadedAt time.Time) (*models.Photo, error)
	DeletePhotoFn  func(ctx context.Context, photoID string) error
	ListMessagesFn func(ctx context.Context, teamID string) ([]models.Message, error)
	SaveMessageFn  func(ctx context.Context, msg *models.Message) (*models.Message, error)
	BudgetFn       func(ctx context.Context, teamID string) (float64, error)
	AddToBudgetFn  func(ctx context.Context, teamID string, delta float64) (float64, error)
	PingFn         func(ctx context.Context) error
}

func (f *Fake) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

// Calls returns the method names invoked so far, in order.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *Fake) Close() error { return nil }

func (f *Fake) Ping(ctx context.Context) error {
	f.record("Ping")
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	return nil
}

func (f *Fake) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	f.record("Authenticate")
	if f.AuthenticateFn != nil {
		return f.AuthenticateFn(ctx, email, password)
	}
	return &models.User{Email: email}, nil
}

func (f *Fake) ListTeams(ctx context.Context, email string) ([]models.Team, error) {
	f.record("ListTeams")
	if f.ListTeamsFn != nil {
		return f.ListTeamsFn(ctx, email)
	}
	return nil, nil
}

func (f *Fake) CreateTeam(ctx context.Context, name, description, ownerEmail string) (*models.Team, error) {
	f.record("CreateTeam")
	if f.CreateTeamFn != nil {
		return f.CreateTeamFn(ctx, name, description, ownerEmail)
	}
	return &models.Team{ID: "fake-id", Name: name, Description: description, OwnerEmail: ownerEmail}, nil
}

func (f *Fake) ListPhotos(ctx context.Context, teamID string) ([]models.Photo, error) {
	f.record("ListPhotos")
	if f.ListPhotosFn != nil {
		return f.ListPhotosFn(ctx, teamID)
	}
	return nil, nil
}

func (f *Fake) UploadPhoto(ctx context.Context, teamID, imageData string, uploadedAt time.Time) (*models.Photo, error) {
	f.record("UploadPhoto")
	if f.UploadPhotoFn != nil {
		return f.UploadPhotoFn(ctx, teamID, imageData, uploadedAt)
	}
	return &models.Photo{ID: "fake-photo", TeamID: teamID, ImageData: imageData, UploadedAt: uploadedAt}, nil
}

func (f *Fake) DeletePhoto(ctx context.Context, photoID string) error {
	f.record("DeletePhoto")
	if f.DeletePhotoFn != nil {
		return f.DeletePhotoFn(ctx, photoID)
	}
	return nil
}

func (f *Fake) ListMessages(ctx context.Context, teamID string) ([]models.Message, error) {
	f.record("ListMessages")
	if f.ListMessagesFn != nil {
		return f.ListMessagesFn(ctx, teamID)
	}
	return nil, nil
}

func (f *Fake) SaveMessage(ctx context.Context, msg *models.Message) (*models.Message, error) {
	f.record("SaveMessage")
	if f.SaveMessageFn != nil {
		return f.SaveMessageFn(ctx, msg)
	}
	saved := *msg
	saved.ID = "fake-msg"
	return &saved, nil
}

func (f *Fake) Budget(ctx context.Context, teamID string) (float64, error) {
	f.record("Budget")
	if f.BudgetFn != nil {
		return f.BudgetFn(ctx, teamID)
	}
	return 0, nil
}

func (f *Fake) AddToBudget(ctx context.Context, teamID string, delta float64) (float64, error) {
	f.record("AddToBudget")
	if f.AddToBudgetFn != nil {
		return f.AddToBudgetFn(ctx, teamID, delta)
	}
	return delta, nil
}

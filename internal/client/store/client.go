// Package store defines the client for the remote record store. The store
// owns every persistent entity; the rest of the client only keeps transient
// caches of what it fetches here.
package store

import (
	"context"
	"time"

	"teamspace/internal/client/models"
)

// Client is the full remote store surface. All calls are request/response,
// honor context cancellation, and carry no transactional guarantee across
// entities: saving a message and bumping the budget are two independent
// calls.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Authenticate(ctx context.Context, email, password string) (*models.User, error)

	ListTeams(ctx context.Context, email string) ([]models.Team, error)
	CreateTeam(ctx context.Context, name, description, ownerEmail string) (*models.Team, error)

	ListPhotos(ctx context.Context, teamID string) ([]models.Photo, error)
	UploadPhoto(ctx context.Context, teamID, imageData string, uploadedAt time.Time) (*models.Photo, error)
	DeletePhoto(ctx context.Context, photoID string) error

	ListMessages(ctx context.Context, teamID string) ([]models.Message, error)
	SaveMessage(ctx context.Context, msg *models.Message) (*models.Message, error)

	// Budget reads the current total for a team, zero if none was ever set.
	Budget(ctx context.Context, teamID string) (float64, error)

	// AddToBudget atomically adds delta at the store and returns the new
	// total. The store rejects negative deltas.
	AddToBudget(ctx context.Context, teamID string, delta float64) (float64, error)
}
